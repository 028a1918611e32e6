package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/staffhive/benchctl/pkg/agencysdk"
)

func newWorkingCommand(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "working",
		Short: "Manage candidates placed at clients",
	}
	cmd.AddCommand(
		newWorkingListCommand(a),
		newWorkingGetCommand(a),
		newWorkingCreateCommand(a),
		newWorkingUpdateCommand(a),
		newWorkingDeleteCommand(a),
		newWorkingSearchCommand(a),
	)
	return cmd
}

var workingHeader = []string{"ID", "NAME", "ROLE", "CLIENT", "LOCATION", "RATE"}

func workingRows(candidates []agencysdk.WorkingCandidate) [][]string {
	rows := make([][]string, 0, len(candidates))
	for _, cand := range candidates {
		rows = append(rows, []string{
			strconv.FormatInt(cand.ID, 10),
			cand.FullName,
			cand.JobRole,
			cand.ClientName,
			cand.WorkingLocation,
			formatRate(cand.HourlyRate),
		})
	}
	return rows
}

func newWorkingListCommand(a *App) *cobra.Command {
	var page agencysdk.PageRequest
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List working candidates",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("list working candidates", func(ctx context.Context) error {
				result, err := a.client.ListWorkingCandidates(ctx, page)
				if err != nil {
					return err
				}
				if a.asJSON {
					return a.printJSON(result)
				}
				a.table(workingHeader, workingRows(result.Content))
				a.pageFooter(result.Number, result.TotalPages, result.TotalElements)
				return nil
			})
		},
	}
	pageFlags(cmd.Flags(), &page)
	return cmd
}

func newWorkingGetCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one working candidate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("load working candidate", func(ctx context.Context) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				cand, err := a.client.GetWorkingCandidate(ctx, id)
				if err != nil {
					return err
				}
				return a.printJSON(cand)
			})
		},
	}
}

func workingRequestFlags(cmd *cobra.Command, req *agencysdk.WorkingCandidateRequest, visa *string) {
	cmd.Flags().StringVar(&req.FullName, "name", "", "full name")
	cmd.Flags().StringVar(visa, "visa", "", "visa status")
	cmd.Flags().StringVar(&req.WorkingLocation, "location", "", "working location")
	cmd.Flags().StringVar(&req.JobRole, "role", "", "job role")
	cmd.Flags().IntVar(&req.ExperienceYears, "experience", 0, "years of experience")
	cmd.Flags().StringVar(&req.Email, "email", "", "email address")
	cmd.Flags().StringVar(&req.PhoneNumber, "phone", "", "phone number")
	cmd.Flags().Float64Var(&req.HourlyRate, "rate", 0, "hourly rate")
	cmd.Flags().StringVar(&req.ProjectDuration, "duration", "", "project duration")
	cmd.Flags().StringVar(&req.ClientName, "client", "", "client company")
	cmd.Flags().StringVar(&req.Notes, "notes", "", "notes")
}

// seedWorkingRequest carries the placement's current values for flags
// the operator left unset. Update is a full replace server-side.
func seedWorkingRequest(flags *pflag.FlagSet, req *agencysdk.WorkingCandidateRequest, cur *agencysdk.WorkingCandidate) {
	if !flags.Changed("name") {
		req.FullName = cur.FullName
	}
	if !flags.Changed("visa") {
		req.VisaStatus = cur.VisaStatus
	}
	if !flags.Changed("location") {
		req.WorkingLocation = cur.WorkingLocation
	}
	if !flags.Changed("role") {
		req.JobRole = cur.JobRole
	}
	if !flags.Changed("experience") {
		req.ExperienceYears = cur.ExperienceYears
	}
	if !flags.Changed("email") {
		req.Email = cur.Email
	}
	if !flags.Changed("phone") {
		req.PhoneNumber = cur.PhoneNumber
	}
	if !flags.Changed("rate") {
		req.HourlyRate = cur.HourlyRate
	}
	if !flags.Changed("duration") {
		req.ProjectDuration = cur.ProjectDuration
	}
	if !flags.Changed("client") {
		req.ClientName = cur.ClientName
	}
	if !flags.Changed("notes") {
		req.Notes = cur.Notes
	}
	// No flag binds placedBy; the original placer always survives.
	req.PlacedByID = cur.PlacedByID
}

func newWorkingCreateCommand(a *App) *cobra.Command {
	var req agencysdk.WorkingCandidateRequest
	var visa string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Record a candidate placed at a client",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("create working candidate", func(ctx context.Context) error {
				req.VisaStatus = agencysdk.VisaStatus(visa)
				created, err := a.client.CreateWorkingCandidate(ctx, req)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Created working candidate %d (%s).\n", created.ID, created.FullName)
				return nil
			})
		},
	}

	workingRequestFlags(cmd, &req, &visa)
	cmd.MarkFlagRequired("name")
	return cmd
}

func newWorkingUpdateCommand(a *App) *cobra.Command {
	var req agencysdk.WorkingCandidateRequest
	var visa string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a working candidate; unset flags keep their current values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("update working candidate", func(ctx context.Context) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				req.VisaStatus = agencysdk.VisaStatus(visa)

				current, err := a.client.GetWorkingCandidate(ctx, id)
				if err != nil {
					return err
				}
				seedWorkingRequest(cmd.Flags(), &req, current)

				updated, err := a.client.UpdateWorkingCandidate(ctx, id, req)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Updated working candidate %d (%s).\n", updated.ID, updated.FullName)
				return nil
			})
		},
	}

	workingRequestFlags(cmd, &req, &visa)
	return cmd
}

func newWorkingDeleteCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a working candidate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("delete working candidate", func(ctx context.Context) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				if err := a.client.DeleteWorkingCandidate(ctx, id); err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Deleted working candidate %d.\n", id)
				return nil
			})
		},
	}
}

func newWorkingSearchCommand(a *App) *cobra.Command {
	var search agencysdk.WorkingSearch

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search working candidates server-side",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("search working candidates", func(ctx context.Context) error {
				result, err := a.client.SearchWorkingCandidates(ctx, search)
				if err != nil {
					return err
				}
				if a.asJSON {
					return a.printJSON(result)
				}
				a.table(workingHeader, workingRows(result.Content))
				a.pageFooter(result.Number, result.TotalPages, result.TotalElements)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&search.FullName, "name", "", "name substring")
	cmd.Flags().StringVar(&search.JobRole, "role", "", "job role substring")
	cmd.Flags().StringVar(&search.ClientName, "client", "", "client company substring")
	pageFlags(cmd.Flags(), &search.Page)
	return cmd
}
