package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/staffhive/benchctl/pkg/agencysdk"
)

func newCandidatesCommand(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "candidates",
		Aliases: []string{"candidate"},
		Short:   "Manage the legacy candidates table",
	}
	cmd.AddCommand(
		newCandidatesListCommand(a),
		newCandidatesUnifiedCommand(a),
		newCandidatesGetCommand(a),
		newCandidatesCreateCommand(a),
		newCandidatesUpdateCommand(a),
		newCandidatesDeleteCommand(a),
		newCandidatesSearchCommand(a),
		newCandidatesByStatusCommand(a),
		newCandidatesResumeCommand(a),
	)
	return cmd
}

func candidateRows(candidates []agencysdk.Candidate) [][]string {
	rows := make([][]string, 0, len(candidates))
	for _, cand := range candidates {
		rows = append(rows, []string{
			strconv.FormatInt(cand.ID, 10),
			cand.FullName,
			string(cand.Status),
			string(cand.VisaStatus),
			cand.PrimarySkill,
			cand.City,
			cand.State,
		})
	}
	return rows
}

var candidateHeader = []string{"ID", "NAME", "STATUS", "VISA", "SKILL", "CITY", "STATE"}

func newCandidatesListCommand(a *App) *cobra.Command {
	var page agencysdk.PageRequest
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List candidates",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("list candidates", func(ctx context.Context) error {
				result, err := a.client.ListCandidates(ctx, page)
				if err != nil {
					return err
				}
				if a.asJSON {
					return a.printJSON(result)
				}
				a.table(candidateHeader, candidateRows(result.Content))
				a.pageFooter(result.Number, result.TotalPages, result.TotalElements)
				return nil
			})
		},
	}
	pageFlags(cmd.Flags(), &page)
	return cmd
}

func newCandidatesUnifiedCommand(a *App) *cobra.Command {
	var filter agencysdk.UnifiedFilter
	var visa string

	cmd := &cobra.Command{
		Use:   "all",
		Short: "Combined view across candidates, bench and working",
		Long: "Fetches the three candidate sources concurrently and shows them as one\n" +
			"list. A source that cannot be reached is simply missing from the result.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("load candidates", func(ctx context.Context) error {
				filter.VisaStatus = agencysdk.VisaStatus(visa)
				rows, err := a.client.UnifiedCandidates(ctx)
				if err != nil {
					return err
				}
				rows = agencysdk.FilterUnified(rows, filter)

				if a.asJSON {
					return a.printJSON(rows)
				}

				out := make([][]string, 0, len(rows))
				for _, row := range rows {
					out = append(out, []string{
						string(row.Source),
						strconv.FormatInt(row.ID, 10),
						row.FullName,
						string(row.Status),
						string(row.VisaStatus),
						row.PrimarySkill,
						row.Location,
					})
				}
				a.table([]string{"SOURCE", "ID", "NAME", "STATUS", "VISA", "SKILL", "LOCATION"}, out)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&filter.FullName, "name", "", "filter by name substring")
	cmd.Flags().StringVar(&visa, "visa", "", "filter by visa status (exact)")
	cmd.Flags().StringVar(&filter.PrimarySkill, "skill", "", "filter by skill substring")
	cmd.Flags().StringVar(&filter.State, "state", "", "filter by state")
	return cmd
}

func newCandidatesGetCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one candidate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("load candidate", func(ctx context.Context) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				cand, err := a.client.GetCandidate(ctx, id)
				if err != nil {
					return err
				}
				return a.printJSON(cand)
			})
		},
	}
}

func candidateRequestFlags(cmd *cobra.Command, req *agencysdk.CandidateRequest, visa, status *string) {
	cmd.Flags().StringVar(&req.FullName, "name", "", "full name")
	cmd.Flags().StringVar(visa, "visa", "", "visa status (H1B, OPT, GC, CITIZEN, F1, L1, OTHER)")
	cmd.Flags().StringVar(&req.City, "city", "", "city")
	cmd.Flags().StringVar(&req.State, "state", "", "state")
	cmd.Flags().StringVar(&req.PrimarySkill, "skill", "", "primary skill")
	cmd.Flags().IntVar(&req.ExperienceYears, "experience", 0, "years of experience")
	cmd.Flags().StringVar(&req.ContactInfo, "contact", "", "contact info")
	cmd.Flags().StringVar(&req.Notes, "notes", "", "notes")
	cmd.Flags().StringVar(status, "status", "", "pipeline status (BENCH, INTERVIEW, WORKING, PLACED, INACTIVE)")
	cmd.Flags().StringVar(&req.AssignedConsultantName, "consultant", "", "assigned consultant name")
	cmd.Flags().Float64Var(&req.TargetRate, "target-rate", 0, "target hourly rate")
}

// seedCandidateRequest backfills fields whose flags the operator never
// set from the record's current values. The backend replaces every
// column on update, so a field left off the wire comes back blank.
func seedCandidateRequest(flags *pflag.FlagSet, req *agencysdk.CandidateRequest, cur *agencysdk.Candidate) {
	if !flags.Changed("name") {
		req.FullName = cur.FullName
	}
	if !flags.Changed("visa") {
		req.VisaStatus = cur.VisaStatus
	}
	if !flags.Changed("city") {
		req.City = cur.City
	}
	if !flags.Changed("state") {
		req.State = cur.State
	}
	if !flags.Changed("skill") {
		req.PrimarySkill = cur.PrimarySkill
	}
	if !flags.Changed("experience") {
		req.ExperienceYears = cur.ExperienceYears
	}
	if !flags.Changed("contact") {
		req.ContactInfo = cur.ContactInfo
	}
	if !flags.Changed("notes") {
		req.Notes = cur.Notes
	}
	if !flags.Changed("status") {
		req.Status = cur.Status
	}
	if !flags.Changed("consultant") {
		req.AssignedConsultantName = cur.AssignedConsultantName
	}
	if !flags.Changed("target-rate") {
		req.TargetRate = cur.TargetRate
	}
}

// openResume resolves the optional --resume flag to a multipart file.
func openResume(path string) (string, *os.File, error) {
	if path == "" {
		return "", nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return "", nil, err
	}
	return filepath.Base(path), f, nil
}

// readerOrNil keeps a nil *os.File from turning into a non-nil
// io.Reader interface value.
func readerOrNil(f *os.File) io.Reader {
	if f == nil {
		return nil
	}
	return f
}

func newCandidatesCreateCommand(a *App) *cobra.Command {
	var req agencysdk.CandidateRequest
	var visa, status, resumePath string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a candidate, optionally attaching a resume",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("create candidate", func(ctx context.Context) error {
				req.VisaStatus = agencysdk.VisaStatus(visa)
				req.Status = agencysdk.CandidateStatus(status)

				name, file, err := openResume(resumePath)
				if err != nil {
					return err
				}
				if file != nil {
					defer file.Close()
				}

				created, err := a.client.CreateCandidate(ctx, req, name, readerOrNil(file))
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Created candidate %d (%s).\n", created.ID, created.FullName)
				return nil
			})
		},
	}

	candidateRequestFlags(cmd, &req, &visa, &status)
	cmd.Flags().StringVar(&resumePath, "resume", "", "path to a resume file to attach")
	cmd.MarkFlagRequired("name")
	return cmd
}

func newCandidatesUpdateCommand(a *App) *cobra.Command {
	var req agencysdk.CandidateRequest
	var visa, status, resumePath string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a candidate; unset flags keep their current values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("update candidate", func(ctx context.Context) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				req.VisaStatus = agencysdk.VisaStatus(visa)
				req.Status = agencysdk.CandidateStatus(status)

				current, err := a.client.GetCandidate(ctx, id)
				if err != nil {
					return err
				}
				seedCandidateRequest(cmd.Flags(), &req, current)

				name, file, err := openResume(resumePath)
				if err != nil {
					return err
				}
				if file != nil {
					defer file.Close()
				}

				updated, err := a.client.UpdateCandidate(ctx, id, req, name, readerOrNil(file))
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Updated candidate %d (%s).\n", updated.ID, updated.FullName)
				return nil
			})
		},
	}

	candidateRequestFlags(cmd, &req, &visa, &status)
	cmd.Flags().StringVar(&resumePath, "resume", "", "path to a resume file to attach")
	return cmd
}

func newCandidatesDeleteCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a candidate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("delete candidate", func(ctx context.Context) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				if err := a.client.DeleteCandidate(ctx, id); err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Deleted candidate %d.\n", id)
				return nil
			})
		},
	}
}

func newCandidatesSearchCommand(a *App) *cobra.Command {
	var search agencysdk.CandidateSearch
	var visa, status string

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search candidates server-side",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("search candidates", func(ctx context.Context) error {
				search.VisaStatus = agencysdk.VisaStatus(visa)
				search.Status = agencysdk.CandidateStatus(status)
				result, err := a.client.SearchCandidates(ctx, search)
				if err != nil {
					return err
				}
				if a.asJSON {
					return a.printJSON(result)
				}
				a.table(candidateHeader, candidateRows(result.Content))
				a.pageFooter(result.Number, result.TotalPages, result.TotalElements)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&search.FullName, "name", "", "name substring")
	cmd.Flags().StringVar(&visa, "visa", "", "visa status")
	cmd.Flags().StringVar(&search.PrimarySkill, "skill", "", "skill substring")
	cmd.Flags().StringVar(&search.State, "state", "", "state")
	cmd.Flags().StringVar(&status, "status", "", "pipeline status")
	pageFlags(cmd.Flags(), &search.Page)
	return cmd
}

func newCandidatesByStatusCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status <status>",
		Short: "List candidates in one pipeline status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("list candidates", func(ctx context.Context) error {
				candidates, err := a.client.CandidatesByStatus(ctx, agencysdk.CandidateStatus(args[0]))
				if err != nil {
					return err
				}
				if a.asJSON {
					return a.printJSON(candidates)
				}
				a.table(candidateHeader, candidateRows(candidates))
				return nil
			})
		},
	}
}

func newCandidatesResumeCommand(a *App) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "resume <id>",
		Short: "Download a candidate's resume",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("download resume", func(ctx context.Context) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				data, name, err := a.client.DownloadResume(ctx, id)
				if err != nil {
					return err
				}
				return saveDownload(a, outPath, name, data)
			})
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write to this path instead of the server-sent name")
	return cmd
}

// saveDownload writes a downloaded file, preferring the explicit path
// and falling back to the filename the server sent.
func saveDownload(a *App, outPath, serverName string, data []byte) error {
	name := outPath
	if name == "" {
		name = serverName
	}
	if name == "" {
		name = "download.bin"
	}
	if err := os.WriteFile(name, data, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Saved %s (%d bytes).\n", name, len(data))
	return nil
}
