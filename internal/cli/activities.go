package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/staffhive/benchctl/pkg/agencysdk"
)

func newActivitiesCommand(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "activities",
		Aliases: []string{"activity"},
		Short:   "Track candidate placement activities",
	}
	cmd.AddCommand(
		newActivitiesForCandidateCommand(a),
		newActivitiesGetCommand(a),
		newActivitiesCreateCommand(a),
		newActivitiesUpdateCommand(a),
		newActivitiesDeleteCommand(a),
		newActivitiesSearchCommand(a),
		newActivitiesByTypeCommand(a),
		newActivitiesRangeCommand(a),
		newActivitiesRecentCommand(a),
		newActivitiesCountCommand(a),
	)
	return cmd
}

var activityHeader = []string{"ID", "CANDIDATE", "TYPE", "CLIENT", "RATE", "DATE"}

func activityRows(activities []agencysdk.Activity) [][]string {
	rows := make([][]string, 0, len(activities))
	for _, act := range activities {
		rows = append(rows, []string{
			strconv.FormatInt(act.ID, 10),
			strconv.FormatInt(act.CandidateID, 10),
			string(act.ActivityType),
			act.ClientName,
			formatRate(act.SubmittedRate),
			act.ActivityDate,
		})
	}
	return rows
}

func (a *App) renderActivities(activities []agencysdk.Activity) error {
	if a.asJSON {
		return a.printJSON(activities)
	}
	a.table(activityHeader, activityRows(activities))
	return nil
}

func newActivitiesForCandidateCommand(a *App) *cobra.Command {
	var page agencysdk.PageRequest
	var paged bool

	cmd := &cobra.Command{
		Use:   "for <candidate-id>",
		Short: "List activities for one bench candidate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("list activities", func(ctx context.Context) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				if paged {
					result, err := a.client.ActivitiesForCandidatePaged(ctx, id, page)
					if err != nil {
						return err
					}
					if a.asJSON {
						return a.printJSON(result)
					}
					a.table(activityHeader, activityRows(result.Content))
					a.pageFooter(result.Number, result.TotalPages, result.TotalElements)
					return nil
				}

				activities, err := a.client.ActivitiesForCandidate(ctx, id)
				if err != nil {
					return err
				}
				return a.renderActivities(activities)
			})
		},
	}

	cmd.Flags().BoolVar(&paged, "paged", false, "use the paginated endpoint")
	pageFlags(cmd.Flags(), &page)
	return cmd
}

func newActivitiesGetCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("load activity", func(ctx context.Context) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				act, err := a.client.GetActivity(ctx, id)
				if err != nil {
					return err
				}
				return a.printJSON(act)
			})
		},
	}
}

func activityRequestFlags(cmd *cobra.Command, req *agencysdk.ActivityRequest, activityType *string) {
	cmd.Flags().Int64Var(&req.CandidateID, "candidate", 0, "bench candidate id")
	cmd.Flags().StringVar(activityType, "type", "", "activity type (APPLIED, SUBMITTED, INTERVIEW_SCHEDULED, ...)")
	cmd.Flags().StringVar(&req.ClientName, "client", "", "client company")
	cmd.Flags().StringVar(&req.ContactPerson, "contact", "", "contact person")
	cmd.Flags().StringVar(&req.ContactPhone, "contact-phone", "", "contact phone")
	cmd.Flags().StringVar(&req.ContactEmail, "contact-email", "", "contact email")
	cmd.Flags().Float64Var(&req.SubmittedRate, "rate", 0, "submitted hourly rate")
	cmd.Flags().StringVar(&req.Notes, "notes", "", "notes")
	cmd.Flags().StringVar(&req.ActivityDate, "date", "", "activity date (YYYY-MM-DD)")
}

// seedActivityRequest carries the activity's current values for flags
// the operator left unset. Update is a full replace server-side.
func seedActivityRequest(flags *pflag.FlagSet, req *agencysdk.ActivityRequest, cur *agencysdk.Activity) {
	if !flags.Changed("candidate") {
		req.CandidateID = cur.CandidateID
	}
	if !flags.Changed("type") {
		req.ActivityType = cur.ActivityType
	}
	if !flags.Changed("client") {
		req.ClientName = cur.ClientName
	}
	if !flags.Changed("contact") {
		req.ContactPerson = cur.ContactPerson
	}
	if !flags.Changed("contact-phone") {
		req.ContactPhone = cur.ContactPhone
	}
	if !flags.Changed("contact-email") {
		req.ContactEmail = cur.ContactEmail
	}
	if !flags.Changed("rate") {
		req.SubmittedRate = cur.SubmittedRate
	}
	if !flags.Changed("notes") {
		req.Notes = cur.Notes
	}
	if !flags.Changed("date") {
		req.ActivityDate = cur.ActivityDate
	}
}

func newActivitiesCreateCommand(a *App) *cobra.Command {
	var req agencysdk.ActivityRequest
	var activityType string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Record a placement activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("create activity", func(ctx context.Context) error {
				req.ActivityType = agencysdk.ActivityType(activityType)
				created, err := a.client.CreateActivity(ctx, req)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Recorded %s activity %d for candidate %d.\n",
					created.ActivityType, created.ID, created.CandidateID)
				return nil
			})
		},
	}

	activityRequestFlags(cmd, &req, &activityType)
	cmd.MarkFlagRequired("candidate")
	cmd.MarkFlagRequired("type")
	return cmd
}

func newActivitiesUpdateCommand(a *App) *cobra.Command {
	var req agencysdk.ActivityRequest
	var activityType string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an activity; unset flags keep their current values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("update activity", func(ctx context.Context) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				req.ActivityType = agencysdk.ActivityType(activityType)

				current, err := a.client.GetActivity(ctx, id)
				if err != nil {
					return err
				}
				seedActivityRequest(cmd.Flags(), &req, current)

				updated, err := a.client.UpdateActivity(ctx, id, req)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Updated activity %d.\n", updated.ID)
				return nil
			})
		},
	}

	activityRequestFlags(cmd, &req, &activityType)
	return cmd
}

func newActivitiesDeleteCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("delete activity", func(ctx context.Context) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				if err := a.client.DeleteActivity(ctx, id); err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Deleted activity %d.\n", id)
				return nil
			})
		},
	}
}

func newActivitiesSearchCommand(a *App) *cobra.Command {
	var search agencysdk.ActivitySearch
	var activityType string

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search activities server-side",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("search activities", func(ctx context.Context) error {
				search.ActivityType = agencysdk.ActivityType(activityType)
				result, err := a.client.SearchActivities(ctx, search)
				if err != nil {
					return err
				}
				if a.asJSON {
					return a.printJSON(result)
				}
				a.table(activityHeader, activityRows(result.Content))
				a.pageFooter(result.Number, result.TotalPages, result.TotalElements)
				return nil
			})
		},
	}

	cmd.Flags().Int64Var(&search.CandidateID, "candidate", 0, "bench candidate id")
	cmd.Flags().StringVar(&activityType, "type", "", "activity type")
	cmd.Flags().StringVar(&search.ClientName, "client", "", "client company substring")
	pageFlags(cmd.Flags(), &search.Page)
	return cmd
}

func newActivitiesByTypeCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "type <activity-type>",
		Short: "List activities of one type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("list activities", func(ctx context.Context) error {
				activities, err := a.client.ActivitiesByType(ctx, agencysdk.ActivityType(args[0]))
				if err != nil {
					return err
				}
				return a.renderActivities(activities)
			})
		},
	}
}

func newActivitiesRangeCommand(a *App) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "range",
		Short: "List activities inside a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("list activities", func(ctx context.Context) error {
				activities, err := a.client.ActivitiesByDateRange(ctx, from, to)
				if err != nil {
					return err
				}
				return a.renderActivities(activities)
			})
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "end date (YYYY-MM-DD)")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")
	return cmd
}

func newActivitiesRecentCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "recent",
		Short: "List the most recent activities",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("list activities", func(ctx context.Context) error {
				activities, err := a.client.RecentActivities(ctx)
				if err != nil {
					return err
				}
				return a.renderActivities(activities)
			})
		},
	}
}

func newActivitiesCountCommand(a *App) *cobra.Command {
	var candidateID int64
	var activityType string

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count activities for a candidate or of a type",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("count activities", func(ctx context.Context) error {
				switch {
				case candidateID > 0:
					count, err := a.client.CountActivitiesForCandidate(ctx, candidateID)
					if err != nil {
						return err
					}
					fmt.Fprintln(a.out, count)
					return nil
				case activityType != "":
					count, err := a.client.CountActivitiesByType(ctx, agencysdk.ActivityType(activityType))
					if err != nil {
						return err
					}
					fmt.Fprintln(a.out, count)
					return nil
				default:
					return fmt.Errorf("pass --candidate or --type")
				}
			})
		},
	}

	cmd.Flags().Int64Var(&candidateID, "candidate", 0, "bench candidate id")
	cmd.Flags().StringVar(&activityType, "type", "", "activity type")
	return cmd
}
