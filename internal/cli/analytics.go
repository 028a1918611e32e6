package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/staffhive/benchctl/pkg/agencysdk"
)

// Analytics shapes drift server-side, so everything here prints JSON
// regardless of the --json flag.
func newAnalyticsCommand(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Business analytics reports",
	}

	report := func(use, short, action string, fetch func(ctx context.Context) (agencysdk.AnalyticsReport, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.guarded(action, func(ctx context.Context) error {
					data, err := fetch(ctx)
					if err != nil {
						return err
					}
					return a.printJSON(data)
				})
			},
		}
	}

	trends := &cobra.Command{
		Use:   "trends",
		Short: "Submission trends over a window of days",
	}
	var days int
	trends.Flags().IntVar(&days, "days", 30, "window size in days")
	trends.RunE = func(cmd *cobra.Command, args []string) error {
		return a.guarded("load submission trends", func(ctx context.Context) error {
			data, err := a.client.SubmissionTrends(ctx, days)
			if err != nil {
				return err
			}
			return a.printJSON(data)
		})
	}

	// The client does not exist until PersistentPreRunE fills the App,
	// so each fetch resolves it at run time.
	cmd.AddCommand(
		report("revenue", "Revenue analytics", "load revenue analytics",
			func(ctx context.Context) (agencysdk.AnalyticsReport, error) { return a.client.RevenueAnalytics(ctx) }),
		report("consultants", "Consultant performance", "load consultant performance",
			func(ctx context.Context) (agencysdk.AnalyticsReport, error) { return a.client.ConsultantPerformance(ctx) }),
		report("vendors", "Vendor analytics", "load vendor analytics",
			func(ctx context.Context) (agencysdk.AnalyticsReport, error) { return a.client.VendorAnalytics(ctx) }),
		report("skills", "Skill demand", "load skill demand",
			func(ctx context.Context) (agencysdk.AnalyticsReport, error) { return a.client.SkillDemand(ctx) }),
		trends,
	)
	return cmd
}
