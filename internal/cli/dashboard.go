package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newDashboardCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the headline placement numbers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("load dashboard", a.showDashboard)
		},
	}
}

func (a *App) showDashboard(ctx context.Context) error {
	stats, err := a.client.DashboardStats(ctx)
	if err != nil {
		return err
	}

	if a.asJSON {
		return a.printJSON(stats)
	}

	a.table([]string{"METRIC", "COUNT"}, [][]string{
		{"On bench", strconv.FormatInt(stats.BenchProfiles, 10)},
		{"Working", strconv.FormatInt(stats.WorkingCandidates, 10)},
		{"In interview", strconv.FormatInt(stats.InInterview, 10)},
		{"Placed", strconv.FormatInt(stats.Placed, 10)},
		{"All candidates", strconv.FormatInt(stats.TotalCandidates, 10)},
		{"Employees", strconv.FormatInt(stats.TotalEmployees, 10)},
		{"Vendors", strconv.FormatInt(stats.TotalVendors, 10)},
	})

	if len(stats.RecentCandidates) > 0 {
		fmt.Fprintln(a.out, "\nRecent candidates:")
		rows := make([][]string, 0, len(stats.RecentCandidates))
		for _, cand := range stats.RecentCandidates {
			rows = append(rows, []string{
				strconv.FormatInt(cand.ID, 10),
				cand.FullName,
				string(cand.Status),
				cand.PrimarySkill,
			})
		}
		a.table([]string{"ID", "NAME", "STATUS", "SKILL"}, rows)
	}
	return nil
}
