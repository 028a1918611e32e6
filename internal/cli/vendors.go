package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/staffhive/benchctl/pkg/agencysdk"
)

func newVendorsCommand(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "vendors",
		Aliases: []string{"vendor"},
		Short:   "Manage vendor partner companies",
	}
	cmd.AddCommand(
		newVendorsListCommand(a),
		newVendorsGetCommand(a),
		newVendorsCreateCommand(a),
		newVendorsUpdateCommand(a),
		newVendorsDeleteCommand(a),
		newVendorsSearchCommand(a),
		newVendorsByStatusCommand(a),
		newVendorsTopCommand(a),
	)
	return cmd
}

var vendorHeader = []string{"ID", "COMPANY", "STATUS", "CONTACT", "SUBMISSIONS", "PLACEMENTS"}

func vendorRows(vendors []agencysdk.Vendor) [][]string {
	rows := make([][]string, 0, len(vendors))
	for _, vendor := range vendors {
		rows = append(rows, []string{
			strconv.FormatInt(vendor.ID, 10),
			vendor.CompanyName,
			string(vendor.Status),
			vendor.PrimaryContactName,
			strconv.Itoa(vendor.TotalSubmissions),
			strconv.Itoa(vendor.SuccessfulPlacements),
		})
	}
	return rows
}

func newVendorsListCommand(a *App) *cobra.Command {
	var page agencysdk.PageRequest
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List vendors",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("list vendors", func(ctx context.Context) error {
				result, err := a.client.ListVendors(ctx, page)
				if err != nil {
					return err
				}
				if a.asJSON {
					return a.printJSON(result)
				}
				a.table(vendorHeader, vendorRows(result.Content))
				a.pageFooter(result.Number, result.TotalPages, result.TotalElements)
				return nil
			})
		},
	}
	pageFlags(cmd.Flags(), &page)
	return cmd
}

func newVendorsGetCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one vendor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("load vendor", func(ctx context.Context) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				vendor, err := a.client.GetVendor(ctx, id)
				if err != nil {
					return err
				}
				return a.printJSON(vendor)
			})
		},
	}
}

func vendorRequestFlags(cmd *cobra.Command, req *agencysdk.VendorRequest, status *string) {
	cmd.Flags().StringVar(&req.CompanyName, "company", "", "company name")
	cmd.Flags().StringVar(&req.PrimaryContactName, "contact", "", "primary contact name")
	cmd.Flags().StringVar(&req.PrimaryContactEmail, "contact-email", "", "primary contact email")
	cmd.Flags().StringVar(&req.PrimaryContactPhone, "contact-phone", "", "primary contact phone")
	cmd.Flags().StringVar(&req.Address, "address", "", "street address")
	cmd.Flags().StringVar(&req.City, "city", "", "city")
	cmd.Flags().StringVar(&req.State, "state", "", "state")
	cmd.Flags().StringVar(&req.PreferredSkills, "skills", "", "preferred skills")
	cmd.Flags().Float64Var(&req.RateRangeMin, "rate-min", 0, "rate range minimum")
	cmd.Flags().Float64Var(&req.RateRangeMax, "rate-max", 0, "rate range maximum")
	cmd.Flags().StringVar(&req.Notes, "notes", "", "notes")
	cmd.Flags().StringVar(status, "status", "", "vendor status (ACTIVE, INACTIVE, PREFERRED, SUSPENDED)")
}

// seedVendorRequest carries the vendor's current values for flags the
// operator left unset. Update is a full replace server-side.
func seedVendorRequest(flags *pflag.FlagSet, req *agencysdk.VendorRequest, cur *agencysdk.Vendor) {
	if !flags.Changed("company") {
		req.CompanyName = cur.CompanyName
	}
	if !flags.Changed("contact") {
		req.PrimaryContactName = cur.PrimaryContactName
	}
	if !flags.Changed("contact-email") {
		req.PrimaryContactEmail = cur.PrimaryContactEmail
	}
	if !flags.Changed("contact-phone") {
		req.PrimaryContactPhone = cur.PrimaryContactPhone
	}
	if !flags.Changed("address") {
		req.Address = cur.Address
	}
	if !flags.Changed("city") {
		req.City = cur.City
	}
	if !flags.Changed("state") {
		req.State = cur.State
	}
	if !flags.Changed("skills") {
		req.PreferredSkills = cur.PreferredSkills
	}
	if !flags.Changed("rate-min") {
		req.RateRangeMin = cur.RateRangeMin
	}
	if !flags.Changed("rate-max") {
		req.RateRangeMax = cur.RateRangeMax
	}
	if !flags.Changed("notes") {
		req.Notes = cur.Notes
	}
	if !flags.Changed("status") {
		req.Status = cur.Status
	}
}

func newVendorsCreateCommand(a *App) *cobra.Command {
	var req agencysdk.VendorRequest
	var status string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a vendor",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("create vendor", func(ctx context.Context) error {
				req.Status = agencysdk.VendorStatus(status)
				created, err := a.client.CreateVendor(ctx, req)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Created vendor %d (%s).\n", created.ID, created.CompanyName)
				return nil
			})
		},
	}

	vendorRequestFlags(cmd, &req, &status)
	cmd.MarkFlagRequired("company")
	return cmd
}

func newVendorsUpdateCommand(a *App) *cobra.Command {
	var req agencysdk.VendorRequest
	var status string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a vendor; unset flags keep their current values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("update vendor", func(ctx context.Context) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				req.Status = agencysdk.VendorStatus(status)

				current, err := a.client.GetVendor(ctx, id)
				if err != nil {
					return err
				}
				seedVendorRequest(cmd.Flags(), &req, current)

				updated, err := a.client.UpdateVendor(ctx, id, req)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Updated vendor %d (%s).\n", updated.ID, updated.CompanyName)
				return nil
			})
		},
	}

	vendorRequestFlags(cmd, &req, &status)
	return cmd
}

func newVendorsDeleteCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a vendor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("delete vendor", func(ctx context.Context) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				if err := a.client.DeleteVendor(ctx, id); err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Deleted vendor %d.\n", id)
				return nil
			})
		},
	}
}

func newVendorsSearchCommand(a *App) *cobra.Command {
	var search agencysdk.VendorSearch
	var status string

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search vendors server-side",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("search vendors", func(ctx context.Context) error {
				search.Status = agencysdk.VendorStatus(status)
				result, err := a.client.SearchVendors(ctx, search)
				if err != nil {
					return err
				}
				if a.asJSON {
					return a.printJSON(result)
				}
				a.table(vendorHeader, vendorRows(result.Content))
				a.pageFooter(result.Number, result.TotalPages, result.TotalElements)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&search.CompanyName, "company", "", "company name substring")
	cmd.Flags().StringVar(&search.PreferredSkills, "skills", "", "preferred skills substring")
	cmd.Flags().StringVar(&search.State, "state", "", "state")
	cmd.Flags().StringVar(&status, "status", "", "vendor status")
	pageFlags(cmd.Flags(), &search.Page)
	return cmd
}

func newVendorsByStatusCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status <status>",
		Short: "List vendors in one status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("list vendors", func(ctx context.Context) error {
				vendors, err := a.client.VendorsByStatus(ctx, agencysdk.VendorStatus(args[0]))
				if err != nil {
					return err
				}
				if a.asJSON {
					return a.printJSON(vendors)
				}
				a.table(vendorHeader, vendorRows(vendors))
				return nil
			})
		},
	}
}

func newVendorsTopCommand(a *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "top",
		Short: "List vendors by successful placements",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("list top vendors", func(ctx context.Context) error {
				vendors, err := a.client.TopVendors(ctx, limit)
				if err != nil {
					return err
				}
				if a.asJSON {
					return a.printJSON(vendors)
				}
				a.table(vendorHeader, vendorRows(vendors))
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "how many vendors to show")
	return cmd
}
