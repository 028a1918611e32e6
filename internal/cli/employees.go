package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/staffhive/benchctl/pkg/agencysdk"
)

func newEmployeesCommand(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "employees",
		Aliases: []string{"employee"},
		Short:   "Manage internal employees and consultants",
	}
	cmd.AddCommand(
		newEmployeesListCommand(a),
		newEmployeesGetCommand(a),
		newEmployeesCreateCommand(a),
		newEmployeesUpdateCommand(a),
		newEmployeesDeleteCommand(a),
		newEmployeesSearchCommand(a),
		newEmployeesByRoleCommand(a),
	)
	return cmd
}

var employeeHeader = []string{"ID", "NAME", "ROLE", "EMAIL", "PHONE"}

func employeeRows(employees []agencysdk.Employee) [][]string {
	rows := make([][]string, 0, len(employees))
	for _, emp := range employees {
		rows = append(rows, []string{
			strconv.FormatInt(emp.ID, 10),
			emp.FullName,
			emp.Role,
			emp.Email,
			emp.PhoneNumber,
		})
	}
	return rows
}

func newEmployeesListCommand(a *App) *cobra.Command {
	var page agencysdk.PageRequest
	var paged bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List employees",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("list employees", func(ctx context.Context) error {
				if paged {
					result, err := a.client.ListEmployeesPaged(ctx, page)
					if err != nil {
						return err
					}
					if a.asJSON {
						return a.printJSON(result)
					}
					a.table(employeeHeader, employeeRows(result.Content))
					a.pageFooter(result.Number, result.TotalPages, result.TotalElements)
					return nil
				}

				employees, err := a.client.ListEmployees(ctx)
				if err != nil {
					return err
				}
				if a.asJSON {
					return a.printJSON(employees)
				}
				a.table(employeeHeader, employeeRows(employees))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&paged, "paged", false, "use the paginated endpoint")
	pageFlags(cmd.Flags(), &page)
	return cmd
}

func newEmployeesGetCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("load employee", func(ctx context.Context) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				emp, err := a.client.GetEmployee(ctx, id)
				if err != nil {
					return err
				}
				return a.printJSON(emp)
			})
		},
	}
}

func employeeRequestFlags(cmd *cobra.Command, req *agencysdk.EmployeeRequest) {
	cmd.Flags().StringVar(&req.FullName, "name", "", "full name")
	cmd.Flags().StringVar(&req.Email, "email", "", "email address")
	cmd.Flags().StringVar(&req.PhoneNumber, "phone", "", "phone number")
	cmd.Flags().StringVar(&req.Role, "role", "", "role")
	cmd.Flags().StringVar(&req.Notes, "notes", "", "notes")
}

// seedEmployeeRequest carries the employee's current values for flags
// the operator left unset. Update is a full replace server-side.
func seedEmployeeRequest(flags *pflag.FlagSet, req *agencysdk.EmployeeRequest, cur *agencysdk.Employee) {
	if !flags.Changed("name") {
		req.FullName = cur.FullName
	}
	if !flags.Changed("email") {
		req.Email = cur.Email
	}
	if !flags.Changed("phone") {
		req.PhoneNumber = cur.PhoneNumber
	}
	if !flags.Changed("role") {
		req.Role = cur.Role
	}
	if !flags.Changed("notes") {
		req.Notes = cur.Notes
	}
}

func newEmployeesCreateCommand(a *App) *cobra.Command {
	var req agencysdk.EmployeeRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an employee",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("create employee", func(ctx context.Context) error {
				created, err := a.client.CreateEmployee(ctx, req)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Created employee %d (%s).\n", created.ID, created.FullName)
				return nil
			})
		},
	}

	employeeRequestFlags(cmd, &req)
	cmd.MarkFlagRequired("name")
	return cmd
}

func newEmployeesUpdateCommand(a *App) *cobra.Command {
	var req agencysdk.EmployeeRequest

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an employee; unset flags keep their current values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("update employee", func(ctx context.Context) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				current, err := a.client.GetEmployee(ctx, id)
				if err != nil {
					return err
				}
				seedEmployeeRequest(cmd.Flags(), &req, current)

				updated, err := a.client.UpdateEmployee(ctx, id, req)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Updated employee %d (%s).\n", updated.ID, updated.FullName)
				return nil
			})
		},
	}

	employeeRequestFlags(cmd, &req)
	return cmd
}

func newEmployeesDeleteCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("delete employee", func(ctx context.Context) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				if err := a.client.DeleteEmployee(ctx, id); err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Deleted employee %d.\n", id)
				return nil
			})
		},
	}
}

func newEmployeesSearchCommand(a *App) *cobra.Command {
	var search agencysdk.EmployeeSearch

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search employees server-side",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("search employees", func(ctx context.Context) error {
				result, err := a.client.SearchEmployees(ctx, search)
				if err != nil {
					return err
				}
				if a.asJSON {
					return a.printJSON(result)
				}
				a.table(employeeHeader, employeeRows(result.Content))
				a.pageFooter(result.Number, result.TotalPages, result.TotalElements)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&search.FullName, "name", "", "name substring")
	cmd.Flags().StringVar(&search.Email, "email", "", "email substring")
	cmd.Flags().StringVar(&search.Role, "role", "", "role")
	pageFlags(cmd.Flags(), &search.Page)
	return cmd
}

func newEmployeesByRoleCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "role <role>",
		Short: "List employees holding one role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("list employees", func(ctx context.Context) error {
				employees, err := a.client.EmployeesByRole(ctx, args[0])
				if err != nil {
					return err
				}
				if a.asJSON {
					return a.printJSON(employees)
				}
				a.table(employeeHeader, employeeRows(employees))
				return nil
			})
		},
	}
}
