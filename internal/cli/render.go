package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/staffhive/benchctl/pkg/agencysdk"
)

// printJSON renders any value as indented JSON on the output stream.
func (a *App) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// table writes rows as aligned columns. Cells holding the zero string
// render as "-" so sparse records stay readable.
func (a *App) table(header []string, rows [][]string) {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, row := range rows {
		for i, cell := range row {
			if cell == "" {
				row[i] = "-"
			}
		}
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
}

// pageFooter prints the paging line under a table.
func (a *App) pageFooter(number, totalPages int, totalElements int64) {
	if totalPages > 1 {
		fmt.Fprintf(a.out, "\npage %d of %d (%d total)\n", number+1, totalPages, totalElements)
	}
}

func formatRate(rate float64) string {
	if rate == 0 {
		return ""
	}
	return fmt.Sprintf("$%.2f/hr", rate)
}

// pageFlags binds the shared paging flags onto a command.
func pageFlags(flags *pflag.FlagSet, page *agencysdk.PageRequest) {
	flags.IntVar(&page.Page, "page", 0, "page number, starting at 0")
	flags.IntVar(&page.Size, "size", 0, "page size (backend default when 0)")
	flags.StringVar(&page.SortBy, "sort-by", "", "sort field")
	flags.StringVar(&page.SortDir, "sort-dir", "", "sort direction (asc, desc)")
}
