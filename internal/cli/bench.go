package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/staffhive/benchctl/pkg/agencysdk"
)

func newBenchCommand(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Manage bench candidate profiles",
	}
	cmd.AddCommand(
		newBenchListCommand(a),
		newBenchGetCommand(a),
		newBenchCreateCommand(a),
		newBenchUpdateCommand(a),
		newBenchDeleteCommand(a),
		newBenchSearchCommand(a),
		newBenchByConsultantCommand(a),
		newBenchResumeCommand(a),
		newBenchDocsCommand(a),
	)
	return cmd
}

var benchHeader = []string{"ID", "NAME", "VISA", "SKILL", "CITY", "STATE", "RATE", "CONSULTANT"}

func benchRows(candidates []agencysdk.BenchCandidate) [][]string {
	rows := make([][]string, 0, len(candidates))
	for _, cand := range candidates {
		rows = append(rows, []string{
			strconv.FormatInt(cand.ID, 10),
			cand.FullName,
			string(cand.VisaStatus),
			cand.PrimarySkill,
			cand.City,
			cand.State,
			formatRate(cand.TargetRate),
			cand.AssignedConsultantName,
		})
	}
	return rows
}

func newBenchListCommand(a *App) *cobra.Command {
	var page agencysdk.PageRequest
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bench candidates",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("list bench candidates", func(ctx context.Context) error {
				result, err := a.client.ListBenchCandidates(ctx, page)
				if err != nil {
					return err
				}
				if a.asJSON {
					return a.printJSON(result)
				}
				a.table(benchHeader, benchRows(result.Content))
				a.pageFooter(result.Number, result.TotalPages, result.TotalElements)
				return nil
			})
		},
	}
	pageFlags(cmd.Flags(), &page)
	return cmd
}

func newBenchGetCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one bench candidate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("load bench candidate", func(ctx context.Context) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				cand, err := a.client.GetBenchCandidate(ctx, id)
				if err != nil {
					return err
				}
				return a.printJSON(cand)
			})
		},
	}
}

func benchRequestFlags(cmd *cobra.Command, req *agencysdk.BenchCandidateRequest, visa *string) {
	cmd.Flags().StringVar(&req.FullName, "name", "", "full name")
	cmd.Flags().StringVar(visa, "visa", "", "visa status")
	cmd.Flags().StringVar(&req.City, "city", "", "city")
	cmd.Flags().StringVar(&req.State, "state", "", "state")
	cmd.Flags().StringVar(&req.PrimarySkill, "skill", "", "primary skill")
	cmd.Flags().IntVar(&req.ExperienceYears, "experience", 0, "years of experience")
	cmd.Flags().StringVar(&req.PhoneNumber, "phone", "", "phone number")
	cmd.Flags().StringVar(&req.Email, "email", "", "email address")
	cmd.Flags().Float64Var(&req.TargetRate, "target-rate", 0, "target hourly rate")
	cmd.Flags().Int64Var(&req.AssignedConsultantID, "consultant-id", 0, "assigned consultant employee id")
	cmd.Flags().StringVar(&req.Notes, "notes", "", "notes")
}

// seedBenchRequest carries the profile's current values for flags the
// operator left unset. Update is a full replace server-side.
func seedBenchRequest(flags *pflag.FlagSet, req *agencysdk.BenchCandidateRequest, cur *agencysdk.BenchCandidate) {
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
	if !flags.Changed("phone") {
		req.PhoneNumber = cur.PhoneNumber
	}
	if !flags.Changed("email") {
		req.Email = cur.Email
	}
	if !flags.Changed("target-rate") {
		req.TargetRate = cur.TargetRate
	}
	if !flags.Changed("consultant-id") {
		req.AssignedConsultantID = cur.AssignedConsultantID
	}
	if !flags.Changed("notes") {
		req.Notes = cur.Notes
	}
}

// namedFiles opens each path as an upload part named after its base name.
// The caller closes via the returned func.
func namedFiles(paths []string) ([]agencysdk.NamedFile, func(), error) {
	files := make([]agencysdk.NamedFile, 0, len(paths))
	opened := make([]*os.File, 0, len(paths))
	closeAll := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		opened = append(opened, f)
		files = append(files, agencysdk.NamedFile{Name: filepath.Base(path), Content: f})
	}
	return files, closeAll, nil
}

func newBenchCreateCommand(a *App) *cobra.Command {
	var req agencysdk.BenchCandidateRequest
	var visa string
	var docPaths []string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a bench candidate, optionally attaching documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("create bench candidate", func(ctx context.Context) error {
				req.VisaStatus = agencysdk.VisaStatus(visa)

				docs, closeAll, err := namedFiles(docPaths)
				if err != nil {
					return err
				}
				defer closeAll()

				created, err := a.client.CreateBenchCandidate(ctx, req, docs...)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Created bench candidate %d (%s).\n", created.ID, created.FullName)
				return nil
			})
		},
	}

	benchRequestFlags(cmd, &req, &visa)
	cmd.Flags().StringSliceVar(&docPaths, "doc", nil, "document path to attach (repeatable)")
	cmd.MarkFlagRequired("name")
	return cmd
}

func newBenchUpdateCommand(a *App) *cobra.Command {
	var req agencysdk.BenchCandidateRequest
	var visa string
	var docPaths []string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a bench candidate; unset flags keep their current values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("update bench candidate", func(ctx context.Context) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				req.VisaStatus = agencysdk.VisaStatus(visa)

				current, err := a.client.GetBenchCandidate(ctx, id)
				if err != nil {
					return err
				}
				seedBenchRequest(cmd.Flags(), &req, current)

				docs, closeAll, err := namedFiles(docPaths)
				if err != nil {
					return err
				}
				defer closeAll()

				updated, err := a.client.UpdateBenchCandidate(ctx, id, req, docs...)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Updated bench candidate %d (%s).\n", updated.ID, updated.FullName)
				return nil
			})
		},
	}

	benchRequestFlags(cmd, &req, &visa)
	cmd.Flags().StringSliceVar(&docPaths, "doc", nil, "document path to attach (repeatable)")
	return cmd
}

func newBenchDeleteCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a bench candidate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("delete bench candidate", func(ctx context.Context) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				if err := a.client.DeleteBenchCandidate(ctx, id); err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Deleted bench candidate %d.\n", id)
				return nil
			})
		},
	}
}

func newBenchSearchCommand(a *App) *cobra.Command {
	var search agencysdk.BenchSearch
	var visa string

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search bench candidates server-side",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("search bench candidates", func(ctx context.Context) error {
				search.VisaStatus = agencysdk.VisaStatus(visa)
				result, err := a.client.SearchBenchCandidates(ctx, search)
				if err != nil {
					return err
				}
				if a.asJSON {
					return a.printJSON(result)
				}
				a.table(benchHeader, benchRows(result.Content))
				a.pageFooter(result.Number, result.TotalPages, result.TotalElements)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&search.FullName, "name", "", "name substring")
	cmd.Flags().StringVar(&visa, "visa", "", "visa status")
	cmd.Flags().StringVar(&search.PrimarySkill, "skill", "", "skill substring")
	cmd.Flags().StringVar(&search.State, "state", "", "state")
	pageFlags(cmd.Flags(), &search.Page)
	return cmd
}

func newBenchByConsultantCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "by-consultant <employee-id>",
		Short: "List bench candidates assigned to a consultant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("list bench candidates", func(ctx context.Context) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				candidates, err := a.client.BenchCandidatesByConsultant(ctx, id)
				if err != nil {
					return err
				}
				if a.asJSON {
					return a.printJSON(candidates)
				}
				a.table(benchHeader, benchRows(candidates))
				return nil
			})
		},
	}
}

func newBenchResumeCommand(a *App) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "resume <id>",
		Short: "Download a bench candidate's resume",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("download resume", func(ctx context.Context) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				data, name, err := a.client.DownloadBenchResume(ctx, id)
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

func newBenchDocsCommand(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Manage a bench candidate's documents",
	}

	list := &cobra.Command{
		Use:   "list <candidate-id>",
		Short: "List stored documents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("list documents", func(ctx context.Context) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				docs, err := a.client.ListDocuments(ctx, id)
				if err != nil {
					return err
				}
				if a.asJSON {
					return a.printJSON(docs)
				}
				rows := make([][]string, 0, len(docs))
				for _, doc := range docs {
					rows = append(rows, []string{
						strconv.FormatInt(doc.ID, 10),
						doc.OriginalFilename,
						doc.DocumentType,
						doc.FormattedFileSize,
						doc.UploadedAt,
						doc.UploadedByName,
					})
				}
				a.table([]string{"ID", "FILENAME", "TYPE", "SIZE", "UPLOADED", "BY"}, rows)
				return nil
			})
		},
	}

	upload := &cobra.Command{
		Use:   "upload <candidate-id> <path>...",
		Short: "Upload one or more documents",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("upload documents", func(ctx context.Context) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				files, closeAll, err := namedFiles(args[1:])
				if err != nil {
					return err
				}
				defer closeAll()

				// One file goes through the single-part endpoint, more
				// through the batch one.
				if len(files) == 1 {
					doc, err := a.client.UploadDocument(ctx, id, files[0])
					if err != nil {
						return err
					}
					fmt.Fprintf(a.out, "Uploaded %s (document %d).\n", doc.OriginalFilename, doc.ID)
					return nil
				}

				docs, err := a.client.UploadDocuments(ctx, id, files...)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Uploaded %d documents.\n", len(docs))
				return nil
			})
		},
	}

	download := &cobra.Command{
		Use:   "download <candidate-id> <document-id>",
		Short: "Download one document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("download document", func(ctx context.Context) error {
				candidateID, err := parseID(args[0])
				if err != nil {
					return err
				}
				documentID, err := parseID(args[1])
				if err != nil {
					return err
				}
				data, name, err := a.client.DownloadDocument(ctx, candidateID, documentID)
				if err != nil {
					return err
				}
				return saveDownload(a, "", name, data)
			})
		},
	}

	remove := &cobra.Command{
		Use:   "delete <candidate-id> <document-id>",
		Short: "Delete one document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("delete document", func(ctx context.Context) error {
				candidateID, err := parseID(args[0])
				if err != nil {
					return err
				}
				documentID, err := parseID(args[1])
				if err != nil {
					return err
				}
				if err := a.client.DeleteDocument(ctx, candidateID, documentID); err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Deleted document %d.\n", documentID)
				return nil
			})
		},
	}

	info := &cobra.Command{
		Use:   "info <candidate-id> <document-id>",
		Short: "Show one document's metadata",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guarded("load document info", func(ctx context.Context) error {
				candidateID, err := parseID(args[0])
				if err != nil {
					return err
				}
				documentID, err := parseID(args[1])
				if err != nil {
					return err
				}
				doc, err := a.client.DocumentInfo(ctx, candidateID, documentID)
				if err != nil {
					return err
				}
				return a.printJSON(doc)
			})
		},
	}

	cmd.AddCommand(list, upload, download, remove, info)
	return cmd
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}
