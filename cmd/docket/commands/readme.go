package commands

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"docket/internal/domain"
	"docket/internal/services/docqa"
)

func readmeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "readme",
		Short: "Documentation QA",
	}
	cmd.AddCommand(readmeCheckCmd())
	return cmd
}

// readme check [ROOT]: scan README files under ROOT (default ".").
func readmeCheckCmd() *cobra.Command {
	var (
		threshold float64
		asJSON    bool
	)
	cmd := &cobra.Command{
		Use:   "check [root]",
		Short: "Check README files for broken markdown, garbled duplicates and illustrative code blocks",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			svc := appCtx.Readme
			if cmd.Flags().Changed("threshold") {
				svc = docqa.New(docqa.Config{Threshold: threshold})
			}
			report, err := svc.Scan(cmd.Context(), root)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				printReadmeReport(cmd, report)
			}
			if !report.Valid() {
				return errors.New("README files have structural problems")
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&threshold, "threshold", docqa.DefaultThreshold, "near-duplicate similarity threshold")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full report as JSON")
	return cmd
}

func printReadmeReport(cmd *cobra.Command, report domain.ReadmeReport) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Scanned %d README file(s) under %s\n", len(report.Files), report.Root)
	for _, p := range report.Pairs {
		tag := ""
		if p.EncodingOnly {
			tag = " [encoding-only]"
		}
		fmt.Fprintf(out, "duplicate: %s ~ %s (%.2f)%s\n", p.A, p.B, p.Similarity, tag)
	}
	for _, f := range report.Findings {
		loc := f.Path
		if f.Line > 0 {
			loc = fmt.Sprintf("%s:%d", f.Path, f.Line)
		}
		fmt.Fprintf(out, "%s: %s: %s\n", loc, f.Kind, f.Message)
	}
	if report.Valid() {
		fmt.Fprintln(out, "markdown: valid")
	} else {
		fmt.Fprintln(out, "markdown: INVALID")
	}
}
