package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"docket/internal/crypto"
	"docket/internal/domain"
)

func evidenceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evidence",
		Short: "Manage evidence sources that drafts may cite",
	}
	cmd.AddCommand(evidenceAddCmd(), evidenceListCmd(), evidenceVerifyCmd())
	return cmd
}

// evidence add <id>: register or replace an evidence source.
func evidenceAddCmd() *cobra.Command {
	var (
		desc    string
		file    string
		pages   []int
		exhibit string
	)
	cmd := &cobra.Command{
		Use:   "add <id>",
		Short: "Register an evidence source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := appCtx.Evidence.RegisterEvidence(domain.EvidenceSource{
				ID:          domain.EvidenceID(args[0]),
				Description: desc,
				FilePath:    file,
				Pages:       pages,
				Exhibit:     exhibit,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered %s", src.ID)
			if src.Digest != "" {
				fmt.Fprintf(cmd.OutOrStdout(), " (digest %s)", crypto.Fingerprint(src.Digest))
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
	cmd.Flags().StringVar(&desc, "desc", "", "description of the evidence")
	cmd.Flags().StringVar(&file, "file", "", "path to the evidence file")
	cmd.Flags().IntSliceVar(&pages, "pages", nil, "cited pages, e.g. 1,2,3")
	cmd.Flags().StringVar(&exhibit, "exhibit", "", "exhibit label, e.g. A")
	_ = cmd.MarkFlagRequired("desc")
	return cmd
}

func evidenceListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered evidence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := appCtx.Evidence.ListEvidence()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tEXHIBIT\tPAGES\tDESCRIPTION")
			for _, src := range all {
				fmt.Fprintf(tw, "%s\t%s\t%v\t%s\n", src.ID, src.Exhibit, src.Pages, src.Description)
			}
			return tw.Flush()
		},
	}
}

// evidence verify <id>: re-hash the file and compare with the stored digest.
func evidenceVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <id>",
		Short: "Check an evidence file is unchanged since registration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := appCtx.Evidence.VerifyEvidence(domain.EvidenceID(args[0]))
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("evidence %s: file has changed since registration", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", args[0])
			return nil
		},
	}
}
