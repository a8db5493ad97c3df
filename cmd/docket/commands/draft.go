package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"docket/internal/domain"
)

func draftCmd() *cobra.Command {
	var session string
	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Draft evidence-cited paragraphs",
	}
	cmd.PersistentFlags().StringVar(&session, "session", "default", "drafting session name")
	cmd.AddCommand(
		draftParaCmd(&session),
		draftCheckCmd(&session),
		draftExhibitsCmd(&session),
		draftResetCmd(&session),
	)
	return cmd
}

// draft para <text...>: append a cited paragraph to the session and print it.
func draftParaCmd(session *string) *cobra.Command {
	var (
		ids    []string
		noCite bool
	)
	cmd := &cobra.Command{
		Use:   "para <text...>",
		Short: "Draft a paragraph citing evidence",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			evidenceIDs := make([]domain.EvidenceID, 0, len(ids))
			for _, id := range ids {
				evidenceIDs = append(evidenceIDs, domain.EvidenceID(strings.TrimSpace(id)))
			}
			out, err := appCtx.Drafting.DraftParagraph(
				domain.SessionName(*session),
				strings.Join(args, " "),
				evidenceIDs,
				!noCite,
			)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&ids, "evidence", nil, "evidence IDs to cite, e.g. lease,texts")
	cmd.Flags().BoolVar(&noCite, "no-cite", false, "allow a paragraph without citations")
	return cmd
}

// draft check <file>: list factual claims in file with no citation nearby.
func draftCheckCmd(session *string) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Find factual claims without a nearby citation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			// The scan runs as a citation-checking task so it is recorded in
			// the routing log like any other task.
			var claims []domain.UncitedClaim
			_, err = appCtx.Router.Execute(cmd.Context(), domain.CitationChecking,
				func(_ context.Context, _ domain.ModelID) (string, error) {
					found, err := appCtx.Drafting.ValidateDocument(domain.SessionName(*session), string(b))
					if err != nil {
						return "", err
					}
					claims = found
					return fmt.Sprintf("%d uncited claim(s)", len(found)), nil
				})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(claims) == 0 {
				fmt.Fprintln(out, "No uncited claims found.")
				return nil
			}
			for _, c := range claims {
				fmt.Fprintf(out, "offset %d [%s]: %s\n", c.Offset, c.Pattern, c.Text)
			}
			return fmt.Errorf("%d uncited claim(s)", len(claims))
		},
	}
}

func draftExhibitsCmd(session *string) *cobra.Command {
	return &cobra.Command{
		Use:   "exhibits",
		Short: "Print the LaTeX exhibit list for the evidence cited in a session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := appCtx.Drafting.ExhibitList(domain.SessionName(*session))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), list)
			return nil
		},
	}
}

func draftResetCmd(session *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Discard a drafting session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Drafting.ResetSession(domain.SessionName(*session)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Session %s reset.\n", *session)
			return nil
		},
	}
}
