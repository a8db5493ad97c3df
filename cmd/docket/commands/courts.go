package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"docket/internal/domain"
	"docket/internal/services/jurisdiction"
)

func courtsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "courts",
		Short: "Court profiles and compliance checks",
	}
	cmd.AddCommand(courtsListCmd(), courtsShowCmd(), courtsValidateCmd())
	return cmd
}

func courtsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List known courts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := appCtx.Courts.ListCourts()
			if appCtx.Remote != nil {
				var err error
				if ids, err = appCtx.Remote.ListCourts(cmd.Context()); err != nil {
					return err
				}
			}
			for _, id := range ids {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}
}

// courts show <id>: print a court profile as YAML.
func courtsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a court profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.CourtID(args[0])
			var profile domain.CourtProfile
			if appCtx.Remote != nil {
				p, err := appCtx.Remote.FetchCourt(cmd.Context(), id)
				if err != nil {
					return err
				}
				profile = p
			} else {
				p, ok := appCtx.Courts.GetCourt(id)
				if !ok {
					return fmt.Errorf("%w: %s", jurisdiction.ErrUnknownCourt, id)
				}
				profile = p
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(profile); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}

// courts validate <id> <file>: check a document against a court's rules.
func courtsValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <id> <file>",
		Short: "Validate a document against a court's formatting and filing rules",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := os.ReadFile(args[1])
			if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}
			report, err := appCtx.Checker.Validate(cmd.Context(), domain.CourtID(args[0]), string(text))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if report.Compliant {
				fmt.Fprintf(out, "%s: compliant\n", report.CourtID)
				return nil
			}
			for _, v := range report.Violations {
				fmt.Fprintf(out, "%s: %s\n", v.Rule, v.Message)
			}
			return fmt.Errorf("%s: %d violation(s)", report.CourtID, len(report.Violations))
		},
	}
}
