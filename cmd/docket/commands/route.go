package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"docket/internal/domain"
)

func routeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Model selection for legal tasks",
	}
	cmd.AddCommand(routeSelectCmd(), routeStatsCmd())
	return cmd
}

// route select <task>: print the model the router would use.
func routeSelectCmd() *cobra.Command {
	var (
		contextSize int
		priority    string
	)
	cmd := &cobra.Command{
		Use:   "select <task>",
		Short: "Select a model for a task type",
		Long: "Select a model for a task type. Task types: legal_research, document_generation,\n" +
			"legal_analysis, evidence_review, citation_checking.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model := appCtx.Router.SelectModel(
				domain.TaskType(args[0]),
				contextSize,
				domain.Priority(priority),
			)
			fmt.Fprintln(cmd.OutOrStdout(), model)
			return nil
		},
	}
	cmd.Flags().IntVar(&contextSize, "context", 0, "required context window in tokens")
	cmd.Flags().StringVar(&priority, "priority", string(domain.PriorityQuality), "quality, cost or speed")
	return cmd
}

func routeStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarise the routing performance log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := appCtx.Router.Stats(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total tasks:  %d\n", stats.TotalTasks)
			fmt.Fprintf(out, "Success rate: %.1f%%\n", stats.SuccessRate*100)
			fmt.Fprintf(out, "Avg duration: %s\n", stats.AvgDuration)
			models := make([]domain.ModelID, 0, len(stats.ModelUsage))
			for m := range stats.ModelUsage {
				models = append(models, m)
			}
			sort.Slice(models, func(i, j int) bool { return models[i] < models[j] })
			for _, m := range models {
				fmt.Fprintf(out, "  %-16s %d\n", m, stats.ModelUsage[m])
			}
			return nil
		},
	}
}
