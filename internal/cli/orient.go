package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/viewalign/pkg/pipeline"
	"github.com/matzehuels/viewalign/pkg/scene"
)

// orientCommand creates the orient command.
func (c *CLI) orientCommand() *cobra.Command {
	var (
		baseID  string
		targets []string
		out     outputFlags
	)

	cmd := &cobra.Command{
		Use:   "orient <scene.json>",
		Short: "Rotate model views to match the orientation of a base view",
		Long: `Orient rotates each target view in its own plane so that its model
orientation matches the base view. Targets whose orientation cannot be
matched are skipped and reported.

Without --targets every object except the base is a target.`,
		Example: `  viewalign orient sheet.json --base front
  viewalign orient sheet.json --base front --targets detail-a,detail-b --apply`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			s, err := scene.ReadFile(input)
			if err != nil {
				return fmt.Errorf("load scene %s: %w", input, err)
			}

			runner, err := c.newRunner(out.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			res, err := runner.Orient(cmd.Context(), s, pipeline.OrientOptions{
				BaseID:    baseID,
				TargetIDs: targets,
				Refresh:   out.refresh,
				Logger:    c.Logger,
			})
			if err != nil {
				return fmt.Errorf("orient to %s: %w", baseID, err)
			}
			return emit(s, input, res, out)
		},
	}

	cmd.Flags().StringVar(&baseID, "base", "", "id of the reference view (required)")
	cmd.Flags().StringSliceVar(&targets, "targets", nil, "comma-separated ids of the views to rotate")
	_ = cmd.MarkFlagRequired("base")
	out.register(cmd)

	return cmd
}

// tagsCommand creates the tags command.
func (c *CLI) tagsCommand() *cobra.Command {
	var (
		vertical bool
		out      outputFlags
	)

	cmd := &cobra.Command{
		Use:   "tags <scene.json>",
		Short: "Line up the heads of the tags in a scene",
		Long: `Tags moves every tag head so that its position along the right axis
matches the first tag's. With --vertical the up axis is used instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			s, err := scene.ReadFile(input)
			if err != nil {
				return fmt.Errorf("load scene %s: %w", input, err)
			}

			runner, err := c.newRunner(out.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			res, err := runner.AlignTags(cmd.Context(), s, pipeline.TagOptions{
				Vertical: vertical,
				Refresh:  out.refresh,
				Logger:   c.Logger,
			})
			if err != nil {
				return fmt.Errorf("align tags: %w", err)
			}
			return emit(s, input, res, out)
		},
	}

	cmd.Flags().BoolVar(&vertical, "vertical", false, "align along the up axis")
	out.register(cmd)

	return cmd
}
