package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/viewalign/pkg/layout"
	"github.com/matzehuels/viewalign/pkg/pipeline"
	"github.com/matzehuels/viewalign/pkg/scene"
)

// alignFlags holds the flags of align and its shorthands.
type alignFlags struct {
	gap float64
	out outputFlags
}

func (f *alignFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.gap, "gap", 0, "minimum gap in millimetres (default from settings)")
	f.out.register(cmd)
}

// alignCommand creates the align command.
func (c *CLI) alignCommand() *cobra.Command {
	var (
		mode  string
		flags alignFlags
	)

	cmd := &cobra.Command{
		Use:   "align <scene.json>",
		Short: "Align, distribute or untangle the objects of a scene",
		Long: `Align computes a plan that lines up the objects of a scene.

Modes:
` + modeHelp(),
		Example: `  viewalign align sheet.json --mode left
  viewalign align sheet.json --mode distribute-h --gap 5 --apply
  viewalign align sheet.json -m untangle-v -o plan.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runAlign(cmd, args[0], mode, flags)
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "", "alignment mode (required)")
	_ = cmd.MarkFlagRequired("mode")
	_ = cmd.RegisterFlagCompletionFunc("mode", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return modeNames(), cobra.ShellCompDirectiveNoFileComp
	})
	flags.register(cmd)

	return cmd
}

// distributeCommand creates the distribute shorthand.
func (c *CLI) distributeCommand() *cobra.Command {
	return c.axisCommand("distribute", "Space objects evenly between the outermost two",
		layout.ModeDistributeH, layout.ModeDistributeV)
}

// untangleCommand creates the untangle shorthand.
func (c *CLI) untangleCommand() *cobra.Command {
	return c.axisCommand("untangle", "Push overlapping objects apart",
		layout.ModeUntangleH, layout.ModeUntangleV)
}

func (c *CLI) axisCommand(name, short string, horizontal, vertical layout.Mode) *cobra.Command {
	var (
		isVertical bool
		flags      alignFlags
	)

	cmd := &cobra.Command{
		Use:   name + " <scene.json>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := horizontal
			if isVertical {
				mode = vertical
			}
			return c.runAlign(cmd, args[0], mode.String(), flags)
		},
	}

	cmd.Flags().BoolVar(&isVertical, "vertical", false, "work along the up axis instead of the right axis")
	flags.register(cmd)

	return cmd
}

func (c *CLI) runAlign(cmd *cobra.Command, input, mode string, flags alignFlags) error {
	st, err := c.loadSettings()
	if err != nil {
		return err
	}
	gap := st.Align.MinGapMM
	if cmd.Flags().Changed("gap") {
		gap = flags.gap
	}

	opts := pipeline.Options{
		Mode:    mode,
		MinGap:  gap,
		Unit:    st.Align.Unit,
		Refresh: flags.out.refresh,
		Logger:  c.Logger,
	}
	return c.align(cmd.Context(), input, opts, flags.out)
}

func (c *CLI) align(ctx context.Context, input string, opts pipeline.Options, out outputFlags) error {
	s, err := scene.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load scene %s: %w", input, err)
	}

	runner, err := c.newRunner(out.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	res, err := runner.Align(ctx, s, opts)
	if err != nil {
		return fmt.Errorf("align %s: %w", opts.Mode, err)
	}
	return emit(s, input, res, out)
}

func modeNames() []string {
	var names []string
	for _, m := range layout.Modes() {
		names = append(names, m.String())
	}
	return names
}

func modeHelp() string {
	var b strings.Builder
	for _, m := range layout.Modes() {
		fmt.Fprintf(&b, "  %-14s %s\n", m.String(), m.Description())
	}
	return b.String()
}
