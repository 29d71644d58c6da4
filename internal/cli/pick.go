package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/viewalign/pkg/scene"
)

// pickCommand creates the interactive mode picker.
func (c *CLI) pickCommand() *cobra.Command {
	var flags alignFlags

	cmd := &cobra.Command{
		Use:   "pick <scene.json>",
		Short: "Choose an alignment mode interactively and run it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			s, err := scene.ReadFile(input)
			if err != nil {
				return fmt.Errorf("load scene %s: %w", input, err)
			}

			p := tea.NewProgram(NewModeListModel(len(s.Objects)), tea.WithContext(cmd.Context()))
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("run picker: %w", err)
			}
			m, ok := final.(ModeListModel)
			if !ok || m.Selected == nil {
				printInfo("No mode selected")
				return nil
			}

			printInfo("Mode: %s", StyleHighlight.Render(m.Selected.String()))
			return c.runAlign(cmd, input, m.Selected.String(), flags)
		},
	}

	flags.register(cmd)

	return cmd
}
