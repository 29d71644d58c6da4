package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/viewalign/pkg/settings"
)

// settingsCommand creates the settings management command.
func (c *CLI) settingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show and edit the settings file",
	}

	cmd.AddCommand(c.settingsShowCommand())
	cmd.AddCommand(c.settingsPathCommand())
	cmd.AddCommand(c.settingsSetGapCommand())
	cmd.AddCommand(c.settingsSetUnitCommand())
	cmd.AddCommand(c.settingsImportCommand())

	return cmd
}

func (c *CLI) settingsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.loadSettings()
			if err != nil {
				return err
			}
			path, _ := c.settingsPath()
			printKeyValue("File", path)
			printKeyValue("Gap", fmt.Sprintf("%g mm", st.Align.MinGapMM))
			printKeyValue("Unit", string(st.Align.Unit))
			return nil
		},
	}
}

func (c *CLI) settingsPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the settings file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.settingsPath()
			if err != nil {
				return fmt.Errorf("get settings path: %w", err)
			}
			fmt.Println(path)
			return nil
		},
	}
}

func (c *CLI) settingsSetGapCommand() *cobra.Command {
	var unit string

	cmd := &cobra.Command{
		Use:   "set-gap <length>",
		Short: "Set the minimum gap used by distribute and untangle",
		Example: `  viewalign settings set-gap 5
  viewalign settings set-gap 0.25 --unit in`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("parse gap %q: %w", args[0], err)
			}
			mm, err := settings.ToMM(v, settings.Unit(unit))
			if err != nil {
				return err
			}
			return c.updateSettings(func(st *settings.Settings) {
				st.Align.MinGapMM = mm
			}, fmt.Sprintf("Gap set to %g mm", mm))
		},
	}

	cmd.Flags().StringVar(&unit, "unit", string(settings.UnitMM), "unit of the given length")

	return cmd
}

func (c *CLI) settingsSetUnitCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "set-unit <unit>",
		Short:     "Set the unit assumed for scenes that do not declare one",
		Args:      cobra.ExactArgs(1),
		ValidArgs: unitNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := settings.ParseUnit(args[0])
			if err != nil {
				return err
			}
			return c.updateSettings(func(st *settings.Settings) {
				st.Align.Unit = u
			}, fmt.Sprintf("Unit set to %s", u))
		},
	}
}

func (c *CLI) settingsImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import-legacy <file>",
		Short: "Import the gap from a desktop add-in settings file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			legacy, err := settings.ImportLegacy(args[0])
			if err != nil {
				return fmt.Errorf("import %s: %w", args[0], err)
			}
			return c.updateSettings(func(st *settings.Settings) {
				st.Align.MinGapMM = legacy.Align.MinGapMM
			}, fmt.Sprintf("Imported gap %g mm", legacy.Align.MinGapMM))
		},
	}
}

// updateSettings loads the settings, applies fn and saves the result.
func (c *CLI) updateSettings(fn func(*settings.Settings), msg string) error {
	path, err := c.settingsPath()
	if err != nil {
		return fmt.Errorf("get settings path: %w", err)
	}
	st, err := settings.Load(path)
	if err != nil {
		return fmt.Errorf("load settings %s: %w", path, err)
	}
	fn(&st)
	if err := settings.Save(path, st); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	printSuccess("%s", msg)
	printFile(path)
	return nil
}

func unitNames() []string {
	var names []string
	for _, u := range settings.Units() {
		names = append(names, string(u))
	}
	return names
}
