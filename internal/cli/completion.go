package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a shell completion script for ` + appName + ` on stdout.

Load it for the current session:

  bash:        source <(` + appName + ` completion bash)
  zsh:         source <(` + appName + ` completion zsh)
  fish:        ` + appName + ` completion fish | source
  powershell:  ` + appName + ` completion powershell | Out-String | Invoke-Expression

To install permanently, redirect the output into your shell's completion
directory, e.g. ~/.config/fish/completions/` + appName + `.fish.

Mode names complete for align --mode and unit names for settings set-unit.`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}
