package cli

import (
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pebblecal/pkg/holidays"
	"github.com/matzehuels/pebblecal/pkg/sink"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for pebblecal.

Besides commands and flags, the scripts complete built-in holiday codes for
--bold, --italic and "pebblecal holidays", and output formats for --format.

Bash:
  $ source <(pebblecal completion bash)

Zsh:
  $ pebblecal completion zsh > "${fpath[1]}/_pebblecal"

Fish:
  $ pebblecal completion fish > ~/.config/fish/completions/pebblecal.fish

PowerShell:
  PS> pebblecal completion powershell | Out-String | Invoke-Expression

Start a new shell for the completions to take effect.`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}

	return cmd
}

// completeHolidayCodes completes one entry of a comma-separated list of
// holiday sources with the built-in codes. TOML files fall back to the
// shell's file completion.
func completeHolidayCodes(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if holidays.IsFile(toComplete) || strings.ContainsRune(toComplete, os.PathSeparator) {
		return nil, cobra.ShellCompDirectiveDefault
	}
	return completeList(toComplete, holidays.Codes()), cobra.ShellCompDirectiveNoFileComp
}

// completeFormats completes one entry of a comma-separated --format list.
func completeFormats(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	names := make([]string, len(sink.Formats))
	for i, f := range sink.Formats {
		names[i] = string(f)
	}
	return completeList(toComplete, names), cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}

// completeList offers the values not yet listed in toComplete, each
// prefixed with the entries already typed.
func completeList(toComplete string, values []string) []string {
	done, last := "", toComplete
	if i := strings.LastIndex(toComplete, ","); i >= 0 {
		done, last = toComplete[:i+1], toComplete[i+1:]
	}
	typed := strings.Split(done, ",")

	var out []string
	for _, v := range values {
		if strings.HasPrefix(v, last) && !slices.Contains(typed, v) {
			out = append(out, done+v)
		}
	}
	return out
}
