package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:                   "completion [bash|zsh|fish|powershell]",
	Short:                 "Generate shell completions for inkstone",
	RunE:                  GetCompletion,
	Args:                  cobra.MaximumNArgs(1),
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	DisableFlagsInUseLine: true,
	// Completions never touch settings or the dataset.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

func GetCompletion(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}

	out := cmd.OutOrStdout()
	switch args[0] {
	case "bash":
		return rootCmd.GenBashCompletionV2(out, true)
	case "zsh":
		return rootCmd.GenZshCompletion(out)
	case "fish":
		return rootCmd.GenFishCompletion(out, true)
	case "powershell":
		return rootCmd.GenPowerShellCompletionWithDesc(out)
	default:
		return fmt.Errorf("unsupported shell: %s", args[0])
	}
}
