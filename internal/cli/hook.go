package cli

import (
	"fmt"

	"github.com/glorpus-work/foxfetch/pkg/hooks"
	"github.com/spf13/cobra"
)

// NewHookCmd creates the hook command with subcommands.
func NewHookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hook",
		Short: "Work with download hooks",
	}

	cmd.AddCommand(newHookTemplateCmd(), newHookListCmd())
	return cmd
}

func newHookTemplateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "template TYPE",
		Short:     "Print a hook script template",
		Long:      "Print a commented Tengo script for post-download or download-failed hooks",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(hooks.PostDownload), string(hooks.DownloadFailed)},
		RunE: func(cmd *cobra.Command, args []string) error {
			hookType := hooks.HookType(args[0])
			for _, valid := range hooks.ValidHookTypes() {
				if hookType == valid {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), hooks.HookTemplate(hookType))
					return nil
				}
			}
			return hooks.ErrUnsupportedHookType(args[0])
		},
	}
}

func newHookListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the hooks that will run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			runner, err := loadHookRunner(cfg)
			if err != nil {
				return err
			}
			for _, hookType := range hooks.ValidHookTypes() {
				status := "none"
				if runner.HasScript(hookType) {
					status = "configured"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", hookType, status)
			}
			return nil
		},
	}
}
