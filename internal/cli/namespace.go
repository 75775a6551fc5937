package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/glorpus-work/foxfetch/pkg/fetcher"
	"github.com/spf13/cobra"
)

// NewNamespaceCmd creates the namespace command.
func NewNamespaceCmd() *cobra.Command {
	var (
		dest   string
		target targetFlags
	)

	cmd := &cobra.Command{
		Use:   "namespace",
		Short: "Show where a build would come from",
		Long:  "Print the build index namespace, artifact suffix and executable path without downloading",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runNamespace(cmd, dest, target)
		},
	}

	cmd.Flags().StringVarP(&dest, "dest", "d", "", "destination directory (default: config or current directory)")
	cmd.Flags().StringVar(&target.platform, "platform", "", "target platform: win32, darwin or linux (default: host)")
	cmd.Flags().StringVar(&target.arch, "arch", "", "target architecture: 64-bit or other (default: host)")

	return cmd
}

func runNamespace(cmd *cobra.Command, dest string, target targetFlags) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	target.apply(cfg)
	if dest != "" {
		cfg.Settings.Destination = dest
	}

	destination, err := cfg.GetDestination()
	if err != nil {
		return fmt.Errorf("failed to determine destination: %w", err)
	}

	f, err := fetcher.New(destination, fetcherOptions(cfg))
	if err != nil {
		return err
	}

	tabWriter := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, TabWidth, ' ', 0)
	_, _ = fmt.Fprintf(tabWriter, "platform\t%s\n", f.Platform())
	_, _ = fmt.Fprintf(tabWriter, "arch\t%s\n", f.Arch())
	_, _ = fmt.Fprintf(tabWriter, "namespace\t%s\n", f.Namespace())
	_, _ = fmt.Fprintf(tabWriter, "artifact\t%s\n", f.PlatformExt())
	_, _ = fmt.Fprintf(tabWriter, "executable\t%s\n", f.Path())
	return tabWriter.Flush()
}
