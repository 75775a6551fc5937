package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/glorpus-work/foxfetch/pkg/buildinfo"
	"github.com/spf13/cobra"
)

// NewInfoCmd creates the info command.
func NewInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info DIR",
		Short: "Show the version of an installed build",
		Long:  "Read application.ini from a build installed in DIR and print its metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd, args[0])
		},
	}

	return cmd
}

func runInfo(cmd *cobra.Command, dir string) error {
	if _, err := loadConfig(); err != nil {
		return err
	}

	info, err := buildinfo.Read(dir)
	if err != nil {
		return err
	}

	tabWriter := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, TabWidth, ' ', 0)
	_, _ = fmt.Fprintf(tabWriter, "name\t%s\n", info.Name)
	_, _ = fmt.Fprintf(tabWriter, "version\t%s\n", info.Version.Original())
	_, _ = fmt.Fprintf(tabWriter, "nightly\t%t\n", info.IsNightly())
	_, _ = fmt.Fprintf(tabWriter, "build id\t%s\n", info.BuildID)
	_, _ = fmt.Fprintf(tabWriter, "repository\t%s\n", info.SourceRepository)
	_, _ = fmt.Fprintf(tabWriter, "revision\t%s\n", info.SourceStamp)
	return tabWriter.Flush()
}
