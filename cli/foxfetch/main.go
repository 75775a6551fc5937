package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/glorpus-work/foxfetch/internal/cli"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
	noProgress bool
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cancel()
		os.Exit(1)
	}

	cancel()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "foxfetch",
		Short: "Download nightly Firefox builds",
		Long: `foxfetch downloads the latest nightly Firefox build for a platform from
the Firefox CI build index and installs it into a local directory:
- download: fetch, extract and print the executable path
- namespace: show which build would be fetched
- info: show the version of an installed build`,
		SilenceUsage: true,
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default: auto-detect)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().BoolVar(&noProgress, "no-progress", false, "do not draw a progress bar")

	cli.ConfigPath = &configPath
	cli.Verbose = &verbose
	cli.NoProgress = &noProgress

	cmd.AddCommand(
		cli.NewDownloadCmd(),
		cli.NewNamespaceCmd(),
		cli.NewInfoCmd(),
		cli.NewHookCmd(),
		cli.NewConfigCmd(),
		cli.NewVersionCmd(),
	)

	return cmd
}
