package cli

import (
	"fmt"

	"github.com/glorpus-work/foxfetch/internal/logger"
	"github.com/glorpus-work/foxfetch/pkg/download"
	"github.com/glorpus-work/foxfetch/pkg/fetcher"
	"github.com/spf13/cobra"
)

// NewDownloadCmd creates the download command.
func NewDownloadCmd() *cobra.Command {
	var (
		dest   string
		target targetFlags
	)

	cmd := &cobra.Command{
		Use:   "download",
		Short: "Download the latest nightly build",
		Long: `Download the latest nightly Firefox build for a platform, install it into
the destination directory and print the path of the executable.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDownload(cmd, dest, target)
		},
	}

	cmd.Flags().StringVarP(&dest, "dest", "d", "", "destination directory (default: config or current directory)")
	cmd.Flags().StringVar(&target.platform, "platform", "", "target platform: win32, darwin or linux (default: host)")
	cmd.Flags().StringVar(&target.arch, "arch", "", "target architecture: 64-bit or other (default: host)")

	return cmd
}

func runDownload(cmd *cobra.Command, dest string, target targetFlags) error {
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

	runner, err := loadHookRunner(cfg)
	if err != nil {
		return err
	}

	opts := fetcherOptions(cfg)
	opts.Runner = runner
	opts.Hooks = fetcher.Hooks{OnEvent: func(e fetcher.Event) {
		logger.Debug("Fetcher "+e.Phase, logger.Fields{"msg": e.Msg})
	}}

	f, err := fetcher.New(destination, opts)
	if err != nil {
		return err
	}

	logger.Info("Downloading nightly build", logger.Fields{
		"namespace":   f.Namespace(),
		"destination": destination,
	})

	var (
		progress download.ProgressFunc
		renderer *progressRenderer
	)
	if NoProgress == nil || !*NoProgress {
		renderer = newProgressRenderer(cmd.ErrOrStderr(), f.PlatformExt())
		progress = renderer.Update
	}

	path, err := f.Download(cmd.Context(), progress)
	if renderer != nil {
		renderer.Finish()
	}
	if err != nil {
		return err
	}

	logger.Success("Build installed", logger.Fields{"path": path})
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
