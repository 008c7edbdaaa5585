package main

import (
	"fmt"
	"os"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/llehouerou/ripple/internal/app"
	"github.com/llehouerou/ripple/internal/config"
	"github.com/llehouerou/ripple/internal/errmsg"
	"github.com/llehouerou/ripple/internal/icons"
	"github.com/llehouerou/ripple/internal/logger"
	"github.com/llehouerou/ripple/internal/mpris"
	"github.com/llehouerou/ripple/internal/notify"
	"github.com/llehouerou/ripple/internal/playback"
	"github.com/llehouerou/ripple/internal/player"
	"github.com/llehouerou/ripple/internal/playlist"
	"github.com/llehouerou/ripple/internal/stderr"
	"github.com/llehouerou/ripple/internal/tags"
)

type flags struct {
	config   string
	logFile  string
	logLevel string
	volume   float64
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:           "ripple [files or directories...]",
		Short:         "A terminal music player for MP3, FLAC, WAV and Ogg Vorbis files",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args)
		},
	}
	cmd.Flags().StringVarP(&f.config, "config", "c", "", "config file (TOML)")
	cmd.Flags().StringVar(&f.logFile, "log-file", config.DefaultLogFile(), `log file path, "-" disables logging`)
	cmd.Flags().StringVar(&f.logLevel, "log-level", "info", "debug, info, warn or error")
	cmd.Flags().Float64Var(&f.volume, "volume", 0, "initial volume between 0 and 1")
	return cmd
}

func run(cmd *cobra.Command, f flags, args []string) error {
	log, closer, err := logger.Init(logger.Config{File: f.logFile, Level: f.logLevel})
	if err != nil {
		return errors.Wrap(err, "init logger")
	}
	defer closer.Close()

	if err := stderr.Start(log); err != nil {
		log.Warn().Err(err).Msg("stderr capture unavailable")
	}
	defer stderr.Stop()

	cfg, err := config.Load(f.config)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}
	if cmd.Flags().Changed("volume") {
		cfg.Volume = f.volume
		if err := cfg.Validate(); err != nil {
			return errors.Wrap(err, "--volume")
		}
	}
	icons.Init(cfg.Icons)

	pl := playlist.New()
	paths, err := playlist.Collect(args, player.Supported)
	if err != nil {
		log.Warn().Err(err).Msg("some arguments could not be read")
	}
	pl.Add(paths...)
	log.Info().Int("tracks", pl.Len()).Msg("starting")

	ctrl := playback.New(player.New(log), pl,
		playback.WithLogger(log),
		playback.WithResyncEvery(cfg.ResyncEvery),
		playback.WithVolume(cfg.Volume),
		playback.WithResolver(tags.NewResolver(tags.WithLogger(log))),
	)
	defer func() {
		if err := ctrl.Close(); err != nil {
			log.Warn().Err(err).Msg("close audio engine")
		}
	}()

	var program atomic.Pointer[tea.Program]
	opts := []app.Option{app.WithLogger(log)}

	if cfg.MPRIS {
		adapter := startMPRIS(ctrl, &program, log)
		if adapter != nil {
			defer adapter.Close()
			opts = append(opts, app.WithMPRIS(adapter))
		}
	}
	if cfg.Notifications {
		n, err := notify.New()
		if err != nil {
			log.Warn().Err(err).Msg(errmsg.Format(errmsg.OpNotifyStart, err))
		} else {
			opts = append(opts, app.WithNotifier(notify.NewTrackNotifier(n)))
		}
	}

	model := app.New(cfg, ctrl, pl, opts...)
	p := tea.NewProgram(model, tea.WithAltScreen())
	program.Store(p)

	if _, err := p.Run(); err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	return nil
}

// startMPRIS exposes the controller on the session bus. Commands are sent
// into the program once it exists.
func startMPRIS(ctrl *playback.Controller, program *atomic.Pointer[tea.Program], log zerolog.Logger) *mpris.Adapter {
	dispatch := func(c mpris.Command) {
		if p := program.Load(); p != nil {
			p.Send(c)
		}
	}
	adapter, err := mpris.New(ctrl.Status, dispatch, log)
	if err != nil {
		log.Warn().Err(err).Msg(errmsg.Format(errmsg.OpMPRISStart, err))
		return nil
	}
	return adapter
}
