package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/belenfg/restaurant-chatbot/config"
	"github.com/belenfg/restaurant-chatbot/internal/bootstrap"
	"github.com/belenfg/restaurant-chatbot/pkg/log"
)

var (
	Version   = "dev"
	CommitSHA = "none"
	BuildDate = "unknown"
)

type rootOptions struct {
	configPath string
	dataDir    string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "chatbot",
		Short:         "Restaurant assistant: chat in the terminal and inspect reservations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default: ./config/config.yaml)")
	root.PersistentFlags().StringVar(&opts.dataDir, "data-dir", "", "override storage.data_dir")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", log.LevelError, "log level")

	root.AddCommand(newChatCmd(opts))
	root.AddCommand(newReservationsCmd(opts))
	root.AddCommand(newCustomersCmd(opts))
	root.AddCommand(newVersionCmd())

	return root
}

func (o *rootOptions) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.LoadFile(o.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if o.dataDir != "" {
		cfg.Storage.DataDir = o.dataDir
	}
	return cfg, nil
}

func (o *rootOptions) logger(cfg *config.Config) log.Logger {
	return log.Init(log.ZapConfig{
		Level:        o.logLevel,
		Mode:         cfg.Logger.Mode,
		Encoding:     log.EncodingConsole,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
}

// openApp loads config and wires the application. The caller closes it.
func (o *rootOptions) openApp(ctx context.Context, withResponder bool) (*bootstrap.App, *config.Config, log.Logger, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	l := o.logger(cfg)

	app, err := bootstrap.New(ctx, cfg, l, bootstrap.Options{EnableResponder: withResponder})
	if err != nil {
		return nil, nil, nil, err
	}
	return app, cfg, l, nil
}
