package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mikey-austin/showcase/internal/adapters/config"
	"github.com/mikey-austin/showcase/internal/adapters/idgen"
	"github.com/mikey-austin/showcase/internal/adapters/logging"
	"github.com/mikey-austin/showcase/internal/adapters/output"
	"github.com/mikey-austin/showcase/internal/core"
)

type app struct {
	service core.Service
	printer output.Printer
	logger  *zap.Logger
}

func main() {
	root := newRootCommand(os.Stdout)
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	os.Exit(core.ExitCode(err))
}

func newRootCommand(stdout io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "showcase",
		Short:         "Variadic printing, dispatch and worker demos",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var (
		configPath string
		jsonOut    bool
		noColor    bool
		quiet      bool
		verbose    bool
		logFormat  string
		digits     int
	)

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file path")
	root.PersistentFlags().BoolVarP(&jsonOut, "json", "j", false, "output json")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable color")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "omit section headings")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (text|json)")
	root.PersistentFlags().IntVar(&digits, "digits", 0, "significant digits for floats (-1 for shortest)")

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return core.WrapError(core.ExitUsage, "invalid flags", err)
	})

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return core.WrapError(core.ExitConfig, "load config", err)
		}
		if verbose {
			cfg.LogLevel = "debug"
		}
		if logFormat != "" {
			cfg.LogFormat = logFormat
		}
		if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
			return core.UsageError("log format must be text|json, got %q", cfg.LogFormat)
		}
		if noColor {
			cfg.NoColor = true
		}
		if cmd.Flags().Changed("digits") {
			cfg.Printer.Digits = digits
		}

		logger := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
		logger.Debug("config resolved",
			zap.String("config", configPath),
			zap.String("log_level", cfg.LogLevel),
			zap.Int("digits", cfg.Printer.Digits),
			zap.Bool("no_color", cfg.NoColor),
		)

		service := core.Service{
			Logger: logger,
			IDGen:  idgen.Generator{},
			Config: coreConfig(cfg),
		}

		var printer output.Printer
		if jsonOut {
			printer = output.JSONPrinter{Writer: stdout}
		} else {
			printer = output.HumanPrinter{Writer: stdout, NoColor: cfg.NoColor, Quiet: quiet}
		}

		cmd.SetContext(context.WithValue(cmd.Context(), appKey{}, &app{
			service: service,
			printer: printer,
			logger:  logger,
		}))
		return nil
	}
	root.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if a := fromContext(cmd); a != nil {
			_ = a.logger.Sync()
		}
	}

	root.AddCommand(variadicCommand())
	root.AddCommand(printCommand())
	root.AddCommand(dispatchCommand())
	root.AddCommand(threadsCommand())
	root.AddCommand(allCommand())
	return root
}

type appKey struct{}

func fromContext(cmd *cobra.Command) *app {
	val := cmd.Context().Value(appKey{})
	if val == nil {
		return nil
	}
	return val.(*app)
}

func coreConfig(cfg config.Config) core.Config {
	return core.Config{
		Digits: cfg.Printer.Digits,
		Threads: core.ThreadsConfig{
			RecordID:   cfg.Threads.RecordID,
			RecordName: cfg.Threads.RecordName,
			Series:     cfg.Threads.Series,
			DoubleTake: cfg.Threads.DoubleTake,
			PowerTake:  cfg.Threads.PowerTake,
			ListTake:   cfg.Threads.ListTake,
		},
	}
}
