package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	pathtracelog "github.com/katalvlaran/pathtrace/internal/log"
)

type cobraFuncE func(cmd *cobra.Command, args []string) error

// globalOptions are shared by every subcommand.
type globalOptions struct {
	logOpts pathtracelog.Options
	log     *zap.SugaredLogger
}

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCommand assembles the CLI. The logger is built once the flags are parsed.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{
		logOpts: pathtracelog.NewDefaultOptions(),
		log:     zap.NewNop().Sugar(),
	}

	cmd := &cobra.Command{
		Use:           "pathtrace",
		Short:         "Compute and trace single-source shortest paths on weighted graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.log = pathtracelog.NewWithSink(opts.logOpts.Debug, opts.logOpts.Format, zapcore.AddSync(cmd.ErrOrStderr())).Sugar()

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.log.Sync()
		},
	}
	opts.logOpts.AddFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		SolveCommand(opts),
		RandomCommand(opts),
	)

	return cmd
}

func handleErrors(opts *globalOptions, action cobraFuncE) cobraFuncE {
	return func(cmd *cobra.Command, args []string) error {
		err := action(cmd, args)
		if err != nil {
			opts.log.Errorw("operation failed", zap.Error(err))
		}

		return err
	}
}

func setFlagErrorFunc(cmd *cobra.Command) {
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		if err := c.Usage(); err != nil {
			return err
		}

		// ensure we exit with code 1 later on
		return err
	})
}
