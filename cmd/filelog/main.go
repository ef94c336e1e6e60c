package main

import (
	"fmt"
	"os"

	"github.com/Station-Manager/filelog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "filelog",
		Short:         "Inspect and exercise per-application log files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newPathCmd(), newWriteCmd())
	return root
}

func newPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path <program-name>",
		Short: "Print the directory log files for a program are written to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := filelog.Resolve(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
}

type writeOptions struct {
	cfg         filelog.Config
	recordLevel filelog.Level
}

func newWriteCmd() *cobra.Command {
	opts := &writeOptions{
		cfg:         filelog.Config{Level: filelog.DefaultLevel},
		recordLevel: filelog.LevelInfo,
	}

	cmd := &cobra.Command{
		Use:   "write <program-name> <message>",
		Short: "Start a logging session, write one record and print the log file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.cfg.ProgramName = args[0]
			h, err := filelog.New(opts.cfg)
			if err != nil {
				return err
			}
			h.Emit(opts.recordLevel, args[1])
			if err = h.Close(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), h.Path())
			return nil
		},
	}

	bindWriteFlags(cmd.Flags(), opts)
	return cmd
}

func bindWriteFlags(fs *pflag.FlagSet, opts *writeOptions) {
	fs.Var(&opts.cfg.Level, "level", "minimum level written to the file (trace|debug|info|warn|error)")
	fs.Var(&opts.recordLevel, "record-level", "level of the record to write")
	fs.StringVar(&opts.cfg.DataDir, "data-dir", "", "absolute directory used instead of the platform application data directory")
	fs.BoolVar(&opts.cfg.ConsoleLogging, "console", false, "mirror records to stderr")
	fs.BoolVar(&opts.cfg.WithCaller, "caller", false, "include the caller in each record")
}
