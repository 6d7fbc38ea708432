package main

import (
	"github.com/forgottenswitch/cygpathint/internal/observe"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cygstat [flags] PATH...",
		Short: "Show where Cygwin paths lead on the native filesystem",
		Long: `cygstat prints, for each PATH, the Cygwin root in use, the native path
PATH translates to and, for Cygwin symlink files, their contents and destinations.

Flags may also be given as CYGSTAT_* environment variables
(e.g. CYGSTAT_MAX_HOPS) or as keys of the --config file.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}

			logger, sync, err := newLogger(cfg.Verbose)
			if err != nil {
				return err
			}
			defer sync()

			fsys := observe.New(afero.NewOsFs(), func(ev observe.Event) {
				logger.V(3).Info("fs access", "op", ev.Op, "name", ev.Name, "err", ev.Err)
			})

			s := &stater{
				out:      cmd.OutOrStdout(),
				resolver: cfg.resolver(fsys, logger),
				chain:    cfg.Chain,
			}
			return s.statAll(args)
		},
	}
	addFlags(cmd.Flags())
	return cmd
}
