// Copyright 2025 The go-pairwise Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/gcfg.v1"

	"github.com/ajroetker/go-pairwise/kernels/dispatch"
)

// app carries the configuration shared by every subcommand.
type app struct {
	cfg        Config
	configPath string
	noSimd     bool
	restore    func()
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: DefaultConfig()}

	root := &cobra.Command{
		Use:           "kernelbench",
		Short:         "Thread-count sweeps over the pairwise parallel kernels",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.loadConfigFile(cmd.Flags()); err != nil {
				return err
			}
			if a.noSimd {
				a.restore = dispatch.Force(dispatch.LevelScalar)
			}
			return a.cfg.CheckInit()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.restore != nil {
				a.restore()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "INI config file")
	pf.StringVar(&a.cfg.Sweep.Threads, "threads", a.cfg.Sweep.Threads, "thread counts, e.g. 1,2,4 or 1-12")
	pf.IntVar(&a.cfg.Sweep.Repeat, "repeat", a.cfg.Sweep.Repeat, "timed runs per thread count")
	pf.Uint64Var(&a.cfg.Sweep.Seed, "seed", a.cfg.Sweep.Seed, "seed for synthetic inputs")
	pf.BoolVar(&a.noSimd, "no-simd", false, "force the scalar dispatch level")

	root.AddCommand(
		newNbodyCmd(a),
		newAlignCmd(a),
		newHeatCmd(a),
		newCorrelateCmd(a),
		newInfoCmd(),
	)
	return root
}

// loadConfigFile reads the --config file over the defaults and then
// re-applies every flag set on the command line, so explicit flags win.
func (a *app) loadConfigFile(flags *pflag.FlagSet) error {
	if a.configPath == "" {
		return nil
	}

	changed := map[string]string{}
	flags.Visit(func(f *pflag.Flag) {
		changed[f.Name] = f.Value.String()
	})

	if err := gcfg.ReadFileInto(&a.cfg, a.configPath); err != nil {
		return fmt.Errorf("reading config %s: %w", a.configPath, err)
	}

	for name, val := range changed {
		if err := flags.Set(name, val); err != nil {
			return fmt.Errorf("re-applying --%s: %w", name, err)
		}
	}
	return nil
}
