// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command isacore decodes, lists and runs programs of the isacore
// instruction set.
package main

import (
	"errors"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/isacore/config"
	"github.com/ezrec/isacore/isa"
	"github.com/ezrec/isacore/machine"
)

// options are the persistent flags of every command.
type options struct {
	config  string
	verbose bool
	delayed bool
	compact bool
}

// load the configuration, with flags overriding the file.
func (opts *options) load() (cfg config.Config, err error) {
	cfg = config.Default()
	if opts.config != "" {
		cfg, err = config.Load(opts.config)
		if err != nil {
			return
		}
	}

	cfg.Verbose = cfg.Verbose || opts.verbose
	cfg.Machine.DelayedBranching = cfg.Machine.DelayedBranching || opts.delayed
	cfg.Machine.CompactMemory = cfg.Machine.CompactMemory || opts.compact

	return
}

// catalog loads the configuration and its instruction catalog.
func (opts *options) catalog() (cfg config.Config, cat *isa.Catalog, err error) {
	cfg, err = opts.load()
	if err != nil {
		return
	}

	cat, err = cfg.Catalog()
	return
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	var rootCmd = &cobra.Command{
		Use:           "isacore",
		Short:         "isacore instruction set simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.config, "config", "C", "", "TOML configuration file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose mode")
	flags.BoolVarP(&opts.delayed, "delayed", "d", false, "Enable delayed branching")
	flags.BoolVarP(&opts.compact, "compact", "c", false, "Use the compact memory layout")

	rootCmd.AddCommand(
		newDecodeCmd(opts),
		newListCmd(opts),
		newIndexCmd(opts),
		newPseudoCmd(opts),
		newRunCmd(opts),
	)

	return rootCmd
}

func main() {
	err := newRootCmd().Execute()

	var status machine.ExitStatus
	if errors.As(err, &status) {
		os.Exit(int(status))
	}
	if err != nil {
		log.Fatal(err)
	}
}
