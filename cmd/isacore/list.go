package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/ezrec/isacore/isa"
)

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list [PREFIX]",
		Short: "List instructions, optionally by mnemonic prefix",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			_, cat, err := opts.catalog()
			if err != nil {
				return
			}

			var list []isa.Instruction
			if len(args) == 0 {
				list = slices.Collect(cat.All())
			} else {
				list = cat.PrefixMatchOperator(args[0])
			}

			out := cmd.OutOrStdout()
			for _, ins := range list {
				fmt.Fprintf(out, "%-32s %v\n", ins.Example(), ins.Summary())
			}

			return
		},
	}
}
