package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ezrec/isacore/pseudo"
)

func newPseudoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "pseudo NAME [OPERAND...]",
		Short: "Expand a pseudo-instruction",
		Long: "Expand every form of the pseudo-instruction NAME that takes the given\n" +
			"number of operands. Registers are given by number.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg, cat, err := opts.catalog()
			if err != nil {
				return
			}

			operands := make([]int64, len(args)-1)
			for n, arg := range args[1:] {
				operands[n], err = strconv.ParseInt(arg, 0, 64)
				if err != nil {
					return
				}
			}

			out := cmd.OutOrStdout()
			found := false
			for _, ins := range cat.MatchOperator(args[0]) {
				op, ok := ins.(*pseudo.Instruction)
				if !ok || op.OperandCount() != len(operands) {
					continue
				}

				var lines []string
				lines, err = op.Expand(cfg.Machine.CompactMemory, operands...)
				if err != nil {
					return
				}

				found = true
				fmt.Fprintf(out, "# %v\n", op.Syntax)
				for _, line := range lines {
					fmt.Fprintf(out, "\t%v\n", line)
				}
			}

			if !found {
				err = fmt.Errorf("%w: %v/%d", ErrNoForm, args[0], len(operands))
			}

			return
		},
	}
}
