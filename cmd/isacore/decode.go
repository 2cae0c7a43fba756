package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/ezrec/isacore/cpu"
)

// parseWord parses a hexadecimal instruction word.
func parseWord(text string) (word uint32, err error) {
	text = strings.ReplaceAll(strings.TrimPrefix(strings.ToLower(text), "0x"), "_", "")
	value, err := strconv.ParseUint(text, 16, 32)
	if err != nil {
		return
	}
	word = uint32(value)
	return
}

func newDecodeCmd(opts *options) *cobra.Command {
	var dump bool

	var decodeCmd = &cobra.Command{
		Use:   "decode WORD...",
		Short: "Decode hexadecimal instruction words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			_, cat, err := opts.catalog()
			if err != nil {
				return
			}

			out := cmd.OutOrStdout()
			var errs []error
			for _, arg := range args {
				word, perr := parseWord(arg)
				if perr != nil {
					errs = append(errs, fmt.Errorf("%v: %w", arg, perr))
					continue
				}

				stmt, derr := cpu.Decode(cat.Index(), 0, word)
				if derr != nil {
					fmt.Fprintf(out, "%08x ?\n", word)
					errs = append(errs, derr)
					continue
				}

				desc := stmt.Descriptor
				fmt.Fprintf(out, "%08x %-8v %v\t# %v\n", word, desc.Mnemonic(), stmt.Operands, desc.Syntax)
				if dump {
					spew.Fdump(out, desc.Pattern, desc.Semantic)
				}
			}

			return errors.Join(errs...)
		},
	}

	decodeCmd.Flags().BoolVar(&dump, "dump", false, "Dump the decoded pattern and semantics")

	return decodeCmd
}
