package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"

	"github.com/ezrec/isacore/isa"
)

// indexTree renders the decode groups in search order.
func indexTree(index *isa.Index) treeprint.Tree {
	tree := treeprint.New()
	tree.SetValue("decode index")

	for grp := range index.Groups() {
		branch := tree.AddMetaBranch(fmt.Sprintf("%d bits", grp.Specificity()), fmt.Sprintf("mask %08x", grp.Mask()))
		for match, desc := range grp.All() {
			branch.AddMetaNode(fmt.Sprintf("%08x", match), desc.Syntax)
		}
	}

	return tree
}

func newIndexCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "index",
		Short: "Show the decode index groups in search order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			_, cat, err := opts.catalog()
			if err != nil {
				return
			}

			fmt.Fprint(cmd.OutOrStdout(), indexTree(cat.Index()).String())
			return
		},
	}
}
