package isa

import (
	"cmp"
	"errors"
	"iter"
	"maps"
	"math/bits"
	"slices"

	"github.com/ezrec/isacore/fault"
)

// Group is every descriptor sharing one decode mask.
type Group struct {
	mask  uint32
	match map[uint32]*Descriptor
}

// Mask shared by the group.
func (grp *Group) Mask() uint32 {
	return grp.mask
}

// Specificity is the number of fixed bits in the mask.
func (grp *Group) Specificity() int {
	return bits.OnesCount32(grp.mask)
}

// Len is the number of descriptors in the group.
func (grp *Group) Len() int {
	return len(grp.match)
}

// All descriptors of the group, by ascending match.
func (grp *Group) All() iter.Seq2[uint32, *Descriptor] {
	return func(yield func(uint32, *Descriptor) bool) {
		for _, match := range slices.Sorted(maps.Keys(grp.match)) {
			if !yield(match, grp.match[match]) {
				return
			}
		}
	}
}

// Index resolves instruction words to descriptors.
// It is immutable once built.
type Index struct {
	groups []*Group
}

// NewIndex builds a decode index over the descriptors.
func NewIndex(descs []*Descriptor) (index *Index, err error) {
	byMask := map[uint32]*Group{}

	for _, desc := range descs {
		grp, ok := byMask[desc.Mask]
		if !ok {
			grp = &Group{mask: desc.Mask, match: map[uint32]*Descriptor{}}
			byMask[desc.Mask] = grp
		}
		if other, ok := grp.match[desc.Match]; ok {
			err = &fault.ErrConfig{
				Source: "decode index",
				Err:    errors.Join(fault.ErrAmbiguous, errors.New(f("'%v' and '%v' share mask 0x%08x match 0x%08x", other.Syntax, desc.Syntax, desc.Mask, desc.Match))),
			}
			return
		}
		grp.match[desc.Match] = desc
	}

	index = &Index{
		groups: slices.Collect(maps.Values(byMask)),
	}

	slices.SortFunc(index.groups, func(a, b *Group) int {
		if c := cmp.Compare(b.Specificity(), a.Specificity()); c != 0 {
			return c
		}
		return cmp.Compare(a.mask, b.mask)
	})

	return
}

// Find the descriptor for word, or nil if none matches.
func (index *Index) Find(word uint32) *Descriptor {
	for _, grp := range index.groups {
		if desc, ok := grp.match[word&grp.mask]; ok {
			return desc
		}
	}
	return nil
}

// Groups in search order.
func (index *Index) Groups() iter.Seq[*Group] {
	return slices.Values(index.groups)
}
