package isa

import (
	"errors"
	"io"
	"iter"
	"slices"
	"strings"

	"github.com/ezrec/isacore/fault"
	"github.com/ezrec/isacore/internal"
	"github.com/ezrec/isacore/pseudo"
)

// Catalog is the complete instruction set: basic instructions, the
// pseudo-instructions built on them, and the decode index.
// It is immutable once built, and safe for concurrent use.
type Catalog struct {
	basic  []*Descriptor
	pseudo []*pseudo.Instruction
	index  *Index
}

// Basic compiles the basic instruction table.
func Basic() (list []*Descriptor, err error) {
	list = make([]*Descriptor, 0, len(_basic_table))
	for _, entry := range _basic_table {
		var desc *Descriptor
		desc, err = NewDescriptor(entry.format, entry.syntax, entry.template, entry.description, entry.semantic)
		if err != nil {
			err = &fault.ErrConfig{Source: entry.syntax, Err: err}
			return
		}
		list = append(list, desc)
	}
	return
}

// NewCatalog builds the catalog, loading pseudo-instructions from resource.
func NewCatalog(source string, resource io.Reader) (cat *Catalog, err error) {
	basic, err := Basic()
	if err != nil {
		return
	}

	ops, err := pseudo.Load(source, resource)
	if err != nil {
		return
	}

	known := map[string]bool{}
	for _, desc := range basic {
		known[strings.ToLower(desc.Mnemonic())] = true
	}
	for _, ins := range ops {
		for _, line := range slices.Concat(ins.Template, ins.Compact) {
			name := strings.ToLower(Mnemonic(line))
			if !known[name] {
				err = &fault.ErrConfig{
					Source: source,
					Line:   ins.Syntax,
					Err:    errors.Join(fault.ErrResource, errors.New(f("'%v' is not a basic instruction", name))),
				}
				return
			}
		}
	}

	index, err := NewIndex(basic)
	if err != nil {
		return
	}

	cat = &Catalog{
		basic:  basic,
		pseudo: ops,
		index:  index,
	}

	return
}

// NewDefaultCatalog builds the catalog with the embedded pseudo-instructions.
func NewDefaultCatalog() (*Catalog, error) {
	return NewCatalog(pseudo.DEFAULT_SOURCE, pseudo.Default())
}

// Basic instructions, in table order.
func (cat *Catalog) Basic() iter.Seq[*Descriptor] {
	return slices.Values(cat.basic)
}

// Pseudo instructions, in resource order.
func (cat *Catalog) Pseudo() iter.Seq[*pseudo.Instruction] {
	return slices.Values(cat.pseudo)
}

// All instructions, basic first.
func (cat *Catalog) All() iter.Seq[Instruction] {
	basic := func(yield func(Instruction) bool) {
		for _, desc := range cat.basic {
			if !yield(desc) {
				return
			}
		}
	}
	ops := func(yield func(Instruction) bool) {
		for _, ins := range cat.pseudo {
			if !yield(ins) {
				return
			}
		}
	}
	return internal.IterSeqConcat(basic, ops)
}

// Index is the decode index of the basic instructions.
func (cat *Catalog) Index() *Index {
	return cat.index
}

// MatchOperator returns every instruction whose mnemonic is name,
// ignoring case.
func (cat *Catalog) MatchOperator(name string) []Instruction {
	return slices.Collect(internal.IterSeqFilter(cat.All(), func(ins Instruction) bool {
		return strings.EqualFold(ins.Mnemonic(), name)
	}))
}

// PrefixMatchOperator returns every instruction whose mnemonic starts
// with prefix, ignoring case.
func (cat *Catalog) PrefixMatchOperator(prefix string) []Instruction {
	prefix = strings.ToLower(prefix)
	return slices.Collect(internal.IterSeqFilter(cat.All(), func(ins Instruction) bool {
		return strings.HasPrefix(strings.ToLower(ins.Mnemonic()), prefix)
	}))
}

// FindByBinaryCode returns the basic instruction encoded by word, or nil.
func (cat *Catalog) FindByBinaryCode(word uint32) *Descriptor {
	return cat.index.Find(word)
}
