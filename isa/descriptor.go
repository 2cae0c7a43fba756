package isa

import (
	"strings"

	"github.com/ezrec/isacore/pattern"
)

// Instruction is an entry of the catalog, basic or pseudo.
type Instruction interface {
	Mnemonic() string // Operator name.
	Example() string  // Example assembly syntax.
	Summary() string  // One-line description.
}

// Mnemonic is the operator name of an example syntax.
func Mnemonic(syntax string) string {
	name, _, _ := strings.Cut(strings.TrimSpace(syntax), " ")
	return name
}

// Descriptor is a basic instruction: one binary encoding and its behaviour.
type Descriptor struct {
	Syntax      string
	Description string
	Format      Format
	pattern.Pattern
	Semantic Semantic
}

var _ Instruction = (*Descriptor)(nil)

// NewDescriptor compiles the template of a basic instruction.
func NewDescriptor(format Format, syntax string, template string, description string, semantic Semantic) (desc *Descriptor, err error) {
	pat, err := pattern.Compile(template)
	if err != nil {
		return
	}

	desc = &Descriptor{
		Syntax:      syntax,
		Description: description,
		Format:      format,
		Pattern:     pat,
		Semantic:    semantic,
	}

	return
}

func (desc *Descriptor) Mnemonic() string {
	return Mnemonic(desc.Syntax)
}

func (desc *Descriptor) Example() string {
	return desc.Syntax
}

func (desc *Descriptor) Summary() string {
	return desc.Description
}

// Operands of word, as raw unsigned field values in operand order.
func (desc *Descriptor) Operands(word uint32) []int32 {
	return desc.Pattern.Extract(word)
}

func (desc *Descriptor) String() string {
	return desc.Syntax
}
