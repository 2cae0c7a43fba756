// Package pattern compiles 32-symbol bit templates into decode keys.
//
// A template lists the instruction word MSB first. The digits '0' and '1'
// are fixed bits; any letter marks a bit belonging to an operand field.
// Spaces are ignored.
package pattern

import (
	"errors"
	"strings"
	"unicode"

	"github.com/ezrec/isacore/fault"
	"github.com/ezrec/isacore/translate"
)

var f = translate.From

// WORD_BITS is the number of symbols in a template.
const WORD_BITS = 32

// OPERAND_ORDER lists field letters in operand order.
// Any other letter follows, by first appearance.
const OPERAND_ORDER = "fsta"

// Field is one operand field of a template.
type Field struct {
	Letter rune   // Template letter.
	Bits   []uint // Bit positions, most significant first.
}

// Width of the field in bits.
func (fld Field) Width() int {
	return len(fld.Bits)
}

// Pattern is a compiled bit template.
type Pattern struct {
	Template string  // Source template.
	Mask     uint32  // Bits fixed by the template.
	Match    uint32  // Bits fixed to one.
	Fields   []Field // Operand fields, in operand order.
}

// Compile a bit template.
func Compile(template string) (pat Pattern, err error) {
	pat.Template = template

	letters := map[rune]*Field{}
	var seen []rune

	bit := WORD_BITS
	for _, sym := range template {
		if sym == ' ' {
			continue
		}
		bit--
		if bit < 0 {
			continue
		}
		switch {
		case sym == '0':
			pat.Mask |= 1 << bit
		case sym == '1':
			pat.Mask |= 1 << bit
			pat.Match |= 1 << bit
		case unicode.IsLetter(sym):
			fld, ok := letters[sym]
			if !ok {
				fld = &Field{Letter: sym}
				letters[sym] = fld
				seen = append(seen, sym)
			}
			fld.Bits = append(fld.Bits, uint(bit))
		default:
			err = &fault.ErrConfig{Source: template, Err: errors.Join(fault.ErrTemplate, errors.New(f("symbol '%c' is not 0, 1 or a letter", sym)))}
			return
		}
	}

	if bit != 0 {
		err = &fault.ErrConfig{Source: template, Err: errors.Join(fault.ErrTemplate, errors.New(f("%d symbols, need %d", WORD_BITS-bit, WORD_BITS)))}
		return
	}

	for _, letter := range OPERAND_ORDER {
		if fld, ok := letters[letter]; ok {
			pat.Fields = append(pat.Fields, *fld)
		}
	}
	for _, letter := range seen {
		if !strings.ContainsRune(OPERAND_ORDER, letter) {
			pat.Fields = append(pat.Fields, *letters[letter])
		}
	}

	return
}

// MustCompile is like Compile, but panics on error.
func MustCompile(template string) Pattern {
	pat, err := Compile(template)
	if err != nil {
		panic(err)
	}
	return pat
}

// Matches is true if word carries the fixed bits of the pattern.
func (pat Pattern) Matches(word uint32) bool {
	return word&pat.Mask == pat.Match
}

// Extract the raw, unsigned value of each operand field from word.
func (pat Pattern) Extract(word uint32) (operands []int32) {
	operands = make([]int32, len(pat.Fields))
	for n, fld := range pat.Fields {
		var value uint32
		for _, bit := range fld.Bits {
			value = (value << 1) | ((word >> bit) & 1)
		}
		operands[n] = int32(value)
	}
	return
}

// Encode operands into the fixed bits of the pattern.
// Operand values are truncated to their field width.
func (pat Pattern) Encode(operands ...int32) (word uint32) {
	word = pat.Match
	for n, fld := range pat.Fields {
		if n >= len(operands) {
			break
		}
		value := uint32(operands[n])
		for i := len(fld.Bits) - 1; i >= 0; i-- {
			word |= (value & 1) << fld.Bits[i]
			value >>= 1
		}
	}
	return
}
