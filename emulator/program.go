package emulator

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"strconv"
	"strings"
)

// Line is one instruction word of a program image.
type Line struct {
	LineNo int    // Source line of the word.
	Word   uint32 // Instruction word.
}

// Program is a program image, loaded at Base.
type Program struct {
	Base  uint32
	Lines []Line
}

// Len is the number of words in the program.
func (prog *Program) Len() int {
	return len(prog.Lines)
}

// End is the address past the last word.
func (prog *Program) End() uint32 {
	return prog.Base + uint32(4*len(prog.Lines))
}

// Contains is true if addr is a word of the program.
func (prog *Program) Contains(addr uint32) bool {
	return addr >= prog.Base && addr < prog.End() && addr%4 == 0
}

// LineNo of the word at addr, or 0 if none.
func (prog *Program) LineNo(addr uint32) int {
	if !prog.Contains(addr) {
		return 0
	}
	return prog.Lines[(addr-prog.Base)/4].LineNo
}

// Words of the program, by address.
func (prog *Program) Words() iter.Seq2[uint32, uint32] {
	return func(yield func(addr uint32, word uint32) bool) {
		for n, line := range prog.Lines {
			if !yield(prog.Base+uint32(4*n), line.Word) {
				return
			}
		}
	}
}

// ReadProgram parses a text image: one hexadecimal word per line, with
// '#' or ';' starting a comment.
func ReadProgram(r io.Reader, base uint32) (prog *Program, err error) {
	prog = &Program{Base: base}

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if n := strings.IndexAny(line, "#;"); n >= 0 {
			line = line[:n]
		}
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		text := strings.ReplaceAll(strings.TrimPrefix(strings.ToLower(line), "0x"), "_", "")
		var word uint64
		word, err = strconv.ParseUint(text, 16, 32)
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: errors.Join(ErrImage, err)}
			return
		}

		prog.Lines = append(prog.Lines, Line{LineNo: lineno, Word: uint32(word)})
	}

	err = scanner.Err()
	if err != nil {
		err = &ErrRuntime{LineNo: lineno, Err: errors.Join(ErrImage, err)}
		return
	}

	return
}
