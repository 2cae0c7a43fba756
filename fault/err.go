// Package fault holds the error kinds raised while building the instruction
// catalog or executing a single instruction.
package fault

import (
	"errors"

	"github.com/ezrec/isacore/translate"
)

var f = translate.From

var (
	// Execution faults
	ErrArithmeticOverflow = errors.New(f("arithmetic overflow"))
	ErrAddress            = errors.New(f("address error"))
	ErrSyscall            = errors.New(f("invalid or unimplemented syscall service"))
	ErrBreakpoint         = errors.New(f("break instruction executed"))
	ErrUnrecognized       = errors.New(f("unrecognized instruction"))

	// Memory detail
	ErrMisaligned = errors.New(f("misaligned access"))
	ErrRange      = errors.New(f("address out of range"))

	// Catalog construction
	ErrConfiguration = errors.New(f("configuration error"))
	ErrTemplate      = errors.New(f("bit template invalid"))
	ErrAmbiguous     = errors.New(f("ambiguous encoding"))
	ErrResource      = errors.New(f("pseudo-instruction resource invalid"))
)

// ErrFault attaches the offending instruction to an execution fault.
type ErrFault struct {
	Address     uint32 // Address the instruction was fetched from.
	Word        uint32 // Binary encoding of the instruction.
	Instruction string // Example syntax of the instruction.
	Err         error
}

func (err *ErrFault) Error() string {
	return f("0x%08x: 0x%08x '%v' %v", err.Address, err.Word, err.Instruction, err.Err)
}

func (err *ErrFault) Unwrap() error {
	return err.Err
}

// ErrMemory is an address error raised by a memory collaborator.
type ErrMemory struct {
	Address uint32
	Width   int
	Err     error
}

func (err *ErrMemory) Error() string {
	return f("%v-byte access at 0x%08x: %v", err.Width, err.Address, err.Err)
}

func (err *ErrMemory) Unwrap() []error {
	return []error{ErrAddress, err.Err}
}

// ErrService is an unknown syscall service number.
type ErrService int32

func (err ErrService) Error() string {
	return f("syscall service %d: %v", int32(err), ErrSyscall)
}

func (err ErrService) Is(target error) bool {
	return target == ErrSyscall
}

// ErrConfig locates a configuration error in its source.
type ErrConfig struct {
	Source string
	LineNo int
	Line   string
	Err    error
}

func (err *ErrConfig) Error() string {
	if err.LineNo == 0 {
		return f("%v: %v", err.Source, err.Err)
	}
	return f("%v line %d '%v' %v", err.Source, err.LineNo, err.Line, err.Err)
}

func (err *ErrConfig) Unwrap() []error {
	return []error{ErrConfiguration, err.Err}
}
