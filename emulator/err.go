package emulator

import (
	"errors"

	"github.com/ezrec/isacore/translate"
)

var f = translate.From

var (
	ErrImage    = errors.New(f("image word invalid"))
	ErrTooLarge = errors.New(f("program does not fit in memory"))
	ErrLimit    = errors.New(f("tick limit reached"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo  int
	Address uint32
	Err     error
}

func (err *ErrRuntime) Error() string {
	if err.Address == 0 {
		return f("line %d %v", err.LineNo, err.Err)
	}
	return f("line %d (0x%08x) %v", err.LineNo, err.Address, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
