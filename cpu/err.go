package cpu

import (
	"errors"

	"github.com/ezrec/isacore/translate"
)

var f = translate.From

var (
	ErrOperands  = errors.New(f("operand count"))
	ErrFamily    = errors.New(f("family unknown"))
	ErrOperation = errors.New(f("operation unknown"))
)
