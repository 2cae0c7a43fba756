package main

import (
	"errors"

	"github.com/ezrec/isacore/translate"
)

var f = translate.From

var ErrNoForm = errors.New(f("no pseudo-instruction form matches"))
