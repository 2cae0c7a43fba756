package isa

import (
	"github.com/ezrec/isacore/translate"
)

var f = translate.From
