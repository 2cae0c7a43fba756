// Package pseudo loads the pseudo-instruction resource.
//
// Each non-comment line of the resource is a tab separated list:
//
//	syntax<TAB>template...[<TAB>COMPACT<TAB>template...][<TAB>#description]
//
// Lines starting with '#' or a space, and empty lines, are ignored.
// The template lines after COMPACT are used when memory is configured
// compactly.
package pseudo

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/isacore/fault"
	"github.com/ezrec/isacore/translate"
)

var f = translate.From

// COMPACT_MARKER introduces the compact template of a line.
const COMPACT_MARKER = "COMPACT"

// DEFAULT_SOURCE names the embedded resource.
const DEFAULT_SOURCE = "PseudoOps.txt"

//go:embed PseudoOps.txt
var _default_ops string

var (
	ErrTemplateMissing = errors.New(f("template missing"))
	ErrCompactMissing  = errors.New(f("compact template missing"))
	ErrCompactRepeated = errors.New(f("compact marker repeated"))
	ErrOperandMissing  = errors.New(f("operand missing"))
)

// ErrExpression is a template expression that did not evaluate to an integer.
type ErrExpression string

func (err ErrExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// Instruction is a pseudo-instruction: an example syntax that expands
// into one or more basic instructions.
type Instruction struct {
	Syntax      string   // Example syntax.
	Template    []string // Expansion template lines.
	Compact     []string // Compact memory template lines, if any.
	Description string   // One-line description.
}

func (ins *Instruction) Mnemonic() string {
	name, _, _ := strings.Cut(strings.TrimSpace(ins.Syntax), " ")
	return name
}

func (ins *Instruction) Example() string {
	return ins.Syntax
}

func (ins *Instruction) Summary() string {
	return ins.Description
}

// OperandCount is the number of operands in the example syntax.
func (ins *Instruction) OperandCount() (count int) {
	fields := strings.Fields(ins.Syntax)
	for _, field := range fields[min(1, len(fields)):] {
		if field != "=" && field != "," {
			count++
		}
	}
	return
}

// HasCompact is true if the instruction has a compact memory template.
func (ins *Instruction) HasCompact() bool {
	return len(ins.Compact) > 0
}

// Lines of the template to use for the memory configuration.
func (ins *Instruction) Lines(compact bool) []string {
	if compact && ins.HasCompact() {
		return ins.Compact
	}
	return ins.Template
}

// TemplateText is the template lines joined by newlines.
func (ins *Instruction) TemplateText(compact bool) string {
	return strings.Join(ins.Lines(compact), "\n")
}

var (
	_re_eval     = regexp.MustCompile(`\$\([^\$]*\)`)
	_re_register = regexp.MustCompile(`RG([0-9]+)`)
)

// Expand the template with operand values.
// Operands are numbered from 1 in syntax order: RGn becomes register $n,
// and $(expr) is evaluated with opN bound to operand N.
func (ins *Instruction) Expand(compact bool, operands ...int64) (lines []string, err error) {
	pred := starlark.StringDict{}
	for n, value := range operands {
		pred[fmt.Sprintf("op%d", n+1)] = starlark.MakeInt64(value)
	}

	for _, line := range ins.Lines(compact) {
		line = _re_eval.ReplaceAllStringFunc(line, func(str string) string {
			value, _err := parenEval(str[2:len(str)-1], pred)
			if _err != nil {
				err = _err
			}
			return strconv.FormatInt(value, 10)
		})
		if err != nil {
			return
		}

		line = _re_register.ReplaceAllStringFunc(line, func(str string) string {
			n, _ := strconv.Atoi(str[2:])
			if n < 1 || n > len(operands) {
				err = errors.Join(ErrOperandMissing, errors.New(str))
				return str
			}
			return fmt.Sprintf("$%d", operands[n-1])
		})
		if err != nil {
			return
		}

		lines = append(lines, line)
	}

	return
}

// parenEval evaluates a $(...) expression.
func parenEval(expr string, pred starlark.StringDict) (value int64, err error) {
	thread := starlark.Thread{Name: "pseudo"}
	opts := syntax.FileOptions{}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = errors.Join(ErrExpression(expr), err)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrExpression(expr)
		return
	}
	return
}

// Default is the embedded pseudo-instruction resource.
func Default() io.Reader {
	return strings.NewReader(_default_ops)
}

// Load pseudo-instructions from a resource.
// Source names the resource in errors.
func Load(source string, r io.Reader) (list []*Instruction, err error) {
	scanner := bufio.NewScanner(r)

	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()

		if len(line) == 0 || line[0] == '#' || line[0] == ' ' {
			continue
		}

		var ins *Instruction
		ins, err = parseLine(line)
		if err != nil {
			err = &fault.ErrConfig{Source: source, LineNo: lineno, Line: line, Err: errors.Join(fault.ErrResource, err)}
			return
		}

		list = append(list, ins)
	}

	err = scanner.Err()
	if err != nil {
		err = &fault.ErrConfig{Source: source, LineNo: lineno, Err: errors.Join(fault.ErrResource, err)}
		return
	}

	return
}

// parseLine parses one resource line.
func parseLine(line string) (ins *Instruction, err error) {
	var tokens []string
	for _, token := range strings.Split(line, "\t") {
		if len(token) > 0 {
			tokens = append(tokens, token)
		}
	}

	if len(tokens) == 0 {
		err = ErrTemplateMissing
		return
	}

	ins = &Instruction{Syntax: strings.TrimSpace(tokens[0])}

	compact := false
	for _, token := range tokens[1:] {
		switch {
		case ins.Description != "":
			// Anything after the description is ignored.
		case token[0] == '#':
			ins.Description = strings.TrimSpace(token[1:])
		case strings.HasPrefix(token, COMPACT_MARKER):
			if compact {
				err = ErrCompactRepeated
				return
			}
			compact = true
		case compact:
			ins.Compact = append(ins.Compact, token)
		default:
			ins.Template = append(ins.Template, token)
		}
	}

	if len(ins.Template) == 0 {
		err = ErrTemplateMissing
		return
	}

	if compact && len(ins.Compact) == 0 {
		err = ErrCompactMissing
		return
	}

	return
}
