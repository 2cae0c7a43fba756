// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"io"

	"github.com/ezrec/isacore/cpu"
	"github.com/ezrec/isacore/isa"
	"github.com/ezrec/isacore/machine"
)

// Emulator state. Catalog + machine + loaded program.
type Emulator struct {
	Verbose          bool               // If set, enables verbose logging.
	*machine.Machine                    // Simulated processor state.
	Catalog          *isa.Catalog       // Instruction set.
	Program          *Program           // Currently loaded program.
	Status           machine.ExitStatus // Exit status, once exited.
	Calls            CallStack          // Linked calls not yet returned from.

	cpu   *cpu.Cpu
	ticks int
}

// NewEmulator creates a new emulator with size bytes of memory.
// A size of zero selects the default for the settings.
func NewEmulator(cat *isa.Catalog, settings machine.Settings, size uint32, out io.Writer) (emu *Emulator) {
	emu = &Emulator{
		Machine: machine.NewMachine(settings, size, out),
		Catalog: cat,
		Program: &Program{Base: settings.TextBase()},
	}
	emu.cpu = emu.Machine.Cpu()

	return
}

// Cpu is the execution engine of the emulator.
func (emu *Emulator) Cpu() *cpu.Cpu {
	return emu.cpu
}

// Load a program, and reset the machine to run it.
func (emu *Emulator) Load(prog *Program) (err error) {
	emu.Machine.Reset()
	emu.Status = 0
	emu.ticks = 0
	emu.Calls.Reset()

	for addr, word := range prog.Words() {
		err = emu.Memory.SetWord(addr, int32(word))
		if err != nil {
			err = errors.Join(ErrTooLarge, err)
			return
		}
	}

	emu.Program = prog
	emu.Registers.SetProgramCounter(prog.Base)

	return
}

// Ticks returns the number of instructions executed since the last load.
func (emu *Emulator) Ticks() int {
	return emu.ticks
}

// Pc returns the current program counter.
func (emu *Emulator) Pc() uint32 {
	return emu.Registers.ProgramCounter()
}

// LineNo returns the image line of the next instruction.
func (emu *Emulator) LineNo() int {
	return emu.Program.LineNo(emu.Pc())
}

// Statement decodes the next instruction.
func (emu *Emulator) Statement() (stmt cpu.Statement, err error) {
	pc := emu.Pc()

	word, err := emu.Memory.Word(pc)
	if err != nil {
		return
	}

	return cpu.Decode(emu.Catalog.Index(), pc, uint32(word))
}

// Tick executes a single instruction, then commits any delayed branch
// whose delay slot has executed. Done is set when the PC leaves the
// program, or the program exits.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.cpu.Verbose = emu.Verbose

	pc := emu.Pc()
	if !emu.Program.Contains(pc) {
		done = true
		return
	}

	lineno := emu.Program.LineNo(pc)
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Address: pc, Err: err}
		}
	}()

	stmt, err := emu.Statement()
	if err != nil {
		return
	}

	emu.Registers.SetProgramCounter(pc + 4)

	linked := emu.links(stmt)
	err = emu.cpu.Execute(stmt)
	emu.ticks++
	if errors.Is(err, machine.ErrExit) {
		errors.As(err, &emu.Status)
		err = nil
		done = true
		return
	}
	if err != nil {
		return
	}

	emu.trace(stmt, linked)

	if target, ok := emu.Delayed.Advance(); ok {
		emu.Registers.SetProgramCounter(target)
	}

	return
}

// links is true if stmt will write a link register when executed.
// Branch conditions are tested before execution, as a link may
// overwrite the tested register.
func (emu *Emulator) links(stmt cpu.Statement) bool {
	sem := stmt.Descriptor.Semantic
	switch {
	case !sem.Link:
		return false
	case sem.Family == isa.FAMILY_BRANCH:
		return len(stmt.Operands) > 0 && sem.Cond.Test(emu.Registers.Value(int(stmt.Operands[0])))
	default:
		return true
	}
}

// trace linked calls and returns of an executed statement.
func (emu *Emulator) trace(stmt cpu.Statement, linked bool) {
	sem := stmt.Descriptor.Semantic

	switch {
	case sem.Link:
		if !linked {
			return
		}
		link := cpu.REG_RA
		if sem.Family == isa.FAMILY_JUMP && sem.Op == isa.OP_JR {
			link = int(stmt.Operands[0])
		}
		emu.Calls.Push(Frame{Call: stmt.Address, Return: uint32(emu.Registers.Value(link))})
	case sem.Return,
		sem.Family == isa.FAMILY_JUMP && sem.Op == isa.OP_JR && stmt.Operands[0] == cpu.REG_RA:
		emu.Calls.Pop()
	}
}

// Run until done, an error, or limit instructions have executed.
// A limit of zero runs without limit.
func (emu *Emulator) Run(limit int) (err error) {
	for n := 0; limit == 0 || n < limit; n++ {
		var done bool
		done, err = emu.Tick()
		if done || err != nil {
			return
		}
	}

	return &ErrRuntime{LineNo: emu.LineNo(), Address: emu.Pc(), Err: ErrLimit}
}
