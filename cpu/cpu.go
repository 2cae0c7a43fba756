package cpu

import (
	"errors"
	"fmt"
	"log"

	"github.com/ezrec/isacore/fault"
	"github.com/ezrec/isacore/isa"
)

// PC_REGION_MASK keeps the region bits of the PC for absolute jumps.
const PC_REGION_MASK = uint32(0xF0000000)

// Statement is a decoded instruction ready for execution.
type Statement struct {
	Address    uint32          // Address the word was fetched from.
	Word       uint32          // Instruction word.
	Descriptor *isa.Descriptor // Decoded instruction.
	Operands   []int32         // Raw operand field values.
}

// Decode word, fetched from addr, into a statement.
func Decode(index *isa.Index, addr uint32, word uint32) (stmt Statement, err error) {
	desc := index.Find(word)
	if desc == nil {
		err = &fault.ErrFault{Address: addr, Word: word, Err: fault.ErrUnrecognized}
		return
	}

	stmt = Statement{
		Address:    addr,
		Word:       word,
		Descriptor: desc,
		Operands:   desc.Operands(word),
	}

	return
}

func (stmt Statement) syntax() string {
	if stmt.Descriptor == nil {
		return ""
	}
	return stmt.Descriptor.Syntax
}

func (stmt Statement) String() string {
	if stmt.Descriptor == nil {
		return fmt.Sprintf("%08x: %08x ?", stmt.Address, stmt.Word)
	}
	return fmt.Sprintf("%08x: %08x %v %v", stmt.Address, stmt.Word, stmt.Descriptor.Mnemonic(), stmt.Operands)
}

// Cpu executes decoded statements against its collaborators.
// The PC is expected to already point past the executing statement.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Registers RegisterFile
	Memory    Memory
	Syscalls  SyscallDispatcher
	Delayed   DelayedBranch
	Settings  Settings
}

// Execute a single statement.
// On a fault, no destination of the statement has been written.
func (cpu *Cpu) Execute(stmt Statement) (err error) {
	defer func() {
		if err != nil {
			err = &fault.ErrFault{
				Address:     stmt.Address,
				Word:        stmt.Word,
				Instruction: stmt.syntax(),
				Err:         err,
			}
		}
	}()

	if cpu.Verbose {
		log.Printf("%v", stmt)
	}

	if stmt.Descriptor == nil {
		err = fault.ErrUnrecognized
		return
	}

	sem := stmt.Descriptor.Semantic
	ops := stmt.Operands

	if len(ops) < operandCount(sem) {
		err = ErrOperands
		return
	}

	switch sem.Family {
	case isa.FAMILY_NOP:
		// pass
	case isa.FAMILY_ARITH, isa.FAMILY_COMPARE, isa.FAMILY_BITWISE, isa.FAMILY_SHIFT:
		var value int32
		value, err = cpu.doAlu(sem, ops)
		if err != nil {
			return
		}
		cpu.Registers.Update(int(ops[0]), value)
	case isa.FAMILY_MASK:
		err = cpu.doMask(sem, ops)
	case isa.FAMILY_MOVE:
		err = cpu.doMove(sem, ops)
	case isa.FAMILY_SET:
		err = cpu.doSet(sem, ops)
	case isa.FAMILY_LOAD:
		err = cpu.doLoad(sem, ops)
	case isa.FAMILY_STORE:
		err = cpu.doStore(sem, ops)
	case isa.FAMILY_BRANCH:
		cpu.doBranch(sem, ops)
	case isa.FAMILY_JUMP:
		err = cpu.doJump(sem, ops)
	case isa.FAMILY_SYSCALL:
		err = cpu.doSyscall(stmt)
	case isa.FAMILY_BREAK:
		err = fault.ErrBreakpoint
	default:
		err = errors.Join(ErrFamily, errors.New(sem.Family.String()))
	}
	if err != nil {
		return
	}

	if sem.Return {
		cpu.ProcessJump(uint32(cpu.Registers.Value(REG_RA)))
	}

	return
}

// operandCount is the number of operands a semantic reads.
func operandCount(sem isa.Semantic) int {
	switch sem.Family {
	case isa.FAMILY_ARITH, isa.FAMILY_COMPARE, isa.FAMILY_MASK, isa.FAMILY_BITWISE, isa.FAMILY_SHIFT:
		return 3
	case isa.FAMILY_MOVE:
		return 1
	case isa.FAMILY_SET, isa.FAMILY_BRANCH:
		return 2
	case isa.FAMILY_LOAD, isa.FAMILY_STORE:
		if sem.Indexed {
			return 4
		}
		return 3
	case isa.FAMILY_JUMP:
		if sem.Op == isa.OP_JR && sem.Link {
			return 2
		}
		return 1
	}
	return 0
}

// ProcessBranch moves the PC by a signed word displacement, through the
// delay slot when delayed branching is enabled.
func (cpu *Cpu) ProcessBranch(displacement int32) {
	target := cpu.Registers.ProgramCounter() + uint32(displacement<<2)
	cpu.ProcessJump(target)
}

// ProcessJump moves the PC to target, through the delay slot when
// delayed branching is enabled.
func (cpu *Cpu) ProcessJump(target uint32) {
	if cpu.Settings.DelayedBranchingEnabled() {
		cpu.Delayed.Register(target)
	} else {
		cpu.Registers.SetProgramCounter(target)
	}
}

// ProcessReturnAddress writes the return address into reg. With delayed
// branching the return skips the delay slot.
func (cpu *Cpu) ProcessReturnAddress(reg int) {
	addr := cpu.Registers.ProgramCounter()
	if cpu.Settings.DelayedBranchingEnabled() {
		addr += 4
	}
	cpu.Registers.Update(reg, int32(addr))
}
