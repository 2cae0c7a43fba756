package machine

import (
	"fmt"
	"strings"

	"github.com/ezrec/isacore/cpu"
)

// REGISTER_COUNT is the number of addressable registers, HI and LO included.
const REGISTER_COUNT = 35

var _register_names = [REGISTER_COUNT]string{
	"zero", "at", "v0", "v1", "a0", "a1", "a2", "a3",
	"t0", "t1", "t2", "t3", "t4", "t5", "t6", "t7",
	"s0", "s1", "s2", "s3", "s4", "s5", "s6", "s7",
	"t8", "t9", "k0", "k1", "gp", "sp", "fp", "ra",
	"", "hi", "lo",
}

// RegisterName is the conventional name of reg.
func RegisterName(reg int) string {
	if reg < 0 || reg >= REGISTER_COUNT || _register_names[reg] == "" {
		return fmt.Sprintf("r%d", reg)
	}
	return _register_names[reg]
}

// Registers is the register file. Register 0 always reads as zero.
type Registers struct {
	Pc  uint32
	Reg [REGISTER_COUNT]int32
}

var _ cpu.RegisterFile = (*Registers)(nil)

func (rf *Registers) Value(reg int) int32 {
	if reg <= cpu.REG_ZERO || reg >= REGISTER_COUNT {
		return 0
	}
	return rf.Reg[reg]
}

func (rf *Registers) Update(reg int, value int32) {
	if reg <= cpu.REG_ZERO || reg >= REGISTER_COUNT {
		return
	}
	rf.Reg[reg] = value
}

func (rf *Registers) ProgramCounter() uint32 {
	return rf.Pc
}

func (rf *Registers) SetProgramCounter(addr uint32) {
	rf.Pc = addr
}

// Reset all registers to zero, and the PC to pc.
func (rf *Registers) Reset(pc uint32) {
	*rf = Registers{Pc: pc}
}

// String returns the register file as a table.
func (rf *Registers) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "pc   %08x\n", rf.Pc)
	for reg := 1; reg < REGISTER_COUNT; reg++ {
		if _register_names[reg] == "" {
			continue
		}
		fmt.Fprintf(&sb, "%-4s %08x", RegisterName(reg), uint32(rf.Reg[reg]))
		if reg%4 == 3 || reg == REGISTER_COUNT-1 {
			sb.WriteString("\n")
		} else {
			sb.WriteString("  ")
		}
	}
	return sb.String()
}
