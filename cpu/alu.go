package cpu

import (
	"errors"
	"math/bits"

	"github.com/ezrec/isacore/fault"
	"github.com/ezrec/isacore/isa"
)

// signExtend the low width bits of value.
func signExtend(value int32, width uint) int32 {
	return value << (32 - width) >> (32 - width)
}

func abs(value int32) int32 {
	if value < 0 {
		return -value
	}
	return value
}

// add with overflow: operands of one sign whose sum has the other.
func add(a int32, b int32) (sum int32, err error) {
	sum = a + b
	if (a >= 0) == (b >= 0) && (sum >= 0) != (a >= 0) {
		err = fault.ErrArithmeticOverflow
	}
	return
}

// sub with overflow: a - b.
func sub(a int32, b int32) (dif int32, err error) {
	dif = a - b
	if (a >= 0 && b < 0 && dif < 0) || (a < 0 && b >= 0 && dif >= 0) {
		err = fault.ErrArithmeticOverflow
	}
	return
}

// compare evaluates a comparison predicate.
func compare(op isa.Op, a int32, b int32) (ok bool, err error) {
	switch op {
	case isa.OP_EQ:
		ok = a == b
	case isa.OP_NE:
		ok = a != b
	case isa.OP_LT:
		ok = a < b
	case isa.OP_LTU:
		ok = abs(a) < abs(b)
	case isa.OP_GE:
		ok = a >= b
	case isa.OP_GEU:
		ok = abs(a) >= abs(b)
	default:
		err = errors.Join(ErrOperation, errors.New(op.String()))
	}
	return
}

// operands returns the first and second ALU inputs.
func (cpu *Cpu) operands(sem isa.Semantic, ops []int32) (a int32, b int32) {
	a = cpu.Registers.Value(int(ops[1]))
	switch sem.Source {
	case isa.SOURCE_REG:
		b = cpu.Registers.Value(int(ops[2]))
	case isa.SOURCE_IMM:
		b = ops[2]
	case isa.SOURCE_SEXT12:
		b = signExtend(ops[2], 12)
	}
	return
}

// doAlu computes the destination value of an arithmetic, compare,
// bitwise or shift instruction.
func (cpu *Cpu) doAlu(sem isa.Semantic, ops []int32) (value int32, err error) {
	a, b := cpu.operands(sem, ops)

	switch sem.Family {
	case isa.FAMILY_ARITH:
		switch sem.Op {
		case isa.OP_ADD:
			value, err = add(a, b)
		case isa.OP_SUBF:
			value, err = sub(b, a)
		case isa.OP_SUB:
			value, err = sub(a, b)
		default:
			err = errors.Join(ErrOperation, errors.New(sem.Op.String()))
		}
	case isa.FAMILY_COMPARE:
		var ok bool
		ok, err = compare(sem.Op, a, b)
		if ok {
			value = 1
		}
	case isa.FAMILY_BITWISE:
		switch sem.Op {
		case isa.OP_AND:
			value = a & b
		case isa.OP_OR:
			value = a | b
		case isa.OP_XOR:
			value = a ^ b
		case isa.OP_NOR:
			value = ^(a | b)
		default:
			err = errors.Join(ErrOperation, errors.New(sem.Op.String()))
		}
	case isa.FAMILY_SHIFT:
		amount := uint32(b)
		if sem.Source == isa.SOURCE_REG {
			amount &= 0x1f
		}
		switch sem.Op {
		case isa.OP_SHL:
			value = int32(uint32(a) << amount)
		case isa.OP_SHR:
			value = int32(uint32(a) >> amount)
		case isa.OP_SAR:
			value = a >> amount
		case isa.OP_ROR:
			value = int32(bits.RotateLeft32(uint32(a), -int(amount%32)))
		default:
			err = errors.Join(ErrOperation, errors.New(sem.Op.String()))
		}
	}

	return
}

// doMask clears or sets the destination depending on the predicate.
// When the rule does not apply the destination is not written at all.
func (cpu *Cpu) doMask(sem isa.Semantic, ops []int32) (err error) {
	a, b := cpu.operands(sem, ops)

	ok, err := compare(sem.Op, a, b)
	if err != nil {
		return
	}

	switch sem.Mask {
	case isa.MASK_AND:
		if !ok {
			cpu.Registers.Update(int(ops[0]), 0)
		}
	case isa.MASK_OR:
		if ok {
			cpu.Registers.Update(int(ops[0]), 1)
		}
	}

	return
}

func (cpu *Cpu) doMove(sem isa.Semantic, ops []int32) (err error) {
	value := cpu.Registers.Value(int(ops[0]))
	switch sem.Op {
	case isa.OP_MTHI:
		cpu.Registers.Update(REG_HI, value)
	case isa.OP_MTLO:
		cpu.Registers.Update(REG_LO, value)
	default:
		err = errors.Join(ErrOperation, errors.New(sem.Op.String()))
	}
	return
}

const imm21Mask = 0x1fffff

func (cpu *Cpu) doSet(sem isa.Semantic, ops []int32) (err error) {
	reg := int(ops[0])
	imm := uint32(ops[1]) & imm21Mask

	var value int32
	switch sem.Op {
	case isa.OP_SET0:
		value = int32(imm)
	case isa.OP_SET1:
		value = int32(imm | ^uint32(imm21Mask))
	case isa.OP_SSET:
		value = int32(uint32(cpu.Registers.Value(reg))<<21 | imm)
	case isa.OP_ADDR:
		offset := signExtend(int32(imm), 21) << 2
		value = int32(cpu.Registers.ProgramCounter() + uint32(offset))
	default:
		err = errors.Join(ErrOperation, errors.New(sem.Op.String()))
		return
	}

	cpu.Registers.Update(reg, value)
	return
}

// address of a memory access. Base and index registers, and the
// immediate or shift, follow the operand layout of loads or stores.
func (cpu *Cpu) address(sem isa.Semantic, base int32, offset int32, shift int32) uint32 {
	addr := uint32(cpu.Registers.Value(int(base)))
	if sem.Indexed {
		index := uint32(cpu.Registers.Value(int(offset)))
		return addr + index<<uint32(shift)
	}
	return addr + uint32(signExtend(offset, 12))
}

func (cpu *Cpu) doLoad(sem isa.Semantic, ops []int32) (err error) {
	var addr uint32
	if sem.Indexed {
		addr = cpu.address(sem, ops[1], ops[2], ops[3])
	} else {
		addr = cpu.address(sem, ops[1], ops[2], 0)
	}

	var value int32
	switch sem.Width {
	case 1:
		value, err = cpu.Memory.Byte(addr)
		if sem.Signed {
			value = signExtend(value, 8)
		} else {
			value &= 0xff
		}
	case 2:
		value, err = cpu.Memory.Half(addr)
		if sem.Signed {
			value = signExtend(value, 16)
		} else {
			value &= 0xffff
		}
	case 4:
		value, err = cpu.Memory.Word(addr)
	default:
		err = errors.Join(ErrOperation, errors.New(sem.Family.String()))
	}
	if err != nil {
		return
	}

	cpu.Registers.Update(int(ops[0]), value)
	return
}

func (cpu *Cpu) doStore(sem isa.Semantic, ops []int32) (err error) {
	var addr uint32
	var value int32
	if sem.Indexed {
		addr = cpu.address(sem, ops[0], ops[1], ops[2])
		value = cpu.Registers.Value(int(ops[3]))
	} else {
		addr = cpu.address(sem, ops[0], ops[1], 0)
		value = cpu.Registers.Value(int(ops[2]))
	}

	switch sem.Width {
	case 1:
		err = cpu.Memory.SetByte(addr, value&0xff)
	case 2:
		err = cpu.Memory.SetHalf(addr, value&0xffff)
	case 4:
		err = cpu.Memory.SetWord(addr, value)
	default:
		err = errors.Join(ErrOperation, errors.New(sem.Family.String()))
	}
	return
}

func (cpu *Cpu) doBranch(sem isa.Semantic, ops []int32) {
	if !sem.Cond.Test(cpu.Registers.Value(int(ops[0]))) {
		return
	}

	if sem.Link {
		cpu.ProcessReturnAddress(REG_RA)
	}
	cpu.ProcessBranch(signExtend(ops[1], 21))
}

func (cpu *Cpu) doJump(sem isa.Semantic, ops []int32) (err error) {
	switch sem.Op {
	case isa.OP_J:
		target := (cpu.Registers.ProgramCounter() & PC_REGION_MASK) | (uint32(ops[0]) << 2)
		if sem.Link {
			cpu.ProcessReturnAddress(REG_RA)
		}
		cpu.ProcessJump(target)
	case isa.OP_JR:
		reg := ops[0]
		if sem.Link {
			cpu.ProcessReturnAddress(int(ops[0]))
			reg = ops[1]
		}
		cpu.ProcessJump(uint32(cpu.Registers.Value(int(reg))) &^ 3)
	default:
		err = errors.Join(ErrOperation, errors.New(sem.Op.String()))
	}
	return
}

func (cpu *Cpu) doSyscall(stmt Statement) (err error) {
	service := cpu.Registers.Value(REG_V0)

	call, ok := cpu.Syscalls.FindSyscall(service)
	if !ok {
		err = fault.ErrService(service)
		return
	}

	return call.Simulate(&Context{Cpu: cpu, Statement: stmt})
}
