package cpu_test

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/isacore/cpu"
	"github.com/ezrec/isacore/fault"
	"github.com/ezrec/isacore/isa"
	"github.com/ezrec/isacore/machine"
)

const base = machine.TEXT_BASE

var catalog *isa.Catalog

func init() {
	var err error
	catalog, err = isa.NewDefaultCatalog()
	if err != nil {
		panic(err)
	}
}

type rig struct {
	mach *machine.Machine
	cpu  *cpu.Cpu
	out  bytes.Buffer
}

func newRig(delayed bool) (r *rig) {
	r = &rig{}
	r.mach = machine.NewMachine(machine.Settings{DelayedBranching: delayed}, 0x1000, &r.out)
	r.cpu = r.mach.Cpu()
	return
}

func find(syntax string) *isa.Descriptor {
	for desc := range catalog.Basic() {
		if desc.Syntax == syntax {
			return desc
		}
	}
	panic("no instruction " + syntax)
}

var errDecode = errors.New("word decodes to another instruction")

// exec encodes one instruction at the current PC, decodes it back through
// the index, and executes it.
func (r *rig) exec(syntax string, operands ...int32) error {
	desc := find(syntax)
	word := desc.Encode(operands...)
	pc := r.mach.Registers.ProgramCounter()

	stmt, err := cpu.Decode(catalog.Index(), pc, word)
	if err != nil {
		return err
	}
	if stmt.Descriptor != desc {
		return fmt.Errorf("%w: '%v' 0x%08x is '%v'", errDecode, syntax, word, stmt.Descriptor.Syntax)
	}

	r.mach.Registers.SetProgramCounter(pc + 4)
	return r.cpu.Execute(stmt)
}

type execCase struct {
	name   string
	syntax string
	ops    []int32
	regs   map[int]int32 // Initial registers.
	expect map[int]int32 // Expected registers.
	pc     uint32        // Expected PC, if not base+4.
	err    error
}

func runTable(t *testing.T, delayed bool, table []execCase) {
	assert := assert.New(t)

	for _, entry := range table {
		r := newRig(delayed)
		for reg, value := range entry.regs {
			r.mach.Registers.Update(reg, value)
		}

		err := r.exec(entry.syntax, entry.ops...)
		if entry.err != nil {
			assert.ErrorIs(err, entry.err, entry.name)
			var flt *fault.ErrFault
			if assert.True(errors.As(err, &flt), entry.name) {
				assert.Equal(uint32(base), flt.Address, entry.name)
				assert.Equal(entry.syntax, flt.Instruction, entry.name)
			}
		} else {
			assert.NoError(err, entry.name)
		}

		for reg, value := range entry.expect {
			assert.Equal(value, r.mach.Registers.Value(reg), "%v: r%d", entry.name, reg)
		}

		pc := entry.pc
		if pc == 0 {
			pc = base + 4
		}
		assert.Equal(pc, r.mach.Registers.ProgramCounter(), "%v: pc", entry.name)
	}
}

func TestArith(t *testing.T) {
	runTable(t, false, []execCase{
		{"add", "add $t1 = $t2 , $t3", []int32{9, 10, 11}, map[int]int32{10: 3, 11: 4}, map[int]int32{9: 7}, 0, nil},
		{"add_mixed", "add $t1 = $t2 , $t3", []int32{9, 10, 11}, map[int]int32{10: math.MaxInt32, 11: -1}, map[int]int32{9: math.MaxInt32 - 1}, 0, nil},
		{"add_ovf", "add $t1 = $t2 , $t3", []int32{9, 10, 11}, map[int]int32{9: 55, 10: math.MaxInt32, 11: 1}, map[int]int32{9: 55}, 0, fault.ErrArithmeticOverflow},
		{"add_ovf_neg", "add $t1 = $t2 , $t3", []int32{9, 10, 11}, map[int]int32{9: 55, 10: math.MinInt32, 11: -1}, map[int]int32{9: 55}, 0, fault.ErrArithmeticOverflow},
		{"add_imm", "add $t1 = $t2 , -100", []int32{9, 10, 0xf9c}, map[int]int32{10: 50}, map[int]int32{9: -50}, 0, nil},
		{"add_imm_pos", "add $t1 = $t2 , -100", []int32{9, 10, 0x7ff}, map[int]int32{10: 1}, map[int]int32{9: 2048}, 0, nil},
		{"subf", "subf $t1 = $t2 , $t3", []int32{9, 10, 11}, map[int]int32{10: 3, 11: 10}, map[int]int32{9: 7}, 0, nil},
		{"subf_ovf", "subf $t1 = $t2 , $t3", []int32{9, 10, 11}, map[int]int32{9: 5, 10: 1, 11: math.MinInt32}, map[int]int32{9: 5}, 0, fault.ErrArithmeticOverflow},
		{"subf_ovf_pos", "subf $t1 = $t2 , $t3", []int32{9, 10, 11}, map[int]int32{9: 5, 10: -1, 11: math.MaxInt32}, map[int]int32{9: 5}, 0, fault.ErrArithmeticOverflow},
		{"subf_imm", "subf $t1 = $t2 , -100", []int32{9, 10, 10}, map[int]int32{10: 3}, map[int]int32{9: 7}, 0, nil},
		{"subf_imm_neg", "subf $t1 = $t2 , -100", []int32{9, 10, 0xfff}, map[int]int32{10: 3}, map[int]int32{9: -4}, 0, nil},
		{"zero_dest", "add $t1 = $t2 , $t3", []int32{0, 10, 11}, map[int]int32{10: 3, 11: 4}, map[int]int32{0: 0}, 0, nil},
	})
}

func TestCompare(t *testing.T) {
	runTable(t, false, []execCase{
		{"eq_true", "eq $t1 = $t2 , $t3", []int32{9, 10, 11}, map[int]int32{9: 9, 10: 5, 11: 5}, map[int]int32{9: 1}, 0, nil},
		{"eq_false", "eq $t1 = $t2 , $t3", []int32{9, 10, 11}, map[int]int32{9: 9, 10: 5, 11: 6}, map[int]int32{9: 0}, 0, nil},
		{"eq_imm_raw", "eq $t1 = $t2 , 100", []int32{9, 10, 0xfff}, map[int]int32{10: -1}, map[int]int32{9: 0}, 0, nil},
		{"eq_imm", "eq $t1 = $t2 , 100", []int32{9, 10, 0xfff}, map[int]int32{10: 0xfff}, map[int]int32{9: 1}, 0, nil},
		{"ne_equal", "ne $t1 = $t2 , $t3", []int32{9, 10, 11}, map[int]int32{10: 5, 11: 5}, map[int]int32{9: 0}, 0, nil},
		{"ne_differ", "ne $t1 = $t2 , $t3", []int32{9, 10, 11}, map[int]int32{10: 5, 11: 6}, map[int]int32{9: 1}, 0, nil},
		{"ne_imm", "ne $t1 = $t2 , 100", []int32{9, 10, 100}, map[int]int32{10: 100}, map[int]int32{9: 0}, 0, nil},
		{"lt", "lt $t1 = $t2 , $t3", []int32{9, 10, 11}, map[int]int32{10: -1, 11: 0}, map[int]int32{9: 1}, 0, nil},
		{"lt_imm", "lt $t1 = $t2 , 100", []int32{9, 10, 0xfff}, map[int]int32{10: 4000}, map[int]int32{9: 1}, 0, nil},
		{"ltu", "ltu $t1 = $t2 , $t3", []int32{9, 10, 11}, map[int]int32{10: -5, 11: 3}, map[int]int32{9: 0}, 0, nil},
		{"ltu_min", "ltu $t1 = $t2 , $t3", []int32{9, 10, 11}, map[int]int32{10: math.MinInt32, 11: 1}, map[int]int32{9: 1}, 0, nil},
		{"ge", "ge $t1 = $t2 , $t3", []int32{9, 10, 11}, map[int]int32{10: 3, 11: 3}, map[int]int32{9: 1}, 0, nil},
		{"ge_imm_raw", "ge $t1 = $t2 , 100", []int32{9, 10, 0xfff}, map[int]int32{9: 9, 10: -1}, map[int]int32{9: 0}, 0, nil},
		{"geu", "geu $t1 = $t2 , $t3", []int32{9, 10, 11}, map[int]int32{10: -5, 11: 3}, map[int]int32{9: 1}, 0, nil},
	})
}

func TestMask(t *testing.T) {
	runTable(t, false, []execCase{
		{"and_eq_false", "and_eq $t1 = $t2 , $t3", []int32{9, 10, 11}, map[int]int32{9: 42, 10: 1, 11: 2}, map[int]int32{9: 0}, 0, nil},
		{"and_eq_true", "and_eq $t1 = $t2 , $t3", []int32{9, 10, 11}, map[int]int32{9: 42, 10: 2, 11: 2}, map[int]int32{9: 42}, 0, nil},
		{"or_lt_true", "or_lt $t1 = $t2 , $t3", []int32{9, 10, 11}, map[int]int32{9: 42, 10: 1, 11: 2}, map[int]int32{9: 1}, 0, nil},
		{"or_lt_false", "or_lt $t1 = $t2 , $t3", []int32{9, 10, 11}, map[int]int32{9: 42, 10: 2, 11: 1}, map[int]int32{9: 42}, 0, nil},
		{"and_ne_imm", "and_ne $t1 = $t2 , 100", []int32{9, 10, 7}, map[int]int32{9: 42, 10: 7}, map[int]int32{9: 0}, 0, nil},
		{"or_eq_imm", "or_eq $t1 = $t2 , 100", []int32{9, 10, 7}, map[int]int32{9: 42, 10: 7}, map[int]int32{9: 1}, 0, nil},
		{"and_ge", "and_ge $t1 = $t2 , $t3", []int32{9, 10, 11}, map[int]int32{9: 42, 10: 1, 11: 2}, map[int]int32{9: 0}, 0, nil},
		{"and_ltu", "and_ltu $t1 = $t2 , $t3", []int32{9, 10, 11}, map[int]int32{9: 42, 10: -1, 11: 2}, map[int]int32{9: 42}, 0, nil},
		{"or_geu", "or_geu $t1 = $t2 , $t3", []int32{9, 10, 11}, map[int]int32{9: 42, 10: -5, 11: 3}, map[int]int32{9: 1}, 0, nil},
		{"and_geu", "and_geu $t1 = $t2 , $t3", []int32{9, 10, 11}, map[int]int32{9: 42, 10: 1, 11: -3}, map[int]int32{9: 0}, 0, nil},
	})
}

func TestBitwise(t *testing.T) {
	runTable(t, false, []execCase{
		{"and", "and $t1 = $t2 , $t3", []int32{9, 10, 11}, map[int]int32{10: 0xff, 11: 0x0f0}, map[int]int32{9: 0xf0}, 0, nil},
		{"and_imm", "and $t1 = $t2 , 100", []int32{9, 10, 0xfff}, map[int]int32{10: -1}, map[int]int32{9: 0xfff}, 0, nil},
		{"or", "or $t1 = $t2 , $t3", []int32{9, 10, 11}, map[int]int32{10: 0xf0, 11: 0x0f}, map[int]int32{9: 0xff}, 0, nil},
		{"or_imm", "or $t1 = $t2 , 100", []int32{9, 10, 0x800}, map[int]int32{10: 1}, map[int]int32{9: 0x801}, 0, nil},
		{"xor", "xor $t1 = $t2 , $t3", []int32{9, 10, 11}, map[int]int32{10: 0xff, 11: 0x0f}, map[int]int32{9: 0xf0}, 0, nil},
		{"xor_imm", "xor $t1 = $t2 , 100", []int32{9, 10, 0xfff}, map[int]int32{10: -1}, map[int]int32{9: ^int32(0xfff)}, 0, nil},
		{"nor", "nor $t1 = $t2 , $t3", []int32{9, 10, 11}, map[int]int32{10: 0, 11: 0}, map[int]int32{9: -1}, 0, nil},
		{"nor_imm", "nor $t1 = $t2 , 100", []int32{9, 10, 0xf}, map[int]int32{10: 0xf0}, map[int]int32{9: ^int32(0xff)}, 0, nil},
	})
}

func TestShift(t *testing.T) {
	runTable(t, false, []execCase{
		{"shl_reg_masked", "shl $t1 = $t2 , $t3", []int32{9, 10, 11}, map[int]int32{10: 1, 11: 33}, map[int]int32{9: 2}, 0, nil},
		{"shl_imm", "shl $t1 = $t2 , 10", []int32{9, 10, 4}, map[int]int32{10: 1}, map[int]int32{9: 16}, 0, nil},
		{"shl_imm_unmasked", "shl $t1 = $t2 , 10", []int32{9, 10, 33}, map[int]int32{9: 7, 10: 1}, map[int]int32{9: 0}, 0, nil},
		{"shr_reg", "shr $t1 = $t2 , $t3", []int32{9, 10, 11}, map[int]int32{10: -1, 11: 28}, map[int]int32{9: 0xf}, 0, nil},
		{"shr_imm_unmasked", "shr $t1 = $t2 , 100", []int32{9, 10, 32}, map[int]int32{10: -1}, map[int]int32{9: 0}, 0, nil},
		{"sar_reg", "sar $t1 = $t2 , $t3", []int32{9, 10, 11}, map[int]int32{10: -8, 11: 33}, map[int]int32{9: -4}, 0, nil},
		{"sar_imm_unmasked_neg", "sar $t1 = $t2 , 10", []int32{9, 10, 40}, map[int]int32{10: -8}, map[int]int32{9: -1}, 0, nil},
		{"sar_imm_unmasked_pos", "sar $t1 = $t2 , 10", []int32{9, 10, 40}, map[int]int32{9: 7, 10: 8}, map[int]int32{9: 0}, 0, nil},
		{"ror_reg", "ror $t1 = $t2 , $t3", []int32{9, 10, 11}, map[int]int32{10: 1, 11: 1}, map[int]int32{9: math.MinInt32}, 0, nil},
		{"ror_imm", "ror $t1 = $t2 , 100", []int32{9, 10, 33}, map[int]int32{10: 1}, map[int]int32{9: math.MinInt32}, 0, nil},
		{"ror_imm_full", "ror $t1 = $t2 , 100", []int32{9, 10, 8}, map[int]int32{10: 0x12345678}, map[int]int32{9: 0x78123456}, 0, nil},
		{"srl", "srl $t1 = $t2 , 10", []int32{9, 10, 4}, map[int]int32{10: 0x80}, map[int]int32{9: 8}, 0, nil},
	})
}

func TestMoveSet(t *testing.T) {
	runTable(t, false, []execCase{
		{"mthi", "mthi $t1", []int32{9}, map[int]int32{9: 77}, map[int]int32{cpu.REG_HI: 77, cpu.REG_LO: 0}, 0, nil},
		{"mtlo", "mtlo $t1", []int32{9}, map[int]int32{9: 77}, map[int]int32{cpu.REG_LO: 77, cpu.REG_HI: 0}, 0, nil},
		{"set0", "set0 $t1 = 100", []int32{9, 0x1fff9c}, nil, map[int]int32{9: 0x1fff9c}, 0, nil},
		{"set1_neg", "set1 $t1 = -100", []int32{9, 0x1fff9c}, nil, map[int]int32{9: -100}, 0, nil},
		{"set1_pos", "set1 $t1 = -100", []int32{9, 100}, nil, map[int]int32{9: int32(-0x200000 + 100)}, 0, nil},
		{"sset", "sset $t1 = -100", []int32{9, 5}, map[int]int32{9: 1}, map[int]int32{9: 1<<21 | 5}, 0, nil},
		{"sset_pair", "sset $t1 = -100", []int32{9, 0x145678}, map[int]int32{9: 0x91}, map[int]int32{9: 0x12345678}, 0, nil},
		{"addr_back", "addr $t1 = target", []int32{9, 0x1ffffe}, nil, map[int]int32{9: base - 4}, 0, nil},
		{"addr_fwd", "addr $t1 = target", []int32{9, 3}, nil, map[int]int32{9: base + 4 + 12}, 0, nil},
	})
}

func TestMemory(t *testing.T) {
	assert := assert.New(t)

	r := newRig(false)
	regs := &r.mach.Registers
	regs.Update(10, base+0x100)
	regs.Update(11, 0x12345678)

	// Immediate forms: base + signed 12-bit offset.
	assert.NoError(r.exec("sw $t1 , -100 = $t2", 10, 4, 11))
	assert.NoError(r.exec("lw $t1 = $t2 -100", 9, 10, 4))
	assert.Equal(int32(0x12345678), regs.Value(9))

	regs.Update(12, base+0x110)
	assert.NoError(r.exec("lw $t1 = $t2 -100", 9, 12, 0xff4))
	assert.Equal(int32(0x12345678), regs.Value(9))

	// Sub-word stores only write their width.
	regs.Update(11, 0x7f80f0)
	assert.NoError(r.exec("sb $t1 , -100 = $t2", 10, 0, 11))
	assert.NoError(r.exec("lw $t1 = $t2 -100", 9, 10, 0))
	assert.Equal(int32(0xf0), regs.Value(9))
	assert.NoError(r.exec("lb $t1 = $t2 -100", 9, 10, 0))
	assert.Equal(int32(-16), regs.Value(9))
	assert.NoError(r.exec("lbu $t1 = $t2 -100", 9, 10, 0))
	assert.Equal(int32(0xf0), regs.Value(9))

	regs.Update(11, 0x18001)
	assert.NoError(r.exec("sh $t1 , -100 = $t2", 10, 8, 11))
	assert.NoError(r.exec("lh $t1 = $t2 -100", 9, 10, 8))
	assert.Equal(int32(-32767), regs.Value(9))
	assert.NoError(r.exec("lhu $t1 = $t2 -100", 9, 10, 8))
	assert.Equal(int32(0x8001), regs.Value(9))
	assert.NoError(r.exec("lw $t1 = $t2 -100", 9, 10, 8))
	assert.Equal(int32(0x8001), regs.Value(9))

	// Indexed forms: base + (index << shift).
	regs.Update(13, 3)
	regs.Update(14, -2)
	assert.NoError(r.exec("sw $t1, $t2, 1 = $t3", 10, 13, 2, 14))
	assert.NoError(r.exec("lw $t1 = $t2 -100", 9, 10, 12))
	assert.Equal(int32(-2), regs.Value(9))
	assert.NoError(r.exec("lw $t1 = $t2 , $t3 , 1", 15, 10, 13, 2))
	assert.Equal(int32(-2), regs.Value(15))
	assert.NoError(r.exec("lhu $t1 = $t2 , $t3 , 1", 15, 10, 13, 2))
	assert.Equal(int32(0xfffe), regs.Value(15))
	assert.NoError(r.exec("sb $t1, $t2, 1 = $t3", 10, 13, 0, 14))
	assert.NoError(r.exec("lbu $t1 = $t2 , $t3 , 1", 15, 10, 13, 0))
	assert.Equal(int32(0xfe), regs.Value(15))
	assert.NoError(r.exec("lb $t1 = $t2 , $t3 , 1", 15, 10, 13, 0))
	assert.Equal(int32(-2), regs.Value(15))
	assert.NoError(r.exec("sh $t1, $t2, 1 = $t3", 10, 13, 1, 13))
	assert.NoError(r.exec("lh $t1 = $t2 , $t3 , 1", 15, 10, 13, 1))
	assert.Equal(int32(3), regs.Value(15))
}

func TestMemoryFault(t *testing.T) {
	runTable(t, false, []execCase{
		{"lw_misaligned", "lw $t1 = $t2 -100", []int32{9, 10, 1}, map[int]int32{9: 5, 10: base + 0x100}, map[int]int32{9: 5}, 0, fault.ErrMisaligned},
		{"lh_misaligned", "lh $t1 = $t2 -100", []int32{9, 10, 3}, map[int]int32{9: 5, 10: base + 0x100}, map[int]int32{9: 5}, 0, fault.ErrAddress},
		{"lw_range", "lw $t1 = $t2 -100", []int32{9, 10, 0}, map[int]int32{9: 5, 10: base + 0x1000}, map[int]int32{9: 5}, 0, fault.ErrRange},
		{"lb_below", "lb $t1 = $t2 -100", []int32{9, 10, 0xfff}, map[int]int32{9: 5, 10: base}, map[int]int32{9: 5}, 0, fault.ErrAddress},
		{"sw_range", "sw $t1 , -100 = $t2", []int32{10, 0, 11}, map[int]int32{10: 0}, nil, 0, fault.ErrAddress},
		{"sw_idx_misaligned", "sw $t1, $t2, 1 = $t3", []int32{10, 11, 0, 12}, map[int]int32{10: base, 11: 2}, nil, 0, fault.ErrMisaligned},
	})
}

func TestBranch(t *testing.T) {
	runTable(t, false, []execCase{
		{"beqz_taken", "beqz $t1 , label", []int32{9, 4}, map[int]int32{9: 0}, nil, base + 4 + 16, nil},
		{"beqz_not", "beqz $t1 , label", []int32{9, 4}, map[int]int32{9: 1}, nil, 0, nil},
		{"bnez_back", "bnez $t1 , label", []int32{9, 0x1fffff}, map[int]int32{9: -3}, nil, base, nil},
		{"bltz", "bltz $t1 , label", []int32{9, 2}, map[int]int32{9: -1}, nil, base + 4 + 8, nil},
		{"bgez_zero", "bgez $t1 , label", []int32{9, 2}, map[int]int32{9: 0}, nil, base + 4 + 8, nil},
		{"bgtz_zero", "bgtz $t1 , label", []int32{9, 2}, map[int]int32{9: 0}, nil, 0, nil},
		{"bgtz_one", "bgtz $t1 , label", []int32{9, 2}, map[int]int32{9: 1}, nil, base + 4 + 8, nil},
		{"blez", "blez $t1 , label", []int32{9, 2}, map[int]int32{9: 0}, nil, base + 4 + 8, nil},
		{"bltzal_taken", "bltzal $t1 , label", []int32{9, 2}, map[int]int32{9: -1}, map[int]int32{31: base + 4}, base + 4 + 8, nil},
		{"bgezal_not", "bgezal $t1 , label", []int32{9, 2}, map[int]int32{9: -1, 31: 7}, map[int]int32{31: 7}, 0, nil},
	})
}

func TestJump(t *testing.T) {
	runTable(t, false, []execCase{
		{"j", "j target", []int32{0x100040}, nil, nil, 0x400100, nil},
		{"jal", "jal target", []int32{0x100040}, nil, map[int]int32{31: base + 4}, 0x400100, nil},
		{"jr", "jr $t1", []int32{9}, map[int]int32{9: 0x400103}, nil, 0x400100, nil},
		{"jalr", "jalr $t1 , $t2", []int32{8, 9}, map[int]int32{9: 0x400200}, map[int]int32{8: base + 4}, 0x400200, nil},
		{"jalr_same", "jalr $t1 , $t2", []int32{9, 9}, map[int]int32{9: 0x400200}, map[int]int32{9: base + 4}, base + 4, nil},
	})
}

func TestReturnCoupled(t *testing.T) {
	runTable(t, false, []execCase{
		{"ret_and", "ret_and $t1 = $t2 , $t3", []int32{9, 10, 11}, map[int]int32{10: 0xff, 11: 0x0f, 31: 0x400200}, map[int]int32{9: 0x0f}, 0x400200, nil},
		{"ret_subf", "ret_subf $t1 = $t2 , $t3", []int32{9, 10, 11}, map[int]int32{10: 10, 11: 3, 31: 0x400200}, map[int]int32{9: 7}, 0x400200, nil},
		{"ret_add_ovf", "ret_add $t1 = $t2 , $t3", []int32{9, 10, 11}, map[int]int32{9: 5, 10: math.MaxInt32, 11: 1, 31: 0x400200}, map[int]int32{9: 5}, 0, fault.ErrArithmeticOverflow},
		{"ret_add_ra", "ret_add $t1 = $t2 , $t3", []int32{31, 10, 11}, map[int]int32{10: 0x400000, 11: 0x300, 31: 0x400200}, map[int]int32{31: 0x400300}, 0x400300, nil},
		{"ret_ror", "ret_ror $t1 = $t2 , $t3", []int32{9, 10, 11}, map[int]int32{10: 1, 11: 1, 31: 0x400200}, map[int]int32{9: math.MinInt32}, 0x400200, nil},
		{"reti_add", "reti_add $t1 = $t2 , -100", []int32{9, 10, 0xfff}, map[int]int32{10: 1, 31: 0x400200}, map[int]int32{9: 0}, 0x400200, nil},
		{"reti_subf", "reti_subf $t1 = $t2 , -100", []int32{9, 10, 10}, map[int]int32{10: 3, 31: 0x400200}, map[int]int32{9: 7}, 0x400200, nil},
		{"reti_shl", "reti_shl $t1 = $t2 , 10", []int32{9, 10, 3}, map[int]int32{10: 1, 31: 0x400200}, map[int]int32{9: 8}, 0x400200, nil},
		{"reti_add_ovf", "reti_add $t1 = $t2 , -100", []int32{9, 10, 1}, map[int]int32{9: 5, 10: math.MaxInt32, 31: 0x400200}, map[int]int32{9: 5}, 0, fault.ErrArithmeticOverflow},
	})
}

func TestDelayed(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		syntax string
		ops    []int32
		regs   map[int]int32
		target uint32
		link   int
	}){
		{"beqz", "beqz $t1 , label", []int32{9, 4}, nil, base + 4 + 16, 0},
		{"bltzal", "bltzal $t1 , label", []int32{9, 4}, map[int]int32{9: -1}, base + 4 + 16, 31},
		{"j", "j target", []int32{0x100040}, nil, 0x400100, 0},
		{"jal", "jal target", []int32{0x100040}, nil, 0x400100, 31},
		{"jalr", "jalr $t1 , $t2", []int32{8, 9}, map[int]int32{9: 0x400200}, 0x400200, 8},
		{"jr", "jr $t1", []int32{9}, map[int]int32{9: 0x400200}, 0x400200, 0},
		{"reti_or", "reti_or $t1 = $t2 , 100", []int32{9, 10, 1}, map[int]int32{31: 0x400200}, 0x400200, 0},
	}

	for _, entry := range table {
		r := newRig(true)
		for reg, value := range entry.regs {
			r.mach.Registers.Update(reg, value)
		}

		assert.NoError(r.exec(entry.syntax, entry.ops...), entry.name)
		assert.Equal(uint32(base+4), r.mach.Registers.ProgramCounter(), entry.name)
		assert.Equal(machine.DELAY_REGISTERED, r.mach.Delayed.State, entry.name)
		assert.Equal(entry.target, r.mach.Delayed.Target, entry.name)
		if entry.link != 0 {
			assert.Equal(int32(base+8), r.mach.Registers.Value(entry.link), entry.name)
		}
	}

	// Not taken: nothing registered.
	r := newRig(true)
	r.mach.Registers.Update(9, 1)
	assert.NoError(r.exec("beqz $t1 , label", 9, 4))
	assert.Equal(machine.DELAY_CLEARED, r.mach.Delayed.State)
}

func TestSystem(t *testing.T) {
	assert := assert.New(t)

	runTable(t, false, []execCase{
		{"nop", "nop", nil, map[int]int32{9: 3}, map[int]int32{9: 3}, 0, nil},
		{"break", "break", nil, nil, nil, 0, fault.ErrBreakpoint},
		{"syscall_unknown", "syscall", nil, map[int]int32{cpu.REG_V0: 99}, nil, 0, fault.ErrSyscall},
		{"syscall_exit", "syscall", nil, map[int]int32{cpu.REG_V0: machine.SYSCALL_EXIT}, nil, 0, machine.ErrExit},
	})

	r := newRig(false)
	r.mach.Registers.Update(cpu.REG_V0, machine.SYSCALL_PRINT_INT)
	r.mach.Registers.Update(machine.REG_A0, -5)
	assert.NoError(r.exec("syscall"))
	r.mach.Registers.Update(cpu.REG_V0, machine.SYSCALL_PRINT_CHAR)
	r.mach.Registers.Update(machine.REG_A0, '!')
	assert.NoError(r.exec("syscall"))
	assert.Equal("-5!", r.out.String())

	r.mach.Registers.Update(cpu.REG_V0, machine.SYSCALL_EXIT2)
	r.mach.Registers.Update(machine.REG_A0, 3)
	err := r.exec("syscall")
	assert.ErrorIs(err, machine.ErrExit)
	var status machine.ExitStatus
	assert.True(errors.As(err, &status))
	assert.Equal(machine.ExitStatus(3), status)
}

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	stmt, err := cpu.Decode(catalog.Index(), base, 0x012a1580)
	assert.NoError(err)
	assert.Equal("add", stmt.Descriptor.Mnemonic())
	assert.Equal([]int32{9, 10, 11}, stmt.Operands)
	assert.Contains(stmt.String(), "add")

	_, err = cpu.Decode(catalog.Index(), base, 0xffffffff)
	assert.ErrorIs(err, fault.ErrUnrecognized)
	var flt *fault.ErrFault
	assert.True(errors.As(err, &flt))
	assert.Equal(uint32(0xffffffff), flt.Word)

	r := newRig(false)
	err = r.cpu.Execute(cpu.Statement{Address: base, Word: 0xffffffff})
	assert.ErrorIs(err, fault.ErrUnrecognized)

	desc := find("add $t1 = $t2 , $t3")
	err = r.cpu.Execute(cpu.Statement{Address: base, Descriptor: desc, Operands: []int32{9}})
	assert.ErrorIs(err, cpu.ErrOperands)
}

// TestDecodeExecute runs words through the decode index before executing,
// for encodings whose operand fields overlap other instructions' fixed bits.
func TestDecodeExecute(t *testing.T) {
	assert := assert.New(t)

	r := newRig(false)
	regs := &r.mach.Registers

	// Immediate store offsets with bits 6..2 clear.
	regs.Update(8, base+0x200)
	regs.Update(1, 0x40)
	regs.Update(9, 0x5a5a)
	for _, entry := range []struct {
		syntax string
		offset int32
		width  int
	}{
		{"sw $t1 , -100 = $t2", 0x080, 4},
		{"sh $t1 , -100 = $t2", 0x100, 2},
		{"sb $t1 , -100 = $t2", 0x180, 1},
		{"sw $t1 , -100 = $t2", 0xf80, 4},
	} {
		word := find(entry.syntax).Encode(8, entry.offset, 9)
		stmt, err := cpu.Decode(catalog.Index(), base, word)
		if !assert.NoError(err, entry.syntax) {
			continue
		}
		assert.Equal(entry.syntax, stmt.Descriptor.Syntax, "0x%08x", word)

		assert.NoError(r.exec(entry.syntax, 8, entry.offset, 9))
		addr := uint32(base+0x200) + uint32(int32(entry.offset<<20)>>20)
		value, err := r.mach.Memory.Word(addr &^ 3)
		assert.NoError(err, entry.syntax)
		switch entry.width {
		case 4:
			assert.Equal(int32(0x5a5a), value, entry.syntax)
		case 2:
			assert.Equal(int32(0x5a5a), value&0xffff, entry.syntax)
		case 1:
			assert.Equal(int32(0x5a), value&0xff, entry.syntax)
		}
	}
	value, err := r.mach.Memory.Word(base + 0x200 + 0x40)
	assert.NoError(err)
	assert.Equal(int32(0), value)

	// Immediate shifts for every destination and amount.
	regs.Update(10, -0x100)
	for dst := int32(1); dst < 32; dst++ {
		if dst == 10 {
			continue
		}
		for amount := int32(0); amount < 32; amount++ {
			word := find("srl $t1 = $t2 , 10").Encode(dst, 10, amount)
			stmt, err := cpu.Decode(catalog.Index(), base, word)
			if !assert.NoError(err) || !assert.Equal("srl", stmt.Descriptor.Mnemonic(), "0x%08x", word) {
				return
			}
			regs.SetProgramCounter(base)
			assert.NoError(r.exec("srl $t1 = $t2 , 10", dst, 10, amount))
			assert.Equal(int32(uint32(0xffffff00)>>amount), regs.Value(int(dst)), "srl r%d by %d", dst, amount)
		}
	}

	// Mask and compare register forms share the function code space.
	for _, syntax := range []string{
		"and_eq $t1 = $t2 , $t3", "or_eq $t1 = $t2 , $t3",
		"and_ne $t1 = $t2 , $t3", "or_ne $t1 = $t2 , $t3",
		"and_lt $t1 = $t2 , $t3", "or_lt $t1 = $t2 , $t3",
		"and_ltu $t1 = $t2 , $t3", "or_ltu $t1 = $t2 , $t3",
		"and_ge $t1 = $t2 , $t3", "or_ge $t1 = $t2 , $t3",
		"and_geu $t1 = $t2 , $t3", "or_geu $t1 = $t2 , $t3",
		"eq $t1 = $t2 , $t3", "ne $t1 = $t2 , $t3",
		"shl $t1 = $t2 , $t3", "sar $t1 = $t2 , $t3", "ror $t1 = $t2 , $t3",
	} {
		for _, ops := range [][]int32{{9, 10, 11}, {0, 0, 0}, {31, 1, 2}, {2, 31, 0}} {
			word := find(syntax).Encode(ops...)
			stmt, err := cpu.Decode(catalog.Index(), base, word)
			if assert.NoError(err, syntax) {
				assert.Equal(syntax, stmt.Descriptor.Syntax, "0x%08x", word)
			}
		}
	}
}
