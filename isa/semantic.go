package isa

// Format is the layout class of an instruction word.
type Format int

const (
	FORMAT_J  = Format(iota) // j
	FORMAT_R1                // r1
	FORMAT_I                 // i
	FORMAT_R3                // r3
)

var _format_names = [...]string{"j", "r1", "i", "r3"}

func (fm Format) String() string {
	if fm < 0 || int(fm) >= len(_format_names) {
		return "?"
	}
	return _format_names[fm]
}

// Family selects the evaluator of an instruction.
type Family int

const (
	FAMILY_NOP     = Family(iota) // nop
	FAMILY_ARITH                  // arith
	FAMILY_COMPARE                // compare
	FAMILY_MASK                   // mask
	FAMILY_BITWISE                // bitwise
	FAMILY_SHIFT                  // shift
	FAMILY_MOVE                   // move
	FAMILY_SET                    // set
	FAMILY_LOAD                   // load
	FAMILY_STORE                  // store
	FAMILY_BRANCH                 // branch
	FAMILY_JUMP                   // jump
	FAMILY_SYSCALL                // syscall
	FAMILY_BREAK                  // break
)

var _family_names = [...]string{
	"nop", "arith", "compare", "mask", "bitwise", "shift", "move",
	"set", "load", "store", "branch", "jump", "syscall", "break",
}

func (fa Family) String() string {
	if fa < 0 || int(fa) >= len(_family_names) {
		return "?"
	}
	return _family_names[fa]
}

// Op is the operation within a family.
type Op int

const (
	OP_NONE = Op(iota) // none

	OP_ADD  // add
	OP_SUBF // subf
	OP_SUB  // sub

	OP_EQ  // eq
	OP_NE  // ne
	OP_LT  // lt
	OP_LTU // ltu
	OP_GE  // ge
	OP_GEU // geu

	OP_AND // and
	OP_OR  // or
	OP_XOR // xor
	OP_NOR // nor

	OP_SHL // shl
	OP_SHR // shr
	OP_SAR // sar
	OP_ROR // ror

	OP_MTHI // mthi
	OP_MTLO // mtlo

	OP_SET0 // set0
	OP_SET1 // set1
	OP_SSET // sset
	OP_ADDR // addr

	OP_J  // j
	OP_JR // jr
)

var _op_names = [...]string{
	"none",
	"add", "subf", "sub",
	"eq", "ne", "lt", "ltu", "ge", "geu",
	"and", "or", "xor", "nor",
	"shl", "shr", "sar", "ror",
	"mthi", "mtlo",
	"set0", "set1", "sset", "addr",
	"j", "jr",
}

func (op Op) String() string {
	if op < 0 || int(op) >= len(_op_names) {
		return "?"
	}
	return _op_names[op]
}

// Source is how the second ALU operand is obtained.
type Source int

const (
	SOURCE_REG    = Source(iota) // reg
	SOURCE_IMM                   // imm
	SOURCE_SEXT12                // sext12
)

// MaskMode is the write rule of a conditional-mask instruction.
type MaskMode int

const (
	MASK_NONE = MaskMode(iota) // none
	MASK_AND                   // and
	MASK_OR                    // or
)

// Cond is a zero-relative branch condition.
type Cond int

const (
	COND_NONE = Cond(iota) // none
	COND_EQZ               // eqz
	COND_NEZ               // nez
	COND_LTZ               // ltz
	COND_GEZ               // gez
	COND_GTZ               // gtz
	COND_LEZ               // lez
)

// Test the condition against a register value.
func (cond Cond) Test(value int32) bool {
	switch cond {
	case COND_EQZ:
		return value == 0
	case COND_NEZ:
		return value != 0
	case COND_LTZ:
		return value < 0
	case COND_GEZ:
		return value >= 0
	case COND_GTZ:
		return value > 0
	case COND_LEZ:
		return value <= 0
	}
	return false
}

// Semantic is the execution behaviour of a basic instruction.
type Semantic struct {
	Family  Family
	Op      Op
	Source  Source   // Second ALU operand.
	Mask    MaskMode // FAMILY_MASK write rule.
	Width   int      // Memory access width, in bytes.
	Signed  bool     // Sign-extending load.
	Indexed bool     // Base + (index << shift) addressing.
	Cond    Cond     // FAMILY_BRANCH condition.
	Link    bool     // Writes a return address.
	Return  bool     // Jumps to the value of register 31 after the ALU effect.
}
