package cpu

// Registers with a fixed role.
const (
	REG_ZERO = 0  // Hard-wired zero.
	REG_V0   = 2  // Syscall service number.
	REG_RA   = 31 // Return address.
	REG_HI   = 33 // HI, written by mthi.
	REG_LO   = 34 // LO, written by mtlo.
)

// RegisterFile is the architectural register state.
type RegisterFile interface {
	Value(reg int) int32
	Update(reg int, value int32)
	ProgramCounter() uint32
	SetProgramCounter(addr uint32)
}

// Memory is byte addressed data memory.
// Failing accesses return an error wrapping fault.ErrAddress.
type Memory interface {
	Byte(addr uint32) (int32, error)
	Half(addr uint32) (int32, error)
	Word(addr uint32) (int32, error)
	SetByte(addr uint32, value int32) error
	SetHalf(addr uint32, value int32) error
	SetWord(addr uint32, value int32) error
}

// Context is handed to a syscall service.
type Context struct {
	Cpu       *Cpu
	Statement Statement
}

// Syscall is one syscall service.
type Syscall interface {
	Simulate(ctx *Context) error
}

// SyscallDispatcher resolves syscall service numbers.
type SyscallDispatcher interface {
	FindSyscall(service int32) (Syscall, bool)
}

// DelayedBranch holds a branch target until the delay slot has executed.
type DelayedBranch interface {
	Register(target uint32)
}

// Settings are the simulator options seen by the engine.
type Settings interface {
	DelayedBranchingEnabled() bool
}
