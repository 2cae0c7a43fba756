// Package machine provides the reference collaborators of the execution
// engine: register file, memory, delayed-branch slot, settings and syscall
// services.
package machine

import (
	"io"

	"github.com/ezrec/isacore/cpu"
)

// Machine is one simulated processor state.
type Machine struct {
	Registers Registers
	Memory    *Memory
	Delayed   DelayedBranch
	Settings  Settings
	Syscalls  Syscalls
}

// NewMachine creates a machine with size bytes of memory at the text base
// of the settings. A size of zero selects the default size.
func NewMachine(settings Settings, size uint32, out io.Writer) (mach *Machine) {
	if size == 0 {
		size = settings.MemorySize()
	}

	mach = &Machine{
		Memory:   NewMemory(settings.TextBase(), size),
		Settings: settings,
		Syscalls: NewSyscalls(out),
	}
	mach.Registers.Reset(settings.TextBase())

	return
}

// Cpu returns an execution engine wired to the machine.
func (mach *Machine) Cpu() *cpu.Cpu {
	return &cpu.Cpu{
		Registers: &mach.Registers,
		Memory:    mach.Memory,
		Syscalls:  mach.Syscalls,
		Delayed:   &mach.Delayed,
		Settings:  &mach.Settings,
	}
}

// Reset registers and the delay slot, and clear memory.
func (mach *Machine) Reset() {
	mach.Registers.Reset(mach.Settings.TextBase())
	mach.Delayed.Clear()
	mach.Memory.Clear()
}
