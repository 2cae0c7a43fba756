package machine

import (
	"errors"
	"fmt"
	"io"

	"github.com/ezrec/isacore/cpu"
	"github.com/ezrec/isacore/translate"
)

var f = translate.From

// ErrExit is returned by the exit services.
var ErrExit = errors.New(f("program exited"))

// ExitStatus carries the code of an exit service.
type ExitStatus int32

func (err ExitStatus) Error() string {
	return f("exit status %d", int32(err))
}

func (err ExitStatus) Is(target error) bool {
	return target == ErrExit
}

// REG_A0 holds the argument of a service.
const REG_A0 = 4

// Syscall services.
const (
	SYSCALL_PRINT_INT  = 1
	SYSCALL_EXIT       = 10
	SYSCALL_PRINT_CHAR = 11
	SYSCALL_EXIT2      = 17
)

// SyscallFunc adapts a function to a syscall service.
type SyscallFunc func(ctx *cpu.Context) error

func (fn SyscallFunc) Simulate(ctx *cpu.Context) error {
	return fn(ctx)
}

// Syscalls is a table of syscall services.
type Syscalls map[int32]cpu.Syscall

var _ cpu.SyscallDispatcher = (Syscalls)(nil)

func (sc Syscalls) FindSyscall(service int32) (call cpu.Syscall, ok bool) {
	call, ok = sc[service]
	return
}

// NewSyscalls returns the runner services, printing to out.
func NewSyscalls(out io.Writer) Syscalls {
	arg := func(ctx *cpu.Context) int32 {
		return ctx.Cpu.Registers.Value(REG_A0)
	}

	return Syscalls{
		SYSCALL_PRINT_INT: SyscallFunc(func(ctx *cpu.Context) (err error) {
			_, err = fmt.Fprintf(out, "%d", arg(ctx))
			return
		}),
		SYSCALL_EXIT: SyscallFunc(func(ctx *cpu.Context) error {
			return ExitStatus(0)
		}),
		SYSCALL_PRINT_CHAR: SyscallFunc(func(ctx *cpu.Context) (err error) {
			_, err = out.Write([]byte{byte(arg(ctx))})
			return
		}),
		SYSCALL_EXIT2: SyscallFunc(func(ctx *cpu.Context) error {
			return ExitStatus(arg(ctx))
		}),
	}
}
