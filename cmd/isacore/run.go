package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/ezrec/isacore/config"
	"github.com/ezrec/isacore/emulator"
	"github.com/ezrec/isacore/isa"
)

// DEFAULT_LIMIT is the default instruction limit of a run.
const DEFAULT_LIMIT = 1_000_000

// load an image file into a new emulator.
func load(cfg config.Config, cat *isa.Catalog, path string, out io.Writer) (emu *emulator.Emulator, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	prog, err := emulator.ReadProgram(inf, cfg.TextBase())
	if err != nil {
		err = fmt.Errorf("%v: %w", path, err)
		return
	}

	emu = emulator.NewEmulator(cat, cfg.Settings(), cfg.Machine.MemorySize, out)
	emu.Verbose = cfg.Verbose

	err = emu.Load(prog)
	return
}

// stepper is the interactive step debugger.
type stepper struct {
	emu   *emulator.Emulator
	out   io.Writer
	limit int
	done  bool
}

// show the next statement.
func (st *stepper) show() {
	stmt, err := st.emu.Statement()
	if err != nil {
		fmt.Fprintf(st.out, "%08x ?\n", st.emu.Pc())
		return
	}
	fmt.Fprintf(st.out, "%4d %v\n", st.emu.LineNo(), stmt)
}

// command runs one debugger command. Quit is set when the debugger
// should exit.
func (st *stepper) command(line string) (quit bool, err error) {
	switch strings.TrimSpace(line) {
	case "", "s", "step":
		if st.done {
			fmt.Fprintln(st.out, f("program finished"))
			return
		}
		st.done, err = st.emu.Tick()
		if !st.done && err == nil {
			st.show()
		}
	case "r", "regs":
		fmt.Fprint(st.out, st.emu.Registers.String())
	case "b", "bt":
		fmt.Fprint(st.out, st.emu.Calls.String())
	case "c", "continue":
		if !st.done {
			err = st.emu.Run(st.limit)
			st.done = err == nil
		}
	case "q", "quit":
		quit = true
	default:
		fmt.Fprintln(st.out, f("commands: s(tep), r(egs), b(acktrace), c(ontinue), q(uit)"))
	}

	return
}

// debug runs the step debugger until quit or end of input.
func (st *stepper) debug(rl *readline.Instance) (err error) {
	st.show()
	for {
		line, rerr := rl.Readline()
		if rerr != nil {
			return
		}

		var quit bool
		quit, err = st.command(line)
		if err != nil {
			fmt.Fprintln(st.out, err)
			err = nil
		}
		if quit {
			return
		}
	}
}

func newRunCmd(opts *options) *cobra.Command {
	var step bool
	var limit int

	var runCmd = &cobra.Command{
		Use:   "run IMAGE",
		Short: "Run a program image",
		Long: "Run a program image. The image holds one hexadecimal instruction\n" +
			"word per line; '#' and ';' start comments.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg, cat, err := opts.catalog()
			if err != nil {
				return
			}

			out := cmd.OutOrStdout()
			emu, err := load(cfg, cat, args[0], out)
			if err != nil {
				return
			}

			if step {
				var rl *readline.Instance
				rl, err = readline.NewEx(&readline.Config{
					Prompt: "isacore> ",
					Stdout: out,
				})
				if err != nil {
					return
				}
				defer rl.Close()

				err = (&stepper{emu: emu, out: out, limit: limit}).debug(rl)
			} else {
				err = emu.Run(limit)
			}
			if err != nil {
				return
			}

			if cfg.Verbose {
				log.Printf("%v: %d instructions, %v", args[0], emu.Ticks(), emu.Status)
			}

			if emu.Status != 0 {
				err = emu.Status
			}

			return
		},
	}

	runCmd.Flags().BoolVarP(&step, "step", "s", false, "Step through the program interactively")
	runCmd.Flags().IntVarP(&limit, "limit", "l", DEFAULT_LIMIT, "Instruction limit, 0 for none")

	return runCmd
}
