package emulator

import (
	"fmt"
	"strings"
)

const (
	CALL_DEPTH = 64 // Maximum tracked call depth.
)

// Frame is one tracked subroutine call.
type Frame struct {
	Call   uint32 // Address of the linking instruction.
	Return uint32 // Linked return address.
}

// CallStack tracks linked calls, for backtraces.
// When full, the oldest frame is dropped.
type CallStack struct {
	Frames []Frame
}

func (cs *CallStack) Push(frame Frame) {
	if cs.Full() {
		cs.Frames = append(cs.Frames[:0], cs.Frames[1:]...)
	}
	cs.Frames = append(cs.Frames, frame)
}

func (cs *CallStack) Pop() (frame Frame, ok bool) {
	frame, ok = cs.Peek()
	if ok {
		cs.Frames = cs.Frames[:len(cs.Frames)-1]
	}
	return
}

func (cs *CallStack) Empty() bool {
	return len(cs.Frames) == 0
}

func (cs *CallStack) Full() bool {
	return len(cs.Frames) == CALL_DEPTH
}

func (cs *CallStack) Peek() (frame Frame, ok bool) {
	if cs.Empty() {
		return
	}

	return cs.Frames[len(cs.Frames)-1], true
}

func (cs *CallStack) Reset() {
	if len(cs.Frames) > 0 {
		cs.Frames = cs.Frames[:0]
	}
}

// String is the backtrace, innermost call first.
func (cs *CallStack) String() string {
	var sb strings.Builder
	for n := len(cs.Frames) - 1; n >= 0; n-- {
		frame := cs.Frames[n]
		fmt.Fprintf(&sb, "#%d %08x -> %08x\n", len(cs.Frames)-1-n, frame.Call, frame.Return)
	}
	return sb.String()
}
