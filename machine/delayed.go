package machine

import (
	"github.com/ezrec/isacore/cpu"
)

// DelayState is the state of the delayed-branch slot.
type DelayState int

const (
	DELAY_CLEARED    = DelayState(iota) // cleared
	DELAY_REGISTERED                    // registered
	DELAY_TRIGGERED                     // triggered
)

var _delay_state_names = [...]string{"cleared", "registered", "triggered"}

func (ds DelayState) String() string {
	if ds < 0 || int(ds) >= len(_delay_state_names) {
		return "?"
	}
	return _delay_state_names[ds]
}

// DelayedBranch is a single delayed-branch slot.
//
// A target registered while executing a branch is committed after the
// next instruction, the delay slot, has executed.
type DelayedBranch struct {
	State  DelayState
	Target uint32
}

var _ cpu.DelayedBranch = (*DelayedBranch)(nil)

// Register a branch target.
// A branch in a delay slot keeps the pending target, but restarts the delay.
func (db *DelayedBranch) Register(target uint32) {
	if db.State == DELAY_CLEARED {
		db.Target = target
	}
	db.State = DELAY_REGISTERED
}

// Advance the slot after an instruction has executed.
// Returns the target, and true, when it must be committed to the PC.
func (db *DelayedBranch) Advance() (target uint32, ok bool) {
	switch db.State {
	case DELAY_REGISTERED:
		db.State = DELAY_TRIGGERED
	case DELAY_TRIGGERED:
		target, ok = db.Target, true
		db.Clear()
	}
	return
}

// Pending is true if a target is waiting to be committed.
func (db *DelayedBranch) Pending() bool {
	return db.State != DELAY_CLEARED
}

// Clear the slot.
func (db *DelayedBranch) Clear() {
	*db = DelayedBranch{}
}
