package machine

import (
	"github.com/ezrec/isacore/cpu"
)

// Settings are the simulator options.
type Settings struct {
	DelayedBranching bool // Branches and jumps take effect after the delay slot.
	CompactMemory    bool // Use the compact memory layout and pseudo-instruction templates.
}

var _ cpu.Settings = (*Settings)(nil)

func (st *Settings) DelayedBranchingEnabled() bool {
	return st.DelayedBranching
}

// TextBase is the program text address for the memory layout.
func (st *Settings) TextBase() uint32 {
	if st.CompactMemory {
		return COMPACT_TEXT_BASE
	}
	return TEXT_BASE
}

// MemorySize is the default memory size for the memory layout.
func (st *Settings) MemorySize() uint32 {
	if st.CompactMemory {
		return COMPACT_MEMORY_SIZE
	}
	return MEMORY_SIZE
}
