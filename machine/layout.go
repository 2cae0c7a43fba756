package machine

// Default memory layout.
const (
	TEXT_BASE   = 0x0040_0000 // Program text.
	MEMORY_SIZE = 0x0100_0000 // Bytes of simulated memory from TEXT_BASE.

	COMPACT_TEXT_BASE   = 0x0000_3000 // Program text, compact configuration.
	COMPACT_MEMORY_SIZE = 0x0000_5000 // Bytes of simulated memory, compact configuration.
)
