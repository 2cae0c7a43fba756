package machine

import (
	"encoding/binary"

	"github.com/ezrec/isacore/cpu"
	"github.com/ezrec/isacore/fault"
)

// Memory is a flat little-endian memory of Size bytes from Base.
// Halves and words must be naturally aligned.
type Memory struct {
	Base uint32
	Data []byte
}

var _ cpu.Memory = (*Memory)(nil)

// NewMemory allocates size bytes of memory at base.
func NewMemory(base uint32, size uint32) *Memory {
	return &Memory{
		Base: base,
		Data: make([]byte, size),
	}
}

// Size of the memory in bytes.
func (mem *Memory) Size() uint32 {
	return uint32(len(mem.Data))
}

// Contains is true if [addr, addr+width) is inside the memory.
func (mem *Memory) Contains(addr uint32, width int) bool {
	offset := addr - mem.Base
	return addr >= mem.Base && uint64(offset)+uint64(width) <= uint64(len(mem.Data))
}

// slice returns the bytes of an access, or an address error.
func (mem *Memory) slice(addr uint32, width int) (data []byte, err error) {
	if addr%uint32(width) != 0 {
		err = &fault.ErrMemory{Address: addr, Width: width, Err: fault.ErrMisaligned}
		return
	}
	if !mem.Contains(addr, width) {
		err = &fault.ErrMemory{Address: addr, Width: width, Err: fault.ErrRange}
		return
	}
	offset := addr - mem.Base
	data = mem.Data[offset : offset+uint32(width)]
	return
}

func (mem *Memory) Byte(addr uint32) (value int32, err error) {
	data, err := mem.slice(addr, 1)
	if err != nil {
		return
	}
	value = int32(data[0])
	return
}

func (mem *Memory) Half(addr uint32) (value int32, err error) {
	data, err := mem.slice(addr, 2)
	if err != nil {
		return
	}
	value = int32(binary.LittleEndian.Uint16(data))
	return
}

func (mem *Memory) Word(addr uint32) (value int32, err error) {
	data, err := mem.slice(addr, 4)
	if err != nil {
		return
	}
	value = int32(binary.LittleEndian.Uint32(data))
	return
}

func (mem *Memory) SetByte(addr uint32, value int32) (err error) {
	data, err := mem.slice(addr, 1)
	if err != nil {
		return
	}
	data[0] = byte(value)
	return
}

func (mem *Memory) SetHalf(addr uint32, value int32) (err error) {
	data, err := mem.slice(addr, 2)
	if err != nil {
		return
	}
	binary.LittleEndian.PutUint16(data, uint16(value))
	return
}

func (mem *Memory) SetWord(addr uint32, value int32) (err error) {
	data, err := mem.slice(addr, 4)
	if err != nil {
		return
	}
	binary.LittleEndian.PutUint32(data, uint32(value))
	return
}

// Clear all memory to zero.
func (mem *Memory) Clear() {
	clear(mem.Data)
}
