// Package cpu implements the execution engine of the isacore instruction set.
//
// The engine executes one decoded statement at a time against five
// collaborators: a register file of 32 general registers plus HI and LO,
// byte addressed memory, a syscall dispatcher, a delayed-branch slot and the
// simulator settings. Control flow either moves the PC directly or, with
// delayed branching enabled, registers the target in the delay slot for the
// fetch loop to commit.
//
// Arithmetic overflow, address errors, unknown syscall services and break
// are returned as faults carrying the offending statement. A faulting
// statement writes no destination.
package cpu
