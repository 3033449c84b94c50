// Package boot implements the deterministic boot state machine.
//
// One attempt moves through PowerCheck, ThermalCheck, HardwareInit, and
// Complete, with Aborted as the terminal state for any gating failure. The
// transitions consumed from the power monitor and thermal classifier are
// total, so every attempt reaches exactly one terminal outcome with a full
// structured trace; there is no ambiguous or silent failure state.
//
// The one transition that must never be bypassed: a Critical thermal
// classification aborts the attempt unconditionally, regardless of profile
// or derated flag.
package boot
