package asm

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrSyntax is returned by Parse for a malformed line.
	ErrSyntax = errors.New("asm: syntax error")

	// ErrStepLimit is returned by Run when the step budget runs out.
	ErrStepLimit = errors.New("asm: step limit exceeded")
)

// Op is an instruction mnemonic.
type Op uint8

const (
	Cpy Op = iota
	Inc
	Dec
	Jnz
	Tgl
	Out
)

var opNames = [...]string{Cpy: "cpy", Inc: "inc", Dec: "dec", Jnz: "jnz", Tgl: "tgl", Out: "out"}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}

	return fmt.Sprintf("Op(%d)", o)
}

// arity is the number of operands of o.
func (o Op) arity() int {
	switch o {
	case Cpy, Jnz:
		return 2
	default:
		return 1
	}
}

// Operand is either a register (Reg 0..3 for a..d) or a literal Val.
type Operand struct {
	Reg int // -1 for a literal
	Val int
}

// Lit returns a literal operand.
func Lit(v int) Operand { return Operand{Reg: -1, Val: v} }

// R returns a register operand for 'a'..'d'.
func R(name byte) Operand { return Operand{Reg: int(name - 'a')} }

// IsReg reports whether o names a register.
func (o Operand) IsReg() bool { return o.Reg >= 0 }

func (o Operand) String() string {
	if o.IsReg() {
		return string(rune('a' + o.Reg))
	}

	return fmt.Sprint(o.Val)
}

// Instr is one decoded instruction. Y is unused for one-argument ops.
type Instr struct {
	Op   Op
	X, Y Operand
}

func (in Instr) String() string {
	if in.Op.arity() == 2 {
		return fmt.Sprintf("%s %s %s", in.Op, in.X, in.Y)
	}

	return fmt.Sprintf("%s %s", in.Op, in.X)
}

// toggled returns the instruction tgl turns in into.
func (in Instr) toggled() Instr {
	out := in
	switch in.Op {
	case Inc:
		out.Op = Dec
	case Dec, Tgl, Out:
		out.Op = Inc
	case Jnz:
		out.Op = Cpy
	case Cpy:
		out.Op = Jnz
	}

	return out
}

// Program is a parsed instruction list.
type Program []Instr

// Registers holds the machine's four registers.
type Registers struct {
	A, B, C, D int
}

// ptr returns the address of register i (0..3).
func (r *Registers) ptr(i int) *int {
	switch i {
	case 0:
		return &r.A
	case 1:
		return &r.B
	case 2:
		return &r.C
	default:
		return &r.D
	}
}

// Option configures Run.
type Option func(*Options)

// Options holds Run's hooks and limits.
type Options struct {
	// Output receives every transmitted value; returning false halts the
	// machine with ExitStopped.
	Output func(v int) bool

	// Trace is called after every executed step with the next program
	// counter and the registers; returning false halts with ExitStopped.
	Trace func(pc int, regs Registers) bool

	// StepLimit bounds executed steps when positive. Default 0 (none).
	StepLimit int
}

// DefaultOptions returns Options that discard output and never stop early.
func DefaultOptions() Options {
	return Options{
		Output: func(int) bool { return true },
		Trace:  nil,
	}
}

// WithOutput installs the out handler.
func WithOutput(fn func(v int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Output = fn
		}
	}
}

// WithTrace installs a per-step observer.
func WithTrace(fn func(pc int, regs Registers) bool) Option {
	return func(o *Options) {
		o.Trace = fn
	}
}

// WithStepLimit aborts Run with ErrStepLimit after n steps (n > 0).
func WithStepLimit(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.StepLimit = n
		}
	}
}

// Exit tells why Run returned.
type Exit uint8

const (
	// ExitHalted: the program counter left the program.
	ExitHalted Exit = iota
	// ExitStopped: an Output or Trace hook asked to stop.
	ExitStopped
)
