package asm

import "fmt"

// Machine executes a private copy of a Program.
type Machine struct {
	prog Program
	Regs Registers
	pc   int
}

// NewMachine prepares prog for execution with initial registers regs.
// tgl rewrites the machine's copy, never prog itself.
func NewMachine(prog Program, regs Registers) *Machine {
	return &Machine{prog: append(Program(nil), prog...), Regs: regs}
}

// Program returns the machine's current, possibly toggled, code.
func (m *Machine) Program() Program { return m.prog }

// Run executes until the program counter leaves the program or a hook stops
// it. It returns ErrStepLimit (wrapped) once the step budget is exhausted.
func (m *Machine) Run(opts ...Option) (Exit, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	steps := 0
	for m.pc >= 0 && m.pc < len(m.prog) {
		if o.StepLimit > 0 && steps >= o.StepLimit {
			return ExitStopped, fmt.Errorf("%w: %d steps, pc=%d", ErrStepLimit, steps, m.pc)
		}
		steps++

		keep := m.step(o.Output)
		if o.Trace != nil && !o.Trace(m.pc, m.Regs) {
			return ExitStopped, nil
		}
		if !keep {
			return ExitStopped, nil
		}
	}

	return ExitHalted, nil
}

// value evaluates an operand against the registers.
func (m *Machine) value(op Operand) int {
	if op.IsReg() {
		return *m.Regs.ptr(op.Reg)
	}

	return op.Val
}

// step executes the instruction at pc and advances it. It reports false
// when the output handler asked to stop.
func (m *Machine) step(output func(int) bool) bool {
	if m.addLoop() {
		return true
	}

	in := m.prog[m.pc]
	next := m.pc + 1
	switch in.Op {
	case Cpy:
		if in.Y.IsReg() {
			*m.Regs.ptr(in.Y.Reg) = m.value(in.X)
		}
	case Inc:
		if in.X.IsReg() {
			*m.Regs.ptr(in.X.Reg)++
		}
	case Dec:
		if in.X.IsReg() {
			*m.Regs.ptr(in.X.Reg)--
		}
	case Jnz:
		if m.value(in.X) != 0 {
			next = m.pc + m.value(in.Y)
		}
	case Tgl:
		if t := m.pc + m.value(in.X); t >= 0 && t < len(m.prog) {
			m.prog[t] = m.prog[t].toggled()
		}
	case Out:
		if !output(m.value(in.X)) {
			m.pc = next
			return false
		}
	}
	m.pc = next

	return true
}

// addLoop executes "inc x; dec y; jnz y -2" (or with inc/dec swapped) as
// x += y; y = 0 when it starts at pc.
func (m *Machine) addLoop() bool {
	if m.pc+2 >= len(m.prog) {
		return false
	}
	a, b, j := m.prog[m.pc], m.prog[m.pc+1], m.prog[m.pc+2]
	if j.Op != Jnz || j.Y.IsReg() || j.Y.Val != -2 || !j.X.IsReg() {
		return false
	}
	if !a.X.IsReg() || !b.X.IsReg() {
		return false
	}

	var x, y int
	switch {
	case a.Op == Inc && b.Op == Dec:
		x, y = a.X.Reg, b.X.Reg
	case a.Op == Dec && b.Op == Inc:
		x, y = b.X.Reg, a.X.Reg
	default:
		return false
	}
	// with y ≤ 0 the loop never ends; keep the literal semantics
	if x == y || j.X.Reg != y || *m.Regs.ptr(y) <= 0 {
		return false
	}

	*m.Regs.ptr(x) += *m.Regs.ptr(y)
	*m.Regs.ptr(y) = 0
	m.pc += 3

	return true
}
