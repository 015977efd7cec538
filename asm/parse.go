package asm

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse decodes one instruction per non-blank line.
func Parse(lines []string) (Program, error) {
	prog := make(Program, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		in, err := parseInstr(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d %q: %v", ErrSyntax, i+1, line, err)
		}
		prog = append(prog, in)
	}

	return prog, nil
}

var mnemonics = map[string]Op{"cpy": Cpy, "inc": Inc, "dec": Dec, "jnz": Jnz, "tgl": Tgl, "out": Out}

func parseInstr(line string) (Instr, error) {
	f := strings.Fields(line)
	op, ok := mnemonics[f[0]]
	if !ok {
		return Instr{}, fmt.Errorf("unknown mnemonic %q", f[0])
	}
	if len(f)-1 != op.arity() {
		return Instr{}, fmt.Errorf("%s takes %d operand(s), got %d", op, op.arity(), len(f)-1)
	}

	in := Instr{Op: op, Y: Lit(0)}
	var err error
	if in.X, err = parseOperand(f[1]); err != nil {
		return Instr{}, err
	}
	if op.arity() == 2 {
		if in.Y, err = parseOperand(f[2]); err != nil {
			return Instr{}, err
		}
	}
	// only jnz and out may read a literal as first operand from source
	if (op == Inc || op == Dec) && !in.X.IsReg() {
		return Instr{}, fmt.Errorf("%s needs a register", op)
	}
	if op == Cpy && !in.Y.IsReg() {
		return Instr{}, fmt.Errorf("cpy needs a register target")
	}

	return in, nil
}

func parseOperand(s string) (Operand, error) {
	if len(s) == 1 && s[0] >= 'a' && s[0] <= 'd' {
		return R(s[0]), nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return Operand{}, fmt.Errorf("bad operand %q", s)
	}

	return Lit(v), nil
}
