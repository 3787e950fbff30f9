package cpu

import "fmt"

// OperandKind tags which variant an Operand holds.
type OperandKind uint8

const (
	// OperandInvalid is the zero value, indicating no operand.
	OperandInvalid OperandKind = iota
	// OperandReg is a register operand.
	OperandReg
	// OperandImm is a resolved integer constant.
	OperandImm
	// OperandExpr is a symbolic value not yet resolved to a constant.
	OperandExpr
)

// Expr is a symbolic expression to be resolved during linking: a
// symbol reference plus an optional constant addend.
type Expr struct {
	Sym    string
	Addend int64
}

func (e *Expr) String() string {
	switch {
	case e == nil:
		return ""
	case e.Addend > 0:
		return fmt.Sprintf("%s+%d", e.Sym, e.Addend)
	case e.Addend < 0:
		return fmt.Sprintf("%s%d", e.Sym, e.Addend)
	}
	return e.Sym
}

// IsSymRef reports whether the expression is a plain symbol reference
// with no addend.
func (e *Expr) IsSymRef() bool {
	return e != nil && e.Addend == 0
}

// Operand is one instruction operand.
type Operand struct {
	Kind OperandKind
	Reg  Reg
	Imm  int64
	Expr *Expr
}

// RegOp builds a register operand.
func RegOp(r Reg) Operand {
	return Operand{Kind: OperandReg, Reg: r}
}

// ImmOp builds an immediate operand.
func ImmOp(v int64) Operand {
	return Operand{Kind: OperandImm, Imm: v}
}

// ExprOp builds a symbolic operand.
func ExprOp(sym string, addend int64) Operand {
	return Operand{Kind: OperandExpr, Expr: &Expr{Sym: sym, Addend: addend}}
}

// IsReg reports whether the operand holds a register.
func (o Operand) IsReg() bool { return o.Kind == OperandReg }

// IsImm reports whether the operand holds a resolved constant.
func (o Operand) IsImm() bool { return o.Kind == OperandImm }

// IsExpr reports whether the operand holds an unresolved expression.
func (o Operand) IsExpr() bool { return o.Kind == OperandExpr }

// Loc records where an instruction came from, for diagnostics.
type Loc struct {
	File string
	Line int
}

// Instruction is one decoded instruction ready for encoding: an
// instruction form plus its ordered operands.
type Instruction struct {
	Op       Op
	Operands []Operand
	Loc      Loc
}

// New builds an instruction from a form and its operands.
func New(op Op, operands ...Operand) Instruction {
	return Instruction{Op: op, Operands: operands}
}
