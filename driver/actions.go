package driver

import (
	"fmt"

	"github.com/nihei9/minicc/grammar"
	"github.com/nihei9/minicc/semantic"
)

// rhsNames returns the RHS symbol spellings of p, for shape-matching a
// dynamically loaded production against the fixed set of named productions
// spec.md §4.6 gives semantic actions for. Grammars are data (loaded from a
// grammar file at runtime), so productions are identified by LHS name plus
// RHS spelling rather than by a closed Go type.
func rhsNames(p *grammar.Production) []string {
	names := make([]string, len(p.RHS))
	for i, s := range p.RHS {
		names[i] = s.Name
	}
	return names
}

func sameShape(got []string, want ...string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

// action runs the semantic action for production p given its already-
// popped RHS values, and returns the synthesized LHS value (spec.md §4.6
// "Reduction actions"). Any type error, undefined identifier, duplicate
// declaration, or other spec.md §7 "Semantic error" condition is fatal.
func (d *Driver) action(p *grammar.Production, rhs []semantic.Value) (semantic.Value, error) {
	lhs := p.LHS.Name
	shape := rhsNames(p)

	switch lhs {
	case "Type":
		switch {
		case sameShape(shape, "int"):
			return semantic.TypeValue(semantic.TypeInt), nil
		case sameShape(shape, "void"):
			return semantic.TypeValue(semantic.TypeVoid), nil
		}

	case "Parameter":
		if sameShape(shape, "Type", "id") {
			typ := rhs[0].Type
			name := rhs[1].Ident
			if typ == semantic.TypeVoid {
				return semantic.Value{}, d.semErr("void parameter %q is not allowed", name, rhs[1])
			}
			d.pendingParams = append(d.pendingParams, paramSpec{name: name, typ: typ})
			return semantic.Empty(), nil
		}

	case "Factor":
		switch {
		case sameShape(shape, "id"):
			name := rhs[0].Ident
			e, ok := d.symtab.Lookup(name)
			if !ok {
				return semantic.Value{}, d.semErr("undefined identifier %q", name, rhs[0])
			}
			if e.Kind == semantic.KindFunc {
				return semantic.Value{}, d.semErr("function %q used as a value", name, rhs[0])
			}
			return semantic.ExprValue(e.Type, e.IRName, d.ir.NextIndex()), nil
		case sameShape(shape, "num"):
			return semantic.ExprValue(semantic.TypeInt, rhs[0].NumLiteral, d.ir.NextIndex()), nil
		case sameShape(shape, "(", "Expr", ")"):
			return rhs[1], nil
		}

	case "Term":
		switch {
		case sameShape(shape, "Term", "*", "Factor"), sameShape(shape, "Term", "/", "Factor"):
			return d.arith(shape[1], rhs[0], rhs[2])
		case sameShape(shape, "Factor"):
			return rhs[0], nil
		}

	case "Expr":
		switch {
		case sameShape(shape, "Expr", "+", "Term"), sameShape(shape, "Expr", "-", "Term"):
			return d.arith(shape[1], rhs[0], rhs[2])
		case sameShape(shape, "Term"):
			return rhs[0], nil
		}

	case "RelOp":
		if len(shape) == 1 {
			return semantic.RelOpValue(shape[0]), nil
		}

	case "RelExpr":
		switch {
		case sameShape(shape, "Expr", "RelOp", "Expr"):
			return d.relExpr(rhs[0], rhs[1], rhs[2])
		case sameShape(shape, "Expr"):
			return d.relExprNZ(rhs[0])
		}

	case "DeclarationStatement":
		switch {
		case sameShape(shape, "Type", "id", ";"):
			return d.declare(rhs[0].Type, rhs[1], nil)
		case sameShape(shape, "Type", "id", "=", "Expr", ";"):
			return d.declare(rhs[0].Type, rhs[1], &rhs[3])
		}

	case "AssignmentStatement":
		if sameShape(shape, "id", "=", "Expr", ";") {
			return d.assign(rhs[0], rhs[2])
		}

	case "ReadStatement":
		if sameShape(shape, "read", "id", ";") {
			return d.read(rhs[1])
		}

	case "WriteStatement":
		if sameShape(shape, "write", "Expr", ";") {
			return d.write(rhs[1])
		}

	case "ReturnStatement":
		switch {
		case sameShape(shape, "return", ";"):
			return d.ret(nil)
		case sameShape(shape, "return", "Expr", ";"):
			return d.ret(&rhs[1])
		}

	case "SelectionStatement":
		switch {
		case sameShape(shape, "if", "(", "RelExpr", ")", "Stmt"):
			return d.ifThen(rhs[2], rhs[4])
		case sameShape(shape, "if", "(", "RelExpr", ")", "Stmt", "else", "Stmt"):
			return d.ifElse(rhs[2], rhs[4], rhs[6])
		}

	case "IterationStatement":
		if sameShape(shape, "while", "(", "RelExpr", ")", "Stmt") {
			return d.whileLoop(rhs[2], rhs[4])
		}

	case "StmtList":
		switch {
		case sameShape(shape, "StmtList", "Stmt"):
			return d.chain(rhs[0], rhs[1])
		case len(shape) == 0:
			return semantic.StmtValue(nil, d.ir.NextIndex()), nil
		}
	}

	// Pass-through default (spec.md §4.6 "All other productions... are
	// pass-through: if length 1 forward the single rhs value, otherwise
	// push empty").
	if len(rhs) == 1 {
		return rhs[0], nil
	}
	return semantic.Empty(), nil
}

func (d *Driver) semErr(format string, name string, v semantic.Value) error {
	return &ParseError{Message: fmt.Sprintf(format, name), Line: v.Line, Col: v.Col}
}
