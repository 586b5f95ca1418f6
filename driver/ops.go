package driver

import (
	"fmt"

	"github.com/nihei9/minicc/semantic"
)

// arith implements Term -> Term (*|/) Factor and Expr -> Expr (+|-) Term
// (spec.md §4.6): both operands must be INT; allocate a fresh temporary;
// emit (op, a.place, b.place, temp).
func (d *Driver) arith(opLexeme string, a, b semantic.Value) (semantic.Value, error) {
	if a.ExprType != semantic.TypeInt || b.ExprType != semantic.TypeInt {
		return semantic.Value{}, &ParseError{Message: fmt.Sprintf("arithmetic operand is not int (got %s, %s)", a.ExprType, b.ExprType)}
	}
	temp := d.symtab.NewTemp()
	begin := d.ir.NextIndex()
	d.ir.Emit(semantic.Quad{Op: semantic.Op(opLexeme), A1: a.Place, A2: b.Place, Result: temp})
	return semantic.ExprValue(semantic.TypeInt, temp, begin), nil
}

// relExpr implements RelExpr -> Expr RelOp Expr (spec.md §4.6): both
// operands INT; emit (ifOP, a, b, _, -1) then (goto, _, _, _, -1); return
// BoolVal({i}, {j}, i).
func (d *Driver) relExpr(a semantic.Value, relOp semantic.Value, b semantic.Value) (semantic.Value, error) {
	if a.ExprType != semantic.TypeInt || b.ExprType != semantic.TypeInt {
		return semantic.Value{}, &ParseError{Message: fmt.Sprintf("relational operand is not int (got %s, %s)", a.ExprType, b.ExprType)}
	}
	ifOp, ok := semantic.IfOpFor(relOp.RelOp)
	if !ok {
		return semantic.Value{}, &ParseError{Message: fmt.Sprintf("unknown relational operator %q", relOp.RelOp)}
	}
	begin := d.ir.NextIndex()
	i := d.ir.Emit(semantic.Quad{Op: ifOp, A1: a.Place, A2: b.Place, Target: -1})
	j := d.ir.EmitUnresolvedGoto()
	return semantic.BoolValue([]int{i}, []int{j}, begin), nil
}

// relExprNZ implements RelExpr -> Expr (spec.md §4.6): INT; emit ifnz +
// goto; same shape as relExpr.
func (d *Driver) relExprNZ(a semantic.Value) (semantic.Value, error) {
	if a.ExprType != semantic.TypeInt {
		return semantic.Value{}, &ParseError{Message: fmt.Sprintf("condition is not int (got %s)", a.ExprType)}
	}
	begin := d.ir.NextIndex()
	i := d.ir.Emit(semantic.Quad{Op: semantic.OpIfNZ, A1: a.Place, Target: -1})
	j := d.ir.EmitUnresolvedGoto()
	return semantic.BoolValue([]int{i}, []int{j}, begin), nil
}

// declare implements DeclarationStatement -> Type id ; | Type id = Expr ;
// (spec.md §4.6): reject void variables; reject duplicate in current
// scope; allocate a unique IR name; if initialized, type-check and emit
// (=, e.place, _, ir_name).
func (d *Driver) declare(typ semantic.Type, ident semantic.Value, init *semantic.Value) (semantic.Value, error) {
	name := ident.Ident
	if typ == semantic.TypeVoid {
		return semantic.Value{}, d.semErr("void variable %q is not allowed", name, ident)
	}
	if d.symtab.DeclaredInCurrentScope(name) {
		return semantic.Value{}, d.semErr("duplicate declaration of %q in this scope", name, ident)
	}
	entry := d.symtab.Declare(name, semantic.KindVar, typ, nil)
	begin := d.ir.NextIndex()
	if init != nil {
		if init.ExprType != typ {
			return semantic.Value{}, d.semErr("initializer type mismatch for %q", name, ident)
		}
		d.ir.Emit(semantic.Quad{Op: semantic.OpAssn, A1: init.Place, Result: entry.IRName})
	}
	return semantic.StmtValue(nil, begin), nil
}

// assign implements AssignmentStatement -> id = Expr ; (spec.md §4.6):
// reject undefined or function target; type-check; emit =.
func (d *Driver) assign(ident semantic.Value, rhs semantic.Value) (semantic.Value, error) {
	name := ident.Ident
	e, ok := d.symtab.Lookup(name)
	if !ok {
		return semantic.Value{}, d.semErr("undefined identifier %q", name, ident)
	}
	if e.Kind == semantic.KindFunc {
		return semantic.Value{}, d.semErr("function %q cannot be assigned to", name, ident)
	}
	if e.Type != rhs.ExprType {
		return semantic.Value{}, d.semErr("type mismatch assigning to %q", name, ident)
	}
	begin := d.ir.NextIndex()
	d.ir.Emit(semantic.Quad{Op: semantic.OpAssn, A1: rhs.Place, Result: e.IRName})
	return semantic.StmtValue(nil, begin), nil
}

// read implements ReadStatement -> read id ; (SPEC_FULL.md Supplemented
// Features #1): the identifier must be declared, non-function, int.
func (d *Driver) read(ident semantic.Value) (semantic.Value, error) {
	name := ident.Ident
	e, ok := d.symtab.Lookup(name)
	if !ok {
		return semantic.Value{}, d.semErr("undefined identifier %q", name, ident)
	}
	if e.Kind == semantic.KindFunc || e.Type != semantic.TypeInt {
		return semantic.Value{}, d.semErr("read target %q must be an int variable", name, ident)
	}
	begin := d.ir.NextIndex()
	d.ir.Emit(semantic.Quad{Op: semantic.OpRead, Result: e.IRName})
	return semantic.StmtValue(nil, begin), nil
}

// write implements WriteStatement -> write Expr ; (SPEC_FULL.md
// Supplemented Features #1): the expression must type-check as int.
func (d *Driver) write(expr semantic.Value) (semantic.Value, error) {
	if expr.ExprType != semantic.TypeInt {
		return semantic.Value{}, &ParseError{Message: fmt.Sprintf("write expression is not int (got %s)", expr.ExprType)}
	}
	begin := d.ir.NextIndex()
	d.ir.Emit(semantic.Quad{Op: semantic.OpWrite, A1: expr.Place})
	return semantic.StmtValue(nil, begin), nil
}

// ret implements ReturnStatement -> return ; | return Expr ; (spec.md
// §4.6): must be InFunction; types must match CurFuncRet.
func (d *Driver) ret(expr *semantic.Value) (semantic.Value, error) {
	if !d.inFunction {
		return semantic.Value{}, &ParseError{Message: "return statement outside a function"}
	}
	begin := d.ir.NextIndex()
	if expr == nil {
		if d.curFuncRet != semantic.TypeVoid {
			return semantic.Value{}, &ParseError{Message: fmt.Sprintf("function %q must return a value", d.curFuncName)}
		}
		d.ir.Emit(semantic.Quad{Op: semantic.OpRet})
	} else {
		if expr.ExprType != d.curFuncRet {
			return semantic.Value{}, &ParseError{Message: fmt.Sprintf("return type mismatch in function %q", d.curFuncName)}
		}
		d.ir.Emit(semantic.Quad{Op: semantic.OpRetV, A1: expr.Place})
	}
	return semantic.StmtValue(nil, begin), nil
}

// chain implements StmtList -> StmtList Stmt (spec.md §4.6 "when chaining
// S1 S2, backpatch S1.nextlist to S2.begin_quad").
func (d *Driver) chain(s1, s2 semantic.Value) (semantic.Value, error) {
	d.ir.Backpatch(s1.NextList, s2.BeginQuad)
	return semantic.StmtValue(s2.NextList, s1.BeginQuad), nil
}

// ifThen implements SelectionStatement -> if ( RelExpr ) Stmt (spec.md
// §4.6): backpatch B.truelist -> S.begin, B.falselist -> next_quad.
func (d *Driver) ifThen(cond, stmt semantic.Value) (semantic.Value, error) {
	d.ir.Backpatch(cond.TrueList, stmt.BeginQuad)
	next := d.ir.NextIndex()
	d.ir.Backpatch(cond.FalseList, next)
	return semantic.StmtValue(stmt.NextList, cond.BeginQuad), nil
}

// ifElse implements SelectionStatement -> if ( RelExpr ) Stmt else Stmt
// (spec.md §4.6): pop one entry from PendingIfElseEndJumps and backpatch it
// to next_quad.
func (d *Driver) ifElse(cond, thenStmt, elseStmt semantic.Value) (semantic.Value, error) {
	if len(d.pendingIfElse) == 0 {
		return semantic.Value{}, &ParseError{Message: "unbalanced if-else end-jump stack"}
	}
	endJump := d.pendingIfElse[len(d.pendingIfElse)-1]
	d.pendingIfElse = d.pendingIfElse[:len(d.pendingIfElse)-1]

	next := d.ir.NextIndex()
	d.ir.Backpatch([]int{endJump}, next)

	next1 := append([]int{}, thenStmt.NextList...)
	next1 = append(next1, elseStmt.NextList...)
	return semantic.StmtValue(next1, cond.BeginQuad), nil
}

// whileLoop implements IterationStatement -> while ( RelExpr ) Stmt
// (spec.md §4.6): backpatch B.truelist -> S.begin; backpatch S.nextlist ->
// B.begin; emit (goto, _, _, _, B.begin); backpatch B.falselist ->
// next_quad.
func (d *Driver) whileLoop(cond, stmt semantic.Value) (semantic.Value, error) {
	d.ir.Backpatch(cond.TrueList, stmt.BeginQuad)
	d.ir.Backpatch(stmt.NextList, cond.BeginQuad)
	d.ir.Emit(semantic.Quad{Op: semantic.OpGoto, Target: cond.BeginQuad})
	next := d.ir.NextIndex()
	d.ir.Backpatch(cond.FalseList, next)
	return semantic.StmtValue(nil, cond.BeginQuad), nil
}
