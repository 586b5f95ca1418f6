package driver

import (
	"fmt"

	"github.com/nihei9/minicc/grammar"
	"github.com/nihei9/minicc/semantic"
	"github.com/nihei9/minicc/token"
)

// shiftPreActions runs the work spec.md §4.6 performs at shift time rather
// than at reduction time (spec.md §9 Design Notes "the pre-action hack"):
// the if-else mid-goto and true/false-list backpatch when `else` shifts,
// function-header-onset detection when `(` shifts right after `Type id` at
// global scope, and the scope push/pop when `{`/`}` shift.
func (d *Driver) shiftPreActions(sym grammar.Symbol, tok token.Token) error {
	switch sym.Name {
	case "else":
		return d.preElse()
	case "(":
		d.preFunctionHeaderOnset()
	case "{":
		return d.preOpenBrace()
	case "}":
		d.preCloseBrace()
	}
	return nil
}

// preElse implements spec.md §4.6 shift pre-action 1: find the most recent
// `if ( RelExpr ) Stmt` on the stack (the dot is exactly after that Stmt,
// since the SLR table only shifts `else` rather than reducing
// `SelectionStatement -> if ( RelExpr ) Stmt` first); emit the unresolved
// mid-goto, backpatch the condition's truelist to the then-branch's
// begin_quad, and backpatch falselist to the next quad (the first quad of
// the else branch).
func (d *Driver) preElse() error {
	if d.depth() < 5 {
		return &ParseError{Message: "else with no matching if on the stack"}
	}
	stmt := d.nth(0)
	cond := d.nth(2)
	ifSym := d.nth(4)
	if stmt.sym.Name != "Stmt" || cond.sym.Name != "RelExpr" || ifSym.sym.Name != "if" {
		return &ParseError{Message: "else with no matching if ( RelExpr ) Stmt on the stack"}
	}

	d.ir.Backpatch(cond.val.TrueList, stmt.val.BeginQuad)

	endJump := d.ir.EmitUnresolvedGoto()
	d.ir.Backpatch(cond.val.FalseList, d.ir.NextIndex())
	d.pendingIfElse = append(d.pendingIfElse, endJump)
	return nil
}

// preFunctionHeaderOnset implements spec.md §4.6 shift pre-action 2: `Type
// id` immediately followed by `(` at global scope starts a function
// definition.
func (d *Driver) preFunctionHeaderOnset() {
	if d.symtab.Depth() != 1 || d.depth() < 2 {
		return
	}
	idFrame := d.nth(0)
	typeFrame := d.nth(1)
	if idFrame.sym.Name != "id" || typeFrame.sym.Name != "Type" {
		return
	}

	name := idFrame.val.Ident
	d.curFuncName = name
	d.curFuncRet = typeFrame.val.Type
	d.inFunction = true
	d.pendingFunc = true
	d.pendingParams = nil

	if d.symtab.DeclaredInCurrentScope(name) {
		d.curFuncEntry = nil
		return
	}
	d.curFuncEntry = d.symtab.Declare(name, semantic.KindFunc, d.curFuncRet, nil)
}

// preOpenBrace implements the scope pre-action for `{` (spec.md §4.6
// "Scope pre-actions"): begin a new scope; if PendingFunc, record the
// current scope depth and install the collected parameters.
func (d *Driver) preOpenBrace() error {
	d.symtab.PushScope()
	if !d.pendingFunc {
		return nil
	}
	d.pendingFunc = false
	d.funcScopeDepth = d.symtab.Depth()

	paramTypes := make([]semantic.Type, 0, len(d.pendingParams))
	for _, p := range d.pendingParams {
		if d.symtab.DeclaredInCurrentScope(p.name) {
			return &ParseError{Message: fmt.Sprintf("duplicate parameter %q", p.name)}
		}
		d.symtab.Declare(p.name, semantic.KindParam, p.typ, nil)
		paramTypes = append(paramTypes, p.typ)
	}
	if d.curFuncEntry != nil {
		d.curFuncEntry.ParamTypes = paramTypes
	}
	d.pendingParams = nil
	return nil
}

// preCloseBrace implements the scope pre-action for `}`: end the current
// scope; if scopes.depth < FuncScopeDepth, clear the function context.
func (d *Driver) preCloseBrace() {
	d.symtab.PopScope()
	if d.inFunction && d.symtab.Depth() < d.funcScopeDepth {
		d.inFunction = false
		d.curFuncName = ""
		d.curFuncRet = semantic.TypeNone
		d.curFuncEntry = nil
		d.funcScopeDepth = 0
	}
}
