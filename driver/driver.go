package driver

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/nihei9/minicc/grammar"
	"github.com/nihei9/minicc/semantic"
	"github.com/nihei9/minicc/token"
)

// frame is one triple of (state, symbol, semantic value), the unit the
// three stacks push and pop together (spec.md §9 Design Notes "Stack
// tri-synchronization... groups them into one vector of triples, making it
// impossible to forget one side"). It backs a single arraylist.List rather
// than three parallel slices, per SPEC_FULL.md's DOMAIN STACK commitment to
// use emirpasic/gods for this.
type frame struct {
	state grammar.StateID
	sym   grammar.Symbol
	val   semantic.Value
}

// Driver runs the shift-reduce parse over a token stream (spec.md §4.6
// "Driver loop").
type Driver struct {
	g     *grammar.Grammar
	table *grammar.Table

	stack *arraylist.List // of frame

	symtab *semantic.Table
	ir     *semantic.IR

	inFunction     bool
	curFuncRet     semantic.Type
	curFuncName    string
	curFuncEntry   *semantic.Entry
	funcScopeDepth int
	pendingFunc    bool
	pendingParams  []paramSpec
	pendingIfElse  []int // PendingIfElseEndJumps
}

type paramSpec struct {
	name string
	typ  semantic.Type
}

// New builds a driver over grammar g's SLR(1) table, with freshly
// initialized stacks (spec.md §4.6 "Stacks").
func New(g *grammar.Grammar, table *grammar.Table) *Driver {
	d := &Driver{
		g:      g,
		table:  table,
		stack:  arraylist.New(),
		symtab: semantic.New(),
		ir:     &semantic.IR{},
	}
	d.stack.Add(frame{state: table.InitialState, sym: grammar.EOF, val: semantic.Empty()})
	return d
}

// IR exposes the accumulated quad list, valid after a successful Run.
func (d *Driver) IR() *semantic.IR { return d.ir }

// SymbolTable exposes the scope stack's underlying table.
func (d *Driver) SymbolTable() *semantic.Table { return d.symtab }

func (d *Driver) depth() int { return d.stack.Size() }

func (d *Driver) top() frame {
	v, _ := d.stack.Get(d.depth() - 1)
	return v.(frame)
}

func (d *Driver) nth(fromTop int) frame {
	v, _ := d.stack.Get(d.depth() - 1 - fromTop)
	return v.(frame)
}

func (d *Driver) push(f frame) { d.stack.Add(f) }

func (d *Driver) popN(n int) []frame {
	out := make([]frame, n)
	for i := n - 1; i >= 0; i-- {
		out[i] = d.top()
		d.stack.Remove(d.depth() - 1)
	}
	return out
}

// ParseError is a fatal syntactic or semantic error (spec.md §7 "Syntactic
// error", "Semantic error").
type ParseError struct {
	Message string
	Line    int
	Col     int
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s (at %d,%d)", e.Message, e.Line, e.Col)
	}
	return e.Message
}

// Run drives the table over tokens to completion (spec.md §4.6 "Driver
// loop"). On Accept it returns nil with the IR and symbol table populated;
// any failure returns a non-nil *ParseError.
func (d *Driver) Run(tokens []token.Token) error {
	pos := 0
	next := func() token.Token {
		if pos < len(tokens) {
			return tokens[pos]
		}
		return token.Token{Kind: token.ENDFILE}
	}

	for {
		tok := next()
		if tok.Kind == token.ERROR {
			return &ParseError{Message: fmt.Sprintf("lexical error at token %q", tok.Lexeme), Line: tok.Line, Col: tok.Col}
		}

		termName, curTerm, err := d.classify(tok)
		if err != nil {
			return err
		}

		state := d.top().state
		act, ok := d.table.Action[state][curTerm]
		if !ok {
			return &ParseError{
				Message: fmt.Sprintf("syntax error: no action for state %d, terminal %q", state, termName),
				Line:    tok.Line, Col: tok.Col,
			}
		}

		switch act.Type {
		case grammar.ActionShift:
			if err := d.shiftPreActions(curTerm, tok); err != nil {
				return err
			}
			d.push(frame{state: act.State, sym: curTerm, val: d.semanticValueFor(curTerm, tok)})
			pos++

		case grammar.ActionReduce:
			if err := d.reduce(act.Prod); err != nil {
				return err
			}

		case grammar.ActionAccept:
			if !d.symtab.OnlyGlobalScope() {
				return &ParseError{Message: "scope imbalance at accept"}
			}
			if len(d.pendingIfElse) != 0 {
				return &ParseError{Message: "unbalanced if-else end-jump stack at accept"}
			}
			return nil

		default:
			return &ParseError{Message: fmt.Sprintf("syntax error: error action at state %d, terminal %q", state, termName)}
		}
	}
}

// classify normalizes a scanned token to its grammar-terminal symbol
// (spec.md §6 "Terminal-name mapping").
func (d *Driver) classify(tok token.Token) (string, grammar.Symbol, error) {
	if tok.Kind == token.ENDFILE {
		return "$", grammar.EOF, nil
	}
	name, ok := terminalFor(tok.Kind)
	if !ok {
		return "", grammar.Symbol{}, &ParseError{Message: fmt.Sprintf("no grammar terminal for token kind %s", tok.Kind), Line: tok.Line, Col: tok.Col}
	}
	return name, grammar.T(name), nil
}

// semanticValueFor builds the semantic value pushed alongside a shifted
// terminal (spec.md §4.6 "push the semantic value derived from the raw
// token"; "the original lexeme is preserved on the semantic stack").
func (d *Driver) semanticValueFor(sym grammar.Symbol, tok token.Token) semantic.Value {
	switch tok.Kind {
	case token.ID:
		return semantic.IdentValue(tok.Lexeme, tok.Line, tok.Col)
	case token.NUM:
		return semantic.NumValue(tok.Lexeme)
	case token.LT, token.GT, token.LTE, token.GTE, token.EQ, token.NEQ:
		return semantic.RelOpValue(sym.Name)
	default:
		return semantic.Empty()
	}
}

// reduce executes one reduction: run the action for production p to
// produce the new LHS value, pop n frames, consult GOTO, and push the
// result (spec.md §4.6 "Reduce(p)").
func (d *Driver) reduce(prodID int) error {
	p := d.g.ProductionByID(prodID)
	n := len(p.RHS)
	popped := d.popN(n)

	rhs := make([]semantic.Value, n)
	for i, f := range popped {
		rhs[i] = f.val
	}

	lhsVal, err := d.action(p, rhs)
	if err != nil {
		return err
	}

	afterState := d.top().state
	nextState, ok := d.table.GoTo[afterState][p.LHS]
	if !ok {
		return &ParseError{Message: fmt.Sprintf("syntax error: no goto for state %d, nonterminal %q", afterState, p.LHS.Name)}
	}
	d.push(frame{state: nextState, sym: p.LHS, val: lhsVal})
	return nil
}
