// Package driver runs the shift-reduce parse (spec.md §4.6): it drives the
// SLR(1) table built by package grammar over the token stream package scan
// wrote to disk, executing semantic actions that populate a semantic.Table
// and a semantic.IR as it goes.
package driver

import "github.com/nihei9/minicc/token"

// terminalNames maps a lexical token kind to the grammar-terminal name used
// for ACTION/GOTO lookup (spec.md §6 "Terminal-name mapping"). ID and NUM
// are normalized to lowercase "id"/"num"; keywords and operators use their
// literal spelling; the original lexeme is preserved separately on the
// semantic stack.
var terminalNames = map[token.Kind]string{
	token.ID:     "id",
	token.NUM:    "num",
	token.IF:     "if",
	token.ELSE:   "else",
	token.WHILE:  "while",
	token.RETURN: "return",
	token.INT:    "int",
	token.VOID:   "void",
	token.READ:   "read",
	token.WRITE:  "write",

	token.PLUS:   "+",
	token.MINUS:  "-",
	token.MULT:   "*",
	token.DIV:    "/",
	token.ASSIGN: "=",
	token.GT:     ">",
	token.LT:     "<",
	token.GTE:    ">=",
	token.LTE:    "<=",
	token.EQ:     "==",
	token.NEQ:    "!=",

	token.LPAREN: "(",
	token.RPAREN: ")",
	token.LBRACE: "{",
	token.RBRACE: "}",
	token.SEMI:   ";",
	token.COMMA:  ",",
}

// terminalFor looks up the grammar-terminal name for a scanned token.
func terminalFor(k token.Kind) (string, bool) {
	name, ok := terminalNames[k]
	return name, ok
}
