package semantic

import "fmt"

// Kind classifies a symbol-table entry (spec.md §3 "Symbol-table entry").
type Kind int

const (
	KindVar Kind = iota
	KindFunc
	KindParam
)

// Entry is one symbol-table entry (spec.md §3 "(kind, type,
// parameter_types[], unique_ir_name, scope_level)").
type Entry struct {
	Name       string
	Kind       Kind
	Type       Type
	ParamTypes []Type
	IRName     string
	ScopeLevel int
}

// Table is the scope stack: an ordered stack of hash maps from source name
// to symbol-table entry, index 0 the global scope (spec.md §3 "Scope
// stack"). Unique IR names are handed out from a monotone counter confined
// to the table's lifetime (spec.md §9 Design Notes: "threaded through
// explicit context objects rather than globals").
type Table struct {
	scopes  []map[string]*Entry
	nextTmp int
	nextID  int
	seenIDs map[string]bool
}

// New returns a table with only the global scope pushed.
func New() *Table {
	return &Table{
		scopes:  []map[string]*Entry{{}},
		seenIDs: map[string]bool{},
	}
}

// Depth is the current scope-stack depth (global scope counts as 1).
func (t *Table) Depth() int { return len(t.scopes) }

// OnlyGlobalScope reports whether every pushed scope has been popped back
// to just the global scope (spec.md §8 "Scope balance").
func (t *Table) OnlyGlobalScope() bool { return len(t.scopes) == 1 }

// PushScope begins a new scope, e.g. when `{` shifts (spec.md §3
// "Lifecycles").
func (t *Table) PushScope() {
	t.scopes = append(t.scopes, map[string]*Entry{})
}

// PopScope ends the innermost scope, e.g. when `}` shifts.
func (t *Table) PopScope() {
	if len(t.scopes) > 1 {
		t.scopes = t.scopes[:len(t.scopes)-1]
	}
}

// DeclaredInCurrentScope reports whether name is already bound in the
// innermost scope (used to reject duplicate declarations).
func (t *Table) DeclaredInCurrentScope(name string) bool {
	_, ok := t.scopes[len(t.scopes)-1][name]
	return ok
}

// Lookup searches from the innermost scope outward, the usual lexical-
// scoping rule.
func (t *Table) Lookup(name string) (*Entry, bool) {
	for i := len(t.scopes) - 1; i >= 0; i-- {
		if e, ok := t.scopes[i][name]; ok {
			return e, true
		}
	}
	return nil, false
}

// uniqueIRName mints an IR name guaranteed unique across the table's
// lifetime (spec.md §3 invariant "unique_ir_name is unique across the
// entire program"), by suffixing the source name with the scope level (0
// for the global scope, i.e. Depth()-1) and a monotone sequence number.
func (t *Table) uniqueIRName(name string) string {
	for {
		t.nextID++
		candidate := fmt.Sprintf("%s@%d#%d", name, len(t.scopes)-1, t.nextID)
		if !t.seenIDs[candidate] {
			t.seenIDs[candidate] = true
			return candidate
		}
	}
}

// Declare binds name in the innermost scope. Callers must check
// DeclaredInCurrentScope first; Declare itself does not re-check (spec.md
// §4.6's reduction actions run the duplicate check before calling this).
func (t *Table) Declare(name string, kind Kind, typ Type, paramTypes []Type) *Entry {
	e := &Entry{
		Name:       name,
		Kind:       kind,
		Type:       typ,
		ParamTypes: paramTypes,
		IRName:     t.uniqueIRName(name),
		ScopeLevel: len(t.scopes) - 1,
	}
	t.scopes[len(t.scopes)-1][name] = e
	return e
}

// NewTemp allocates a fresh temporary IR name ("t1", "t2", ...) for an
// intermediate arithmetic result (spec.md §4.6 "allocate a fresh
// temporary").
func (t *Table) NewTemp() string {
	t.nextTmp++
	return fmt.Sprintf("t%d", t.nextTmp)
}
