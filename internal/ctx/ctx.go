// Package ctx implements the binder context used by the parser (to resolve
// named references) and the type checker (to look up a variable's type).
package ctx

import "github.com/cwbudde/idtlc/internal/term"

// Entry records one binder: its display name and the term stored at its de
// Bruijn distance (a type, when used by the checker; a resolvable term,
// when used by the parser for name resolution; the same mechanism serves
// both, populated differently at each call site).
type Entry struct {
	Name string
	Term term.Term
}

// Context is an ordered stack of Entry. entries[i] is the binder at de
// Bruijn index i: index 0 (innermost) lives at the front, so Extend only
// has to prepend and Lookup is a direct index.
type Context struct {
	entries []Entry
}

// Extend shifts every existing entry's term by +1 at depth 0, then prepends
// a new entry at index 0. If t is nil the new entry stores Var(0), the
// binder's own reference, which is what the parser wants for an ordinary
// Pi/Lam/Idt binder with no associated value; callers that want the
// checker's "type at this index" behaviour, or a def binding's term, pass
// the real term.
func (c Context) Extend(name string, t term.Term) Context {
	var entryTerm term.Term
	if t == nil {
		entryTerm = term.Var{Index: 0}
	} else {
		entryTerm = term.Shift(t, 0, 1)
	}
	next := make([]Entry, 0, len(c.entries)+1)
	next = append(next, Entry{Name: name, Term: entryTerm})
	for _, e := range c.entries {
		next = append(next, Entry{Name: e.Name, Term: term.Shift(e.Term, 0, 1)})
	}
	return Context{entries: next}
}

// Lookup returns the entry stored at de Bruijn index idx and whether it
// exists.
func (c Context) Lookup(idx int) (Entry, bool) {
	if idx < 0 || idx >= len(c.entries) {
		return Entry{}, false
	}
	return c.entries[idx], true
}

// Resolve walks the context from innermost outwards looking for name,
// returning the term stored in the matching entry. Binder-introduced names
// store Var(0) shifted into place by subsequent Extend calls (yielding the
// correct de Bruijn index); def-introduced names store the defined term.
func (c Context) Resolve(name string) (term.Term, bool) {
	for _, e := range c.entries {
		if e.Name == name {
			return e.Term, true
		}
	}
	return nil, false
}

// Names returns the display-name stack in outermost-first order, suitable
// for term.Pretty.
func (c Context) Names() []string {
	out := make([]string, len(c.entries))
	for i, e := range c.entries {
		out[len(c.entries)-1-i] = e.Name
	}
	return out
}

// Len reports the number of binders in scope.
func (c Context) Len() int {
	return len(c.entries)
}
