package eval

import (
	"github.com/cwbudde/idtlc/internal/budget"
	"github.com/cwbudde/idtlc/internal/diag"
	"github.com/cwbudde/idtlc/internal/term"
)

// IsRecursive reports whether fieldType is a recursive occurrence of the
// inductive being defined: peeling any number of App heads off fieldType
// lands on the self-reference Var(depth).
func IsRecursive(depth int, fieldType term.Term) bool {
	for {
		switch x := fieldType.(type) {
		case term.App:
			fieldType = x.Func
		case term.Var:
			return x.Index == depth
		default:
			return false
		}
	}
}

// DeriveType builds the Church/Scott-encoded type of idt: a Lam
// chain over idt's index telescope wrapping a Pi chain that binds the
// self-type under idt's display name and then each constructor in turn,
// returning the self variable applied to the indices in declaration order.
func DeriveType(idt term.Idt) term.Term {
	return deriveTypeIndices(idt, 0, idt.Signature)
}

func deriveTypeIndices(idt term.Idt, depth int, indices term.Term) term.Term {
	pi, ok := indices.(term.Pi)
	if !ok {
		return deriveTypeMotive(idt, depth)
	}
	return term.Lam{
		Name:   pi.Name,
		Domain: pi.Domain,
		Body:   deriveTypeIndices(idt, depth+1, pi.Codomain),
	}
}

func deriveTypeMotive(idt term.Idt, depth int) term.Term {
	return term.Pi{
		Name:     idt.Name,
		Domain:   term.Shift(idt.Signature, 0, depth),
		Codomain: deriveTypeCtr(idt, depth+1, 0),
	}
}

// deriveTypeCtr binds constructor num's field type under the constructor's
// display name. The field type's outer free variables are shifted past the
// binders now in scope, and its self-reference (Var(0) within the
// constructor's own one-binder context) is re-pointed at the self-type
// binder, which sits num binders out behind the constructors already bound.
func deriveTypeCtr(idt term.Idt, depth, num int) term.Term {
	if num >= len(idt.Ctrs) {
		return deriveTypeReturn(idt, depth)
	}
	c := idt.Ctrs[num]
	domain := term.Subst(term.Shift(c.Type, 1, depth), 0, term.Var{Index: num})
	return term.Pi{
		Name:     c.Name,
		Domain:   domain,
		Codomain: deriveTypeCtr(idt, depth+1, num+1),
	}
}

func deriveTypeReturn(idt term.Idt, depth int) term.Term {
	var result term.Term = term.Var{Index: len(idt.Ctrs)}
	for i := 0; i < depth-len(idt.Ctrs)-1; i++ {
		result = term.App{Func: result, Arg: term.Var{Index: depth - i - 1}}
	}
	return result
}

// DeriveConstructor builds the encoded constructor term for name.
// The constructor's own field type has its self-reference substituted with
// idt's derived type and the result evaluated, which exposes every Pi layer
// the final term must bind as a Lam: name's declared fields plus the
// motive/case layers unfolded out of the encoded self-type wherever a field
// mentions an applied self (indexed IDTs). A second walk over the
// constructor's original, unsubstituted field type then decides which
// fields are recursive and assembles the application spine, unrolling a
// recursive field by first applying it to the motive and every case.
func DeriveConstructor(idt term.Idt, name string, b budget.Budget) (term.Term, error) {
	index := -1
	for i, c := range idt.Ctrs {
		if c.Name == name {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, diag.New(diag.UnknownConstructor, idt, "%q is not a constructor of %s", name, idt.Name)
	}

	original := idt.Ctrs[index].Type
	shape, err := Eval(term.Subst(original, 0, DeriveType(idt)), b)
	if err != nil {
		return nil, err
	}
	caseVar := term.Var{Index: len(idt.Ctrs) - index - 1}
	return deriveCtrArguments(idt, 0, shape, original, caseVar), nil
}

func deriveCtrArguments(idt term.Idt, depth int, shape, original term.Term, caseVar term.Term) term.Term {
	pi, ok := shape.(term.Pi)
	if !ok {
		return deriveCtrFields(idt, depth, original, 0, caseVar)
	}
	return term.Lam{
		Name:   pi.Name,
		Domain: pi.Domain,
		Body:   deriveCtrArguments(idt, depth+1, pi.Codomain, original, caseVar),
	}
}

func deriveCtrFields(idt term.Idt, depth int, original term.Term, fieldIndex int, value term.Term) term.Term {
	pi, ok := original.(term.Pi)
	if !ok {
		return value
	}
	field := term.Term(term.Var{Index: depth - fieldIndex - 1})
	if IsRecursive(fieldIndex, pi.Domain) {
		for i := 0; i <= len(idt.Ctrs); i++ {
			field = term.App{Func: field, Arg: term.Var{Index: len(idt.Ctrs) - i}}
		}
	}
	return deriveCtrFields(idt, depth, pi.Codomain, fieldIndex+1, term.App{Func: value, Arg: field})
}

// DeriveInduction builds the induction principle of idt applied to
// scrutinee: a Pi over a motive P (the index telescope recovered
// from scrutineeType plus a final self-binder), a case for each
// constructor with an induction hypothesis inserted after every recursive
// field, and a return type applying the motive to the indices and to
// scrutinee. scrutineeType is the checked (unevaluated) type of scrutinee.
//
// scrutinee is shifted by the number of binders accumulated by the motive
// and case chain before being embedded in the return type, so that its free
// variables (if any) keep resolving against the context in which it was
// originally checked rather than being captured by the newly introduced
// P/case binders.
func DeriveInduction(idt term.Idt, scrutinee, scrutineeType term.Term, b budget.Budget) (term.Term, error) {
	return deriveIndMotive(idt, 0, scrutinee, scrutineeType, b)
}

func deriveIndMotive(idt term.Idt, depth int, scrutinee, scrutineeType term.Term, b budget.Budget) (term.Term, error) {
	pi, ok := scrutineeType.(term.Pi)
	if !ok {
		return nil, diag.New(diag.TypeMismatch, scrutinee,
			"induction scrutinee has type %s, expected an element of %s", term.Pretty(scrutineeType, nil), idt.Name)
	}
	domain := deriveIndMotiveIndices(depth, pi.Domain, DeriveType(idt))
	codomain, err := deriveIndCases(idt, depth+1, pi.Codomain, scrutinee, b)
	if err != nil {
		return nil, err
	}
	return term.Pi{Name: "P", Domain: domain, Codomain: codomain}, nil
}

// deriveIndMotiveIndices walks idt's index telescope (recovered from the
// constructor type's own P-layer) appending an application of selfType to
// each index variable as it is bound, landing on a final "self" binder
// typed at the fully-applied self type once the telescope is exhausted.
func deriveIndMotiveIndices(depth int, indicesType, selfType term.Term) term.Term {
	pi, ok := indicesType.(term.Pi)
	if !ok {
		return term.Pi{Name: "self", Domain: selfType, Codomain: indicesType}
	}
	return term.Pi{
		Name:   pi.Name,
		Domain: pi.Domain,
		Codomain: deriveIndMotiveIndices(depth+1, pi.Codomain,
			term.App{Func: term.Shift(selfType, 0, 1), Arg: term.Var{Index: 0}}),
	}
}

func deriveIndCases(idt term.Idt, depth int, casesType, scrutinee term.Term, b budget.Budget) (term.Term, error) {
	pi, ok := casesType.(term.Pi)
	if !ok {
		return term.App{Func: casesType, Arg: term.Shift(scrutinee, 0, depth)}, nil
	}
	caseValue, err := DeriveConstructor(idt, pi.Name, b)
	if err != nil {
		return nil, err
	}
	domain := deriveIndCase(idt, depth, pi.Domain, caseValue)
	codomain, err := deriveIndCases(idt, depth+1, pi.Codomain, scrutinee, b)
	if err != nil {
		return nil, err
	}
	return term.Pi{Name: pi.Name, Domain: domain, Codomain: codomain}, nil
}

// deriveIndCase walks a single constructor's field telescope, inserting an
// induction hypothesis binder immediately after every recursive field and
// threading selfValue (the fully-applied constructor term, under the
// current binder chain) so the final return type applies the motive to
// the constructed value.
func deriveIndCase(idt term.Idt, depth int, fieldsType, selfValue term.Term) term.Term {
	pi, ok := fieldsType.(term.Pi)
	if !ok {
		return term.App{Func: fieldsType, Arg: selfValue}
	}
	if IsRecursive(depth-1, pi.Domain) {
		hypDomain := term.Subst(pi.Domain, depth-1, term.Shift(DeriveType(idt), 0, depth))
		return term.Pi{
			Name:   pi.Name + "_",
			Domain: hypDomain,
			Codomain: term.Pi{
				Name:   pi.Name,
				Domain: term.App{Func: term.Shift(pi.Domain, 0, 1), Arg: term.Var{Index: 0}},
				Codomain: deriveIndCase(idt, depth+2, term.Shift(pi.Codomain, 0, 1),
					term.App{Func: term.Shift(selfValue, 0, 2), Arg: term.Var{Index: 1}}),
			},
		}
	}
	return term.Pi{
		Name:   pi.Name,
		Domain: pi.Domain,
		Codomain: deriveIndCase(idt, depth+1, pi.Codomain,
			term.App{Func: term.Shift(selfValue, 0, 1), Arg: term.Var{Index: 0}}),
	}
}
