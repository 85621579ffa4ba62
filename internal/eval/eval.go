// Package eval implements the β-normalising evaluator and the inductive
// datatype derivation engine together, since they are mutually recursive:
// evaluating an IdtType/IdtCon needs the derived type/constructor of an
// Idt, and deriving a constructor needs to evaluate the substituted field
// telescope. eval.go holds the reducer; derive.go holds the Church/Scott
// encoding and the induction-principle builder.
package eval

import (
	"fmt"

	"github.com/cwbudde/idtlc/internal/budget"
	"github.com/cwbudde/idtlc/internal/term"
)

// Eval reduces t to weak-head-then-structural β-normal form, recursing
// fully under binders. b bounds recursion depth; pass budget.New(0) (the
// zero value) for no limit.
func Eval(t term.Term, b budget.Budget) (term.Term, error) {
	b, err := b.Enter()
	if err != nil {
		return nil, err
	}

	switch x := t.(type) {
	case term.Universe, term.DataSort, term.Var:
		return x, nil

	case term.Pi:
		domain, err := Eval(x.Domain, b)
		if err != nil {
			return nil, err
		}
		codomain, err := Eval(x.Codomain, b)
		if err != nil {
			return nil, err
		}
		return term.Pi{Name: x.Name, Domain: domain, Codomain: codomain}, nil

	case term.Lam:
		domain, err := Eval(x.Domain, b)
		if err != nil {
			return nil, err
		}
		body, err := Eval(x.Body, b)
		if err != nil {
			return nil, err
		}
		return term.Lam{Name: x.Name, Domain: domain, Body: body}, nil

	case term.App:
		return evalApp(x, b)

	case term.Idt:
		return evalIdt(x, b)

	case term.IdtType:
		data, err := Eval(x.Data, b)
		if err != nil {
			return nil, err
		}
		if idt, ok := data.(term.Idt); ok {
			return DeriveType(idt), nil
		}
		return term.IdtType{Data: data}, nil

	case term.IdtCon:
		data, err := Eval(x.Data, b)
		if err != nil {
			return nil, err
		}
		if idt, ok := data.(term.Idt); ok {
			return DeriveConstructor(idt, x.Ctr, b)
		}
		return term.IdtCon{Data: data, Ctr: x.Ctr}, nil

	case term.IdtInd:
		// Induction has no runtime behaviour: it is only interesting at
		// the type level, so evaluating it evaluates the scrutinee and
		// discards the projection.
		return Eval(x.Scrutinee, b)

	default:
		panic(fmt.Sprintf("eval.Eval: unhandled term variant %T", t))
	}
}

func evalApp(a term.App, b budget.Budget) (term.Term, error) {
	fn, err := Eval(a.Func, b)
	if err != nil {
		return nil, err
	}
	lam, ok := fn.(term.Lam)
	if !ok {
		arg, err := Eval(a.Arg, b)
		if err != nil {
			return nil, err
		}
		return term.App{Func: fn, Arg: arg}, nil
	}
	return Eval(term.Subst(lam.Body, 0, a.Arg), b)
}

func evalIdt(x term.Idt, b budget.Budget) (term.Term, error) {
	signature, err := Eval(x.Signature, b)
	if err != nil {
		return nil, err
	}
	ctrs := make([]term.Ctr, len(x.Ctrs))
	for i, c := range x.Ctrs {
		t, err := Eval(c.Type, b)
		if err != nil {
			return nil, err
		}
		ctrs[i] = term.Ctr{Name: c.Name, Type: t}
	}
	return term.Idt{Name: x.Name, Signature: signature, Ctrs: ctrs}, nil
}
