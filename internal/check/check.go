// Package check implements the bidirectional type checker: a single pass
// that returns the (unnormalised) type of a term in a given context,
// relying on the evaluator to compare types up to β.
package check

import (
	"fmt"

	"github.com/cwbudde/idtlc/internal/budget"
	"github.com/cwbudde/idtlc/internal/ctx"
	"github.com/cwbudde/idtlc/internal/diag"
	"github.com/cwbudde/idtlc/internal/eval"
	"github.com/cwbudde/idtlc/internal/term"
)

// Check infers the type of t in context c. b bounds recursion depth; pass
// budget.New(0) for no limit.
func Check(t term.Term, c ctx.Context, b budget.Budget) (term.Term, error) {
	b, err := b.Enter()
	if err != nil {
		return nil, err
	}

	switch x := t.(type) {
	case term.Universe:
		// Type : Type; there is no universe hierarchy.
		return term.Universe{}, nil

	case term.DataSort:
		return term.Universe{}, nil

	case term.Var:
		entry, ok := c.Lookup(x.Index)
		if !ok {
			return nil, diag.New(diag.UnboundVariable, x, "variable index %d is out of scope", x.Index)
		}
		return eval.Eval(entry.Term, b)

	case term.Pi:
		if err := checkIsType(x, c, b); err != nil {
			return nil, err
		}
		return term.Universe{}, nil

	case term.Lam:
		bodyType, err := Check(x.Body, c.Extend(x.Name, x.Domain), b)
		if err != nil {
			return nil, err
		}
		pi := term.Pi{Name: x.Name, Domain: x.Domain, Codomain: bodyType}
		if err := checkIsType(pi, c, b); err != nil {
			return nil, err
		}
		return pi, nil

	case term.App:
		return checkApp(x, c, b)

	case term.Idt:
		// No structural checks on the IDT body beyond what parsing already
		// ensured: no positivity or termination checking.
		return term.DataSort{}, nil

	case term.IdtType:
		idt, err := checkStaticData(x.Data, x, b)
		if err != nil {
			return nil, err
		}
		return Check(eval.DeriveType(idt), c, b)

	case term.IdtCon:
		idt, err := checkStaticData(x.Data, x, b)
		if err != nil {
			return nil, err
		}
		ctrTerm, err := eval.DeriveConstructor(idt, x.Ctr, b)
		if err != nil {
			return nil, err
		}
		return Check(ctrTerm, c, b)

	case term.IdtInd:
		idt, err := checkStaticData(x.Data, x, b)
		if err != nil {
			return nil, err
		}
		scrutineeType, err := Check(x.Scrutinee, c, b)
		if err != nil {
			return nil, err
		}
		return eval.DeriveInduction(idt, x.Scrutinee, scrutineeType, b)

	default:
		panic(fmt.Sprintf("check.Check: unhandled term variant %T", t))
	}
}

// checkStaticData evaluates data and requires it to be an Idt, as needed by
// every one of the three IDT-projection forms; diagnostics name the
// original projection term (not just its data payload) so the offending
// surface syntax is what gets reported.
func checkStaticData(data term.Term, projection term.Term, b budget.Budget) (term.Idt, error) {
	v, err := eval.Eval(data, b)
	if err != nil {
		return term.Idt{}, err
	}
	idt, ok := v.(term.Idt)
	if !ok {
		return term.Idt{}, diag.New(diag.NonStaticData, projection, "could not determine datatype statically")
	}
	return idt, nil
}

// checkIsType verifies a Pi is a well-formed type: its domain's type and,
// under the domain binder, its codomain's type must both evaluate to Type.
func checkIsType(p term.Pi, c ctx.Context, b budget.Budget) error {
	domainType, err := Check(p.Domain, c, b)
	if err != nil {
		return err
	}
	domainType, err = eval.Eval(domainType, b)
	if err != nil {
		return err
	}
	if !term.AlphaEqual(domainType, term.Universe{}) {
		return diag.New(diag.NotAType, p.Domain, "domain has type %s, expected Type", term.Pretty(domainType, c.Names()))
	}

	codomainType, err := Check(p.Codomain, c.Extend(p.Name, p.Domain), b)
	if err != nil {
		return err
	}
	codomainType, err = eval.Eval(codomainType, b)
	if err != nil {
		return err
	}
	if !term.AlphaEqual(codomainType, term.Universe{}) {
		return diag.New(diag.NotAType, p.Codomain, "codomain has type %s, expected Type", term.Pretty(codomainType, c.Names()))
	}
	return nil
}

// checkApp implements the App rule: the function side must check and
// evaluate to a Pi, the argument's evaluated type must α-equal the Pi's
// domain, and the result is the Pi's codomain with the (unevaluated)
// argument substituted at index 0.
func checkApp(a term.App, c ctx.Context, b budget.Budget) (term.Term, error) {
	funcType, err := Check(a.Func, c, b)
	if err != nil {
		return nil, err
	}
	funcType, err = eval.Eval(funcType, b)
	if err != nil {
		return nil, err
	}
	pi, ok := funcType.(term.Pi)
	if !ok {
		return nil, diag.New(diag.NonFunctionApplication, a.Func, "has type %s, not a function type", term.Pretty(funcType, c.Names()))
	}

	argType, err := Check(a.Arg, c, b)
	if err != nil {
		return nil, err
	}
	argType, err = eval.Eval(argType, b)
	if err != nil {
		return nil, err
	}
	if !term.AlphaEqual(pi.Domain, argType) {
		return nil, diag.New(diag.TypeMismatch, a,
			"expected %s, actual %s", term.Pretty(pi.Domain, c.Names()), term.Pretty(argType, c.Names()))
	}

	return term.Subst(pi.Codomain, 0, a.Arg), nil
}
