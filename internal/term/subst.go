package term

import "fmt"

// Subst replaces Var(depth) with value throughout t, decrementing any Var
// whose index exceeds depth to collapse the removed binder's slot. Crossing
// a binder increments depth by one and shifts value by (0, +1) before
// descending, so value's free variables track the extra binder correctly.
func Subst(t Term, depth int, value Term) Term {
	switch x := t.(type) {
	case Universe:
		return x
	case DataSort:
		return x
	case Var:
		switch {
		case x.Index == depth:
			return value
		case x.Index > depth:
			return Var{Index: x.Index - 1}
		default:
			return x
		}
	case Pi:
		return Pi{
			Name:     x.Name,
			Domain:   Subst(x.Domain, depth, value),
			Codomain: Subst(x.Codomain, depth+1, Shift(value, 0, 1)),
		}
	case Lam:
		return Lam{
			Name:   x.Name,
			Domain: Subst(x.Domain, depth, value),
			Body:   Subst(x.Body, depth+1, Shift(value, 0, 1)),
		}
	case App:
		return App{
			Func: Subst(x.Func, depth, value),
			Arg:  Subst(x.Arg, depth, value),
		}
	case Idt:
		shifted := Shift(value, 0, 1)
		ctrs := make([]Ctr, len(x.Ctrs))
		for i, c := range x.Ctrs {
			ctrs[i] = Ctr{Name: c.Name, Type: Subst(c.Type, depth+1, shifted)}
		}
		return Idt{
			Name:      x.Name,
			Signature: Subst(x.Signature, depth, value),
			Ctrs:      ctrs,
		}
	case IdtType:
		return IdtType{Data: Subst(x.Data, depth, value)}
	case IdtCon:
		return IdtCon{Data: Subst(x.Data, depth, value), Ctr: x.Ctr}
	case IdtInd:
		return IdtInd{
			Data:      Subst(x.Data, depth, value),
			Scrutinee: Subst(x.Scrutinee, depth, value),
		}
	default:
		panic(fmt.Sprintf("term.Subst: unhandled term variant %T", t))
	}
}
