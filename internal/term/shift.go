package term

import "fmt"

// Shift returns a term identical to t with every Var whose index is at
// least cutoff incremented by inc. Crossing a binder increments cutoff by
// one for the recursive call into that binder's body.
func Shift(t Term, cutoff, inc int) Term {
	switch x := t.(type) {
	case Universe:
		return x
	case DataSort:
		return x
	case Var:
		if x.Index >= cutoff {
			return Var{Index: x.Index + inc}
		}
		return x
	case Pi:
		return Pi{
			Name:     x.Name,
			Domain:   Shift(x.Domain, cutoff, inc),
			Codomain: Shift(x.Codomain, cutoff+1, inc),
		}
	case Lam:
		return Lam{
			Name:   x.Name,
			Domain: Shift(x.Domain, cutoff, inc),
			Body:   Shift(x.Body, cutoff+1, inc),
		}
	case App:
		return App{
			Func: Shift(x.Func, cutoff, inc),
			Arg:  Shift(x.Arg, cutoff, inc),
		}
	case Idt:
		ctrs := make([]Ctr, len(x.Ctrs))
		for i, c := range x.Ctrs {
			ctrs[i] = Ctr{Name: c.Name, Type: Shift(c.Type, cutoff+1, inc)}
		}
		return Idt{
			Name:      x.Name,
			Signature: Shift(x.Signature, cutoff, inc),
			Ctrs:      ctrs,
		}
	case IdtType:
		return IdtType{Data: Shift(x.Data, cutoff, inc)}
	case IdtCon:
		return IdtCon{Data: Shift(x.Data, cutoff, inc), Ctr: x.Ctr}
	case IdtInd:
		return IdtInd{
			Data:      Shift(x.Data, cutoff, inc),
			Scrutinee: Shift(x.Scrutinee, cutoff, inc),
		}
	default:
		panic(fmt.Sprintf("term.Shift: unhandled term variant %T", t))
	}
}
