package term

import "fmt"

// AlphaEqual reports whether a and b are structurally equal de Bruijn
// terms, ignoring binder display-names.
func AlphaEqual(a, b Term) bool {
	switch x := a.(type) {
	case Universe:
		_, ok := b.(Universe)
		return ok
	case DataSort:
		_, ok := b.(DataSort)
		return ok
	case Var:
		y, ok := b.(Var)
		return ok && x.Index == y.Index
	case Pi:
		y, ok := b.(Pi)
		return ok && AlphaEqual(x.Domain, y.Domain) && AlphaEqual(x.Codomain, y.Codomain)
	case Lam:
		y, ok := b.(Lam)
		return ok && AlphaEqual(x.Domain, y.Domain) && AlphaEqual(x.Body, y.Body)
	case App:
		y, ok := b.(App)
		return ok && AlphaEqual(x.Func, y.Func) && AlphaEqual(x.Arg, y.Arg)
	case Idt:
		y, ok := b.(Idt)
		if !ok || len(x.Ctrs) != len(y.Ctrs) || !AlphaEqual(x.Signature, y.Signature) {
			return false
		}
		for i := range x.Ctrs {
			if x.Ctrs[i].Name != y.Ctrs[i].Name || !AlphaEqual(x.Ctrs[i].Type, y.Ctrs[i].Type) {
				return false
			}
		}
		return true
	case IdtType:
		y, ok := b.(IdtType)
		return ok && AlphaEqual(x.Data, y.Data)
	case IdtCon:
		y, ok := b.(IdtCon)
		return ok && x.Ctr == y.Ctr && AlphaEqual(x.Data, y.Data)
	case IdtInd:
		y, ok := b.(IdtInd)
		return ok && AlphaEqual(x.Data, y.Data) && AlphaEqual(x.Scrutinee, y.Scrutinee)
	default:
		panic(fmt.Sprintf("term.AlphaEqual: unhandled term variant %T", a))
	}
}
