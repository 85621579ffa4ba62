package term

import (
	"fmt"
	"strings"
)

// Pretty renders t using names as the stack of enclosing binder
// display-names, outermost first. A Var whose de Bruijn index has no
// corresponding entry (free, or deeper than the supplied context) falls
// back to #idx. Pretty-print syntax is identical to parse syntax, so the
// result round-trips through the parser.
func Pretty(t Term, names []string) string {
	switch x := t.(type) {
	case Universe:
		return "Type"
	case DataSort:
		return "Data"
	case Var:
		return varName(names, x.Index)
	case Pi:
		return fmt.Sprintf("{%s : %s} %s", x.Name, Pretty(x.Domain, names), Pretty(x.Codomain, extend(names, x.Name)))
	case Lam:
		return fmt.Sprintf("[%s : %s] %s", x.Name, Pretty(x.Domain, names), Pretty(x.Body, extend(names, x.Name)))
	case App:
		return prettyApp(x, names)
	case Idt:
		var sb strings.Builder
		sb.WriteString("<")
		sb.WriteString(x.Name)
		sb.WriteString(" : ")
		sb.WriteString(Pretty(x.Signature, names))
		ctrNames := extend(names, x.Name)
		for _, c := range x.Ctrs {
			sb.WriteString(" | ")
			sb.WriteString(c.Name)
			sb.WriteString(" : ")
			sb.WriteString(Pretty(c.Type, ctrNames))
		}
		sb.WriteString(">")
		return sb.String()
	case IdtType:
		return "!" + Pretty(x.Data, names)
	case IdtCon:
		return "@" + Pretty(x.Data, names) + "." + x.Ctr
	case IdtInd:
		return "&" + Pretty(x.Data, names) + " " + Pretty(x.Scrutinee, names)
	default:
		panic(fmt.Sprintf("term.Pretty: unhandled term variant %T", t))
	}
}

func prettyApp(a App, names []string) string {
	var args []string
	var cur Term = a
	for {
		next, ok := cur.(App)
		if !ok {
			break
		}
		args = append(args, Pretty(next.Arg, names))
		cur = next.Func
	}
	args = append(args, Pretty(cur, names))
	for i, j := 0, len(args)-1; i < j; i, j = i+1, j-1 {
		args[i], args[j] = args[j], args[i]
	}
	return "(" + strings.Join(args, " ") + ")"
}

func varName(names []string, idx int) string {
	pos := len(names) - 1 - idx
	if pos < 0 || pos >= len(names) {
		return fmt.Sprintf("#%d", idx)
	}
	return names[pos]
}

func extend(names []string, name string) []string {
	out := make([]string, len(names)+1)
	copy(out, names)
	out[len(names)] = name
	return out
}
