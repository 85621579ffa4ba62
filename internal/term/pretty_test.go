package term

import "testing"

func TestPrettyIdentity(t *testing.T) {
	lam := Lam{Name: "x", Domain: Universe{}, Body: Var{Index: 0}}
	got := Pretty(lam, nil)
	want := "[x : Type] x"
	if got != want {
		t.Errorf("Pretty = %q, want %q", got, want)
	}
}

func TestPrettyApplicationFolds(t *testing.T) {
	app := App{Func: App{Func: Var{Index: 0}, Arg: Var{Index: 1}}, Arg: Var{Index: 2}}
	got := Pretty(app, []string{"f", "a", "b"})
	want := "(f a b)"
	if got != want {
		t.Errorf("Pretty = %q, want %q", got, want)
	}
}

func TestPrettyFreeVarFallsBackToIndex(t *testing.T) {
	got := Pretty(Var{Index: 4}, nil)
	if got != "#4" {
		t.Errorf("Pretty = %q, want #4", got)
	}
}

func TestPrettyIdt(t *testing.T) {
	nat := Idt{
		Name:      "Nat",
		Signature: Universe{},
		Ctrs: []Ctr{
			{Name: "succ", Type: Pi{Name: "n", Domain: Var{Index: 0}, Codomain: Var{Index: 1}}},
			{Name: "zero", Type: Var{Index: 0}},
		},
	}
	got := Pretty(nat, nil)
	want := "<Nat : Type | succ : {n : Nat} Nat | zero : Nat>"
	if got != want {
		t.Errorf("Pretty = %q, want %q", got, want)
	}
}
