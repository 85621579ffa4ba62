package check

import (
	"testing"

	"github.com/cwbudde/idtlc/internal/budget"
	"github.com/cwbudde/idtlc/internal/ctx"
	"github.com/cwbudde/idtlc/internal/diag"
	"github.com/cwbudde/idtlc/internal/eval"
	"github.com/cwbudde/idtlc/internal/parser"
	"github.com/cwbudde/idtlc/internal/term"
)

func checkSource(t *testing.T, src string) (term.Term, error) {
	t.Helper()
	parsed, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return Check(parsed, ctx.Context{}, budget.New(0))
}

func TestCheckIdentityLambda(t *testing.T) {
	// [x : Type] x infers {x : Type} Type.
	got, err := checkSource(t, "[x : Type] x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := term.Pi{Name: "x", Domain: term.Universe{}, Codomain: term.Universe{}}
	if !term.AlphaEqual(got, want) {
		t.Errorf("type = %v, want %v", got, want)
	}
}

func TestCheckApplicationInfersType(t *testing.T) {
	// ([x : Type] x) Type infers Type.
	got, err := checkSource(t, "([x : Type] x) Type")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !term.AlphaEqual(got, term.Universe{}) {
		t.Errorf("type = %v, want Type", got)
	}
}

func TestCheckNatConstructorProjectsEncodedType(t *testing.T) {
	// def Nat <...> @Nat.zero infers the encoded Nat type.
	got, err := checkSource(t, "def Nat <Nat : Type | succ : {n : Nat} Nat | zero : Nat> @Nat.zero")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := term.Pi{
		Name:   "Nat",
		Domain: term.Universe{},
		Codomain: term.Pi{
			Name:     "succ",
			Domain:   term.Pi{Name: "n", Domain: term.Var{Index: 0}, Codomain: term.Var{Index: 1}},
			Codomain: term.Pi{Name: "zero", Domain: term.Var{Index: 1}, Codomain: term.Var{Index: 2}},
		},
	}
	if !term.AlphaEqual(got, want) {
		t.Errorf("type = %v, want %v", got, want)
	}
}

func TestCheckTypeMismatch(t *testing.T) {
	// ([x : Type] x) ([y : Type] y) must surface TypeMismatch.
	_, err := checkSource(t, "([x : Type] x) ([y : Type] y)")
	if err == nil {
		t.Fatal("expected error")
	}
	ke, ok := err.(*diag.KernelError)
	if !ok {
		t.Fatalf("expected *diag.KernelError, got %T", err)
	}
	if ke.Kind != diag.TypeMismatch {
		t.Errorf("expected TypeMismatch, got %v", ke.Kind)
	}
}

func TestCheckNonFunctionApplication(t *testing.T) {
	_, err := checkSource(t, "(Type Type)")
	if err == nil {
		t.Fatal("expected error")
	}
	ke, ok := err.(*diag.KernelError)
	if !ok {
		t.Fatalf("expected *diag.KernelError, got %T", err)
	}
	if ke.Kind != diag.NonFunctionApplication {
		t.Errorf("expected NonFunctionApplication, got %v", ke.Kind)
	}
}

func TestCheckIdtTypeOnNonIdtIsNonStaticData(t *testing.T) {
	_, err := checkSource(t, "!Type")
	if err == nil {
		t.Fatal("expected error")
	}
	ke, ok := err.(*diag.KernelError)
	if !ok {
		t.Fatalf("expected *diag.KernelError, got %T", err)
	}
	if ke.Kind != diag.NonStaticData {
		t.Errorf("expected NonStaticData, got %v", ke.Kind)
	}
}

func TestCheckUnknownConstructor(t *testing.T) {
	_, err := checkSource(t, "def Nat <Nat : Type | succ : {n : Nat} Nat | zero : Nat> @Nat.nope")
	if err == nil {
		t.Fatal("expected error")
	}
	ke, ok := err.(*diag.KernelError)
	if !ok {
		t.Fatalf("expected *diag.KernelError, got %T", err)
	}
	if ke.Kind != diag.UnknownConstructor {
		t.Errorf("expected UnknownConstructor, got %v", ke.Kind)
	}
}

func TestCheckInductionOnNat(t *testing.T) {
	// def Nat <...> &Nat @Nat.zero infers the induction principle's
	// motive/case/return Pi chain, with an induction hypothesis inserted
	// after succ's recursive field.
	got, err := checkSource(t, "def Nat <Nat : Type | succ : {n : Nat} Nat | zero : Nat> &Nat @Nat.zero")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	nat := term.Idt{
		Name:      "Nat",
		Signature: term.Universe{},
		Ctrs: []term.Ctr{
			{Name: "succ", Type: term.Pi{Name: "n", Domain: term.Var{Index: 0}, Codomain: term.Var{Index: 1}}},
			{Name: "zero", Type: term.Var{Index: 0}},
		},
	}
	idtType := eval.DeriveType(nat)
	succCtr, err := eval.DeriveConstructor(nat, "succ", budget.New(0))
	if err != nil {
		t.Fatalf("unexpected error deriving succ: %v", err)
	}
	zeroCtr, err := eval.DeriveConstructor(nat, "zero", budget.New(0))
	if err != nil {
		t.Fatalf("unexpected error deriving zero: %v", err)
	}
	scrutinee := term.IdtCon{Data: nat, Ctr: "zero"}

	want := term.Pi{
		Name:   "P",
		Domain: term.Pi{Name: "self", Domain: idtType, Codomain: term.Universe{}},
		Codomain: term.Pi{
			Name: "succ",
			Domain: term.Pi{
				Name:   "n_",
				Domain: idtType,
				Codomain: term.Pi{
					Name:   "n",
					Domain: term.App{Func: term.Var{Index: 1}, Arg: term.Var{Index: 0}},
					Codomain: term.App{
						Func: term.Var{Index: 2},
						Arg:  term.App{Func: succCtr, Arg: term.Var{Index: 1}},
					},
				},
			},
			Codomain: term.Pi{
				Name:   "zero",
				Domain: term.App{Func: term.Var{Index: 1}, Arg: zeroCtr},
				Codomain: term.App{
					Func: term.Var{Index: 2},
					Arg:  scrutinee,
				},
			},
		},
	}
	if !term.AlphaEqual(got, want) {
		t.Errorf("type = %v, want %v", got, want)
	}
}

func TestCheckInductionOnNonInductiveScrutinee(t *testing.T) {
	// &Nat Type: the scrutinee's type (Type) is not an element of Nat's
	// encoding, so derivation must fail instead of producing a motive.
	_, err := checkSource(t, "def Nat <Nat : Type | succ : {n : Nat} Nat | zero : Nat> &Nat Type")
	if err == nil {
		t.Fatal("expected error")
	}
	ke, ok := err.(*diag.KernelError)
	if !ok {
		t.Fatalf("expected *diag.KernelError, got %T", err)
	}
	if ke.Kind != diag.TypeMismatch {
		t.Errorf("expected TypeMismatch, got %v", ke.Kind)
	}
}

// Every constructor projection checks to a Pi chain whose codomain is an
// application (or direct occurrence) of the encoded self-type variable.
func TestCheckConstructorTypesEndInSelfApplication(t *testing.T) {
	for _, ctr := range []string{"succ", "zero"} {
		got, err := checkSource(t, "def Nat <Nat : Type | succ : {n : Nat} Nat | zero : Nat> @Nat."+ctr)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", ctr, err)
		}
		pi, ok := got.(term.Pi)
		if !ok {
			t.Fatalf("%s: type = %T, want Pi", ctr, got)
		}
		binders := 0
		var body term.Term = pi
		for {
			inner, ok := body.(term.Pi)
			if !ok {
				break
			}
			binders++
			body = inner.Codomain
		}
		for {
			app, ok := body.(term.App)
			if !ok {
				break
			}
			body = app.Func
		}
		head, ok := body.(term.Var)
		if !ok {
			t.Fatalf("%s: codomain spine head = %T, want Var", ctr, body)
		}
		if head.Index >= binders {
			t.Errorf("%s: spine head index %d escapes the %d-binder chain", ctr, head.Index, binders)
		}
	}
}

func TestCheckDataSortAndIdt(t *testing.T) {
	got, err := checkSource(t, "def Nat <Nat : Type | succ : {n : Nat} Nat | zero : Nat> Nat")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !term.AlphaEqual(got, term.DataSort{}) {
		t.Errorf("type = %v, want Data", got)
	}
}
