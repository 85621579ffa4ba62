package term

import "testing"

func TestSubstReplacesExactDepth(t *testing.T) {
	got := Subst(Var{Index: 0}, 0, Universe{})
	if !AlphaEqual(got, Universe{}) {
		t.Errorf("Subst = %v, want Universe", got)
	}
}

func TestSubstCollapsesDeeperIndices(t *testing.T) {
	got := Subst(Var{Index: 2}, 0, Universe{})
	want := Var{Index: 1}
	if !AlphaEqual(got, want) {
		t.Errorf("Subst = %v, want %v", got, want)
	}
}

func TestSubstLeavesShallowerIndicesAlone(t *testing.T) {
	got := Subst(Var{Index: 0}, 1, Universe{})
	want := Var{Index: 0}
	if !AlphaEqual(got, want) {
		t.Errorf("Subst = %v, want %v", got, want)
	}
}

func TestSubstBetaReducesIdentityApplication(t *testing.T) {
	// ([x : Type] x) applied to Type beta-reduces to Type.
	identity := Lam{Name: "x", Domain: Universe{}, Body: Var{Index: 0}}
	got := Subst(identity.Body, 0, Universe{})
	if !AlphaEqual(got, Universe{}) {
		t.Errorf("beta reduction = %v, want Universe", got)
	}
}

func TestSubstShiftsValueWhenCrossingBinder(t *testing.T) {
	// The substitution target sits one binder deeper than depth, so the
	// replacement value must be shifted by one to keep referring to the
	// same outer variable once it is spliced in under the Lam.
	body := Lam{Name: "y", Domain: Universe{}, Body: Var{Index: 2}}
	got := Subst(body, 1, Var{Index: 0})
	want := Lam{Name: "y", Domain: Universe{}, Body: Var{Index: 1}}
	if !AlphaEqual(got, want) {
		t.Errorf("Subst = %v, want %v", got, want)
	}
}
