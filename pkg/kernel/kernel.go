// Package kernel is the public surface over the term AST, evaluator, and
// bidirectional checker: parse one expression, β-normalise it, and infer its
// type, each independently usable or composed via Run for the full driver
// pipeline. cmd/idtlc and the golden tests in this package are both
// callers of this API, never of internal/eval or internal/check directly.
package kernel

import (
	"github.com/cwbudde/idtlc/internal/budget"
	"github.com/cwbudde/idtlc/internal/check"
	"github.com/cwbudde/idtlc/internal/ctx"
	"github.com/cwbudde/idtlc/internal/eval"
	"github.com/cwbudde/idtlc/internal/parser"
	"github.com/cwbudde/idtlc/internal/term"
)

// options holds the settings assembled from a caller's Option values.
type options struct {
	maxDepth int
}

// Option configures Eval, Check, or Run.
type Option func(*options)

// WithMaxDepth bounds recursion depth across evaluation, checking, and
// derivation, surfacing diag.DepthExceeded once exceeded. Zero (the
// zero-value default) means unlimited.
func WithMaxDepth(n int) Option {
	return func(o *options) { o.maxDepth = n }
}

func resolve(opts []Option) options {
	var o options
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

// Parse reads src as a single term.
func Parse(src string) (term.Term, error) {
	return parser.Parse(src)
}

// Eval reduces t to β-normal form.
func Eval(t term.Term, opts ...Option) (term.Term, error) {
	o := resolve(opts)
	return eval.Eval(t, budget.New(o.maxDepth))
}

// Check infers t's type in the empty context.
func Check(t term.Term, opts ...Option) (term.Term, error) {
	o := resolve(opts)
	return check.Check(t, ctx.Context{}, budget.New(o.maxDepth))
}

// Pretty renders t using its own binder names, falling back to #index for
// any variable escaping the printed term's own binder chain.
func Pretty(t term.Term) string {
	return term.Pretty(t, nil)
}

// Result is the driver's three output blocks: the parsed input, its normal
// form, and its inferred type, each available as both a term and its
// pretty-printed rendering.
type Result struct {
	Input      term.Term
	Normal     term.Term
	Type       term.Term
	InputText  string
	NormalText string
	TypeText   string
}

// Run implements the driver end to end: parse src, infer its type, reduce
// it to normal form, and pretty-print all three. Type inference runs
// against the parsed (not yet normalised) input; Check evaluates sub-terms
// itself as needed.
func Run(src string, opts ...Option) (*Result, error) {
	o := resolve(opts)
	b := budget.New(o.maxDepth)

	t, err := parser.Parse(src)
	if err != nil {
		return nil, err
	}

	typ, err := check.Check(t, ctx.Context{}, b)
	if err != nil {
		return nil, err
	}

	normal, err := eval.Eval(t, b)
	if err != nil {
		return nil, err
	}

	return &Result{
		Input:      t,
		Normal:     normal,
		Type:       typ,
		InputText:  term.Pretty(t, nil),
		NormalText: term.Pretty(normal, nil),
		TypeText:   term.Pretty(typ, nil),
	}, nil
}
