// Package diag formats the kernel's fatal diagnostics: one of the error
// kinds named by the calculus, the offending term pretty-printed, and, for
// parse errors, the cursor index at which the error was raised.
package diag

import (
	"fmt"
	"strings"

	"github.com/cwbudde/idtlc/internal/term"
)

// Kind identifies one of the fatal error categories the kernel can raise.
type Kind int

const (
	// ParseError is an unexpected character or missing expected token.
	ParseError Kind = iota
	// UnboundVariable is a named reference or de Bruijn index out of scope.
	UnboundVariable
	// NotAType is a Pi whose domain or codomain is not of type Type.
	NotAType
	// NonFunctionApplication is an App whose function side is not a Pi.
	NonFunctionApplication
	// TypeMismatch is an argument type that disagrees with the expected
	// domain.
	TypeMismatch
	// NonStaticData is an IdtType/IdtCon/IdtInd applied to a non-Idt.
	NonStaticData
	// UnknownConstructor is an IdtCon naming a constructor the Idt does
	// not declare.
	UnknownConstructor
	// DepthExceeded is the optional recursion-budget fault.
	DepthExceeded
)

// String names the kind the way it is reported to the user.
func (k Kind) String() string {
	switch k {
	case ParseError:
		return "ParseError"
	case UnboundVariable:
		return "UnboundVariable"
	case NotAType:
		return "NotAType"
	case NonFunctionApplication:
		return "NonFunctionApplication"
	case TypeMismatch:
		return "TypeMismatch"
	case NonStaticData:
		return "NonStaticData"
	case UnknownConstructor:
		return "UnknownConstructor"
	case DepthExceeded:
		return "DepthExceeded"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// KernelError is a single fatal diagnostic: a Kind, a human-readable
// message, the offending term (nil when not applicable, e.g. ParseError),
// and a cursor index (set only on errors raised by the parser: ParseError,
// and UnboundVariable for an unresolved name or #index).
type KernelError struct {
	Kind    Kind
	Message string
	Term    term.Term
	Pos     int
	HasPos  bool
}

// Error implements the error interface.
func (e *KernelError) Error() string {
	return e.Format()
}

// Format renders the single-line diagnostic required by the driver: the
// error kind, the message, the offending term's pretty-print (if any), and
// the cursor index (if any).
func (e *KernelError) Format() string {
	var sb strings.Builder
	sb.WriteString(e.Kind.String())
	if e.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Message)
	}
	if e.Term != nil {
		sb.WriteString(" (term: ")
		sb.WriteString(term.Pretty(e.Term, nil))
		sb.WriteString(")")
	}
	if e.HasPos {
		fmt.Fprintf(&sb, " at position %d", e.Pos)
	}
	return sb.String()
}

// FormatErrors renders multiple KernelErrors, one per line, numbered. The
// driver only ever surfaces one fatal error at a time, but pkg/kernel
// is usable as a library where a caller may batch diagnostics across many
// inputs.
func FormatErrors(errs []*KernelError) string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		return errs[0].Format()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d errors:\n", len(errs))
	for i, e := range errs {
		fmt.Fprintf(&sb, "[%d/%d] %s\n", i+1, len(errs), e.Format())
	}
	return sb.String()
}

// NewParseError builds a ParseError KernelError at cursor position pos.
func NewParseError(pos int, format string, args ...any) *KernelError {
	return &KernelError{Kind: ParseError, Message: fmt.Sprintf(format, args...), Pos: pos, HasPos: true}
}

// New builds a KernelError of the given kind carrying the offending term.
func New(kind Kind, t term.Term, format string, args ...any) *KernelError {
	return &KernelError{Kind: kind, Message: fmt.Sprintf(format, args...), Term: t}
}
