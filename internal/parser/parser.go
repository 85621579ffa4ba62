// Package parser implements the token-free, character-cursor recursive
// descent parser over the grammar table of the calculus. Whitespace and
// "--" line comments are skipped before every token; there is no separate
// lexing pass.
package parser

import (
	"fmt"
	"strconv"

	"github.com/cwbudde/idtlc/internal/ctx"
	"github.com/cwbudde/idtlc/internal/diag"
	"github.com/cwbudde/idtlc/internal/term"
)

type parser struct {
	src []rune
	pos int
}

// Parse reads the entire buffer as one term. At the top level only (not
// inside any nested production), terms that follow one another after the
// first are folded left-associatively into App; this is what lets an
// expression like "(f x) y" be written without an enclosing pair of parens
// around the whole application; every nested position (Pi/Lam/def bodies,
// constructor field types, the inside of an explicit "(...)" group) parses
// exactly one term per the grammar table, with no such extension.
func Parse(src string) (term.Term, error) {
	p := &parser{src: []rune(src)}
	c := ctx.Context{}

	t, err := p.parseTerm(c)
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			break
		}
		arg, err := p.parseTerm(c)
		if err != nil {
			return nil, err
		}
		t = term.App{Func: t, Arg: arg}
	}
	return t, nil
}

func (p *parser) parseTerm(c ctx.Context) (term.Term, error) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return nil, diag.NewParseError(p.pos, "unexpected end of input, expected a term")
	}

	switch ch := p.src[p.pos]; {
	case ch == '(':
		return p.parseApp(c)
	case ch == '{':
		return p.parsePi(c)
	case ch == '[':
		return p.parseLam(c)
	case ch == '<':
		return p.parseIdt(c)
	case ch == '!':
		p.pos++
		data, err := p.parseTerm(c)
		if err != nil {
			return nil, err
		}
		return term.IdtType{Data: data}, nil
	case ch == '@':
		return p.parseIdtCon(c)
	case ch == '&':
		p.pos++
		data, err := p.parseTerm(c)
		if err != nil {
			return nil, err
		}
		scrutinee, err := p.parseTerm(c)
		if err != nil {
			return nil, err
		}
		return term.IdtInd{Data: data, Scrutinee: scrutinee}, nil
	case ch == '#':
		return p.parseExplicitVar(c)
	case isNameChar(ch):
		return p.parseKeywordOrName(c)
	default:
		return nil, diag.NewParseError(p.pos, "unexpected character %q", ch)
	}
}

func (p *parser) parseApp(c ctx.Context) (term.Term, error) {
	p.pos++ // '('
	fn, err := p.parseTerm(c)
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpace()
		if p.consumeLiteral(")") {
			return fn, nil
		}
		if p.pos >= len(p.src) {
			return nil, diag.NewParseError(p.pos, "unexpected end of input, expected ')'")
		}
		arg, err := p.parseTerm(c)
		if err != nil {
			return nil, err
		}
		fn = term.App{Func: fn, Arg: arg}
	}
}

func (p *parser) parsePi(c ctx.Context) (term.Term, error) {
	p.pos++ // '{'
	name, ok := p.parseNameAfterSkip()
	if !ok {
		return nil, diag.NewParseError(p.pos, "expected binder name after '{'")
	}
	if err := p.expectLiteral(":"); err != nil {
		return nil, err
	}
	domain, err := p.parseTerm(c)
	if err != nil {
		return nil, err
	}
	if err := p.expectLiteral("}"); err != nil {
		return nil, err
	}
	codomain, err := p.parseTerm(c.Extend(name, nil))
	if err != nil {
		return nil, err
	}
	return term.Pi{Name: name, Domain: domain, Codomain: codomain}, nil
}

func (p *parser) parseLam(c ctx.Context) (term.Term, error) {
	p.pos++ // '['
	name, ok := p.parseNameAfterSkip()
	if !ok {
		return nil, diag.NewParseError(p.pos, "expected binder name after '['")
	}
	if err := p.expectLiteral(":"); err != nil {
		return nil, err
	}
	domain, err := p.parseTerm(c)
	if err != nil {
		return nil, err
	}
	if err := p.expectLiteral("]"); err != nil {
		return nil, err
	}
	body, err := p.parseTerm(c.Extend(name, nil))
	if err != nil {
		return nil, err
	}
	return term.Lam{Name: name, Domain: domain, Body: body}, nil
}

func (p *parser) parseDef(c ctx.Context) (term.Term, error) {
	name, ok := p.parseNameAfterSkip()
	if !ok {
		return nil, diag.NewParseError(p.pos, "expected name after 'def'")
	}
	value, err := p.parseTerm(c)
	if err != nil {
		return nil, err
	}
	body, err := p.parseTerm(c.Extend(name, value))
	if err != nil {
		return nil, err
	}
	return body, nil
}

func (p *parser) parseIdt(c ctx.Context) (term.Term, error) {
	p.pos++ // '<'
	name, ok := p.parseNameAfterSkip()
	if !ok {
		return nil, diag.NewParseError(p.pos, "expected datatype name after '<'")
	}
	if err := p.expectLiteral(":"); err != nil {
		return nil, err
	}
	signature, err := p.parseTerm(c)
	if err != nil {
		return nil, err
	}

	selfCtx := c.Extend(name, nil)
	var ctrs []term.Ctr
	for {
		p.skipSpace()
		if !p.consumeLiteral("|") {
			break
		}
		ctrName, ok := p.parseNameAfterSkip()
		if !ok {
			return nil, diag.NewParseError(p.pos, "expected constructor name after '|'")
		}
		if err := p.expectLiteral(":"); err != nil {
			return nil, err
		}
		ctrType, err := p.parseTerm(selfCtx)
		if err != nil {
			return nil, err
		}
		ctrs = append(ctrs, term.Ctr{Name: ctrName, Type: ctrType})
	}
	if err := p.expectLiteral(">"); err != nil {
		return nil, err
	}
	return term.Idt{Name: name, Signature: signature, Ctrs: ctrs}, nil
}

func (p *parser) parseIdtCon(c ctx.Context) (term.Term, error) {
	p.pos++ // '@'
	data, err := p.parseTerm(c)
	if err != nil {
		return nil, err
	}
	if err := p.expectLiteral("."); err != nil {
		return nil, err
	}
	name, ok := p.parseNameAfterSkip()
	if !ok {
		return nil, diag.NewParseError(p.pos, "expected constructor name after '.'")
	}
	return term.IdtCon{Data: data, Ctr: name}, nil
}

func (p *parser) parseExplicitVar(c ctx.Context) (term.Term, error) {
	start := p.pos
	p.pos++ // '#'
	digits, ok := p.parseDigits()
	if !ok {
		return nil, diag.NewParseError(p.pos, "expected digits after '#'")
	}
	idx, err := strconv.Atoi(digits)
	if err != nil {
		return nil, diag.NewParseError(p.pos, "invalid de Bruijn index %q", digits)
	}
	if idx < 0 || idx >= c.Len() {
		return nil, &diag.KernelError{
			Kind:    diag.UnboundVariable,
			Message: fmt.Sprintf("de Bruijn index #%d out of scope (%d binders in scope)", idx, c.Len()),
			Pos:     start,
			HasPos:  true,
		}
	}
	return term.Var{Index: idx}, nil
}

func (p *parser) parseKeywordOrName(c ctx.Context) (term.Term, error) {
	start := p.pos
	word, _ := p.parseName()
	switch word {
	case "Type":
		return term.Universe{}, nil
	case "Data":
		return term.DataSort{}, nil
	case "def":
		return p.parseDef(c)
	default:
		t, ok := c.Resolve(word)
		if !ok {
			return nil, &diag.KernelError{
				Kind:    diag.UnboundVariable,
				Message: fmt.Sprintf("unbound variable %q", word),
				Pos:     start,
				HasPos:  true,
			}
		}
		return t, nil
	}
}

// parseName consumes identifier characters from the current position with
// no leading skip; it does not itself guarantee at least one character was
// consumed; callers check the returned bool.
func (p *parser) parseName() (string, bool) {
	start := p.pos
	for p.pos < len(p.src) && isNameChar(p.src[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return "", false
	}
	return string(p.src[start:p.pos]), true
}

func (p *parser) parseNameAfterSkip() (string, bool) {
	p.skipSpace()
	return p.parseName()
}

func (p *parser) parseDigits() (string, bool) {
	start := p.pos
	for p.pos < len(p.src) && isDigit(p.src[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return "", false
	}
	return string(p.src[start:p.pos]), true
}

// consumeLiteral skips whitespace/comments, then consumes lit if it is next.
func (p *parser) consumeLiteral(lit string) bool {
	p.skipSpace()
	end := p.pos + len(lit)
	if end > len(p.src) {
		return false
	}
	if string(p.src[p.pos:end]) != lit {
		return false
	}
	p.pos = end
	return true
}

func (p *parser) expectLiteral(lit string) error {
	if p.consumeLiteral(lit) {
		return nil
	}
	return diag.NewParseError(p.pos, "expected %q", lit)
}

func (p *parser) skipSpace() {
	for {
		for p.pos < len(p.src) && isSpace(p.src[p.pos]) {
			p.pos++
		}
		if p.pos+1 < len(p.src) && p.src[p.pos] == '-' && p.src[p.pos+1] == '-' {
			p.pos += 2
			for p.pos < len(p.src) && p.src[p.pos] != '\n' {
				p.pos++
			}
			continue
		}
		break
	}
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n'
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isNameChar(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || isDigit(ch) || ch == '_'
}
