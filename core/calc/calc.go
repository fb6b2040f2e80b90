// Package calc implements the arithmetic expression language used by the
// Calculator program: the four basic operators plus exponentiation over
// exact arbitrary-precision decimals.
package calc

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// Error reports an expression that couldn't be evaluated: malformed
// numerals, unmatched parentheses, division by zero and the like.
type Error struct {
	Expr string
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("can't evaluate %q: %s", e.Expr, e.Msg)
}

// Decimal evaluation runs under maximum precision with traps enabled so
// lossy operations fail loudly instead of silently rounding.
const evalPrecision = 5000

func evalContext() *apd.Context {
	ctx := apd.BaseContext.WithPrecision(evalPrecision)
	ctx.MaxExponent = apd.MaxExponent
	ctx.MinExponent = apd.MinExponent
	ctx.Traps = apd.DefaultTraps
	return ctx
}

// Eval evaluates an arithmetic expression and renders the result for
// display: the exact decimal answer converted to floating form with
// trailing fractional zeros (and a then-bare decimal point) stripped.
func Eval(expr string) (string, error) {
	d, err := evalExact(expr)
	if err != nil {
		return "", err
	}

	f, err := d.Float64()
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return "", &Error{Expr: expr, Msg: "result out of range"}
	}

	s := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.Contains(s, ".") && !strings.ContainsAny(s, "eE") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s, nil
}

func evalExact(expr string) (*apd.Decimal, error) {
	toks, err := lex(expr)
	if err != nil {
		return nil, &Error{Expr: expr, Msg: err.Error()}
	}

	p := &parser{expr: expr, toks: toks, ctx: evalContext()}
	d, err := p.primary()
	if err != nil {
		return nil, err
	}
	if !p.atEOF() {
		return nil, p.errorf("unexpected %q", p.peek().text)
	}
	return d, nil
}

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokOp               // one of + - * / ^
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
}

// lex splits an expression into number, operator and parenthesis tokens.
// A leading + or - is folded into a number only where an operand is
// expected, so "2-3" is a subtraction while "(-3)" is a negative literal.
func lex(expr string) ([]token, error) {
	var toks []token
	operandNext := true

	i := 0
	for i < len(expr) {
		c := expr[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++

		case c == '(':
			toks = append(toks, token{tokLParen, "("})
			operandNext = true
			i++

		case c == ')':
			toks = append(toks, token{tokRParen, ")"})
			operandNext = false
			i++

		case strings.ContainsRune("+-*/^", rune(c)) && !operandNext:
			toks = append(toks, token{tokOp, string(c)})
			operandNext = true
			i++

		case c >= '0' && c <= '9' || c == '.' || ((c == '+' || c == '-') && operandNext):
			start := i
			if c == '+' || c == '-' {
				i++
			}
			digits := false
			for i < len(expr) && (expr[i] >= '0' && expr[i] <= '9' || expr[i] == '.') {
				digits = true
				i++
			}
			// Optional exponent part, e.g. 1.5e-3.
			if digits && i < len(expr) && (expr[i] == 'e' || expr[i] == 'E') {
				j := i + 1
				if j < len(expr) && (expr[j] == '+' || expr[j] == '-') {
					j++
				}
				k := j
				for k < len(expr) && expr[k] >= '0' && expr[k] <= '9' {
					k++
				}
				if k > j {
					i = k
				}
			}
			if !digits {
				return nil, fmt.Errorf("malformed numeral at %q", expr[start:])
			}
			toks = append(toks, token{tokNumber, expr[start:i]})
			operandNext = false

		default:
			return nil, fmt.Errorf("unexpected character %q", string(c))
		}
	}

	return toks, nil
}

// parser is a recursive-descent evaluator over four strictly
// left-associative precedence tiers. Each tier folds its trailing
// (operator, operand) pairs left to right, which yields conventional
// precedence, including left-associative exponentiation.
type parser struct {
	expr string
	toks []token
	pos  int
	ctx  *apd.Context
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return &Error{Expr: p.expr, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) atEOF() bool { return p.pos >= len(p.toks) }

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) acceptOp(ops string) (string, bool) {
	if p.atEOF() {
		return "", false
	}
	t := p.peek()
	if t.kind == tokOp && strings.Contains(ops, t.text) {
		p.pos++
		return t.text, true
	}
	return "", false
}

func (p *parser) foldTier(ops string, next func() (*apd.Decimal, error)) (*apd.Decimal, error) {
	acc, err := next()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.acceptOp(ops)
		if !ok {
			return acc, nil
		}
		rhs, err := next()
		if err != nil {
			return nil, err
		}
		acc, err = p.apply(op, acc, rhs)
		if err != nil {
			return nil, err
		}
	}
}

func (p *parser) primary() (*apd.Decimal, error) {
	return p.foldTier("+-", p.secondary)
}

func (p *parser) secondary() (*apd.Decimal, error) {
	return p.foldTier("*/", p.tertiary)
}

func (p *parser) tertiary() (*apd.Decimal, error) {
	return p.foldTier("^", p.quaternary)
}

func (p *parser) quaternary() (*apd.Decimal, error) {
	if p.atEOF() {
		return nil, p.errorf("unexpected end of expression")
	}

	switch t := p.peek(); t.kind {
	case tokNumber:
		p.pos++
		d, _, err := apd.NewFromString(t.text)
		if err != nil {
			return nil, p.errorf("malformed numeral %q", t.text)
		}
		return d, nil

	case tokLParen:
		p.pos++
		inner, err := p.primary()
		if err != nil {
			return nil, err
		}
		if p.atEOF() || p.peek().kind != tokRParen {
			return nil, p.errorf("unmatched parenthesis")
		}
		p.pos++
		return inner, nil

	default:
		return nil, p.errorf("unexpected %q", t.text)
	}
}

func (p *parser) apply(op string, x, y *apd.Decimal) (*apd.Decimal, error) {
	d := new(apd.Decimal)

	var err error
	switch op {
	case "+":
		_, err = p.ctx.Add(d, x, y)
	case "-":
		_, err = p.ctx.Sub(d, x, y)
	case "*":
		_, err = p.ctx.Mul(d, x, y)
	case "/":
		_, err = p.ctx.Quo(d, x, y)
	case "^":
		// Non-integer and negative exponents take whatever semantics the
		// decimal library defines for Pow; deterministic, but otherwise
		// implementation defined.
		_, err = p.ctx.Pow(d, x, y)
	default:
		return nil, p.errorf("unknown operator %q", op)
	}

	if err != nil {
		return nil, p.errorf("%s", err)
	}
	return d, nil
}
