// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package poly

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/consensys/go-partfrac/pkg/util/source"
)

// Largest exponent accepted by the parser.  Anything bigger is almost
// certainly a mistake, and would only burn memory.
const maxExponent = 1024

// ParseRational parses an expression denoting a univariate rational function,
// returning its numerator, denominator and the variable encountered (which is
// empty for constant expressions).  The denominator is a non-zero polynomial,
// though not necessarily constant one; parsing "1/(x+1) + 1" yields the pair
// (x+2, x+1).
//
// The supported syntax is conventional infix notation over a single variable:
// integer and decimal literals, the operators "+", "-", "*", "/" and "^"
// (with literal exponents), parentheses, and implicit multiplication by
// juxtaposition, as in "7x^2" or "(x+1)(x+2)".
func ParseRational(file *source.File) (Polynomial, Polynomial, string, *source.SyntaxError) {
	tokens, err := scanTokens(file)
	//
	if err != nil {
		return Polynomial{}, Polynomial{}, "", err
	}
	//
	parser := &parser{file, tokens, 0, ""}
	//
	result, err := parser.parseExpression()
	if err != nil {
		return Polynomial{}, Polynomial{}, "", err
	}
	// Ensure the entire input was consumed.
	if tok := parser.lookahead(); tok.kind != tokenEOF {
		return Polynomial{}, Polynomial{}, "", file.SyntaxError(tok.span, "unexpected token")
	}
	//
	return result.num, result.den, parser.variable, nil
}

// ParsePolynomial parses an expression denoting a polynomial, rejecting any
// expression whose denominator fails to cancel down to a constant.
func ParsePolynomial(file *source.File) (Polynomial, string, *source.SyntaxError) {
	num, den, variable, err := ParseRational(file)
	//
	if err != nil {
		return Polynomial{}, "", err
	} else if !den.IsConstant() {
		span := source.NewSpan(0, len(file.Contents()))
		return Polynomial{}, "", file.SyntaxError(span, "expected a polynomial, not a rational function")
	}
	// Denominator is a non-zero constant, so fold it into the numerator.
	constant, _ := den.LeadingCoefficient()
	//
	return num.Scale(new(big.Rat).Inv(constant)), variable, nil
}

// ParseString parses an expression given as a raw string, as arises on the
// command line.  See ParseRational for the supported syntax.
func ParseString(input string) (Polynomial, Polynomial, string, *source.SyntaxError) {
	return ParseRational(source.NewSourceFile("expr", []byte(input)))
}

// ============================================================================
// Lexer
// ============================================================================

const (
	tokenEOF uint = iota
	tokenNumber
	tokenIdent
	tokenPlus
	tokenMinus
	tokenStar
	tokenSlash
	tokenCaret
	tokenLeftParen
	tokenRightParen
)

type token struct {
	kind uint
	span source.Span
}

// Scan the contents of a given file into a token sequence, which is always
// terminated by a single EOF token.
func scanTokens(file *source.File) ([]token, *source.SyntaxError) {
	var (
		tokens []token
		text   = file.Contents()
		index  = 0
	)
	//
	for index < len(text) {
		c := text[index]
		//
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			index++
		case isDigit(c) || c == '.':
			start := index
			for index < len(text) && (isDigit(text[index]) || text[index] == '.') {
				index++
			}
			//
			tokens = append(tokens, token{tokenNumber, source.NewSpan(start, index)})
		case isLetter(c):
			start := index
			for index < len(text) && (isLetter(text[index]) || isDigit(text[index])) {
				index++
			}
			//
			tokens = append(tokens, token{tokenIdent, source.NewSpan(start, index)})
		default:
			kind, ok := operatorKind(c)
			if !ok {
				span := source.NewSpan(index, index+1)
				return nil, file.SyntaxError(span, fmt.Sprintf("unexpected character %q", c))
			}
			//
			tokens = append(tokens, token{kind, source.NewSpan(index, index+1)})
			index++
		}
	}
	//
	tokens = append(tokens, token{tokenEOF, source.NewSpan(len(text), len(text))})
	//
	return tokens, nil
}

func operatorKind(c rune) (uint, bool) {
	switch c {
	case '+':
		return tokenPlus, true
	case '-':
		return tokenMinus, true
	case '*':
		return tokenStar, true
	case '/':
		return tokenSlash, true
	case '^':
		return tokenCaret, true
	case '(':
		return tokenLeftParen, true
	case ')':
		return tokenRightParen, true
	default:
		return tokenEOF, false
	}
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

// ============================================================================
// Parser
// ============================================================================

// A rational function under construction, held as an explicit numerator /
// denominator pair.  The denominator is never the zero polynomial.  No
// cancellation between the two is ever attempted.
type ratFunc struct {
	num Polynomial
	den Polynomial
}

func (r ratFunc) add(other ratFunc) ratFunc {
	num := r.num.Mul(other.den).Add(other.num.Mul(r.den))
	return ratFunc{num, r.den.Mul(other.den)}
}

func (r ratFunc) neg() ratFunc {
	return ratFunc{r.num.Neg(), r.den}
}

func (r ratFunc) mul(other ratFunc) ratFunc {
	return ratFunc{r.num.Mul(other.num), r.den.Mul(other.den)}
}

// Invert this rational function.  The caller must have established that the
// numerator is non-zero.
func (r ratFunc) inv() ratFunc {
	return ratFunc{r.den, r.num}
}

func (r ratFunc) pow(n uint) ratFunc {
	return ratFunc{r.num.Pow(n), r.den.Pow(n)}
}

type parser struct {
	file   *source.File
	tokens []token
	index  int
	// Name of the (single) variable encountered so far, or empty if none yet.
	variable string
}

// Lookahead returns the next token without consuming it.  This is always
// safe, as the token sequence is EOF terminated.
func (p *parser) lookahead() token {
	return p.tokens[p.index]
}

// Text returns the original text covered by a given token.
func (p *parser) text(tok token) string {
	contents := p.file.Contents()
	return string(contents[tok.span.Start():tok.span.End()])
}

// expression := term (("+" | "-") term)*
func (p *parser) parseExpression() (ratFunc, *source.SyntaxError) {
	lhs, err := p.parseTerm()
	//
	if err != nil {
		return ratFunc{}, err
	}
	//
	for {
		switch p.lookahead().kind {
		case tokenPlus:
			p.index++
			//
			rhs, err := p.parseTerm()
			if err != nil {
				return ratFunc{}, err
			}
			//
			lhs = lhs.add(rhs)
		case tokenMinus:
			p.index++
			//
			rhs, err := p.parseTerm()
			if err != nil {
				return ratFunc{}, err
			}
			//
			lhs = lhs.add(rhs.neg())
		default:
			return lhs, nil
		}
	}
}

// term := unary (("*" | "/") unary | power)*
//
// The second alternative is implicit multiplication by juxtaposition, which
// binds exactly as tightly as "*".
func (p *parser) parseTerm() (ratFunc, *source.SyntaxError) {
	lhs, err := p.parseUnary()
	//
	if err != nil {
		return ratFunc{}, err
	}
	//
	for {
		tok := p.lookahead()
		//
		switch tok.kind {
		case tokenStar:
			p.index++
			//
			rhs, err := p.parseUnary()
			if err != nil {
				return ratFunc{}, err
			}
			//
			lhs = lhs.mul(rhs)
		case tokenSlash:
			p.index++
			//
			rhs, err := p.parseUnary()
			if err != nil {
				return ratFunc{}, err
			} else if rhs.num.IsZero() {
				return ratFunc{}, p.file.SyntaxError(tok.span, "division by zero")
			}
			//
			lhs = lhs.mul(rhs.inv())
		case tokenNumber, tokenIdent, tokenLeftParen:
			rhs, err := p.parsePower()
			if err != nil {
				return ratFunc{}, err
			}
			//
			lhs = lhs.mul(rhs)
		default:
			return lhs, nil
		}
	}
}

// unary := "-" unary | power
func (p *parser) parseUnary() (ratFunc, *source.SyntaxError) {
	if p.lookahead().kind == tokenMinus {
		p.index++
		//
		operand, err := p.parseUnary()
		if err != nil {
			return ratFunc{}, err
		}
		//
		return operand.neg(), nil
	}
	//
	return p.parsePower()
}

// power := atom ["^" ["-"] NUMBER]
//
// Exponents are restricted to integer literals, hence chained exponentiation
// requires explicit parentheses.  A negative exponent inverts the operand.
func (p *parser) parsePower() (ratFunc, *source.SyntaxError) {
	base, err := p.parseAtom()
	//
	if err != nil {
		return ratFunc{}, err
	}
	//
	caret := p.lookahead()
	if caret.kind != tokenCaret {
		return base, nil
	}
	//
	p.index++
	// Check for a negated exponent.
	negated := false
	if p.lookahead().kind == tokenMinus {
		negated = true
		p.index++
	}
	//
	tok := p.lookahead()
	if tok.kind != tokenNumber {
		return ratFunc{}, p.file.SyntaxError(tok.span, "expected integer exponent")
	}
	//
	p.index++
	//
	exponent, perr := strconv.ParseUint(p.text(tok), 10, 32)
	if perr != nil {
		return ratFunc{}, p.file.SyntaxError(tok.span, "malformed exponent")
	} else if exponent > maxExponent {
		return ratFunc{}, p.file.SyntaxError(tok.span, "exponent too large")
	}
	//
	if negated {
		if base.num.IsZero() {
			return ratFunc{}, p.file.SyntaxError(caret.span, "division by zero")
		}
		//
		base = base.inv()
	}
	//
	return base.pow(uint(exponent)), nil
}

// atom := NUMBER | IDENT | "(" expression ")"
func (p *parser) parseAtom() (ratFunc, *source.SyntaxError) {
	one := FromInt64s(1)
	tok := p.lookahead()
	//
	switch tok.kind {
	case tokenNumber:
		p.index++
		//
		value, ok := new(big.Rat).SetString(p.text(tok))
		if !ok {
			return ratFunc{}, p.file.SyntaxError(tok.span, "malformed number")
		}
		//
		return ratFunc{Constant(value), one}, nil
	case tokenIdent:
		p.index++
		// Enforce that expressions are univariate.
		name := p.text(tok)
		if p.variable == "" {
			p.variable = name
		} else if p.variable != name {
			msg := fmt.Sprintf("unexpected second variable %q", name)
			return ratFunc{}, p.file.SyntaxError(tok.span, msg)
		}
		//
		return ratFunc{Identity(), one}, nil
	case tokenLeftParen:
		p.index++
		//
		inner, err := p.parseExpression()
		if err != nil {
			return ratFunc{}, err
		}
		//
		if closing := p.lookahead(); closing.kind != tokenRightParen {
			return ratFunc{}, p.file.SyntaxError(closing.span, "expected closing bracket")
		}
		//
		p.index++
		//
		return inner, nil
	case tokenEOF:
		return ratFunc{}, p.file.SyntaxError(tok.span, "unexpected end of expression")
	default:
		return ratFunc{}, p.file.SyntaxError(tok.span, "unexpected token")
	}
}
