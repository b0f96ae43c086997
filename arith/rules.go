// Package arith parses and evaluates integer arithmetic with a family of
// engines that share one derivation engine and differ in grammar shape, memo
// policy and tokenization.
//
//	Additive  ← Multitive ('+' | '-') …
//	Multitive ← Primary ('*' | '/' | '%') …
//	Primary   ← '(' Additive ')' | Decimal
package arith

import "github.com/arr-ai/packrat/derivs"

// Rule ids shared by every grammar. A grammar leaves the rules it does not use
// undefined.
const (
	Additive derivs.Rule = iota
	AdditiveSuffix
	Multitive
	MultitiveSuffix
	Primary
	Decimal
	Digits
	Digit
	Symbol
	Whitespace
	Start

	ruleCount = int(Start) + 1
)
