package arith

import "github.com/arr-ai/packrat/grammar"

var (
	// NaiveProductions describes the right recursive grammar of the recurse,
	// cache, packrat and monad engines.
	NaiveProductions = naiveProductions()

	// LeftRecursiveProductions is the natural statement of the full grammar.
	// It is left recursive, so no engine can run it as is.
	LeftRecursiveProductions = leftRecursiveProductions()

	// SuffixProductions is LeftRecursiveProductions with left recursion
	// eliminated. The left engine runs it.
	SuffixProductions = suffixProductions()

	// LexProductions is SuffixProductions over whitespace skipping tokens and
	// multi-digit numbers. The lex engine runs it.
	LexProductions = lexProductions()
)

func charAlts(chars string, then ...grammar.Symbol) []grammar.Alt {
	alts := make([]grammar.Alt, 0, len(chars))
	for _, ch := range chars {
		alts = append(alts, append(grammar.Alt{grammar.T(string(ch))}, then...))
	}
	return alts
}

func naiveProductions() grammar.Productions {
	P, R, T := grammar.P, grammar.R, grammar.T
	return grammar.Productions{
		P("Additive", grammar.Alt{R("Multitive"), T("+"), R("Additive")}, grammar.Alt{R("Multitive")}),
		P("Multitive", grammar.Alt{R("Primary"), T("*"), R("Multitive")}, grammar.Alt{R("Primary")}),
		P("Primary", grammar.Alt{T("("), R("Additive"), T(")")}, grammar.Alt{R("Decimal")}),
		P("Decimal", charAlts(digits)...),
	}
}

func leftRecursiveProductions() grammar.Productions {
	P, R, T := grammar.P, grammar.R, grammar.T
	return grammar.Productions{
		P("Additive",
			grammar.Alt{R("Additive"), T("+"), R("Multitive")},
			grammar.Alt{R("Additive"), T("-"), R("Multitive")},
			grammar.Alt{R("Multitive")}),
		P("Multitive",
			grammar.Alt{R("Multitive"), T("*"), R("Primary")},
			grammar.Alt{R("Multitive"), T("/"), R("Primary")},
			grammar.Alt{R("Multitive"), T("%"), R("Primary")},
			grammar.Alt{R("Primary")}),
		P("Primary", grammar.Alt{T("("), R("Additive"), T(")")}, grammar.Alt{R("Decimal")}),
		P("Decimal", charAlts(digits)...),
	}
}

func suffixProductions() grammar.Productions {
	P, R, T := grammar.P, grammar.R, grammar.T
	return grammar.Productions{
		P("Additive", grammar.Alt{R("Multitive"), R("AdditiveSuffix")}),
		P("AdditiveSuffix",
			grammar.Alt{T("+"), R("Multitive"), R("AdditiveSuffix")},
			grammar.Alt{T("-"), R("Multitive"), R("AdditiveSuffix")},
			grammar.Alt{}),
		P("Multitive", grammar.Alt{R("Primary"), R("MultitiveSuffix")}),
		P("MultitiveSuffix",
			grammar.Alt{T("*"), R("Primary"), R("MultitiveSuffix")},
			grammar.Alt{T("/"), R("Primary"), R("MultitiveSuffix")},
			grammar.Alt{T("%"), R("Primary"), R("MultitiveSuffix")},
			grammar.Alt{}),
		P("Primary", grammar.Alt{T("("), R("Additive"), T(")")}, grammar.Alt{R("Decimal")}),
		P("Decimal", charAlts(digits)...),
	}
}

func lexProductions() grammar.Productions {
	P, R, T := grammar.P, grammar.R, grammar.T
	ws := R("Whitespace")
	return grammar.Productions{
		P("Start", grammar.Alt{ws, R("Additive")}),
		P("Additive", grammar.Alt{R("Multitive"), R("AdditiveSuffix")}),
		P("AdditiveSuffix",
			grammar.Alt{T("+"), ws, R("Multitive"), R("AdditiveSuffix")},
			grammar.Alt{T("-"), ws, R("Multitive"), R("AdditiveSuffix")},
			grammar.Alt{}),
		P("Multitive", grammar.Alt{R("Primary"), R("MultitiveSuffix")}),
		P("MultitiveSuffix",
			grammar.Alt{T("*"), ws, R("Primary"), R("MultitiveSuffix")},
			grammar.Alt{T("/"), ws, R("Primary"), R("MultitiveSuffix")},
			grammar.Alt{T("%"), ws, R("Primary"), R("MultitiveSuffix")},
			grammar.Alt{}),
		P("Primary", grammar.Alt{T("("), ws, R("Additive"), T(")"), ws}, grammar.Alt{R("Decimal")}),
		P("Decimal", grammar.Alt{R("Digits"), ws}),
		P("Digits", grammar.Alt{R("Digit"), R("Digits")}, grammar.Alt{R("Digit")}),
		P("Digit", charAlts(digits)...),
		P("Whitespace", append(charAlts(spaces, ws), grammar.Alt{})...),
	}
}
