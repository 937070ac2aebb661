package mutagens

import (
	m "github.com/mouse-blink/stdinfuzz/internal/model"
)

const (
	// Letters is the alphabetic alphabet.
	Letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	// Digits is the numeric alphabet.
	Digits = "0123456789"
	// Symbols is the special-symbol alphabet.
	Symbols = "!@#$%^&*()_+[]{}|;:,.<>?/"
)

var (
	// Alphabetic draws upper and lower case letters.
	Alphabetic = m.Charset{Category: m.CategoryAlphabetic, Alphabet: Letters}
	// Numeric draws digits.
	Numeric = m.Charset{Category: m.CategoryNumeric, Alphabet: Digits}
	// Symbol draws punctuation.
	Symbol = m.Charset{Category: m.CategorySymbol, Alphabet: Symbols}
	// Mixed draws letters, digits and symbols.
	Mixed = m.Charset{Category: m.CategoryMixed, Alphabet: Letters + Digits + Symbols}
)
