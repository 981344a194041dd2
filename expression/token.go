package expression

import (
	"fmt"
	"math"
	"unicode"
)

// UnrecognizedCharacterError is returned by StrictTokens for a character
// that is not a digit, operator, parenthesis or whitespace.
type UnrecognizedCharacterError struct {
	Character rune
	Index     int
}

func (e *UnrecognizedCharacterError) Error() string {
	return fmt.Sprintf("unrecognized character %q at expression offset %d", e.Character, e.Index)
}

// NumericOverflowError is returned when a digit run does not fit in a uint32.
// Index is the offset of the first digit of the run.
type NumericOverflowError struct {
	Digits string
	Index  int
}

func (e *NumericOverflowError) Error() string {
	return fmt.Sprintf("number %s at expression offset %d overflows uint32", e.Digits, e.Index)
}

// Tokens splits input into atoms. Consecutive digits become one number
// atom; characters that are not digits, operators or parentheses are
// skipped, and they do not end a digit run. Parenthesis balance is not
// checked.
func Tokens(input string) ([]Atom, error) {
	return tokens(input, false)
}

// StrictTokens is like Tokens but fails on any skipped character other than
// whitespace. Characters are checked before digit runs, so an unrecognized
// character is reported even when an earlier run overflows.
func StrictTokens(input string) ([]Atom, error) {
	return tokens(input, true)
}

type lexeme struct {
	Atom
	index int
}

func tokens(input string, strict bool) ([]Atom, error) {
	var initial []lexeme
	for i, c := range input {
		if c >= '0' && c <= '9' {
			initial = append(initial, lexeme{Atom: NumberAtom(uint32(c - '0')), index: i})
		} else if op, ok := OperationFromSymbol(c); ok {
			initial = append(initial, lexeme{Atom: OperationAtom(op), index: i})
		} else if c == '(' {
			initial = append(initial, lexeme{Atom: LeftParenthesisAtom(), index: i})
		} else if c == ')' {
			initial = append(initial, lexeme{Atom: RightParenthesisAtom(), index: i})
		} else if strict && !unicode.IsSpace(c) {
			return nil, &UnrecognizedCharacterError{Character: c, Index: i}
		}
	}

	var (
		result   []Atom
		building bool
		number   uint32
		start    int
	)
	for _, lex := range initial {
		if lex.Type != AtomNumber {
			if building {
				result = append(result, NumberAtom(number))
				building = false
			}
			result = append(result, lex.Atom)
			continue
		}
		if !building {
			building, number, start = true, 0, lex.index
		}
		if number > (math.MaxUint32-lex.Value)/10 {
			return nil, &NumericOverflowError{Digits: runDigits(initial, start), Index: start}
		}
		number = number*10 + lex.Value
	}
	if building {
		result = append(result, NumberAtom(number))
	}
	return result, nil
}

// runDigits returns the digits of the whole run that begins at start.
func runDigits(initial []lexeme, start int) string {
	var (
		digits []byte
		run    bool
	)
	for _, lex := range initial {
		if lex.index == start {
			run = true
		}
		if !run {
			continue
		}
		if lex.Type != AtomNumber {
			break
		}
		digits = append(digits, byte('0'+lex.Value))
	}
	return string(digits)
}
