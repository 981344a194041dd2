package expression

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Operation is a binary arithmetic operator.
type Operation int

const (
	Add Operation = iota
	Subtract
	Multiply
	Divide
	Power
)

// OperationFromSymbol returns the operation written as r. The second result
// is false for any rune other than + - * / ^.
func OperationFromSymbol(r rune) (Operation, bool) {
	switch r {
	case '+':
		return Add, true
	case '-':
		return Subtract, true
	case '*':
		return Multiply, true
	case '/':
		return Divide, true
	case '^':
		return Power, true
	default:
		return 0, false
	}
}

// Symbol returns the character used to write op.
func (op Operation) Symbol() rune {
	switch op {
	case Add:
		return '+'
	case Subtract:
		return '-'
	case Multiply:
		return '*'
	case Divide:
		return '/'
	case Power:
		return '^'
	default:
		return '?'
	}
}

func (op Operation) String() string {
	switch op {
	case Add:
		return "ADD"
	case Subtract:
		return "SUBTRACT"
	case Multiply:
		return "MULTIPLY"
	case Divide:
		return "DIVIDE"
	case Power:
		return "POWER"
	default:
		return "UNKNOWN"
	}
}

type AtomType int

const (
	AtomNumber AtomType = iota
	AtomOperation
	AtomLeftParenthesis
	AtomRightParenthesis
)

func (t AtomType) String() string {
	switch t {
	case AtomNumber:
		return "number"
	case AtomOperation:
		return "operation"
	case AtomLeftParenthesis:
		return "lparen"
	case AtomRightParenthesis:
		return "rparen"
	default:
		return "unknown"
	}
}

// Atom is one lexical unit of an expression. Value is only meaningful for
// AtomNumber and Operation only for AtomOperation.
type Atom struct {
	Type      AtomType
	Value     uint32
	Operation Operation
}

func NumberAtom(value uint32) Atom { return Atom{Type: AtomNumber, Value: value} }

func OperationAtom(op Operation) Atom { return Atom{Type: AtomOperation, Operation: op} }

func LeftParenthesisAtom() Atom { return Atom{Type: AtomLeftParenthesis} }

func RightParenthesisAtom() Atom { return Atom{Type: AtomRightParenthesis} }

func (atom Atom) String() string {
	switch atom.Type {
	case AtomNumber:
		return "Number(" + strconv.FormatUint(uint64(atom.Value), 10) + ")"
	case AtomOperation:
		return "Operation(" + atom.Operation.String() + ")"
	case AtomLeftParenthesis:
		return "LPAREN"
	case AtomRightParenthesis:
		return "RPAREN"
	default:
		return "UNKNOWN"
	}
}

type encodedAtom struct {
	Type      string  `json:"type"`
	Value     *uint32 `json:"value,omitempty"`
	Operation string  `json:"operation,omitempty"`
}

func (atom Atom) MarshalJSON() ([]byte, error) {
	encoded := encodedAtom{Type: atom.Type.String()}
	switch atom.Type {
	case AtomNumber:
		value := atom.Value
		encoded.Value = &value
	case AtomOperation:
		encoded.Operation = string(atom.Operation.Symbol())
	}
	return json.Marshal(encoded)
}

// Sprint renders a token sequence for diagnostics, for example
// "[Number(1), Operation(ADD), Number(2)]".
func Sprint(atoms []Atom) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, atom := range atoms {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(atom.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
