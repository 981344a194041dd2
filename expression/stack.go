package expression

import (
	"errors"
	"fmt"
)

var (
	ErrMissingOperand   = errors.New("missing operand")
	ErrMissingOperation = errors.New("missing operation")
	ErrUnsupportedAtom  = errors.New("unsupported atom")
)

// Calculate applies op to left and right using uint32 arithmetic, so results
// wrap around on overflow. Division by zero panics.
func Calculate(left, right uint32, op Operation) uint32 {
	switch op {
	case Add:
		return left + right
	case Subtract:
		return left - right
	case Multiply:
		return left * right
	case Divide:
		return left / right
	case Power:
		return pow(left, right)
	default:
		panic(fmt.Sprintf("unknown operation %d", op))
	}
}

func pow(base, exponent uint32) uint32 {
	result := uint32(1)
	for exponent > 0 {
		if exponent&1 == 1 {
			result *= base
		}
		base *= base
		exponent >>= 1
	}
	return result
}

// Stack computes a single binary operation from the atoms fed to it, for
// example [1, +, 2]. It knows nothing about precedence or parentheses.
type Stack struct {
	left, right       uint32
	hasLeft, hasRight bool

	operation    Operation
	hasOperation bool
}

// AcceptNumber sets the left operand, or the right one once the left is set.
func (stack *Stack) AcceptNumber(n uint32) {
	if stack.hasLeft {
		stack.right, stack.hasRight = n, true
		return
	}
	stack.left, stack.hasLeft = n, true
}

func (stack *Stack) AcceptOperation(op Operation) {
	stack.operation, stack.hasOperation = op, true
}

func (stack *Stack) Accept(atom Atom) error {
	switch atom.Type {
	case AtomNumber:
		stack.AcceptNumber(atom.Value)
		return nil
	case AtomOperation:
		stack.AcceptOperation(atom.Operation)
		return nil
	default:
		return fmt.Errorf("stack can not accept %s: %w", atom, ErrUnsupportedAtom)
	}
}

func (stack *Stack) Calculate() (uint32, error) {
	if !stack.hasLeft {
		return 0, fmt.Errorf("left hand side: %w", ErrMissingOperand)
	}
	if !stack.hasOperation {
		return 0, ErrMissingOperation
	}
	if !stack.hasRight {
		return 0, fmt.Errorf("right hand side of %s: %w", stack.operation, ErrMissingOperand)
	}
	return Calculate(stack.left, stack.right, stack.operation), nil
}
