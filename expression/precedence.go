package expression

// OrderOfOperations returns the evaluation order of the operations, highest
// priority first. Multiply and Divide share a tier, as do Add and Subtract.
// The tokenizer does not consult it.
func OrderOfOperations() []Operation {
	return []Operation{Power, Multiply, Divide, Add, Subtract}
}

// Precedence returns the tier of op; higher binds tighter.
func (op Operation) Precedence() int {
	switch op {
	case Power:
		return 2
	case Multiply, Divide:
		return 1
	default:
		return 0
	}
}

func (op Operation) Less(other Operation) bool {
	return op.Precedence() < other.Precedence()
}
