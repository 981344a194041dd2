package expression_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crhntr/atoms/expression"
)

func TestOperationFromSymbol(t *testing.T) {
	for _, tt := range []struct {
		Symbol    rune
		Operation expression.Operation
		Name      string
	}{
		{Symbol: '+', Operation: expression.Add, Name: "ADD"},
		{Symbol: '-', Operation: expression.Subtract, Name: "SUBTRACT"},
		{Symbol: '*', Operation: expression.Multiply, Name: "MULTIPLY"},
		{Symbol: '/', Operation: expression.Divide, Name: "DIVIDE"},
		{Symbol: '^', Operation: expression.Power, Name: "POWER"},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			op, ok := expression.OperationFromSymbol(tt.Symbol)
			require.True(t, ok)
			assert.Equal(t, tt.Operation, op)
			assert.Equal(t, tt.Symbol, op.Symbol())
			assert.Equal(t, tt.Name, op.String())
		})
	}

	t.Run("not an operation", func(t *testing.T) {
		for _, c := range "0123456789() \tax%=." {
			_, ok := expression.OperationFromSymbol(c)
			assert.False(t, ok, "%q", c)
		}
	})
}

func TestAtom_String(t *testing.T) {
	assert.Equal(t, "Number(5666)", expression.NumberAtom(5666).String())
	assert.Equal(t, "Operation(POWER)", expression.OperationAtom(expression.Power).String())
	assert.Equal(t, "LPAREN", expression.LeftParenthesisAtom().String())
	assert.Equal(t, "RPAREN", expression.RightParenthesisAtom().String())
}

func TestSprint(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "[]", expression.Sprint(nil))
	})

	t.Run("sequence", func(t *testing.T) {
		atoms, err := expression.Tokens("(1+22)")
		require.NoError(t, err)
		assert.Equal(t, "[LPAREN, Number(1), Operation(ADD), Number(22), RPAREN]", expression.Sprint(atoms))
	})
}

func TestAtom_MarshalJSON(t *testing.T) {
	atoms, err := expression.Tokens("(0*12)")
	require.NoError(t, err)

	buf, err := json.Marshal(atoms)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"type": "lparen"},
		{"type": "number", "value": 0},
		{"type": "operation", "operation": "*"},
		{"type": "number", "value": 12},
		{"type": "rparen"}
	]`, string(buf))
}

func TestOrderOfOperations(t *testing.T) {
	order := expression.OrderOfOperations()
	assert.Equal(t, []expression.Operation{
		expression.Power,
		expression.Multiply,
		expression.Divide,
		expression.Add,
		expression.Subtract,
	}, order)

	t.Run("lists every operation once", func(t *testing.T) {
		seen := make(map[expression.Operation]int)
		for _, op := range order {
			seen[op]++
		}
		for _, c := range "+-*/^" {
			op, _ := expression.OperationFromSymbol(c)
			assert.Equal(t, 1, seen[op], op.String())
		}
	})

	t.Run("returns a copy", func(t *testing.T) {
		fresh := expression.OrderOfOperations()
		fresh[0] = expression.Add
		assert.Equal(t, expression.Power, expression.OrderOfOperations()[0])
		assert.Equal(t, expression.Power, order[0])
	})

	t.Run("tiers follow the order", func(t *testing.T) {
		for i := 1; i < len(order); i++ {
			assert.False(t, order[i-1].Less(order[i]), "%s before %s", order[i-1], order[i])
		}
		assert.True(t, expression.Add.Less(expression.Multiply))
		assert.False(t, expression.Multiply.Less(expression.Divide))
		assert.True(t, expression.Divide.Less(expression.Power))
	})
}
