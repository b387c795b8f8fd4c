package models

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected ErrorKind
	}{
		{name: "nil error", err: nil, expected: KindUnknown},
		{name: "validation", err: NewValidationError("Please provide a name for the %s.", "pizza"), expected: KindValidation},
		{name: "transport", err: &TransportError{Op: "GET /api/pizzas", Err: context.DeadlineExceeded}, expected: KindTransport},
		{name: "server", err: &ServerError{Op: "DELETE /api/toppings/2", StatusCode: 404}, expected: KindServer},
		{name: "wrapped server", err: fmt.Errorf("remove topping: %w", &ServerError{StatusCode: 500}), expected: KindServer},
		{name: "plain error", err: errors.New("boom"), expected: KindUnknown},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, KindOf(tt.err))
		})
	}
}

func TestServerErrorMessage(t *testing.T) {
	withBody := &ServerError{Op: "POST /api/pizzas", StatusCode: 400, Body: "Pizza with name Margherita already exists."}
	assert.Equal(t, "POST /api/pizzas: server responded with status 400: Pizza with name Margherita already exists.", withBody.Error())

	withoutBody := &ServerError{Op: "DELETE /api/pizzas/9", StatusCode: 500}
	assert.Equal(t, "DELETE /api/pizzas/9: server responded with status 500", withoutBody.Error())
}

func TestTransportErrorUnwrap(t *testing.T) {
	err := &TransportError{Op: "GET /api/toppings", Err: context.Canceled}
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPizzaHelpers(t *testing.T) {
	pizza := Pizza{ID: 1, Name: "Margherita", Toppings: []Topping{{ID: 3, Name: "Basil"}, {ID: 1, Name: "Cheese"}}}
	assert.Equal(t, []int64{3, 1}, pizza.ToppingIDs())

	clone := pizza.Clone()
	clone.Toppings[0].Name = "Oregano"
	assert.Equal(t, "Basil", pizza.Toppings[0].Name)

	found, ok := FindPizza([]Pizza{pizza}, 1)
	assert.True(t, ok)
	assert.Equal(t, "Margherita", found.Name)

	_, ok = FindTopping(pizza.Toppings, 42)
	assert.False(t, ok)
}
