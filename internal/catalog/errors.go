package catalog

import (
	"errors"
	"fmt"

	"github.com/franciscosanchezn/pizza-manager/internal/models"
)

// Row-level errors raised by edit-mode transitions. They never reach the remote store
// and never touch lastError.
var (
	ErrToppingNotFound = errors.New("topping not found")
	ErrPizzaNotFound   = errors.New("pizza not found")
	ErrNotEditing      = errors.New("not in edit mode")
)

// User-visible summaries, one per failing operation
const (
	msgFetchToppings = "Could not fetch toppings."
	msgAddTopping    = "Could not add topping."
	msgUpdateTopping = "Could not update topping."
	msgRemoveTopping = "Could not remove topping."

	msgFetchData   = "Could not fetch data."
	msgAddPizza    = "Could not add pizza."
	msgUpdatePizza = "Failed to update pizza."
	msgDeletePizza = "Failed to delete pizza."

	msgToppingNameRequired = "Please provide a name for the topping."
	msgPizzaNameRequired   = "Please provide a name for the pizza."
	msgToppingsRequired    = "Please select at least one topping for the pizza."
)

// failureMessage turns err into the single line shown on the screen.
// Server response bodies are appended verbatim.
func failureMessage(summary string, err error) string {
	var validationErr *models.ValidationError
	var serverErr *models.ServerError
	switch {
	case errors.As(err, &validationErr):
		return validationErr.Message
	case errors.As(err, &serverErr):
		if serverErr.Body != "" {
			return summary + " " + serverErr.Body
		}
		return fmt.Sprintf("%s Server responded with status %d.", summary, serverErr.StatusCode)
	case models.KindOf(err) == models.KindTransport:
		return summary + " Could not reach the pizza service."
	default:
		return summary + " An unexpected error occurred."
	}
}
