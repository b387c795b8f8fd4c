// Package selection reconciles the master topping catalog with the transient
// set of toppings picked while composing or editing a pizza.
package selection

import "github.com/franciscosanchezn/pizza-manager/internal/models"

// WorkingSet is an insertion-ordered set of toppings keyed by id.
// It is never persisted and is owned by exactly one form or edit row.
type WorkingSet struct {
	items []models.Topping
}

// NewWorkingSet builds a working set from toppings, dropping duplicate ids
func NewWorkingSet(toppings ...models.Topping) *WorkingSet {
	ws := &WorkingSet{}
	for _, t := range toppings {
		ws.Select(t)
	}
	return ws
}

// ToWorkingSet hydrates a working set for pizza from the live catalog.
// Toppings the catalog no longer knows about are dropped.
func ToWorkingSet(pizza models.Pizza, catalog []models.Topping) *WorkingSet {
	ws := &WorkingSet{}
	for _, id := range pizza.ToppingIDs() {
		if t, ok := models.FindTopping(catalog, id); ok {
			ws.Select(t)
		}
	}
	return ws
}

// ToIDList extracts identifiers in selection order for submission
func ToIDList(ws *WorkingSet) []int64 {
	if ws == nil {
		return []int64{}
	}
	return ws.IDs()
}

// Select adds t unless a topping with the same id is already present
func (ws *WorkingSet) Select(t models.Topping) {
	if ws.Contains(t.ID) {
		return
	}
	ws.items = append(ws.items, t)
}

// Deselect removes the topping with the given id, if present
func (ws *WorkingSet) Deselect(id int64) {
	for i, t := range ws.items {
		if t.ID == id {
			ws.items = append(ws.items[:i:i], ws.items[i+1:]...)
			return
		}
	}
}

func (ws *WorkingSet) Contains(id int64) bool {
	for _, t := range ws.items {
		if t.ID == id {
			return true
		}
	}
	return false
}

func (ws *WorkingSet) Len() int {
	return len(ws.items)
}

func (ws *WorkingSet) Clear() {
	ws.items = nil
}

// IDs returns the selected identifiers in insertion order
func (ws *WorkingSet) IDs() []int64 {
	ids := make([]int64, 0, len(ws.items))
	for _, t := range ws.items {
		ids = append(ids, t.ID)
	}
	return ids
}

// Toppings returns a copy of the selected toppings in insertion order
func (ws *WorkingSet) Toppings() []models.Topping {
	return append([]models.Topping{}, ws.items...)
}

// Clone returns an independent copy of the working set
func (ws *WorkingSet) Clone() *WorkingSet {
	return &WorkingSet{items: append([]models.Topping(nil), ws.items...)}
}
