package models

// Pizza represents a pizza with its hydrated toppings.
// Toppings are copies of the catalog entries at the time the pizza was fetched.
type Pizza struct {
	ID       int64     `json:"id" gorm:"primaryKey"`
	Name     string    `json:"name" gorm:"not null"`
	Toppings []Topping `json:"toppings" gorm:"many2many:pizza_toppings;"`
}

// ToppingIDs returns the identifiers of the pizza toppings in order
func (p Pizza) ToppingIDs() []int64 {
	ids := make([]int64, 0, len(p.Toppings))
	for _, t := range p.Toppings {
		ids = append(ids, t.ID)
	}
	return ids
}

// Clone returns a copy of the pizza that shares no memory with p
func (p Pizza) Clone() Pizza {
	out := p
	out.Toppings = append([]Topping(nil), p.Toppings...)
	return out
}

// PizzaRequest is the body sent when creating or replacing a pizza.
// Only topping identifiers travel on write.
type PizzaRequest struct {
	Name       string  `json:"name"`
	ToppingIDs []int64 `json:"toppingIds"`
}

// FindPizza returns the pizza with the given id from pizzas
func FindPizza(pizzas []Pizza, id int64) (Pizza, bool) {
	for _, p := range pizzas {
		if p.ID == id {
			return p, true
		}
	}
	return Pizza{}, false
}
