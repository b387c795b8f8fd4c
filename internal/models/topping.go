package models

// Topping is a single entry of the topping catalog.
// The ID is assigned by the server and never changes; Name is the only mutable field.
type Topping struct {
	ID   int64  `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null"`
}

// ToppingRequest is the body sent when creating or renaming a topping
type ToppingRequest struct {
	Name string `json:"name"`
}

// FindTopping returns the topping with the given id from toppings
func FindTopping(toppings []Topping, id int64) (Topping, bool) {
	for _, t := range toppings {
		if t.ID == id {
			return t, true
		}
	}
	return Topping{}, false
}
