package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/franciscosanchezn/pizza-manager/internal/gateway"
	"github.com/franciscosanchezn/pizza-manager/internal/models"
)

var _ gateway.Gateway = (*fakeGateway)(nil)

var errUnreachable = &models.TransportError{Op: "fake", Err: errors.New("connection refused")}

// fakeGateway keeps both collections in memory, counts calls per operation and
// lets a test fail or hold any of them.
type fakeGateway struct {
	mu       sync.Mutex
	toppings []models.Topping
	pizzas   []models.Pizza
	nextID   int64
	calls    map[string]int
	failures map[string]error
	hooks    map[string]func(call int)
}

func newFakeGateway(toppings ...models.Topping) *fakeGateway {
	f := &fakeGateway{
		calls:    make(map[string]int),
		failures: make(map[string]error),
		hooks:    make(map[string]func(call int)),
		nextID:   100,
	}
	f.toppings = append(f.toppings, toppings...)
	return f
}

func (f *fakeGateway) fail(op string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[op] = err
}

func (f *fakeGateway) hook(op string, fn func(call int)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hooks[op] = fn
}

func (f *fakeGateway) callCount(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func (f *fakeGateway) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.calls {
		total += n
	}
	return total
}

func (f *fakeGateway) setToppings(toppings ...models.Topping) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.toppings = append([]models.Topping{}, toppings...)
}

func (f *fakeGateway) addPizza(p models.Pizza) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pizzas = append(f.pizzas, p)
}

// enter records a call and returns its number, the hook to run and the failure to return
func (f *fakeGateway) enter(op string) (int, func(int), error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[op]++
	return f.calls[op], f.hooks[op], f.failures[op]
}

func (f *fakeGateway) ListToppings(ctx context.Context) ([]models.Topping, error) {
	n, hook, err := f.enter("ListToppings")
	f.mu.Lock()
	snapshot := append([]models.Topping{}, f.toppings...)
	f.mu.Unlock()
	if hook != nil {
		hook(n)
	}
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

func (f *fakeGateway) CreateTopping(ctx context.Context, req models.ToppingRequest) (models.Topping, error) {
	n, hook, err := f.enter("CreateTopping")
	if err != nil {
		return models.Topping{}, err
	}
	f.mu.Lock()
	f.nextID++
	t := models.Topping{ID: f.nextID, Name: req.Name}
	f.toppings = append(f.toppings, t)
	f.mu.Unlock()
	// the hook runs once the topping is stored, before the response returns
	if hook != nil {
		hook(n)
	}
	return t, nil
}

func (f *fakeGateway) UpdateTopping(ctx context.Context, id int64, req models.ToppingRequest) (models.Topping, error) {
	_, _, err := f.enter("UpdateTopping")
	if err != nil {
		return models.Topping{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.toppings {
		if f.toppings[i].ID == id {
			f.toppings[i].Name = req.Name
			return f.toppings[i], nil
		}
	}
	return models.Topping{}, notFound("update topping", "Topping", id)
}

func (f *fakeGateway) DeleteTopping(ctx context.Context, id int64) error {
	_, _, err := f.enter("DeleteTopping")
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, t := range f.toppings {
		if t.ID == id {
			f.toppings = append(f.toppings[:i:i], f.toppings[i+1:]...)
			for j := range f.pizzas {
				kept := []models.Topping{}
				for _, pt := range f.pizzas[j].Toppings {
					if pt.ID != id {
						kept = append(kept, pt)
					}
				}
				f.pizzas[j].Toppings = kept
			}
			return nil
		}
	}
	return notFound("delete topping", "Topping", id)
}

func (f *fakeGateway) ListPizzas(ctx context.Context) ([]models.Pizza, error) {
	n, hook, err := f.enter("ListPizzas")
	f.mu.Lock()
	snapshot := make([]models.Pizza, 0, len(f.pizzas))
	for _, p := range f.pizzas {
		p = p.Clone()
		// hydrate from the live topping table like a join would
		for i, pt := range p.Toppings {
			if t, ok := models.FindTopping(f.toppings, pt.ID); ok {
				p.Toppings[i] = t
			}
		}
		snapshot = append(snapshot, p)
	}
	f.mu.Unlock()
	if hook != nil {
		hook(n)
	}
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

func (f *fakeGateway) resolve(op string, ids []int64) ([]models.Topping, error) {
	toppings := make([]models.Topping, 0, len(ids))
	for _, id := range ids {
		t, ok := models.FindTopping(f.toppings, id)
		if !ok {
			return nil, &models.ServerError{Op: op, StatusCode: http.StatusBadRequest, Body: fmt.Sprintf("Topping with id %d does not exist.", id)}
		}
		toppings = append(toppings, t)
	}
	return toppings, nil
}

func (f *fakeGateway) CreatePizza(ctx context.Context, req models.PizzaRequest) (models.Pizza, error) {
	_, _, err := f.enter("CreatePizza")
	if err != nil {
		return models.Pizza{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	toppings, err := f.resolve("create pizza", req.ToppingIDs)
	if err != nil {
		return models.Pizza{}, err
	}
	f.nextID++
	p := models.Pizza{ID: f.nextID, Name: req.Name, Toppings: toppings}
	f.pizzas = append(f.pizzas, p)
	return p.Clone(), nil
}

func (f *fakeGateway) UpdatePizza(ctx context.Context, id int64, req models.PizzaRequest) (models.Pizza, error) {
	_, _, err := f.enter("UpdatePizza")
	if err != nil {
		return models.Pizza{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.pizzas {
		if f.pizzas[i].ID != id {
			continue
		}
		toppings, err := f.resolve("update pizza", req.ToppingIDs)
		if err != nil {
			return models.Pizza{}, err
		}
		f.pizzas[i].Name = req.Name
		f.pizzas[i].Toppings = toppings
		return f.pizzas[i].Clone(), nil
	}
	return models.Pizza{}, notFound("update pizza", "Pizza", id)
}

func (f *fakeGateway) DeletePizza(ctx context.Context, id int64) error {
	_, _, err := f.enter("DeletePizza")
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, p := range f.pizzas {
		if p.ID == id {
			f.pizzas = append(f.pizzas[:i:i], f.pizzas[i+1:]...)
			return nil
		}
	}
	return notFound("delete pizza", "Pizza", id)
}

func notFound(op, entity string, id int64) error {
	return &models.ServerError{Op: op, StatusCode: http.StatusNotFound, Body: fmt.Sprintf("%s with id %d does not exist.", entity, id)}
}
