package catalog

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/franciscosanchezn/pizza-manager/internal/gateway"
	"github.com/franciscosanchezn/pizza-manager/internal/models"
	"github.com/franciscosanchezn/pizza-manager/internal/selection"
)

// ToppingSource is the topping catalog a pizza screen composes pizzas from
type ToppingSource interface {
	Mount(ctx context.Context) error
	Unmount()
	Refresh(ctx context.Context) error
	Toppings() []models.Topping
}

var _ ToppingSource = (*ToppingCatalog)(nil)

// PizzaDraft is a snapshot of the new-pizza form or of the pizza being edited.
// ID is zero for the form.
type PizzaDraft struct {
	ID       int64            `json:"id,omitempty"`
	Name     string           `json:"name"`
	Toppings []models.Topping `json:"toppings"`
}

type draft struct {
	id        int64
	name      string
	selection *selection.WorkingSet
}

func (d *draft) snapshot() PizzaDraft {
	return PizzaDraft{ID: d.id, Name: d.name, Toppings: d.selection.Toppings()}
}

// PizzaCatalog owns the pizza list of the chef screen, the new-pizza form and
// the edit cursor. At most one pizza is edited at a time.
// Every mutation re-fetches pizzas and toppings once the server confirms it.
type PizzaCatalog struct {
	gateway  gateway.Gateway
	toppings ToppingSource

	mu        sync.RWMutex
	pizzas    []models.Pizza
	form      draft
	editing   *draft
	lastError string
	seq       sequencer
	detached  bool
}

// NewPizzaCatalog creates an empty pizza catalog reading toppings from toppings
func NewPizzaCatalog(gw gateway.Gateway, toppings ToppingSource) *PizzaCatalog {
	return &PizzaCatalog{
		gateway:  gw,
		toppings: toppings,
		pizzas:   []models.Pizza{},
		form:     draft{selection: selection.NewWorkingSet()},
	}
}

// Mount attaches the screen and loads pizzas and toppings in parallel
func (c *PizzaCatalog) Mount(ctx context.Context) error {
	c.mu.Lock()
	c.detached = false
	c.mu.Unlock()
	return c.load(ctx, c.toppings.Mount)
}

// Unmount detaches the screen. Late responses are ignored and the form and
// edit cursor are discarded.
func (c *PizzaCatalog) Unmount() {
	c.toppings.Unmount()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.detached = true
	c.editing = nil
	c.form = draft{selection: selection.NewWorkingSet()}
}

// Refresh re-fetches pizzas and toppings and replaces both lists
func (c *PizzaCatalog) Refresh(ctx context.Context) error {
	return c.load(ctx, c.toppings.Refresh)
}

func (c *PizzaCatalog) load(ctx context.Context, loadToppings func(context.Context) error) error {
	c.mu.Lock()
	token := c.seq.next()
	c.mu.Unlock()

	var pizzas []models.Pizza
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := c.gateway.ListPizzas(gctx)
		pizzas = list
		return err
	})
	g.Go(func() error {
		return loadToppings(gctx)
	})
	err := g.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.detached {
		log.WithField("token", token).Debug("Dropping pizza list response after unmount")
		return err
	}
	if !c.seq.replaceable(token) {
		log.WithField("token", token).Debug("Discarding stale pizza list response")
		return nil
	}
	if err != nil {
		c.lastError = failureMessage(msgFetchData, err)
		return fmt.Errorf("refresh pizzas: %w", err)
	}

	c.pizzas = pizzas
	c.seq.mark(token)
	if c.editing != nil {
		if _, ok := models.FindPizza(c.pizzas, c.editing.id); !ok {
			log.WithField("pizza_id", c.editing.id).Debug("Edited pizza disappeared, leaving edit mode")
			c.editing = nil
		}
	}
	return nil
}

func validatePizza(name string, toppingIDs []int64) error {
	if strings.TrimSpace(name) == "" {
		return models.NewValidationError(msgPizzaNameRequired)
	}
	if len(toppingIDs) == 0 {
		return models.NewValidationError(msgToppingsRequired)
	}
	return nil
}

// Add creates a pizza from a name and topping ids, then refreshes.
// Invalid input never reaches the server.
func (c *PizzaCatalog) Add(ctx context.Context, name string, toppingIDs []int64) (models.Pizza, error) {
	return c.add(ctx, name, toppingIDs, nil)
}

// SubmitForm creates a pizza from the new-pizza form and clears the form on success
func (c *PizzaCatalog) SubmitForm(ctx context.Context) (models.Pizza, error) {
	c.mu.RLock()
	name := c.form.name
	ids := selection.ToIDList(c.form.selection)
	c.mu.RUnlock()

	return c.add(ctx, name, ids, c.ResetForm)
}

func (c *PizzaCatalog) add(ctx context.Context, name string, toppingIDs []int64, onSubmitted func()) (models.Pizza, error) {
	var created models.Pizza
	err := mutation{
		name:    "add pizza",
		failure: msgAddPizza,
		validate: func() error {
			return validatePizza(name, toppingIDs)
		},
		submit: func(ctx context.Context) error {
			pizza, err := c.gateway.CreatePizza(ctx, models.PizzaRequest{Name: name, ToppingIDs: toppingIDs})
			created = pizza
			return err
		},
		onSubmitted: onSubmitted,
		resync:      c.Refresh,
	}.run(ctx, c)
	return created, err
}

// SetFormName changes the name typed in the new-pizza form
func (c *PizzaCatalog) SetFormName(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form.name = name
}

// SelectFormTopping adds a catalog topping to the new-pizza form
func (c *PizzaCatalog) SelectFormTopping(id int64) error {
	topping, ok := models.FindTopping(c.toppings.Toppings(), id)
	if !ok {
		return ErrToppingNotFound
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.form.selection.Select(topping)
	return nil
}

// DeselectFormTopping removes a topping from the new-pizza form
func (c *PizzaCatalog) DeselectFormTopping(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form.selection.Deselect(id)
}

// Form returns a snapshot of the new-pizza form
func (c *PizzaCatalog) Form() PizzaDraft {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.form.snapshot()
}

func (c *PizzaCatalog) ResetForm() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form = draft{selection: selection.NewWorkingSet()}
}

// BeginEdit moves the cursor to the pizza with the given id, seeding the draft
// with its name and with its toppings that still exist in the catalog.
// An edit already in progress on another pizza is discarded.
func (c *PizzaCatalog) BeginEdit(id int64) error {
	catalog := c.toppings.Toppings()

	c.mu.Lock()
	defer c.mu.Unlock()
	pizza, ok := models.FindPizza(c.pizzas, id)
	if !ok {
		return ErrPizzaNotFound
	}
	if c.editing != nil && c.editing.id != id {
		log.WithFields(logrus.Fields{"discarded": c.editing.id, "pizza_id": id}).Debug("Replacing pizza edit in progress")
	}
	c.editing = &draft{
		id:        id,
		name:      pizza.Name,
		selection: selection.ToWorkingSet(pizza, catalog),
	}
	return nil
}

// SetEditName changes the draft name of the pizza being edited
func (c *PizzaCatalog) SetEditName(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.editing == nil {
		return ErrNotEditing
	}
	c.editing.name = name
	return nil
}

// SelectEditTopping adds a catalog topping to the draft of the pizza being edited
func (c *PizzaCatalog) SelectEditTopping(id int64) error {
	topping, ok := models.FindTopping(c.toppings.Toppings(), id)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.editing == nil {
		return ErrNotEditing
	}
	if !ok {
		return ErrToppingNotFound
	}
	c.editing.selection.Select(topping)
	return nil
}

// DeselectEditTopping removes a topping from the draft of the pizza being edited
func (c *PizzaCatalog) DeselectEditTopping(id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.editing == nil {
		return ErrNotEditing
	}
	c.editing.selection.Deselect(id)
	return nil
}

// CancelEdit returns to viewing without contacting the server
func (c *PizzaCatalog) CancelEdit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.editing = nil
}

// Editing returns the pizza being edited, if any
func (c *PizzaCatalog) Editing() (PizzaDraft, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.editing == nil {
		return PizzaDraft{}, false
	}
	return c.editing.snapshot(), true
}

// EditingID returns the id under the edit cursor, or zero when viewing
func (c *PizzaCatalog) EditingID() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.editing == nil {
		return 0
	}
	return c.editing.id
}

// CommitEdit replaces name and toppings of pizza id, then refreshes.
// An accepted update returns the screen to viewing, whichever pizza was under
// the cursor. A rejected one leaves the cursor where it was.
func (c *PizzaCatalog) CommitEdit(ctx context.Context, id int64, name string, toppingIDs []int64) error {
	return mutation{
		name:    "update pizza",
		failure: msgUpdatePizza,
		validate: func() error {
			return validatePizza(name, toppingIDs)
		},
		submit: func(ctx context.Context) error {
			_, err := c.gateway.UpdatePizza(ctx, id, models.PizzaRequest{Name: name, ToppingIDs: toppingIDs})
			return err
		},
		onSubmitted: c.CancelEdit,
		resync:      c.Refresh,
	}.run(ctx, c)
}

// CommitDraft commits the draft under the edit cursor
func (c *PizzaCatalog) CommitDraft(ctx context.Context) error {
	c.mu.RLock()
	if c.editing == nil {
		c.mu.RUnlock()
		return ErrNotEditing
	}
	id, name, ids := c.editing.id, c.editing.name, selection.ToIDList(c.editing.selection)
	c.mu.RUnlock()

	return c.CommitEdit(ctx, id, name, ids)
}

// Remove deletes a pizza and refreshes. Deleting the pizza under the edit
// cursor returns the screen to viewing.
func (c *PizzaCatalog) Remove(ctx context.Context, id int64) error {
	return mutation{
		name:    "delete pizza",
		failure: msgDeletePizza,
		submit: func(ctx context.Context) error {
			return c.gateway.DeletePizza(ctx, id)
		},
		onSubmitted: func() { c.leaveEdit(id) },
		resync:      c.Refresh,
	}.run(ctx, c)
}

func (c *PizzaCatalog) leaveEdit(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.editing != nil && c.editing.id == id {
		c.editing = nil
	}
}

// Pizzas returns a deep copy of the current pizza list
func (c *PizzaCatalog) Pizzas() []models.Pizza {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Pizza, 0, len(c.pizzas))
	for _, p := range c.pizzas {
		out = append(out, p.Clone())
	}
	return out
}

// Toppings returns the topping catalog the screen composes pizzas from
func (c *PizzaCatalog) Toppings() []models.Topping {
	return c.toppings.Toppings()
}

// LastError returns the message of the last failed operation, or ""
func (c *PizzaCatalog) LastError() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

func (c *PizzaCatalog) setError(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.detached {
		return
	}
	log.WithFields(logrus.Fields{"screen": "pizzas", "message": msg}).Info("Surfacing error")
	c.lastError = msg
}

func (c *PizzaCatalog) clearError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.detached {
		return
	}
	c.lastError = ""
}
