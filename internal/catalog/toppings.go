package catalog

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/franciscosanchezn/pizza-manager/internal/gateway"
	"github.com/franciscosanchezn/pizza-manager/internal/models"
)

// ToppingRow is one line of the store owner screen
type ToppingRow struct {
	Topping models.Topping
	Editing bool
	Draft   string
}

// ToppingCatalog owns the canonical topping list of a screen.
// Add, Rename and Remove reconcile the list locally from the server response
// instead of re-fetching it.
type ToppingCatalog struct {
	gateway gateway.Gateway

	mu        sync.RWMutex
	toppings  []models.Topping
	drafts    map[int64]string
	lastError string
	seq       sequencer
	detached  bool
}

// NewToppingCatalog creates an empty catalog talking to gw
func NewToppingCatalog(gw gateway.Gateway) *ToppingCatalog {
	return &ToppingCatalog{
		gateway:  gw,
		toppings: []models.Topping{},
		drafts:   make(map[int64]string),
	}
}

// Mount attaches the catalog to a screen and loads the topping list
func (c *ToppingCatalog) Mount(ctx context.Context) error {
	c.mu.Lock()
	c.detached = false
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// Unmount detaches the catalog: responses still in flight are dropped and row drafts are discarded
func (c *ToppingCatalog) Unmount() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.detached = true
	c.drafts = make(map[int64]string)
}

func (c *ToppingCatalog) dispatch() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seq.next()
}

// Refresh replaces the whole local list with the server's
func (c *ToppingCatalog) Refresh(ctx context.Context) error {
	token := c.dispatch()
	toppings, err := c.gateway.ListToppings(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.detached {
		log.WithField("token", token).Debug("Dropping topping list response after unmount")
		return err
	}
	if !c.seq.replaceable(token) {
		log.WithField("token", token).Debug("Discarding stale topping list response")
		return nil
	}
	if err != nil {
		c.lastError = failureMessage(msgFetchToppings, err)
		return fmt.Errorf("refresh toppings: %w", err)
	}

	c.toppings = append([]models.Topping{}, toppings...)
	c.seq.mark(token)
	for id := range c.drafts {
		if _, ok := models.FindTopping(c.toppings, id); !ok {
			delete(c.drafts, id)
		}
	}
	return nil
}

// patch applies a confirmed change to the local list
func (c *ToppingCatalog) patch(token uint64, fn func([]models.Topping) []models.Topping) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.detached {
		return
	}
	c.toppings = fn(c.toppings)
	c.seq.mark(token)
}

// Add creates a topping and appends the server's entity to the local list.
// A newer refresh may already have listed the entity, in which case it is
// replaced in place. Blank names are rejected without contacting the server.
func (c *ToppingCatalog) Add(ctx context.Context, name string) (models.Topping, error) {
	var created models.Topping
	err := mutation{
		name:    "add topping",
		failure: msgAddTopping,
		validate: func() error {
			if strings.TrimSpace(name) == "" {
				return models.NewValidationError(msgToppingNameRequired)
			}
			return nil
		},
		submit: func(ctx context.Context) error {
			token := c.dispatch()
			topping, err := c.gateway.CreateTopping(ctx, models.ToppingRequest{Name: name})
			if err != nil {
				return err
			}
			c.patch(token, func(list []models.Topping) []models.Topping {
				return upsertTopping(list, topping)
			})
			created = topping
			return nil
		},
	}.run(ctx, c)
	return created, err
}

// Rename replaces the name of a topping. Duplicate names are allowed.
func (c *ToppingCatalog) Rename(ctx context.Context, id int64, newName string) (models.Topping, error) {
	var renamed models.Topping
	err := mutation{
		name:    "rename topping",
		failure: msgUpdateTopping,
		submit: func(ctx context.Context) error {
			token := c.dispatch()
			topping, err := c.gateway.UpdateTopping(ctx, id, models.ToppingRequest{Name: newName})
			if err != nil {
				return err
			}
			c.patch(token, func(list []models.Topping) []models.Topping {
				out := make([]models.Topping, len(list))
				for i, t := range list {
					if t.ID == id {
						t = topping
					}
					out[i] = t
				}
				return out
			})
			renamed = topping
			return nil
		},
	}.run(ctx, c)
	return renamed, err
}

// Remove deletes a topping and filters it out of the local list.
// Pizzas already loaded elsewhere keep their copy until they are refreshed.
func (c *ToppingCatalog) Remove(ctx context.Context, id int64) error {
	return mutation{
		name:    "remove topping",
		failure: msgRemoveTopping,
		submit: func(ctx context.Context) error {
			token := c.dispatch()
			if err := c.gateway.DeleteTopping(ctx, id); err != nil {
				return err
			}
			c.patch(token, func(list []models.Topping) []models.Topping {
				out := make([]models.Topping, 0, len(list))
				for _, t := range list {
					if t.ID != id {
						out = append(out, t)
					}
				}
				return out
			})
			c.mu.Lock()
			delete(c.drafts, id)
			c.mu.Unlock()
			return nil
		},
	}.run(ctx, c)
}

// BeginEdit puts a row in edit mode, seeding its draft with the current name.
// Rows are edited independently of each other.
func (c *ToppingCatalog) BeginEdit(id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	topping, ok := models.FindTopping(c.toppings, id)
	if !ok {
		return ErrToppingNotFound
	}
	c.drafts[id] = topping.Name
	return nil
}

// SetDraft changes the temporary name of a row in edit mode
func (c *ToppingCatalog) SetDraft(id int64, name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.drafts[id]; !ok {
		return ErrNotEditing
	}
	c.drafts[id] = name
	return nil
}

// CancelEdit leaves edit mode and throws the draft away
func (c *ToppingCatalog) CancelEdit(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.drafts, id)
}

// SaveEdit renames the topping with its draft. The row leaves edit mode on
// success and stays in it on failure so the user can retry or cancel.
func (c *ToppingCatalog) SaveEdit(ctx context.Context, id int64) error {
	c.mu.RLock()
	draft, ok := c.drafts[id]
	c.mu.RUnlock()
	if !ok {
		return ErrNotEditing
	}

	if _, err := c.Rename(ctx, id, draft); err != nil {
		return err
	}
	c.CancelEdit(id)
	return nil
}

// ToggleEdit mirrors the row's edit button: it enters edit mode, or saves when already editing
func (c *ToppingCatalog) ToggleEdit(ctx context.Context, id int64) error {
	if c.IsEditing(id) {
		return c.SaveEdit(ctx, id)
	}
	return c.BeginEdit(id)
}

func (c *ToppingCatalog) IsEditing(id int64) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.drafts[id]
	return ok
}

// Draft returns the temporary name of a row in edit mode
func (c *ToppingCatalog) Draft(id int64) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	draft, ok := c.drafts[id]
	return draft, ok
}

// Toppings returns a copy of the current list
func (c *ToppingCatalog) Toppings() []models.Topping {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.Topping{}, c.toppings...)
}

// Lookup finds a topping of the current list by id
func (c *ToppingCatalog) Lookup(id int64) (models.Topping, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return models.FindTopping(c.toppings, id)
}

// Rows returns the screen rows with their edit state
func (c *ToppingCatalog) Rows() []ToppingRow {
	c.mu.RLock()
	defer c.mu.RUnlock()
	rows := make([]ToppingRow, 0, len(c.toppings))
	for _, t := range c.toppings {
		draft, editing := c.drafts[t.ID]
		rows = append(rows, ToppingRow{Topping: t, Editing: editing, Draft: draft})
	}
	return rows
}

// LastError returns the message of the last failed operation, or ""
func (c *ToppingCatalog) LastError() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

func (c *ToppingCatalog) setError(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.detached {
		return
	}
	log.WithFields(logrus.Fields{"screen": "toppings", "message": msg}).Info("Surfacing error")
	c.lastError = msg
}

func (c *ToppingCatalog) clearError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.detached {
		return
	}
	c.lastError = ""
}

// upsertTopping replaces the entry with t's id, or appends t when absent
func upsertTopping(list []models.Topping, t models.Topping) []models.Topping {
	for i := range list {
		if list[i].ID == t.ID {
			list[i] = t
			return list
		}
	}
	return append(list, t)
}
