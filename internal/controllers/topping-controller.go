package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/franciscosanchezn/pizza-manager/internal/catalog"
	"github.com/franciscosanchezn/pizza-manager/internal/models"
)

// ToppingRowView is one row of the store owner screen
type ToppingRowView struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Editing bool   `json:"editing"`
	Draft   string `json:"draft,omitempty"`
}

// StoreOwnerView is the state rendered by the store owner screen
type StoreOwnerView struct {
	Toppings []ToppingRowView `json:"toppings"`
	Error    string           `json:"error,omitempty"`
	Problem  *models.APIError `json:"problem,omitempty"`
}

// ToppingController handles the actions of the store owner screen
type ToppingController interface {
	// Show mounts the screen and renders the topping list
	Show(ctx *gin.Context)
	// AddTopping creates a topping
	AddTopping(ctx *gin.Context)
	// RenameTopping renames a topping directly
	RenameTopping(ctx *gin.Context)
	// RemoveTopping deletes a topping
	RemoveTopping(ctx *gin.Context)
	// ToggleEdit begins editing a row, or saves it when already editing
	ToggleEdit(ctx *gin.Context)
	// UpdateDraft changes the temporary name of a row in edit mode
	UpdateDraft(ctx *gin.Context)
	// CancelEdit leaves edit mode on a row
	CancelEdit(ctx *gin.Context)
	// Unmount detaches the screen from its catalog
	Unmount()
}

type toppingController struct {
	catalog *catalog.ToppingCatalog
}

// NewToppingController creates the store owner screen on top of c
func NewToppingController(c *catalog.ToppingCatalog) *toppingController {
	return &toppingController{catalog: c}
}

func (tc *toppingController) render(ctx *gin.Context, err error) {
	status, problem := problemFor(err)
	rows := tc.catalog.Rows()
	view := StoreOwnerView{
		Toppings: make([]ToppingRowView, 0, len(rows)),
		Error:    tc.catalog.LastError(),
		Problem:  problem,
	}
	for _, row := range rows {
		view.Toppings = append(view.Toppings, ToppingRowView{
			ID:      row.Topping.ID,
			Name:    row.Topping.Name,
			Editing: row.Editing,
			Draft:   row.Draft,
		})
	}
	ctx.JSON(status, view)
}

// Show godoc
// @Summary Store owner screen
// @Description Mount the store owner screen and load the topping catalog
// @Tags store-owner
// @Produce json
// @Success 200 {object} StoreOwnerView
// @Failure 502 {object} StoreOwnerView
// @Router /store-owner [get]
func (tc *toppingController) Show(ctx *gin.Context) {
	err := tc.catalog.Mount(ctx.Request.Context())
	logActionError(ctx, "mount toppings", err)
	tc.render(ctx, err)
}

// AddTopping godoc
// @Summary Add a topping
// @Description Create a topping. Blank names are rejected before reaching the backend.
// @Tags store-owner
// @Accept json
// @Produce json
// @Param topping body models.ToppingRequest true "Topping name"
// @Success 200 {object} StoreOwnerView
// @Failure 400 {object} StoreOwnerView
// @Failure 502 {object} StoreOwnerView
// @Router /store-owner/toppings [post]
func (tc *toppingController) AddTopping(ctx *gin.Context) {
	name, ok := bindName(ctx)
	if !ok {
		return
	}
	_, err := tc.catalog.Add(ctx.Request.Context(), name)
	logActionError(ctx, "add topping", err)
	tc.render(ctx, err)
}

// RenameTopping godoc
// @Summary Rename a topping
// @Description Replace the name of a topping
// @Tags store-owner
// @Accept json
// @Produce json
// @Param id path int true "Topping ID"
// @Param topping body models.ToppingRequest true "New name"
// @Success 200 {object} StoreOwnerView
// @Failure 400 {object} models.APIError
// @Failure 502 {object} StoreOwnerView
// @Router /store-owner/toppings/{id} [put]
func (tc *toppingController) RenameTopping(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	name, ok := bindName(ctx)
	if !ok {
		return
	}
	_, err := tc.catalog.Rename(ctx.Request.Context(), id, name)
	logActionError(ctx, "rename topping", err)
	tc.render(ctx, err)
}

// RemoveTopping godoc
// @Summary Remove a topping
// @Description Delete a topping. Pizzas on other screens keep it until they refresh.
// @Tags store-owner
// @Produce json
// @Param id path int true "Topping ID"
// @Success 200 {object} StoreOwnerView
// @Failure 400 {object} models.APIError
// @Failure 502 {object} StoreOwnerView
// @Router /store-owner/toppings/{id} [delete]
func (tc *toppingController) RemoveTopping(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	err := tc.catalog.Remove(ctx.Request.Context(), id)
	logActionError(ctx, "remove topping", err)
	tc.render(ctx, err)
}

// ToggleEdit godoc
// @Summary Edit or save a topping row
// @Description Put a row in edit mode, or save its draft when it is already in edit mode
// @Tags store-owner
// @Produce json
// @Param id path int true "Topping ID"
// @Success 200 {object} StoreOwnerView
// @Failure 404 {object} StoreOwnerView
// @Failure 502 {object} StoreOwnerView
// @Router /store-owner/toppings/{id}/edit [post]
func (tc *toppingController) ToggleEdit(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	err := tc.catalog.ToggleEdit(ctx.Request.Context(), id)
	logActionError(ctx, "toggle topping edit", err)
	tc.render(ctx, err)
}

// UpdateDraft godoc
// @Summary Change a row draft
// @Description Change the temporary name of a row in edit mode
// @Tags store-owner
// @Accept json
// @Produce json
// @Param id path int true "Topping ID"
// @Param draft body models.ToppingRequest true "Draft name"
// @Success 200 {object} StoreOwnerView
// @Failure 409 {object} StoreOwnerView
// @Router /store-owner/toppings/{id}/edit [patch]
func (tc *toppingController) UpdateDraft(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	name, ok := bindName(ctx)
	if !ok {
		return
	}
	err := tc.catalog.SetDraft(id, name)
	logActionError(ctx, "update topping draft", err)
	tc.render(ctx, err)
}

// CancelEdit godoc
// @Summary Cancel a row edit
// @Description Leave edit mode and discard the draft
// @Tags store-owner
// @Produce json
// @Param id path int true "Topping ID"
// @Success 200 {object} StoreOwnerView
// @Router /store-owner/toppings/{id}/edit [delete]
func (tc *toppingController) CancelEdit(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	tc.catalog.CancelEdit(id)
	tc.render(ctx, nil)
}

func (tc *toppingController) Unmount() {
	tc.catalog.Unmount()
}
