package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/franciscosanchezn/pizza-manager/internal/catalog"
	"github.com/franciscosanchezn/pizza-manager/internal/models"
)

// PizzaChefView is the state rendered by the pizza chef screen
type PizzaChefView struct {
	Pizzas   []models.Pizza      `json:"pizzas"`
	Toppings []models.Topping    `json:"toppings"`
	Form     catalog.PizzaDraft  `json:"form"`
	Editing  *catalog.PizzaDraft `json:"editing,omitempty"`
	Error    string              `json:"error,omitempty"`
	Problem  *models.APIError    `json:"problem,omitempty"`
}

// PizzaController handles the actions of the pizza chef screen
type PizzaController interface {
	// Show mounts the screen and renders pizzas and toppings
	Show(ctx *gin.Context)
	// SetFormName changes the name typed in the new-pizza form
	SetFormName(ctx *gin.Context)
	// SelectFormTopping adds a topping to the new-pizza form
	SelectFormTopping(ctx *gin.Context)
	// DeselectFormTopping removes a topping from the new-pizza form
	DeselectFormTopping(ctx *gin.Context)
	// CreatePizza submits the new-pizza form, or an explicit request body
	CreatePizza(ctx *gin.Context)
	// DeletePizza deletes a pizza
	DeletePizza(ctx *gin.Context)
	// BeginEdit moves the edit cursor to a pizza
	BeginEdit(ctx *gin.Context)
	// SetEditName changes the draft name of the pizza being edited
	SetEditName(ctx *gin.Context)
	// SelectEditTopping adds a topping to the pizza being edited
	SelectEditTopping(ctx *gin.Context)
	// DeselectEditTopping removes a topping from the pizza being edited
	DeselectEditTopping(ctx *gin.Context)
	// CommitEdit saves the pizza being edited
	CommitEdit(ctx *gin.Context)
	// CancelEdit returns the screen to viewing
	CancelEdit(ctx *gin.Context)
	// Unmount detaches the screen from its catalogs
	Unmount()
}

type controller struct {
	catalog *catalog.PizzaCatalog
}

// NewPizzaController creates the pizza chef screen on top of c
func NewPizzaController(c *catalog.PizzaCatalog) *controller {
	return &controller{catalog: c}
}

func (pc *controller) render(ctx *gin.Context, err error) {
	status, problem := problemFor(err)
	view := PizzaChefView{
		Pizzas:   pc.catalog.Pizzas(),
		Toppings: pc.catalog.Toppings(),
		Form:     pc.catalog.Form(),
		Error:    pc.catalog.LastError(),
		Problem:  problem,
	}
	if editing, ok := pc.catalog.Editing(); ok {
		view.Editing = &editing
	}
	ctx.JSON(status, view)
}

// Show godoc
// @Summary Pizza chef screen
// @Description Mount the pizza chef screen, loading pizzas and toppings in parallel
// @Tags pizza-chef
// @Produce json
// @Success 200 {object} PizzaChefView
// @Failure 502 {object} PizzaChefView
// @Router /pizza-chef [get]
func (pc *controller) Show(ctx *gin.Context) {
	err := pc.catalog.Mount(ctx.Request.Context())
	logActionError(ctx, "mount pizzas", err)
	pc.render(ctx, err)
}

// SetFormName godoc
// @Summary Type the new pizza name
// @Tags pizza-chef
// @Accept json
// @Produce json
// @Param form body models.ToppingRequest true "Pizza name"
// @Success 200 {object} PizzaChefView
// @Router /pizza-chef/form [put]
func (pc *controller) SetFormName(ctx *gin.Context) {
	name, ok := bindName(ctx)
	if !ok {
		return
	}
	pc.catalog.SetFormName(name)
	pc.render(ctx, nil)
}

// SelectFormTopping godoc
// @Summary Select a topping for the new pizza
// @Tags pizza-chef
// @Produce json
// @Param toppingId path int true "Topping ID"
// @Success 200 {object} PizzaChefView
// @Failure 404 {object} PizzaChefView
// @Router /pizza-chef/form/toppings/{toppingId} [post]
func (pc *controller) SelectFormTopping(ctx *gin.Context) {
	id, ok := parseID(ctx, "toppingId")
	if !ok {
		return
	}
	err := pc.catalog.SelectFormTopping(id)
	pc.render(ctx, err)
}

// DeselectFormTopping godoc
// @Summary Deselect a topping of the new pizza
// @Tags pizza-chef
// @Produce json
// @Param toppingId path int true "Topping ID"
// @Success 200 {object} PizzaChefView
// @Router /pizza-chef/form/toppings/{toppingId} [delete]
func (pc *controller) DeselectFormTopping(ctx *gin.Context) {
	id, ok := parseID(ctx, "toppingId")
	if !ok {
		return
	}
	pc.catalog.DeselectFormTopping(id)
	pc.render(ctx, nil)
}

// CreatePizza godoc
// @Summary Add a pizza
// @Description Submit the new-pizza form. A request body, when present, is used instead of the form.
// @Tags pizza-chef
// @Accept json
// @Produce json
// @Param pizza body models.PizzaRequest false "Pizza name and topping ids"
// @Success 200 {object} PizzaChefView
// @Failure 400 {object} PizzaChefView
// @Failure 502 {object} PizzaChefView
// @Router /pizza-chef/pizzas [post]
func (pc *controller) CreatePizza(ctx *gin.Context) {
	var err error
	// chunked bodies report an unknown length of -1
	if ctx.Request.ContentLength != 0 {
		var req models.PizzaRequest
		if bindErr := ctx.ShouldBindJSON(&req); bindErr != nil {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
			return
		}
		_, err = pc.catalog.Add(ctx.Request.Context(), req.Name, req.ToppingIDs)
	} else {
		_, err = pc.catalog.SubmitForm(ctx.Request.Context())
	}
	logActionError(ctx, "add pizza", err)
	pc.render(ctx, err)
}

// DeletePizza godoc
// @Summary Delete a pizza
// @Tags pizza-chef
// @Produce json
// @Param id path int true "Pizza ID"
// @Success 200 {object} PizzaChefView
// @Failure 400 {object} models.APIError
// @Failure 502 {object} PizzaChefView
// @Router /pizza-chef/pizzas/{id} [delete]
func (pc *controller) DeletePizza(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	err := pc.catalog.Remove(ctx.Request.Context(), id)
	logActionError(ctx, "delete pizza", err)
	pc.render(ctx, err)
}

// BeginEdit godoc
// @Summary Edit a pizza
// @Description Move the edit cursor to a pizza, discarding any edit in progress
// @Tags pizza-chef
// @Produce json
// @Param id path int true "Pizza ID"
// @Success 200 {object} PizzaChefView
// @Failure 404 {object} PizzaChefView
// @Router /pizza-chef/pizzas/{id}/edit [post]
func (pc *controller) BeginEdit(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	err := pc.catalog.BeginEdit(id)
	pc.render(ctx, err)
}

// SetEditName godoc
// @Summary Rename the pizza being edited
// @Tags pizza-chef
// @Accept json
// @Produce json
// @Param draft body models.ToppingRequest true "Draft name"
// @Success 200 {object} PizzaChefView
// @Failure 409 {object} PizzaChefView
// @Router /pizza-chef/edit [patch]
func (pc *controller) SetEditName(ctx *gin.Context) {
	name, ok := bindName(ctx)
	if !ok {
		return
	}
	err := pc.catalog.SetEditName(name)
	pc.render(ctx, err)
}

// SelectEditTopping godoc
// @Summary Select a topping for the pizza being edited
// @Tags pizza-chef
// @Produce json
// @Param toppingId path int true "Topping ID"
// @Success 200 {object} PizzaChefView
// @Failure 404 {object} PizzaChefView
// @Failure 409 {object} PizzaChefView
// @Router /pizza-chef/edit/toppings/{toppingId} [post]
func (pc *controller) SelectEditTopping(ctx *gin.Context) {
	id, ok := parseID(ctx, "toppingId")
	if !ok {
		return
	}
	err := pc.catalog.SelectEditTopping(id)
	pc.render(ctx, err)
}

// DeselectEditTopping godoc
// @Summary Deselect a topping of the pizza being edited
// @Tags pizza-chef
// @Produce json
// @Param toppingId path int true "Topping ID"
// @Success 200 {object} PizzaChefView
// @Failure 409 {object} PizzaChefView
// @Router /pizza-chef/edit/toppings/{toppingId} [delete]
func (pc *controller) DeselectEditTopping(ctx *gin.Context) {
	id, ok := parseID(ctx, "toppingId")
	if !ok {
		return
	}
	err := pc.catalog.DeselectEditTopping(id)
	pc.render(ctx, err)
}

// CommitEdit godoc
// @Summary Save the pizza being edited
// @Description Validate and submit the draft. The cursor stays on the pizza when saving fails.
// @Tags pizza-chef
// @Produce json
// @Success 200 {object} PizzaChefView
// @Failure 400 {object} PizzaChefView
// @Failure 409 {object} PizzaChefView
// @Failure 502 {object} PizzaChefView
// @Router /pizza-chef/edit/commit [post]
func (pc *controller) CommitEdit(ctx *gin.Context) {
	err := pc.catalog.CommitDraft(ctx.Request.Context())
	logActionError(ctx, "update pizza", err)
	pc.render(ctx, err)
}

// CancelEdit godoc
// @Summary Cancel the pizza edit
// @Tags pizza-chef
// @Produce json
// @Success 200 {object} PizzaChefView
// @Router /pizza-chef/edit [delete]
func (pc *controller) CancelEdit(ctx *gin.Context) {
	pc.catalog.CancelEdit()
	pc.render(ctx, nil)
}

func (pc *controller) Unmount() {
	pc.catalog.Unmount()
}
