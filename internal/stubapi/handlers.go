package stubapi

import (
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/pizza-manager/internal/models"
	"github.com/franciscosanchezn/pizza-manager/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type handler struct {
	toppings services.ToppingService
	pizzas   services.PizzaService
}

// parseID reads the :id path parameter, answering 400 when it is not numeric
func parseID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.String(http.StatusBadRequest, "Invalid id format")
		return 0, false
	}
	return id, true
}

// respondFailure answers refused operations with their message as plain text
func respondFailure(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch services.ReasonOf(err) {
	case services.ReasonNotFound:
		status = http.StatusNotFound
	case services.ReasonConflict, services.ReasonInvalidReference:
		status = http.StatusBadRequest
	default:
		log.WithError(err).Error("Stub backend operation failed")
		ctx.String(status, "An error occurred while processing the request.")
		return
	}
	log.WithFields(logrus.Fields{"status": status, "path": ctx.FullPath()}).Debug(err.Error())
	ctx.String(status, err.Error())
}

func (h *handler) getAllToppings(ctx *gin.Context) {
	toppings, err := h.toppings.GetAllToppings()
	if err != nil {
		respondFailure(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toppings)
}

func (h *handler) createTopping(ctx *gin.Context) {
	var req models.ToppingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.String(http.StatusBadRequest, "Invalid request body")
		return
	}
	topping, err := h.toppings.CreateTopping(req.Name)
	if err != nil {
		respondFailure(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, topping)
}

func (h *handler) updateTopping(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	var req models.ToppingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.String(http.StatusBadRequest, "Invalid request body")
		return
	}
	topping, err := h.toppings.UpdateTopping(id, req.Name)
	if err != nil {
		respondFailure(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, topping)
}

func (h *handler) deleteTopping(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	if err := h.toppings.DeleteTopping(id); err != nil {
		respondFailure(ctx, err)
		return
	}
	ctx.Status(http.StatusOK)
}

func (h *handler) getAllPizzas(ctx *gin.Context) {
	pizzas, err := h.pizzas.GetAllPizzas()
	if err != nil {
		respondFailure(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, pizzas)
}

func (h *handler) getPizzaByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	pizza, err := h.pizzas.GetPizzaByID(id)
	if err != nil {
		respondFailure(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, pizza)
}

func (h *handler) createPizza(ctx *gin.Context) {
	var req models.PizzaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.String(http.StatusBadRequest, "Invalid request body")
		return
	}
	pizza, err := h.pizzas.CreatePizza(req)
	if err != nil {
		respondFailure(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, pizza)
}

func (h *handler) updatePizza(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	var req models.PizzaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.String(http.StatusBadRequest, "Invalid request body")
		return
	}
	pizza, err := h.pizzas.UpdatePizza(id, req)
	if err != nil {
		respondFailure(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, pizza)
}

func (h *handler) deletePizza(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	if err := h.pizzas.DeletePizza(id); err != nil {
		respondFailure(ctx, err)
		return
	}
	ctx.Status(http.StatusOK)
}
