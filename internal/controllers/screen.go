package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/franciscosanchezn/pizza-manager/internal/catalog"
	"github.com/franciscosanchezn/pizza-manager/internal/config"
	"github.com/franciscosanchezn/pizza-manager/internal/models"
)

var log = config.NewLogger()

// nameRequest is the body of every action that only carries a typed name
type nameRequest struct {
	Name string `json:"name"`
}

// problemFor maps an action error to a response status and payload
func problemFor(err error) (int, *models.APIError) {
	if err == nil {
		return http.StatusOK, nil
	}

	var problem models.APIError
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, catalog.ErrToppingNotFound):
		status, problem = http.StatusNotFound, models.NewAPIError(models.ErrToppingNotFound, err.Error())
	case errors.Is(err, catalog.ErrPizzaNotFound):
		status, problem = http.StatusNotFound, models.NewAPIError(models.ErrPizzaNotFound, err.Error())
	case errors.Is(err, catalog.ErrNotEditing):
		status, problem = http.StatusConflict, models.NewAPIError(models.ErrNotEditing, err.Error())
	default:
		switch models.KindOf(err) {
		case models.KindValidation:
			status, problem = http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, err.Error())
		case models.KindTransport:
			status, problem = http.StatusBadGateway, models.NewAPIError(models.ErrUpstreamUnreachable, err.Error())
		case models.KindServer:
			var serverErr *models.ServerError
			errors.As(err, &serverErr)
			status, problem = http.StatusBadGateway, models.NewAPIError(models.ErrUpstreamRejected, err.Error(),
				map[string]interface{}{"upstream_status": serverErr.StatusCode})
		default:
			problem = models.NewAPIError(models.ErrInternalServer, err.Error())
		}
	}
	return status, &problem
}

// parseID reads a positive numeric path parameter
func parseID(ctx *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(param), 10, 64)
	if err != nil || id <= 0 {
		problem := models.NewAPIError(models.ErrBadRequest, "Invalid "+param+" format")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, problem)
		return 0, false
	}
	return id, true
}

// bindName decodes a {"name": ...} body
func bindName(ctx *gin.Context) (string, bool) {
	var req nameRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return "", false
	}
	return req.Name, true
}

func logActionError(ctx *gin.Context, action string, err error) {
	if err == nil {
		return
	}
	_ = ctx.Error(err)
	log.WithField("action", action).WithError(err).Debug("Screen action failed")
}
