package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ScreenLink points the home screen at one of the role screens
type ScreenLink struct {
	Role string `json:"role"`
	Path string `json:"path"`
}

// HomeView is rendered by the landing screen
type HomeView struct {
	Service string       `json:"service"`
	Screens []ScreenLink `json:"screens"`
}

var screens = []ScreenLink{
	{Role: "Store Owner", Path: "/store-owner"},
	{Role: "Pizza Chef", Path: "/pizza-chef"},
}

// Home godoc
// @Summary Home screen
// @Description Links to the store owner and pizza chef screens
// @Tags home
// @Produce json
// @Success 200 {object} HomeView
// @Router / [get]
func Home(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, HomeView{Service: "pizza-manager", Screens: screens})
}

// HealthCheck returns a handler reporting the console status and the backend it talks to
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func HealthCheck(backendURL string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"service":   "pizza-manager",
			"backend":   backendURL,
		})
	}
}
