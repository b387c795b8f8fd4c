package controllers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes defines the console routes: the home screen, the two role screens and the API docs
func SetupRoutes(router *gin.Engine, backendURL string, owner ToppingController, chef PizzaController) {
	router.GET("/", Home)
	router.GET("/health", HealthCheck(backendURL))

	storeOwner := router.Group("/store-owner")
	{
		storeOwner.GET("", owner.Show)
		storeOwner.POST("/toppings", owner.AddTopping)
		storeOwner.PUT("/toppings/:id", owner.RenameTopping)
		storeOwner.DELETE("/toppings/:id", owner.RemoveTopping)
		storeOwner.POST("/toppings/:id/edit", owner.ToggleEdit)
		storeOwner.PATCH("/toppings/:id/edit", owner.UpdateDraft)
		storeOwner.DELETE("/toppings/:id/edit", owner.CancelEdit)
	}

	pizzaChef := router.Group("/pizza-chef")
	{
		pizzaChef.GET("", chef.Show)
		pizzaChef.PUT("/form", chef.SetFormName)
		pizzaChef.POST("/form/toppings/:toppingId", chef.SelectFormTopping)
		pizzaChef.DELETE("/form/toppings/:toppingId", chef.DeselectFormTopping)
		pizzaChef.POST("/pizzas", chef.CreatePizza)
		pizzaChef.DELETE("/pizzas/:id", chef.DeletePizza)
		pizzaChef.POST("/pizzas/:id/edit", chef.BeginEdit)
		pizzaChef.PATCH("/edit", chef.SetEditName)
		pizzaChef.POST("/edit/toppings/:toppingId", chef.SelectEditTopping)
		pizzaChef.DELETE("/edit/toppings/:toppingId", chef.DeselectEditTopping)
		pizzaChef.POST("/edit/commit", chef.CommitEdit)
		pizzaChef.DELETE("/edit", chef.CancelEdit)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
