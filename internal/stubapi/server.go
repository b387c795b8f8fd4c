// Package stubapi serves the pizza backend REST contract from a local database
// so the console and CLI can run without the real backend.
package stubapi

import (
	"github.com/franciscosanchezn/pizza-manager/internal/config"
	"github.com/franciscosanchezn/pizza-manager/internal/models"
	"github.com/franciscosanchezn/pizza-manager/internal/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var log = config.NewLogger()

// Migrate creates the topping, pizza and join tables
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Topping{}, &models.Pizza{})
}

// Seed fills an empty database with a starter catalog.
// It returns false when toppings already exist.
func Seed(db *gorm.DB) (bool, error) {
	var count int64
	if err := db.Model(&models.Topping{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		log.Info("Database already seeded with initial data")
		return false, nil
	}

	log.Info("Seeding database with initial data")
	toppingService := services.NewToppingService(db)
	pizzaService := services.NewPizzaService(db)

	ids := make(map[string]int64)
	for _, name := range []string{"Tomato Sauce", "Mozzarella", "Basil", "Pepperoni", "Bell Peppers", "Olives"} {
		topping, err := toppingService.CreateTopping(name)
		if err != nil {
			return false, err
		}
		ids[name] = topping.ID
	}

	pizzas := []models.PizzaRequest{
		{Name: "Margherita", ToppingIDs: []int64{ids["Tomato Sauce"], ids["Mozzarella"], ids["Basil"]}},
		{Name: "Pepperoni", ToppingIDs: []int64{ids["Tomato Sauce"], ids["Mozzarella"], ids["Pepperoni"]}},
		{Name: "Vegetarian", ToppingIDs: []int64{ids["Tomato Sauce"], ids["Mozzarella"], ids["Bell Peppers"], ids["Olives"]}},
	}
	for _, pizza := range pizzas {
		if _, err := pizzaService.CreatePizza(pizza); err != nil {
			return false, err
		}
	}
	log.Info("Database seeded successfully")
	return true, nil
}

// NewRouter wires the REST contract onto a gin engine backed by db.
// Extra middleware runs after panic recovery.
func NewRouter(db *gorm.DB, middleware ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware...)

	h := &handler{
		toppings: services.NewToppingService(db),
		pizzas:   services.NewPizzaService(db),
	}

	api := router.Group("/api")
	{
		toppings := api.Group("/toppings")
		{
			toppings.GET("", h.getAllToppings)
			toppings.POST("", h.createTopping)
			toppings.PUT("/:id", h.updateTopping)
			toppings.DELETE("/:id", h.deleteTopping)
		}

		pizzas := api.Group("/pizzas")
		{
			pizzas.GET("", h.getAllPizzas)
			pizzas.GET("/:id", h.getPizzaByID)
			pizzas.POST("", h.createPizza)
			pizzas.PUT("/:id", h.updatePizza)
			pizzas.DELETE("/:id", h.deletePizza)
		}
	}

	return router
}
