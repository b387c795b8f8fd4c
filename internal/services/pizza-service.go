package services

import (
	"errors"
	"fmt"

	"github.com/franciscosanchezn/pizza-manager/internal/models"
	"gorm.io/gorm"
)

// PizzaService provides methods to interact with the pizza tables of the stub backend
type PizzaService interface {
	// GetAllPizzas retrieves all pizzas with hydrated toppings
	GetAllPizzas() ([]models.Pizza, error)
	// GetPizzaByID retrieves a pizza by its ID
	GetPizzaByID(id int64) (models.Pizza, error)
	// CreatePizza creates a new pizza referencing existing toppings
	CreatePizza(req models.PizzaRequest) (models.Pizza, error)
	// UpdatePizza replaces the toppings of an existing pizza and renames it when a name is given
	UpdatePizza(id int64, req models.PizzaRequest) (models.Pizza, error)
	// DeletePizza deletes a pizza from the database by its ID
	DeletePizza(id int64) error
}

// pizzaService is the implementation of the PizzaService interface
type pizzaService struct {
	db *gorm.DB
}

// NewPizzaService creates a new instance of PizzaService
func NewPizzaService(db *gorm.DB) PizzaService {
	return &pizzaService{db: db}
}

func preloadToppings(db *gorm.DB) *gorm.DB {
	return db.Preload("Toppings", func(db *gorm.DB) *gorm.DB {
		return db.Order("toppings.id")
	})
}

func (s *pizzaService) GetAllPizzas() ([]models.Pizza, error) {
	var pizzas []models.Pizza
	if err := preloadToppings(s.db).Order("id").Find(&pizzas).Error; err != nil {
		return nil, err
	}
	return pizzas, nil
}

func (s *pizzaService) GetPizzaByID(id int64) (models.Pizza, error) {
	return s.findPizza(s.db, id)
}

func (s *pizzaService) findPizza(db *gorm.DB, id int64) (models.Pizza, error) {
	var pizza models.Pizza
	if err := preloadToppings(db).First(&pizza, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Pizza{}, notFound("Pizza", id)
		}
		return models.Pizza{}, err
	}
	return pizza, nil
}

// resolveToppings loads every referenced topping, failing on the first unknown id
func resolveToppings(db *gorm.DB, ids []int64) ([]models.Topping, error) {
	toppings := make([]models.Topping, 0, len(ids))
	seen := make(map[int64]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		var topping models.Topping
		if err := db.First(&topping, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &Failure{Reason: ReasonInvalidReference, Message: fmt.Sprintf("Topping with id %d does not exist.", id)}
			}
			return nil, err
		}
		toppings = append(toppings, topping)
	}
	return toppings, nil
}

func (s *pizzaService) CreatePizza(req models.PizzaRequest) (models.Pizza, error) {
	var created models.Pizza
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Pizza{}).Where("name = ?", req.Name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return &Failure{Reason: ReasonConflict, Message: fmt.Sprintf("Pizza with name %s already exists.", req.Name)}
		}

		toppings, err := resolveToppings(tx, req.ToppingIDs)
		if err != nil {
			return err
		}

		pizza := models.Pizza{Name: req.Name, Toppings: toppings}
		if err := tx.Create(&pizza).Error; err != nil {
			return err
		}
		created, err = s.findPizza(tx, pizza.ID)
		return err
	})
	if err != nil {
		return models.Pizza{}, err
	}
	return created, nil
}

func (s *pizzaService) UpdatePizza(id int64, req models.PizzaRequest) (models.Pizza, error) {
	var updated models.Pizza
	err := s.db.Transaction(func(tx *gorm.DB) error {
		pizza, err := s.findPizza(tx, id)
		if err != nil {
			return err
		}

		toppings, err := resolveToppings(tx, req.ToppingIDs)
		if err != nil {
			return err
		}

		if req.Name != "" && req.Name != pizza.Name {
			if err := tx.Model(&pizza).Update("name", req.Name).Error; err != nil {
				return err
			}
		}
		if err := tx.Model(&pizza).Association("Toppings").Replace(toppings); err != nil {
			return err
		}
		updated, err = s.findPizza(tx, id)
		return err
	})
	if err != nil {
		return models.Pizza{}, err
	}
	return updated, nil
}

func (s *pizzaService) DeletePizza(id int64) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		pizza, err := s.findPizza(tx, id)
		if err != nil {
			return err
		}
		return tx.Select("Toppings").Delete(&pizza).Error
	})
}
