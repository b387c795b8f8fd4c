package services

import (
	"errors"

	"github.com/franciscosanchezn/pizza-manager/internal/models"
	"gorm.io/gorm"
)

// ToppingService persists the topping catalog of the stub backend
type ToppingService interface {
	// GetAllToppings retrieves all toppings ordered by id
	GetAllToppings() ([]models.Topping, error)
	// CreateTopping stores a new topping; names must be unique on creation
	CreateTopping(name string) (models.Topping, error)
	// UpdateTopping renames a topping; an empty name keeps the current one
	UpdateTopping(id int64, name string) (models.Topping, error)
	// DeleteTopping removes a topping and detaches it from every pizza
	DeleteTopping(id int64) error
}

type toppingService struct {
	db *gorm.DB
}

// NewToppingService creates a new instance of ToppingService
func NewToppingService(db *gorm.DB) ToppingService {
	return &toppingService{db: db}
}

func (s *toppingService) GetAllToppings() ([]models.Topping, error) {
	var toppings []models.Topping
	if err := s.db.Order("id").Find(&toppings).Error; err != nil {
		return nil, err
	}
	return toppings, nil
}

func (s *toppingService) CreateTopping(name string) (models.Topping, error) {
	var count int64
	if err := s.db.Model(&models.Topping{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return models.Topping{}, err
	}
	if count > 0 {
		return models.Topping{}, &Failure{Reason: ReasonConflict, Message: "Topping already exists."}
	}

	topping := models.Topping{Name: name}
	if err := s.db.Create(&topping).Error; err != nil {
		return models.Topping{}, err
	}
	return topping, nil
}

func (s *toppingService) UpdateTopping(id int64, name string) (models.Topping, error) {
	var topping models.Topping
	if err := s.db.First(&topping, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Topping{}, notFound("Topping", id)
		}
		return models.Topping{}, err
	}

	if name != "" && name != topping.Name {
		topping.Name = name
		if err := s.db.Save(&topping).Error; err != nil {
			return models.Topping{}, err
		}
	}
	return topping, nil
}

func (s *toppingService) DeleteTopping(id int64) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var topping models.Topping
		if err := tx.First(&topping, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("Topping", id)
			}
			return err
		}
		if err := tx.Exec("DELETE FROM pizza_toppings WHERE topping_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&topping).Error
	})
}
