package service

import (
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/limbo/timeflow/pkg/timeslot"
)

// Package-level validator with the domain's custom checks
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		// One of the 72 loggable slot ids
		validate.RegisterValidation("slot_id", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for _, s := range timeslot.Slots() {
				if s.ID == value {
					return true
				}
			}
			return false
		})
		// A known taxonomy id
		validate.RegisterValidation("category_id", func(fl validator.FieldLevel) bool {
			_, ok := timeslot.CategoryByID(fl.Field().String())
			return ok
		})
	})
}
