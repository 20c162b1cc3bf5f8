package router

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/docspot/docspot-api/internal/model"
)

// RegisterValidators installs the custom binding validators. Call once
// before the first request is bound.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterValidation("apptstatus", func(fl validator.FieldLevel) bool {
		switch model.AppointmentStatus(fl.Field().String()) {
		case model.AppointmentStatusPending,
			model.AppointmentStatusConfirmed,
			model.AppointmentStatusCompleted,
			model.AppointmentStatusCancelled:
			return true
		}
		return false
	})
}
