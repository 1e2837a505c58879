package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"servimarket_backend/internal/models"
)

var (
	phoneVERegex = regexp.MustCompile(`^04\d{9}$`)
	cedulaRegex  = regexp.MustCompile(`^\d{7,8}$`)
)

func registerCustomRules(v *validator.Validate) {
	v.RegisterValidation("is-user-role", func(fl validator.FieldLevel) bool {
		switch models.UserRole(fl.Field().String()) {
		case models.UserRoleClient, models.UserRoleProfessional, models.UserRoleAdmin:
			return true
		}
		return false
	})

	v.RegisterValidation("is-offer-status", func(fl validator.FieldLevel) bool {
		switch models.OfferStatus(fl.Field().String()) {
		case models.OfferStatusPending, models.OfferStatusAccepted, models.OfferStatusRejected:
			return true
		}
		return false
	})

	v.RegisterValidation("is-transaction-status", func(fl validator.FieldLevel) bool {
		switch models.TransactionStatus(fl.Field().String()) {
		case models.TransactionStatusPending, models.TransactionStatusInProgress,
			models.TransactionStatusCompleted, models.TransactionStatusCancelled:
			return true
		}
		return false
	})

	v.RegisterValidation("is-ticket-status", func(fl validator.FieldLevel) bool {
		candidate := models.TicketStatus(fl.Field().String())
		for _, s := range models.AllTicketStatuses {
			if candidate == s {
				return true
			}
		}
		return false
	})

	v.RegisterValidation("is-discount-type", func(fl validator.FieldLevel) bool {
		switch models.DiscountType(fl.Field().String()) {
		case models.DiscountTypePercentage, models.DiscountTypeFixed:
			return true
		}
		return false
	})

	v.RegisterValidation("is-phone-ve", func(fl validator.FieldLevel) bool {
		return phoneVERegex.MatchString(fl.Field().String())
	})

	v.RegisterValidation("is-cedula", func(fl validator.FieldLevel) bool {
		return cedulaRegex.MatchString(fl.Field().String())
	})
}
