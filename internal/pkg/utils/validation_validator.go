package utils

import (
	"regexp"
	"trimline-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("slot_day", validateSlotDay)
	validate.RegisterValidation("slot_time", validateSlotTime)
	validate.RegisterValidation("slot_op", validateSlotOp)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateSlotDay(fl validator.FieldLevel) bool {
	return regexp.MustCompile(constvars.RegexDayYYYYMMDD).MatchString(fl.Field().String())
}

func validateSlotTime(fl validator.FieldLevel) bool {
	return regexp.MustCompile(constvars.RegexTimeHHMM).MatchString(fl.Field().String())
}

func validateSlotOp(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.MutationOpSet || value == constvars.MutationOpClear
}
