package validator

import (
	stderrors "errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/lovelyplace-web/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("keyvalue", validateKeyValue)
}

// validateKeyValue - строка вида "key:value" с непустыми частями
func validateKeyValue(fl validator.FieldLevel) bool {
	key, value, ok := strings.Cut(fl.Field().String(), ":")
	return ok && key != "" && value != ""
}

// Validate - валидация структуры. Ошибки полей оборачиваются в VALIDATION_FAILED,
// в details попадает имя поля и нарушенное правило.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return errors.ErrInvalidRequest.WithMessage(err.Error())
	}

	details := make(map[string]interface{}, len(fieldErrs))
	for _, fe := range fieldErrs {
		details[fe.Field()] = fe.Tag()
	}
	return errors.ErrValidationFailed.WithDetails(details)
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}
