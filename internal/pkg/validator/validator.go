package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate - валидация структуры по тегам
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// Details раскладывает ошибки валидации по полям для ответа клиенту
func Details(err error) map[string]interface{} {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}

	details := make(map[string]interface{}, len(verrs))
	for _, fe := range verrs {
		details[fe.Field()] = fe.Tag()
	}
	return details
}
