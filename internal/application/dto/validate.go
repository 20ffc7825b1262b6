package dto

import "github.com/go-playground/validator/v10"

// validate instancia única; los tags `validate:` viven en los structs de request.
var validate = validator.New()

// Validate aplica las reglas declaradas en los tags del struct.
func Validate(s any) error {
	return validate.Struct(s)
}
