package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateStruct menjalankan validator.v10 pada DTO.
func ValidateStruct(s any) error {
	return validate.Struct(s)
}

// ValidationError memetakan error validator.v10 ke response 422.
// Error lain (bukan ValidationErrors) dianggap input rusak → 400.
func ValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}

	fieldErrors := make(map[string][]string, len(ve))
	for _, fe := range ve {
		fieldErrors[fe.Field()] = append(fieldErrors[fe.Field()], messageForTag(fe))
	}
	return JsonValidationError(c, fieldErrors)
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " wajib diisi."
	case "email":
		return "Format email tidak valid."
	case "min":
		return fe.Field() + " minimal " + fe.Param() + "."
	case "max":
		return fe.Field() + " maksimal " + fe.Param() + "."
	case "gt":
		return fe.Field() + " harus lebih dari " + fe.Param() + "."
	case "gte":
		return fe.Field() + " minimal " + fe.Param() + "."
	case "oneof":
		return fe.Field() + " harus salah satu dari: " + fe.Param() + "."
	default:
		return "Format tidak valid."
	}
}
