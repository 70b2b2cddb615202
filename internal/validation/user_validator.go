package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/workstation/workstation-api/internal/domain"
)

// UserCommandValidator evaluates CreateUserCommand field constraints.
// Uniqueness and role checks stay in the user command service because
// they need the store.
type UserCommandValidator struct {
	validate *validator.Validate
}

// NewUserCommandValidator builds the user command validator.
func NewUserCommandValidator() *UserCommandValidator {
	return &UserCommandValidator{validate: validator.New()}
}

// Validate returns nil when the command passes every rule, or the
// accumulated field-grouped messages otherwise.
func (uv *UserCommandValidator) Validate(cmd *domain.CreateUserCommand) FieldErrors {
	err := uv.validate.Struct(cmd)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		fieldErrs := FieldErrors{}
		fieldErrs.Add("command", err.Error())
		return fieldErrs
	}

	fieldErrs := FieldErrors{}
	for _, fe := range verrs {
		fieldErrs.Add(commandFieldPath(fe), userMessage(fe))
	}
	return fieldErrs
}

func userMessage(fe validator.FieldError) string {
	switch fe.StructField() {
	case "FirstName":
		if fe.Tag() == "max" {
			return "First name can't exceed 100 characters."
		}
		return "First name is required."
	case "LastName":
		if fe.Tag() == "max" {
			return "Last name can't exceed 100 characters."
		}
		return "Last name is required."
	case "Dni":
		if fe.Tag() == "len" {
			return "DNI must be exactly 8 characters."
		}
		return "DNI is required."
	case "PhoneNumber":
		if fe.Tag() == "required" {
			return "Phone number is required."
		}
		return "Phone number must have 9 digits."
	case "Email":
		if fe.Tag() == "email" {
			return "Invalid email format."
		}
		return "Email is required."
	case "Password":
		return "Password is required."
	}
	return fmt.Sprintf("invalid value for %s", fe.StructField())
}
