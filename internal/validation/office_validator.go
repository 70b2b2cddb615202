package validation

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/workstation/workstation-api/internal/domain"
)

// Cost caps tied to the number of requested services. Offices with few
// services cannot charge a premium daily rate; offices with many carry a
// higher cap. Counts of exactly 3 or 4 have no cap.
const (
	lowServiceCountMax = 2
	lowServiceCostCap  = 54

	highServiceCountMin = 4
	highServiceCostCap  = 80
)

var allowedImageExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}

// OfficeCommandValidator evaluates CreateOfficeCommand against the full
// office rule set. All failing fields are reported together; evaluation
// does not stop at the first invalid field.
type OfficeCommandValidator struct {
	validate *validator.Validate
}

// NewOfficeCommandValidator builds the validator with the image URL rule
// and the struct-level cost-cap rules registered.
func NewOfficeCommandValidator() *OfficeCommandValidator {
	v := validator.New()

	// Registration only fails for a blank tag name.
	if err := v.RegisterValidation("image_url", beValidImageURL); err != nil {
		panic(fmt.Sprintf("register image_url validation: %v", err))
	}
	v.RegisterStructValidation(officeCostCapRules, domain.CreateOfficeCommand{})

	return &OfficeCommandValidator{validate: v}
}

// Validate returns nil when the command passes every rule, or the
// accumulated field-grouped messages otherwise.
func (ov *OfficeCommandValidator) Validate(cmd *domain.CreateOfficeCommand) FieldErrors {
	err := ov.validate.Struct(cmd)
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
		fieldErrs.Add(commandFieldPath(fe), officeMessage(fe))
	}
	return fieldErrs
}

// beValidImageURL accepts absolute URLs whose path ends in one of the
// allowed image extensions. Blank values are rejected by the preceding
// required rule, never here.
func beValidImageURL(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if strings.TrimSpace(raw) == "" {
		return true
	}

	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return false
	}

	path := strings.ToLower(u.Path)
	for _, ext := range allowedImageExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// officeCostCapRules enforces the cross-field caps between CostPerDay and
// the number of requested services.
func officeCostCapRules(sl validator.StructLevel) {
	cmd := sl.Current().Interface().(domain.CreateOfficeCommand)
	serviceCount := len(cmd.Services)

	if serviceCount <= lowServiceCountMax && cmd.CostPerDay > lowServiceCostCap {
		sl.ReportError(cmd.CostPerDay, "CostPerDay", "CostPerDay", "cost_cap_low", strconv.Itoa(lowServiceCountMax))
	}
	if serviceCount > highServiceCountMin && cmd.CostPerDay > highServiceCostCap {
		sl.ReportError(cmd.CostPerDay, "CostPerDay", "CostPerDay", "cost_cap_high", strconv.Itoa(serviceCount))
	}
}

// commandFieldPath strips the root command type from the namespace so
// errors group under names like "Location" or "Services[0].Name".
func commandFieldPath(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func officeMessage(fe validator.FieldError) string {
	if strings.Contains(fe.StructNamespace(), ".Services[") {
		return serviceMessage(fe)
	}

	switch fe.StructField() {
	case "Location":
		if fe.Tag() == "max" {
			return "Location can't exceed 200 characters."
		}
		return "The office location must be listed."
	case "Capacity":
		if fe.Tag() == "lte" {
			return "Capacity can't be more than 1000."
		}
		return "Capacity must be more than 0."
	case "CostPerDay":
		switch fe.Tag() {
		case "lt":
			return "Cost per day is too much!"
		case "cost_cap_low":
			return fmt.Sprintf(
				"The daily cost cannot exceed %d when there are %s or fewer services.",
				lowServiceCostCap, fe.Param(),
			)
		case "cost_cap_high":
			return fmt.Sprintf(
				"The daily cost cannot exceed %d when there are more than %d services.",
				highServiceCostCap, highServiceCountMin,
			)
		default:
			return "Cost per day must be more than 0."
		}
	case "Description":
		if fe.Tag() == "max" {
			return "La descripción no debe exceder los 500 caracteres."
		}
		return "La descripción es obligatoria."
	case "ImageURL":
		switch fe.Tag() {
		case "image_url":
			return "La URL debe ser válida y apuntar a una imagen (.jpg, .jpeg, .png o .webp)."
		case "max":
			return "La URL de la imagen no debe exceder los 300 caracteres."
		default:
			return "La URL de la imagen no puede estar vacía."
		}
	case "Services":
		if fe.Tag() == "required" {
			return "Define a list of services."
		}
		return "Include at least one service."
	}
	return fmt.Sprintf("invalid value for %s", fe.StructField())
}

func serviceMessage(fe validator.FieldError) string {
	switch fe.StructField() {
	case "Name":
		if fe.Tag() == "max" {
			return "The name can't exceed 100 characters."
		}
		return "Name of the service is obligatory."
	case "Description":
		return "The description can't exceed 250 characters."
	case "Cost":
		if fe.Tag() == "lte" {
			return "The cost can't exceed 100."
		}
		return "The cost must be at least 20."
	}
	return fmt.Sprintf("invalid value for %s", fe.StructField())
}
