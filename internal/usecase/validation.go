package usecase

import (
	"fmt"
	"net/mail"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateLeadSubmission valida o mínimo para um lead fazer sentido.
// Faixa de faturamento desconhecida NÃO é erro: o lead entra e pontua 0
// nessa dimensão.
func ValidateLeadSubmission(input LeadSubmissionInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.FirstName) == "" {
		errors = append(errors, ValidationError{"first_name", "is required"})
	} else if len(input.FirstName) > 100 {
		errors = append(errors, ValidationError{"first_name", "must not exceed 100 characters"})
	}

	if len(input.LastName) > 100 {
		errors = append(errors, ValidationError{"last_name", "must not exceed 100 characters"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if len(input.Company) > 200 {
		errors = append(errors, ValidationError{"company", "must not exceed 200 characters"})
	}

	if len(input.Requirements) > 5000 {
		errors = append(errors, ValidationError{"requirements", "must not exceed 5000 characters"})
	}

	return errors
}
