package usecase_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aurumprivate/aurum-leads/internal/usecase"
)

func TestValidateLeadSubmissionValid(t *testing.T) {
	errs := usecase.ValidateLeadSubmission(usecase.LeadSubmissionInput{
		FirstName: "Ava",
		LastName:  "Sterling",
		Email:     "ava@acmeglobal.com",
		Company:   "Acme Global Holdings",
		Position:  "CEO",
		Revenue:   "Over $1B",
	})

	assert.Empty(t, errs)
}

func TestValidateLeadSubmissionMissingRequired(t *testing.T) {
	errs := usecase.ValidateLeadSubmission(usecase.LeadSubmissionInput{})

	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}

	assert.Contains(t, fields, "first_name")
	assert.Contains(t, fields, "email")
}

func TestValidateLeadSubmissionInvalidEmail(t *testing.T) {
	errs := usecase.ValidateLeadSubmission(usecase.LeadSubmissionInput{
		FirstName: "Ava",
		Email:     "not-an-email",
	})

	assert.Len(t, errs, 1)
	assert.Equal(t, "email", errs[0].Field)
}

// Faixa de faturamento desconhecida passa na validação (pontua 0 depois)
func TestValidateLeadSubmissionUnknownRevenueAccepted(t *testing.T) {
	errs := usecase.ValidateLeadSubmission(usecase.LeadSubmissionInput{
		FirstName: "Ava",
		Email:     "ava@x.com",
		Revenue:   "a few doubloons",
	})

	assert.Empty(t, errs)
}

func TestValidateLeadSubmissionFieldTooLong(t *testing.T) {
	errs := usecase.ValidateLeadSubmission(usecase.LeadSubmissionInput{
		FirstName: strings.Repeat("a", 101),
		Email:     "ava@x.com",
	})

	assert.Len(t, errs, 1)
	assert.Equal(t, "first_name", errs[0].Field)
}
