package domain

import (
	"strings"

	"github.com/TalentX-App/vacancies/internal/apperr"
)

// ValidateCreate checks a candidate vacancy against the create-path rules:
// title, published_date, work_format, location, description and contacts
// are required; salary and company are optional. All failures are
// reported at once.
func ValidateCreate(v *Vacancy) error {
	errs := apperr.NewValidation()
	if v == nil {
		return errs.Add("vacancy", "missing payload")
	}
	if strings.TrimSpace(v.Title) == "" {
		errs.Add("title", "required")
	}
	if v.PublishedDate.IsZero() {
		errs.Add("published_date", "required")
	}
	if strings.TrimSpace(v.WorkFormat) == "" {
		errs.Add("work_format", "required")
	}
	if strings.TrimSpace(v.Location) == "" {
		errs.Add("location", "required")
	}
	if strings.TrimSpace(v.Description) == "" {
		errs.Add("description", "required")
	}
	validateContacts(errs, v.Contacts)
	if v.Salary != nil {
		validateSalary(errs, v.Salary)
	}
	return errs.Err()
}

// ValidatePatch checks a partial update. Every field is optional, but a
// present field must satisfy the same per-field rules as on create.
// Company is the exception: an explicit empty string clears it.
func ValidatePatch(p *PartialVacancyUpdate) error {
	errs := apperr.NewValidation()
	if p == nil || p.Empty() {
		return errs.Add("patch", "no fields to update")
	}
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		errs.Add("title", "must not be empty")
	}
	if p.PublishedDate != nil && p.PublishedDate.IsZero() {
		errs.Add("published_date", "must be a valid timestamp")
	}
	if p.WorkFormat != nil && strings.TrimSpace(*p.WorkFormat) == "" {
		errs.Add("work_format", "must not be empty")
	}
	if p.Location != nil && strings.TrimSpace(*p.Location) == "" {
		errs.Add("location", "must not be empty")
	}
	if p.Description != nil && strings.TrimSpace(*p.Description) == "" {
		errs.Add("description", "must not be empty")
	}
	if p.Contacts != nil {
		validateContacts(errs, *p.Contacts)
	}
	if p.Salary != nil {
		validateSalary(errs, p.Salary)
	}
	return errs.Err()
}

func validateContacts(errs *apperr.Validation, c ContactInfo) {
	if strings.TrimSpace(c.Type) == "" {
		errs.Add("contacts.type", "required")
	}
	if strings.TrimSpace(c.Value) == "" {
		errs.Add("contacts.value", "required")
	}
}

// validateSalary enforces min <= max so the record stays searchable.
func validateSalary(errs *apperr.Validation, s *SalaryInfo) {
	if s.Range == nil {
		return
	}
	if s.Range.Min < 0 {
		errs.Add("salary.range.min", "must not be negative")
	}
	if s.Range.Max < 0 {
		errs.Add("salary.range.max", "must not be negative")
	}
	if s.Range.Min > s.Range.Max {
		errs.Add("salary.range", "min must not exceed max")
	}
}
