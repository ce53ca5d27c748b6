package domain

import "time"

// Vacancy represents a single job-vacancy record.
type Vacancy struct {
	ID            string
	Title         string
	PublishedDate time.Time
	WorkFormat    string
	Salary        *SalaryInfo
	Location      string
	Company       string
	Description   string
	Contacts      ContactInfo
	ParsedAt      time.Time
}

// SalaryInfo holds the advertised salary of a vacancy.
// Amount is a free-text display string; Range carries the numeric bounds
// used by salary filtering.
type SalaryInfo struct {
	Amount   string
	Currency string
	Range    *SalaryRange
}

// SalaryRange is the numeric salary interval, Min <= Max.
type SalaryRange struct {
	Min int
	Max int
}

// ContactInfo describes how to reach the poster (e.g. type "email").
type ContactInfo struct {
	Type  string
	Value string
}

// PartialVacancyUpdate carries optional fields to update a vacancy.
// A nil field means "do not change" that attribute. Salary and Contacts
// are replaced wholesale when present, never merged field-by-field.
// ID and ParsedAt are not representable here: they are immutable.
type PartialVacancyUpdate struct {
	Title         *string
	PublishedDate *time.Time
	WorkFormat    *string
	Salary        *SalaryInfo
	Location      *string
	Company       *string
	Description   *string
	Contacts      *ContactInfo
}

// Empty reports whether the patch carries no fields at all.
func (p PartialVacancyUpdate) Empty() bool {
	return p.Title == nil && p.PublishedDate == nil && p.WorkFormat == nil &&
		p.Salary == nil && p.Location == nil && p.Company == nil &&
		p.Description == nil && p.Contacts == nil
}
