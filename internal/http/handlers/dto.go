package handlers

import "time"

type salaryRangeDTO struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type salaryDTO struct {
	Amount   string          `json:"amount,omitempty"`
	Currency string          `json:"currency,omitempty"`
	Range    *salaryRangeDTO `json:"range,omitempty"`
}

type contactsDTO struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type vacancyDTO struct {
	ID            string      `json:"id"`
	Title         string      `json:"title"`
	PublishedDate time.Time   `json:"published_date"`
	WorkFormat    string      `json:"work_format"`
	Salary        *salaryDTO  `json:"salary,omitempty"`
	Location      string      `json:"location"`
	Company       string      `json:"company,omitempty"`
	Description   string      `json:"description"`
	Contacts      contactsDTO `json:"contacts"`
	ParsedAt      time.Time   `json:"parsed_at"`
}

type vacancyListResponse struct {
	Vacancies []vacancyDTO `json:"vacancies"`
	Total     int64        `json:"total"`
}

type createVacancyRequest struct {
	Title         string       `json:"title"`
	PublishedDate time.Time    `json:"published_date"`
	WorkFormat    string       `json:"work_format"`
	Salary        *salaryDTO   `json:"salary,omitempty"`
	Location      string       `json:"location"`
	Company       string       `json:"company,omitempty"`
	Description   string       `json:"description"`
	Contacts      contactsDTO  `json:"contacts"`
}

// updateVacancyRequest carries the partial-update payload. A nil field
// was not sent and leaves the stored value unchanged; id and parsed_at
// are not accepted at all.
type updateVacancyRequest struct {
	Title         *string      `json:"title,omitempty"`
	PublishedDate *time.Time   `json:"published_date,omitempty"`
	WorkFormat    *string      `json:"work_format,omitempty"`
	Salary        *salaryDTO   `json:"salary,omitempty"`
	Location      *string      `json:"location,omitempty"`
	Company       *string      `json:"company,omitempty"`
	Description   *string      `json:"description,omitempty"`
	Contacts      *contactsDTO `json:"contacts,omitempty"`
}

type deleteResponse struct {
	Status string `json:"status"`
}
