package kafka

import (
	"strings"
	"time"

	"github.com/TalentX-App/vacancies/internal/domain"
	"github.com/TalentX-App/vacancies/internal/service/ingest"
)

// PostingDTO is the wire shape of a parsed vacancy posting on the feed topic.
type PostingDTO struct {
	Channel   string     `json:"channel"`
	MessageID int64      `json:"message_id"`
	Vacancy   VacancyDTO `json:"vacancy"`
}

// VacancyDTO mirrors the vacancy payload produced by the parser pipeline.
type VacancyDTO struct {
	Title         string       `json:"title"`
	PublishedDate time.Time    `json:"published_date"`
	WorkFormat    string       `json:"work_format"`
	Salary        *SalaryDTO   `json:"salary,omitempty"`
	Location      string       `json:"location"`
	Company       string       `json:"company,omitempty"`
	Description   string       `json:"description"`
	Contacts      ContactsDTO  `json:"contacts"`
}

// SalaryDTO mirrors domain.SalaryInfo on the wire.
type SalaryDTO struct {
	Amount   string          `json:"amount,omitempty"`
	Currency string          `json:"currency,omitempty"`
	Range    *SalaryRangeDTO `json:"range,omitempty"`
}

// SalaryRangeDTO mirrors domain.SalaryRange on the wire.
type SalaryRangeDTO struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// ContactsDTO mirrors domain.ContactInfo on the wire.
type ContactsDTO struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// ToDomain converts a PostingDTO into an ingest.Posting.
func ToDomain(dto PostingDTO) ingest.Posting {
	v := domain.Vacancy{
		Title:         strings.TrimSpace(dto.Vacancy.Title),
		PublishedDate: dto.Vacancy.PublishedDate,
		WorkFormat:    strings.TrimSpace(dto.Vacancy.WorkFormat),
		Location:      strings.TrimSpace(dto.Vacancy.Location),
		Company:       strings.TrimSpace(dto.Vacancy.Company),
		Description:   strings.TrimSpace(dto.Vacancy.Description),
		Contacts: domain.ContactInfo{
			Type:  strings.TrimSpace(dto.Vacancy.Contacts.Type),
			Value: strings.TrimSpace(dto.Vacancy.Contacts.Value),
		},
	}
	if dto.Vacancy.Salary != nil {
		s := &domain.SalaryInfo{
			Amount:   dto.Vacancy.Salary.Amount,
			Currency: dto.Vacancy.Salary.Currency,
		}
		if dto.Vacancy.Salary.Range != nil {
			s.Range = &domain.SalaryRange{
				Min: dto.Vacancy.Salary.Range.Min,
				Max: dto.Vacancy.Salary.Range.Max,
			}
		}
		v.Salary = s
	}
	return ingest.Posting{
		Source: domain.Source{
			Channel:   strings.TrimSpace(dto.Channel),
			MessageID: dto.MessageID,
		},
		Vacancy: v,
	}
}
