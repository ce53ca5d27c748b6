package vacancy

import "github.com/TalentX-App/vacancies/internal/domain"

// Merge applies a partial update onto an existing vacancy. Fields present
// in the patch replace the stored value; absent fields stay untouched.
// Salary and contacts are swapped as whole objects. The id and parsed_at
// of the existing record always survive: the patch cannot carry them.
// Company sent as an empty string clears the stored value.
func Merge(existing domain.Vacancy, p domain.PartialVacancyUpdate) domain.Vacancy {
	merged := existing

	if p.Title != nil {
		merged.Title = *p.Title
	}
	if p.PublishedDate != nil {
		merged.PublishedDate = *p.PublishedDate
	}
	if p.WorkFormat != nil {
		merged.WorkFormat = *p.WorkFormat
	}
	if p.Salary != nil {
		merged.Salary = cloneSalary(p.Salary)
	}
	if p.Location != nil {
		merged.Location = *p.Location
	}
	if p.Company != nil {
		merged.Company = *p.Company
	}
	if p.Description != nil {
		merged.Description = *p.Description
	}
	if p.Contacts != nil {
		merged.Contacts = *p.Contacts
	}
	return merged
}

// cloneSalary copies the salary so the merged record does not alias the
// patch's nested range.
func cloneSalary(s *domain.SalaryInfo) *domain.SalaryInfo {
	out := &domain.SalaryInfo{Amount: s.Amount, Currency: s.Currency}
	if s.Range != nil {
		r := *s.Range
		out.Range = &r
	}
	return out
}
