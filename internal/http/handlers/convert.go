package handlers

import "github.com/TalentX-App/vacancies/internal/domain"

func toSalaryDTO(s *domain.SalaryInfo) *salaryDTO {
	if s == nil {
		return nil
	}
	dto := &salaryDTO{Amount: s.Amount, Currency: s.Currency}
	if s.Range != nil {
		dto.Range = &salaryRangeDTO{Min: s.Range.Min, Max: s.Range.Max}
	}
	return dto
}

func fromSalaryDTO(dto *salaryDTO) *domain.SalaryInfo {
	if dto == nil {
		return nil
	}
	s := &domain.SalaryInfo{Amount: dto.Amount, Currency: dto.Currency}
	if dto.Range != nil {
		s.Range = &domain.SalaryRange{Min: dto.Range.Min, Max: dto.Range.Max}
	}
	return s
}

func toVacancyDTO(v domain.Vacancy) vacancyDTO {
	return vacancyDTO{
		ID:            v.ID,
		Title:         v.Title,
		PublishedDate: v.PublishedDate,
		WorkFormat:    v.WorkFormat,
		Salary:        toSalaryDTO(v.Salary),
		Location:      v.Location,
		Company:       v.Company,
		Description:   v.Description,
		Contacts:      contactsDTO{Type: v.Contacts.Type, Value: v.Contacts.Value},
		ParsedAt:      v.ParsedAt,
	}
}

func fromCreateRequest(req createVacancyRequest) domain.Vacancy {
	return domain.Vacancy{
		Title:         req.Title,
		PublishedDate: req.PublishedDate,
		WorkFormat:    req.WorkFormat,
		Salary:        fromSalaryDTO(req.Salary),
		Location:      req.Location,
		Company:       req.Company,
		Description:   req.Description,
		Contacts:      domain.ContactInfo{Type: req.Contacts.Type, Value: req.Contacts.Value},
	}
}

func fromUpdateRequest(req updateVacancyRequest) domain.PartialVacancyUpdate {
	p := domain.PartialVacancyUpdate{
		Title:         req.Title,
		PublishedDate: req.PublishedDate,
		WorkFormat:    req.WorkFormat,
		Location:      req.Location,
		Company:       req.Company,
		Description:   req.Description,
	}
	if req.Salary != nil {
		p.Salary = fromSalaryDTO(req.Salary)
	}
	if req.Contacts != nil {
		p.Contacts = &domain.ContactInfo{Type: req.Contacts.Type, Value: req.Contacts.Value}
	}
	return p
}
