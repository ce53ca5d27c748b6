package vacancy

import (
	"testing"
	"time"

	"github.com/TalentX-App/vacancies/internal/domain"
)

func TestMerge_EmptyPatchKeepsEverything(t *testing.T) {
	t.Parallel()

	existing := storedVacancy()
	got := Merge(existing, domain.PartialVacancyUpdate{})
	if got != existing {
		t.Fatalf("expected unchanged record, got %#v", got)
	}
}

func TestMerge_PatchedFieldsReplace(t *testing.T) {
	t.Parallel()

	existing := storedVacancy()
	title := "Senior Go Developer"
	format := "hybrid"
	published := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	got := Merge(existing, domain.PartialVacancyUpdate{
		Title:         &title,
		WorkFormat:    &format,
		PublishedDate: &published,
	})

	if got.Title != title || got.WorkFormat != format || !got.PublishedDate.Equal(published) {
		t.Fatalf("patched fields not applied: %#v", got)
	}
	if got.Location != existing.Location || got.Description != existing.Description {
		t.Fatalf("absent fields must stay untouched: %#v", got)
	}
	if got.ID != existing.ID || !got.ParsedAt.Equal(existing.ParsedAt) {
		t.Fatalf("id and parsed_at must survive: %#v", got)
	}
}

func TestMerge_SalaryReplacedWholesale(t *testing.T) {
	t.Parallel()

	existing := storedVacancy()
	existing.Salary = &domain.SalaryInfo{
		Amount:   "3000-5000",
		Currency: "EUR",
		Range:    &domain.SalaryRange{Min: 3000, Max: 5000},
	}

	patch := domain.PartialVacancyUpdate{
		Salary: &domain.SalaryInfo{Amount: "negotiable"},
	}

	got := Merge(existing, patch)
	if got.Salary == nil {
		t.Fatal("expected salary to be present")
	}
	if got.Salary.Amount != "negotiable" || got.Salary.Currency != "" || got.Salary.Range != nil {
		t.Fatalf("salary must be swapped as a whole object, got %#v", got.Salary)
	}
}

func TestMerge_SalaryDoesNotAliasPatch(t *testing.T) {
	t.Parallel()

	existing := storedVacancy()
	patch := domain.PartialVacancyUpdate{
		Salary: &domain.SalaryInfo{Range: &domain.SalaryRange{Min: 100, Max: 200}},
	}

	got := Merge(existing, patch)
	patch.Salary.Range.Min = 999

	if got.Salary.Range.Min != 100 {
		t.Fatalf("merged salary aliases the patch: %#v", got.Salary.Range)
	}
}

func TestMerge_ContactsReplacedWholesale(t *testing.T) {
	t.Parallel()

	existing := storedVacancy()
	got := Merge(existing, domain.PartialVacancyUpdate{
		Contacts: &domain.ContactInfo{Type: "telegram", Value: "@hiring"},
	})
	if got.Contacts.Type != "telegram" || got.Contacts.Value != "@hiring" {
		t.Fatalf("contacts not replaced: %#v", got.Contacts)
	}
}

func TestMerge_CompanyCleared(t *testing.T) {
	t.Parallel()

	existing := storedVacancy()
	company := ""
	got := Merge(existing, domain.PartialVacancyUpdate{Company: &company})
	if got.Company != "" {
		t.Fatalf("expected company cleared, got %q", got.Company)
	}
}
