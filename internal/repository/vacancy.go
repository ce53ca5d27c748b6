package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TalentX-App/vacancies/internal/domain"
)

// VacancyRepo stores vacancy documents in the vacancies table.
type VacancyRepo struct{ db *pgxpool.Pool }

// NewVacancyRepo creates a new VacancyRepo.
func NewVacancyRepo(db *pgxpool.Pool) *VacancyRepo { return &VacancyRepo{db: db} }

const vacancyColumns = `id, title, published_date, work_format, salary, location, company, description, contacts, parsed_at`

// salaryDoc is the stored shape of domain.SalaryInfo.
type salaryDoc struct {
	Amount   string          `json:"amount,omitempty"`
	Currency string          `json:"currency,omitempty"`
	Range    *salaryRangeDoc `json:"range,omitempty"`
}

type salaryRangeDoc struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type contactsDoc struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

func encodeSalary(s *domain.SalaryInfo) ([]byte, error) {
	if s == nil {
		return nil, nil
	}
	doc := salaryDoc{Amount: s.Amount, Currency: s.Currency}
	if s.Range != nil {
		doc.Range = &salaryRangeDoc{Min: s.Range.Min, Max: s.Range.Max}
	}
	return json.Marshal(doc)
}

func decodeSalary(raw []byte) (*domain.SalaryInfo, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var doc salaryDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode salary: %w", err)
	}
	s := &domain.SalaryInfo{Amount: doc.Amount, Currency: doc.Currency}
	if doc.Range != nil {
		s.Range = &domain.SalaryRange{Min: doc.Range.Min, Max: doc.Range.Max}
	}
	return s, nil
}

func encodeContacts(c domain.ContactInfo) ([]byte, error) {
	return json.Marshal(contactsDoc{Type: c.Type, Value: c.Value})
}

type vacancyRow struct {
	v        domain.Vacancy
	salary   []byte
	contacts []byte
	company  *string
}

func (r *vacancyRow) finish() (*domain.Vacancy, error) {
	salary, err := decodeSalary(r.salary)
	if err != nil {
		return nil, err
	}
	r.v.Salary = salary
	var doc contactsDoc
	if err := json.Unmarshal(r.contacts, &doc); err != nil {
		return nil, fmt.Errorf("decode contacts: %w", err)
	}
	r.v.Contacts = domain.ContactInfo{Type: doc.Type, Value: doc.Value}
	if r.company != nil {
		r.v.Company = *r.company
	}
	return &r.v, nil
}

// Get - returns a vacancy by its ID, or nil when no such record exists.
func (r *VacancyRepo) Get(ctx context.Context, id string) (*domain.Vacancy, error) {
	var row vacancyRow
	err := r.db.QueryRow(ctx,
		`SELECT `+vacancyColumns+` FROM vacancies WHERE id=$1`, id,
	).Scan(&row.v.ID, &row.v.Title, &row.v.PublishedDate, &row.v.WorkFormat,
		&row.salary, &row.v.Location, &row.company, &row.v.Description,
		&row.contacts, &row.v.ParsedAt)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vacancy %s: %w", id, err)
	}
	return row.finish()
}

// buildWhere compiles the opaque filter into a WHERE clause. Only the
// supplied constraints contribute; an empty filter matches everything.
func buildWhere(f domain.Filter) (string, []any) {
	conds := make([]string, 0, 4)
	args := make([]any, 0, 4)

	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Company != nil {
		conds = append(conds, fmt.Sprintf("company ILIKE '%%' || %s || '%%'", next(*f.Company)))
	}
	if f.Specialization != nil {
		p := next(*f.Specialization)
		conds = append(conds, fmt.Sprintf(
			"(title ILIKE '%%' || %s || '%%' OR description ILIKE '%%' || %s || '%%')", p, p))
	}
	if f.SalaryMin != nil || f.SalaryMax != nil {
		conds = append(conds, "salary -> 'range' IS NOT NULL")
		if f.SalaryMin != nil {
			conds = append(conds, fmt.Sprintf("(salary -> 'range' ->> 'max')::bigint >= %s", next(*f.SalaryMin)))
		}
		if f.SalaryMax != nil {
			conds = append(conds, fmt.Sprintf("(salary -> 'range' ->> 'min')::bigint <= %s", next(*f.SalaryMax)))
		}
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// sortColumns whitelists the ORDER BY targets.
var sortColumns = map[domain.SortField]string{
	domain.SortByPublishedDate: "published_date",
	domain.SortByTitle:         "title",
}

// Search returns one page of matching vacancies plus the total count of
// the full matched set. Ties on the sort field break on id ascending so
// pagination stays stable across calls.
func (r *VacancyRepo) Search(ctx context.Context, f domain.Filter, p domain.Page) ([]domain.Vacancy, int64, error) {
	where, args := buildWhere(f)

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM vacancies`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count vacancies: %w", err)
	}

	col, ok := sortColumns[p.SortBy]
	if !ok {
		return nil, 0, fmt.Errorf("unknown sort field %q", p.SortBy)
	}
	dir := "DESC"
	if p.SortOrder == domain.SortAsc {
		dir = "ASC"
	}

	q := fmt.Sprintf(`SELECT %s FROM vacancies%s ORDER BY %s %s, id ASC OFFSET $%d LIMIT $%d`,
		vacancyColumns, where, col, dir, len(args)+1, len(args)+2)
	args = append(args, p.Skip, p.Limit)

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("search vacancies: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Vacancy, 0, p.Limit)
	for rows.Next() {
		var row vacancyRow
		if err := rows.Scan(&row.v.ID, &row.v.Title, &row.v.PublishedDate, &row.v.WorkFormat,
			&row.salary, &row.v.Location, &row.company, &row.v.Description,
			&row.contacts, &row.v.ParsedAt); err != nil {
			return nil, 0, err
		}
		v, err := row.finish()
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *v)
	}
	return out, total, rows.Err()
}

// Create inserts a new vacancy. Storage assigns the identifier and the
// parsed_at timestamp; both are written back into v.
func (r *VacancyRepo) Create(ctx context.Context, v *domain.Vacancy) (string, error) {
	id, parsedAt, err := r.insert(ctx, v, nil)
	if err != nil {
		return "", fmt.Errorf("create vacancy: %w", err)
	}
	v.ID = id
	v.ParsedAt = parsedAt
	return id, nil
}

// CreateFromSource inserts an ingested vacancy, recording its origin.
// A posting already stored under the same (channel, message id) pair is
// skipped; the bool reports whether a row was actually inserted.
func (r *VacancyRepo) CreateFromSource(ctx context.Context, v *domain.Vacancy, src domain.Source) (bool, error) {
	id, parsedAt, err := r.insert(ctx, v, &src)
	if err != nil {
		return false, fmt.Errorf("create vacancy from %s/%d: %w", src.Channel, src.MessageID, err)
	}
	if id == "" {
		return false, nil
	}
	v.ID = id
	v.ParsedAt = parsedAt
	return true, nil
}

func (r *VacancyRepo) insert(ctx context.Context, v *domain.Vacancy, src *domain.Source) (string, time.Time, error) {
	salary, err := encodeSalary(v.Salary)
	if err != nil {
		return "", time.Time{}, err
	}
	contacts, err := encodeContacts(v.Contacts)
	if err != nil {
		return "", time.Time{}, err
	}

	id := domain.NewID()
	parsedAt := time.Now().UTC()

	q := `INSERT INTO vacancies (id, title, published_date, work_format, salary, location, company, description, contacts, parsed_at, source_channel, source_message_id)
	      VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`
	args := []any{id, v.Title, v.PublishedDate, v.WorkFormat, salary,
		v.Location, nullableCompany(v.Company), v.Description, contacts, parsedAt}
	if src != nil {
		q += ` ON CONFLICT (source_channel, source_message_id) DO NOTHING`
		args = append(args, src.Channel, src.MessageID)
	} else {
		args = append(args, nil, nil)
	}

	ct, err := r.db.Exec(ctx, q, args...)
	if err != nil {
		return "", time.Time{}, err
	}
	if ct.RowsAffected() == 0 {
		return "", time.Time{}, nil
	}
	return id, parsedAt, nil
}

// Replace overwrites every mutable field of the stored record. The id and
// parsed_at columns are left untouched. Returns true if a row was affected.
func (r *VacancyRepo) Replace(ctx context.Context, v *domain.Vacancy) (bool, error) {
	salary, err := encodeSalary(v.Salary)
	if err != nil {
		return false, err
	}
	contacts, err := encodeContacts(v.Contacts)
	if err != nil {
		return false, err
	}

	ct, err := r.db.Exec(ctx, `
        UPDATE vacancies
        SET
            title          = $2,
            published_date = $3,
            work_format    = $4,
            salary         = $5,
            location       = $6,
            company        = $7,
            description    = $8,
            contacts       = $9,
            updated_at     = now()
        WHERE id = $1
    `, v.ID, v.Title, v.PublishedDate, v.WorkFormat, salary,
		v.Location, nullableCompany(v.Company), v.Description, contacts)
	if err != nil {
		return false, fmt.Errorf("replace vacancy %s: %w", v.ID, err)
	}
	return ct.RowsAffected() > 0, nil
}

// Delete removes a vacancy. Returns true if a row was deleted.
func (r *VacancyRepo) Delete(ctx context.Context, id string) (bool, error) {
	ct, err := r.db.Exec(ctx, `DELETE FROM vacancies WHERE id=$1`, id)
	if err != nil {
		return false, fmt.Errorf("delete vacancy %s: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}

// nullableCompany maps the empty company to NULL so omitted optional
// fields round-trip as absent.
func nullableCompany(c string) *string {
	if c == "" {
		return nil
	}
	return &c
}
