package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/TalentX-App/vacancies/internal/apperr"
	"github.com/TalentX-App/vacancies/internal/domain"
	"github.com/TalentX-App/vacancies/internal/logx"
)

// VacancyHandler serves HTTP endpoints for vacancy resources.
type VacancyHandler struct {
	logger logx.Logger
	uc     vacancyUsecase
}

// NewVacancyHandler wires a vacancyUsecase into HTTP handlers.
func NewVacancyHandler(logger logx.Logger, uc vacancyUsecase) *VacancyHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &VacancyHandler{logger: logger, uc: uc}
}

// Search handles GET /vacancies.
func (h *VacancyHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page := domain.DefaultPage()
	if s := q.Get("skip"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			writeError(h.logger, w, r, http.StatusBadRequest, "invalid skip")
			return
		}
		page.Skip = v
	}
	if s := q.Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			writeError(h.logger, w, r, http.StatusBadRequest, "invalid limit")
			return
		}
		page.Limit = v
	}
	if s := q.Get("sort_by"); s != "" {
		page.SortBy = domain.SortField(s)
	}
	if s := q.Get("sort_order"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			writeError(h.logger, w, r, http.StatusBadRequest, "invalid sort_order")
			return
		}
		page.SortOrder = v
	}

	var filter domain.Filter
	if s := q.Get("company"); s != "" {
		filter.Company = &s
	}
	if s := q.Get("specialization"); s != "" {
		filter.Specialization = &s
	}
	if s := q.Get("salary_min"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			writeError(h.logger, w, r, http.StatusBadRequest, "invalid salary_min")
			return
		}
		filter.SalaryMin = &v
	}
	if s := q.Get("salary_max"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			writeError(h.logger, w, r, http.StatusBadRequest, "invalid salary_max")
			return
		}
		filter.SalaryMax = &v
	}

	list, total, err := h.uc.Search(r.Context(), filter, page)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	resp := vacancyListResponse{Vacancies: make([]vacancyDTO, 0, len(list)), Total: total}
	for _, v := range list {
		resp.Vacancies = append(resp.Vacancies, toVacancyDTO(v))
	}
	writeJSON(h.logger, w, r, http.StatusOK, resp)
}

// GetByID handles GET /vacancies/{id}.
func (h *VacancyHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	v, err := h.uc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, toVacancyDTO(*v))
}

// Create handles POST /vacancies.
func (h *VacancyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createVacancyRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	candidate := fromCreateRequest(req)
	created, err := h.uc.Create(r.Context(), &candidate)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/v1/vacancies/"+created.ID)
	writeJSON(h.logger, w, r, http.StatusCreated, toVacancyDTO(*created))
}

// Update handles PATCH /vacancies/{id} with partial updates from the request body.
func (h *VacancyHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateVacancyRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	updated, err := h.uc.UpdatePartial(r.Context(), chi.URLParam(r, "id"), fromUpdateRequest(req))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, toVacancyDTO(*updated))
}

// Delete handles DELETE /vacancies/{id}.
func (h *VacancyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, deleteResponse{Status: "vacancy deleted"})
}

func (h *VacancyHandler) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, apperr.ErrInvalid):
		writeErrorFields(h.logger, w, r, http.StatusBadRequest, "invalid input", apperr.FieldsOf(err))
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "vacancy not found")
	default:
		h.logger.Error("vacancy usecase error",
			logx.String("req_id", reqID(r.Context())),
			logx.Err(err),
		)
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
