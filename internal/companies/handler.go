package companies

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/biztime/biztime/internal/platform/httpx"
)

type Handler struct {
	logger  *slog.Logger
	service *Service
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers company routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{code}", h.show)
	r.Put("/{code}", h.update)
	r.Delete("/{code}", h.delete)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	companies, err := h.service.List(r.Context())
	if err != nil {
		h.fail(w, "list companies failed", err)
		return
	}
	httpx.JSON(w, http.StatusOK, listResponse{Companies: companies})
}

func (h *Handler) show(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	company, err := h.service.Get(r.Context(), code)
	if err != nil {
		h.fail(w, "get company failed", err, "code", code)
		return
	}
	httpx.JSON(w, http.StatusOK, companyResponse{Company: company})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateCompanyRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	company, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.fail(w, "create company failed", err)
		return
	}
	httpx.JSON(w, http.StatusCreated, companyResponse{Company: company})
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	var req UpdateCompanyRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	company, err := h.service.Update(r.Context(), code, req)
	if err != nil {
		h.fail(w, "update company failed", err, "code", code)
		return
	}
	httpx.JSON(w, http.StatusOK, companyResponse{Company: company})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if err := h.service.Delete(r.Context(), code); err != nil {
		h.fail(w, "delete company failed", err, "code", code)
		return
	}
	httpx.Deleted(w)
}

func (h *Handler) fail(w http.ResponseWriter, msg string, err error, attrs ...any) {
	if httpx.StatusFor(err) >= http.StatusInternalServerError {
		h.logger.Error(msg, append([]any{"error", err}, attrs...)...)
	} else {
		h.logger.Debug(msg, append([]any{"error", err}, attrs...)...)
	}
	httpx.RespondError(w, err)
}
