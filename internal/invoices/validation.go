package invoices

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/biztime/biztime/internal/platform/httpx"
)

// parseID turns a path segment into an invoice id. Anything that is not a
// positive integer cannot name an invoice and is reported as not found.
func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invoice %q: %w", raw, httpx.ErrNotFound)
	}
	return id, nil
}

func (s *Service) validateCreate(req CreateInvoiceRequest) (CreateInvoiceRequest, error) {
	req.CompCode = strings.TrimSpace(req.CompCode)
	if err := s.validator.Struct(req); err != nil {
		return req, err
	}
	return req, nil
}

func (s *Service) validateUpdate(req UpdateInvoiceRequest) error {
	return s.validator.Struct(req)
}
