package companies

import (
	"fmt"
	"strings"

	"github.com/biztime/biztime/internal/platform/httpx"
)

func (s *Service) validateCreate(req CreateCompanyRequest) (Company, error) {
	if err := s.validator.Struct(req); err != nil {
		return Company{}, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return Company{}, fmt.Errorf("%w: name is required", httpx.ErrValidation)
	}

	source := name
	if req.Code != nil && strings.TrimSpace(*req.Code) != "" {
		source = *req.Code
	}
	code := Slugify(source)
	if code == "" {
		return Company{}, fmt.Errorf("%w: cannot derive a company code from %q", httpx.ErrValidation, source)
	}
	return Company{Code: code, Name: name, Description: req.Description}, nil
}

func (s *Service) validateUpdate(req UpdateCompanyRequest) (UpdateCompanyRequest, error) {
	if err := s.validator.Struct(req); err != nil {
		return req, err
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return req, fmt.Errorf("%w: name is required", httpx.ErrValidation)
	}
	return req, nil
}
