package companies

// CreateCompanyRequest is the POST /companies payload. Code is optional and
// derived from Name when absent.
type CreateCompanyRequest struct {
	Code        *string `json:"code,omitempty" validate:"omitempty,max=100"`
	Name        string  `json:"name" validate:"required,max=200"`
	Description *string `json:"description,omitempty"`
}

// UpdateCompanyRequest is the PUT /companies/{code} payload.
type UpdateCompanyRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Description *string `json:"description,omitempty"`
}

type listResponse struct {
	Companies []Summary `json:"companies"`
}

type companyResponse struct {
	Company any `json:"company"`
}
