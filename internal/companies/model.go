package companies

// Company is a row of the companies table.
type Company struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// Summary is the list projection of a company.
type Summary struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Detail is a company expanded with the ids of its invoices.
type Detail struct {
	Company
	Invoices []int64 `json:"invoices"`
}
