package invoices

import "time"

// CreateInvoiceRequest is the POST /invoices payload.
type CreateInvoiceRequest struct {
	CompCode string   `json:"comp_code" validate:"required,max=100"`
	Amount   *float64 `json:"amt" validate:"required,gt=0"`
}

// UpdateInvoiceRequest is the PUT /invoices/{id} payload. Absent fields keep
// their stored value.
type UpdateInvoiceRequest struct {
	Amount *float64 `json:"amt,omitempty" validate:"omitempty,gt=0"`
	Paid   *bool    `json:"paid,omitempty"`
}

// InvoiceView is the JSON shape of a created or updated invoice.
type InvoiceView struct {
	ID       int64   `json:"id"`
	CompCode string  `json:"comp_code"`
	Amount   float64 `json:"amt"`
	Paid     bool    `json:"paid"`
	AddDate  string  `json:"add_date"`
	PaidDate *string `json:"paid_date"`
}

// DetailView is the JSON shape of GET /invoices/{id}.
type DetailView struct {
	ID       int64   `json:"id"`
	Amount   float64 `json:"amt"`
	Paid     bool    `json:"paid"`
	AddDate  string  `json:"add_date"`
	PaidDate *string `json:"paid_date"`
	Company  Company `json:"company"`
}

type listResponse struct {
	Invoices []Summary `json:"invoices"`
}

type invoiceResponse struct {
	Invoice any `json:"invoice"`
}

func toView(inv Invoice) InvoiceView {
	return InvoiceView{
		ID:       inv.ID,
		CompCode: inv.CompCode,
		Amount:   inv.Amount,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate.Format(dateLayout),
		PaidDate: formatDate(inv.PaidDate),
	}
}

func toDetailView(d Detail) DetailView {
	return DetailView{
		ID:       d.ID,
		Amount:   d.Amount,
		Paid:     d.Paid,
		AddDate:  d.AddDate.Format(dateLayout),
		PaidDate: formatDate(d.PaidDate),
		Company:  d.Company,
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
