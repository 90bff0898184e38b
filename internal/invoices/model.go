package invoices

import "time"

const dateLayout = "2006-01-02"

// Invoice is a row of the invoices table.
type Invoice struct {
	ID       int64
	CompCode string
	Amount   float64
	Paid     bool
	AddDate  time.Time
	PaidDate *time.Time
}

// Company is the company an invoice belongs to, as shown on invoice detail.
type Company struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// Detail is an invoice joined to its company.
type Detail struct {
	Invoice
	Company Company
}

// Summary is the list projection of an invoice.
type Summary struct {
	ID       int64  `json:"id"`
	CompCode string `json:"comp_code"`
}

// SetPaid moves the invoice between the unpaid and paid states. Paying stamps
// PaidDate with today, un-paying clears it, a self-transition changes nothing.
func (inv *Invoice) SetPaid(paid bool, today time.Time) {
	if inv.Paid == paid {
		return
	}
	inv.Paid = paid
	if paid {
		d := dateOf(today)
		inv.PaidDate = &d
		return
	}
	inv.PaidDate = nil
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
