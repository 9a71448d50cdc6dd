package models

import "time"

// Invoice statuses.
const (
	InvoiceStatusPending  = "pending"
	InvoiceStatusApproved = "approved"
	InvoiceStatusRejected = "rejected"
	InvoiceStatusPaid     = "paid"
)

// Invoice line types.
const (
	LineCharge  = "charge"
	LineExpense = "expense"
)

// InvoiceLine is one charge or expense on a weekly invoice.
type InvoiceLine struct {
	Type        string  `bson:"type" json:"type"`
	ShootID     string  `bson:"shoot_id,omitempty" json:"shoot_id,omitempty"`
	Description string  `bson:"description" json:"description"`
	Amount      float64 `bson:"amount" json:"amount"`
}

// Invoice is a billing-period rollup of a photographer's charges and
// expenses. Created by the weekly aggregation worker; the dashboard only
// approves, rejects or pays it.
type Invoice struct {
	ID              string        `bson:"id" json:"id"`
	PhotographerID  string        `bson:"photographer_id" json:"photographer_id"`
	PeriodStart     string        `bson:"period_start" json:"period_start"` // "2006-01-02"
	PeriodEnd       string        `bson:"period_end" json:"period_end"`
	Lines           []InvoiceLine `bson:"lines" json:"lines"`
	Total           float64       `bson:"total" json:"total"`
	Status          string        `bson:"status" json:"status"`
	RejectionReason string        `bson:"rejection_reason,omitempty" json:"rejection_reason,omitempty"`
	PayoutRef       string        `bson:"payout_ref,omitempty" json:"payout_ref,omitempty"`
	CreatedAt       time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time     `bson:"updated_at" json:"updated_at"`
}

// SumLines recomputes Total from the line items (charges minus expenses).
func (inv *Invoice) SumLines() float64 {
	total := 0.0
	for _, l := range inv.Lines {
		switch l.Type {
		case LineExpense:
			total -= l.Amount
		default:
			total += l.Amount
		}
	}
	return total
}
