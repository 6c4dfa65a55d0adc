package billing

import (
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
)

// Submission is a completed draft handed over on the final step
type Submission struct {
	Draft       Draft           `json:"draft"`
	GrandTotal  decimal.Decimal `json:"grand_total"`
	SubmittedAt time.Time       `json:"submitted_at"`
}

// Submitter receives completed drafts
type Submitter interface {
	Submit(Submission) error
}

// SubmitterFunc adapts a function to Submitter
type SubmitterFunc func(Submission) error

func (f SubmitterFunc) Submit(s Submission) error { return f(s) }

// LogSubmitter writes each submission as one structured log record.
// There is no other sink yet.
type LogSubmitter struct {
	logger *slog.Logger
}

// NewLogSubmitter returns a LogSubmitter; nil uses slog.Default()
func NewLogSubmitter(l *slog.Logger) *LogSubmitter {
	if l == nil {
		l = slog.Default()
	}
	return &LogSubmitter{logger: l}
}

// Submit implements Submitter
func (s *LogSubmitter) Submit(sub Submission) error {
	d := sub.Draft

	items := make([]any, 0, len(d.Items))
	for i, item := range d.Items {
		items = append(items, slog.Group(item.Token.String(),
			"position", i+1,
			"description", item.Description,
			"quantity", item.Quantity.String(),
			"unit_value", item.UnitValue.String(),
			"total", item.Total.String(),
		))
	}

	methods := make([]string, len(d.Terms.PaymentMethods))
	for i, m := range d.Terms.PaymentMethods {
		methods[i] = string(m)
	}

	s.logger.Info("document submitted",
		slog.String("doc_type", string(d.Document.Type)),
		slog.String("doc_number", d.Document.Number),
		slog.String("issue_date", d.Document.IssueDate.Format(IssueDateLayout)),
		slog.String("currency", d.Document.Currency.Code()),
		slog.Group("client",
			"name", d.Client.Name,
			"email", d.Client.Email,
			"address", d.Client.Address,
			"contact", d.Client.Contact,
			"save", d.Client.Save,
		),
		slog.Group("items", items...),
		slog.Group("terms",
			"payment_methods", methods,
			"bank_details", d.Terms.BankDetails,
			"deposit", d.Terms.Deposit,
			"deposit_value", d.Terms.DepositValue.String(),
			"notes", d.Terms.Notes,
		),
		slog.String("grand_total", sub.GrandTotal.String()),
		slog.Time("submitted_at", sub.SubmittedAt),
	)
	return nil
}
