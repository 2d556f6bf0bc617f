package ticketing

import (
	"time"

	"github.com/kinoops/backoffice/internal/domain"
	"github.com/shopspring/decimal"
)

// The API sends local timestamps without a zone and uses a zero date around
// 1899-12-30 to mean "not set".
const wireTimeLayout = "2006-01-02T15:04:05"

type wireTransaction struct {
	ID          string         `json:"id"`
	Customer    string         `json:"customer"`
	Email       string         `json:"email"`
	Total       float64        `json:"total"`
	Status      string         `json:"status"`
	CinemaName  string         `json:"cinemaName"`
	FilmName    string         `json:"filmName"`
	Version     string         `json:"version"`
	BookingTime string         `json:"bookingTime"`
	PaymentTime string         `json:"paymentTime"`
	RefundTime  string         `json:"refundTime"`
	ShowTime    string         `json:"showTime"`
	MailSent    int            `json:"mailSent"`
	MailDebug   *wireMailDebug `json:"mailDebug"`
	Items       []wireItem     `json:"items"`
}

type wireMailDebug struct {
	Delivered string `json:"delivered"`
	Opened    string `json:"opened"`
}

type wireItem struct {
	Type      string `json:"type"`
	Name      string `json:"name"`
	Count     int    `json:"count"`
	Collected int    `json:"collected"`
	Refunded  int    `json:"refunded"`
}

// parseWireTime normalizes the zero-date sentinel: empty strings, unparsable
// values and anything in or before 1900 come back as nil so no sentinel
// leaks past the ingestion boundary.
func parseWireTime(s string) *time.Time {
	if s == "" {
		return nil
	}

	t, err := time.Parse(wireTimeLayout, s)
	if err != nil || t.Year() <= 1900 {
		return nil
	}

	return &t
}

func decodeTransaction(w wireTransaction) domain.Transaction {
	t := domain.Transaction{
		ID:         w.ID,
		Customer:   w.Customer,
		Email:      w.Email,
		Total:      decimal.NewFromFloat(w.Total),
		Status:     domain.OrderStatus(w.Status),
		Site:       w.CinemaName,
		Film:       w.FilmName,
		Version:    w.Version,
		BookedAt:   parseWireTime(w.BookingTime),
		PaidAt:     parseWireTime(w.PaymentTime),
		RefundedAt: parseWireTime(w.RefundTime),
		ShowAt:     parseWireTime(w.ShowTime),
		MailSent:   w.MailSent,
	}

	if w.MailDebug != nil {
		t.MailDebug = &domain.MailDebug{
			Delivered: parseWireTime(w.MailDebug.Delivered),
			Opened:    parseWireTime(w.MailDebug.Opened),
		}
	}

	for _, it := range w.Items {
		t.Items = append(t.Items, domain.OrderItem{
			Type:      domain.ItemType(it.Type),
			Name:      it.Name,
			Count:     it.Count,
			Collected: it.Collected,
			Refunded:  it.Refunded,
		})
	}

	return t
}
