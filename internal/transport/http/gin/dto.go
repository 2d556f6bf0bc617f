package httpgin

import (
	"time"

	"github.com/kinoops/backoffice/internal/domain"
	"github.com/shopspring/decimal"
)

// filterAll is the dashboard's historical "no constraint" query value.
const filterAll = "alle"

type OrderItemResponse struct {
	Type      string `json:"type"`
	Name      string `json:"name"`
	Count     int    `json:"count"`
	Collected int    `json:"collected"`
	Refunded  int    `json:"refunded"`
	Icon      string `json:"icon"`
}

type OrderResponse struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Email       string              `json:"email,omitempty"`
	ShowEmail   bool                `json:"show_email"`
	Total       decimal.Decimal     `json:"total"`
	Status      string              `json:"status"`
	EmailStatus string              `json:"email_status"`
	MailOpened  bool                `json:"mail_opened"`
	Site        string              `json:"site"`
	Film        string              `json:"film"`
	Version     string              `json:"version"`
	BookedAt    string              `json:"booked_at,omitempty"`
	PaidAt      string              `json:"paid_at,omitempty"`
	RefundedAt  string              `json:"refunded_at,omitempty"`
	ShowAt      string              `json:"show_at,omitempty"`
	Items       []OrderItemResponse `json:"items"`
}

type ListOrdersResponse struct {
	Orders     []OrderResponse `json:"orders"`
	Page       int             `json:"page"`
	TotalPages int             `json:"total_pages"`
}

type InvoiceResponse struct {
	ID            string          `json:"id"`
	Year          int             `json:"year"`
	Month         int             `json:"month"`
	Period        int             `json:"period"`
	Version       int             `json:"version"`
	Gross         decimal.Decimal `json:"gross"`
	CustomerShare decimal.Decimal `json:"customer_share"`
	Payout        decimal.Decimal `json:"payout"`
	Active        bool            `json:"active"`
	CreatedAt     string          `json:"created_at"`
}

type PeriodGroupResponse struct {
	Year     int               `json:"year"`
	Month    int               `json:"month"`
	Period   int               `json:"period"`
	Active   InvoiceResponse   `json:"active"`
	Versions []InvoiceResponse `json:"versions"`
}

type YearTotalsResponse struct {
	Gross         decimal.Decimal `json:"gross"`
	CustomerShare decimal.Decimal `json:"customer_share"`
	Payout        decimal.Decimal `json:"payout"`
}

type ListInvoicesResponse struct {
	Year       int                   `json:"year"`
	Groups     []PeriodGroupResponse `json:"groups"`
	Totals     YearTotalsResponse    `json:"totals"`
	Page       int                   `json:"page"`
	TotalPages int                   `json:"total_pages"`
}

type IssueCorrectionRequest struct {
	Year          int     `json:"year" binding:"required"`
	Month         int     `json:"month" binding:"required,min=1,max=12"`
	Period        int     `json:"period" binding:"required,oneof=1 2"`
	Gross         float64 `json:"gross" binding:"required"`
	CustomerShare float64 `json:"customer_share"`
	Payout        float64 `json:"payout"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// formatTime renders an optional timestamp; absent dates (the upstream
// zero-date sentinel) become the empty string, never a fake 1899 date.
func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

func toOrderResponse(v domain.OrderView) OrderResponse {
	email := v.Transaction.Email
	if !v.ShowEmail {
		email = ""
	}

	items := make([]OrderItemResponse, len(v.Items))
	for i, item := range v.Items {
		items[i] = OrderItemResponse{
			Type:      string(item.Type),
			Name:      item.Name,
			Count:     item.Count,
			Collected: item.Collected,
			Refunded:  item.Refunded,
			Icon:      string(v.ItemIcons[i]),
		}
	}

	return OrderResponse{
		ID:          v.Transaction.ID,
		Name:        v.Name,
		Email:       email,
		ShowEmail:   v.ShowEmail,
		Total:       v.Total,
		Status:      string(v.Status),
		EmailStatus: string(v.EmailState),
		MailOpened:  v.Opened,
		Site:        v.Site,
		Film:        v.Film,
		Version:     v.Transaction.Version,
		BookedAt:    formatTime(v.BookedAt),
		PaidAt:      formatTime(v.PaidAt),
		RefundedAt:  formatTime(v.RefundedAt),
		ShowAt:      formatTime(v.ShowAt),
		Items:       items,
	}
}

func toInvoiceResponse(inv domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:            inv.ID.String(),
		Year:          inv.Year,
		Month:         inv.Month,
		Period:        inv.Period(),
		Version:       inv.Version,
		Gross:         inv.Gross,
		CustomerShare: inv.CustomerShare,
		Payout:        inv.Payout,
		Active:        inv.Active,
		CreatedAt:     inv.CreatedAt.Format(time.RFC3339),
	}
}

func toPeriodGroupResponse(g domain.PeriodGroup) PeriodGroupResponse {
	versions := make([]InvoiceResponse, len(g.Versions))
	for i, v := range g.Versions {
		versions[i] = toInvoiceResponse(v)
	}

	return PeriodGroupResponse{
		Year:     g.Year,
		Month:    g.Month,
		Period:   g.Period,
		Active:   toInvoiceResponse(g.Active),
		Versions: versions,
	}
}

// stringFilter maps a query value to a filter dimension: empty and "alle"
// leave the dimension unconstrained.
func stringFilter(v string) domain.Filter[string] {
	if v == "" || v == filterAll {
		return domain.Any[string]()
	}
	return domain.Eq(v)
}

func emailFilter(v string) domain.Filter[domain.EmailStatus] {
	if v == "" || v == filterAll {
		return domain.Any[domain.EmailStatus]()
	}
	return domain.Eq(domain.EmailStatus(v))
}

func statusFilter(v string) domain.Filter[domain.OrderStatus] {
	if v == "" || v == filterAll {
		return domain.Any[domain.OrderStatus]()
	}
	return domain.Eq(domain.OrderStatus(v))
}
