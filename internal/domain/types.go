package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderBooked    OrderStatus = "BOOKED"
	OrderCancelled OrderStatus = "CANCELLED"
	OrderRefunded  OrderStatus = "REFUNDED"
	OrderPending   OrderStatus = "PENDING"
)

type ItemType string

const (
	ItemTicket  ItemType = "ticket"
	ItemArticle ItemType = "article"
	ItemVoucher ItemType = "voucher"
)

// EmailStatus is the derived confirmation-mail state shown in the dashboard.
// The German labels are the values the dashboard filters on.
type EmailStatus string

const (
	EmailSent    EmailStatus = "Versendet"
	EmailPending EmailStatus = "Ausstehend"
)

// ItemIcon selects the status icon rendered next to a line item.
type ItemIcon string

const (
	IconRefunded  ItemIcon = "refunded"
	IconCollected ItemIcon = "collected"
	IconPending   ItemIcon = "pending"
)

type OrderItem struct {
	Type      ItemType
	Name      string
	Count     int
	Collected int
	Refunded  int
}

// MailDebug is the optional delivery-tracking sub-record of a transaction.
// Times are nil when the upstream API reported its zero-date sentinel.
type MailDebug struct {
	Delivered *time.Time
	Opened    *time.Time
}

// Transaction is a single purchase record as delivered by the ticketing API,
// with zero-date sentinels already normalized to nil by the ingestion codec.
type Transaction struct {
	ID         string
	Customer   string
	Email      string
	Total      decimal.Decimal
	Items      []OrderItem
	Status     OrderStatus
	Site       string
	Film       string
	Version    string
	BookedAt   *time.Time
	PaidAt     *time.Time
	RefundedAt *time.Time
	ShowAt     *time.Time
	MailSent   int
	MailDebug  *MailDebug
}

// EmailStatus derives the confirmation-mail state: sent iff at least one
// mail went out.
func (t *Transaction) EmailStatus() EmailStatus {
	if t.MailSent > 0 {
		return EmailSent
	}
	return EmailPending
}

// MailOpened reports whether the customer opened the confirmation mail.
// Missing tracking data means not opened.
func (t *Transaction) MailOpened() bool {
	return t.MailDebug != nil && t.MailDebug.Opened != nil
}

// DisplayName returns the customer line for the order list. When the stored
// name is just the email again, only the email is shown and the separate
// email line is suppressed.
func (t *Transaction) DisplayName() (name string, showEmail bool) {
	if strings.EqualFold(t.Customer, t.Email) {
		return t.Email, false
	}
	return t.Customer, true
}

// ItemIcon classifies a single line item of this transaction. A cancelled
// order overrides per-item state.
func (t *Transaction) ItemIcon(item OrderItem) ItemIcon {
	if t.Status == OrderCancelled || item.Refunded > 0 {
		return IconRefunded
	}
	if item.Collected > 0 {
		return IconCollected
	}
	return IconPending
}

// OrderView is a render-ready transaction: the raw record plus the derived
// fields the order list displays.
type OrderView struct {
	Transaction
	EmailState EmailStatus
	Opened     bool
	Name       string
	ShowEmail  bool
	ItemIcons  []ItemIcon
}

// NewOrderView computes all derived display fields for a transaction.
func NewOrderView(t Transaction) OrderView {
	name, showEmail := t.DisplayName()

	icons := make([]ItemIcon, len(t.Items))
	for i, item := range t.Items {
		icons[i] = t.ItemIcon(item)
	}

	return OrderView{
		Transaction: t,
		EmailState:  t.EmailStatus(),
		Opened:      t.MailOpened(),
		Name:        name,
		ShowEmail:   showEmail,
		ItemIcons:   icons,
	}
}

// Invoice is one version of a half-month settlement. Versions are immutable;
// a correction inserts a new row with a higher version number.
type Invoice struct {
	ID            uuid.UUID
	Year          int
	Month         int
	PeriodStart   time.Time
	Version       int
	Gross         decimal.Decimal
	CustomerShare decimal.Decimal
	Payout        decimal.Decimal
	Active        bool
	CreatedAt     time.Time
}

// Period derives the billing period number from the period start: 1 for the
// first half of the month (start on day 1), 2 otherwise.
func (i *Invoice) Period() int {
	if i.PeriodStart.Day() == 1 {
		return 1
	}
	return 2
}

// PeriodGroup collects all versions of one (year, month, period) settlement.
// Versions is sorted by version descending; Active is the authoritative one.
type PeriodGroup struct {
	Year     int
	Month    int
	Period   int
	Active   Invoice
	Versions []Invoice
}
