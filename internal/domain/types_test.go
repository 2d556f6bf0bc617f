package domain_test

import (
	"testing"
	"time"

	"github.com/kinoops/backoffice/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestTransactionEmailStatus(t *testing.T) {
	sent := domain.Transaction{MailSent: 1}
	pending := domain.Transaction{MailSent: 0}

	assert.Equal(t, domain.EmailSent, sent.EmailStatus())
	assert.Equal(t, domain.EmailPending, pending.EmailStatus())
}

func TestTransactionMailOpened(t *testing.T) {
	opened := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		tx   domain.Transaction
		want bool
	}{
		{name: "no tracking record", tx: domain.Transaction{MailSent: 1}, want: false},
		{name: "tracking without opened time", tx: domain.Transaction{MailDebug: &domain.MailDebug{}}, want: false},
		{name: "opened", tx: domain.Transaction{MailDebug: &domain.MailDebug{Opened: &opened}}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tx.MailOpened())
		})
	}
}

func TestTransactionDisplayName(t *testing.T) {
	t.Run("name equals email", func(t *testing.T) {
		tx := domain.Transaction{Customer: "Max@Example.com", Email: "max@example.com"}

		name, showEmail := tx.DisplayName()
		assert.Equal(t, "max@example.com", name)
		assert.False(t, showEmail)
	})

	t.Run("distinct name", func(t *testing.T) {
		tx := domain.Transaction{Customer: "Max Mustermann", Email: "max@example.com"}

		name, showEmail := tx.DisplayName()
		assert.Equal(t, "Max Mustermann", name)
		assert.True(t, showEmail)
	})
}

func TestTransactionItemIcon(t *testing.T) {
	tests := []struct {
		name   string
		status domain.OrderStatus
		item   domain.OrderItem
		want   domain.ItemIcon
	}{
		{name: "cancelled order overrides collected", status: domain.OrderCancelled, item: domain.OrderItem{Collected: 2}, want: domain.IconRefunded},
		{name: "refunded item", status: domain.OrderBooked, item: domain.OrderItem{Refunded: 1}, want: domain.IconRefunded},
		{name: "collected item", status: domain.OrderBooked, item: domain.OrderItem{Collected: 1}, want: domain.IconCollected},
		{name: "untouched item", status: domain.OrderBooked, item: domain.OrderItem{Count: 2}, want: domain.IconPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := domain.Transaction{Status: tt.status}
			assert.Equal(t, tt.want, tx.ItemIcon(tt.item))
		})
	}
}

func TestFilterMatch(t *testing.T) {
	assert.True(t, domain.Any[string]().Match("anything"))
	assert.True(t, domain.Any[string]().Match(""))
	assert.True(t, domain.Eq("Arkaden").Match("Arkaden"))
	assert.False(t, domain.Eq("Arkaden").Match("arkaden"), "matching is case-sensitive")
	assert.False(t, domain.Eq("Arkaden").Match(""))
	assert.True(t, domain.Eq("Arkaden").Constrained())
	assert.False(t, domain.Any[string]().Constrained())
}

func TestTransactionFilterConjunctive(t *testing.T) {
	tx := domain.Transaction{
		Status:   domain.OrderBooked,
		Site:     "Arkaden",
		Film:     "Sternenstaub",
		Version:  "3D",
		MailSent: 1,
	}

	all := domain.TransactionFilter{}
	assert.True(t, all.Match(&tx))

	match := domain.TransactionFilter{
		Email:  domain.Eq(domain.EmailSent),
		Status: domain.Eq(domain.OrderBooked),
		Site:   domain.Eq("Arkaden"),
	}
	assert.True(t, match.Match(&tx))

	oneOff := match
	oneOff.Film = domain.Eq("Der große Coup")
	assert.False(t, oneOff.Match(&tx), "one failing dimension rejects the record")
}
