package orders_test

import (
	"testing"
	"time"

	"github.com/kinoops/backoffice/internal/domain"
	"github.com/kinoops/backoffice/internal/service/orders"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tx(id string, status domain.OrderStatus, mailSent int) domain.Transaction {
	return domain.Transaction{
		ID:       id,
		Customer: "Max Mustermann",
		Email:    "max@example.com",
		Status:   status,
		Site:     "Arkaden",
		Film:     "Sternenstaub",
		Version:  "3D",
		MailSent: mailSent,
	}
}

func TestProcessIdentityFilter(t *testing.T) {
	list := []domain.Transaction{
		tx("1", domain.OrderBooked, 1),
		tx("2", domain.OrderPending, 0),
		tx("3", domain.OrderCancelled, 1),
	}

	views := orders.Process(list, domain.TransactionFilter{})

	require.Len(t, views, len(list))
	for i, v := range views {
		assert.Equal(t, list[i].ID, v.Transaction.ID, "order must be preserved")
	}
}

func TestProcessConjunctiveFilter(t *testing.T) {
	a := tx("1", domain.OrderBooked, 1)
	b := tx("2", domain.OrderBooked, 1)
	b.Site = "Hauptbahnhof"
	c := tx("3", domain.OrderCancelled, 1)

	views := orders.Process([]domain.Transaction{a, b, c}, domain.TransactionFilter{
		Status: domain.Eq(domain.OrderBooked),
		Site:   domain.Eq("Arkaden"),
	})

	require.Len(t, views, 1)
	assert.Equal(t, "1", views[0].Transaction.ID)
}

func TestProcessEmailStatusFilter(t *testing.T) {
	opened := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)

	sent := tx("1", domain.OrderBooked, 1)
	sent.MailDebug = &domain.MailDebug{Opened: &opened}
	pending := tx("2", domain.OrderPending, 0)

	views := orders.Process([]domain.Transaction{sent, pending}, domain.TransactionFilter{
		Email: domain.Eq(domain.EmailSent),
	})

	require.Len(t, views, 1)
	assert.Equal(t, "1", views[0].Transaction.ID)
	assert.Equal(t, domain.EmailSent, views[0].EmailState)
	assert.True(t, views[0].Opened)
}

func TestProcessDerivedDisplayFields(t *testing.T) {
	t.Run("name equal to email collapses to email", func(t *testing.T) {
		a := tx("1", domain.OrderBooked, 0)
		a.Customer = "MAX@example.com"

		views := orders.Process([]domain.Transaction{a}, domain.TransactionFilter{})

		require.Len(t, views, 1)
		assert.Equal(t, "max@example.com", views[0].Name)
		assert.False(t, views[0].ShowEmail)
	})

	t.Run("cancelled order marks every item refunded", func(t *testing.T) {
		a := tx("1", domain.OrderCancelled, 1)
		a.Items = []domain.OrderItem{
			{Type: domain.ItemTicket, Name: "Sternenstaub", Count: 2, Collected: 2},
			{Type: domain.ItemArticle, Name: "Popcorn", Count: 1},
			{Type: domain.ItemVoucher, Name: "Gutschein", Count: 1, Refunded: 1},
		}

		views := orders.Process([]domain.Transaction{a}, domain.TransactionFilter{})

		require.Len(t, views, 1)
		require.Len(t, views[0].ItemIcons, 3)
		for _, icon := range views[0].ItemIcons {
			assert.Equal(t, domain.IconRefunded, icon)
		}
	})

	t.Run("booked order classifies per item", func(t *testing.T) {
		a := tx("1", domain.OrderBooked, 1)
		a.Items = []domain.OrderItem{
			{Type: domain.ItemTicket, Name: "Sternenstaub", Count: 2, Collected: 2},
			{Type: domain.ItemArticle, Name: "Popcorn", Count: 1},
		}

		views := orders.Process([]domain.Transaction{a}, domain.TransactionFilter{})

		require.Len(t, views, 1)
		assert.Equal(t, domain.IconCollected, views[0].ItemIcons[0])
		assert.Equal(t, domain.IconPending, views[0].ItemIcons[1])
	})
}

func TestProcessMissingFieldsDoNotMatch(t *testing.T) {
	// a record without site/film data never matches a concrete filter value
	// but must not break the listing
	empty := domain.Transaction{ID: "1"}

	views := orders.Process([]domain.Transaction{empty}, domain.TransactionFilter{
		Site: domain.Eq("Arkaden"),
	})
	assert.Empty(t, views)

	views = orders.Process([]domain.Transaction{empty}, domain.TransactionFilter{})
	assert.Len(t, views, 1)
}

func TestProcessEmptyInput(t *testing.T) {
	views := orders.Process(nil, domain.TransactionFilter{})
	assert.Empty(t, views)
}
