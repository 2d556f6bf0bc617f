package ticketing

import (
	"testing"
	"time"

	"github.com/kinoops/backoffice/internal/domain"
	"github.com/shopspring/decimal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWireTime(t *testing.T) {
	tests := []struct {
		name string
		in   string
		wantNil bool
	}{
		{name: "empty", in: "", wantNil: true},
		{name: "zero-date sentinel", in: "1899-12-30T00:00:00", wantNil: true},
		{name: "year 1900 still sentinel", in: "1900-06-01T12:00:00", wantNil: true},
		{name: "garbage", in: "not-a-date", wantNil: true},
		{name: "real timestamp", in: "2024-01-02T10:00:00", wantNil: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseWireTime(tt.in)
			if tt.wantNil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Equal(t, 2024, got.Year())
			}
		})
	}
}

func TestDecodeTransaction(t *testing.T) {
	w := wireTransaction{
		ID:          "TX-1",
		Customer:    "Max Mustermann",
		Email:       "max@example.com",
		Total:       23.00,
		Status:      "BOOKED",
		CinemaName:  "Arkaden",
		FilmName:    "Sternenstaub",
		Version:     "3D",
		BookingTime: "2024-01-01T18:30:00",
		PaymentTime: "2024-01-01T18:32:00",
		RefundTime:  "1899-12-30T00:00:00",
		ShowTime:    "2024-01-02T20:00:00",
		MailSent:    1,
		MailDebug: &wireMailDebug{
			Delivered: "2024-01-01T18:33:00",
			Opened:    "1899-12-30T00:00:00",
		},
		Items: []wireItem{
			{Type: "ticket", Name: "Sternenstaub", Count: 2, Collected: 0, Refunded: 0},
		},
	}

	tx := decodeTransaction(w)

	assert.Equal(t, "TX-1", tx.ID)
	assert.Equal(t, domain.OrderBooked, tx.Status)
	assert.Equal(t, "Arkaden", tx.Site)
	assert.True(t, tx.Total.Equal(decimal.NewFromFloat(23.00)))

	require.NotNil(t, tx.BookedAt)
	require.NotNil(t, tx.PaidAt)
	assert.Nil(t, tx.RefundedAt, "sentinel refund time becomes absent")

	require.NotNil(t, tx.MailDebug)
	assert.NotNil(t, tx.MailDebug.Delivered)
	assert.Nil(t, tx.MailDebug.Opened, "sentinel opened time means not opened")
	assert.False(t, tx.MailOpened())

	require.Len(t, tx.Items, 1)
	assert.Equal(t, domain.ItemTicket, tx.Items[0].Type)
}

func TestDecodeTransactionWithoutMailDebug(t *testing.T) {
	tx := decodeTransaction(wireTransaction{ID: "TX-2", MailSent: 0})

	assert.Nil(t, tx.MailDebug)
	assert.False(t, tx.MailOpened())
	assert.Equal(t, domain.EmailPending, tx.EmailStatus())
}

func TestPlaceholderTransactionsDeterministic(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)

	a := PlaceholderTransactions(from, to, "")
	b := PlaceholderTransactions(from, to, "")

	require.NotEmpty(t, a)
	require.Len(t, b, len(a))
	for i := range a {
		assert.Equal(t, a[i].ID, b[i].ID)
		assert.Equal(t, a[i].Status, b[i].Status)
	}
}

func TestPlaceholderTransactionsSitePinned(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, tx := range PlaceholderTransactions(from, from, "Hauptbahnhof") {
		assert.Equal(t, "Hauptbahnhof", tx.Site)
	}
}
