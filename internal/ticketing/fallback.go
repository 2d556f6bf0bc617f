package ticketing

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/kinoops/backoffice/internal/domain"
	"github.com/shopspring/decimal"
)

var placeholderFilms = []struct {
	film    string
	version string
}{
	{"Der große Coup", "OV"},
	{"Nachtzug nach Lissabon", "Deutsch"},
	{"Sternenstaub", "3D"},
	{"Die letzte Vorstellung", "OmU"},
}

var placeholderSites = []string{"Arkaden", "Hauptbahnhof", "Stadtpark"}

var placeholderStatuses = []domain.OrderStatus{
	domain.OrderBooked,
	domain.OrderBooked,
	domain.OrderBooked,
	domain.OrderPending,
	domain.OrderCancelled,
	domain.OrderRefunded,
}

// PlaceholderTransactions builds a deterministic stand-in dataset for the
// given range when the ticketing API is unreachable. The same range always
// yields the same records, most recent booking first.
func PlaceholderTransactions(from, to time.Time, site string) []domain.Transaction {
	rng := rand.New(rand.NewSource(from.Unix() ^ to.Unix()))

	days := int(to.Sub(from).Hours()/24) + 1
	if days < 1 {
		days = 1
	}

	var out []domain.Transaction
	for d := days - 1; d >= 0; d-- {
		day := from.AddDate(0, 0, d)

		perDay := 2 + rng.Intn(3)
		for i := 0; i < perDay; i++ {
			fv := placeholderFilms[rng.Intn(len(placeholderFilms))]
			st := placeholderSites[rng.Intn(len(placeholderSites))]
			if site != "" {
				st = site
			}

			status := placeholderStatuses[rng.Intn(len(placeholderStatuses))]
			tickets := 1 + rng.Intn(4)

			booked := time.Date(day.Year(), day.Month(), day.Day(),
				10+rng.Intn(12), rng.Intn(60), 0, 0, time.UTC)
			show := booked.Add(time.Duration(1+rng.Intn(48)) * time.Hour)

			tx := domain.Transaction{
				ID:       fmt.Sprintf("PLH-%s-%03d", day.Format("20060102"), i+1),
				Customer: fmt.Sprintf("Gast %d", 1+rng.Intn(500)),
				Email:    fmt.Sprintf("gast%d@example.com", 1+rng.Intn(500)),
				Total:    decimal.NewFromInt(int64(tickets)).Mul(decimal.NewFromFloat(11.50)),
				Status:   status,
				Site:     st,
				Film:     fv.film,
				Version:  fv.version,
				BookedAt: &booked,
				ShowAt:   &show,
				MailSent: rng.Intn(2),
				Items: []domain.OrderItem{
					{
						Type:  domain.ItemTicket,
						Name:  fv.film,
						Count: tickets,
					},
				},
			}

			if status != domain.OrderPending {
				paid := booked.Add(2 * time.Minute)
				tx.PaidAt = &paid
			}
			if status == domain.OrderRefunded {
				refunded := booked.Add(6 * time.Hour)
				tx.RefundedAt = &refunded
				tx.Items[0].Refunded = tickets
			}

			out = append(out, tx)
		}
	}

	return out
}
