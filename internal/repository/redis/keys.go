package redis

import (
	"fmt"
	"time"
)

const ns = "backoffice:v1"

// KeyTransactions caches the remote transaction list for one date range and
// site. An empty site means all sites.
func KeyTransactions(from, to time.Time, site string) string {
	if site == "" {
		site = "all"
	}
	return fmt.Sprintf("%s:orders:%s:%s:%s", ns, from.Format("2006-01-02"), to.Format("2006-01-02"), site)
}

// KeyInvoiceGroups caches the grouped invoice periods of one year.
func KeyInvoiceGroups(year int) string {
	return fmt.Sprintf("%s:invoices:%d:groups", ns, year)
}

func KeyRateLimit(scope, id string) string {
	return fmt.Sprintf("%s:rl:%s:%s", ns, scope, id)
}

func ChannelInvoicesChanged() string {
	return ns + ":invoices:changed"
}
