package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// InvoicesPubSub broadcasts invoice correction events so other dashboard
// instances can drop their cached groupings for the affected year.
type InvoicesPubSub struct {
	rdb     *redis.Client
	channel string
}

func NewInvoicesPubSub(rdb *redis.Client) *InvoicesPubSub {
	return &InvoicesPubSub{
		rdb:     rdb,
		channel: ChannelInvoicesChanged(),
	}
}

type invoicesChangedMsg struct {
	Type   string `json:"type"`
	Year   int    `json:"year"`
	TsUnix int64  `json:"ts_unix"`
}

func (p *InvoicesPubSub) PublishInvoicesChanged(ctx context.Context, year int) error {
	msg := invoicesChangedMsg{
		Type:   "invoices_changed",
		Year:   year,
		TsUnix: time.Now().Unix(),
	}

	b, _ := json.Marshal(msg)

	return p.rdb.Publish(ctx, p.channel, b).Err()
}

func (p *InvoicesPubSub) Subscribe(ctx context.Context, handler func(ctx context.Context, year int)) error {
	sub := p.rdb.Subscribe(ctx, p.channel)
	defer sub.Close()

	ch := sub.Channel(redis.WithChannelSize(256))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case m, ok := <-ch:
			if !ok {
				return nil
			}
			var ev invoicesChangedMsg
			if err := json.Unmarshal([]byte(m.Payload), &ev); err == nil &&
				ev.Year != 0 {
				handler(ctx, ev.Year)
			}
		}
	}
}
