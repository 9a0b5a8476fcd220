package service

import (
	"context"
	"strconv"
	"time"

	"github.com/Skotchmaster/storefront/internal/logging"
)

const (
	EventCartItemAdded   = "cart_item_added"
	EventCartItemUpdated = "cart_item_updated"
	EventCartItemRemoved = "cart_item_removed"
)

const publishTimeout = 5 * time.Second

type EventPublisher interface {
	PublishEvent(ctx context.Context, key string, event any) error
}

type CartEvent struct {
	Type      string    `json:"type"`
	ProductID uint      `json:"productID"`
	Quantity  int       `json:"quantity"`
	At        time.Time `json:"at"`
}

// publish is best effort: the mutation is already committed, so a failed
// write is logged and dropped.
func (s *CartService) publish(ctx context.Context, typ string, productID uint, quantity int) {
	if s.Events == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	event := CartEvent{
		Type:      typ,
		ProductID: productID,
		Quantity:  quantity,
		At:        time.Now().UTC(),
	}
	if err := s.Events.PublishEvent(ctx, strconv.FormatUint(uint64(productID), 10), event); err != nil {
		logging.FromContext(ctx).Error("cart_event_publish_error", "type", typ, "product_id", productID, "error", err)
	}
}
