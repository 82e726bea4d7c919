package events

import "rental-ledger/utils"

// Listed is emitted when a new item is put up for rent.
type Listed struct {
	ItemID     uint64
	Title      string
	DailyPrice int64
	Deposit    int64
	Owner      string
}

// Rented is emitted when a rental starts.
type Rented struct {
	ItemID    uint64
	Renter    string
	StartTime int64
}

// Returned is emitted when a rental is settled. Fee and Refund always sum
// to the item's deposit.
type Returned struct {
	ItemID       uint64
	Renter       string
	DurationDays int64
	Fee          int64
	Refund       int64
}

// Notifier receives ledger notifications for external observers.
// Deposit claims deliberately emit nothing.
type Notifier interface {
	ItemListed(e Listed)
	ItemRented(e Rented)
	ItemReturned(e Returned)
}

// LogNotifier publishes notifications as structured log events.
type LogNotifier struct{}

// NewLogNotifier creates a new log-backed notifier
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) ItemListed(e Listed) {
	utils.Info("item listed", map[string]any{
		"event":       "listed",
		"item_id":     e.ItemID,
		"title":       e.Title,
		"daily_price": e.DailyPrice,
		"deposit":     e.Deposit,
		"owner":       e.Owner,
	})
}

func (n *LogNotifier) ItemRented(e Rented) {
	utils.Info("item rented", map[string]any{
		"event":      "rented",
		"item_id":    e.ItemID,
		"renter":     e.Renter,
		"start_time": e.StartTime,
	})
}

func (n *LogNotifier) ItemReturned(e Returned) {
	utils.Info("item returned", map[string]any{
		"event":         "returned",
		"item_id":       e.ItemID,
		"renter":        e.Renter,
		"duration_days": e.DurationDays,
		"fee":           e.Fee,
		"refund":        e.Refund,
	})
}
