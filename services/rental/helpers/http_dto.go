package helpers

// Request/Response DTOs
// Numeric fields deliberately carry no binding rules: zero and negative
// amounts must reach the service so failures surface with their ledger
// error tags instead of a generic binding error.
type ListItemRequest struct {
	Title      string `json:"title" binding:"required"`
	DailyPrice int64  `json:"daily_price"`
	Deposit    int64  `json:"deposit"`
}

type RentItemRequest struct {
	Payment int64 `json:"payment"`
}

type ItemResponse struct {
	ID           uint64 `json:"id"`
	Title        string `json:"title"`
	DailyPrice   int64  `json:"daily_price"`
	Deposit      int64  `json:"deposit"`
	Owner        string `json:"owner"`
	RentalPeriod int64  `json:"rental_period"`
	Available    bool   `json:"available"`
}

type ReceiptResponse struct {
	ItemID       uint64 `json:"item_id"`
	Renter       string `json:"renter"`
	DurationDays int64  `json:"duration_days"`
	Fee          int64  `json:"fee"`
	Refund       int64  `json:"refund"`
}

type ItemIDsResponse struct {
	ItemIDs []uint64 `json:"item_ids"`
}
