package models

// DefaultRentalPeriod is the fixed lease duration granted per rental,
// in seconds (7 days). The deposit becomes claimable once it expires.
const DefaultRentalPeriod int64 = 7 * 24 * 60 * 60

// SecondsPerDay is the billing granularity for rental fees.
const SecondsPerDay int64 = 24 * 60 * 60

// Item represents a leasable listing on the ledger.
// Amounts are integers in the smallest indivisible currency unit.
type Item struct {
	ID           uint64 `json:"id"`
	Title        string `json:"title"`
	DailyPrice   int64  `json:"daily_price"`
	Deposit      int64  `json:"deposit"`
	Owner        string `json:"owner"`
	Renter       string `json:"renter,omitempty"`
	RentalStart  int64  `json:"rental_start,omitempty"` // unix seconds, set iff rented
	RentalPeriod int64  `json:"rental_period"`          // seconds, fixed at creation
	Available    bool   `json:"available"`
}

// Exists reports whether the record holds a real listing. The arena hands
// out zero-valued records for unallocated slots, so a non-empty owner is the
// existence marker.
func (i Item) Exists() bool {
	return i.Owner != ""
}

// CallerContext carries the identity and clock reading the host environment
// supplies with every operation. Passing it explicitly keeps the ledger
// logic testable without a live host.
type CallerContext struct {
	Caller string
	Now    int64 // unix seconds
}
