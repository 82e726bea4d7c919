package rental

import (
	"fmt"
	"sync"

	"rental-ledger/internal/events"
	"rental-ledger/internal/models"
	"rental-ledger/internal/payments"
	"rental-ledger/internal/repository"
	"rental-ledger/internal/rentalerrors"
)

// Receipt summarizes a settled rental for the return notification.
type Receipt struct {
	ItemID       uint64 `json:"item_id"`
	Renter       string `json:"renter"`
	DurationDays int64  `json:"duration_days"`
	Fee          int64  `json:"fee"`
	Refund       int64  `json:"refund"`
}

// RentalService defines the business logic for the leasing ledger. Every
// mutating operation runs under a non-reentrant guard and stages its item
// mutation locally, performing value transfers before committing, so a
// failed transfer leaves no partial state behind.
type RentalService struct {
	store    repository.ItemStore
	ledger   payments.Ledger
	notifier events.Notifier

	mu   sync.Mutex
	busy bool
}

// NewRentalService creates a new RentalService instance
func NewRentalService(store repository.ItemStore, ledger payments.Ledger, notifier events.Notifier) *RentalService {
	return &RentalService{
		store:    store,
		ledger:   ledger,
		notifier: notifier,
	}
}

// acquire takes the reentrancy guard. A nested mutating call issued while
// another is in flight (for example from a transfer hook) is rejected
// instead of blocking.
func (s *RentalService) acquire() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return fmt.Errorf("service: %w", rentalerrors.ErrReentrantCall)
	}
	s.busy = true
	return nil
}

func (s *RentalService) release() {
	s.mu.Lock()
	s.busy = false
	s.mu.Unlock()
}

// ListItem validates and records a new listing owned by the caller.
func (s *RentalService) ListItem(ctx models.CallerContext, title string, dailyPrice, deposit int64) (models.Item, error) {
	if err := s.acquire(); err != nil {
		return models.Item{}, err
	}
	defer s.release()

	if ctx.Caller == "" {
		return models.Item{}, fmt.Errorf("service: list item: %w", rentalerrors.ErrMissingCaller)
	}
	if dailyPrice <= 0 {
		return models.Item{}, fmt.Errorf("service: %w: got %d", rentalerrors.ErrInvalidPrice, dailyPrice)
	}
	if deposit <= 0 {
		return models.Item{}, fmt.Errorf("service: %w: got %d", rentalerrors.ErrInvalidDeposit, deposit)
	}

	item := s.store.Allocate(models.Item{
		Title:        title,
		DailyPrice:   dailyPrice,
		Deposit:      deposit,
		Owner:        ctx.Caller,
		RentalPeriod: models.DefaultRentalPeriod,
		Available:    true,
	})

	s.notifier.ItemListed(events.Listed{
		ItemID:     item.ID,
		Title:      item.Title,
		DailyPrice: item.DailyPrice,
		Deposit:    item.Deposit,
		Owner:      item.Owner,
	})
	return item, nil
}

// RentItem starts a rental: the caller's payment is escrowed in full and the
// item is marked unavailable. Preconditions are checked in a fixed order so
// each failure carries a single unambiguous reason.
func (s *RentalService) RentItem(ctx models.CallerContext, id uint64, payment int64) error {
	if err := s.acquire(); err != nil {
		return err
	}
	defer s.release()

	item, err := s.store.Get(id)
	if err != nil {
		return fmt.Errorf("service: rent item %d: %w", id, err)
	}
	if !item.Available {
		return fmt.Errorf("service: rent item %d: %w", id, rentalerrors.ErrNotAvailable)
	}
	if ctx.Caller == item.Owner {
		return fmt.Errorf("service: rent item %d: %w", id, rentalerrors.ErrOwnerCannotRent)
	}
	if minimum := item.Deposit + item.DailyPrice; payment < minimum {
		return fmt.Errorf("service: rent item %d: %w: need at least %d, got %d",
			id, rentalerrors.ErrInsufficientPayment, minimum, payment)
	}

	// The full payment is locked, not just deposit plus one day.
	if err := s.ledger.Escrow(ctx.Caller, payment); err != nil {
		return fmt.Errorf("service: rent item %d: %w: %w", id, rentalerrors.ErrTransferFailed, err)
	}

	item.Renter = ctx.Caller
	item.RentalStart = ctx.Now
	item.Available = false
	if err := s.store.Put(id, item); err != nil {
		return fmt.Errorf("service: rent item %d: %w", id, err)
	}

	s.notifier.ItemRented(events.Rented{
		ItemID:    id,
		Renter:    item.Renter,
		StartTime: item.RentalStart,
	})
	return nil
}

// ReturnItem settles an active rental: the accrued fee (capped at the
// deposit) goes to the owner and the remainder of the deposit back to the
// renter. The item mutation is committed only after both transfers succeed.
func (s *RentalService) ReturnItem(ctx models.CallerContext, id uint64) (Receipt, error) {
	if err := s.acquire(); err != nil {
		return Receipt{}, err
	}
	defer s.release()

	item, err := s.store.Get(id)
	if err != nil {
		return Receipt{}, fmt.Errorf("service: return item %d: %w", id, err)
	}
	if item.Available {
		return Receipt{}, fmt.Errorf("service: return item %d: %w", id, rentalerrors.ErrNotCurrentlyRented)
	}
	if ctx.Caller != item.Renter {
		return Receipt{}, fmt.Errorf("service: return item %d: %w", id, rentalerrors.ErrNotRenter)
	}

	elapsed := ctx.Now - item.RentalStart
	if elapsed < 0 {
		elapsed = 0
	}
	// Round up to whole billed days; only an instant return bills zero.
	days := (elapsed + models.SecondsPerDay - 1) / models.SecondsPerDay
	fee := days * item.DailyPrice
	if fee > item.Deposit {
		fee = item.Deposit
	}
	refund := item.Deposit - fee

	// fee + refund == deposit; only the deposit leaves escrow, the rest of
	// the original payment stays pooled.
	outgoing := []payments.Payment{{To: item.Owner, Amount: fee}}
	if refund > 0 {
		outgoing = append(outgoing, payments.Payment{To: item.Renter, Amount: refund})
	}
	if err := s.ledger.Payout(outgoing...); err != nil {
		return Receipt{}, fmt.Errorf("service: return item %d: %w: %w", id, rentalerrors.ErrTransferFailed, err)
	}

	renter := item.Renter
	item.Renter = ""
	item.RentalStart = 0
	item.Available = true
	if err := s.store.Put(id, item); err != nil {
		return Receipt{}, fmt.Errorf("service: return item %d: %w", id, err)
	}

	receipt := Receipt{
		ItemID:       id,
		Renter:       renter,
		DurationDays: days,
		Fee:          fee,
		Refund:       refund,
	}
	s.notifier.ItemReturned(events.Returned{
		ItemID:       id,
		Renter:       renter,
		DurationDays: days,
		Fee:          fee,
		Refund:       refund,
	})
	return receipt, nil
}

// ClaimDeposit forfeits the deposit of an overdue rental to the item's
// owner. Any caller may trigger it once the rental period has expired.
// Only the renter field is cleared: the item stays unavailable with its
// stale start time, so it can never be rented or returned again.
// No notification is emitted.
func (s *RentalService) ClaimDeposit(ctx models.CallerContext, id uint64) error {
	if err := s.acquire(); err != nil {
		return err
	}
	defer s.release()

	item, err := s.store.Get(id)
	if err != nil {
		return fmt.Errorf("service: claim deposit for item %d: %w", id, err)
	}
	if item.Available {
		return fmt.Errorf("service: claim deposit for item %d: %w", id, rentalerrors.ErrNotCurrentlyRented)
	}
	if expectedEnd := item.RentalStart + item.RentalPeriod; ctx.Now <= expectedEnd {
		return fmt.Errorf("service: claim deposit for item %d: %w: due at %d",
			id, rentalerrors.ErrRentalPeriodNotExpired, expectedEnd)
	}

	if err := s.ledger.Payout(payments.Payment{To: item.Owner, Amount: item.Deposit}); err != nil {
		return fmt.Errorf("service: claim deposit for item %d: %w: %w", id, rentalerrors.ErrTransferFailed, err)
	}

	item.Renter = ""
	if err := s.store.Put(id, item); err != nil {
		return fmt.Errorf("service: claim deposit for item %d: %w", id, err)
	}
	return nil
}

// AvailableItems returns the ids of all items open for rent, ascending.
func (s *RentalService) AvailableItems() ([]uint64, error) {
	return s.store.AvailableItems(), nil
}

// RentedItems returns the ids of all items currently rented by caller.
func (s *RentalService) RentedItems(caller string) ([]uint64, error) {
	if caller == "" {
		return nil, fmt.Errorf("service: rented items: %w", rentalerrors.ErrMissingCaller)
	}
	return s.store.RentedBy(caller), nil
}

// ListedItems returns the ids of all items listed by caller.
func (s *RentalService) ListedItems(caller string) ([]uint64, error) {
	if caller == "" {
		return nil, fmt.Errorf("service: listed items: %w", rentalerrors.ErrMissingCaller)
	}
	return s.store.ListedBy(caller), nil
}
