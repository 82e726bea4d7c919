package payments

import (
	"errors"
	"fmt"
	"sync"
)

//go:generate mockgen -source=ledger.go -destination=mock_ledger.go -package=payments

// Ledger-level errors
var (
	ErrInsufficientFunds  = errors.New("insufficient account balance")
	ErrInsufficientEscrow = errors.New("insufficient escrowed funds")
	ErrInvalidAmount      = errors.New("transfer amount must not be negative")
)

// Payment is a single outbound movement of escrowed funds to a recipient.
type Payment struct {
	To     string
	Amount int64
}

// Ledger defines the value-transfer primitives the rental service needs.
// Escrow pulls funds from an account into the pool held by the ledger;
// Payout releases funds from that pool. Both are atomic: a failed call
// moves nothing.
type Ledger interface {
	Escrow(from string, amount int64) error
	Payout(payments ...Payment) error
}

// MemoryLedger is a concurrency-safe in-memory implementation of Ledger.
// It keeps per-account balances plus a single escrow pool owned by the
// rental ledger.
type MemoryLedger struct {
	mu       sync.RWMutex
	balances map[string]int64
	escrowed int64
}

// NewMemoryLedger creates a new in-memory ledger instance
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		balances: make(map[string]int64),
	}
}

// Credit adds funds to an account. This is the faucet the host environment
// would normally provide; the server uses it to seed demo accounts and
// tests use it to fund renters.
func (l *MemoryLedger) Credit(account string, amount int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[account] += amount
}

// Escrow atomically moves amount from an account into the escrow pool.
func (l *MemoryLedger) Escrow(from string, amount int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if amount < 0 {
		return fmt.Errorf("escrow %d from %s: %w", amount, from, ErrInvalidAmount)
	}
	if l.balances[from] < amount {
		return fmt.Errorf("escrow %d from %s: %w", amount, from, ErrInsufficientFunds)
	}
	l.balances[from] -= amount
	l.escrowed += amount
	return nil
}

// Payout atomically releases escrowed funds to the recipients. Either every
// payment is applied or none is.
func (l *MemoryLedger) Payout(payments ...Payment) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var total int64
	for _, p := range payments {
		if p.Amount < 0 {
			return fmt.Errorf("payout %d to %s: %w", p.Amount, p.To, ErrInvalidAmount)
		}
		total += p.Amount
	}
	if total > l.escrowed {
		return fmt.Errorf("payout of %d exceeds escrow pool: %w", total, ErrInsufficientEscrow)
	}

	l.escrowed -= total
	for _, p := range payments {
		l.balances[p.To] += p.Amount
	}
	return nil
}

// Balance returns the free (non-escrowed) balance of an account.
func (l *MemoryLedger) Balance(account string) int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.balances[account]
}

// Escrowed returns the total amount currently held in escrow.
func (l *MemoryLedger) Escrowed() int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.escrowed
}
