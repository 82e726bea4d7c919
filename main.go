package main

import (
	"fmt"
	"os"

	"rental-ledger/internal/events"
	"rental-ledger/internal/payments"
	"rental-ledger/internal/repository"
	rental "rental-ledger/internal/rentalService"
	"rental-ledger/internal/server"
)

func main() {

	store := repository.NewMemoryStore()
	ledger := payments.NewMemoryLedger()

	prepopulateAccounts(ledger)

	rentalSvc := rental.NewRentalService(store, ledger, events.NewLogNotifier())

	router := server.SetupRouter(rentalSvc)

	port := getPort()
	fmt.Printf("Starting rental ledger server on %s...\n", port)
	if err := router.Run(port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// prepopulateAccounts funds sample accounts so rentals can escrow payments.
// In production the host environment supplies balances.
func prepopulateAccounts(ledger *payments.MemoryLedger) {
	accounts := map[string]int64{
		"alice": 10_000,
		"bob":   10_000,
		"carol": 10_000,
	}

	for account, balance := range accounts {
		ledger.Credit(account, balance)
	}
}

// getPort returns the server port from env or defaults to ":8080"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}
