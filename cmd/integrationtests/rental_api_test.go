package integrationtests

import (
	"net/http"
	"testing"

	"rental-ledger/services/rental/helpers"

	"github.com/stretchr/testify/require"
)

const (
	startTime = int64(1_700_000_000)
	oneDay    = int64(86_400)
)

// listDrill lists the standard scenario item (price 100, deposit 1000) as alice
func listDrill(t *testing.T, env *TestEnv) {
	t.Helper()
	data, w := env.ExecuteRequestAndParse(t, http.MethodPost, "/items", "alice",
		helpers.ListItemRequest{Title: "drill", DailyPrice: 100, Deposit: 1000})
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, float64(0), data["id"])
}

// itemIDs fetches and unpacks an item-ids query response
func itemIDs(t *testing.T, env *TestEnv, url string) []float64 {
	t.Helper()
	data, w := env.ExecuteRequestAndParse(t, http.MethodGet, url, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	raw, ok := data["item_ids"].([]any)
	require.True(t, ok, "expected item_ids in response")
	ids := make([]float64, 0, len(raw))
	for _, v := range raw {
		ids = append(ids, v.(float64))
	}
	return ids
}

// Mutating requests without a caller identity are rejected up front
func TestCallerIdentityRequired(t *testing.T) {
	env := SetupTestEnv(startTime)

	w := env.ExecuteRequest(t, http.MethodPost, "/items", "",
		helpers.ListItemRequest{Title: "drill", DailyPrice: 100, Deposit: 1000})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// nothing was listed
	require.Empty(t, itemIDs(t, env, "/items/available"))
}

// Listing validation over the wire
func TestListItemValidation(t *testing.T) {
	tests := []struct {
		name       string
		request    any
		wantStatus int
	}{
		{
			name:       "valid_listing",
			request:    helpers.ListItemRequest{Title: "drill", DailyPrice: 100, Deposit: 1000},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "zero_price",
			request:    helpers.ListItemRequest{Title: "drill", DailyPrice: 0, Deposit: 1000},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "zero_deposit",
			request:    helpers.ListItemRequest{Title: "drill", DailyPrice: 100, Deposit: 0},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid_json",
			request:    []byte("{title: 'missing quotes'}"),
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := SetupTestEnv(startTime)
			_, w := env.ExecuteRequestAndParse(t, http.MethodPost, "/items", "alice", tt.request)
			require.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus != http.StatusCreated {
				require.Empty(t, itemIDs(t, env, "/items/available"))
			}
		})
	}
}

// Scenario: rent for exactly one day, return, and settle 100/900
func TestRentAndReturnAfterOneDay(t *testing.T) {
	env := SetupTestEnv(startTime)
	env.Ledger.Credit("bob", 1100)
	listDrill(t, env)

	// underpayment fails and leaves the item available
	w := env.ExecuteRequest(t, http.MethodPost, "/items/0/rentals", "bob",
		helpers.RentItemRequest{Payment: 1099})
	require.Equal(t, http.StatusPaymentRequired, w.Code)
	require.Equal(t, []float64{0}, itemIDs(t, env, "/items/available"))

	// renting with the exact minimum succeeds
	w = env.ExecuteRequest(t, http.MethodPost, "/items/0/rentals", "bob",
		helpers.RentItemRequest{Payment: 1100})
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, itemIDs(t, env, "/items/available"))
	require.Equal(t, []float64{0}, itemIDs(t, env, "/users/bob/rented"))
	require.Equal(t, []float64{0}, itemIDs(t, env, "/users/alice/listed"))

	// the owner cannot rent their own listing
	w = env.ExecuteRequest(t, http.MethodPost, "/items/0/rentals", "alice",
		helpers.RentItemRequest{Payment: 1100})
	require.Equal(t, http.StatusConflict, w.Code)

	// return after exactly one day
	env.Clock.Advance(oneDay)
	data, w := env.ExecuteRequestAndParse(t, http.MethodPost, "/items/0/return", "bob", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, float64(1), data["duration_days"])
	require.Equal(t, float64(100), data["fee"])
	require.Equal(t, float64(900), data["refund"])

	require.Equal(t, int64(100), env.Ledger.Balance("alice"))
	require.Equal(t, int64(900), env.Ledger.Balance("bob"))
	require.Equal(t, []float64{0}, itemIDs(t, env, "/items/available"))
	require.Empty(t, itemIDs(t, env, "/users/bob/rented"))
}

// Scenario: rental never returned; deposit claimed after 8 days and the
// item is permanently retired
func TestClaimDepositAfterExpiry(t *testing.T) {
	env := SetupTestEnv(startTime)
	env.Ledger.Credit("bob", 1100)
	env.Ledger.Credit("carol", 1100)
	listDrill(t, env)

	w := env.ExecuteRequest(t, http.MethodPost, "/items/0/rentals", "bob",
		helpers.RentItemRequest{Payment: 1100})
	require.Equal(t, http.StatusOK, w.Code)

	// claiming within the rental period is rejected
	env.Clock.Advance(7 * oneDay)
	w = env.ExecuteRequest(t, http.MethodPost, "/items/0/claim", "alice", nil)
	require.Equal(t, http.StatusConflict, w.Code)

	// one day later the owner collects the full deposit
	env.Clock.Advance(oneDay)
	w = env.ExecuteRequest(t, http.MethodPost, "/items/0/claim", "alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, int64(1000), env.Ledger.Balance("alice"))

	// the record keeps its stale start time and stays unavailable
	item, err := env.Store.Get(0)
	require.NoError(t, err)
	require.Empty(t, item.Renter)
	require.False(t, item.Available)
	require.Equal(t, startTime, item.RentalStart)

	// the item can never be rented or returned again
	w = env.ExecuteRequest(t, http.MethodPost, "/items/0/rentals", "carol",
		helpers.RentItemRequest{Payment: 1100})
	require.Equal(t, http.StatusConflict, w.Code)

	w = env.ExecuteRequest(t, http.MethodPost, "/items/0/return", "bob", nil)
	require.Equal(t, http.StatusConflict, w.Code)

	require.Empty(t, itemIDs(t, env, "/items/available"))
	require.Empty(t, itemIDs(t, env, "/users/bob/rented"))
	require.Equal(t, []float64{0}, itemIDs(t, env, "/users/alice/listed"))
}

// Queries return ascending, duplicate-free ids across a mixed set
func TestQueriesAscendingOrder(t *testing.T) {
	env := SetupTestEnv(startTime)
	env.Ledger.Credit("carol", 5000)

	owners := []string{"alice", "bob", "alice", "bob", "alice"}
	for i, owner := range owners {
		data, w := env.ExecuteRequestAndParse(t, http.MethodPost, "/items", owner,
			helpers.ListItemRequest{Title: "item", DailyPrice: 100, Deposit: 1000})
		require.Equal(t, http.StatusCreated, w.Code)
		require.Equal(t, float64(i), data["id"])
	}

	for _, id := range []string{"1", "3"} {
		w := env.ExecuteRequest(t, http.MethodPost, "/items/"+id+"/rentals", "carol",
			helpers.RentItemRequest{Payment: 1100})
		require.Equal(t, http.StatusOK, w.Code)
	}

	require.Equal(t, []float64{0, 2, 4}, itemIDs(t, env, "/items/available"))
	require.Equal(t, []float64{1, 3}, itemIDs(t, env, "/users/carol/rented"))
	require.Equal(t, []float64{0, 2, 4}, itemIDs(t, env, "/users/alice/listed"))
	require.Equal(t, []float64{1, 3}, itemIDs(t, env, "/users/bob/listed"))
}

// An unfunded renter cannot start a rental
func TestRentWithoutFundsFails(t *testing.T) {
	env := SetupTestEnv(startTime)
	listDrill(t, env)

	w := env.ExecuteRequest(t, http.MethodPost, "/items/0/rentals", "bob",
		helpers.RentItemRequest{Payment: 1100})
	require.Equal(t, http.StatusBadGateway, w.Code)

	// the failed escrow left the item available
	require.Equal(t, []float64{0}, itemIDs(t, env, "/items/available"))
}
