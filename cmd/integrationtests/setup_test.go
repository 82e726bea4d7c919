package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"rental-ledger/internal/events"
	"rental-ledger/internal/payments"
	"rental-ledger/internal/repository"
	rental "rental-ledger/internal/rentalService"
	"rental-ledger/internal/server"
	"rental-ledger/services/rental/handler"

	"github.com/gin-gonic/gin"
)

// FakeClock is an adjustable unix-seconds clock shared with the router so
// tests can move rentals past their expiry.
type FakeClock struct {
	now atomic.Int64
}

func NewFakeClock(start int64) *FakeClock {
	c := &FakeClock{}
	c.now.Store(start)
	return c
}

func (c *FakeClock) Now() int64        { return c.now.Load() }
func (c *FakeClock) Advance(d int64)   { c.now.Add(d) }
func (c *FakeClock) Set(instant int64) { c.now.Store(instant) }

// TestEnv bundles the router with the stores a scenario needs to seed and
// inspect.
type TestEnv struct {
	Router *gin.Engine
	Store  *repository.MemoryStore
	Ledger *payments.MemoryLedger
	Clock  *FakeClock
}

// SetupTestEnv initializes the full stack with in-memory components and a
// controllable clock.
func SetupTestEnv(start int64) *TestEnv {
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	ledger := payments.NewMemoryLedger()
	clock := NewFakeClock(start)
	service := rental.NewRentalService(store, ledger, events.NewLogNotifier())
	router := server.SetupRouter(service, handler.WithClock(clock.Now))

	return &TestEnv{
		Router: router,
		Store:  store,
		Ledger: ledger,
		Clock:  clock,
	}
}

// ExecuteRequest executes an HTTP request as the given caller and returns
// the response recorder.
func (env *TestEnv) ExecuteRequest(t *testing.T, method, url, caller string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		var err error
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if caller != "" {
		req.Header.Set(handler.CallerHeader, caller)
	}

	w := httptest.NewRecorder()
	env.Router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse additionally parses the response envelope's data field.
func (env *TestEnv) ExecuteRequestAndParse(t *testing.T, method, url, caller string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	w := env.ExecuteRequest(t, method, url, caller, body)

	var envelope map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to parse response body %q: %v", w.Body.String(), err)
	}

	data, _ := envelope["data"].(map[string]any)
	return data, w
}
