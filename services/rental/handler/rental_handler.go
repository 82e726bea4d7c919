package handler

import (
	"fmt"
	"net/http"
	"time"

	model "rental-ledger/internal/models"
	rental "rental-ledger/internal/rentalService"
	"rental-ledger/services/rental/helpers"
	"rental-ledger/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=rental_handler.go -destination=mock_service.go -package=handler

// CallerHeader carries the opaque caller identity supplied by the environment.
const CallerHeader = "X-Caller-ID"

type RentalServiceInterface interface {
	ListItem(ctx model.CallerContext, title string, dailyPrice, deposit int64) (model.Item, error)
	RentItem(ctx model.CallerContext, id uint64, payment int64) error
	ReturnItem(ctx model.CallerContext, id uint64) (rental.Receipt, error)
	ClaimDeposit(ctx model.CallerContext, id uint64) error
	AvailableItems() ([]uint64, error)
	RentedItems(caller string) ([]uint64, error)
	ListedItems(caller string) ([]uint64, error)
}

type RentalHandler struct {
	service RentalServiceInterface
	now     func() int64
}

// Option configures a RentalHandler.
type Option func(*RentalHandler)

// WithClock overrides the handler's clock; integration tests use it to move
// rentals past their expiry.
func WithClock(now func() int64) Option {
	return func(h *RentalHandler) {
		h.now = now
	}
}

func NewRentalHandler(service RentalServiceInterface, opts ...Option) *RentalHandler {
	h := &RentalHandler{
		service: service,
		now:     func() int64 { return time.Now().Unix() },
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// callerContext builds the per-request CallerContext from the identity
// header and the handler clock.
func (h *RentalHandler) callerContext(c *gin.Context) model.CallerContext {
	return model.CallerContext{
		Caller: c.GetHeader(CallerHeader),
		Now:    h.now(),
	}
}

// ListItemHandler handles POST /items
func (h *RentalHandler) ListItemHandler(c *gin.Context) {
	var req helpers.ListItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ListItemHandler", err)
		return
	}

	item, err := h.service.ListItem(h.callerContext(c), req.Title, req.DailyPrice, req.Deposit)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("ListItemHandler: failed to list item", map[string]any{
			"handler": "ListItemHandler",
			"title":   req.Title,
			"error":   err.Error(),
		})
		return
	}

	resp := helpers.ItemResponse{
		ID:           item.ID,
		Title:        item.Title,
		DailyPrice:   item.DailyPrice,
		Deposit:      item.Deposit,
		Owner:        item.Owner,
		RentalPeriod: item.RentalPeriod,
		Available:    item.Available,
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "item listed successfully")
	helpers.LogSuccess("ListItemHandler", "item listed successfully", map[string]any{
		"item_id":     item.ID,
		"title":       item.Title,
		"daily_price": item.DailyPrice,
		"deposit":     item.Deposit,
		"owner":       item.Owner,
	})
}

// RentItemHandler handles POST /items/:item_id/rentals
func (h *RentalHandler) RentItemHandler(c *gin.Context) {
	id, ok := helpers.ParseItemID(c, "RentItemHandler")
	if !ok {
		return
	}

	var req helpers.RentItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RentItemHandler", err)
		return
	}

	ctx := h.callerContext(c)
	if err := h.service.RentItem(ctx, id, req.Payment); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("RentItemHandler: failed to rent item", map[string]any{
			"handler": "RentItemHandler",
			"item_id": id,
			"renter":  ctx.Caller,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "item rented successfully")
	helpers.LogSuccess("RentItemHandler", "item rented successfully", map[string]any{
		"item_id": id,
		"renter":  ctx.Caller,
		"payment": req.Payment,
	})
}

// ReturnItemHandler handles POST /items/:item_id/return
func (h *RentalHandler) ReturnItemHandler(c *gin.Context) {
	id, ok := helpers.ParseItemID(c, "ReturnItemHandler")
	if !ok {
		return
	}

	ctx := h.callerContext(c)
	receipt, err := h.service.ReturnItem(ctx, id)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("ReturnItemHandler: failed to return item", map[string]any{
			"handler": "ReturnItemHandler",
			"item_id": id,
			"caller":  ctx.Caller,
			"error":   err.Error(),
		})
		return
	}

	resp := helpers.ReceiptResponse{
		ItemID:       receipt.ItemID,
		Renter:       receipt.Renter,
		DurationDays: receipt.DurationDays,
		Fee:          receipt.Fee,
		Refund:       receipt.Refund,
	}

	utils.JSONResponse(c, http.StatusOK, resp, "item returned successfully")
	helpers.LogSuccess("ReturnItemHandler", "item returned successfully", map[string]any{
		"item_id":       receipt.ItemID,
		"renter":        receipt.Renter,
		"duration_days": receipt.DurationDays,
		"fee":           receipt.Fee,
		"refund":        receipt.Refund,
	})
}

// ClaimDepositHandler handles POST /items/:item_id/claim
func (h *RentalHandler) ClaimDepositHandler(c *gin.Context) {
	id, ok := helpers.ParseItemID(c, "ClaimDepositHandler")
	if !ok {
		return
	}

	ctx := h.callerContext(c)
	if err := h.service.ClaimDeposit(ctx, id); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("ClaimDepositHandler: failed to claim deposit", map[string]any{
			"handler": "ClaimDepositHandler",
			"item_id": id,
			"caller":  ctx.Caller,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "deposit claimed successfully")
	helpers.LogSuccess("ClaimDepositHandler", "deposit claimed successfully", map[string]any{
		"item_id": id,
		"caller":  ctx.Caller,
	})
}

// AvailableItemsHandler handles GET /items/available
func (h *RentalHandler) AvailableItemsHandler(c *gin.Context) {
	ids, err := h.service.AvailableItems()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("AvailableItemsHandler: error retrieving items", map[string]any{"error": err.Error()})
		return
	}

	if ids == nil {
		ids = []uint64{}
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ItemIDsResponse{ItemIDs: ids}, "available items retrieved successfully")
	helpers.LogSuccess("AvailableItemsHandler", "available items retrieved successfully", map[string]any{
		"count": len(ids),
	})
}

// RentedItemsHandler handles GET /users/:user_id/rented
func (h *RentalHandler) RentedItemsHandler(c *gin.Context) {
	userID := c.Param("user_id")
	ids, err := h.service.RentedItems(userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("RentedItemsHandler: error retrieving items", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	if ids == nil {
		ids = []uint64{}
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ItemIDsResponse{ItemIDs: ids}, "rented items retrieved successfully")
	helpers.LogSuccess("RentedItemsHandler", "rented items retrieved successfully", map[string]any{
		"user_id": userID,
		"count":   len(ids),
	})
}

// ListedItemsHandler handles GET /users/:user_id/listed
func (h *RentalHandler) ListedItemsHandler(c *gin.Context) {
	userID := c.Param("user_id")
	ids, err := h.service.ListedItems(userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListedItemsHandler: error retrieving items", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	if ids == nil {
		ids = []uint64{}
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ItemIDsResponse{ItemIDs: ids}, "listed items retrieved successfully")
	helpers.LogSuccess("ListedItemsHandler", "listed items retrieved successfully", map[string]any{
		"user_id": userID,
		"count":   len(ids),
	})
}

var _ RentalServiceInterface = (*rental.RentalService)(nil)
