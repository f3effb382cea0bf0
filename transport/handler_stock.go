package transport

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/muhammadheryan/supply-chain/constant"
	"github.com/muhammadheryan/supply-chain/model"
	utilsContext "github.com/muhammadheryan/supply-chain/utils/context"
	"github.com/muhammadheryan/supply-chain/utils/errors"
	validatorx "github.com/muhammadheryan/supply-chain/utils/validator"
)

// AddStock handler
// @Summary Add stock
// @Description Add quantity of a product to a warehouse; creates the product when absent
// @Tags Stock
// @Accept json
// @Produce json
// @Param request body model.AddStockRequest true "Add Stock Request"
// @Success 200 {object} model.ApplyDeltaResult
// @Failure 400 {object} errors.CustomError
// @Router /stock [post]
func (s *RestHandler) AddStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !requireRole(w, r, constant.RoleAdmin, constant.RoleWarehouseManager) {
		return
	}

	var req model.AddStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	actor, ok := utilsContext.GetActor(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.StockApp.ApplyDelta(ctx, actor, &model.ApplyDeltaRequest{
		LocationID:   req.WarehouseID,
		LocationType: constant.LocationTypeWarehouse,
		Product:      req.ProductName,
		Delta:        req.QtyAdded,
		Unit:         req.Unit,
		Reason:       constant.StockReasonAdd,
		Notes:        req.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetLocationStock handler
// @Summary Get location stock
// @Description Get the full stock map of one warehouse or store
// @Tags Stock
// @Produce json
// @Param locationID path int true "Location ID"
// @Success 200 {object} model.LocationStockResponse
// @Failure 404 {object} errors.CustomError
// @Router /stock/{locationID} [get]
func (s *RestHandler) GetLocationStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	locationID, err := pathID(r, "locationID")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.StockApp.ListStock(ctx, locationID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListStockTransactions handler
// @Summary Query stock ledger
// @Description List ledger entries filtered by location, product and time range, oldest first
// @Tags Stock
// @Produce json
// @Param location_id query int false "Location ID"
// @Param product query string false "Product name"
// @Param from query string false "RFC3339 lower bound"
// @Param to query string false "RFC3339 upper bound"
// @Success 200 {array} model.StockTransaction
// @Failure 400 {object} errors.CustomError
// @Router /stock/transactions [get]
func (s *RestHandler) ListStockTransactions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := &model.LedgerFilter{
		Product: r.URL.Query().Get("product"),
	}
	if v := r.URL.Query().Get("location_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
			return
		}
		filter.LocationID = id
	}
	if v := r.URL.Query().Get("from"); v != "" {
		from, err := time.Parse(time.RFC3339, v)
		if err != nil {
			writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
			return
		}
		filter.From = &from
	}
	if v := r.URL.Query().Get("to"); v != "" {
		to, err := time.Parse(time.RFC3339, v)
		if err != nil {
			writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
			return
		}
		filter.To = &to
	}

	res, err := s.StockApp.QueryLedger(ctx, filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
