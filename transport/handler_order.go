package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/supply-chain/constant"
	"github.com/muhammadheryan/supply-chain/model"
	utilsContext "github.com/muhammadheryan/supply-chain/utils/context"
	"github.com/muhammadheryan/supply-chain/utils/errors"
	validatorx "github.com/muhammadheryan/supply-chain/utils/validator"
)

// CreateOrder handler
// @Summary Create replenishment order
// @Description Create a pending order after validating every line against warehouse stock
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body model.CreateOrderRequest true "Create Order Request"
// @Success 200 {object} model.CreateOrderResponse
// @Failure 400 {object} errors.CustomError
// @Router /orders [post]
func (s *RestHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !requireRole(w, r, constant.RoleAdmin, constant.RoleStoreManager) {
		return
	}

	var req model.CreateOrderRequest
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

	res, err := s.OrderApp.CreateOrder(ctx, actor, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListOrders handler
// @Summary List orders
// @Description List orders, optionally filtered by status, priority, store or warehouse
// @Tags Orders
// @Produce json
// @Param status query string false "Order status"
// @Param priority query string false "Order priority"
// @Param store_id query int false "Store ID"
// @Param warehouse_id query int false "Warehouse ID"
// @Success 200 {array} model.OrderEntity
// @Failure 400 {object} errors.CustomError
// @Router /orders [get]
func (s *RestHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := &model.OrderFilter{
		Status:   r.URL.Query().Get("status"),
		Priority: r.URL.Query().Get("priority"),
	}
	if v := r.URL.Query().Get("store_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
			return
		}
		filter.StoreID = id
	}
	if v := r.URL.Query().Get("warehouse_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
			return
		}
		filter.WarehouseID = id
	}

	res, err := s.OrderApp.ListOrders(ctx, filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetOrder handler
// @Summary Get order
// @Description Get a single order with its lines
// @Tags Orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} model.OrderEntity
// @Failure 404 {object} errors.CustomError
// @Router /orders/{id} [get]
func (s *RestHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.OrderApp.GetOrder(ctx, orderID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateOrder handler
// @Summary Update order
// @Description Transition order status and/or patch delivery agent and notes
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body model.UpdateOrderRequest true "Update Order Request"
// @Success 200 {object} model.OrderEntity
// @Failure 400 {object} errors.CustomError
// @Router /orders/{id} [put]
func (s *RestHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !requireRole(w, r, constant.RoleAdmin, constant.RoleWarehouseManager) {
		return
	}

	orderID, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.UpdateOrderRequest
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

	res, err := s.OrderApp.TransitionStatus(ctx, actor, orderID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ExpireOrder handler, internal only. Cancels the order when it is still
// pending past its deadline; otherwise a no-op.
func (s *RestHandler) ExpireOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.OrderApp.ExpireOrder(ctx, orderID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

func pathID(r *http.Request, name string) (uint64, error) {
	return strconv.ParseUint(mux.Vars(r)[name], 10, 64)
}
