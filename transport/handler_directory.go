package transport

import (
	"encoding/json"
	"net/http"

	"github.com/muhammadheryan/supply-chain/constant"
	"github.com/muhammadheryan/supply-chain/model"
	"github.com/muhammadheryan/supply-chain/utils/errors"
	validatorx "github.com/muhammadheryan/supply-chain/utils/validator"
)

// Directory handlers: CRUD over suppliers, warehouses and stores. Writes are
// admin-only; warehouse and store managers can read.

// CreateSupplier handler
// @Summary Create supplier
// @Tags Directory
// @Accept json
// @Produce json
// @Param request body model.SupplierRequest true "Supplier Request"
// @Success 200 {object} model.SupplierEntity
// @Failure 400 {object} errors.CustomError
// @Router /suppliers [post]
func (s *RestHandler) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	if !requireRole(w, r, constant.RoleAdmin) {
		return
	}

	var req model.SupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.DirectoryApp.CreateSupplier(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListSuppliers handler
// @Summary List suppliers
// @Tags Directory
// @Produce json
// @Success 200 {array} model.SupplierEntity
// @Router /suppliers [get]
func (s *RestHandler) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	res, err := s.DirectoryApp.ListSuppliers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetSupplier handler
// @Summary Get supplier
// @Tags Directory
// @Produce json
// @Param id path int true "Supplier ID"
// @Success 200 {object} model.SupplierEntity
// @Failure 404 {object} errors.CustomError
// @Router /suppliers/{id} [get]
func (s *RestHandler) GetSupplier(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.DirectoryApp.GetSupplier(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateSupplier handler
// @Summary Update supplier
// @Tags Directory
// @Accept json
// @Produce json
// @Param id path int true "Supplier ID"
// @Param request body model.SupplierUpdateRequest true "Supplier Update Request"
// @Success 200 {object} model.SupplierEntity
// @Failure 404 {object} errors.CustomError
// @Router /suppliers/{id} [put]
func (s *RestHandler) UpdateSupplier(w http.ResponseWriter, r *http.Request) {
	if !requireRole(w, r, constant.RoleAdmin) {
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.SupplierUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.DirectoryApp.UpdateSupplier(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// DeleteSupplier handler
// @Summary Delete supplier
// @Tags Directory
// @Produce json
// @Param id path int true "Supplier ID"
// @Success 200 {object} nil
// @Failure 404 {object} errors.CustomError
// @Router /suppliers/{id} [delete]
func (s *RestHandler) DeleteSupplier(w http.ResponseWriter, r *http.Request) {
	if !requireRole(w, r, constant.RoleAdmin) {
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.DirectoryApp.DeleteSupplier(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// CreateWarehouse handler
// @Summary Create warehouse
// @Tags Directory
// @Accept json
// @Produce json
// @Param request body model.WarehouseRequest true "Warehouse Request"
// @Success 200 {object} model.LocationEntity
// @Failure 400 {object} errors.CustomError
// @Router /warehouses [post]
func (s *RestHandler) CreateWarehouse(w http.ResponseWriter, r *http.Request) {
	if !requireRole(w, r, constant.RoleAdmin) {
		return
	}

	var req model.WarehouseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.DirectoryApp.CreateWarehouse(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListWarehouses handler
// @Summary List warehouses
// @Tags Directory
// @Produce json
// @Success 200 {array} model.LocationEntity
// @Router /warehouses [get]
func (s *RestHandler) ListWarehouses(w http.ResponseWriter, r *http.Request) {
	res, err := s.DirectoryApp.ListLocations(r.Context(), constant.LocationTypeWarehouse)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetWarehouse handler
// @Summary Get warehouse
// @Tags Directory
// @Produce json
// @Param id path int true "Warehouse ID"
// @Success 200 {object} model.LocationEntity
// @Failure 404 {object} errors.CustomError
// @Router /warehouses/{id} [get]
func (s *RestHandler) GetWarehouse(w http.ResponseWriter, r *http.Request) {
	s.getLocation(w, r, constant.LocationTypeWarehouse)
}

// UpdateWarehouse handler
// @Summary Update warehouse
// @Description Patch warehouse fields; lowering capacity below current stock is logged, not blocked
// @Tags Directory
// @Accept json
// @Produce json
// @Param id path int true "Warehouse ID"
// @Param request body model.LocationUpdateRequest true "Location Update Request"
// @Success 200 {object} model.LocationEntity
// @Failure 404 {object} errors.CustomError
// @Router /warehouses/{id} [put]
func (s *RestHandler) UpdateWarehouse(w http.ResponseWriter, r *http.Request) {
	s.updateLocation(w, r, constant.LocationTypeWarehouse)
}

// DeleteWarehouse handler
// @Summary Delete warehouse
// @Tags Directory
// @Produce json
// @Param id path int true "Warehouse ID"
// @Success 200 {object} nil
// @Failure 404 {object} errors.CustomError
// @Router /warehouses/{id} [delete]
func (s *RestHandler) DeleteWarehouse(w http.ResponseWriter, r *http.Request) {
	s.deleteLocation(w, r, constant.LocationTypeWarehouse)
}

// CreateStore handler
// @Summary Create store
// @Description Create a store attached to an existing warehouse
// @Tags Directory
// @Accept json
// @Produce json
// @Param request body model.StoreRequest true "Store Request"
// @Success 200 {object} model.LocationEntity
// @Failure 400 {object} errors.CustomError
// @Router /stores [post]
func (s *RestHandler) CreateStore(w http.ResponseWriter, r *http.Request) {
	if !requireRole(w, r, constant.RoleAdmin) {
		return
	}

	var req model.StoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.DirectoryApp.CreateStore(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListStores handler
// @Summary List stores
// @Tags Directory
// @Produce json
// @Success 200 {array} model.LocationEntity
// @Router /stores [get]
func (s *RestHandler) ListStores(w http.ResponseWriter, r *http.Request) {
	res, err := s.DirectoryApp.ListLocations(r.Context(), constant.LocationTypeStore)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetStore handler
// @Summary Get store
// @Tags Directory
// @Produce json
// @Param id path int true "Store ID"
// @Success 200 {object} model.LocationEntity
// @Failure 404 {object} errors.CustomError
// @Router /stores/{id} [get]
func (s *RestHandler) GetStore(w http.ResponseWriter, r *http.Request) {
	s.getLocation(w, r, constant.LocationTypeStore)
}

// UpdateStore handler
// @Summary Update store
// @Tags Directory
// @Accept json
// @Produce json
// @Param id path int true "Store ID"
// @Param request body model.LocationUpdateRequest true "Location Update Request"
// @Success 200 {object} model.LocationEntity
// @Failure 404 {object} errors.CustomError
// @Router /stores/{id} [put]
func (s *RestHandler) UpdateStore(w http.ResponseWriter, r *http.Request) {
	s.updateLocation(w, r, constant.LocationTypeStore)
}

// DeleteStore handler
// @Summary Delete store
// @Tags Directory
// @Produce json
// @Param id path int true "Store ID"
// @Success 200 {object} nil
// @Failure 404 {object} errors.CustomError
// @Router /stores/{id} [delete]
func (s *RestHandler) DeleteStore(w http.ResponseWriter, r *http.Request) {
	s.deleteLocation(w, r, constant.LocationTypeStore)
}

func (s *RestHandler) getLocation(w http.ResponseWriter, r *http.Request, locType constant.LocationType) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.DirectoryApp.GetLocation(r.Context(), id, locType)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) updateLocation(w http.ResponseWriter, r *http.Request, locType constant.LocationType) {
	if !requireRole(w, r, constant.RoleAdmin) {
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.LocationUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.DirectoryApp.UpdateLocation(r.Context(), id, locType, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) deleteLocation(w http.ResponseWriter, r *http.Request, locType constant.LocationType) {
	if !requireRole(w, r, constant.RoleAdmin) {
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.DirectoryApp.DeleteLocation(r.Context(), id, locType); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}
