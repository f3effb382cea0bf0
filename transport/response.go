package transport

import (
	"encoding/json"
	"net/http"

	"github.com/muhammadheryan/supply-chain/constant"
	"github.com/muhammadheryan/supply-chain/utils/errors"
)

type baseResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Data    interface{}            `json:"data,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(baseResponse{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

// writeError maps CustomError to its HTTP status and error code; anything
// else is reported as internal.
func writeError(w http.ResponseWriter, err error) {
	custom, ok := err.(errors.CustomError)
	if !ok {
		custom = errors.SetCustomError(constant.ErrInternal)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(custom.ErrorHTTPCode())
	_ = json.NewEncoder(w).Encode(baseResponse{
		Code:    custom.ErrorCode(),
		Message: custom.Error(),
		Details: custom.Details(),
	})
}
