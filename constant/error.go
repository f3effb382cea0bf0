package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrStorageUnavailable
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrForbidden
	ErrCredentialExists
	ErrInvalidPassword
	ErrInsufficientStock
	ErrProductNotInStock
	ErrInvalidPriority
	ErrInvalidStatus
	ErrInvalidTransition
	ErrOrderNotModifiable
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:            "success",
	ErrInternal:           "error internal",
	ErrStorageUnavailable: "storage unavailable",
	ErrNotFound:           "data not found",
	ErrInvalidRequest:     "invalid request",
	ErrUnauthorize:        "unauthorize request",
	ErrForbidden:          "forbidden",
	ErrCredentialExists:   "email already exists",
	ErrInvalidPassword:    "password invalid",
	ErrInsufficientStock:  "insufficient stock",
	ErrProductNotInStock:  "product not found in warehouse",
	ErrInvalidPriority:    "invalid priority",
	ErrInvalidStatus:      "invalid status",
	ErrInvalidTransition:  "invalid status transition",
	ErrOrderNotModifiable: "order can no longer be modified",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:            http.StatusOK,
	ErrInternal:           http.StatusInternalServerError,
	ErrStorageUnavailable: http.StatusServiceUnavailable,
	ErrNotFound:           http.StatusNotFound,
	ErrInvalidRequest:     http.StatusBadRequest,
	ErrUnauthorize:        http.StatusUnauthorized,
	ErrForbidden:          http.StatusForbidden,
	ErrCredentialExists:   http.StatusBadRequest,
	ErrInvalidPassword:    http.StatusBadRequest,
	ErrInsufficientStock:  http.StatusBadRequest,
	ErrProductNotInStock:  http.StatusBadRequest,
	ErrInvalidPriority:    http.StatusBadRequest,
	ErrInvalidStatus:      http.StatusBadRequest,
	ErrInvalidTransition:  http.StatusBadRequest,
	ErrOrderNotModifiable: http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:            "0000",
	ErrInternal:           "0001",
	ErrStorageUnavailable: "0002",
	ErrNotFound:           "0003",
	ErrInvalidRequest:     "0004",
	ErrUnauthorize:        "0005",
	ErrForbidden:          "0006",
	ErrCredentialExists:   "0007",
	ErrInvalidPassword:    "0008",
	ErrInsufficientStock:  "0009",
	ErrProductNotInStock:  "0010",
	ErrInvalidPriority:    "0011",
	ErrInvalidStatus:      "0012",
	ErrInvalidTransition:  "0013",
	ErrOrderNotModifiable: "0014",
}
