package errors

import "github.com/muhammadheryan/supply-chain/constant"

type CustomError struct {
	errType constant.ErrorType
	details map[string]interface{}
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) ErrorType() constant.ErrorType {
	return c.errType
}

// Details carries machine-readable context, e.g. the available quantity on an
// insufficient-stock error.
func (c CustomError) Details() map[string]interface{} {
	return c.details
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

func SetCustomErrorWithDetails(errorType constant.ErrorType, details map[string]interface{}) CustomError {
	return CustomError{
		errType: errorType,
		details: details,
	}
}
