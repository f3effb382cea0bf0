package validatorx

import (
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex
)

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	v = gpvalidator.New()
}

// ValidateStruct checks a request payload against its validate tags; all
// transport handlers call this before touching the application layer
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}
