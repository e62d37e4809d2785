package objects

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

// validatorInstance is a cached validator to avoid recreation on each decode.
var (
	validatorInstance *validator.Validate
	validatorOnce     sync.Once
)

func getValidator() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInstance = validator.New()
	})
	return validatorInstance
}
