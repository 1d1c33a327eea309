package httperr

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ValidationError carries every violation found in a request, not just the
// first, so clients can surface them all at once.
type ValidationError struct {
	Violations []string
}

func (e ValidationError) Error() string {
	return strings.Join(e.Violations, "; ")
}

func ErrValidation(violations []string) error {
	return ValidationError{Violations: violations}
}

func AsValidation(err error) (ValidationError, bool) {
	var ve ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

func UnprocessableEntity(c *gin.Context, code string, violations []string) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"error_code": code,
		"violations": violations,
	})
}
