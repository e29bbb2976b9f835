package inventory

import (
	"errors"

	"github.com/erp/godown/internal/domain/shared"
)

// isNotFound reports whether err is a NOT_FOUND domain error
func isNotFound(err error) bool {
	return errors.Is(err, shared.ErrNotFound)
}
