package levels

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-levels/internal/model"
)

// ErrPageLimitExceeded is returned when the server keeps handing out cursors
// past the configured page limit.
var ErrPageLimitExceeded = errors.New("page limit exceeded")

// NotFoundError reports that the head endpoint has no record for a network.
type NotFoundError struct {
	Network model.Network
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no head for network %s", e.Network)
}
