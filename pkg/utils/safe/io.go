package safe

import (
	"context"
	"fmt"
	"io"

	"github.com/secmon-lab/aegis/pkg/utils/logging"
)

// Close closes closer and logs the failure instead of returning it. Used in
// defer for files and repositories whose close error cannot change the outcome.
func Close(ctx context.Context, closer io.Closer) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.From(ctx).Error("Failed to close",
			"error", err,
			"type", fmt.Sprintf("%T", closer),
		)
	}
}
