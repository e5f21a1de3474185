package usecase

import (
	"errors"
	"fmt"

	"PMTerminal/internal/domain/models"
	xhttp "PMTerminal/pkg/http"
)

// ResultError converts a failed upstream result into the AppError surfaced
// to clients. Upstream bodies stay on the wrapped error for logs only.
func ResultError(res models.UpstreamResult) error {
	switch res.Kind {
	case models.ResultHTTPError:
		return xhttp.UpstreamHTTPError(res.Status).
			WithError(fmt.Errorf("upstream status %d: %s", res.Status, truncate(res.Body, 256)))
	case models.ResultTimeout:
		return xhttp.UpstreamTimeout(res.Budget)
	case models.ResultNetworkError:
		return xhttp.UpstreamUnavailable().WithError(errors.New(res.Message))
	default:
		return xhttp.InternalErrorf("unexpected upstream result %s", res.Kind)
	}
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		return string(b[:n]) + "..."
	}
	return string(b)
}
