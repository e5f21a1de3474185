package upstream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"PMTerminal/internal/domain/models"
	"PMTerminal/internal/domain/repository"
	xhttp "PMTerminal/pkg/http"
	"PMTerminal/pkg/logger"
)

const (
	maxBodyBytes   = 16 << 20
	logBodyExcerpt = 512
)

// Invoker calls the upstream API and classifies the outcome. It never
// retries.
type Invoker struct {
	client     *xhttp.Client
	baseURL    string
	maxTimeout time.Duration
	maxBody    int64
	log        *logger.Logger
	metrics    repository.Metrics
}

// NewInvoker creates an invoker for baseURL. Per-call budgets above
// maxTimeout are clamped to it.
func NewInvoker(client *xhttp.Client, baseURL string, maxTimeout time.Duration, l *logger.Logger, m repository.Metrics) *Invoker {
	if maxTimeout <= 0 {
		maxTimeout = 60 * time.Second
	}
	if client == nil {
		client = xhttp.NewClient(xhttp.WithTimeout(maxTimeout))
	}
	if l == nil {
		l = logger.Nop()
	}
	if m == nil {
		m = repository.NopMetrics{}
	}
	return &Invoker{client: client, baseURL: baseURL, maxTimeout: maxTimeout, maxBody: maxBodyBytes, log: l, metrics: m}
}

// Invoke performs req with token as the bearer credential. The time budget
// is a cancellation boundary: when it fires the in-flight call is aborted.
func (i *Invoker) Invoke(ctx context.Context, token string, req models.UpstreamRequest) models.UpstreamResult {
	budget := req.Timeout
	if budget <= 0 || (i.maxTimeout > 0 && budget > i.maxTimeout) {
		budget = i.maxTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, budget)
	defer cancel()

	opts := &xhttp.RequestOptions{
		Method: req.Method,
		URL:    xhttp.JoinURL(i.baseURL, req.Endpoint),
		Headers: map[string]string{
			"Authorization": "Bearer " + token,
			"Content-Type":  "application/json",
			"Accept":        "application/json",
		},
	}
	if len(req.Body) > 0 {
		opts.Body = req.Body
	}

	start := time.Now()
	res := i.do(ctx, opts, budget)
	res.Elapsed = time.Since(start)

	i.metrics.RecordUpstream(req.Endpoint, res.Kind.String(), res.Elapsed.Seconds())
	i.logResult(req, res)
	return res
}

func (i *Invoker) do(ctx context.Context, opts *xhttp.RequestOptions, budget time.Duration) models.UpstreamResult {
	resp, err := i.client.SendRequest(ctx, opts)
	if err != nil {
		return classify(err, budget)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, i.maxBody+1))
	if err != nil {
		return classify(err, budget)
	}
	if int64(len(body)) > i.maxBody {
		// a cut document would only fail to parse downstream
		return models.UpstreamResult{
			Kind:    models.ResultNetworkError,
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("upstream response exceeds %d bytes", i.maxBody),
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return models.UpstreamResult{Kind: models.ResultHTTPError, Status: resp.StatusCode, Body: body}
	}
	return models.UpstreamResult{Kind: models.ResultOK, Status: resp.StatusCode, Body: body}
}

// classify separates an exceeded budget from other transport failures.
func classify(err error, budget time.Duration) models.UpstreamResult {
	if IsTimeout(err) {
		return models.UpstreamResult{Kind: models.ResultTimeout, Budget: budget, Message: err.Error()}
	}
	return models.UpstreamResult{Kind: models.ResultNetworkError, Message: err.Error()}
}

// IsTimeout reports whether err is a deadline expiry.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

func (i *Invoker) logResult(req models.UpstreamRequest, res models.UpstreamResult) {
	fields := []logger.Field{
		logger.String("endpoint", req.Endpoint),
		logger.String("method", req.Method),
		logger.String("outcome", res.Kind.String()),
		logger.Duration("elapsed_ms", res.Elapsed),
	}
	switch res.Kind {
	case models.ResultOK:
		i.log.Debug("upstream call", append(fields, logger.Int("status", res.Status))...)
	case models.ResultHTTPError:
		i.log.Warn("upstream call failed", append(fields,
			logger.Int("status", res.Status),
			logger.String("body", excerpt(res.Body)),
		)...)
	case models.ResultTimeout:
		i.log.Warn("upstream call timed out", append(fields, logger.Duration("budget_ms", res.Budget))...)
	default:
		i.log.Warn("upstream call failed", append(fields, logger.String("error", res.Message))...)
	}
}

func excerpt(b []byte) string {
	if len(b) > logBodyExcerpt {
		return string(b[:logBodyExcerpt]) + "..."
	}
	return string(b)
}
