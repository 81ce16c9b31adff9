// internal/clients/books_client.go
package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"storefront/internal/books"
)

// maxErrorBody caps how much of an error response is read.
const maxErrorBody = 1 << 20

// APIError is returned for any non-2xx response from the books API.
type APIError struct {
	StatusCode int
	Message    string
	Details    map[string]any
}

func (e *APIError) Error() string {
	return fmt.Sprintf("books api: status %d: %s", e.StatusCode, e.Message)
}

// UserMessage is the server-provided message, or the status text when the
// server gave none.
func (e *APIError) UserMessage() string {
	return e.Message
}

// BooksClient talks to the books REST resource. It is safe for concurrent use.
type BooksClient struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	tracer     trace.Tracer
	logger     *zap.Logger
}

// BooksOption configures a BooksClient.
type BooksOption func(*BooksClient)

// WithHTTPClient replaces the HTTP client used for requests.
func WithHTTPClient(c *http.Client) BooksOption {
	return func(bc *BooksClient) {
		if c != nil {
			bc.httpClient = c
		}
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) BooksOption {
	return func(bc *BooksClient) {
		if d > 0 {
			bc.httpClient = &http.Client{Timeout: d}
		}
	}
}

// WithRateLimit paces outbound requests to perSecond with the given burst.
// Requests wait for a token; none are dropped. A non-positive rate disables
// the limiter.
func WithRateLimit(perSecond float64, burst int) BooksOption {
	return func(bc *BooksClient) {
		if perSecond <= 0 {
			bc.limiter = nil
			return
		}
		bc.limiter = rate.NewLimiter(rate.Limit(perSecond), max(burst, 1))
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l *zap.Logger) BooksOption {
	return func(bc *BooksClient) {
		if l != nil {
			bc.logger = l
		}
	}
}

// NewBooksClient creates a client for the books resource under baseURL.
func NewBooksClient(baseURL string, opts ...BooksOption) *BooksClient {
	c := &BooksClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		tracer:     otel.Tracer("storefront/clients/books"),
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ books.Service = (*BooksClient)(nil)

func (c *BooksClient) List(ctx context.Context) ([]books.Book, error) {
	var out []books.Book
	if err := c.do(ctx, http.MethodGet, c.collectionURL(), nil, &out); err != nil {
		return nil, errors.Wrap(err, "list books")
	}
	if out == nil {
		out = []books.Book{}
	}
	return out, nil
}

// Get fetches one book. The raw body is returned untouched next to the
// decoded book.
func (c *BooksClient) Get(ctx context.Context, id string) (*books.Book, json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, c.itemURL(id), nil, &raw); err != nil {
		return nil, nil, errors.Wrapf(err, "get book %s", id)
	}
	var book books.Book
	if err := json.Unmarshal(raw, &book); err != nil {
		return nil, nil, errors.Wrapf(err, "get book %s: decode response", id)
	}
	return &book, raw, nil
}

func (c *BooksClient) Create(ctx context.Context, in books.CreateBook) (*books.Book, error) {
	var book books.Book
	if err := c.do(ctx, http.MethodPost, c.collectionURL(), in, &book); err != nil {
		return nil, errors.Wrap(err, "create book")
	}
	return &book, nil
}

// Update sends a partial update. An empty payload fails with
// books.ErrEmptyUpdate and no request is made.
func (c *BooksClient) Update(ctx context.Context, id string, in books.UpdateBook) (*books.Book, error) {
	if in.IsEmpty() {
		return nil, books.ErrEmptyUpdate
	}
	var book books.Book
	if err := c.do(ctx, http.MethodPatch, c.itemURL(id), in, &book); err != nil {
		return nil, errors.Wrapf(err, "update book %s", id)
	}
	return &book, nil
}

func (c *BooksClient) Delete(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, c.itemURL(id), nil, nil); err != nil {
		return errors.Wrapf(err, "delete book %s", id)
	}
	return nil
}

func (c *BooksClient) collectionURL() string {
	return c.baseURL + "/books"
}

func (c *BooksClient) itemURL(id string) string {
	return c.collectionURL() + "/" + url.PathEscape(id)
}

// do performs one round trip. A nil out discards the response body.
func (c *BooksClient) do(ctx context.Context, method, target string, body, out any) (err error) {
	requestID := uuid.NewString()
	ctx, span := c.tracer.Start(ctx, "books."+strings.ToLower(method),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.full", target),
			attribute.String("request.id", requestID),
		),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return errors.Wrap(err, "wait for rate limiter")
		}
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encode request")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	c.logger.Debug("books api request",
		zap.String("method", method),
		zap.String("url", target),
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode response")
	}
	return nil
}

func newAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: reasonPhrase(resp)}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(bytes.TrimSpace(raw)) == 0 {
		return apiErr
	}

	var details map[string]any
	if err := json.Unmarshal(raw, &details); err != nil {
		return apiErr
	}
	apiErr.Details = details
	if msg, ok := details["message"].(string); ok && strings.TrimSpace(msg) != "" {
		apiErr.Message = msg
	}
	return apiErr
}

// reasonPhrase is the status text the server sent, then the standard text for
// the code, then the bare code.
func reasonPhrase(resp *http.Response) string {
	code := strconv.Itoa(resp.StatusCode)
	if phrase := strings.TrimSpace(strings.TrimPrefix(resp.Status, code)); phrase != "" {
		return phrase
	}
	if text := http.StatusText(resp.StatusCode); text != "" {
		return text
	}
	return code
}
