package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/franciscosanchezn/pizza-manager/internal/config"
	"github.com/franciscosanchezn/pizza-manager/internal/models"
)

var log = config.NewLogger()

// Collection names one of the two server-managed resource sets
type Collection string

const (
	Toppings Collection = "toppings"
	Pizzas   Collection = "pizzas"
)

// RequestIDHeader carries the correlation id of every outgoing request
const RequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// WithRequestID makes every request issued with ctx reuse id as its correlation id
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom returns the correlation id carried by ctx, or a new one
func RequestIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		return id
	}
	return uuid.New().String()
}

// maxErrorBody bounds how much of a failed response body is kept for the user
const maxErrorBody = 64 << 10

// Gateway issues CRUD requests against the remote pizza backend.
// Every call is single-attempt; errors are *models.TransportError or *models.ServerError.
type Gateway interface {
	// ListToppings retrieves the full topping collection
	ListToppings(ctx context.Context) ([]models.Topping, error)
	// CreateTopping creates a topping and returns it with its server-assigned id
	CreateTopping(ctx context.Context, req models.ToppingRequest) (models.Topping, error)
	// UpdateTopping replaces the topping with the given id
	UpdateTopping(ctx context.Context, id int64, req models.ToppingRequest) (models.Topping, error)
	// DeleteTopping removes a topping
	DeleteTopping(ctx context.Context, id int64) error
	// ListPizzas retrieves every pizza with hydrated toppings
	ListPizzas(ctx context.Context) ([]models.Pizza, error)
	// CreatePizza creates a pizza from a name and topping ids
	CreatePizza(ctx context.Context, req models.PizzaRequest) (models.Pizza, error)
	// UpdatePizza replaces name and toppings of an existing pizza
	UpdatePizza(ctx context.Context, id int64, req models.PizzaRequest) (models.Pizza, error)
	// DeletePizza removes a pizza
	DeletePizza(ctx context.Context, id int64) error
}

var _ Gateway = (*Client)(nil)

// Client is the HTTP implementation of Gateway
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client rooted at baseURL (scheme and host, optional path prefix).
// timeout bounds every request; zero means no client-side timeout.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	baseURL = strings.TrimRight(baseURL, "/")
	if err := config.ValidateBaseURL(baseURL); err != nil {
		return nil, err
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// NewClientWithHTTP creates a Client that sends requests through httpClient
func NewClientWithHTTP(baseURL string, httpClient *http.Client) (*Client, error) {
	c, err := NewClient(baseURL, 0)
	if err != nil {
		return nil, err
	}
	c.httpClient = httpClient
	return c, nil
}

// BaseURL returns the backend location the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

func collectionPath(coll Collection) string {
	return "/api/" + string(coll)
}

func entityPath(coll Collection, id int64) string {
	return fmt.Sprintf("/api/%s/%d", coll, id)
}

// list fetches every entity of a collection. A nil body decodes to an empty slice.
func list[T any](ctx context.Context, c *Client, coll Collection) ([]T, error) {
	var out []T
	if err := c.do(ctx, http.MethodGet, collectionPath(coll), nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func create[T any](ctx context.Context, c *Client, coll Collection, payload any) (T, error) {
	var out T
	if err := c.do(ctx, http.MethodPost, collectionPath(coll), payload, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// update has full replace semantics
func update[T any](ctx context.Context, c *Client, coll Collection, id int64, payload any) (T, error) {
	var out T
	if err := c.do(ctx, http.MethodPut, entityPath(coll, id), payload, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// Remove deletes one entity of a collection
func (c *Client) Remove(ctx context.Context, coll Collection, id int64) error {
	return c.do(ctx, http.MethodDelete, entityPath(coll, id), nil, nil)
}

func (c *Client) ListToppings(ctx context.Context) ([]models.Topping, error) {
	return list[models.Topping](ctx, c, Toppings)
}

func (c *Client) CreateTopping(ctx context.Context, req models.ToppingRequest) (models.Topping, error) {
	return create[models.Topping](ctx, c, Toppings, req)
}

func (c *Client) UpdateTopping(ctx context.Context, id int64, req models.ToppingRequest) (models.Topping, error) {
	return update[models.Topping](ctx, c, Toppings, id, req)
}

func (c *Client) DeleteTopping(ctx context.Context, id int64) error {
	return c.Remove(ctx, Toppings, id)
}

func (c *Client) ListPizzas(ctx context.Context) ([]models.Pizza, error) {
	pizzas, err := list[models.Pizza](ctx, c, Pizzas)
	if err != nil {
		return nil, err
	}
	for i := range pizzas {
		if pizzas[i].Toppings == nil {
			pizzas[i].Toppings = []models.Topping{}
		}
	}
	return pizzas, nil
}

func (c *Client) CreatePizza(ctx context.Context, req models.PizzaRequest) (models.Pizza, error) {
	return create[models.Pizza](ctx, c, Pizzas, req)
}

func (c *Client) UpdatePizza(ctx context.Context, id int64, req models.PizzaRequest) (models.Pizza, error) {
	return update[models.Pizza](ctx, c, Pizzas, id, req)
}

func (c *Client) DeletePizza(ctx context.Context, id int64) error {
	return c.Remove(ctx, Pizzas, id)
}

// do performs one request/response exchange and classifies its failure
func (c *Client) do(ctx context.Context, method, path string, payload any, out any) error {
	op := method + " " + path
	requestID := RequestIDFrom(ctx)
	entry := log.WithFields(logrus.Fields{
		"method":     method,
		"path":       path,
		"request_id": requestID,
	})

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return &models.TransportError{Op: op, Err: fmt.Errorf("encode request body: %w", err)}
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &models.TransportError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		entry.WithError(err).Warn("Request to pizza backend failed")
		return &models.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	entry = entry.WithFields(logrus.Fields{
		"status":   resp.StatusCode,
		"duration": time.Since(start).String(),
	})

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		if readErr != nil {
			entry.WithError(readErr).Debug("Could not read error body")
		}
		entry.Warn("Pizza backend rejected request")
		return &models.ServerError{Op: op, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(text))}
	}

	entry.Debug("Pizza backend request completed")
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return &models.TransportError{Op: op, Err: fmt.Errorf("decode response body: %w", err)}
	}
	return nil
}
