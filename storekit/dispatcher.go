package storekit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"
)

const dispatchTimeout = 10 * time.Second

// Snapshot is the catalog state exposed to the presentation layer: the product
// list for the newest resolved request plus its loading/error flags. On
// failure Products is empty and Err is set; consumers show a message, never a
// stack trace.
type Snapshot struct {
	Products []Product
	Total    int
	Loading  bool
	Err      error
}

// Dispatcher issues product fetches against the storefront API and guarantees
// that only the newest request ever reaches the snapshot. Rapid filter changes
// produce overlapping in-flight requests that may resolve out of order;
// each dispatch gets a monotonic generation token and cancels its predecessor,
// and a response whose generation is no longer current is discarded.
type Dispatcher struct {
	baseURL string
	client  *http.Client

	mu       sync.Mutex
	gen      uint64
	cancel   context.CancelFunc
	snap     Snapshot
	onUpdate func(Snapshot)
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithHTTPClient replaces the default HTTP client (10s timeout).
func WithHTTPClient(client *http.Client) DispatcherOption {
	return func(d *Dispatcher) { d.client = client }
}

// WithOnUpdate registers a callback invoked after every snapshot change,
// outside the dispatcher lock.
func WithOnUpdate(fn func(Snapshot)) DispatcherOption {
	return func(d *Dispatcher) { d.onUpdate = fn }
}

// NewDispatcher creates a dispatcher for the API at baseURL, e.g.
// "https://api.example.com/api/v1".
func NewDispatcher(baseURL string, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: dispatchTimeout},
		snap:    Snapshot{Products: []Product{}},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch issues one asynchronous catalog request for the given category and
// filters. It supersedes any in-flight request: the previous context is
// canceled and its late response, if any, is ignored. The snapshot flips to
// loading immediately.
func (d *Dispatcher) Dispatch(ctx context.Context, categoryID string, filters FilterParams) {
	if categoryID != "" {
		// Direct assignment: the category is part of the request identity,
		// not a filter change, so it must not reset pagination here.
		filters.Category = categoryID
	}

	d.mu.Lock()
	d.gen++
	gen := d.gen
	if d.cancel != nil {
		d.cancel()
	}
	reqCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	d.snap.Loading = true
	d.snap.Err = nil
	snap := d.snap
	d.mu.Unlock()
	d.notify(snap)

	go func() {
		products, total, err := d.fetch(reqCtx, filters)
		cancel()

		d.mu.Lock()
		if gen != d.gen {
			// A newer dispatch owns the snapshot now.
			d.mu.Unlock()
			return
		}
		if err != nil {
			d.snap = Snapshot{Products: []Product{}, Err: err}
		} else {
			d.snap = Snapshot{Products: products, Total: total}
		}
		snap := d.snap
		d.mu.Unlock()
		d.notify(snap)
	}()
}

// Cancel aborts any in-flight request and clears the loading flag. Used when
// the user navigates away from the filtered list.
func (d *Dispatcher) Cancel() {
	d.mu.Lock()
	d.gen++
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.snap.Loading = false
	snap := d.snap
	d.mu.Unlock()
	d.notify(snap)
}

// Snapshot returns the current catalog state. The returned product slice must
// be treated as read-only.
func (d *Dispatcher) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.snap
}

func (d *Dispatcher) notify(snap Snapshot) {
	if d.onUpdate != nil {
		d.onUpdate(snap)
	}
}

type productListEnvelope struct {
	Message string    `json:"message"`
	Error   bool      `json:"error"`
	Data    []Product `json:"data"`
	Meta    *struct {
		Total int `json:"total"`
	} `json:"meta"`
}

func (d *Dispatcher) fetch(ctx context.Context, filters FilterParams) ([]Product, int, error) {
	reqURL := d.baseURL + "/store/products"
	if query := filters.Encode(); query != "" {
		reqURL += "?" + query
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("catalog request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, 0, fmt.Errorf("catalog request failed: %s", resp.Status)
	}

	var envelope productListEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, 0, fmt.Errorf("decode catalog response: %w", err)
	}
	if envelope.Error {
		return nil, 0, fmt.Errorf("catalog request failed: %s", envelope.Message)
	}

	products := envelope.Data
	if products == nil {
		products = []Product{}
	}
	total := len(products)
	if envelope.Meta != nil {
		total = envelope.Meta.Total
	}
	return products, total, nil
}
