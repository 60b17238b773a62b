package query

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/hylla/browse/pkg/notify"
	"github.com/hylla/browse/pkg/resolve"
	"github.com/hylla/browse/pkg/shopapi"
	"github.com/hylla/browse/pkg/types"
)

var (
	fetchesIssued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "browse_product_fetches_total",
		Help: "The total number of product queries issued",
	})
	staleDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "browse_stale_responses_total",
		Help: "The total number of product query responses dropped by the staleness guard",
	})
	fetchFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "browse_fetch_failures_total",
		Help: "The total number of failed product queries",
	})
)

// Result is one applied page of products. Results are replaced
// wholesale, never patched.
type Result struct {
	Products     []types.Product
	TotalRecords int
	MaxPrice     float64
	Page         int
}

type snapshot struct {
	filters types.Filters
	page    int
}

// Coordinator combines the resolved context, committed filters and page
// into product queries. It holds requests back until the resolver gate
// opens, collapses edits made while gated into one fetch, and drops any
// response that is not the most recently issued (the staleness guard):
// independent facet, price, keyword and page mutations each trigger a
// fetch, and responses can arrive out of issue order.
type Coordinator struct {
	client   shopapi.Client
	notifier notify.Notifier

	mu       sync.Mutex
	gateOpen bool
	resolved resolve.ResolvedContext
	pending  *snapshot
	seq      uint64
	result   *Result
	inFlight sync.WaitGroup
	onResult func(Result)
}

func NewCoordinator(client shopapi.Client, notifier notify.Notifier) *Coordinator {
	if notifier == nil {
		notifier = notify.LogNotifier{}
	}
	return &Coordinator{client: client, notifier: notifier}
}

// OnResult registers the apply callback, run for every non-stale
// successful fetch.
func (c *Coordinator) OnResult(fn func(Result)) {
	c.mu.Lock()
	c.onResult = fn
	c.mu.Unlock()
}

// Result returns the currently visible result, nil before the first
// successful fetch.
func (c *Coordinator) Result() *Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result
}

// OpenGate marks prerequisites resolved and runs the buffered request,
// if any, with the latest buffered values.
func (c *Coordinator) OpenGate(ctx context.Context, resolved resolve.ResolvedContext) {
	c.mu.Lock()
	c.gateOpen = true
	c.resolved = resolved
	buffered := c.pending
	c.pending = nil
	c.mu.Unlock()

	if buffered != nil {
		c.issue(ctx, *buffered)
	}
}

// CloseGate shuts the gate again, for a route change that restarts
// resolution. In-flight responses are superseded by bumping the
// sequence.
func (c *Coordinator) CloseGate() {
	c.mu.Lock()
	c.gateOpen = false
	c.resolved = resolve.ResolvedContext{}
	c.pending = nil
	c.seq++
	c.mu.Unlock()
}

// Request issues a product query for the given dependency set, or
// buffers it while the gate is closed.
func (c *Coordinator) Request(ctx context.Context, filters types.Filters, page int) {
	c.mu.Lock()
	if !c.gateOpen {
		c.pending = &snapshot{filters: filters, page: page}
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()
	c.issue(ctx, snapshot{filters: filters, page: page})
}

// Wait blocks until all issued fetches have returned. Used by the
// headless session and tests; a browser frontend never needs it.
func (c *Coordinator) Wait() {
	c.inFlight.Wait()
}

func (c *Coordinator) issue(ctx context.Context, snap snapshot) {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	resolved := c.resolved
	c.mu.Unlock()

	fetchesIssued.Inc()
	c.inFlight.Add(1)
	go func() {
		defer c.inFlight.Done()
		page, err := c.client.GetProducts(ctx, buildQuery(resolved, snap.filters, snap.page))
		if err != nil {
			fetchFailures.Inc()
			// previous results stay visible; no retry
			c.notifier.Notify("could not load products: %v", err)
			return
		}
		c.apply(seq, snap.page, page)
	}()
}

// apply installs a response only if it belongs to the most recently
// issued fetch. A slow response to stale filters must not overwrite the
// result of a newer, faster query.
func (c *Coordinator) apply(seq uint64, page int, fetched *shopapi.ProductPage) {
	c.mu.Lock()
	if seq != c.seq {
		c.mu.Unlock()
		staleDropped.Inc()
		return
	}
	result := Result{
		Products:     fetched.Products,
		TotalRecords: fetched.TotalRecords,
		MaxPrice:     fetched.MaxPrice,
		Page:         page,
	}
	c.result = &result
	onResult := c.onResult
	c.mu.Unlock()

	if onResult != nil {
		onResult(result)
	}
}

// buildQuery keeps empty and zero filter fields out of the outgoing
// request entirely.
func buildQuery(resolved resolve.ResolvedContext, filters types.Filters, page int) shopapi.ProductQuery {
	if page < 1 {
		page = 1
	}
	return shopapi.ProductQuery{
		Limit:        types.PageSize,
		Offset:       (page - 1) * types.PageSize,
		CollectionId: resolved.CollectionId,
		CategoryId:   resolved.CategoryId,
		PriceFrom:    filters.Price.From,
		PriceTo:      filters.Price.To,
		Seasons:      filters.Seasons.Values(),
		Styles:       filters.Styles.Values(),
		Keyword:      filters.Keyword,
	}
}
