package resolve

import (
	"context"
	"strings"
	"sync"

	"github.com/hylla/browse/pkg/notify"
	"github.com/hylla/browse/pkg/shopapi"
	"github.com/hylla/browse/pkg/types"
)

// Phase is the resolver's gate state. A fetch may only fire in Ready;
// the failure phases are terminal for the current slug pair.
type Phase int

const (
	Idle Phase = iota
	ResolvingCollection
	ResolvingCategory
	Ready
	CollectionNotFound
	CategoryNotFound
	LookupFailed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case ResolvingCollection:
		return "resolving-collection"
	case ResolvingCategory:
		return "resolving-category"
	case Ready:
		return "ready"
	case CollectionNotFound:
		return "collection-not-found"
	case CategoryNotFound:
		return "category-not-found"
	case LookupFailed:
		return "lookup-failed"
	}
	return "unknown"
}

// ResolvedContext holds the backend ids derived from the route slugs.
// Empty means unresolved. It is immutable once Ready; a new slug pair
// discards it and resolution starts over.
type ResolvedContext struct {
	CollectionId string
	CategoryId   string
}

// Resolver performs the two-stage slug lookup. Failures are reported
// once and never retried for the same slug pair.
type Resolver struct {
	client   shopapi.Client
	notifier notify.Notifier

	mu             sync.Mutex
	collectionSlug string
	categorySlug   string
	generation     int
	phase          Phase
	resolved       ResolvedContext
	collection     *types.Collection
	category       *types.Category
	onReady        func(ResolvedContext)
}

func NewResolver(client shopapi.Client, notifier notify.Notifier) *Resolver {
	if notifier == nil {
		notifier = notify.LogNotifier{}
	}
	return &Resolver{client: client, notifier: notifier, phase: Idle}
}

// OnReady registers the gate-open callback, invoked once per resolved
// slug pair.
func (r *Resolver) OnReady(fn func(ResolvedContext)) {
	r.mu.Lock()
	r.onReady = fn
	r.mu.Unlock()
}

func (r *Resolver) State() (ResolvedContext, Phase) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resolved, r.phase
}

func (r *Resolver) Collection() *types.Collection {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.collection
}

func (r *Resolver) Category() *types.Category {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.category
}

// Resolve runs the lookup for a slug pair. Calling it again with the
// same pair is a no-op; a different pair resets the gate completely and
// re-resolves from scratch.
func (r *Resolver) Resolve(ctx context.Context, collectionSlug, categorySlug string) {
	r.mu.Lock()
	if collectionSlug == r.collectionSlug && categorySlug == r.categorySlug && r.phase != Idle {
		// same pair: the context is immutable, but Ready is re-announced
		// so a re-closed gate reopens
		resolved, phase, onReady := r.resolved, r.phase, r.onReady
		r.mu.Unlock()
		if phase == Ready && onReady != nil {
			onReady(resolved)
		}
		return
	}
	r.generation++
	generation := r.generation
	r.collectionSlug = collectionSlug
	r.categorySlug = categorySlug
	r.resolved = ResolvedContext{}
	r.collection = nil
	r.category = nil
	r.phase = ResolvingCollection
	r.mu.Unlock()

	collection, err := r.findCollection(ctx, collectionSlug)
	if err != nil {
		r.fail(generation, LookupFailed, "could not load collections: %v", err)
		return
	}
	if collection == nil {
		r.fail(generation, CollectionNotFound, "no collection matches %q", collectionSlug)
		return
	}

	var category *types.Category
	if categorySlug != "" {
		if !r.advance(generation, ResolvingCategory) {
			return
		}
		category, err = r.findCategory(ctx, collection.Id, categorySlug)
		if err != nil {
			r.fail(generation, LookupFailed, "could not load categories: %v", err)
			return
		}
		if category == nil {
			r.fail(generation, CategoryNotFound, "no category matches %q", categorySlug)
			return
		}
	}

	r.mu.Lock()
	if generation != r.generation {
		r.mu.Unlock()
		return
	}
	r.phase = Ready
	r.collection = collection
	r.category = category
	r.resolved = ResolvedContext{CollectionId: collection.Id}
	if category != nil {
		r.resolved.CategoryId = category.Id
	}
	resolved := r.resolved
	onReady := r.onReady
	r.mu.Unlock()

	if onReady != nil {
		onReady(resolved)
	}
}

func (r *Resolver) findCollection(ctx context.Context, slug string) (*types.Collection, error) {
	keyword := strings.ReplaceAll(slug, "-", " ")
	collections, err := r.client.GetCollections(ctx, keyword)
	if err != nil {
		return nil, err
	}
	for i := range collections {
		if types.SlugMatches(slug, collections[i].Name) {
			return &collections[i], nil
		}
	}
	return nil, nil
}

func (r *Resolver) findCategory(ctx context.Context, collectionId, slug string) (*types.Category, error) {
	categories, err := r.client.GetCategories(ctx)
	if err != nil {
		return nil, err
	}
	for i := range categories {
		if categories[i].CollectionId == collectionId && types.SlugMatches(slug, categories[i].Name) {
			return &categories[i], nil
		}
	}
	return nil, nil
}

func (r *Resolver) advance(generation int, phase Phase) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if generation != r.generation {
		return false
	}
	r.phase = phase
	return true
}

func (r *Resolver) fail(generation int, phase Phase, format string, args ...any) {
	r.mu.Lock()
	if generation != r.generation {
		r.mu.Unlock()
		return
	}
	r.phase = phase
	r.mu.Unlock()
	r.notifier.Notify(format, args...)
}
