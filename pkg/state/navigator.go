package state

import (
	"net/url"
	"sync"
)

// Navigator is the single adapter the store writes browser location
// through. List-only changes (page, price, facets, keyword, sort)
// replace the current history entry; a category change is a full path
// navigation because category lives in the path, not the query string.
type Navigator interface {
	ReplaceQuery(query url.Values)
	NavigatePath(path string, query url.Values)
}

// MemoryNavigator records the current location in memory. It backs the
// headless session and the tests, standing in for a real browser.
type MemoryNavigator struct {
	mu    sync.Mutex
	path  string
	query url.Values
}

func NewMemoryNavigator(path string, query url.Values) *MemoryNavigator {
	if query == nil {
		query = url.Values{}
	}
	return &MemoryNavigator{path: path, query: query}
}

func (n *MemoryNavigator) ReplaceQuery(query url.Values) {
	n.mu.Lock()
	n.query = query
	n.mu.Unlock()
}

func (n *MemoryNavigator) NavigatePath(path string, query url.Values) {
	n.mu.Lock()
	n.path = path
	n.query = query
	n.mu.Unlock()
}

func (n *MemoryNavigator) Location() (string, url.Values) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.path, n.query
}

func (n *MemoryNavigator) Url() string {
	path, query := n.Location()
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}
