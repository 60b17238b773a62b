package controls

import (
	"github.com/hylla/browse/pkg/state"
)

// PageItem is one entry of the pagination window: a page number or the
// ellipsis marker.
type PageItem struct {
	Page     int  `json:"page,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

// ComputeWindow builds the visible page-number window. Five or more
// pages show a sliding three-page window, an ellipsis and the last
// page; fewer show every page. Numbers never exceed totalPages: when
// the window reaches the end it extends to totalPages and the ellipsis
// is dropped.
func ComputeWindow(currentPage, totalPages int) []PageItem {
	if totalPages < 1 {
		return nil
	}
	if currentPage < 1 {
		currentPage = 1
	}
	if currentPage > totalPages {
		currentPage = totalPages
	}
	if totalPages < 5 {
		window := make([]PageItem, 0, totalPages)
		for p := 1; p <= totalPages; p++ {
			window = append(window, PageItem{Page: p})
		}
		return window
	}
	if currentPage+2 >= totalPages-1 {
		window := make([]PageItem, 0, totalPages-currentPage+1)
		for p := currentPage; p <= totalPages; p++ {
			window = append(window, PageItem{Page: p})
		}
		return window
	}
	return []PageItem{
		{Page: currentPage},
		{Page: currentPage + 1},
		{Page: currentPage + 2},
		{Ellipsis: true},
		{Page: totalPages},
	}
}

// EllipsisTarget is the page the ellipsis advances to: three forward,
// clamped so it can never jump past the end.
func EllipsisTarget(currentPage, totalPages int) int {
	target := currentPage + 3
	if target > totalPages {
		target = totalPages
	}
	return target
}

// Pagination drives page selection against the store.
type Pagination struct {
	store *state.Store
}

func NewPagination(store *state.Store) *Pagination {
	return &Pagination{store: store}
}

func (p *Pagination) Window() []PageItem {
	ps := p.store.Page()
	return ComputeWindow(ps.CurrentPage, ps.TotalPages)
}

func (p *Pagination) Select(page int) {
	p.store.SetPage(page)
}

func (p *Pagination) SelectEllipsis() {
	ps := p.store.Page()
	p.store.SetPage(EllipsisTarget(ps.CurrentPage, ps.TotalPages))
}

func (p *Pagination) CanPrev() bool {
	return p.store.Page().CurrentPage > 1
}

func (p *Pagination) CanNext() bool {
	ps := p.store.Page()
	return ps.CurrentPage < ps.TotalPages
}

func (p *Pagination) Prev() {
	if p.CanPrev() {
		p.store.SetPage(p.store.Page().CurrentPage - 1)
	}
}

func (p *Pagination) Next() {
	if p.CanNext() {
		p.store.SetPage(p.store.Page().CurrentPage + 1)
	}
}
