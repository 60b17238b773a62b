package types

// PageSize is fixed for the browsing grid.
const PageSize = 12

// PageState tracks 1-based pagination. CurrentPage may exceed TotalPages
// only while a fetch for new filters is in flight.
type PageState struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalRecords int `json:"totalRecords"`
}

// PagesFor returns ceil(totalRecords / PageSize).
func PagesFor(totalRecords int) int {
	if totalRecords <= 0 {
		return 0
	}
	return (totalRecords + PageSize - 1) / PageSize
}

func (p *PageState) SetTotal(totalRecords int) {
	p.TotalRecords = totalRecords
	p.TotalPages = PagesFor(totalRecords)
}

func (p PageState) Offset() int {
	page := p.CurrentPage
	if page < 1 {
		page = 1
	}
	return (page - 1) * PageSize
}
