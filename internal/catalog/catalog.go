// Package catalog implements the product table derivation pipeline:
// filter by category, accent-insensitive search, column sort, and
// pagination. The whole pipeline is a pure function from (raw list,
// query) to a derived view; any change to the inputs re-derives from
// scratch rather than patching incrementally.
package catalog

import (
	"sort"

	"github.com/google/uuid"

	"github.com/BlackZ36/Meibeichi/internal/models"
	"github.com/BlackZ36/Meibeichi/internal/vntext"
)

// Sortable columns. An empty column selects the default ordering
// (pinned first, then oldest first).
const (
	ColumnCode  = "code"
	ColumnName  = "name"
	ColumnType  = "type"
	ColumnPrice = "price"
	ColumnDate  = "date"
	ColumnOrder = "order"
)

// Directions for an explicit column sort.
const (
	Asc  = "asc"
	Desc = "desc"
)

// PageSizes are the row counts the dashboard offers. DefaultPageSize is
// used when the requested size isn't one of them.
var PageSizes = []int{5, 10, 20, 50}

// DefaultPageSize matches the dashboard's initial rows-per-page choice.
const DefaultPageSize = 5

// Query describes one derivation of the product table.
type Query struct {
	// Type filters by category value slug. Empty or "all" keeps everything.
	Type string
	// Search is matched accent- and case-insensitively against
	// name, code, and type.
	Search string
	// SortBy names a column, or is empty for the default ordering.
	SortBy string
	// Direction is Asc or Desc; anything else is treated as Asc.
	Direction string
	// Page is 1-based and clamped to the available range.
	Page int
	// PageSize must be one of PageSizes; otherwise DefaultPageSize applies.
	PageSize int
}

// View is the derived page plus the metadata the table needs to render
// its pagination controls.
type View struct {
	Items      []models.Product `json:"items"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}

// Apply runs the full pipeline over products. The input slice is never
// mutated. Sorting is stable so ties preserve fetch order, which keeps
// pagination deterministic.
func Apply(products []models.Product, q Query) View {
	derived := Sort(Filter(products, q.Type, q.Search), q.SortBy, q.Direction)
	return Paginate(derived, q.Page, q.PageSize)
}

// Filter applies the category filter and the search term. Both are pure
// predicates over each record, so their order doesn't matter.
func Filter(products []models.Product, typ, search string) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if typ != "" && typ != "all" && p.Type != typ {
			continue
		}
		if search != "" &&
			!vntext.ContainsFold(p.Name, search) &&
			!vntext.ContainsFold(p.Code, search) &&
			!vntext.ContainsFold(p.Type, search) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Sort orders products by the requested column, or by the default
// catalog ordering when column is empty: pinned items (order desc) first,
// then oldest first. An explicit column sort replaces the pinned-first
// rule entirely. Returns a new slice.
func Sort(products []models.Product, column, direction string) []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)

	if column == "" {
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Order != out[j].Order {
				return out[i].Order > out[j].Order
			}
			return out[i].Date.Before(out[j].Date)
		})
		return out
	}

	desc := direction == Desc
	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			i, j = j, i
		}
		return columnLess(&out[i], &out[j], column)
	})
	return out
}

// columnLess compares two products on a single column. String columns
// compare on their folded forms so ordering is accent/case-insensitive.
func columnLess(a, b *models.Product, column string) bool {
	switch column {
	case ColumnCode:
		return vntext.Fold(a.Code) < vntext.Fold(b.Code)
	case ColumnName:
		return vntext.Fold(a.Name) < vntext.Fold(b.Name)
	case ColumnType:
		return vntext.Fold(a.Type) < vntext.Fold(b.Type)
	case ColumnPrice:
		return vntext.Fold(a.Price) < vntext.Fold(b.Price)
	case ColumnDate:
		return a.Date.Before(b.Date)
	case ColumnOrder:
		return a.Order < b.Order
	default:
		return false
	}
}

// Paginate clamps page into [1, ceil(total/size)] — one page minimum,
// even when empty — and returns the slice for that page.
func Paginate(products []models.Product, page, pageSize int) View {
	if !validPageSize(pageSize) {
		pageSize = DefaultPageSize
	}

	total := len(products)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return View{
		Items:      products[start:end],
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// Reselect returns the id of the product the detail panel should show
// after the derived list changed: the previous selection if it survived,
// otherwise the first item of the new list. Returns uuid.Nil for an
// empty list.
func Reselect(products []models.Product, prev uuid.UUID) uuid.UUID {
	if prev != uuid.Nil {
		for _, p := range products {
			if p.ID == prev {
				return prev
			}
		}
	}
	if len(products) > 0 {
		return products[0].ID
	}
	return uuid.Nil
}

func validPageSize(size int) bool {
	for _, s := range PageSizes {
		if s == size {
			return true
		}
	}
	return false
}
