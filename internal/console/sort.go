package console

import (
	"sort"
	"strings"

	"github.com/tastebud-labs/foodadmin/internal/xerrors"
)

// Column sorting mirrors the listing tables: pick a column, reorder
// the whole snapshot ascending, and re-page from the first page. Ties
// keep their load order.

// Sort reorders the restaurant snapshot by the named column.
func (s *RestaurantScreen) Sort(column string) error {
	items := s.items
	var less func(i, j int) bool
	switch column {
	case "name":
		less = func(i, j int) bool { return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name) }
	case "category":
		less = func(i, j int) bool { return strings.ToLower(items[i].Category) < strings.ToLower(items[j].Category) }
	case "address":
		less = func(i, j int) bool { return strings.ToLower(items[i].Address) < strings.ToLower(items[j].Address) }
	case "rating":
		less = func(i, j int) bool { return items[i].Rating < items[j].Rating }
	case "tax":
		less = func(i, j int) bool { return items[i].TaxRate < items[j].TaxRate }
	case "active":
		less = func(i, j int) bool { return !items[i].Active && items[j].Active }
	default:
		return xerrors.Invalid("sort", "unknown column: "+column)
	}
	sort.SliceStable(items, less)
	s.pager.SetItems(s.items)
	s.pager.GoTo(1)
	return nil
}

// Sort reorders the sub-admin snapshot by the named column.
func (s *SubAdminScreen) Sort(column string) error {
	items := s.items
	var less func(i, j int) bool
	switch column {
	case "name":
		less = func(i, j int) bool { return strings.ToLower(items[i].FullName) < strings.ToLower(items[j].FullName) }
	case "email":
		less = func(i, j int) bool { return strings.ToLower(items[i].Email) < strings.ToLower(items[j].Email) }
	case "restaurant":
		less = func(i, j int) bool { return strings.ToLower(items[i].RestaurantName) < strings.ToLower(items[j].RestaurantName) }
	case "cod-orders":
		less = func(i, j int) bool { return items[i].CodOrders < items[j].CodOrders }
	case "online-orders":
		less = func(i, j int) bool { return items[i].OnlineOrders < items[j].OnlineOrders }
	case "active":
		less = func(i, j int) bool { return !items[i].Active && items[j].Active }
	default:
		return xerrors.Invalid("sort", "unknown column: "+column)
	}
	sort.SliceStable(items, less)
	s.pager.SetItems(s.items)
	s.pager.GoTo(1)
	return nil
}
