package console

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/tastebud-labs/foodadmin/internal/models"
)

// Render writes the current page of the restaurant table plus the
// pagination footer.
func (s *RestaurantScreen) Render(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tCATEGORY\tADDRESS\tSUB-ADMIN\tRATING\tTAX\tSUBCATEGORIES\tACTIVE")
	for _, r := range s.pager.Page() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.1f\t%.2f\t%d\t%s\n",
			r.Name, r.Category, r.Address, r.SubAdminName, r.Rating, r.TaxRate,
			r.SubcategoryCount(), onOff(r.Active))
	}
	tw.Flush()
	footer(w, s.pager.Bounds, s.pager.Len(), s.pager.Current(), s.pager.TotalPages(), "restaurants")
}

// RenderDetails writes a restaurant's nested subcategories and menu
// items, the details-modal view.
func RenderDetails(w io.Writer, r models.Restaurant) {
	fmt.Fprintf(w, "%s\n", r.Name)
	fmt.Fprintf(w, "Details: %s\n", r.Details)
	fmt.Fprintf(w, "Opening Time: %s\n", r.OpeningTime)
	fmt.Fprintf(w, "Closing Time: %s\n", r.ClosingTime)
	fmt.Fprintf(w, "Location Address: %s\n", r.LocationAddress)
	fmt.Fprintf(w, "Coordinates: (%g, %g)\n", r.Latitude, r.Longitude)
	fmt.Fprintf(w, "Active: %v\n", r.Active)

	if len(r.Subcategories) == 0 {
		fmt.Fprintln(w, "No subcategories available.")
		return
	}
	for _, sub := range r.Subcategories {
		fmt.Fprintf(w, "\n[%s]\n", sub.Name)
		if len(sub.MenuItems) == 0 {
			fmt.Fprintln(w, "  No menu items available.")
			continue
		}
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "  NAME\tPRICE\tDESCRIPTION")
		for _, item := range sub.MenuItems {
			fmt.Fprintf(tw, "  %s\t%.2f\t%s\n", item.Name, item.Price, item.Description)
		}
		tw.Flush()
	}
}

// Render writes the current page of the sub-admin table plus the
// pagination footer.
func (s *SubAdminScreen) Render(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tEMAIL\tMOBILE\tRESTAURANT\tCOD ORDERS\tONLINE ORDERS\tCOD COLLECTION\tONLINE COLLECTION\tACTIVE")
	for _, a := range s.pager.Page() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%d\t%.2f\t%.2f\t%s\n",
			a.FullName, a.Email, a.Mobile, a.RestaurantName,
			a.CodOrders, a.OnlineOrders, a.CodCollection, a.OnlineCollection, onOff(a.Active))
	}
	tw.Flush()
	footer(w, s.pager.Bounds, s.pager.Len(), s.pager.Current(), s.pager.TotalPages(), "sub-admins")
}

func footer(w io.Writer, bounds func() (int, int), total, page, pages int, noun string) {
	start, end := bounds()
	if total == 0 {
		fmt.Fprintf(w, "No %s.\n", noun)
		return
	}
	fmt.Fprintf(w, "Showing %d to %d of %d %s (page %d/%d)\n", start+1, end, total, noun, page, pages)
}

func onOff(active bool) string {
	if active {
		return "on"
	}
	return "off"
}
