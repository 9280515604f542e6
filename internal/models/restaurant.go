package models

// Category is read-only reference data used to populate selection
// controls and to validate a restaurant's category assignment.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Subcategory struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Image     string     `json:"image"`
	MenuItems []MenuItem `json:"menu_items"`
}

// Restaurant is the flat view shape consumed by tables and exports.
// Every field is always defined; absent API values are substituted by
// the transform package so rendering and sorting never hit a hole.
type Restaurant struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Category        string        `json:"category"`
	CategoryID      string        `json:"category_id"`
	Address         string        `json:"address"`
	Details         string        `json:"details"`
	OpeningTime     string        `json:"opening_time"`
	ClosingTime     string        `json:"closing_time"`
	TaxRate         float64       `json:"tax_rate"`
	Rating          float64       `json:"rating"`
	CreatedAt       string        `json:"created_at"`
	LocationAddress string        `json:"location_address"`
	Latitude        float64       `json:"latitude"`
	Longitude       float64       `json:"longitude"`
	Image           string        `json:"image"`
	SubAdminName    string        `json:"sub_admin_name"`
	Active          bool          `json:"active"`
	Subcategories   []Subcategory `json:"subcategories"`
}

func (r Restaurant) SubcategoryCount() int {
	return len(r.Subcategories)
}
