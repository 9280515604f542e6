package models

// Raw types mirror the API's wire shapes. Almost every field is
// optional on the wire, so they are pointers here; the transform
// package turns them into the total view shapes above.

type RawCategory struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type RawMenuItem struct {
	ID          string   `json:"_id"`
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
}

type RawSubcategory struct {
	ID        string        `json:"_id"`
	Name      *string       `json:"name"`
	Image     *string       `json:"image"`
	MenuItems []RawMenuItem `json:"menuItems"`
}

type RawRestaurant struct {
	ID              string           `json:"_id"`
	Name            *string          `json:"name"`
	Category        *RawCategory     `json:"category_id"`
	Address         *string          `json:"address"`
	Details         *string          `json:"details"`
	OpeningTime     *string          `json:"opening_time"`
	ClosingTime     *string          `json:"closing_time"`
	TaxRate         *float64         `json:"tax_rate"`
	Rating          *float64         `json:"rating"`
	CreatedAt       *string          `json:"createdAt"`
	LocationAddress *string          `json:"locationAddress"`
	Latitude        *float64         `json:"latitude"`
	Longitude       *float64         `json:"longitude"`
	Image           *string          `json:"image"`
	SubAdminName    *string          `json:"subAdminName"`
	Active          *bool            `json:"active"`
	Subcategories   []RawSubcategory `json:"subcategories"`
}

type RawRestaurantRef struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type RawSubAdmin struct {
	ID               string            `json:"_id"`
	FullName         *string           `json:"full_name"`
	Email            *string           `json:"email"`
	Mobile           *string           `json:"mobile"`
	Restaurant       *RawRestaurantRef `json:"restaurant_id"`
	PlainPassword    *string           `json:"plain_password"`
	Active           *bool             `json:"active"`
	CodOrders        *int              `json:"codOrders"`
	OnlineOrders     *int              `json:"onlineOrders"`
	CodCollection    *float64          `json:"codCollection"`
	OnlineCollection *float64          `json:"onlineCollection"`
}
