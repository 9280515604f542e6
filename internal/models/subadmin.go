package models

// SubAdmin is a restaurant-scoped operator account managed by the
// platform admin. PlainPassword is a display-only snapshot as returned
// by the API.
type SubAdmin struct {
	ID               string  `json:"id"`
	FullName         string  `json:"full_name"`
	Email            string  `json:"email"`
	Mobile           string  `json:"mobile"`
	RestaurantID     string  `json:"restaurant_id"`
	RestaurantName   string  `json:"restaurant_name"`
	PlainPassword    string  `json:"plain_password"`
	Active           bool    `json:"active"`
	CodOrders        int     `json:"cod_orders"`
	OnlineOrders     int     `json:"online_orders"`
	CodCollection    float64 `json:"cod_collection"`
	OnlineCollection float64 `json:"online_collection"`
}
