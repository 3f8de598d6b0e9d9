package catalog

// Product is a ready-made item sold through the shop.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    int     `json:"price"`
	Rating   float64 `json:"rating"`
	Image    string  `json:"image,omitempty"`
	Category string  `json:"category"`
	Group    string  `json:"group"`
}

// Service is a craft discipline the family offers work in.
type Service struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Price       string     `json:"price"`
	Offerings   []Offering `json:"offerings"`
}

// Offering is a bookable service variant. Duration and Price are free-text
// marketing labels ("2-4 weeks", "Starting at $199"), not structured values.
type Offering struct {
	ID          string `json:"id"`
	ServiceID   string `json:"service_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Price       string `json:"price"`
}
