package catalog

// ProductDTO is one element of the /api/products JSON array.
// Optional fields are pointers so that null and absent stay distinguishable from zero.
type ProductDTO struct {
	Name         string   `json:"name"`
	Price        float64  `json:"price"`
	Category     string   `json:"category"`
	Description  string   `json:"description,omitempty"`
	Rating       *float64 `json:"rating,omitempty"`
	Availability *string  `json:"availability,omitempty"`
	ImageURL     *string  `json:"image_url,omitempty"`
	ProductURL   *string  `json:"product_url,omitempty"`
}

// errorResponse is the body the service sends alongside 4xx/5xx statuses
type errorResponse struct {
	Error string `json:"error"`
}
