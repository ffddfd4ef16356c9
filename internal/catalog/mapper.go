package catalog

import "github.com/mmcdole/shopr/internal/domain"

// MapProduct converts a wire product to a domain product
func MapProduct(dto ProductDTO) domain.Product {
	return domain.Product{
		Name:         dto.Name,
		Price:        dto.Price,
		Category:     dto.Category,
		Description:  dto.Description,
		Rating:       dto.Rating,
		Availability: dto.Availability,
		ImageURL:     dto.ImageURL,
		ProductURL:   dto.ProductURL,
	}
}

// MapProducts converts a page of wire products, preserving service order.
// A JSON null array maps to an empty, non-nil slice.
func MapProducts(dtos []ProductDTO) []domain.Product {
	products := make([]domain.Product, 0, len(dtos))
	for _, dto := range dtos {
		products = append(products, MapProduct(dto))
	}
	return products
}
