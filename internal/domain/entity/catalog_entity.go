package entity

import "time"

type Category struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Icon        string  `json:"icon"`
	Color       string  `json:"color"`
}

type CategoryInput struct {
	Name        string
	Description *string
	Icon        string
	Color       string
}

func (in CategoryInput) Build(id int64) Category {
	return Category{
		ID:          id,
		Name:        in.Name,
		Description: cloneString(in.Description),
		Icon:        in.Icon,
		Color:       in.Color,
	}
}

func (c Category) Clone() Category {
	c.Description = cloneString(c.Description)
	return c
}

// Product defaults applied on create when the input leaves them unset.
const (
	DefaultDeliveryTime = "3-5 days"
)

// Product is a catalog item. CategoryID is not enforced as a foreign key.
type Product struct {
	ID                 int64          `json:"id"`
	Name               string         `json:"name"`
	Description        string         `json:"description"`
	Price              float64        `json:"price"`
	DiscountedPrice    *float64       `json:"discountedPrice,omitempty"`
	DiscountPercentage *int           `json:"discountPercentage,omitempty"`
	CategoryID         int64          `json:"categoryId"`
	Brand              string         `json:"brand"`
	ImageURL           string         `json:"imageUrl"`
	Rating             float64        `json:"rating"`
	ReviewCount        int            `json:"reviewCount"`
	InStock            bool           `json:"inStock"`
	DeliveryTime       string         `json:"deliveryTime"`
	Specifications     Specifications `json:"specifications,omitempty"`
	CreatedAt          time.Time      `json:"createdAt"`
}

// EffectivePrice is the discounted price when one is set, otherwise the list
// price. Every price filter and price sort goes through it.
func (p Product) EffectivePrice() float64 {
	if p.DiscountedPrice != nil {
		return *p.DiscountedPrice
	}
	return p.Price
}

func (p Product) Clone() Product {
	p.DiscountedPrice = cloneFloat(p.DiscountedPrice)
	p.DiscountPercentage = cloneInt(p.DiscountPercentage)
	p.Specifications = p.Specifications.Clone()
	return p
}

// ProductInput is the insert shape for products. Nil Rating, ReviewCount,
// InStock and DeliveryTime take their defaults.
type ProductInput struct {
	Name               string
	Description        string
	Price              float64
	DiscountedPrice    *float64
	DiscountPercentage *int
	CategoryID         int64
	Brand              string
	ImageURL           string
	Rating             *float64
	ReviewCount        *int
	InStock            *bool
	DeliveryTime       *string
	Specifications     Specifications
}

// Build materializes the input into a product with defaults applied.
func (in ProductInput) Build(id int64, now time.Time) Product {
	p := Product{
		ID:                 id,
		Name:               in.Name,
		Description:        in.Description,
		Price:              in.Price,
		DiscountedPrice:    cloneFloat(in.DiscountedPrice),
		DiscountPercentage: cloneInt(in.DiscountPercentage),
		CategoryID:         in.CategoryID,
		Brand:              in.Brand,
		ImageURL:           in.ImageURL,
		InStock:            true,
		DeliveryTime:       DefaultDeliveryTime,
		Specifications:     in.Specifications.Clone(),
		CreatedAt:          now,
	}
	if in.Rating != nil {
		p.Rating = *in.Rating
	}
	if in.ReviewCount != nil {
		p.ReviewCount = *in.ReviewCount
	}
	if in.InStock != nil {
		p.InStock = *in.InStock
	}
	if in.DeliveryTime != nil {
		p.DeliveryTime = *in.DeliveryTime
	}
	return p
}

type ProductPatch struct {
	Name               *string
	Description        *string
	Price              *float64
	DiscountedPrice    *float64
	DiscountPercentage *int
	CategoryID         *int64
	Brand              *string
	ImageURL           *string
	Rating             *float64
	ReviewCount        *int
	InStock            *bool
	DeliveryTime       *string
	Specifications     Specifications
}

func (pp ProductPatch) Apply(p *Product) {
	if pp.Name != nil {
		p.Name = *pp.Name
	}
	if pp.Description != nil {
		p.Description = *pp.Description
	}
	if pp.Price != nil {
		p.Price = *pp.Price
	}
	if pp.DiscountedPrice != nil {
		p.DiscountedPrice = cloneFloat(pp.DiscountedPrice)
	}
	if pp.DiscountPercentage != nil {
		p.DiscountPercentage = cloneInt(pp.DiscountPercentage)
	}
	if pp.CategoryID != nil {
		p.CategoryID = *pp.CategoryID
	}
	if pp.Brand != nil {
		p.Brand = *pp.Brand
	}
	if pp.ImageURL != nil {
		p.ImageURL = *pp.ImageURL
	}
	if pp.Rating != nil {
		p.Rating = *pp.Rating
	}
	if pp.ReviewCount != nil {
		p.ReviewCount = *pp.ReviewCount
	}
	if pp.InStock != nil {
		p.InStock = *pp.InStock
	}
	if pp.DeliveryTime != nil {
		p.DeliveryTime = *pp.DeliveryTime
	}
	if pp.Specifications != nil {
		p.Specifications = pp.Specifications.Clone()
	}
}
