package entity

import (
	"time"

	"cloud.google.com/go/civil"
)

type ProductSort string

const (
	SortPriceAsc  ProductSort = "price_asc"
	SortPriceDesc ProductSort = "price_desc"
	SortRating    ProductSort = "rating"
	SortNewest    ProductSort = "newest"
)

func (s ProductSort) Valid() bool {
	switch s {
	case "", SortPriceAsc, SortPriceDesc, SortRating, SortNewest:
		return true
	}
	return false
}

// ProductFilter lists optional product constraints. A nil pointer, empty
// Brands or empty SearchTerm places no constraint on that field; all set
// constraints must hold. An empty SortBy keeps insertion order.
type ProductFilter struct {
	CategoryID *int64
	MinPrice   *float64
	MaxPrice   *float64
	Brands     []string
	MinRating  *float64
	InStock    *bool
	SearchTerm string
	SortBy     ProductSort
}

type PostSort string

const (
	SortScheduledAsc  PostSort = "scheduled_asc"
	SortScheduledDesc PostSort = "scheduled_desc"
	SortCreatedAsc    PostSort = "created_asc"
	SortCreatedDesc   PostSort = "created_desc"
)

// DefaultPostSort applies when a post query names no sort.
const DefaultPostSort = SortScheduledDesc

func (s PostSort) Valid() bool {
	switch s {
	case "", SortScheduledAsc, SortScheduledDesc, SortCreatedAsc, SortCreatedDesc:
		return true
	}
	return false
}

// ContentPostFilter lists optional post constraints. StartDate and EndDate
// bound ScheduledFor inclusively; a post without ScheduledFor fails either.
type ContentPostFilter struct {
	EventID    *int64
	CreatorID  *int64
	Status     *PostStatus
	StartDate  *time.Time
	EndDate    *time.Time
	Platform   *int64
	Tag        *string
	SearchTerm string
	SortBy     PostSort
}

// CalendarMonth narrows calendar listings to one month of one year.
type CalendarMonth struct {
	Year  int
	Month time.Month
}

func (m CalendarMonth) Contains(d civil.Date) bool {
	return d.Year == m.Year && d.Month == m.Month
}
