package memory

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/oksasatya/gudimart-store/internal/domain/entity"
)

// matchProduct reports whether p satisfies every constraint set in f.
// Price bounds compare the effective price.
func matchProduct(p entity.Product, f entity.ProductFilter) bool {
	if f.CategoryID != nil && p.CategoryID != *f.CategoryID {
		return false
	}
	price := p.EffectivePrice()
	if f.MinPrice != nil && price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && price > *f.MaxPrice {
		return false
	}
	if len(f.Brands) > 0 && !slices.Contains(f.Brands, p.Brand) {
		return false
	}
	if f.MinRating != nil && p.Rating < *f.MinRating {
		return false
	}
	if f.InStock != nil && p.InStock != *f.InStock {
		return false
	}
	if f.SearchTerm != "" {
		term := strings.ToLower(f.SearchTerm)
		if !containsFold(p.Name, term) && !containsFold(p.Description, term) && !containsFold(p.Brand, term) {
			return false
		}
	}
	return true
}

// sortProducts orders products in place. Equal keys keep their relative
// order; an empty sort leaves the slice untouched.
func sortProducts(products []entity.Product, by entity.ProductSort) {
	var compare func(a, b entity.Product) int
	switch by {
	case entity.SortPriceAsc:
		compare = func(a, b entity.Product) int { return cmp.Compare(a.EffectivePrice(), b.EffectivePrice()) }
	case entity.SortPriceDesc:
		compare = func(a, b entity.Product) int { return cmp.Compare(b.EffectivePrice(), a.EffectivePrice()) }
	case entity.SortRating:
		compare = func(a, b entity.Product) int { return cmp.Compare(b.Rating, a.Rating) }
	case entity.SortNewest:
		compare = func(a, b entity.Product) int { return b.CreatedAt.Compare(a.CreatedAt) }
	default:
		return
	}
	slices.SortStableFunc(products, compare)
}

// filterProducts returns the products of rows that satisfy f, sorted as f
// asks. rows is not modified. ProductRepository.List goes through here.
func filterProducts(rows []entity.Product, f entity.ProductFilter) []entity.Product {
	out := make([]entity.Product, 0, len(rows))
	for _, p := range rows {
		if matchProduct(p, f) {
			out = append(out, p)
		}
	}
	sortProducts(out, f.SortBy)
	return out
}

// matchContentPost reports whether p satisfies every constraint set in f.
// A post without a schedule fails any date bound.
func matchContentPost(p entity.ContentPost, f entity.ContentPostFilter) bool {
	if f.EventID != nil && p.EventID != *f.EventID {
		return false
	}
	if f.CreatorID != nil && p.CreatorID != *f.CreatorID {
		return false
	}
	if f.Status != nil && p.Status != *f.Status {
		return false
	}
	if f.StartDate != nil && (p.ScheduledFor == nil || p.ScheduledFor.Before(*f.StartDate)) {
		return false
	}
	if f.EndDate != nil && (p.ScheduledFor == nil || p.ScheduledFor.After(*f.EndDate)) {
		return false
	}
	if f.Platform != nil && !slices.Contains(p.Platforms, *f.Platform) {
		return false
	}
	if f.Tag != nil && !slices.Contains(p.Tags, *f.Tag) {
		return false
	}
	if f.SearchTerm != "" {
		term := strings.ToLower(f.SearchTerm)
		if !containsFold(p.Title, term) && !containsFold(p.Content, term) {
			return false
		}
	}
	return true
}

// sortContentPosts orders posts in place. Unscheduled posts go last under
// both scheduled sorts. An empty sort means DefaultPostSort.
func sortContentPosts(posts []entity.ContentPost, by entity.PostSort) {
	if by == "" {
		by = entity.DefaultPostSort
	}
	var compare func(a, b entity.ContentPost) int
	switch by {
	case entity.SortScheduledAsc:
		compare = func(a, b entity.ContentPost) int { return compareScheduled(a.ScheduledFor, b.ScheduledFor, false) }
	case entity.SortScheduledDesc:
		compare = func(a, b entity.ContentPost) int { return compareScheduled(a.ScheduledFor, b.ScheduledFor, true) }
	case entity.SortCreatedAsc:
		compare = func(a, b entity.ContentPost) int { return a.CreatedAt.Compare(b.CreatedAt) }
	case entity.SortCreatedDesc:
		compare = func(a, b entity.ContentPost) int { return b.CreatedAt.Compare(a.CreatedAt) }
	default:
		return
	}
	slices.SortStableFunc(posts, compare)
}

// filterContentPosts is filterProducts for posts, backing
// ContentPostRepository.List.
func filterContentPosts(rows []entity.ContentPost, f entity.ContentPostFilter) []entity.ContentPost {
	out := make([]entity.ContentPost, 0, len(rows))
	for _, p := range rows {
		if matchContentPost(p, f) {
			out = append(out, p)
		}
	}
	sortContentPosts(out, f.SortBy)
	return out
}

// compareScheduled treats a missing time as later than any time, whichever
// direction is asked for.
func compareScheduled(a, b *time.Time, desc bool) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case desc:
		return b.Compare(*a)
	default:
		return a.Compare(*b)
	}
}

func containsFold(s, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(s), lowerTerm)
}
