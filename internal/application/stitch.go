package application

import "github.com/oksasatya/gudimart-store/internal/domain/entity"

// AttachProducts pairs each cart row with its product. Rows whose product
// is gone keep a nil Product.
func AttachProducts(items []entity.CartItem, lookup func(int64) (entity.Product, bool)) []entity.CartLine {
	out := make([]entity.CartLine, 0, len(items))
	for _, it := range items {
		out = append(out, attachProduct(it, lookup))
	}
	return out
}

func attachProduct(it entity.CartItem, lookup func(int64) (entity.Product, bool)) entity.CartLine {
	line := entity.CartLine{CartItem: it}
	if p, ok := lookup(it.ProductID); ok {
		line.Product = &p
	}
	return line
}

// ResolvePlatformNames maps platform ids to names in the order given,
// dropping ids that match no platform.
func ResolvePlatformNames(ids []int64, lookup func(int64) (entity.SocialPlatform, bool)) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if p, ok := lookup(id); ok {
			names = append(names, p.Name)
		}
	}
	return names
}

func postView(p entity.ContentPost, lookup func(int64) (entity.SocialPlatform, bool)) entity.ContentPostView {
	return entity.ContentPostView{ContentPost: p, PlatformNames: ResolvePlatformNames(p.Platforms, lookup)}
}

// AttachPostTitles adds the referenced post's title to calendar entries
// that point at a post which still exists.
func AttachPostTitles(entries []entity.CalendarEntry, lookup func(int64) (entity.ContentPost, bool)) []entity.CalendarEntryView {
	out := make([]entity.CalendarEntryView, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryView(e, lookup))
	}
	return out
}

func entryView(e entity.CalendarEntry, lookup func(int64) (entity.ContentPost, bool)) entity.CalendarEntryView {
	v := entity.CalendarEntryView{CalendarEntry: e}
	if e.PostID != nil {
		if p, ok := lookup(*e.PostID); ok {
			title := p.Title
			v.PostTitle = &title
		}
	}
	return v
}
