package memory

import (
	"github.com/pkg/errors"

	"github.com/oksasatya/gudimart-store/internal/domain/entity"
)

// Seed loads the storefront's starter catalog: four categories, seven
// social platforms and six products.
func Seed(s *Store) error {
	for _, c := range sampleCategories() {
		s.Categories.Create(c)
	}
	for _, p := range samplePlatforms() {
		if _, err := s.SocialPlatforms.Create(p); err != nil {
			return errors.Wrapf(err, "seed platform %q", p.Name)
		}
	}
	for _, p := range sampleProducts() {
		s.Products.Create(p)
	}
	return nil
}

func ptr[T any](v T) *T { return &v }

func specs(pairs ...any) entity.Specifications {
	out := entity.Specifications{}
	for i := 0; i+1 < len(pairs); i += 2 {
		key := pairs[i].(string)
		switch v := pairs[i+1].(type) {
		case string:
			out = out.Set(key, entity.StringSpec(v))
		case bool:
			out = out.Set(key, entity.BoolSpec(v))
		case int:
			out = out.Set(key, entity.NumberSpec(float64(v)))
		case float64:
			out = out.Set(key, entity.NumberSpec(v))
		}
	}
	return out
}

func sampleCategories() []entity.CategoryInput {
	return []entity.CategoryInput{
		{Name: "Electronics", Description: ptr("Latest gadgets & devices"), Icon: "laptop", Color: "#2874f0"},
		{Name: "Fashion", Description: ptr("Clothing, shoes & accessories"), Icon: "tshirt", Color: "#ff9f00"},
		{Name: "Home & Kitchen", Description: ptr("Appliances & home essentials"), Icon: "home", Color: "#388e3c"},
		{Name: "Beauty & Health", Description: ptr("Personal care & wellness"), Icon: "heartbeat", Color: "#ff6161"},
	}
}

func samplePlatforms() []entity.SocialPlatformInput {
	platform := func(name, icon, endpoint string) entity.SocialPlatformInput {
		return entity.SocialPlatformInput{Name: name, Icon: ptr(icon), APIEndpoint: ptr(endpoint), Active: ptr(true)}
	}
	return []entity.SocialPlatformInput{
		platform("Facebook", "facebook", "https://graph.facebook.com/v18.0"),
		platform("Twitter", "twitter", "https://api.twitter.com/2"),
		platform("Instagram", "instagram", "https://graph.instagram.com"),
		platform("LinkedIn", "linkedin", "https://api.linkedin.com/v2"),
		platform("TikTok", "tiktok", "https://open-api.tiktok.com"),
		platform("YouTube", "youtube", "https://www.googleapis.com/youtube/v3"),
		platform("Pinterest", "pinterest", "https://api.pinterest.com/v5"),
	}
}

func sampleProducts() []entity.ProductInput {
	return []entity.ProductInput{
		{
			Name:               "Smartphone X Pro",
			Description:        "Latest flagship smartphone with high-end specifications",
			Price:              15999,
			DiscountedPrice:    ptr(12999.0),
			DiscountPercentage: ptr(18),
			CategoryID:         1,
			Brand:              "TechX",
			ImageURL:           "https://images.unsplash.com/photo-1598327105666-5b89351aff97",
			Rating:             ptr(4.5),
			ReviewCount:        ptr(2345),
			InStock:            ptr(true),
			DeliveryTime:       ptr("Free delivery by tomorrow"),
			Specifications:     specs("ram", "8GB", "storage", "128GB", "display", "6.5-inch AMOLED", "camera", "108MP"),
		},
		{
			Name:               "Laptop ProBook",
			Description:        "Powerful laptop for professionals and creatives",
			Price:              64999,
			DiscountedPrice:    ptr(52490.0),
			DiscountPercentage: ptr(19),
			CategoryID:         1,
			Brand:              "TechBook",
			ImageURL:           "https://images.unsplash.com/photo-1603302576837-37561b2e2302",
			Rating:             ptr(4.3),
			ReviewCount:        ptr(1120),
			InStock:            ptr(true),
			DeliveryTime:       ptr("Free delivery in 2 days"),
			Specifications:     specs("processor", "Intel i7", "ram", "16GB", "storage", "512GB SSD", "display", "15.6-inch 4K"),
		},
		{
			Name:               "Smart Watch Ultra",
			Description:        "Premium smartwatch with health monitoring features",
			Price:              35900,
			DiscountedPrice:    ptr(32900.0),
			DiscountPercentage: ptr(8),
			CategoryID:         1,
			Brand:              "WatchTech",
			ImageURL:           "https://images.unsplash.com/photo-1579586337278-3befd40fd17a",
			Rating:             ptr(4.7),
			ReviewCount:        ptr(3789),
			InStock:            ptr(true),
			DeliveryTime:       ptr("Free delivery by tomorrow"),
			Specifications:     specs("display", "1.8-inch AMOLED", "battery", "48 hours", "waterproof", true),
		},
		{
			Name:               "Men's Formal Shirt",
			Description:        "Premium cotton formal shirt for professional occasions",
			Price:              1499,
			DiscountedPrice:    ptr(799.0),
			DiscountPercentage: ptr(47),
			CategoryID:         2,
			Brand:              "FashionX",
			ImageURL:           "https://images.unsplash.com/photo-1525507119028-ed4c629a60a3",
			Rating:             ptr(4.1),
			ReviewCount:        ptr(945),
			InStock:            ptr(true),
			DeliveryTime:       ptr("Free delivery in 2 days"),
			Specifications:     specs("material", "100% Cotton", "fit", "Regular", "color", "Blue", "size", "L"),
		},
		{
			Name:               "Smart TV 55-inch 4K Ultra HD",
			Description:        "4K Ultra HD Smart LED TV with HDR and voice control",
			Price:              56990,
			DiscountedPrice:    ptr(42990.0),
			DiscountPercentage: ptr(25),
			CategoryID:         3,
			Brand:              "ViewTech",
			ImageURL:           "https://images.unsplash.com/photo-1564275124027-9e6e2a3bbe0c",
			Rating:             ptr(4.4),
			ReviewCount:        ptr(2134),
			InStock:            ptr(true),
			DeliveryTime:       ptr("Free delivery in 3-5 days"),
			Specifications:     specs("resolution", "4K Ultra HD", "display", "LED", "smart", true, "hdmi", 3),
		},
		{
			Name:               "Wireless Noise Cancelling Headphones",
			Description:        "Premium wireless headphones with active noise cancellation",
			Price:              24990,
			DiscountedPrice:    ptr(18990.0),
			DiscountPercentage: ptr(24),
			CategoryID:         1,
			Brand:              "SoundX",
			ImageURL:           "https://images.unsplash.com/photo-1610945415295-d9bbf067e59c",
			Rating:             ptr(4.6),
			ReviewCount:        ptr(3421),
			InStock:            ptr(true),
			DeliveryTime:       ptr("Free delivery by tomorrow"),
			Specifications:     specs("type", "Over-ear", "batteryLife", "30 hours", "anc", true, "bluetooth", "5.0"),
		},
	}
}
