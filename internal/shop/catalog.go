package shop

import (
	"sort"
	"strings"
)

// Category groups products.
type Category struct {
	ID          int
	Name        string
	Description string
	ImageURL    string
}

// Product is one item for sale.
type Product struct {
	ID            int
	Name          string
	Description   string
	Price         float64
	OriginalPrice float64
	CategoryID    int
	Stock         int
	Featured      bool
	Rating        float64
	Reviews       int
	ImageURL      string
	Tags          []string
}

// Discount returns the whole-percent reduction from OriginalPrice, or 0.
func (p Product) Discount() int {
	if p.OriginalPrice <= p.Price || p.Price <= 0 {
		return 0
	}
	return int((p.OriginalPrice - p.Price) / p.OriginalPrice * 100)
}

// Summary returns the description cut to at most n runes.
func (p Product) Summary(n int) string {
	r := []rune(p.Description)
	if len(r) <= n {
		return p.Description
	}
	return strings.TrimSpace(string(r[:n])) + "..."
}

// Catalog is a read-only, in-memory product catalogue.
type Catalog struct {
	categories []Category
	products   []Product
	byID       map[int]int
	catByID    map[int]int
}

// NewCatalog indexes categories and products. Both keep their given order.
func NewCatalog(categories []Category, products []Product) *Catalog {
	c := &Catalog{
		categories: categories,
		products:   products,
		byID:       make(map[int]int, len(products)),
		catByID:    make(map[int]int, len(categories)),
	}
	for i, p := range products {
		c.byID[p.ID] = i
	}
	for i, cat := range categories {
		c.catByID[cat.ID] = i
	}
	return c
}

// Categories returns all categories.
func (c *Catalog) Categories() []Category {
	return c.categories
}

// Category returns the category with id.
func (c *Catalog) Category(id int) (Category, bool) {
	i, ok := c.catByID[id]
	if !ok {
		return Category{}, false
	}
	return c.categories[i], true
}

// Product returns the product with id.
func (c *Catalog) Product(id int) (Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

// Products returns all products.
func (c *Catalog) Products() []Product {
	return c.products
}

// InCategory returns the products of a category.
func (c *Catalog) InCategory(id int) []Product {
	var out []Product
	for _, p := range c.products {
		if p.CategoryID == id {
			out = append(out, p)
		}
	}
	return out
}

// Featured returns up to limit featured products, best rated first.
func (c *Catalog) Featured(limit int) []Product {
	var out []Product
	for _, p := range c.products {
		if p.Featured {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// DemoCatalog returns the sample catalogue served by the demo shop.
func DemoCatalog() *Catalog {
	return NewCatalog(
		[]Category{
			{ID: 1, Name: "Electronics", Description: "Smartphones, laptops and accessories", ImageURL: "https://images.unsplash.com/photo-1498049794561-7780e7231661?w=300"},
			{ID: 2, Name: "Clothing", Description: "Fashion for men, women and children", ImageURL: "https://images.unsplash.com/photo-1441986300917-64674bd600d8?w=300"},
			{ID: 3, Name: "Home & Garden", Description: "Furniture, decoration and gardening", ImageURL: "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=300"},
			{ID: 4, Name: "Sport & Leisure", Description: "Sports equipment and hobbies", ImageURL: "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=300"},
		},
		[]Product{
			{ID: 1, Name: "iPhone 15 Pro", Description: "The latest iPhone with the A17 Pro chip", Price: 1199.99, OriginalPrice: 1299.99, CategoryID: 1, Stock: 50, Featured: true, Rating: 4.8, Reviews: 245, ImageURL: "https://images.unsplash.com/photo-1592750475338-74b7b21085ab?w=300", Tags: []string{"smartphone", "apple", "new"}},
			{ID: 2, Name: "MacBook Air M3", Description: "Ultra-thin laptop with the M3 chip", Price: 1499.99, OriginalPrice: 1599.99, CategoryID: 1, Stock: 30, Featured: true, Rating: 4.9, Reviews: 189, ImageURL: "https://images.unsplash.com/photo-1541807084-5c52b6b3adef?w=300", Tags: []string{"laptop", "apple", "ultrabook"}},
			{ID: 3, Name: "AirPods Pro", Description: "Wireless earbuds with noise cancellation", Price: 249.99, OriginalPrice: 279.99, CategoryID: 1, Stock: 100, Rating: 4.7, Reviews: 567, ImageURL: "https://images.unsplash.com/photo-1572569511254-d8f925fe2cbb?w=300", Tags: []string{"audio", "wireless", "apple"}},
			{ID: 4, Name: "Classic Denim Jacket", Description: "Unisex jean jacket in premium cotton", Price: 79.99, OriginalPrice: 99.99, CategoryID: 2, Stock: 75, Rating: 4.5, Reviews: 123, ImageURL: "https://images.unsplash.com/photo-1551698618-1dfe5d97d256?w=300", Tags: []string{"denim", "unisex", "casual"}},
			{ID: 5, Name: "Running Sneakers", Description: "Professional running shoes", Price: 129.99, OriginalPrice: 149.99, CategoryID: 2, Stock: 60, Featured: true, Rating: 4.6, Reviews: 298, ImageURL: "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=300", Tags: []string{"shoes", "sport", "running"}},
			{ID: 6, Name: "Monstera Plant", Description: "Tropical house plant", Price: 34.99, OriginalPrice: 39.99, CategoryID: 3, Stock: 25, Rating: 4.4, Reviews: 89, ImageURL: "https://images.unsplash.com/photo-1545558014-8692077e9b5c?w=300", Tags: []string{"plants", "decoration", "green"}},
			{ID: 7, Name: "Designer Lamp", Description: "Modern LED table lamp", Price: 89.99, OriginalPrice: 109.99, CategoryID: 3, Stock: 40, Rating: 4.3, Reviews: 156, ImageURL: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=300", Tags: []string{"lighting", "design", "led"}},
			{ID: 8, Name: "Yoga Mat", Description: "Non-slip mat for yoga and fitness", Price: 29.99, OriginalPrice: 34.99, CategoryID: 4, Stock: 80, Rating: 4.5, Reviews: 234, ImageURL: "https://images.unsplash.com/photo-1601925260368-ae2f83cf8b7f?w=300", Tags: []string{"yoga", "fitness", "sport"}},
		},
	)
}
