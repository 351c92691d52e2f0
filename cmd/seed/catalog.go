package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/gocommerce/catalog/internal/domain"
)

const placeholderImageURL = "https://placehold.co/600x400?text=%s"

type sample struct {
	name        string
	description string
	price       float64
	category    string
}

var samples = []sample{
	{"HP Pavilion 15 Laptop", "High performance laptop with an Intel Core i7, 16GB RAM and a 512GB SSD. Built for work and play.", 899.99, "Electronics"},
	{"Samsung Galaxy S23", "Latest generation smartphone with a 6.1 inch AMOLED display, 50MP camera and long battery life.", 799.99, "Electronics"},
	{"Nike Air Max 270", "Sneakers with Air Max cushioning. A modern, comfortable design for daily wear or running.", 149.99, "Footwear"},
	{"Nespresso Vertuo Coffee Maker", "Capsule coffee machine with Centrifusion technology. Brews coffee and espresso at barista quality.", 179.99, "Home"},
	{"Sony WH-1000XM5", "Wireless headphones with industry leading noise cancellation and 30 hours of battery.", 399.99, "Electronics"},
	{"One Hundred Years of Solitude", "Gabriel Garcia Marquez's masterpiece. Special hardcover edition with illustrated pages.", 24.99, "Books"},
	{"Trek Mountain Bike", "All terrain bicycle with front suspension, 21 speeds and a lightweight aluminium frame.", 549.99, "Sports"},
	{"Oster Pro Blender", "High performance blender with a 1200W motor. Made for smoothies, soups and more.", 89.99, "Home"},
	{"Casio G-Shock Watch", "Water and shock resistant sports watch. Many functions and an urban style.", 129.99, "Accessories"},
	{"North Face Borealis Backpack", "Durable backpack with a padded laptop sleeve, many pockets and an ergonomic design.", 99.99, "Accessories"},
}

// sampleCatalog builds the seed products. Each one is a millisecond older than the previous,
// so the listing order matches the order above.
func sampleCatalog(now time.Time) []*domain.Product {
	products := make([]*domain.Product, 0, len(samples))
	for i, s := range samples {
		created := now.Add(-time.Duration(i) * time.Millisecond)
		products = append(products, domain.NewProduct(domain.ProductData{
			Name:        s.name,
			Description: s.description,
			Price:       s.price,
			Category:    s.category,
			ImageURL:    fmt.Sprintf(placeholderImageURL, strings.ReplaceAll(s.name, " ", "+")),
			CreatedAt:   created,
			UpdatedAt:   created,
		}, now))
	}
	return products
}
