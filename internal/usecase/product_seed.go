package usecase

import (
	"time"

	"rk-commerce/internal/data/entity"
	"rk-commerce/pkg/utils"
)

type sampleProduct struct {
	name        string
	description string
	price       float64
	category    string
	imageURL    string
	stock       int
}

var sampleProducts = []sampleProduct{
	{"Classic Cotton T-Shirt", "Soft crew-neck tee in breathable combed cotton.", 19.99, "clothing", "/images/products/classic-tee.jpg", 120},
	{"Slim Fit Denim Jeans", "Stretch denim with a tapered leg and five-pocket styling.", 49.99, "clothing", "/images/products/slim-jeans.jpg", 80},
	{"Hooded Fleece Sweatshirt", "Brushed fleece hoodie with kangaroo pocket.", 39.99, "clothing", "/images/products/fleece-hoodie.jpg", 60},
	{"Wireless Earbuds", "Bluetooth 5.3 earbuds with charging case and 24h battery.", 59.99, "electronics", "/images/products/earbuds.jpg", 150},
	{"Smart Fitness Watch", "Heart-rate, sleep and step tracking with a week of battery.", 129.99, "electronics", "/images/products/fitness-watch.jpg", 45},
	{"Portable Power Bank", "10000mAh USB-C power bank with fast charging.", 29.99, "electronics", "/images/products/power-bank.jpg", 200},
	{"Leather Wallet", "Bifold wallet in full-grain leather with RFID lining.", 34.99, "accessories", "/images/products/leather-wallet.jpg", 90},
	{"Canvas Backpack", "Water-resistant 20L backpack with padded laptop sleeve.", 44.99, "accessories", "/images/products/canvas-backpack.jpg", 70},
}

func sampleCatalog(now time.Time) []*entity.Product {
	products := make([]*entity.Product, len(sampleProducts))
	for i, sp := range sampleProducts {
		products[i] = &entity.Product{
			BaseSimple: entity.BaseSimple{
				ID:        utils.GenerateUUIDString(),
				CreatedAt: now,
			},
			Name:        sp.name,
			Description: sp.description,
			Price:       sp.price,
			Category:    sp.category,
			ImageURL:    sp.imageURL,
			Stock:       sp.stock,
			IsActive:    true,
		}
	}
	return products
}
