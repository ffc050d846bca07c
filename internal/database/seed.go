package database

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/example/loomwear/internal/models"
	"github.com/example/loomwear/internal/utils"
)

// Seed loads the demo product and the admin account. It is idempotent:
// existing rows are left alone.
func Seed(db *gorm.DB, adminEmail, adminPassword string) error {
	if err := seedAdmin(db, adminEmail, adminPassword); err != nil {
		return err
	}
	return seedProduct(db)
}

func seedAdmin(db *gorm.DB, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	return db.Create(&models.User{
		Email:        email,
		DisplayName:  "Administrator",
		PasswordHash: hash,
	}).Error
}

func seedProduct(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	product := models.Product{
		Name:  "Premium Cotton T-Shirt",
		Price: decimal.RequireFromString("49.99"),
		Badge: "Popular",
		Description: "Experience ultimate comfort with our Premium Cotton T-Shirt. " +
			"Made from 100% organic cotton, this versatile piece is perfect for everyday wear. " +
			"The soft fabric feels great against your skin and maintains its quality even after multiple washes.",
		ProductInfo: "Material: 100% Organic Cotton\nWeight: 160 gsm\nFit: Classic unisex fit\n" +
			"Care: Machine wash cold, tumble dry low\nMade in: Portugal",
		ShippingDetails: "Free shipping on orders over $50\nStandard Shipping: 5-7 business days\n" +
			"Express Shipping: 2-3 business days (+$9.99)\nNext Day Shipping: 1 business day (+$19.99)",
		Images: []models.ProductImage{
			{ImageURL: "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=800&h=800&fit=crop", Alt: "Front view", SortOrder: 0},
			{ImageURL: "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=800&h=800&fit=crop", Alt: "Back view", SortOrder: 1},
			{ImageURL: "https://images.unsplash.com/photo-1489315783612-cd4628902c4a?w=800&h=800&fit=crop", Alt: "Side view", SortOrder: 2},
			{ImageURL: "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=800&h=800&fit=crop", Alt: "Detail view", SortOrder: 3},
			{ImageURL: "https://images.unsplash.com/photo-1492289944127-5a14ba2d0a1b?w=800&h=800&fit=crop", Alt: "Lifestyle view", SortOrder: 4},
		},
		Colors: []models.Color{
			{Name: "White", HexCode: "#FFFFFF", SortOrder: 0},
			{Name: "Black", HexCode: "#000000", SortOrder: 1},
			{Name: "Navy", HexCode: "#001F3F", SortOrder: 2},
			{Name: "Gray", HexCode: "#808080", SortOrder: 3},
			{Name: "Blue", HexCode: "#0074D9", SortOrder: 4},
		},
		Sizes: []models.Size{
			{Size: "XS", SortOrder: 0},
			{Size: "S", SortOrder: 1},
			{Size: "M", SortOrder: 2},
			{Size: "L", SortOrder: 3},
			{Size: "XL", SortOrder: 4},
			{Size: "2XL", SortOrder: 5},
		},
		Bundles: []models.BundleItem{
			{Name: "Complementary Item 1", Price: decimal.RequireFromString("24.99"), ImageURL: "https://images.unsplash.com/photo-1491553895911-0055eca6402d?w=200&h=200&fit=crop"},
			{Name: "Complementary Item 2", Price: decimal.RequireFromString("19.99"), ImageURL: "https://images.unsplash.com/photo-1572635196237-14b3f281503f?w=200&h=200&fit=crop"},
		},
		PairsWith: []models.PairedProduct{
			{Name: "Premium Socks Pack", Price: decimal.RequireFromString("24.99"), ImageURL: "https://images.unsplash.com/photo-1556821552-5a0d49e82e54?w=300&h=300&fit=crop"},
			{Name: "Shoe Care Kit", Price: decimal.RequireFromString("34.99"), ImageURL: "https://images.unsplash.com/photo-1600488944358-ba7e7f1b141a?w=300&h=300&fit=crop"},
			{Name: "Stylish Cap", Price: decimal.RequireFromString("29.99"), ImageURL: "https://images.unsplash.com/photo-1587280413256-afc9d91a64d0?w=300&h=300&fit=crop"},
			{Name: "Casual Backpack", Price: decimal.RequireFromString("59.99"), ImageURL: "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=300&h=300&fit=crop"},
		},
	}

	return db.Create(&product).Error
}
