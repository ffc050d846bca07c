package models

import "github.com/shopspring/decimal"

func init() {
	// Prices travel as plain JSON numbers, matching the stored payloads.
	decimal.MarshalJSONWithoutQuotes = true
}

type Product struct {
	BaseModel
	Name            string           `json:"name"`
	Price           decimal.Decimal  `gorm:"type:decimal(10,2)" json:"price"`
	Badge           string           `json:"badge,omitempty"`
	Description     string           `json:"description"`
	ProductInfo     string           `json:"productInfo"`
	ShippingDetails string           `json:"shippingDetails"`
	Images          []ProductImage   `json:"images,omitempty"`
	Colors          []Color          `json:"colors,omitempty"`
	Sizes           []Size           `json:"sizes,omitempty"`
	Bundles         []BundleItem     `json:"bundles,omitempty"`
	PairsWith       []PairedProduct  `json:"pairsWith,omitempty"`
	RelatedProducts []RelatedProduct `json:"relatedProducts,omitempty"`
}

// ProductImage is a gallery entry. SortOrder is the explicit display
// position; duplicates are tolerated and the read model falls back to the
// insertion sequence (id) for ties.
type ProductImage struct {
	BaseModel
	ProductID int    `gorm:"index" json:"productId"`
	ImageURL  string `json:"imageUrl"`
	Alt       string `json:"alt"`
	SortOrder int    `gorm:"column:sort_order" json:"order"`
}

type Color struct {
	BaseModel
	ProductID int    `gorm:"index" json:"productId"`
	Name      string `json:"name"`
	HexCode   string `json:"hexCode"`
	SortOrder int    `gorm:"column:sort_order" json:"order"`
}

type Size struct {
	BaseModel
	ProductID int    `gorm:"index" json:"productId"`
	Size      string `json:"size"`
	SortOrder int    `gorm:"column:sort_order" json:"order"`
}

type BundleItem struct {
	BaseModel
	ProductID int             `gorm:"index" json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	ImageURL  string          `json:"imageUrl"`
}

type PairedProduct struct {
	BaseModel
	ProductID int             `gorm:"index" json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	ImageURL  string          `json:"imageUrl"`
}

type RelatedProduct struct {
	BaseModel
	ProductID int             `gorm:"index" json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	ImageURL  string          `json:"imageUrl"`
}
