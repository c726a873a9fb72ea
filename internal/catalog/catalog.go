// Package catalog holds the static product catalog. Products are defined at
// build time and immutable at runtime; there is no database behind them.
package catalog

import "gromart_back_end/internal/models"

// boxOptions is the quantity option set of the hygiene lines sold per piece.
// The 64 entry is the one-box option and only the lines that list it can be
// ordered by the box.
var (
	boxOptions  = []int{6, 12, 24, 48, 64}
	packOptions = []int{6, 12, 24, 48}
)

var products = []models.Product{
	{
		ID:          "stayfree-secure-xl",
		Name:        "Stayfree Secure XL",
		Price:       8,
		Discount:    10,
		Unit:        "per pad",
		Category:    "Personal Care",
		ImageURL:    "/images/stayfree-secure-xl.jpg",
		MinQuantity: 6,
		BulkOptions: boxOptions,
	},
	{
		ID:          "whisper-ultra-clean",
		Name:        "Whisper Ultra Clean",
		Price:       9,
		Discount:    5,
		Unit:        "per pad",
		Category:    "Personal Care",
		ImageURL:    "/images/whisper-ultra-clean.jpg",
		MinQuantity: 6,
		BulkOptions: packOptions,
	},
	{
		ID:          "rice-5kg",
		Name:        "Rice 5kg",
		Price:       250,
		Unit:        "5 kg bag",
		Category:    "Staples",
		ImageURL:    "/images/rice-5kg.jpg",
		MinQuantity: 1,
	},
	{
		ID:          "toor-dal-1kg",
		Name:        "Toor Dal 1kg",
		Price:       140,
		Discount:    8,
		Unit:        "1 kg pack",
		Category:    "Staples",
		ImageURL:    "/images/toor-dal-1kg.jpg",
		MinQuantity: 1,
	},
	{
		ID:          "sunflower-oil-1l",
		Name:        "Sunflower Oil 1L",
		Price:       135,
		Unit:        "1 L bottle",
		Category:    "Staples",
		ImageURL:    "/images/sunflower-oil-1l.jpg",
		MinQuantity: 1,
	},
	{
		ID:          "atta-5kg",
		Name:        "Whole Wheat Atta 5kg",
		Price:       230,
		Discount:    5,
		Unit:        "5 kg bag",
		Category:    "Staples",
		ImageURL:    "/images/atta-5kg.jpg",
		MinQuantity: 1,
	},
	{
		ID:          "milk-500ml",
		Name:        "Fresh Milk 500ml",
		Price:       28,
		Unit:        "500 ml pouch",
		Category:    "Dairy",
		ImageURL:    "/images/milk-500ml.jpg",
		MinQuantity: 1,
	},
	{
		ID:          "eggs-6",
		Name:        "Brown Eggs",
		Price:       48,
		Unit:        "pack of 6",
		Category:    "Dairy",
		ImageURL:    "/images/eggs-6.jpg",
		MinQuantity: 1,
	},
	{
		ID:          "tomatoes-1kg",
		Name:        "Tomatoes 1kg",
		Price:       40,
		Discount:    15,
		Unit:        "1 kg",
		Category:    "Vegetables",
		ImageURL:    "/images/tomatoes-1kg.jpg",
		MinQuantity: 1,
	},
	{
		ID:          "onions-1kg",
		Name:        "Onions 1kg",
		Price:       35,
		Unit:        "1 kg",
		Category:    "Vegetables",
		ImageURL:    "/images/onions-1kg.jpg",
		MinQuantity: 1,
	},
	{
		ID:          "organic-honey-500g",
		Name:        "Organic Honey 500g",
		Price:       320,
		Unit:        "500 g jar",
		Category:    "Staples",
		ImageURL:    "/images/organic-honey-500g.jpg",
		MinQuantity: 1,
		ComingSoon:  true,
	},
}

// All returns every catalog product. Callers must not modify the result.
func All() []models.Product {
	return products
}

// ByID looks up a product by its id.
func ByID(id string) (models.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Featured returns the first n products, or all of them when fewer exist.
func Featured(n int) []models.Product {
	if n > len(products) {
		n = len(products)
	}
	return products[:n]
}

// AllowedQuantity reports whether q is a valid selection for p: any quantity
// at or above the minimum for ordinary products, or one of the listed bulk
// options for the per-piece lines.
func AllowedQuantity(p models.Product, q int) bool {
	if q < p.MinQuantity {
		return false
	}
	if len(p.BulkOptions) == 0 {
		return true
	}
	for _, opt := range p.BulkOptions {
		if q == opt {
			return true
		}
	}
	return false
}
