package catalog

import (
	"github.com/shopspring/decimal"
)

const (
	PlaceholderImage = "/placeholder-peptide.jpg"
	DefaultCategory  = "Peptides"
	DefaultPurity    = "99% HPLC"
)

func init() {
	// prices go out as JSON numbers, the storefront does arithmetic on them
	decimal.MarshalJSONWithoutQuotes = true
}

// Product is a catalog entry. Pointer fields are optional and render as null when unset.
type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Size        string          `json:"size"`
	Description string          `json:"description"`
	ImageURL    string          `json:"image_url"`
	Category    string          `json:"category"`

	SKU             *string `json:"sku"`
	CASNumber       *string `json:"cas_number"`
	Formula         *string `json:"formula"`
	MolecularWeight *string `json:"molecular_weight"`
	Purity          *string `json:"purity"`
	PubChemCID      *string `json:"pubchem_cid"`
	Synonyms        *string `json:"synonyms"`
	Sequence        *string `json:"sequence"`
}

// NewProduct is the input of Store.Create. ImageURL is resolved by the caller.
type NewProduct struct {
	Name        string
	Price       decimal.Decimal
	Size        string
	Description string
	ImageURL    string

	// Category and Purity fall back to DefaultCategory / DefaultPurity when nil.
	Category  *string
	Purity    *string
	SKU       *string
	CASNumber *string
	Formula   *string
}

// CartItem is reserved for a cart API; nothing consumes it yet.
type CartItem struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

func (np NewProduct) build(id int) Product {
	p := Product{
		ID:          id,
		Name:        np.Name,
		Price:       np.Price,
		Size:        np.Size,
		Description: np.Description,
		ImageURL:    np.ImageURL,
		Category:    DefaultCategory,
		SKU:         np.SKU,
		CASNumber:   np.CASNumber,
		Formula:     np.Formula,
		Purity:      StringPtr(DefaultPurity),
	}
	if np.Category != nil {
		p.Category = *np.Category
	}
	if np.Purity != nil {
		p.Purity = StringPtr(*np.Purity)
	}
	if p.ImageURL == "" {
		p.ImageURL = PlaceholderImage
	}
	return p
}

func StringPtr(s string) *string {
	return &s
}
