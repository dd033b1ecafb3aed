package cart

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one line in a user's cart. UnitPrice is locked in when the
// line is created; later catalog changes never reprice an existing line.
type CartItem struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Color     string          `json:"color"`
	Size      string          `json:"size"`
	Quantity  int             `json:"quantity"`
	Image     string          `json:"image,omitempty"`
	Category  string          `json:"category,omitempty"`
	AddedAt   time.Time       `json:"added_at"`
}

type AddParams struct {
	ProductID string
	Color     string
	Size      string
	Quantity  int
}
