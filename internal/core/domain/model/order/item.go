package order

import (
	"errors"
	"strings"

	"dispatch/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Item is one line of an order: a menu item reference, the ordered quantity
// and the unit price recorded when the order was placed. Catalog prices may
// change later; the recorded price does not.
type Item struct {
	ref      string
	quantity int
	price    decimal.Decimal
}

// NewItem validates and builds an order line.
func NewItem(ref string, quantity int, price decimal.Decimal) (Item, error) {
	item := Item{}
	if err := errors.Join(
		item.setRef(ref),
		item.setQuantity(quantity),
		item.setPrice(price),
	); err != nil {
		return Item{}, err
	}
	return item, nil
}

// Ref returns the menu item reference.
func (i Item) Ref() string {
	return i.ref
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Price returns the recorded unit price.
func (i Item) Price() decimal.Decimal {
	return i.price
}

// Subtotal returns price × quantity.
func (i Item) Subtotal() decimal.Decimal {
	return i.price.Mul(decimal.NewFromInt(int64(i.quantity)))
}

func (i *Item) setRef(ref string) error {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return errs.NewValueIsRequiredError("item id")
	}
	i.ref = ref
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsOutOfRangeError("price", price.String(), 0, "unbounded")
	}
	i.price = price
	return nil
}

// total sums the subtotals of all lines.
func total(items []Item) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Subtotal())
	}
	return sum
}
