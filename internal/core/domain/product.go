package domain

type Product struct {
	ID        uint64
	Name      string
	BasePrice int64
}

// ProductOption is a purchasable variant of a product. BasePrice is
// loaded together with the option so a price can be fixed into an order
// line without a second lookup.
type ProductOption struct {
	ID              uint64
	ProductID       uint64
	Size            string
	PriceAdjustment int64
	Stock           int64
	BasePrice       int64
}

// FinalPrice is the live price of the option at this moment.
func (o *ProductOption) FinalPrice() int64 {
	return o.BasePrice + o.PriceAdjustment
}
