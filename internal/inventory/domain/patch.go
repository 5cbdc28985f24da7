package domain

// ProductPatch carries a partial product update. Nil fields are left
// untouched by the merge.
type ProductPatch struct {
	SKU          *string  `json:"sku"`
	Name         *string  `json:"name"`
	Category     *string  `json:"category"`
	Quantity     *int     `json:"quantity"`
	Price        *float64 `json:"price"`
	ReorderLevel *int     `json:"reorderLevel"`
}

// Apply merges the patch onto p.
func (patch ProductPatch) Apply(p *Product) {
	if patch.SKU != nil {
		p.SKU = *patch.SKU
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Quantity != nil {
		p.Quantity = *patch.Quantity
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.ReorderLevel != nil {
		p.ReorderLevel = *patch.ReorderLevel
	}
}

// VendorPatch carries a partial vendor update.
type VendorPatch struct {
	Name         *string `json:"name"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Address      *string `json:"address"`
	Category     *string `json:"category"`
	PaymentTerms *string `json:"paymentTerms"`
}

// Apply merges the patch onto v.
func (patch VendorPatch) Apply(v *Vendor) {
	if patch.Name != nil {
		v.Name = *patch.Name
	}
	if patch.Email != nil {
		v.Email = *patch.Email
	}
	if patch.Phone != nil {
		v.Phone = *patch.Phone
	}
	if patch.Address != nil {
		v.Address = *patch.Address
	}
	if patch.Category != nil {
		v.Category = *patch.Category
	}
	if patch.PaymentTerms != nil {
		v.PaymentTerms = *patch.PaymentTerms
	}
}
