// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"time"

	"dineease/internal/core/domain/model/kernel"
	"dineease/internal/core/domain/model/menu"
	"dineease/internal/core/domain/model/order"
)

// CartLineView represents one cart or order line in the read model.
type CartLineView struct {
	ItemID    kernel.UUID
	ItemName  string
	UnitPrice kernel.Money
	Selection menu.Selection
	Quantity  int
	Total     kernel.Money
}

// ReceiptView represents computed totals in the read model.
type ReceiptView struct {
	Subtotal    kernel.Money
	Tax         kernel.Money
	DeliveryFee kernel.Money
	Total       kernel.Money
}

// AddressView represents the checkout address in the read model.
type AddressView struct {
	Name                string
	Street              string
	City                string
	State               string
	ZipCode             string
	Phone               string
	SpecialInstructions string
}

// OrderView represents a placed order in the read model. DisplayCode is the
// short code shown to the customer ("ORD-550E8400"); the UUID stays the key.
type OrderView struct {
	ID                kernel.UUID
	DisplayCode       string
	PlacedAt          time.Time
	Status            string
	OrderType         string
	EstimatedDelivery time.Time
	Lines             []CartLineView
	ItemCount         int
	Receipt           ReceiptView
	Address           AddressView
}

func newCartLineView(line order.CartLine) CartLineView {
	return CartLineView{
		ItemID:    line.ItemID(),
		ItemName:  line.ItemName(),
		UnitPrice: line.UnitPrice(),
		Selection: line.Selection(),
		Quantity:  line.Quantity(),
		Total:     line.Total(),
	}
}

func newReceiptView(receipt order.Receipt) ReceiptView {
	return ReceiptView{
		Subtotal:    receipt.Subtotal(),
		Tax:         receipt.Tax(),
		DeliveryFee: receipt.DeliveryFee(),
		Total:       receipt.Total(),
	}
}

func newAddressView(address order.Address) AddressView {
	return AddressView{
		Name:                address.Name,
		Street:              address.Street,
		City:                address.City,
		State:               address.State,
		ZipCode:             address.ZipCode,
		Phone:               address.Phone,
		SpecialInstructions: address.SpecialInstructions,
	}
}

func newOrderView(aggregate *order.Order) OrderView {
	lines := aggregate.Lines()
	views := make([]CartLineView, 0, len(lines))
	itemCount := 0
	for _, line := range lines {
		views = append(views, newCartLineView(line))
		itemCount += line.Quantity()
	}

	return OrderView{
		ID:                aggregate.ID(),
		DisplayCode:       aggregate.DisplayCode(),
		PlacedAt:          aggregate.PlacedAt(),
		Status:            aggregate.Status().String(),
		OrderType:         aggregate.OrderType().String(),
		EstimatedDelivery: aggregate.EstimatedDelivery(),
		Lines:             views,
		ItemCount:         itemCount,
		Receipt:           newReceiptView(aggregate.Receipt()),
		Address:           newAddressView(aggregate.Address()),
	}
}
