package http

import (
	"github.com/google/uuid"
)

// ErrorResponse is the JSON body returned for any failed request.
// FieldErrors is present only when specific form fields are at fault.
type ErrorResponse struct {
	Code        int               `json:"code"`
	Message     string            `json:"message"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
}

// MoneyResponse carries an amount both as exact cents and as the formatted
// string shown to the customer.
type MoneyResponse struct {
	Cents     int64  `json:"cents"`
	Formatted string `json:"formatted"`
}

// OptionResponse is one customization choice of an option group.
type OptionResponse struct {
	Name       string        `json:"name"`
	PriceDelta MoneyResponse `json:"priceDelta"`
}

// OptionGroupResponse is one customization group of a menu item.
type OptionGroupResponse struct {
	Name    string           `json:"name"`
	Options []OptionResponse `json:"options"`
}

// MenuItemResponse is a menu item as served to the storefront.
type MenuItemResponse struct {
	ID            uuid.UUID             `json:"id"`
	Name          string                `json:"name"`
	Description   string                `json:"description"`
	Price         MoneyResponse         `json:"price"`
	Category      string                `json:"category"`
	ImageURL      string                `json:"imageUrl,omitempty"`
	DietaryLabels []string              `json:"dietaryLabels"`
	Available     bool                  `json:"available"`
	OptionGroups  []OptionGroupResponse `json:"optionGroups"`
}

// MenuResponse carries the filtered items plus the full menu's categories
// and dietary labels for the filter controls.
type MenuResponse struct {
	Items         []MenuItemResponse `json:"items"`
	Categories    []string           `json:"categories"`
	DietaryLabels []string           `json:"dietaryLabels"`
}

// CartLineResponse is one cart or order line.
type CartLineResponse struct {
	ItemID    uuid.UUID         `json:"itemId"`
	ItemName  string            `json:"itemName"`
	UnitPrice MoneyResponse     `json:"unitPrice"`
	Selection map[string]string `json:"selection,omitempty"`
	Quantity  int               `json:"quantity"`
	Total     MoneyResponse     `json:"total"`
}

// ReceiptResponse carries the computed totals for a cart or placed order.
type ReceiptResponse struct {
	Subtotal    MoneyResponse `json:"subtotal"`
	Tax         MoneyResponse `json:"tax"`
	DeliveryFee MoneyResponse `json:"deliveryFee"`
	Total       MoneyResponse `json:"total"`
}

// AddressResponse is the checkout address collected so far.
type AddressResponse struct {
	Name                string `json:"name"`
	Street              string `json:"street"`
	City                string `json:"city"`
	State               string `json:"state"`
	ZipCode             string `json:"zipCode"`
	Phone               string `json:"phone"`
	SpecialInstructions string `json:"specialInstructions,omitempty"`
}

// CartResponse is the current cart with totals and outstanding address
// problems. An empty fieldErrors map means the cart would pass checkout
// address validation as it stands.
type CartResponse struct {
	Lines       []CartLineResponse `json:"lines"`
	ItemCount   int                `json:"itemCount"`
	OrderType   string             `json:"orderType"`
	Address     AddressResponse    `json:"address"`
	Receipt     ReceiptResponse    `json:"receipt"`
	FieldErrors map[string]string  `json:"fieldErrors"`
}

// OrderResponse is a placed order.
type OrderResponse struct {
	ID                uuid.UUID          `json:"id"`
	DisplayCode       string             `json:"displayCode"`
	PlacedAt          string             `json:"placedAt"`
	Status            string             `json:"status"`
	OrderType         string             `json:"orderType"`
	EstimatedDelivery string             `json:"estimatedDelivery"`
	Lines             []CartLineResponse `json:"lines"`
	ItemCount         int                `json:"itemCount"`
	Receipt           ReceiptResponse    `json:"receipt"`
	Address           AddressResponse    `json:"address"`
}

// TimelineStepResponse is one station of the tracking timeline.
type TimelineStepResponse struct {
	Status      string `json:"status"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Reached     bool   `json:"reached"`
	Current     bool   `json:"current"`
}

// TrackingResponse is the tracking page payload for one order.
type TrackingResponse struct {
	Order            OrderResponse          `json:"order"`
	Timeline         []TimelineStepResponse `json:"timeline"`
	MinutesRemaining int                    `json:"minutesRemaining"`
}

// OrderHistoryResponse splits all placed orders into active and past.
type OrderHistoryResponse struct {
	Active []OrderResponse `json:"active"`
	Past   []OrderResponse `json:"past"`
}

// DarkModeResponse reports the persisted dark mode preference.
type DarkModeResponse struct {
	Enabled bool `json:"enabled"`
}

// AddCartItemRequest adds a menu item to the cart. Quantity defaults to one
// when omitted.
type AddCartItemRequest struct {
	ItemID    uuid.UUID         `json:"itemId"`
	Selection map[string]string `json:"selection"`
	Quantity  int               `json:"quantity"`
}

// ChangeCartItemQuantityRequest sets a line's quantity. A quantity of zero
// or below removes the line.
type ChangeCartItemQuantityRequest struct {
	ItemID    uuid.UUID         `json:"itemId"`
	Selection map[string]string `json:"selection"`
	Quantity  int               `json:"quantity"`
}

// RemoveCartItemRequest removes one line from the cart.
type RemoveCartItemRequest struct {
	ItemID    uuid.UUID         `json:"itemId"`
	Selection map[string]string `json:"selection"`
}

// SelectOrderTypeRequest switches between "delivery" and "pickup".
type SelectOrderTypeRequest struct {
	OrderType string `json:"orderType"`
}

// UpdateAddressRequest patches the checkout address. Absent fields keep
// their current values; present fields overwrite, empty strings included.
type UpdateAddressRequest struct {
	Name                *string `json:"name"`
	Street              *string `json:"street"`
	City                *string `json:"city"`
	State               *string `json:"state"`
	ZipCode             *string `json:"zipCode"`
	Phone               *string `json:"phone"`
	SpecialInstructions *string `json:"specialInstructions"`
}

// CardRequest carries the raw card form fields.
type CardRequest struct {
	Number string `json:"number"`
	Name   string `json:"name"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
}

// CheckoutRequest places an order from the current cart. Card is required
// only when paymentMethod is "card".
type CheckoutRequest struct {
	PaymentMethod string      `json:"paymentMethod"`
	Card          CardRequest `json:"card"`
}

// UpdateOrderStatusRequest moves an order forward in its lifecycle.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// SetDarkModeRequest persists the dark mode preference.
type SetDarkModeRequest struct {
	Enabled bool `json:"enabled"`
}
