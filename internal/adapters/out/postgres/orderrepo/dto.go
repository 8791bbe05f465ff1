// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"encoding/json"
	"time"

	"dineease/internal/core/domain/model/kernel"
	"dineease/internal/core/domain/model/menu"
	"dineease/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Lines live in their own table and are loaded eagerly; address
// and receipt are embedded since they are plain value snapshots.
type OrderDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	PlacedAt          time.Time  `gorm:"index"`
	OrderType         string     `gorm:"type:varchar(16)"`
	Status            int        `gorm:"index"`
	EstimatedDelivery time.Time
	Address           AddressDTO   `gorm:"embedded;embeddedPrefix:address_"`
	Receipt           ReceiptDTO   `gorm:"embedded;embeddedPrefix:receipt_"`
	Lines             []LineDTO    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents the embedded address snapshot within the order table.
type AddressDTO struct {
	Name                string
	Street              string
	City                string
	State               string
	ZipCode             string
	Phone               string
	SpecialInstructions string
}

// ReceiptDTO represents the embedded totals snapshot, stored in cents.
type ReceiptDTO struct {
	SubtotalCents    int64
	TaxCents         int64
	DeliveryFeeCents int64
	TotalCents       int64
}

// LineDTO represents one order line. Position preserves the cart order;
// Selection is the option choice serialized as JSON.
type LineDTO struct {
	OrderID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position       int       `gorm:"primaryKey"`
	ItemID         uuid.UUID `gorm:"type:uuid"`
	ItemName       string
	UnitPriceCents int64
	Selection      string `gorm:"type:text"`
	Quantity       int
}

// TableName specifies the database table name for order lines.
func (LineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	lines := aggregate.Lines()
	lineDTOs := make([]LineDTO, 0, len(lines))
	for i, line := range lines {
		selection, err := json.Marshal(line.Selection())
		if err != nil {
			return OrderDTO{}, err
		}

		lineDTOs = append(lineDTOs, LineDTO{
			OrderID:        aggregate.ID().Bytes(),
			Position:       i,
			ItemID:         line.ItemID().Bytes(),
			ItemName:       line.ItemName(),
			UnitPriceCents: line.UnitPrice().Cents(),
			Selection:      string(selection),
			Quantity:       line.Quantity(),
		})
	}

	address := aggregate.Address()
	receipt := aggregate.Receipt()

	return OrderDTO{
		ID:                aggregate.ID().Bytes(),
		PlacedAt:          aggregate.PlacedAt(),
		OrderType:         aggregate.OrderType().String(),
		Status:            int(aggregate.Status()),
		EstimatedDelivery: aggregate.EstimatedDelivery(),
		Address: AddressDTO{
			Name:                address.Name,
			Street:              address.Street,
			City:                address.City,
			State:               address.State,
			ZipCode:             address.ZipCode,
			Phone:               address.Phone,
			SpecialInstructions: address.SpecialInstructions,
		},
		Receipt: ReceiptDTO{
			SubtotalCents:    receipt.Subtotal().Cents(),
			TaxCents:         receipt.Tax().Cents(),
			DeliveryFeeCents: receipt.DeliveryFee().Cents(),
			TotalCents:       receipt.Total().Cents(),
		},
		Lines: lineDTOs,
	}, nil
}

// toDomain converts a database DTO back to an order aggregate using
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderType, err := order.OrderTypeFromString(dto.OrderType)
	if err != nil {
		return nil, err
	}

	lines := make([]order.CartLine, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		itemID, lineErr := kernel.UUIDFromBytes(lineDTO.ItemID[:])
		if lineErr != nil {
			return nil, lineErr
		}

		var selection menu.Selection
		if lineDTO.Selection != "" {
			if lineErr = json.Unmarshal([]byte(lineDTO.Selection), &selection); lineErr != nil {
				return nil, lineErr
			}
		}

		line, lineErr := order.RestoreCartLine(
			itemID,
			lineDTO.ItemName,
			kernel.NewMoneyFromCents(lineDTO.UnitPriceCents),
			selection,
			lineDTO.Quantity,
		)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	receipt := order.RestoreReceipt(
		kernel.NewMoneyFromCents(dto.Receipt.SubtotalCents),
		kernel.NewMoneyFromCents(dto.Receipt.TaxCents),
		kernel.NewMoneyFromCents(dto.Receipt.DeliveryFeeCents),
		kernel.NewMoneyFromCents(dto.Receipt.TotalCents),
	)

	return order.RestoreOrder(
		id,
		lines,
		receipt,
		orderType,
		order.Address{
			Name:                dto.Address.Name,
			Street:              dto.Address.Street,
			City:                dto.Address.City,
			State:               dto.Address.State,
			ZipCode:             dto.Address.ZipCode,
			Phone:               dto.Address.Phone,
			SpecialInstructions: dto.Address.SpecialInstructions,
		},
		dto.PlacedAt,
		dto.EstimatedDelivery,
		order.Status(dto.Status),
	)
}
