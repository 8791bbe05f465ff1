package http

import (
	"time"

	"dineease/internal/core/application/usecases/queries"
	"dineease/internal/core/domain/model/kernel"
)

func toMoneyResponse(amount kernel.Money) MoneyResponse {
	return MoneyResponse{
		Cents:     amount.Cents(),
		Formatted: amount.String(),
	}
}

func toMenuItemResponse(item queries.MenuItemView) MenuItemResponse {
	groups := make([]OptionGroupResponse, 0, len(item.OptionGroups))
	for _, group := range item.OptionGroups {
		options := make([]OptionResponse, 0, len(group.Options))
		for _, option := range group.Options {
			options = append(options, OptionResponse{
				Name:       option.Name,
				PriceDelta: toMoneyResponse(option.PriceDelta),
			})
		}
		groups = append(groups, OptionGroupResponse{
			Name:    group.Name,
			Options: options,
		})
	}

	return MenuItemResponse{
		ID:            item.ID.Bytes(),
		Name:          item.Name,
		Description:   item.Description,
		Price:         toMoneyResponse(item.Price),
		Category:      item.Category,
		ImageURL:      item.ImageURL,
		DietaryLabels: item.DietaryLabels,
		Available:     item.Available,
		OptionGroups:  groups,
	}
}

func toMenuResponse(response queries.GetMenuQueryResponse) MenuResponse {
	items := make([]MenuItemResponse, 0, len(response.Items))
	for _, item := range response.Items {
		items = append(items, toMenuItemResponse(item))
	}

	return MenuResponse{
		Items:         items,
		Categories:    response.Categories,
		DietaryLabels: response.DietaryLabels,
	}
}

func toCartLineResponses(lines []queries.CartLineView) []CartLineResponse {
	responses := make([]CartLineResponse, 0, len(lines))
	for _, line := range lines {
		responses = append(responses, CartLineResponse{
			ItemID:    line.ItemID.Bytes(),
			ItemName:  line.ItemName,
			UnitPrice: toMoneyResponse(line.UnitPrice),
			Selection: line.Selection,
			Quantity:  line.Quantity,
			Total:     toMoneyResponse(line.Total),
		})
	}
	return responses
}

func toReceiptResponse(receipt queries.ReceiptView) ReceiptResponse {
	return ReceiptResponse{
		Subtotal:    toMoneyResponse(receipt.Subtotal),
		Tax:         toMoneyResponse(receipt.Tax),
		DeliveryFee: toMoneyResponse(receipt.DeliveryFee),
		Total:       toMoneyResponse(receipt.Total),
	}
}

func toAddressResponse(address queries.AddressView) AddressResponse {
	return AddressResponse{
		Name:                address.Name,
		Street:              address.Street,
		City:                address.City,
		State:               address.State,
		ZipCode:             address.ZipCode,
		Phone:               address.Phone,
		SpecialInstructions: address.SpecialInstructions,
	}
}

func toCartResponse(response queries.GetCartQueryResponse) CartResponse {
	return CartResponse{
		Lines:       toCartLineResponses(response.Lines),
		ItemCount:   response.ItemCount,
		OrderType:   response.OrderType,
		Address:     toAddressResponse(response.Address),
		Receipt:     toReceiptResponse(response.Receipt),
		FieldErrors: response.FieldErrors,
	}
}

func toOrderResponse(view queries.OrderView) OrderResponse {
	return OrderResponse{
		ID:                view.ID.Bytes(),
		DisplayCode:       view.DisplayCode,
		PlacedAt:          view.PlacedAt.Format(time.RFC3339),
		Status:            view.Status,
		OrderType:         view.OrderType,
		EstimatedDelivery: view.EstimatedDelivery.Format(time.RFC3339),
		Lines:             toCartLineResponses(view.Lines),
		ItemCount:         view.ItemCount,
		Receipt:           toReceiptResponse(view.Receipt),
		Address:           toAddressResponse(view.Address),
	}
}

func toOrderResponses(views []queries.OrderView) []OrderResponse {
	responses := make([]OrderResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, toOrderResponse(view))
	}
	return responses
}

func toTrackingResponse(response queries.TrackOrderQueryResponse) TrackingResponse {
	steps := make([]TimelineStepResponse, 0, len(response.Timeline))
	for _, step := range response.Timeline {
		steps = append(steps, TimelineStepResponse{
			Status:      step.Status,
			Label:       step.Label,
			Description: step.Description,
			Reached:     step.Reached,
			Current:     step.Current,
		})
	}

	return TrackingResponse{
		Order:            toOrderResponse(response.Order),
		Timeline:         steps,
		MinutesRemaining: response.MinutesRemaining,
	}
}
