// Package http exposes the storefront REST API: menu browsing, cart
// editing, checkout, order tracking, and the dark mode preference.
package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"dineease/internal/core/application/usecases/commands"
	"dineease/internal/core/application/usecases/queries"
	"dineease/internal/core/domain/model/kernel"
	"dineease/internal/core/domain/model/order"
	"dineease/internal/core/domain/model/payment"
	"dineease/internal/core/ports"
	"dineease/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	addItemHandler         commands.AddItemToCartCommandHandler
	removeItemHandler      commands.RemoveCartItemCommandHandler
	changeQuantityHandler  commands.ChangeCartItemQuantityCommandHandler
	clearCartHandler       commands.ClearCartCommandHandler
	selectOrderTypeHandler commands.SelectOrderTypeCommandHandler
	updateAddressHandler   commands.UpdateDeliveryAddressCommandHandler
	placeOrderHandler      commands.PlaceOrderCommandHandler
	updateStatusHandler    commands.UpdateOrderStatusCommandHandler

	// Query handlers
	getMenuHandler         queries.GetMenuQueryHandler
	getCartHandler         queries.GetCartQueryHandler
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler
	trackOrderHandler      queries.TrackOrderQueryHandler

	preferences ports.PreferenceStore
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	addItemHandler commands.AddItemToCartCommandHandler,
	removeItemHandler commands.RemoveCartItemCommandHandler,
	changeQuantityHandler commands.ChangeCartItemQuantityCommandHandler,
	clearCartHandler commands.ClearCartCommandHandler,
	selectOrderTypeHandler commands.SelectOrderTypeCommandHandler,
	updateAddressHandler commands.UpdateDeliveryAddressCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	updateStatusHandler commands.UpdateOrderStatusCommandHandler,
	getMenuHandler queries.GetMenuQueryHandler,
	getCartHandler queries.GetCartQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler,
	trackOrderHandler queries.TrackOrderQueryHandler,
	preferences ports.PreferenceStore,
) *Server {
	return &Server{
		addItemHandler:         addItemHandler,
		removeItemHandler:      removeItemHandler,
		changeQuantityHandler:  changeQuantityHandler,
		clearCartHandler:       clearCartHandler,
		selectOrderTypeHandler: selectOrderTypeHandler,
		updateAddressHandler:   updateAddressHandler,
		placeOrderHandler:      placeOrderHandler,
		updateStatusHandler:    updateStatusHandler,
		getMenuHandler:         getMenuHandler,
		getCartHandler:         getCartHandler,
		getActiveOrdersHandler: getActiveOrdersHandler,
		getOrderHistoryHandler: getOrderHistoryHandler,
		trackOrderHandler:      trackOrderHandler,
		preferences:            preferences,
	}
}

// RegisterRoutes attaches all storefront routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.GET("/menu", s.GetMenu)

	api.GET("/cart", s.GetCart)
	api.DELETE("/cart", s.ClearCart)
	api.POST("/cart/items", s.AddCartItem)
	api.PATCH("/cart/items", s.ChangeCartItemQuantity)
	api.DELETE("/cart/items", s.RemoveCartItem)
	api.PUT("/cart/order-type", s.SelectOrderType)
	api.PUT("/cart/address", s.UpdateAddress)

	api.POST("/checkout", s.Checkout)

	api.GET("/orders/active", s.GetActiveOrders)
	api.GET("/orders/history", s.GetOrderHistory)
	api.GET("/orders/:orderId", s.TrackOrder)
	api.PUT("/orders/:orderId/status", s.UpdateOrderStatus)

	api.GET("/preferences/dark-mode", s.GetDarkMode)
	api.PUT("/preferences/dark-mode", s.SetDarkMode)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetMenu handles GET /api/v1/menu - retrieves the menu with optional
// filters: category, search, labels (comma separated), availableOnly.
func (s *Server) GetMenu(ctx echo.Context) error {
	var dietaryLabels []string
	if raw := ctx.QueryParam("labels"); raw != "" {
		for _, label := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(label); trimmed != "" {
				dietaryLabels = append(dietaryLabels, trimmed)
			}
		}
	}

	query := queries.NewGetMenuQuery(
		ctx.QueryParam("category"),
		ctx.QueryParam("search"),
		dietaryLabels,
		ctx.QueryParam("availableOnly") == "true",
	)

	response, err := s.getMenuHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err, "Failed to retrieve menu")
	}

	return ctx.JSON(http.StatusOK, toMenuResponse(response))
}

// GetCart handles GET /api/v1/cart - retrieves the cart with totals.
func (s *Server) GetCart(ctx echo.Context) error {
	response, err := s.getCartHandler.Handle(ctx.Request().Context(), queries.NewGetCartQuery())
	if err != nil {
		return s.respondError(ctx, err, "Failed to retrieve cart")
	}

	return ctx.JSON(http.StatusOK, toCartResponse(response))
}

// AddCartItem handles POST /api/v1/cart/items - adds a menu item to the
// cart, merging with an existing line when the customization matches.
func (s *Server) AddCartItem(ctx echo.Context) error {
	var request AddCartItemRequest
	if err := ctx.Bind(&request); err != nil {
		return s.respondBadRequest(ctx, "Invalid request body")
	}

	itemID, err := kernel.UUIDFromBytes(request.ItemID[:])
	if err != nil {
		return s.respondBadRequest(ctx, "Invalid item id")
	}

	cmd, err := commands.NewAddItemToCartCommand(itemID, request.Selection, request.Quantity)
	if err != nil {
		return s.respondError(ctx, err, "Invalid cart item")
	}

	if err := s.addItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err, "Failed to add item to cart")
	}

	return s.GetCart(ctx)
}

// ChangeCartItemQuantity handles PATCH /api/v1/cart/items - sets a line's
// quantity; zero or below removes the line.
func (s *Server) ChangeCartItemQuantity(ctx echo.Context) error {
	var request ChangeCartItemQuantityRequest
	if err := ctx.Bind(&request); err != nil {
		return s.respondBadRequest(ctx, "Invalid request body")
	}

	itemID, err := kernel.UUIDFromBytes(request.ItemID[:])
	if err != nil {
		return s.respondBadRequest(ctx, "Invalid item id")
	}

	cmd, err := commands.NewChangeCartItemQuantityCommand(itemID, request.Selection, request.Quantity)
	if err != nil {
		return s.respondError(ctx, err, "Invalid quantity change")
	}

	if err := s.changeQuantityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err, "Failed to change quantity")
	}

	return s.GetCart(ctx)
}

// RemoveCartItem handles DELETE /api/v1/cart/items - removes one line.
func (s *Server) RemoveCartItem(ctx echo.Context) error {
	var request RemoveCartItemRequest
	if err := ctx.Bind(&request); err != nil {
		return s.respondBadRequest(ctx, "Invalid request body")
	}

	itemID, err := kernel.UUIDFromBytes(request.ItemID[:])
	if err != nil {
		return s.respondBadRequest(ctx, "Invalid item id")
	}

	cmd, err := commands.NewRemoveCartItemCommand(itemID, request.Selection)
	if err != nil {
		return s.respondError(ctx, err, "Invalid removal request")
	}

	if err := s.removeItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err, "Failed to remove item")
	}

	return s.GetCart(ctx)
}

// ClearCart handles DELETE /api/v1/cart - empties the cart, keeping the
// selected order type and the address.
func (s *Server) ClearCart(ctx echo.Context) error {
	cmd := commands.NewClearCartCommand()
	if err := s.clearCartHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err, "Failed to clear cart")
	}

	return s.GetCart(ctx)
}

// SelectOrderType handles PUT /api/v1/cart/order-type - switches between
// delivery and pickup, which changes the delivery fee and address rules.
func (s *Server) SelectOrderType(ctx echo.Context) error {
	var request SelectOrderTypeRequest
	if err := ctx.Bind(&request); err != nil {
		return s.respondBadRequest(ctx, "Invalid request body")
	}

	orderType, err := order.OrderTypeFromString(request.OrderType)
	if err != nil {
		return s.respondError(ctx, err, "Invalid order type")
	}

	cmd, err := commands.NewSelectOrderTypeCommand(orderType)
	if err != nil {
		return s.respondError(ctx, err, "Invalid order type")
	}

	if err := s.selectOrderTypeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err, "Failed to select order type")
	}

	return s.GetCart(ctx)
}

// UpdateAddress handles PUT /api/v1/cart/address - patches the checkout
// address. Incomplete addresses are accepted; completeness is enforced at
// checkout.
func (s *Server) UpdateAddress(ctx echo.Context) error {
	var request UpdateAddressRequest
	if err := ctx.Bind(&request); err != nil {
		return s.respondBadRequest(ctx, "Invalid request body")
	}

	cmd := commands.NewUpdateDeliveryAddressCommand(order.AddressPatch{
		Name:                request.Name,
		Street:              request.Street,
		City:                request.City,
		State:               request.State,
		ZipCode:             request.ZipCode,
		Phone:               request.Phone,
		SpecialInstructions: request.SpecialInstructions,
	})

	if err := s.updateAddressHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err, "Failed to update address")
	}

	return s.GetCart(ctx)
}

// Checkout handles POST /api/v1/checkout - places an order from the current
// cart. Responds with the placed order and its tracking timeline.
func (s *Server) Checkout(ctx echo.Context) error {
	var request CheckoutRequest
	if err := ctx.Bind(&request); err != nil {
		return s.respondBadRequest(ctx, "Invalid request body")
	}

	method, err := payment.MethodFromString(request.PaymentMethod)
	if err != nil {
		return s.respondError(ctx, err, "Invalid payment method")
	}

	card := payment.CardDetails{
		Number: request.Card.Number,
		Name:   request.Card.Name,
		Expiry: request.Card.Expiry,
		CVV:    request.Card.CVV,
	}

	// Surface form problems as field errors before dispatching, mirroring
	// what the checkout form shows inline.
	if method == payment.Card {
		if fieldErrors := card.FieldErrors(time.Now()); len(fieldErrors) > 0 {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Code:        http.StatusBadRequest,
				Message:     "Invalid card details",
				FieldErrors: fieldErrors,
			})
		}
	}

	cart, err := s.getCartHandler.Handle(ctx.Request().Context(), queries.NewGetCartQuery())
	if err != nil {
		return s.respondError(ctx, err, "Failed to load cart")
	}
	if len(cart.FieldErrors) > 0 {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:        http.StatusBadRequest,
			Message:     "Address is incomplete",
			FieldErrors: cart.FieldErrors,
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, method, card)
	if err != nil {
		return s.respondError(ctx, err, "Invalid checkout request")
	}

	if err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err, "Failed to place order")
	}

	query, err := queries.NewTrackOrderQuery(orderID)
	if err != nil {
		return s.respondError(ctx, err, "Failed to load placed order")
	}

	tracking, err := s.trackOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err, "Failed to load placed order")
	}

	return ctx.JSON(http.StatusCreated, toTrackingResponse(tracking))
}

// GetActiveOrders handles GET /api/v1/orders/active - retrieves orders that
// have not been delivered yet, newest first.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	views, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return s.respondError(ctx, err, "Failed to retrieve orders")
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(views))
}

// GetOrderHistory handles GET /api/v1/orders/history - retrieves all placed
// orders split into active and past.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	response, err := s.getOrderHistoryHandler.Handle(ctx.Request().Context(), queries.NewGetOrderHistoryQuery())
	if err != nil {
		return s.respondError(ctx, err, "Failed to retrieve order history")
	}

	return ctx.JSON(http.StatusOK, OrderHistoryResponse{
		Active: toOrderResponses(response.Active),
		Past:   toOrderResponses(response.Past),
	})
}

// TrackOrder handles GET /api/v1/orders/:orderId - retrieves one order with
// its tracking timeline and minutes remaining.
func (s *Server) TrackOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return s.respondBadRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewTrackOrderQuery(orderID)
	if err != nil {
		return s.respondError(ctx, err, "Invalid tracking request")
	}

	tracking, err := s.trackOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err, "Failed to track order")
	}

	return ctx.JSON(http.StatusOK, toTrackingResponse(tracking))
}

// UpdateOrderStatus handles PUT /api/v1/orders/:orderId/status - moves an
// order forward in its lifecycle. Backward moves are rejected.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return s.respondBadRequest(ctx, "Invalid order id")
	}

	var request UpdateOrderStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return s.respondBadRequest(ctx, "Invalid request body")
	}

	status, err := order.StatusFromString(request.Status)
	if err != nil {
		return s.respondError(ctx, err, "Invalid status")
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return s.respondError(ctx, err, "Invalid status update")
	}

	if err := s.updateStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err, "Failed to update status")
	}

	return s.TrackOrder(ctx)
}

// GetDarkMode handles GET /api/v1/preferences/dark-mode.
func (s *Server) GetDarkMode(ctx echo.Context) error {
	enabled, err := s.preferences.DarkMode(ctx.Request().Context())
	if err != nil {
		return s.respondError(ctx, err, "Failed to load preferences")
	}

	return ctx.JSON(http.StatusOK, DarkModeResponse{Enabled: enabled})
}

// SetDarkMode handles PUT /api/v1/preferences/dark-mode.
func (s *Server) SetDarkMode(ctx echo.Context) error {
	var request SetDarkModeRequest
	if err := ctx.Bind(&request); err != nil {
		return s.respondBadRequest(ctx, "Invalid request body")
	}

	if err := s.preferences.SetDarkMode(ctx.Request().Context(), request.Enabled); err != nil {
		return s.respondError(ctx, err, "Failed to save preferences")
	}

	return ctx.JSON(http.StatusOK, DarkModeResponse{Enabled: request.Enabled})
}

func (s *Server) respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// respondError maps application errors to HTTP statuses: missing objects to
// 404, an empty cart at checkout to 409, validation failures to 400, and
// everything else to 500.
func (s *Server) respondError(ctx echo.Context, err error, message string) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, order.ErrCartIsEmpty):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: message + ": " + err.Error(),
	})
}
