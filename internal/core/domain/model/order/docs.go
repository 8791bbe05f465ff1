// Package order provides domain entities and business logic for cart and
// order management in the restaurant ordering system.
//
// The package includes:
//   - Cart: The aggregate holding cart lines, the order type, and the delivery address
//   - CartLine: One distinct (menu item, option selection) entry with a quantity
//   - Order: The aggregate root created at checkout from a cart snapshot
//   - Status: A state machine enforcing forward-only tracking transitions
//   - Receipt: Subtotal, tax, and fee totals computed from cart contents
//
// Key business rules:
//   - Cart lines are identified by (item id, canonical selection key); equal
//     keys merge into one line, and quantities never drop below one
//   - Order status follows the fixed sequence
//     Preparing -> Cooking -> Packaging -> OnTheWay -> Delivered, forward only
//   - An order's items, totals, and address are frozen at placement; only
//     status changes afterwards
//   - Tax is 8.25% of the subtotal; the delivery fee applies only to
//     non-empty delivery orders
package order
