package store

import "errors"

var (
	// ErrNotFound is returned when the referenced row does not exist
	ErrNotFound = errors.New("record not found")

	// ErrInsufficientStock is returned when an order or adjustment would
	// drive a product's stock below zero
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrInvalidTransition is returned for order status changes outside
	// the allowed transition table
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrProductReferenced is returned when deleting a product that
	// existing order items still reference
	ErrProductReferenced = errors.New("product is referenced by order items")

	// ErrEmptyOrder is returned when an order is submitted without items
	ErrEmptyOrder = errors.New("order has no items")
)
