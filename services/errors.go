package services

import (
	"errors"
	"fmt"
)

// Service errors surfaced to controllers as distinct, recoverable conditions.
// None are retried automatically.
var (
	ErrNotFound            = errors.New("not found")
	ErrAlreadyPurchased    = errors.New("course already purchased")
	ErrAlreadyRefunded     = errors.New("purchase already refunded")
	ErrInvalidState        = errors.New("purchase is not refundable")
	ErrNotPurchasable      = errors.New("course has no points price")
	ErrInsufficientBalance = errors.New("insufficient points balance")
	ErrInvalidAmount       = errors.New("amount must be greater than zero")
)

// NotFoundError reports which entity id could not be located.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

func notFound(entity string, id uint) error {
	return &NotFoundError{Entity: entity, ID: id}
}
