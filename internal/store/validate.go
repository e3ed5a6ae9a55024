package store

import (
	"errors"
	"strconv"
	"strings"
)

// QuantityErrorMessage is shown inline while the quantity draft is not a number.
const QuantityErrorMessage = "Quantity must be a number!"

var (
	ErrBlankName       = errors.New("item name is blank")
	ErrBlankQuantity   = errors.New("item quantity is blank")
	ErrInvalidQuantity = errors.New("item quantity must be a positive integer")
)

// ValidateQuantity returns the inline error for raw quantity text, or nil.
// Empty text is valid here; AddItem separately rejects blank quantities.
func ValidateQuantity(text string) *string {
	if text == "" {
		return nil
	}
	if _, err := strconv.Atoi(text); err != nil {
		msg := QuantityErrorMessage
		return &msg
	}
	return nil
}

// EditedQuantity converts inline-editor text to a quantity, falling back
// to 1 when the text is empty or not an integer.
func EditedQuantity(text string) int {
	n, err := strconv.Atoi(text)
	if err != nil {
		return 1
	}
	return n
}

// parseNewItem checks the AddItem preconditions and returns the quantity.
func parseNewItem(name, quantityText string) (int, error) {
	if strings.TrimSpace(name) == "" {
		return 0, ErrBlankName
	}
	if strings.TrimSpace(quantityText) == "" {
		return 0, ErrBlankQuantity
	}
	n, err := strconv.Atoi(quantityText)
	if err != nil || n <= 0 {
		return 0, ErrInvalidQuantity
	}
	return n, nil
}
