package model

import "errors"

var (
	ErrSizeSelectionRequired = errors.New("size selection required")
	ErrCorruptCart           = errors.New("stored cart is corrupt")
	ErrCartNotFound          = errors.New("cart not found in storage")
)
