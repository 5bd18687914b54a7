package model

import "errors"

var (
	ErrBranchNotFound = errors.New("branch not found")
	ErrEmptyCart      = errors.New("cart is empty")
)
