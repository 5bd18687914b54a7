package model

import "errors"

var (
	ErrInvalidDocument = errors.New("menu document is not a JSON object")
	ErrEntryNotFound   = errors.New("menu entry not found")
	ErrMenuNotLoaded   = errors.New("menu not loaded")
	ErrInvalidSheet    = errors.New("menu sheet is missing required columns")
	ErrUnknownSource   = errors.New("unknown menu source")
)
