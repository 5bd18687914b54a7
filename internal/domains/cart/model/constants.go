package model

// Cart business constraints
const (
	// MaxQuantity caps a single line, on merge and on explicit set
	MaxQuantity = 99
)

// Storage keys
const (
	// CacheKeyCartBySession format: "cart:session:{sessionID}"
	CacheKeyCartBySession = "cart:session:%s"

	// sizeIDFormat builds the composite line id: "{entryID}-size-{index}"
	sizeIDFormat = "%s-size-%d"
)
