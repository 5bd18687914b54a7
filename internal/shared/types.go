package shared

// Task types
const (
	TypeTrackCheckout     = "cart:track_checkout"
	TypeClearCart         = "cart:clear"
	TypePurgeExpiredCarts = "cart:purge_expired"
)

// Queues and their asynq priorities
const (
	QueueCritical = "critical"
	QueueDefault  = "default"
	QueueLow      = "low"
)

var QueuePriorities = map[string]int{
	QueueCritical: 6,
	QueueDefault:  3,
	QueueLow:      1,
}
