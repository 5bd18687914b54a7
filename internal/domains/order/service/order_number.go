package service

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"kahramana-backend/internal/domains/order/model"
)

// OrderNumberFunc returns a fresh order reference
type OrderNumberFunc func() string

// NewOrderNumberFunc builds references like "ORD-482913-5821": the prefix,
// the last six digits of the unix time in milliseconds and a random number
// in 1000..9999. They are for the customer's reference only and are not
// guaranteed unique.
func NewOrderNumberFunc(prefix string, now func() time.Time) OrderNumberFunc {
	if prefix == "" {
		prefix = model.DefaultPrefix
	}
	if now == nil {
		now = time.Now
	}
	return func() string {
		ms := strconv.FormatInt(now().UnixMilli(), 10)
		if len(ms) > 6 {
			ms = ms[len(ms)-6:]
		}
		return fmt.Sprintf("%s-%s-%d", prefix, ms, 1000+rand.Intn(9000))
	}
}
