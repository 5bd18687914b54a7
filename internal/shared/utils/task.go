package utils

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// NewTask marshals payload into an asynq task of the given type
func NewTask(taskType string, payload interface{}, opts ...asynq.Option) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", taskType, err)
	}
	return asynq.NewTask(taskType, data, opts...), nil
}

// DecodeTask unmarshals the payload of t into v. Decode failures are
// wrapped with asynq.SkipRetry since retrying cannot fix them.
func DecodeTask(t *asynq.Task, v interface{}) error {
	if err := json.Unmarshal(t.Payload(), v); err != nil {
		return fmt.Errorf("unmarshal %s payload: %v: %w", t.Type(), err, asynq.SkipRetry)
	}
	return nil
}
