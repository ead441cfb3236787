package contracts

import "context"

// MutationEvent describes one accepted write for downstream consumers (audit
// trail). Events are not a client sync channel; clients converge by polling.
type MutationEvent struct {
	Kind string `json:"kind"`
	Day  string `json:"day,omitempty"`
	Time string `json:"time,omitempty"`
	Name string `json:"name,omitempty"`
}

type MutationPublisher interface {
	PublishMutation(ctx context.Context, event MutationEvent) error
}
