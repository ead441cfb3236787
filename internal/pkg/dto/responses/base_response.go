package responses

// Ack is the only success payload the mutation endpoints return.
type Ack struct {
	OK bool `json:"ok"`
}
