package requests

// SlotMutation is the PATCH /appointments body: one validated, idempotent
// single-slot set or clear.
type SlotMutation struct {
	Op   string `json:"op" validate:"required,slot_op"`
	Day  string `json:"day" validate:"required,slot_day"`
	Time string `json:"time" validate:"required,slot_time"`
	Name string `json:"name"`
}

// BulkOverwrite is the POST /appointments body. ConfirmFlag guards against
// stale clients that used to push a full snapshot unconditionally; the
// request is rejected outright unless it is exactly true.
type BulkOverwrite struct {
	ConfirmFlag bool                         `json:"confirmFlag"`
	Store       map[string]map[string]string `json:"store"`
}
