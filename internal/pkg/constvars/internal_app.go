package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "request_id"
)

const (
	ResourceAppointments = "appointments"
)

const (
	MongoCollectionAppointments = "appointments"
)

const (
	RedisKeyStoreSnapshot = "TRIMLINE:STORE:SNAPSHOT"
)

const (
	MutationOpSet   = "set"
	MutationOpClear = "clear"
)

const (
	EventSlotSet        = "slot.set"
	EventSlotCleared    = "slot.cleared"
	EventStoreOverwrite = "store.overwritten"
)
