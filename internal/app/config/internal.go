package config

type InternalConfig struct {
	App      App
	Schedule Schedule
	Sync     Sync
	Backup   Backup
	Events   Events
}

type App struct {
	Env             string
	Port            string
	ShutdownTimeout int
	// MaxRequests is the per-IP budget for the global one-second window.
	MaxRequests int
	// MutationRequests/MutationBlockSeconds drive the stricter limiter on
	// the write endpoints: exceeding the budget blocks the IP temporarily.
	MutationRequests     int
	MutationBlockSeconds int
}

// Schedule configures the fixed daily slot table shared by every day.
type Schedule struct {
	StartHour   int
	EndHour     int
	SlotMinutes int
}

type Sync struct {
	// PollIntervalSeconds is the client pull cadence and doubles as the
	// server-side snapshot cache TTL, so cached reads are never staler
	// than one polling interval.
	PollIntervalSeconds int
	HorizonDays         int
}

type Backup struct {
	Enabled      bool
	ObjectPrefix string
}

type Events struct {
	Enabled   bool
	QueueName string
}
