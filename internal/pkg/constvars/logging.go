package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
	LoggingDayKey        = "day"
	LoggingTimeKey       = "time"
	LoggingOpKey         = "op"
	LoggingSlotCountKey  = "slot_count"
	LoggingRedisKey      = "redis_key"
	LoggingQueueKey      = "queue"
	LoggingObjectNameKey = "object_name"
)
