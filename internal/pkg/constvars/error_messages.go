package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":  "is required",
	"oneof":     "must be one of [%s]",
	"slot_day":  "must be a calendar date in YYYY-MM-DD form",
	"slot_time": "must be a clock value in HH:MM form",
	"slot_op":   "must be either 'set' or 'clear'",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "cannot process request, please check your request"
	ErrClientSomethingWrongWithApplication = "something is wrong with the application, please contact the administrator"
	ErrClientTimeOutsideSchedule           = "time is outside the bookable daily schedule"
	ErrClientOverwriteNotConfirmed         = "full overwrite requires explicit confirmation"
	ErrClientStoreMissing                  = "store payload is missing or malformed"
	ErrClientServerLongRespond             = "server takes too long to respond"
)

// Error messages for developers
const (
	ErrDevValidationFailed        = "Request validation failed"
	ErrDevCannotParseJSON         = "Failed to parse JSON request body"
	ErrDevTimeOutsideSchedule     = "Requested time label is not part of the configured daily schedule"
	ErrDevOverwriteNotConfirmed   = "Bulk overwrite request arrived without the confirmation flag"
	ErrDevStoreMissing            = "Bulk overwrite request carries no store snapshot"
	ErrDevServerDeadlineExceeded  = "Server deadline exceeded"
	ErrDevServerProcess           = "Server failed to process the request"
	ErrDevDBFailedToFindDocument  = "MongoDB failed to find document(s)"
	ErrDevDBFailedToIterateDocs   = "MongoDB failed to iterate documents"
	ErrDevDBFailedToUpsertDoc     = "MongoDB failed to upsert document"
	ErrDevDBFailedToInsertDoc     = "MongoDB failed to insert document(s)"
	ErrDevDBFailedToDeleteDoc     = "MongoDB failed to delete document(s)"
	ErrDevDBFailedToEnsureIndexes = "MongoDB failed to ensure collection indexes"
	ErrDevRedisGetData            = "Redis failed to get data"
	ErrDevRedisSetData            = "Redis failed to set data"
	ErrDevRedisDeleteData         = "Redis failed to delete data"
	ErrDevCannotMarshalJSON       = "Failed to marshal data into JSON"
	ErrDevMinioCreateObject       = "Minio failed to create object in bucket: %s"
	ErrDevRabbitMQPublishMessage  = "RabbitMQ failed to publish message to queue: %s"
)
