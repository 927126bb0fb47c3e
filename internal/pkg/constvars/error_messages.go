package constvars

// Validation messages mapper. The wording mirrors what API consumers already
// rely on for field-level errors (e.g. "email must be an email").
var CustomValidationErrorMessages = map[string]string{
	"required": "should not be empty",
	"email":    "must be an email",
	"uuid":     "must be a UUID",
	"uuid4":    "must be a UUID",
	"datetime": "must be a valid ISO 8601 date string",
	"oneof":    "must be one of the following values: %s",
	"br_phone": "must be a valid phone number",
	"numeric":  "must be a number",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lt":       "must be less than %s",
	"lte":      "must be less than or equal to %s",
	"url":      "must be a valid URL",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientPatientNotFound               = "Patient with ID: '%s' not found"
	ErrClientScheduleNotFound              = "Schedule with ID: '%s' not found"
	ErrClientScheduleDateTaken             = "Schedule could not be %s, already exists a schedule for same date."
)

// Error messages for developers
const (
	ErrDevInvalidInput              = "invalid input"
	ErrDevCannotParseJSON           = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON         = "cannot convert struct or other data types to JSON"
	ErrDevServerDeadlineExceeded    = "server process exceeds the given deadline"
	ErrDevServerProcess             = "something wrong while processing the request"
	ErrDevValidationFailed          = "validation failed"
	ErrDevURLParamIDValidation      = "parameter %s validation failed"
	ErrDevPatientNotFound           = "patient not found in the database"
	ErrDevScheduleNotFound          = "schedule not found in the database"
	ErrDevScheduleDateAlreadyBooked = "a schedule already exists for the requested date"

	// Postgres
	ErrDevDBFailedToFindData    = "failed to find data from postgres"
	ErrDevDBFailedToInsertData  = "failed to insert data into postgres"
	ErrDevDBFailedToUpdateData  = "failed to update data in postgres"
	ErrDevDBFailedToDeleteData  = "failed to delete data from postgres"
	ErrDevDBFailedToIterateData = "failed to iterate dataset from postgres"
)
