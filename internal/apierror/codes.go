package apierror

// Error type URIs following the urn:moodtracker:error:* pattern.
// These are used as the "type" field in RFC 9457 Problem Details.
const (
	// TypeValidation indicates request validation failed (400)
	TypeValidation = "urn:moodtracker:error:validation"

	// TypeNotFound indicates the requested resource was not found (404)
	TypeNotFound = "urn:moodtracker:error:not_found"

	// TypeRateLimit indicates too many requests (429)
	TypeRateLimit = "urn:moodtracker:error:rate_limit"

	// TypeUnauthorized indicates missing or invalid authentication (401)
	TypeUnauthorized = "urn:moodtracker:error:unauthorized"

	// TypeForbidden indicates insufficient permissions (403)
	TypeForbidden = "urn:moodtracker:error:forbidden"

	// TypeInternal indicates an unexpected server error (500)
	TypeInternal = "urn:moodtracker:error:internal"

	// TypeInvalidUUID indicates an invalid UUID format in request (400)
	TypeInvalidUUID = "urn:moodtracker:error:invalid_uuid"

	// TypeMalformedTime indicates a stored task time that cannot be analysed (422)
	TypeMalformedTime = "urn:moodtracker:error:malformed_time"

	// TypeBadRequest indicates a malformed or invalid request (400)
	TypeBadRequest = "urn:moodtracker:error:bad_request"
)

// Titles for each error type
const (
	TitleValidation    = "Validation Error"
	TitleNotFound      = "Resource Not Found"
	TitleRateLimit     = "Rate Limit Exceeded"
	TitleUnauthorized  = "Authentication Required"
	TitleForbidden     = "Permission Denied"
	TitleInternal      = "Internal Server Error"
	TitleInvalidUUID   = "Invalid UUID Format"
	TitleMalformedTime = "Malformed Task Time"
	TitleBadRequest    = "Bad Request"
)
