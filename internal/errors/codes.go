package errors

// ErrorCode represents a standardized error code used throughout the pipeline
type ErrorCode string

// Ingestion error codes (INGEST_*)
const (
	IngestMissingFile     ErrorCode = "INGEST_001"
	IngestMalformedRecord ErrorCode = "INGEST_002"
	IngestBadEncoding     ErrorCode = "INGEST_003"
	IngestMissingColumn   ErrorCode = "INGEST_004"
)

// Store error codes (STORE_*)
const (
	StoreConnectionFailed ErrorCode = "STORE_001"
	StoreWriteFailed      ErrorCode = "STORE_002"
	StoreQueryFailed      ErrorCode = "STORE_003"
)

// Parse error codes (PARSE_*)
const (
	ParseInvalidDate       ErrorCode = "PARSE_001"
	ParseInvalidNumber     ErrorCode = "PARSE_002"
	ParseInvalidCustomerID ErrorCode = "PARSE_003"
)

// System error codes (SYSTEM_*)
const (
	SystemConfigurationError ErrorCode = "SYSTEM_001"
	SystemUnexpectedError    ErrorCode = "SYSTEM_002"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	IngestMissingFile:     "Input file is missing or unreadable",
	IngestMalformedRecord: "Input record is malformed",
	IngestBadEncoding:     "Input file contains undecodable bytes",
	IngestMissingColumn:   "Input file is missing a required column",

	StoreConnectionFailed: "Record store connection failed",
	StoreWriteFailed:      "Record store write failed",
	StoreQueryFailed:      "Record store query failed",

	ParseInvalidDate:       "Invoice date could not be parsed",
	ParseInvalidNumber:     "Numeric field could not be parsed",
	ParseInvalidCustomerID: "Customer identifier could not be parsed",

	SystemConfigurationError: "Invalid configuration",
	SystemUnexpectedError:    "An unexpected error occurred",
}

// GetErrorMessage returns the default message for an error code
func GetErrorMessage(code ErrorCode) string {
	if message, exists := errorMessages[code]; exists {
		return message
	}
	return errorMessages[SystemUnexpectedError]
}

// IsValidErrorCode checks if the error code is a known pipeline code
func IsValidErrorCode(code ErrorCode) bool {
	_, exists := errorMessages[code]
	return exists
}
