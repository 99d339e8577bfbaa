package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound  ErrorCode = "ACCOUNT_001"
	AccountInvalidID ErrorCode = "ACCOUNT_002"
)

// Transfer error codes (TRANSFER_*)
const (
	TransferSameAccount       ErrorCode = "TRANSFER_001"
	TransferInsufficientFunds ErrorCode = "TRANSFER_005"
	TransferInvalidAmount     ErrorCode = "TRANSFER_006"
)

// PIN error codes (PIN_*)
const (
	PinIncorrect     ErrorCode = "PIN_001"
	PinInvalidFormat ErrorCode = "PIN_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemStorageError       ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemNotFound           ErrorCode = "SYSTEM_007"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationInvalidFormat: "Invalid field format",

	// Account errors
	AccountNotFound:  "Account not found",
	AccountInvalidID: "Invalid account identifier",

	// Transfer errors
	TransferSameAccount:       "Cannot transfer to the same account",
	TransferInsufficientFunds: "Source account has insufficient balance for this transfer",
	TransferInvalidAmount:     "Invalid transfer amount",

	// PIN errors
	PinIncorrect:     "Incorrect PIN. Please try again",
	PinInvalidFormat: "PIN must be exactly 4 digits",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemStorageError:       "Balance storage error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemNotFound:           "Resource not found",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
