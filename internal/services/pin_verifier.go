package services

import (
	"errors"
	"regexp"
)

// TransferPin is the fixed PIN that authorises a transfer
const TransferPin = "0000"

var (
	ErrIncorrectPin     = errors.New("incorrect PIN")
	ErrInvalidPinFormat = errors.New("PIN must be exactly 4 digits")
)

var pinPattern = regexp.MustCompile(`^[0-9]{4}$`)

type pinVerifier struct {
	pin string
}

// NewPinVerifier creates a verifier for the fixed transfer PIN.
// There is no attempt counter or lockout.
func NewPinVerifier() PinVerifierInterface {
	return &pinVerifier{pin: TransferPin}
}

// Verify compares pin against the expected value by exact string equality
func (v *pinVerifier) Verify(pin string) error {
	if !pinPattern.MatchString(pin) {
		return ErrInvalidPinFormat
	}

	if pin != v.pin {
		return ErrIncorrectPin
	}

	return nil
}
