package pivx

import (
	"errors"
	"fmt"
)

var (
	// ErrPayloadTooShort describes a decoded payload that can hold neither a
	// registered multi byte prefix nor a single byte prefix followed by the hash
	ErrPayloadTooShort = errors.New("address payload too short")

	// ErrEmptyPrefix is returned when encoding with an empty version prefix
	ErrEmptyPrefix = errors.New("empty version prefix")

	// ErrShortMultiBytePrefix is returned when encoding with a multi byte prefix of a single byte,
	// such address would decode with a single byte prefix
	ErrShortMultiBytePrefix = errors.New("multi byte version prefix shorter than 2 bytes")
)

// UnknownPrefixError describes a payload whose leading bytes match no registered prefix.
// The value is the first byte of the payload.
type UnknownPrefixError byte

func (e UnknownPrefixError) Error() string {
	return fmt.Sprintf("unknown address prefix: 0x%02x", byte(e))
}

// InvalidHashLengthError describes an address hash of a length other than AddressHashLength
type InvalidHashLengthError struct {
	Expected int
	Actual   int
}

func (e *InvalidHashLengthError) Error() string {
	return fmt.Sprintf("invalid address hash length: %d bytes vs required %d bytes", e.Actual, e.Expected)
}

func newInvalidHashLengthError(actual int) *InvalidHashLengthError {
	return &InvalidHashLengthError{Expected: AddressHashLength, Actual: actual}
}

// UnsupportedAddressClassError is returned when an address class has no output script
type UnsupportedAddressClassError AddressClass

func (e UnsupportedAddressClassError) Error() string {
	return fmt.Sprintf("unsupported address class: %v", AddressClass(e))
}
