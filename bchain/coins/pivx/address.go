package pivx

import (
	"bytes"
	"encoding/hex"
	"fmt"
)

// AddressHashLength is the length of the hash160 carried by every PIVX address
const AddressHashLength = 20

// AddressClass identifies the kind of a PIVX base58 address
type AddressClass int

const (
	// PubKeyHash is a pay to public key hash address (starting with 'D' on mainnet)
	PubKeyHash AddressClass = iota
	// ScriptHash is a pay to script hash address
	ScriptHash
	// Staking is a cold staking owner address (starting with 'S' on mainnet)
	Staking
	// Exchange is an exchange address (starting with "EXM" on mainnet),
	// outputs to it must not be funded from shielded notes
	Exchange
)

func (c AddressClass) String() string {
	switch c {
	case PubKeyHash:
		return "pubkeyhash"
	case ScriptHash:
		return "scripthash"
	case Staking:
		return "staking"
	case Exchange:
		return "exchange"
	}
	return fmt.Sprintf("AddressClass(%d)", int(c))
}

// VersionPrefix is the network specific prefix of an address payload.
// It is either a SingleBytePrefix or a MultiBytePrefix.
type VersionPrefix interface {
	// Bytes returns a copy of the prefix bytes
	Bytes() []byte
	// Len returns number of bytes of the prefix
	Len() int
	// Equal reports structural equality with another prefix
	Equal(other VersionPrefix) bool
	String() string

	versionPrefix()
}

// SingleBytePrefix is a one byte address version, as in the original base58check scheme
type SingleBytePrefix byte

// Bytes returns the prefix as a one byte slice
func (p SingleBytePrefix) Bytes() []byte {
	return []byte{byte(p)}
}

// Len always returns 1
func (p SingleBytePrefix) Len() int {
	return 1
}

// Equal returns true only for a SingleBytePrefix of the same value
func (p SingleBytePrefix) Equal(other VersionPrefix) bool {
	o, ok := other.(SingleBytePrefix)
	return ok && o == p
}

func (p SingleBytePrefix) String() string {
	return fmt.Sprintf("0x%02x", byte(p))
}

func (SingleBytePrefix) versionPrefix() {}

// MultiBytePrefix is an ordered, fixed length sequence of prefix bytes.
// The zero value is an empty prefix and is rejected by the registry and the encoder.
type MultiBytePrefix struct {
	b string
}

// NewMultiBytePrefix returns prefix holding a copy of the given bytes
func NewMultiBytePrefix(b ...byte) MultiBytePrefix {
	return MultiBytePrefix{b: string(b)}
}

// Bytes returns a copy of the prefix bytes
func (p MultiBytePrefix) Bytes() []byte {
	return []byte(p.b)
}

// Len returns number of bytes of the prefix
func (p MultiBytePrefix) Len() int {
	return len(p.b)
}

// Equal returns true for a MultiBytePrefix of the same length and content.
// A MultiBytePrefix never equals a SingleBytePrefix, even if it has length 1.
func (p MultiBytePrefix) Equal(other VersionPrefix) bool {
	o, ok := other.(MultiBytePrefix)
	return ok && o.b == p.b
}

// HasPrefixOf returns true if payload starts with the prefix bytes
func (p MultiBytePrefix) HasPrefixOf(payload []byte) bool {
	return len(p.b) > 0 && bytes.HasPrefix(payload, []byte(p.b))
}

func (p MultiBytePrefix) String() string {
	return "[" + hex.EncodeToString([]byte(p.b)) + "]"
}

func (MultiBytePrefix) versionPrefix() {}
