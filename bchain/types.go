package bchain

import (
	"encoding/hex"
	"errors"
)

// errors with specific meaning returned by parsers
var (
	// ErrAddressMissing is returned if address is not specified
	ErrAddressMissing = errors.New("Address missing")
)

// AddressDescriptor is an opaque type obtained by parser.GetAddrDesc* methods
type AddressDescriptor []byte

func (ad AddressDescriptor) String() string {
	return "ad:" + hex.EncodeToString(ad)
}

// AddressDescriptorFromString converts string created by AddressDescriptor.String to AddressDescriptor
func AddressDescriptorFromString(s string) (AddressDescriptor, error) {
	if len(s) > 3 && s[0:3] == "ad:" {
		return hex.DecodeString(s[3:])
	}
	return nil, errors.New("Not AddressDescriptor")
}

// AddressParser is the address descriptor part of the blockchain parser interface
type AddressParser interface {
	// address descriptor conversions
	GetAddrDescFromAddress(address string) (AddressDescriptor, error)
	GetAddressesFromAddrDesc(addrDesc AddressDescriptor) ([]string, bool, error)
	GetScriptFromAddrDesc(addrDesc AddressDescriptor) ([]byte, error)
	IsAddrDescIndexable(addrDesc AddressDescriptor) bool
}
