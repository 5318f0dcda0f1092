package pivx

import (
	"github.com/btcsuite/btcutil/base58"
)

// ParsedAddress is a decoded PIVX address
type ParsedAddress struct {
	Class  AddressClass
	Prefix VersionPrefix
	Hash   []byte
}

// checkDecode returns the whole base58check payload including the version bytes.
// base58 treats only the first byte as version, the rest of a multi byte prefix stays in the result.
func checkDecode(address string) ([]byte, error) {
	result, version, err := base58.CheckDecode(address)
	if err != nil {
		return nil, err
	}
	payload := make([]byte, 0, len(result)+1)
	payload = append(payload, version)
	return append(payload, result...), nil
}

// checkEncode is the inverse of checkDecode, payload must not be empty
func checkEncode(payload []byte) string {
	return base58.CheckEncode(payload[1:], payload[0])
}

// DecodeAddress decodes base58check address and classifies it using the registry
func DecodeAddress(address string, registry *PrefixRegistry) (*ParsedAddress, error) {
	payload, err := checkDecode(address)
	if err != nil {
		return nil, err
	}
	class, prefix, hash, err := registry.Match(payload)
	if err != nil {
		return nil, err
	}
	if len(hash) != AddressHashLength {
		return nil, newInvalidHashLengthError(len(hash))
	}
	return &ParsedAddress{
		Class:  class,
		Prefix: prefix,
		Hash:   hash,
	}, nil
}

// EncodeAddress returns base58check encoding of the prefix followed by the hash
func EncodeAddress(hash []byte, prefix VersionPrefix) (string, error) {
	if len(hash) != AddressHashLength {
		return "", newInvalidHashLengthError(len(hash))
	}
	if prefix == nil || prefix.Len() == 0 {
		return "", ErrEmptyPrefix
	}
	if m, ok := prefix.(MultiBytePrefix); ok && m.Len() < 2 {
		return "", ErrShortMultiBytePrefix
	}
	payload := make([]byte, 0, prefix.Len()+len(hash))
	payload = append(payload, prefix.Bytes()...)
	payload = append(payload, hash...)
	return checkEncode(payload), nil
}

// EncodeExchangeAddress returns exchange address of the hash
func EncodeExchangeAddress(hash []byte, registry *PrefixRegistry) (string, error) {
	return encodeClassAddress(hash, Exchange, registry)
}

// EncodeStakingAddress returns staking address of the hash
func EncodeStakingAddress(hash []byte, registry *PrefixRegistry) (string, error) {
	return encodeClassAddress(hash, Staking, registry)
}

func encodeClassAddress(hash []byte, class AddressClass, registry *PrefixRegistry) (string, error) {
	prefix, ok := registry.Prefix(class)
	if !ok {
		return "", UnsupportedAddressClassError(class)
	}
	return EncodeAddress(hash, prefix)
}

// String returns the base58check encoding of the address
func (a *ParsedAddress) String() string {
	s, err := EncodeAddress(a.Hash, a.Prefix)
	if err != nil {
		return ""
	}
	return s
}
