package pivx

import (
	"github.com/martinboehm/btcutil/txscript"
)

// OP_EXCHANGEADDR marks an output to an exchange address, such output cannot be funded by a shielded spend
const OP_EXCHANGEADDR = 0xe0

// payToPubKeyHashScript returns DUP HASH160 <hash> EQUALVERIFY CHECKSIG
func payToPubKeyHashScript(b *txscript.ScriptBuilder, hash []byte) *txscript.ScriptBuilder {
	return b.AddOp(txscript.OP_DUP).AddOp(txscript.OP_HASH160).
		AddData(hash).AddOp(txscript.OP_EQUALVERIFY).AddOp(txscript.OP_CHECKSIG)
}

// OutputScript returns the output script paying to the address
func OutputScript(a *ParsedAddress) ([]byte, error) {
	if len(a.Hash) != AddressHashLength {
		return nil, newInvalidHashLengthError(len(a.Hash))
	}
	b := txscript.NewScriptBuilder()
	switch a.Class {
	case PubKeyHash, Staking:
		payToPubKeyHashScript(b, a.Hash)
	case ScriptHash:
		b.AddOp(txscript.OP_HASH160).AddData(a.Hash).AddOp(txscript.OP_EQUAL)
	case Exchange:
		payToPubKeyHashScript(b.AddOp(OP_EXCHANGEADDR), a.Hash)
	default:
		return nil, UnsupportedAddressClassError(a.Class)
	}
	return b.Script()
}

// AddressToOutputScript decodes the address and returns the output script paying to it
func AddressToOutputScript(address string, registry *PrefixRegistry) ([]byte, error) {
	a, err := DecodeAddress(address, registry)
	if err != nil {
		return nil, err
	}
	return OutputScript(a)
}

func isPayToPubKeyHash(script []byte) bool {
	return len(script) == 25 &&
		script[0] == txscript.OP_DUP &&
		script[1] == txscript.OP_HASH160 &&
		script[2] == txscript.OP_DATA_20 &&
		script[23] == txscript.OP_EQUALVERIFY &&
		script[24] == txscript.OP_CHECKSIG
}

func isPayToScriptHash(script []byte) bool {
	return len(script) == 23 &&
		script[0] == txscript.OP_HASH160 &&
		script[1] == txscript.OP_DATA_20 &&
		script[22] == txscript.OP_EQUAL
}

func isPayToExchangeAddress(script []byte) bool {
	return len(script) == 26 && script[0] == OP_EXCHANGEADDR && isPayToPubKeyHash(script[1:])
}

// OutputScriptToAddress returns the address paid by the output script.
// Staking addresses share the P2PKH script and are returned as PubKeyHash addresses.
// The second return value is false if the script does not pay to a base58 address.
func OutputScriptToAddress(script []byte, registry *PrefixRegistry) (*ParsedAddress, bool) {
	var class AddressClass
	var hash []byte
	switch {
	case isPayToExchangeAddress(script):
		class, hash = Exchange, script[4:24]
	case isPayToPubKeyHash(script):
		class, hash = PubKeyHash, script[3:23]
	case isPayToScriptHash(script):
		class, hash = ScriptHash, script[2:22]
	default:
		return nil, false
	}
	prefix, ok := registry.Prefix(class)
	if !ok {
		return nil, false
	}
	h := make([]byte, AddressHashLength)
	copy(h, hash)
	return &ParsedAddress{Class: class, Prefix: prefix, Hash: h}, true
}
