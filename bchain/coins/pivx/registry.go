package pivx

import (
	"github.com/juju/errors"
)

// PrefixEntry binds an address class to its version prefix
type PrefixEntry struct {
	Class  AddressClass
	Prefix VersionPrefix
}

// PrefixRegistry is the immutable, ordered table of address prefixes of a network.
// Entries are matched in the order they were registered, which must be by
// decreasing prefix length, so that a multi byte prefix is always tested
// before a single byte prefix equal to its first byte.
type PrefixRegistry struct {
	entries []PrefixEntry
}

// address prefixes of PIVX networks
var (
	MainNetPrefixes = mustPrefixRegistry(
		PrefixEntry{Exchange, NewMultiBytePrefix(0x01, 0xb9, 0xa2)}, // EXM
		PrefixEntry{PubKeyHash, SingleBytePrefix(30)},               // D
		PrefixEntry{ScriptHash, SingleBytePrefix(13)},
		PrefixEntry{Staking, SingleBytePrefix(63)}, // S
	)
	TestNetPrefixes = mustPrefixRegistry(
		PrefixEntry{Exchange, NewMultiBytePrefix(0x01, 0xb9, 0xb1)}, // EXT
		PrefixEntry{PubKeyHash, SingleBytePrefix(139)},              // x or y
		PrefixEntry{ScriptHash, SingleBytePrefix(19)},
		PrefixEntry{Staking, SingleBytePrefix(73)}, // W
	)
)

var allClasses = []AddressClass{PubKeyHash, ScriptHash, Staking, Exchange}

func mustPrefixRegistry(entries ...PrefixEntry) *PrefixRegistry {
	r, err := NewPrefixRegistry(entries...)
	if err != nil {
		panic(err)
	}
	return r
}

// NewPrefixRegistry validates the entries and returns a registry matching them in the given order.
// Every address class must be registered exactly once, prefixes must be distinct
// and listed by decreasing length.
func NewPrefixRegistry(entries ...PrefixEntry) (*PrefixRegistry, error) {
	seen := make(map[AddressClass]bool, len(entries))
	r := &PrefixRegistry{entries: make([]PrefixEntry, 0, len(entries))}
	for i, e := range entries {
		if e.Class < PubKeyHash || e.Class > Exchange {
			return nil, errors.Errorf("prefix entry %d: unknown address class %v", i, e.Class)
		}
		if seen[e.Class] {
			return nil, errors.Errorf("prefix entry %d: address class %v registered twice", i, e.Class)
		}
		seen[e.Class] = true
		switch p := e.Prefix.(type) {
		case SingleBytePrefix:
		case MultiBytePrefix:
			if p.Len() < 2 {
				return nil, errors.Errorf("prefix entry %d: multi byte prefix %v of class %v shorter than 2 bytes", i, p, e.Class)
			}
		default:
			return nil, errors.Errorf("prefix entry %d: missing prefix of class %v", i, e.Class)
		}
		for _, prev := range r.entries {
			if prev.Prefix.Equal(e.Prefix) {
				return nil, errors.Errorf("prefix entry %d: prefix %v of class %v already used by class %v", i, e.Prefix, e.Class, prev.Class)
			}
			if prev.Prefix.Len() < e.Prefix.Len() {
				return nil, errors.Errorf("prefix entry %d: prefix %v of class %v must be registered before shorter prefix %v", i, e.Prefix, e.Class, prev.Prefix)
			}
		}
		r.entries = append(r.entries, e)
	}
	for _, c := range allClasses {
		if !seen[c] {
			return nil, errors.Errorf("missing prefix of class %v", c)
		}
	}
	return r, nil
}

// Entries returns a copy of the registered entries in matching order
func (r *PrefixRegistry) Entries() []PrefixEntry {
	e := make([]PrefixEntry, len(r.entries))
	copy(e, r.entries)
	return e
}

// Prefix returns the version prefix registered for the class
func (r *PrefixRegistry) Prefix(class AddressClass) (VersionPrefix, bool) {
	for _, e := range r.entries {
		if e.Class == class {
			return e.Prefix, true
		}
	}
	return nil, false
}

// Match resolves the class and prefix of a base58check decoded payload and returns
// the bytes following the prefix. The returned hash shares memory with the payload.
// Its length is not validated here beyond the minimum of AddressHashLength bytes.
func (r *PrefixRegistry) Match(payload []byte) (AddressClass, VersionPrefix, []byte, error) {
	// multi byte prefixes first, their first byte may collide with a single byte prefix
	for _, e := range r.entries {
		p, ok := e.Prefix.(MultiBytePrefix)
		if !ok {
			continue
		}
		if len(payload) >= p.Len()+AddressHashLength && p.HasPrefixOf(payload) {
			return e.Class, p, payload[p.Len():], nil
		}
	}
	if len(payload) < 1+AddressHashLength {
		return 0, nil, nil, ErrPayloadTooShort
	}
	for _, e := range r.entries {
		p, ok := e.Prefix.(SingleBytePrefix)
		if !ok {
			continue
		}
		if payload[0] == byte(p) {
			return e.Class, p, payload[1:], nil
		}
	}
	return 0, nil, nil, UnknownPrefixError(payload[0])
}
