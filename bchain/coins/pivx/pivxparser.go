package pivx

import (
	"encoding/hex"
	"sort"

	"github.com/golang/glog"
	"github.com/juju/errors"
	"github.com/martinboehm/btcd/wire"
	"github.com/martinboehm/btcutil/chaincfg"
	"github.com/martinboehm/btcutil/txscript"
	"github.com/trezor/pivxaddr/bchain"
	"github.com/trezor/pivxaddr/common"
)

// magic numbers
const (
	MainnetMagic wire.BitcoinNet = 0xe9fdc490
	TestnetMagic wire.BitcoinNet = 0xba657645

	// Zerocoin op codes
	OP_ZEROCOINMINT  = 0xc1
	OP_ZEROCOINSPEND = 0xc2
)

// chain parameters
var (
	MainNetParams chaincfg.Params
	TestNetParams chaincfg.Params
)

func init() {
	// PIVX mainnet Address encoding magics
	MainNetParams = chaincfg.MainNetParams
	MainNetParams.Net = MainnetMagic
	MainNetParams.PubKeyHashAddrID = singleBytePrefixID(MainNetPrefixes, PubKeyHash) // starting with 'D'
	MainNetParams.ScriptHashAddrID = singleBytePrefixID(MainNetPrefixes, ScriptHash)
	MainNetParams.PrivateKeyID = []byte{212}

	// PIVX testnet Address encoding magics
	TestNetParams = chaincfg.TestNet3Params
	TestNetParams.Net = TestnetMagic
	TestNetParams.PubKeyHashAddrID = singleBytePrefixID(TestNetPrefixes, PubKeyHash) // starting with 'x' or 'y'
	TestNetParams.ScriptHashAddrID = singleBytePrefixID(TestNetPrefixes, ScriptHash)
	TestNetParams.PrivateKeyID = []byte{239}
}

func singleBytePrefixID(r *PrefixRegistry, class AddressClass) []byte {
	p, _ := r.Prefix(class)
	return p.Bytes()
}

// PivXParser handle
type PivXParser struct {
	Params   *chaincfg.Params
	Prefixes *PrefixRegistry
	metrics  *common.Metrics
}

var _ bchain.AddressParser = (*PivXParser)(nil)

// NewPivXParser returns new PivXParser instance, metrics may be nil
func NewPivXParser(params *chaincfg.Params, prefixes *PrefixRegistry, metrics *common.Metrics) *PivXParser {
	return &PivXParser{
		Params:   params,
		Prefixes: prefixes,
		metrics:  metrics,
	}
}

// NewPivXParserFromConfig returns PivXParser for the network and address prefixes of the config
func NewPivXParserFromConfig(c *common.Config, metrics *common.Metrics) (*PivXParser, error) {
	prefixes, err := PrefixRegistryFromConfig(c)
	if err != nil {
		return nil, err
	}
	return NewPivXParser(paramsWithPrefixes(GetChainParams(c.Network), prefixes), prefixes, metrics), nil
}

// paramsWithPrefixes returns a copy of params with the address IDs taken from the registry
func paramsWithPrefixes(params *chaincfg.Params, prefixes *PrefixRegistry) *chaincfg.Params {
	p := *params
	p.PubKeyHashAddrID = singleBytePrefixID(prefixes, PubKeyHash)
	p.ScriptHashAddrID = singleBytePrefixID(prefixes, ScriptHash)
	return &p
}

// GetChainParams contains network parameters for the main PivX network
func GetChainParams(chain string) *chaincfg.Params {
	if !chaincfg.IsRegistered(&MainNetParams) {
		err := chaincfg.Register(&MainNetParams)
		if err == nil {
			err = chaincfg.Register(&TestNetParams)
		}
		if err != nil {
			panic(err)
		}
	}
	switch chain {
	case "test":
		return &TestNetParams
	default:
		return &MainNetParams
	}
}

// GetPrefixRegistry returns the address prefixes of the PivX network
func GetPrefixRegistry(chain string) *PrefixRegistry {
	switch chain {
	case "test":
		return TestNetPrefixes
	default:
		return MainNetPrefixes
	}
}

// PrefixRegistryFromConfig returns the prefixes of the configured network
// with the slots set in config's address_prefixes replaced
func PrefixRegistryFromConfig(c *common.Config) (*PrefixRegistry, error) {
	base := GetPrefixRegistry(c.Network)
	if c.AddressPrefixes == nil {
		return base, nil
	}
	overrides := map[AddressClass]string{
		PubKeyHash: c.AddressPrefixes.PubKeyHash,
		ScriptHash: c.AddressPrefixes.ScriptHash,
		Staking:    c.AddressPrefixes.Staking,
		Exchange:   c.AddressPrefixes.Exchange,
	}
	entries := base.Entries()
	for i := range entries {
		s := overrides[entries[i].Class]
		if s == "" {
			continue
		}
		b, err := hex.DecodeString(s)
		if err != nil {
			return nil, errors.Annotatef(err, "address prefix %v", entries[i].Class)
		}
		switch len(b) {
		case 0:
			return nil, errors.Errorf("address prefix %v is empty", entries[i].Class)
		case 1:
			entries[i].Prefix = SingleBytePrefix(b[0])
		default:
			entries[i].Prefix = NewMultiBytePrefix(b...)
		}
		glog.Warningf("%s: address prefix %v overridden by config to %v", c.CoinName, entries[i].Class, entries[i].Prefix)
	}
	// keep the registry invariant of decreasing prefix lengths
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Prefix.Len() > entries[j].Prefix.Len()
	})
	r, err := NewPrefixRegistry(entries...)
	if err != nil {
		return nil, errors.Annotatef(err, "address_prefixes")
	}
	return r, nil
}

func (p *PivXParser) countDecode(class string, err error) {
	if p.metrics == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "failure"
	}
	p.metrics.AddressDecodes.With(common.Labels{"network": p.Params.Name, "class": class, "status": status}).Inc()
}

func (p *PivXParser) countEncode(class AddressClass, err error) {
	if p.metrics == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "failure"
	}
	p.metrics.AddressEncodes.With(common.Labels{"network": p.Params.Name, "class": class.String(), "status": status}).Inc()
}

// DecodeAddress decodes and classifies the address using the parser's prefixes
func (p *PivXParser) DecodeAddress(address string) (*ParsedAddress, error) {
	a, err := DecodeAddress(address, p.Prefixes)
	if err != nil {
		glog.V(1).Info(p.Params.Name, ": cannot decode address ", address, ": ", err)
		p.countDecode("unknown", err)
		return nil, errors.Annotatef(err, "address %v", address)
	}
	p.countDecode(a.Class.String(), nil)
	return a, nil
}

// EncodeAddress returns the address of given class for the hash
func (p *PivXParser) EncodeAddress(hash []byte, class AddressClass) (string, error) {
	var s string
	var err error
	switch class {
	case Exchange:
		s, err = EncodeExchangeAddress(hash, p.Prefixes)
	case Staking:
		s, err = EncodeStakingAddress(hash, p.Prefixes)
	default:
		prefix, ok := p.Prefixes.Prefix(class)
		if !ok {
			err = UnsupportedAddressClassError(class)
			break
		}
		s, err = EncodeAddress(hash, prefix)
	}
	p.countEncode(class, err)
	if err != nil {
		return "", errors.Annotatef(err, "encode %v address", class)
	}
	return s, nil
}

// GetAddrDescFromAddress returns internal address representation (descriptor) of given address
func (p *PivXParser) GetAddrDescFromAddress(address string) (bchain.AddressDescriptor, error) {
	if address == "" {
		return nil, bchain.ErrAddressMissing
	}
	a, err := p.DecodeAddress(address)
	if err != nil {
		return nil, err
	}
	script, err := OutputScript(a)
	if err != nil {
		return nil, errors.Annotatef(err, "address %v", address)
	}
	ad := bchain.AddressDescriptor(script)
	glog.V(2).Info(p.Params.Name, ": address ", address, " ", a.Class, " ", ad)
	return ad, nil
}

// GetAddressesFromAddrDesc returns addresses for given address descriptor with flag if the addresses are searchable
func (p *PivXParser) GetAddressesFromAddrDesc(addrDesc bchain.AddressDescriptor) ([]string, bool, error) {
	return p.outputScriptToAddresses(addrDesc)
}

// GetScriptFromAddrDesc returns output script for given address descriptor
func (p *PivXParser) GetScriptFromAddrDesc(addrDesc bchain.AddressDescriptor) ([]byte, error) {
	return addrDesc, nil
}

// IsAddrDescIndexable returns true if AddressDescriptor should be added to index
// empty or OP_RETURN scripts are not indexed
func (p *PivXParser) IsAddrDescIndexable(addrDesc bchain.AddressDescriptor) bool {
	if len(addrDesc) == 0 || addrDesc[0] == txscript.OP_RETURN {
		return false
	}
	return true
}

// outputScriptToAddresses converts ScriptPubKey to PIVX addresses
func (p *PivXParser) outputScriptToAddresses(script []byte) ([]string, bool, error) {
	if isZeroCoinSpendScript(script) {
		return []string{"Zerocoin Spend"}, false, nil
	}
	if isZeroCoinMintScript(script) {
		return []string{"Zerocoin Mint"}, false, nil
	}
	a, ok := OutputScriptToAddress(script, p.Prefixes)
	if !ok {
		return []string{}, false, nil
	}
	s, err := EncodeAddress(a.Hash, a.Prefix)
	if err != nil {
		return nil, false, err
	}
	return []string{s}, true, nil
}

// Checks if script is OP_ZEROCOINMINT
func isZeroCoinMintScript(signatureScript []byte) bool {
	return len(signatureScript) > 1 && signatureScript[0] == OP_ZEROCOINMINT
}

// Checks if script is OP_ZEROCOINSPEND
func isZeroCoinSpendScript(signatureScript []byte) bool {
	return len(signatureScript) >= 100 && signatureScript[0] == OP_ZEROCOINSPEND
}
