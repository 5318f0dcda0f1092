package common

import (
	"encoding/json"
	"os"

	"github.com/juju/errors"
)

// AddressPrefixes holds hex encoded address prefixes overriding the network defaults.
// An empty value keeps the default prefix of the network.
type AddressPrefixes struct {
	PubKeyHash string `json:"pubkeyhash,omitempty"`
	ScriptHash string `json:"scripthash,omitempty"`
	Staking    string `json:"staking,omitempty"`
	Exchange   string `json:"exchange,omitempty"`
}

// Config struct
type Config struct {
	CoinName        string           `json:"coin_name"`
	CoinShortcut    string           `json:"coin_shortcut"`
	Network         string           `json:"network"`
	AddressPrefixes *AddressPrefixes `json:"address_prefixes,omitempty"`
}

// GetConfig loads and parses the config file and returns Config struct
func GetConfig(configFile string) (*Config, error) {
	if configFile == "" {
		return nil, errors.New("Missing blockchaincfg configuration parameter")
	}

	configFileContent, err := os.ReadFile(configFile)
	if err != nil {
		return nil, errors.Errorf("Error reading file %v, %v", configFile, err)
	}

	var cn Config
	err = json.Unmarshal(configFileContent, &cn)
	if err != nil {
		return nil, errors.Annotatef(err, "Error parsing config file ")
	}
	switch cn.Network {
	case "":
		cn.Network = "main"
	case "main", "test":
	default:
		return nil, errors.Errorf("Unknown network %q in config file %v", cn.Network, configFile)
	}
	return &cn, nil
}
