package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"wallet-watch/internal/models"
)

// Legacy (P2PKH/P2SH) or bech32 segwit. Checksums are not verified, so a
// malformed string that fits the pattern is accepted.
var bitcoinRegex = regexp.MustCompile(`^(?:[13][a-km-zA-HJ-NP-Z1-9]{26,33}|bc1[a-z0-9]{39,59})$`)

// ValidateAddress validates a blockchain address format
func ValidateAddress(address string, chain models.Chain) error {
	if address == "" {
		return errors.New("address cannot be empty")
	}

	switch chain {
	case models.Bitcoin:
		if !IsValidBtcAddress(address) {
			return fmt.Errorf("invalid Bitcoin address format: %s", address)
		}
	case models.Ethereum:
		if !IsValidEthAddress(address) {
			return fmt.Errorf("invalid Ethereum address format: %s", address)
		}
	default:
		return fmt.Errorf("unsupported chain: %s", chain)
	}

	return nil
}

func IsValidBtcAddress(address string) bool {
	return bitcoinRegex.MatchString(address)
}

// IsValidEthAddress accepts 40 hex characters with an optional 0x prefix.
// Mixed-case input must carry a valid EIP-55 checksum.
func IsValidEthAddress(address string) bool {
	if !common.IsHexAddress(address) {
		return false
	}

	hex := strings.TrimPrefix(strings.TrimPrefix(address, "0x"), "0X")
	if hex == strings.ToLower(hex) || hex == strings.ToUpper(hex) {
		return true
	}

	return common.HexToAddress(hex).Hex()[2:] == hex
}

// NormalizeEthAddress returns the lowercase 0x-prefixed form of address.
func NormalizeEthAddress(address string) string {
	return strings.ToLower(common.HexToAddress(address).Hex())
}
