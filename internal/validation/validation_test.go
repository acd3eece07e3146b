package validation

import (
	"testing"

	"wallet-watch/internal/models"
)

func TestIsValidBtcAddress(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    bool
	}{
		{"p2sh", "34xp4vRoCGJym3xR7yCVPFHoCNxv4Twseo", true},
		{"p2pkh", "1FeexV6bAHb8ybZjqQMjJrcCrHGW9sb6uF", true},
		{"segwit short", "bc1qazcm763858nkj2dj986etajv6wquslv8uxwczt", true},
		{"segwit long", "bc1qgdjqv0av3q56jvd82tkdjpy7gdp9ut8tlqmgrpmv24sq90ecnvqqjwvw97", true},
		{"too long legacy", "3gtdmotoimp4vRoCGJym3xR7yCVPFHoCNxv4Twseo", false},
		{"too long legacy 2", "3LQUu4v9z6KNchfenkvn71j7kbj8GPeAGUo1FW6a", false},
		{"bad prefix", "24xp4vRoCGJym3xR7yCVPFHoCNxv4Twseo", false},
		{"excluded base58 char", "34xp4vRoCGJym3xR7yCVPFHoCNxv4Twse0", false},
		{"uppercase segwit", "BC1QAZCM763858NKJ2DJ986ETAJV6WQUSLV8UXWCZT", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidBtcAddress(tt.address); got != tt.want {
				t.Errorf("IsValidBtcAddress(%q) = %v, want %v", tt.address, got, tt.want)
			}
		})
	}
}

func TestIsValidEthAddress(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    bool
	}{
		{"checksummed", "0x6dE701678d2a55ef22FAabd666a82459046b44dF", true},
		{"lowercase", "0x6de701678d2a55ef22faabd666a82459046b44df", true},
		{"uppercase", "0x6DE701678D2A55EF22FAABD666A82459046B44DF", true},
		{"no prefix", "6de701678d2a55ef22faabd666a82459046b44df", true},
		{"bad checksum", "0x6De701678d2a55ef22FAabd666a82459046b44dF", false},
		{"too short", "0x6de701678d2a55ef22faabd666a82459046b44d", false},
		{"non hex", "0x6de701678d2a55ef22faabd666a82459046b44dz", false},
		{"btc address", "34xp4vRoCGJym3xR7yCVPFHoCNxv4Twseo", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidEthAddress(tt.address); got != tt.want {
				t.Errorf("IsValidEthAddress(%q) = %v, want %v", tt.address, got, tt.want)
			}
		})
	}
}

func TestValidateAddress(t *testing.T) {
	if err := ValidateAddress("34xp4vRoCGJym3xR7yCVPFHoCNxv4Twseo", models.Bitcoin); err != nil {
		t.Errorf("ValidateAddress(btc) unexpected error: %v", err)
	}
	if err := ValidateAddress("34xp4vRoCGJym3xR7yCVPFHoCNxv4Twseo", models.Ethereum); err == nil {
		t.Error("ValidateAddress(eth) expected error for a BTC address")
	}
	if err := ValidateAddress("", models.Bitcoin); err == nil {
		t.Error("ValidateAddress expected error for empty address")
	}
	if err := ValidateAddress("abc", models.Chain("sol")); err == nil {
		t.Error("ValidateAddress expected error for unsupported chain")
	}
}

func TestNormalizeEthAddress(t *testing.T) {
	got := NormalizeEthAddress("0x6dE701678d2a55ef22FAabd666a82459046b44dF")
	want := "0x6de701678d2a55ef22faabd666a82459046b44df"
	if got != want {
		t.Errorf("NormalizeEthAddress() = %q, want %q", got, want)
	}
}
