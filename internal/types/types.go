package types

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// StringPtr converts a string to a pointer to a string
func StringPtr(s string) *string {
	return &s
}

// OptionalString returns nil for an empty string
func OptionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// StringNilOrEmpty checks if a pointer to a string is nil or empty
func StringNilOrEmpty(s *string) bool {
	return s == nil || *s == ""
}

// SafeString returns a safe string from a pointer to a string
func SafeString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// IsWalletAddress checks if a string is a 0x prefixed hex account address
func IsWalletAddress(s string) bool {
	return strings.HasPrefix(s, "0x") && common.IsHexAddress(s)
}

// NormalizeWallet returns the canonical lower case form of a wallet address.
// Wallets are stored and compared in this form.
func NormalizeWallet(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// SameWallet compares two wallet addresses ignoring hex case
func SameWallet(a, b string) bool {
	return strings.EqualFold(a, b)
}
