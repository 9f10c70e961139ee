package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/feral-file/ff-economy/internal/types"
)

func TestOptionalString(t *testing.T) {
	assert.Nil(t, types.OptionalString(""))
	assert.Equal(t, "0xabc", *types.OptionalString("0xabc"))
}

func TestSafeString(t *testing.T) {
	assert.Equal(t, "", types.SafeString(nil))
	assert.Equal(t, "x", types.SafeString(types.StringPtr("x")))
	assert.True(t, types.StringNilOrEmpty(types.StringPtr("")))
	assert.False(t, types.StringNilOrEmpty(types.StringPtr("x")))
}

func TestIsWalletAddress(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want bool
	}{
		{name: "checksummed", s: "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", want: true},
		{name: "lowercase", s: "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed", want: true},
		{name: "no prefix", s: "5aaeb6053f3e94c9b9a09f33669435e7ef1beaed", want: false},
		{name: "short", s: "0xabc", want: false},
		{name: "non evm address", s: "tz1VSUr8wwNhLAzempoch5d6hLRiTh8Cjcjb", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, types.IsWalletAddress(tt.s))
		})
	}
}

func TestSameWallet(t *testing.T) {
	assert.True(t, types.SameWallet("0xAbC", "0xabc"))
	assert.False(t, types.SameWallet("0xabc", "0xabd"))
}

func TestNormalizeWallet(t *testing.T) {
	assert.Equal(t, "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed", types.NormalizeWallet(" 0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed "))
	assert.Equal(t, "", types.NormalizeWallet(""))
}
