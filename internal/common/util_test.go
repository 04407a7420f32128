package common

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeRandHexString(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{name: "zero", size: 0},
		{name: "salt sized", size: 16},
		{name: "token sized", size: 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := MakeRandHexString(tt.size)
			require.NoError(t, err)
			assert.Len(t, s, tt.size*2)

			raw, err := hex.DecodeString(s)
			require.NoError(t, err)
			assert.Len(t, raw, tt.size)
		})
	}
}

func TestMakeRandHexString_Distinct(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		s, err := MakeRandHexString(32)
		require.NoError(t, err)
		assert.NotContains(t, seen, s)
		seen[s] = struct{}{}
	}
}

func TestGenerateRandByteArray(t *testing.T) {
	a := GenerateRandByteArray(24)
	require.NotNil(t, a)
	assert.Len(t, a, 24)

	b := GenerateRandByteArray(24)
	assert.NotEqual(t, a, b)

	assert.Empty(t, GenerateRandByteArray(0))
}

func TestWipeByteArray(t *testing.T) {
	pw := []byte("hahaha")
	WipeByteArray(pw)
	assert.Equal(t, make([]byte, 6), pw)

	assert.NotPanics(t, func() { WipeByteArray(nil) })
}
