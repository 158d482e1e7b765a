package keygen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_AlwaysValidFormat(t *testing.T) {
	t.Parallel()

	for i := 0; i < 1000; i++ {
		key := Generate()
		require.True(t, ValidateFormat(key), "generated key %q", key)
	}
}

func TestValidateFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  string
		want bool
	}{
		{name: "valid", key: "ROCK-AB12-9XYZ", want: true},
		{name: "lowercase", key: "ROCK-ab12-9XYZ", want: false},
		{name: "wrong prefix", key: "ROCX-AB12-9XYZ", want: false},
		{name: "short group", key: "ROCK-AB1-9XYZ", want: false},
		{name: "trailing", key: "ROCK-AB12-9XYZ ", want: false},
		{name: "empty", key: "", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ValidateFormat(tt.key))
		})
	}
}

func TestGenerateUnique_RerollsOnCollision(t *testing.T) {
	t.Parallel()

	calls := 0
	key, err := GenerateUnique(func(string) bool {
		calls++
		return calls < 3
	}, 5)
	require.NoError(t, err)
	assert.True(t, ValidateFormat(key))
	assert.Equal(t, 3, calls)
}

func TestGenerateUnique_Exhausted(t *testing.T) {
	t.Parallel()

	_, err := GenerateUnique(func(string) bool { return true }, 3)
	assert.ErrorIs(t, err, ErrExhausted)
}
