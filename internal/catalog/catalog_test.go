package catalog

import (
	"context"
	"testing"

	"github.com/Skotchmaster/rockstar_shop/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProducts_Localized(t *testing.T) {
	t.Parallel()

	ru := Products(i18n.RU)
	en := Products(i18n.EN)
	require.Len(t, ru, 3)
	require.Len(t, en, 3)

	assert.Equal(t, "Навсегда", ru[0].Duration)
	assert.Equal(t, "Forever", en[0].Duration)
	assert.Equal(t, "3 months", en[2].Duration)
	assert.True(t, en[0].IsPopular)
	assert.False(t, en[2].IsPopular)
	assert.Equal(t, "Beta access", en[0].Features[0])
}

func TestFind(t *testing.T) {
	t.Parallel()

	p, err := Find(i18n.EN, 2)
	require.NoError(t, err)
	assert.Equal(t, "Rockstar Recode", p.Title)
	assert.Equal(t, "600₽", p.Price)

	_, err = Find(i18n.EN, 42)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestIsPerpetual(t *testing.T) {
	t.Parallel()

	tests := []struct {
		duration string
		want     bool
	}{
		{"Навсегда", true},
		{"Forever", true},
		{"3 months", false},
		{"3 месяца", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.duration, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPerpetual(tt.duration))
		})
	}
}

func TestMemorySearcher(t *testing.T) {
	t.Parallel()
	var s Searcher = MemorySearcher{}
	ctx := context.Background()

	total, got, err := s.Search(ctx, i18n.EN, "recode", 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].ID)

	total, got, err = s.Search(ctx, i18n.EN, "PRIORITY", 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, 1, got[0].ID)

	total, got, err = s.Search(ctx, i18n.EN, "", 1, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)

	total, got, err = s.Search(ctx, i18n.EN, "", 10, 5)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Empty(t, got)
}

func TestMemorySearcher_CanceledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := MemorySearcher{}.Search(ctx, i18n.EN, "x", 0, 10)
	require.ErrorIs(t, err, context.Canceled)
}
