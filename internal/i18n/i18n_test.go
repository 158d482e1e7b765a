package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestT(t *testing.T) {
	assert.Equal(t, "Магазин", T(RU, HeaderShop))
	assert.Equal(t, "Shop", T(EN, HeaderShop))
}

func TestT_FallsBackToKey(t *testing.T) {
	assert.Equal(t, "no.such.key", Lookup(EN, "no.such.key"))
	assert.Equal(t, "header.shop", T(Language("de"), HeaderShop))
}

func TestEveryKeyTranslatedInBothLanguages(t *testing.T) {
	for key := range translations[RU] {
		_, ok := translations[EN][key]
		assert.True(t, ok, "missing en translation for %s", key)
	}
	for key := range translations[EN] {
		_, ok := translations[RU][key]
		assert.True(t, ok, "missing ru translation for %s", key)
	}
}

func TestParseLanguage(t *testing.T) {
	lang, ok := ParseLanguage("en")
	assert.True(t, ok)
	assert.Equal(t, EN, lang)

	_, ok = ParseLanguage("fr")
	assert.False(t, ok)
}

func TestAll(t *testing.T) {
	assert.Equal(t, []string{"Навсегда", "Forever"}, All(ShopForever))
}
