package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidLanguageCode(t *testing.T) {
	valid := []string{"fr", "de", "pt-BR", "zh_Hant", " es ", "french"}
	for _, code := range valid {
		assert.True(t, IsValidLanguageCode(code), code)
	}

	invalid := []string{"", " ", "f", "fr!", "12", "en--US", "thisistoolong"}
	for _, code := range invalid {
		assert.False(t, IsValidLanguageCode(code), code)
	}
}

func TestIsInRange(t *testing.T) {
	assert.True(t, IsInRange(100, 1, 4096))
	assert.False(t, IsInRange(0, 1, 4096))
	assert.True(t, IsInRange(0.0, 0.0, 2.0))
	assert.False(t, IsInRange(2.5, 0.0, 2.0))
}

func TestTrimAndValidate(t *testing.T) {
	v, ok := TrimAndValidate("  text-davinci-003 ")
	assert.True(t, ok)
	assert.Equal(t, "text-davinci-003", v)

	_, ok = TrimAndValidate("   ")
	assert.False(t, ok)
	assert.False(t, IsNotEmpty("\t"))
}
