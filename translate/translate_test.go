package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	SetLanguage()
	assert.Equal("line 3 value", From("line %d %v", 3, "value"))
	assert.Equal("plain", From("plain"))

	SetLanguage("en-GB", "fr-FR")
	assert.Equal("0x0a", From("0x%02x", 10))
}
