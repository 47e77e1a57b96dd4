package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenConversationID(t *testing.T) {
	id := GenConversationID()
	assert.Len(t, id, 8)
}

func TestGenSpecIDStr(t *testing.T) {
	SetupIDWorker(0)
	a := GenSpecIDStr()
	b := GenSpecIDStr()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestParseAcceptLanguage(t *testing.T) {
	res := ParseAcceptLanguage("fr;q=0.8,ar,en;q=0.5")
	assert.Len(t, res, 3)
	assert.Equal(t, "ar", res[0].Tag)
	assert.Equal(t, "fr", res[1].Tag)
}
