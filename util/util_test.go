package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Listen string `json:"listen"`
	Port   int    `json:"port,omitempty"`
	Plain  string
}

func TestErrLine(t *testing.T) {
	assert.Equal(t, "bad port 80\n", errLine("bad port %d", 80))
	assert.Equal(t, "done\n", errLine("done\n"))
}

func TestGetJSONField(t *testing.T) {
	s := sample{Listen: ":5000", Port: 5000, Plain: "x"}

	f := GetJSONField(s, "listen")
	if assert.NotNil(t, f) {
		assert.Equal(t, ":5000", f.Value())
	}
	f = GetJSONField(&s, "port")
	if assert.NotNil(t, f) {
		assert.Equal(t, 5000, f.Value())
	}
	f = GetJSONField(s, "Plain")
	if assert.NotNil(t, f) {
		assert.Equal(t, "x", f.Value())
	}
	assert.Nil(t, GetJSONField(s, "missing"))
}
