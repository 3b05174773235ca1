package cmd

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagName(t *testing.T) {
	assert.Equal(t, "bg", flagName("Bg"))
	assert.Equal(t, "device", flagName("Device"))
	assert.Equal(t, "raw-file", flagName("RawFile"))
}

func TestBuildMapFromShow(t *testing.T) {
	root := buildMapFromStruct(reflect.TypeOf(Show{}))

	assert.Equal(t, false, root["color"])
	assert.Equal(t, "", root["bg"])
	assert.Equal(t, "", root["fg"])
	assert.Equal(t, "", root["text"])
	assert.Equal(t, []any{}, root["device"])
}

func TestNormalizeFormat(t *testing.T) {
	assert.Equal(t, "yaml", normalizeFormat("yml"))
	assert.Equal(t, "toml", normalizeFormat("TOML"))
	assert.Equal(t, "json", normalizeFormat("json"))
	assert.Equal(t, "", normalizeFormat("ini"))
}
