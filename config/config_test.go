package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetters(t *testing.T) {
	c := map[string]string{
		"PORT":        "9090",
		"BAD_INT":     "nine",
		"DEBUG":       "true",
		"EMPTY":       "",
		"ORIGINS":     "https://a.example, https://b.example,,",
		"ONLY_COMMAS": ",,",
	}

	assert.Equal(t, 9090, GetInt(c, "PORT", 8080))
	assert.Equal(t, 8080, GetInt(c, "BAD_INT", 8080))
	assert.Equal(t, 8080, GetInt(c, "MISSING", 8080))
	assert.True(t, GetBool(c, "DEBUG", false))
	assert.False(t, GetBool(c, "MISSING", false))
	assert.Equal(t, "fallback", GetString(c, "EMPTY", "fallback"))
	assert.Equal(t, "9090", GetString(c, "PORT", ""))
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, GetStrings(c, "ORIGINS", nil))
	assert.Equal(t, []string{"*"}, GetStrings(c, "ONLY_COMMAS", []string{"*"}))
	assert.Equal(t, "x", GetString(nil, "PORT", "x"))
}

func TestNewReadsEnvironment(t *testing.T) {
	t.Setenv("CONSTRUCTCO_TEST_KEY", "a=b")

	c := New()
	assert.Equal(t, "a=b", c["CONSTRUCTCO_TEST_KEY"])
}
