package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs_SeparateValue(t *testing.T) {
	args := []string{"-a", "http://localhost:8000", "-x", "ignored", "-c", "conf.json"}
	got := FilterArgs(args, []string{"-a"})
	assert.Equal(t, []string{"-a", "http://localhost:8000"}, got)
}

func TestFilterArgs_EqualsForm(t *testing.T) {
	args := []string{"--config=conf.json", "-a=http://x", "-b=nope"}
	got := FilterArgs(args, []string{"--config", "-a"})
	assert.Equal(t, []string{"--config=conf.json", "-a=http://x"}, got)
}

func TestFilterArgs_FlagWithoutValue(t *testing.T) {
	args := []string{"-v", "-a", "-b"}
	got := FilterArgs(args, []string{"-v", "-a"})
	// -a is followed by another flag, so no value is attached to it
	assert.Equal(t, []string{"-v", "-a"}, got)
}

func TestFilterArgs_Empty(t *testing.T) {
	got := FilterArgs(nil, []string{"-a"})
	assert.Empty(t, got)
}
