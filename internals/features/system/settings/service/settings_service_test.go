package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseGradesOpen(t *testing.T) {
	// missing key defaults to open
	assert.True(t, ParseGradesOpen("", false))

	assert.True(t, ParseGradesOpen("true", true))
	assert.True(t, ParseGradesOpen("TRUE", true))
	assert.True(t, ParseGradesOpen("anything-else", true))

	assert.False(t, ParseGradesOpen("false", true))
	assert.False(t, ParseGradesOpen(" FALSE ", true))
}
