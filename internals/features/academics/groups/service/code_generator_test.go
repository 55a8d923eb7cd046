// file: internals/features/academics/groups/service/code_generator_test.go
package service

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateGroupCodeShape(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	code := GenerateGroupCode(now)

	assert.Regexp(t, regexp.MustCompile(`^GRP-2025-[0-9A-F]{6}$`), code)
}

func TestGenerateGroupCodeVaries(t *testing.T) {
	now := time.Now()
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		seen[GenerateGroupCode(now)] = true
	}
	assert.Greater(t, len(seen), 1)
}
