// file: internals/features/academics/groups/service/code_generator.go
package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateGroupCode builds a human-readable unique code like GRP-2025-3F9A2C.
// Uniqueness is ultimately enforced by the uq_course_groups_code constraint;
// the uuid fragment makes collisions within one year practically impossible.
func GenerateGroupCode(now time.Time) string {
	frag := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:6]
	return fmt.Sprintf("GRP-%d-%s", now.Year(), frag)
}
