// file: internals/features/academics/groups/model/group_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// --- ENUM course_group_status (monotonic, never regresses) -------------------
type GroupStatus string

const (
	GroupStatusActive          GroupStatus = "ACTIVE"
	GroupStatusGradesSubmitted GroupStatus = "GRADES_SUBMITTED"
	GroupStatusCompleted       GroupStatus = "COMPLETED"
)

// --- MODEL course_groups -----------------------------------------------------
// A group is one concrete run of a course level. Its status gates every grade
// write for its enrollments.
type GroupModel struct {
	// PK
	CourseGroupID uuid.UUID `json:"course_group_id" gorm:"column:course_group_id;type:uuid;default:gen_random_uuid();primaryKey"`

	CourseGroupCode   string      `json:"course_group_code" gorm:"column:course_group_code;type:varchar(40);not null;uniqueIndex:uq_course_groups_code"`
	CourseGroupStatus GroupStatus `json:"course_group_status" gorm:"column:course_group_status;type:varchar(20);not null;default:'ACTIVE';index:idx_course_groups_status"`

	CourseGroupStartDate time.Time `json:"course_group_start_date" gorm:"column:course_group_start_date;type:date;not null"`

	// Teacher may be assigned later (auto-promoted groups start without one)
	CourseGroupTeacherID *uuid.UUID `json:"course_group_teacher_id,omitempty" gorm:"column:course_group_teacher_id;type:uuid;index:idx_course_groups_teacher"`

	// FK ke levels(level_id)
	CourseGroupLevelID uuid.UUID `json:"course_group_level_id" gorm:"column:course_group_level_id;type:uuid;not null;index:idx_course_groups_level"`

	// Weekday labels for the schedule board ("MON","WED",...)
	CourseGroupScheduleDays pq.StringArray `json:"course_group_schedule_days,omitempty" gorm:"column:course_group_schedule_days;type:text[]"`

	// Timestamps
	CourseGroupCreatedAt time.Time      `json:"course_group_created_at" gorm:"column:course_group_created_at;type:timestamptz;not null;autoCreateTime"`
	CourseGroupUpdatedAt time.Time      `json:"course_group_updated_at" gorm:"column:course_group_updated_at;type:timestamptz;not null;autoUpdateTime"`
	CourseGroupDeletedAt gorm.DeletedAt `json:"course_group_deleted_at,omitempty" gorm:"column:course_group_deleted_at;type:timestamptz;index"`
}

func (GroupModel) TableName() string { return "course_groups" }

// IsFinalized reports whether grade writes are locked for this group.
func (g GroupModel) IsFinalized() bool {
	return g.CourseGroupStatus == GroupStatusGradesSubmitted ||
		g.CourseGroupStatus == GroupStatusCompleted
}
