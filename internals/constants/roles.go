package constants

import "fmt"

// Roles known to the academic backend.
const (
	RoleAdmin     = "admin"
	RoleSecretary = "secretary"
	RoleTeacher   = "teacher"
	RoleStudent   = "student"
)

// Role error message templates
const (
	ErrOnlyTeachersCanAccess = "❌ Only teacher or admin may access %s."
	ErrOnlyAdminsCanAccess   = "❌ Only admin may access %s."
	ErrOnlyStaffCanAccess    = "❌ Only staff roles may access %s."
)

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AdminOnly    = []string{RoleAdmin}
	TeacherAndUp = []string{RoleTeacher, RoleAdmin}
	StaffRoles   = []string{RoleSecretary, RoleTeacher, RoleAdmin}
)
