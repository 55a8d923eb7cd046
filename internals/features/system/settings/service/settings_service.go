// file: internals/features/system/settings/service/settings_service.go
package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	model "academia_backend/internals/features/system/settings/model"
)

// GetSetting returns (value, found). A storage error reads as not-found so
// callers fall back to their defaults.
func GetSetting(db *gorm.DB, key string) (string, bool) {
	var s model.SystemSettingModel
	err := db.First(&s, "setting_key = ?", key).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false
		}
		return "", false
	}
	return s.SettingValue, true
}

// ParseGradesOpen interprets the GRADES_OPEN value: the switch is open unless
// it is explicitly set to false. A missing key means open.
func ParseGradesOpen(value string, found bool) bool {
	if !found {
		return true
	}
	return strings.TrimSpace(strings.ToLower(value)) != "false"
}

// GradesOpen reads the switch once; the result is passed into the pure
// grade-write precondition check.
func GradesOpen(db *gorm.DB) bool {
	v, found := GetSetting(db, model.KeyGradesOpen)
	return ParseGradesOpen(v, found)
}
