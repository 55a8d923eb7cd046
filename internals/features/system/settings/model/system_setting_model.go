// file: internals/features/system/settings/model/system_setting_model.go
package model

import (
	"time"
)

// Well-known keys
const (
	KeyGradesOpen = "GRADES_OPEN"
)

// SystemSettingModel is a process-wide key→string map. GRADES_OPEN is the
// only key the grading engine consumes.
type SystemSettingModel struct {
	// PK (natural key)
	SettingKey   string `json:"setting_key" gorm:"column:setting_key;type:varchar(80);primaryKey"`
	SettingValue string `json:"setting_value" gorm:"column:setting_value;type:text;not null"`

	// Timestamps
	SettingCreatedAt time.Time `json:"setting_created_at" gorm:"column:setting_created_at;type:timestamptz;not null;autoCreateTime"`
	SettingUpdatedAt time.Time `json:"setting_updated_at" gorm:"column:setting_updated_at;type:timestamptz;not null;autoUpdateTime"`
}

func (SystemSettingModel) TableName() string { return "system_settings" }
