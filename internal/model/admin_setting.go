// /internal/model/admin_setting.go
package model

import "time"

// SettingAdminPassword is the admin_settings key holding the panel password.
const SettingAdminPassword = "admin_password"

// AdminSetting is a key/value row of panel configuration.
type AdminSetting struct {
	ID           uint   `gorm:"primaryKey"`
	SettingKey   string `gorm:"uniqueIndex;not null;size:100"`
	SettingValue string `gorm:"type:text;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
