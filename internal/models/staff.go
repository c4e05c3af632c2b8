package models

import (
	"gorm.io/gorm"
)

// Staff is a front-desk member allowed to change registrations.
type Staff struct {
	gorm.Model
	DiscordID string `gorm:"uniqueIndex"`
	Username  string
	Email     string
	Avatar    string
}
