package models

import (
	"gorm.io/gorm"
)

// RegistrationHistory is an append-only snapshot written on every change.
type RegistrationHistory struct {
	gorm.Model
	RegistrationUID    string `json:"registration_uid" gorm:"index"`
	Action             string `json:"action"`
	StaffID            uint   `json:"staff_id"`
	RegistrationFields `gorm:"embedded"`
}
