package models

import (
	"time"

	"gorm.io/gorm"
)

// SftpConnection is a stored SFTP writer configuration. Password and
// PrivateKey are secret fields; responses must never expose them.
type SftpConnection struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	ExternalID string         `json:"externalId" gorm:"uniqueIndex;not null"`
	Name       string         `json:"name" gorm:"uniqueIndex;not null"`
	Hostname   string         `json:"hostname" gorm:"not null"`
	Port       int            `json:"port" gorm:"default:22"`
	User       string         `json:"user" gorm:"not null"`
	Password   string         `json:"password"`
	PrivateKey string         `json:"privateKey" gorm:"type:text"`
	Path       string         `json:"path"`
	AppendDate bool           `json:"appendDate" gorm:"default:false"`
	CreatedAt  time.Time      `gorm:"autoCreateTime;column:created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime;column:updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index;column:deleted_at"`
}

func (SftpConnection) TableName() string {
	return "sftp_connections"
}
