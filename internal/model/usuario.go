package model

import "time"

// Usuario is an intranet account. Created at registration, read at login.
type Usuario struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"size:50;uniqueIndex;not null"`
	Email        string `gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	CreatedAt    time.Time
}

func (Usuario) TableName() string { return "usuarios" }
