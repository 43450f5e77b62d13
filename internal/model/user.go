package model

import "time"

type User struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	HashedPassword string    `gorm:"not null" json:"-"`
	Name           string    `gorm:"not null" json:"name"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
