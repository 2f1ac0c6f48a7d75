package model

import "time"

type Pin struct {
	ID          uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      string      `gorm:"index;not null" json:"userId"`
	Title       string      `gorm:"not null" json:"title"`
	Description string      `gorm:"not null" json:"description"`
	Link        string      `json:"link,omitempty"`
	BoardID     *uint       `gorm:"index" json:"board,omitempty"`
	Tags        StringSlice `gorm:"type:text" json:"tags"`
	MediaURL    string      `gorm:"not null" json:"media"`
	Width       int         `json:"width"`
	Height      int         `json:"height"`
	CreatedAt   time.Time   `json:"createdAt"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
