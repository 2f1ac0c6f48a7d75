// Package model defines database models
package model

import "time"

type User struct {
	ID          string `gorm:"primaryKey" json:"id"`
	UserName    string `gorm:"uniqueIndex;not null" json:"userName"`
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	DisplayName string `json:"displayName"`
	// Never serialized. Store reads additionally blank it out before
	// the record leaves the store layer
	HashedPassword string    `gorm:"not null" json:"-"`
	Img            string    `json:"img,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`

	Followers []Follow `gorm:"foreignKey:FollowingID" json:"-"`
	Following []Follow `gorm:"foreignKey:FollowerID" json:"-"`
	Pins      []Pin    `gorm:"foreignKey:UserID" json:"-"`
	Boards    []Board  `gorm:"foreignKey:UserID" json:"-"`
}
