package model

import "time"

// Follow is a directed edge meaning "follower follows following".
// The composite unique index guarantees at most one edge per ordered
// pair even when two toggles race
type Follow struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FollowerID  string    `gorm:"index;uniqueIndex:idx_follower_following;not null" json:"follower_id"`
	FollowingID string    `gorm:"index;uniqueIndex:idx_follower_following;not null" json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`
}
