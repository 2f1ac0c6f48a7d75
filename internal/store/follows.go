package store

import (
	"errors"
	"moodly/pin-api/model"

	"gorm.io/gorm"
)

// FollowStore persists directed follow edges. Edges are the sole
// source of truth for follower and following counts, nothing is cached
type FollowStore struct {
	db *gorm.DB
}

func NewFollowStore(db *gorm.DB) *FollowStore {
	return &FollowStore{db: db}
}

func (s *FollowStore) Exists(followerID, followingID string) (bool, error) {
	var found bool

	err := s.db.Model(model.Follow{}).
		Select("count(*) > 0").
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Find(&found).
		Error
	if err != nil {
		return false, err
	}

	return found, nil
}

// Create inserts a follow edge. When two toggles race on the same pair
// the composite unique index rejects the second insert, which comes
// back as ErrConflict and means "already followed"
func (s *FollowStore) Create(followerID, followingID string) error {
	err := s.db.Create(&model.Follow{
		FollowerID:  followerID,
		FollowingID: followingID,
	}).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrConflict
		}
		return err
	}

	return nil
}

// Delete removes a follow edge. Deleting an absent edge is a no-op
func (s *FollowStore) Delete(followerID, followingID string) error {
	return s.db.
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&model.Follow{}).
		Error
}

// CountFollowers counts edges pointing at userID
func (s *FollowStore) CountFollowers(userID string) (int64, error) {
	var n int64

	err := s.db.Model(model.Follow{}).
		Where("following_id = ?", userID).
		Count(&n).
		Error

	return n, err
}

// CountFollowing counts edges originating from userID
func (s *FollowStore) CountFollowing(userID string) (int64, error) {
	var n int64

	err := s.db.Model(model.Follow{}).
		Where("follower_id = ?", userID).
		Count(&n).
		Error

	return n, err
}
