package store

import (
	"errors"
	"moodly/pin-api/model"

	"gorm.io/gorm"
)

type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// UserUpdate carries the optional profile fields of an update. Empty
// strings mean "leave unchanged"
type UserUpdate struct {
	DisplayName string
	UserName    string
	Img         string
}

// sanitize blanks the stored digest so it can never leave the store,
// even if a caller serializes the whole record
func sanitize(u *model.User) *model.User {
	u.HashedPassword = ""
	return u
}

// FindByLoginOrEmail returns a user matching either unique field.
// Used to reject duplicate registrations up front
func (s *UserStore) FindByLoginOrEmail(handle, email string) (*model.User, error) {
	var u model.User

	err := s.db.Where("user_name = ? OR email = ?", handle, email).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return sanitize(&u), nil
}

// Create inserts a new user. The unique indexes on user_name and email
// are the authoritative duplicate check, the pre-check in the handler
// only exists for a nicer error message
func (s *UserStore) Create(u *model.User) error {
	if err := s.db.Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrConflict
		}
		return err
	}

	sanitize(u)
	return nil
}

func (s *UserStore) FindByID(id string) (*model.User, error) {
	var u model.User

	err := s.db.Where("id = ?", id).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return sanitize(&u), nil
}

func (s *UserStore) FindByHandle(handle string) (*model.User, error) {
	var u model.User

	err := s.db.Where("user_name = ?", handle).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return sanitize(&u), nil
}

// CredentialsByEmail is the only read that exposes the stored digest,
// and it hands it out separately from the record so login can verify
// without the digest ever riding along on a user struct
func (s *UserStore) CredentialsByEmail(email string) (id, digest string, err error) {
	var u model.User

	err = s.db.Where("email = ?", email).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", ErrNotFound
		}
		return "", "", err
	}

	return u.ID, u.HashedPassword, nil
}

// Update merges the provided fields into the stored record. A handle
// collision with another account comes back as ErrConflict
func (s *UserStore) Update(id string, fields UserUpdate) (*model.User, error) {
	var u model.User

	err := s.db.Where("id = ?", id).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if fields.DisplayName != "" {
		u.DisplayName = fields.DisplayName
	}
	if fields.UserName != "" {
		u.UserName = fields.UserName
	}
	if fields.Img != "" {
		u.Img = fields.Img
	}

	if err := s.db.Save(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, err
	}

	return sanitize(&u), nil
}
