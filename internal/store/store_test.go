package store

import (
	"testing"

	"moodly/pin-api/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(model.User{}, model.Follow{}, model.Pin{}, model.Board{}, model.Comment{}))

	return db
}

func seedUser(t *testing.T, s *UserStore, id, handle, email string) {
	t.Helper()

	require.NoError(t, s.Create(&model.User{
		ID:             id,
		UserName:       handle,
		Email:          email,
		DisplayName:    handle,
		HashedPassword: "digest-" + id,
	}))
}
