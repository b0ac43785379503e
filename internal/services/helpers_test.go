package services

import (
	"errors"
	"testing"

	"event_admin/internal/database"
	"event_admin/pkg/push"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A second pooled connection would get its own empty in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(db))
	return db
}

// stubPush records sends and returns a canned outcome.
type stubPush struct {
	sent []push.SendRequest
	fail bool
	resp push.SendResponse
}

func (s *stubPush) Send(userIDs []string, payload push.Payload, priority string) (*push.SendResponse, error) {
	s.sent = append(s.sent, push.SendRequest{
		UserIDs:      userIDs,
		Notification: payload,
		Priority:     priority,
	})
	if s.fail {
		return nil, errors.New("gateway unreachable")
	}
	resp := s.resp
	if resp == (push.SendResponse{}) {
		resp = push.SendResponse{Success: true, SuccessCount: len(userIDs)}
	}
	return &resp, nil
}
