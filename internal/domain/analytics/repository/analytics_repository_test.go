package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockGormDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:             sqlDB,
		WithoutReturning: true,
	}), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}
	return db, mock
}

func TestIncrementEvent(t *testing.T) {
	day := time.Date(2026, 8, 30, 15, 42, 0, 0, time.UTC)

	// 每种事件都必须走单条 upsert 语句，并发打点不会产生重复日行
	cases := []struct {
		event  string
		column string
	}{
		{"view", "views"},
		{"click", "clicks"},
		{"conversion", "conversions"},
	}

	for _, tc := range cases {
		t.Run("increments "+tc.column+" via upsert", func(t *testing.T) {
			db, mock := newMockGormDB(t)
			repo := NewAnalyticsRepository(db)

			mock.ExpectBegin()
			mock.ExpectExec(`INSERT INTO "deal_analytics" .*ON CONFLICT \("deal_id"\) DO UPDATE SET .*"` + tc.column + `"=deal_analytics\.` + tc.column + ` \+ 1`).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectExec(`INSERT INTO "deal_daily_stats" .*ON CONFLICT \("deal_id","stat_date"\) DO UPDATE SET .*"` + tc.column + `"=deal_daily_stats\.` + tc.column + ` \+ 1`).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			err := repo.IncrementEvent("deal-1", tc.event, day)

			assert.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}

	t.Run("unknown event touches nothing", func(t *testing.T) {
		db, mock := newMockGormDB(t)
		repo := NewAnalyticsRepository(db)

		err := repo.IncrementEvent("deal-1", "hover", day)

		assert.ErrorIs(t, err, gorm.ErrInvalidData)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
