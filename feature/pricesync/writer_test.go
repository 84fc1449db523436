package pricesync

import (
	"context"
	"testing"
	"time"

	"card-manager/core/catalog"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestWritePrice_Upsert(t *testing.T) {
	db, mock := setupMockDB(t)

	svc := NewService(db, nil, zap.NewNop())
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `card_prices` .*ON DUPLICATE KEY UPDATE").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	row := catalog.PriceRow{IDProduct: 1001, Low: ptr(1.5), Trend: ptr(2.0)}
	err := svc.writePrice(context.Background(), 42, row, false)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWritePrice_DryRunIssuesNoSQL(t *testing.T) {
	db, mock := setupMockDB(t)

	svc := NewService(db, nil, zap.NewNop())

	row := catalog.PriceRow{IDProduct: 1001, Low: ptr(1.5)}
	err := svc.writePrice(context.Background(), 42, row, true)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
