package logs

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true, // removes BEGIN/COMMIT around single statements
	})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}

	cleanup := func() { _ = db.Close() }
	return gdb, mock, cleanup
}

func ptrUint(v uint) *uint    { return &v }
func ptrStr(s string) *string { return &s }

type assertErr string

func (e assertErr) Error() string { return string(e) }

func TestLogService_Log_Inserts(t *testing.T) {
	t.Run("metadata nil", func(t *testing.T) {
		db, mock, cleanup := newMockGorm(t)
		defer cleanup()

		ls := &LogService{DB: db}

		mock.ExpectQuery(`INSERT INTO "logs"`).
			WithArgs(
				sqlmock.AnyArg(), // level
				sqlmock.AnyArg(), // service
				sqlmock.AnyArg(), // user_id
				sqlmock.AnyArg(), // pharmacy_id
				sqlmock.AnyArg(), // action
				sqlmock.AnyArg(), // message
				sqlmock.AnyArg(), // gpi
				sqlmock.AnyArg(), // metadata
				sqlmock.AnyArg(), // created_at
			).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		err := ls.Log(SystemLog{
			Level:      "INFO",
			Service:    "education",
			UserID:     ptrUint(7),
			PharmacyID: ptrUint(3),
			Action:     "CREATE",
			Message:    "Created education record",
			GPI:        ptrStr("67404000100000"),
		}, nil)
		if err != nil {
			t.Fatalf("Log: %v", err)
		}

		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("expectations: %v", err)
		}
	})

	t.Run("metadata payload", func(t *testing.T) {
		db, mock, cleanup := newMockGorm(t)
		defer cleanup()

		ls := &LogService{DB: db}

		mock.ExpectQuery(`INSERT INTO "logs"`).
			WithArgs(
				sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
				sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
				sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))

		err := ls.Log(SystemLog{
			Level:   "INFO",
			Service: "education",
			Action:  "UPDATE",
			Message: "Updated education record",
		}, map[string]any{"id": 9, "gpi": "111"})
		if err != nil {
			t.Fatalf("Log: %v", err)
		}

		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("expectations: %v", err)
		}
	})
}

func TestLogService_Log_InsertError(t *testing.T) {
	db, mock, cleanup := newMockGorm(t)
	defer cleanup()

	ls := &LogService{DB: db}

	mock.ExpectQuery(`INSERT INTO "logs"`).
		WillReturnError(assertErr("insert failed"))

	err := ls.Log(SystemLog{Level: "ERROR", Service: "auth", Action: "LOGIN", Message: "x"}, nil)
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestLogService_GetLogs_DefaultsAndPaging(t *testing.T) {
	db, mock, cleanup := newMockGorm(t)
	defer cleanup()

	ls := &LogService{DB: db}

	mock.ExpectQuery(`SELECT count\(\*\)`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(41))

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "logs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "level", "service", "action", "message", "created_at"}).
			AddRow(1, "INFO", "education", "CREATE", "ok", now))

	rows, total, totalPages, err := ls.GetLogs(LogFilterInput{})
	if err != nil {
		t.Fatalf("GetLogs: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if total != 41 {
		t.Fatalf("expected total 41, got %d", total)
	}
	// 41 rows at the default page size of 20
	if totalPages != 3 {
		t.Fatalf("expected 3 pages, got %d", totalPages)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestLogService_GetLogs_FiltersApplied(t *testing.T) {
	db, mock, cleanup := newMockGorm(t)
	defer cleanup()

	ls := &LogService{DB: db}

	mock.ExpectQuery(`SELECT count\(\*\) FROM "logs" WHERE logs\.pharmacy_id = .* AND logs\.level = .* AND logs\.service = `).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT \* FROM "logs" WHERE logs\.pharmacy_id = `).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, total, totalPages, err := ls.GetLogs(LogFilterInput{
		PharmacyID: ptrUint(3),
		Level:      ptrStr("INFO"),
		Service:    ptrStr("education"),
	})
	if err != nil {
		t.Fatalf("GetLogs: %v", err)
	}
	if total != 0 {
		t.Fatalf("expected total 0, got %d", total)
	}
	if totalPages != 1 {
		t.Fatalf("expected 1 page minimum, got %d", totalPages)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestLogService_GetLogs_ExplicitDateRange(t *testing.T) {
	db, mock, cleanup := newMockGorm(t)
	defer cleanup()

	ls := &LogService{DB: db}

	mock.ExpectQuery(`SELECT count\(\*\) FROM "logs" WHERE logs\.created_at >= .* AND logs\.created_at < `).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT \* FROM "logs" WHERE logs\.created_at >= `).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))

	_, total, _, err := ls.GetLogs(LogFilterInput{
		StartDate: ptrStr("2026-08-01"),
		EndDate:   ptrStr("2026-08-31"),
	})
	if err != nil {
		t.Fatalf("GetLogs: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected total 2, got %d", total)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestLogService_GetLogs_BadDate_Error(t *testing.T) {
	db, _, cleanup := newMockGorm(t)
	defer cleanup()

	ls := &LogService{DB: db}

	_, _, _, err := ls.GetLogs(LogFilterInput{StartDate: ptrStr("not-a-date")})
	if err == nil {
		t.Fatalf("expected error for bad date")
	}
}

func TestLogService_GetLogs_CountError(t *testing.T) {
	db, mock, cleanup := newMockGorm(t)
	defer cleanup()

	ls := &LogService{DB: db}

	mock.ExpectQuery(`SELECT count\(\*\)`).
		WillReturnError(assertErr("boom"))

	_, _, _, err := ls.GetLogs(LogFilterInput{Page: 1, PageSize: 10})
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
}
