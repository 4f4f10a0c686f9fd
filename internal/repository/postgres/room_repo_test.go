package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"roomscheduler/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

var jan1 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestRoomRepository_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		room    *domain.Room
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr error
	}{
		{
			name: "success timed room",
			room: &domain.Room{
				Code:      "ABC123",
				Title:     "Dinner",
				Dates:     []string{"2024-01-02", "2024-01-03"},
				StartTime: strPtr("09:00"),
				EndTime:   strPtr("18:00"),
				CreatedAt: jan1,
				UpdatedAt: jan1,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO rooms \(code, title, dates, date_only, start_time, end_time, created_at, updated_at\)`).
					WithArgs("ABC123", "Dinner", pq.Array([]string{"2024-01-02", "2024-01-03"}), false,
						sql.NullString{String: "09:00", Valid: true}, sql.NullString{String: "18:00", Valid: true}, jan1, jan1).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("room-uuid-1"))
			},
			wantID: "room-uuid-1",
		},
		{
			name: "success date only room stores null times",
			room: &domain.Room{
				Code:      "XYZ789",
				Dates:     []string{"2024-01-02"},
				DateOnly:  true,
				CreatedAt: jan1,
				UpdatedAt: jan1,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO rooms`).
					WithArgs("XYZ789", "", pq.Array([]string{"2024-01-02"}), true,
						sql.NullString{}, sql.NullString{}, jan1, jan1).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("room-uuid-2"))
			},
			wantID: "room-uuid-2",
		},
		{
			name: "duplicate code",
			room: &domain.Room{Code: "ABC123", Dates: []string{"2024-01-02"}, DateOnly: true},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO rooms`).
					WillReturnError(&pq.Error{Code: "23505"})
			},
			wantErr: domain.ErrDuplicateCode,
		},
		{
			name: "db error",
			room: &domain.Room{Code: "ABC123", Dates: []string{"2024-01-02"}, DateOnly: true},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO rooms`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewRoomRepository(db)
			err = repo.Create(ctx, tt.room)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, tt.room.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRoomRepository_GetByCode(t *testing.T) {
	ctx := context.Background()
	cols := []string{"id", "code", "title", "dates", "date_only", "start_time", "end_time", "created_at", "updated_at"}

	tests := []struct {
		name    string
		code    string
		mock    func(mock sqlmock.Sqlmock)
		want    *domain.Room
		wantErr error
	}{
		{
			name: "timed room",
			code: "ABC123",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, code, title, dates, date_only, start_time, end_time, created_at, updated_at`).
					WithArgs("ABC123").
					WillReturnRows(sqlmock.NewRows(cols).
						AddRow("room-1", "ABC123", "Dinner", "{2024-01-02,2024-01-03}", false, "09:00", "18:00", jan1, jan1))
			},
			want: &domain.Room{
				ID:        "room-1",
				Code:      "ABC123",
				Title:     "Dinner",
				Dates:     []string{"2024-01-02", "2024-01-03"},
				StartTime: strPtr("09:00"),
				EndTime:   strPtr("18:00"),
				CreatedAt: jan1,
				UpdatedAt: jan1,
			},
		},
		{
			name: "date only room trims code",
			code: " XYZ789 ",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, code`).
					WithArgs("XYZ789").
					WillReturnRows(sqlmock.NewRows(cols).
						AddRow("room-2", "XYZ789", "", "{2024-01-02}", true, nil, nil, jan1, jan1))
			},
			want: &domain.Room{
				ID:        "room-2",
				Code:      "XYZ789",
				Dates:     []string{"2024-01-02"},
				DateOnly:  true,
				CreatedAt: jan1,
				UpdatedAt: jan1,
			},
		},
		{
			name: "not found",
			code: "NOPE00",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, code`).
					WithArgs("NOPE00").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			got, err := NewRoomRepository(db).GetByCode(ctx, tt.code)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
