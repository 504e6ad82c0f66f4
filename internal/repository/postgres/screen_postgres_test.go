package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"signage/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestScreenPostgres_Find(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewScreenPostgres(db)
	ctx := context.Background()

	t.Run("assigned", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "assigned_content_id"}).
			AddRow("lobby-1", "8b76a257-3624-41b5-bbf7-0f3b7a2331c1")

		mock.ExpectQuery("SELECT (.+) FROM screens WHERE id = ?").
			WithArgs("lobby-1").
			WillReturnRows(rows)

		screen, err := repo.Find(ctx, "lobby-1")

		assert.NoError(t, err)
		assert.Equal(t, "lobby-1", screen.ID)
		assert.NotNil(t, screen.AssignedContentID)
		assert.Equal(t, "8b76a257-3624-41b5-bbf7-0f3b7a2331c1", *screen.AssignedContentID)
	})

	t.Run("unassigned pointer scans as nil", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "assigned_content_id"}).
			AddRow("lobby-2", nil)

		mock.ExpectQuery("SELECT (.+) FROM screens WHERE id = ?").
			WithArgs("lobby-2").
			WillReturnRows(rows)

		screen, err := repo.Find(ctx, "lobby-2")

		assert.NoError(t, err)
		assert.Nil(t, screen.AssignedContentID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM screens WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		screen, err := repo.Find(ctx, "missing")

		assert.True(t, errors.Is(err, sql.ErrNoRows))
		assert.Nil(t, screen)
	})
}

func TestScreenPostgres_Upsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewScreenPostgres(db)
	ctx := context.Background()

	t.Run("set pointer", func(t *testing.T) {
		contentID := "8b76a257-3624-41b5-bbf7-0f3b7a2331c1"
		rows := sqlmock.NewRows([]string{"id", "assigned_content_id"}).
			AddRow("lobby-1", contentID)

		mock.ExpectQuery("INSERT INTO screens").
			WithArgs("lobby-1", &contentID).
			WillReturnRows(rows)

		screen, err := repo.Upsert(ctx, &model.Screen{ID: "lobby-1", AssignedContentID: &contentID})

		assert.NoError(t, err)
		assert.Equal(t, contentID, *screen.AssignedContentID)
	})

	t.Run("clear pointer", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "assigned_content_id"}).
			AddRow("lobby-1", nil)

		mock.ExpectQuery("INSERT INTO screens").
			WithArgs("lobby-1", (*string)(nil)).
			WillReturnRows(rows)

		screen, err := repo.Upsert(ctx, &model.Screen{ID: "lobby-1"})

		assert.NoError(t, err)
		assert.Nil(t, screen.AssignedContentID)
	})
}

func TestScreenPostgres_CreateIfAbsent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewScreenPostgres(db)
	ctx := context.Background()

	t.Run("inserted", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO screens").
			WithArgs("fresh").
			WillReturnResult(sqlmock.NewResult(0, 1))

		created, err := repo.CreateIfAbsent(ctx, "fresh")

		assert.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("already present", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO screens").
			WithArgs("known").
			WillReturnResult(sqlmock.NewResult(0, 0))

		created, err := repo.CreateIfAbsent(ctx, "known")

		assert.NoError(t, err)
		assert.False(t, created)
	})
}

func TestScreenPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewScreenPostgres(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM screens WHERE id = ?").
		WithArgs("lobby-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	// Zero rows affected is still success: delete is idempotent
	assert.NoError(t, repo.Delete(ctx, "lobby-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScreenPostgres_CountAssignedTo(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewScreenPostgres(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM screens WHERE assigned_content_id = ?").
		WithArgs("content-id").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	n, err := repo.CountAssignedTo(ctx, "content-id")

	assert.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestScreenPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewScreenPostgres(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "assigned_content_id"}).
		AddRow("hall", "8b76a257-3624-41b5-bbf7-0f3b7a2331c1").
		AddRow("lobby", nil)

	mock.ExpectQuery("SELECT (.+) FROM screens ORDER BY id").
		WillReturnRows(rows)

	screens, err := repo.List(ctx)

	assert.NoError(t, err)
	assert.Len(t, screens, 2)
	assert.NotNil(t, screens[0].AssignedContentID)
	assert.Nil(t, screens[1].AssignedContentID)
}
