package repositories

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"usermgmt/internal/domain/models"
)

var userCols = []string{"user_id", "first_name", "last_name", "user_type", "created_at", "updated_at"}

func userRow(rows *sqlmock.Rows, id string) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(id, "First"+id, "Last"+id, "U", now, now)
}

func TestNextPageThenPreviousPageRoundTrip(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	repo := UserRepository{DB: db}

	// forward from USER0010: window is USER0011..USER0012, with one more
	// row behind it so hasNext is set
	next := sqlmock.NewRows(userCols)
	userRow(next, "USER0011")
	userRow(next, "USER0012")
	userRow(next, "USER0013")
	mock.ExpectQuery("FROM users WHERE user_id >").
		WithArgs("USER0010", 3).
		WillReturnRows(next)
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users$").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(6))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users WHERE user_id <").
		WithArgs("USER0011").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(2))

	forward, err := repo.NextPage("USER0010", 2)
	if err != nil {
		t.Fatalf("NextPage error: %v", err)
	}
	if len(forward.Content) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(forward.Content))
	}
	if forward.FirstUserID != "USER0011" || forward.LastUserID != "USER0012" {
		t.Fatalf("boundary ids wrong: %q %q", forward.FirstUserID, forward.LastUserID)
	}
	if !forward.HasNext || !forward.HasPrevious {
		t.Fatalf("expected hasNext and hasPrevious, got %v %v", forward.HasNext, forward.HasPrevious)
	}
	if forward.PageNumber != 1 {
		t.Fatalf("expected page 1, got %d", forward.PageNumber)
	}

	// backward using the returned first boundary: the original window comes
	// back (rows arrive from the DB in descending order)
	prev := sqlmock.NewRows(userCols)
	userRow(prev, "USER0010")
	userRow(prev, "USER0009")
	mock.ExpectQuery("FROM users WHERE user_id <").
		WithArgs("USER0011", 2).
		WillReturnRows(prev)
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users$").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(6))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users WHERE user_id <").
		WithArgs("USER0009").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(0))

	back, err := repo.PreviousPage(forward.FirstUserID, 2)
	if err != nil {
		t.Fatalf("PreviousPage error: %v", err)
	}
	if back.FirstUserID != "USER0009" || back.LastUserID != "USER0010" {
		t.Fatalf("round trip boundary ids wrong: %q %q", back.FirstUserID, back.LastUserID)
	}
	for i := 1; i < len(back.Content); i++ {
		if back.Content[i-1].UserID >= back.Content[i].UserID {
			t.Fatalf("content not sorted ascending: %q before %q", back.Content[i-1].UserID, back.Content[i].UserID)
		}
	}
	if back.HasPrevious {
		t.Fatalf("expected hasPrevious false at the top")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestNextPagePastEndReturnsEmptyPage(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	repo := UserRepository{DB: db}

	mock.ExpectQuery("FROM users WHERE user_id >").
		WithArgs("USER9999", models.DefaultPageSize+1).
		WillReturnRows(sqlmock.NewRows(userCols))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users$").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(42))

	page, err := repo.NextPage("USER9999", 0)
	if err != nil {
		t.Fatalf("expected no error on an empty window, got %v", err)
	}
	if len(page.Content) != 0 {
		t.Fatalf("expected empty content, got %d rows", len(page.Content))
	}
	if page.HasNext {
		t.Fatalf("expected hasNext false")
	}
	if page.FirstUserID != "" || page.LastUserID != "" {
		t.Fatalf("expected empty boundary ids, got %q %q", page.FirstUserID, page.LastUserID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListSearchFiltersByPrefix(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	repo := UserRepository{DB: db}

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users WHERE user_id LIKE").
		WithArgs("ADM%").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(1))
	rows := sqlmock.NewRows(userCols)
	userRow(rows, "ADMIN001")
	mock.ExpectQuery("FROM users WHERE user_id LIKE").
		WithArgs("ADM%", 10, 0).
		WillReturnRows(rows)

	page, err := repo.List("ADM", 0, 10)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if page.TotalElems != 1 || len(page.Content) != 1 {
		t.Fatalf("expected one match, got total=%d rows=%d", page.TotalElems, len(page.Content))
	}
	if page.HasNext || page.HasPrevious {
		t.Fatalf("single page should have no neighbors")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
