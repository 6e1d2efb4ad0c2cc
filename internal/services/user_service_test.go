package services

import (
	"strings"
	"testing"

	"github.com/miniproductivity/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/utils/tests"
)

// fakeUserTable scripts the query and create callbacks so the upsert's
// read-create-reread dance can be driven without a database.
type fakeUserTable struct {
	records     map[string]models.User
	createCalls int

	// raceWinner, when set, is inserted by a pretend concurrent writer the
	// moment our own create runs, which then fails with a duplicate key.
	raceWinner *models.User
}

func whereEmail(tx *gorm.DB) string {
	c, ok := tx.Statement.Clauses["WHERE"]
	if !ok {
		return ""
	}
	where, ok := c.Expression.(clause.Where)
	if !ok {
		return ""
	}
	for _, expr := range where.Exprs {
		if e, ok := expr.(clause.Expr); ok && strings.Contains(e.SQL, "email") && len(e.Vars) > 0 {
			if s, ok := e.Vars[0].(string); ok {
				return s
			}
		}
	}
	return ""
}

func fakeUserDB(t *testing.T) (*gorm.DB, *fakeUserTable) {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("failed to open fake db: %v", err)
	}

	table := &fakeUserTable{records: map[string]models.User{}}

	_ = db.Callback().Query().Replace("gorm:query", func(tx *gorm.DB) {
		record, ok := table.records[whereEmail(tx)]
		if !ok {
			tx.AddError(gorm.ErrRecordNotFound)
			return
		}
		if dest, ok := tx.Statement.Dest.(*models.User); ok {
			*dest = record
			tx.RowsAffected = 1
		}
	})
	_ = db.Callback().Create().Replace("gorm:create", func(tx *gorm.DB) {
		table.createCalls++
		user, ok := tx.Statement.Dest.(*models.User)
		if !ok {
			tx.AddError(gorm.ErrInvalidData)
			return
		}
		if table.raceWinner != nil {
			table.records[table.raceWinner.Email] = *table.raceWinner
			table.raceWinner = nil
		}
		if _, exists := table.records[user.Email]; exists {
			tx.AddError(gorm.ErrDuplicatedKey)
			return
		}
		table.records[user.Email] = *user
		tx.RowsAffected = 1
	})
	return db, table
}

func TestUpsertUser_IdempotentForSameEmail(t *testing.T) {
	db, table := fakeUserDB(t)
	svc := NewUserService(db)

	first, err := svc.Upsert("a@x.com", "Ada", "https://img/a.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.createCalls != 1 {
		t.Fatalf("expected one create, got %d", table.createCalls)
	}
	if first.Role != "user" {
		t.Fatalf("expected default role, got %q", first.Role)
	}

	// Second sign-in with fresh profile data returns the stored record
	// untouched and creates nothing.
	second, err := svc.Upsert("a@x.com", "Ada Updated", "https://img/new.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.createCalls != 1 {
		t.Fatalf("upsert of an existing user must not create, got %d calls", table.createCalls)
	}
	if second.ID != first.ID {
		t.Fatalf("expected the same record, got %s and %s", first.ID, second.ID)
	}
	if second.Name != "Ada" || second.PhotoURL != "https://img/a.png" {
		t.Fatalf("profile fields must not be refreshed, got %+v", second)
	}
}

func TestUpsertUser_LostRaceReturnsWinner(t *testing.T) {
	db, table := fakeUserDB(t)
	svc := NewUserService(db)

	winner, err := svc.Upsert("a@x.com", "Winner", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Reset so the next upsert's lookup misses, then have the concurrent
	// writer land the winner just before our create.
	saved := table.records["a@x.com"]
	delete(table.records, "a@x.com")
	table.raceWinner = &saved

	got, err := svc.Upsert("a@x.com", "Loser", "")
	if err != nil {
		t.Fatalf("losing the race must not surface an error: %v", err)
	}
	if got.ID != winner.ID || got.Name != "Winner" {
		t.Fatalf("expected the winner's record back, got %+v", got)
	}
}

func TestUpsertUser_EmptyEmail(t *testing.T) {
	db, table := fakeUserDB(t)
	svc := NewUserService(db)

	if _, err := svc.Upsert("", "Nobody", ""); err == nil {
		t.Fatal("expected an error for empty email")
	}
	if table.createCalls != 0 {
		t.Fatalf("expected no create, got %d", table.createCalls)
	}
}

func TestGetUserByEmail_AbsentIsNil(t *testing.T) {
	db, _ := fakeUserDB(t)
	svc := NewUserService(db)

	user, err := svc.GetByEmail("ghost@x.com")
	if err != nil {
		t.Fatalf("absence must not be an error: %v", err)
	}
	if user != nil {
		t.Fatalf("expected nil for an unknown email, got %+v", user)
	}
}

func TestGetUserByEmail_Found(t *testing.T) {
	db, _ := fakeUserDB(t)
	svc := NewUserService(db)

	if _, err := svc.Upsert("a@x.com", "Ada", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	user, err := svc.GetByEmail("a@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user == nil || user.Email != "a@x.com" {
		t.Fatalf("expected the stored user, got %+v", user)
	}
}
