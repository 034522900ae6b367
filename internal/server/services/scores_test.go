package services

import (
	"context"
	"errors"
	"testing"

	"github.com/reddsec/scoreboard/internal/common"
	"github.com/reddsec/scoreboard/internal/server/models"
)

func TestSubmit_Success(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{s: &fakeScoresRepo{}}
	svc := NewScoreService(db, rm)

	if err := svc.Submit(context.Background(), "  alice  ", 4200); err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if rm.s.insertName != "alice" {
		t.Fatalf("expected trimmed name, got %q", rm.s.insertName)
	}
	if rm.s.insertVal != 4200 {
		t.Fatalf("unexpected score stored: %d", rm.s.insertVal)
	}
}

func TestSubmit_InvalidInput(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{s: &fakeScoresRepo{}}
	svc := NewScoreService(db, rm)

	tests := []struct {
		name   string
		player string
		score  int64
	}{
		{"empty name", "   ", 100},
		{"name too long", "sixteen_chars___", 100},
		{"negative score", "alice", -1},
		{"score too large", "alice", 1_000_001},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Submit(context.Background(), tt.player, tt.score)
			var ve *common.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestTop_ReturnsEntries(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{s: &fakeScoresRepo{topOut: []models.ScoreEntry{
		{Name: "alice", Score: 9000},
		{Name: "bob", Score: 5000},
	}}}
	svc := NewScoreService(db, rm)

	got, err := svc.Top(context.Background())
	if err != nil {
		t.Fatalf("Top error: %v", err)
	}
	if len(got) != 2 || got[0].Name != "alice" {
		t.Fatalf("unexpected entries: %+v", got)
	}
}

func TestTop_RepoError(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{s: &fakeScoresRepo{topErr: errors.New("db down")}}
	svc := NewScoreService(db, rm)

	_, err := svc.Top(context.Background())
	if !errors.Is(err, common.ErrorInternal) {
		t.Fatalf("expected ErrorInternal, got %v", err)
	}
}

func TestSearch_Found(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{s: &fakeScoresRepo{bestOut: &models.ScoreEntry{Name: "alice", Score: 9000}}}
	svc := NewScoreService(db, rm)

	got, err := svc.Search(context.Background(), "alice")
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if got.Score != 9000 {
		t.Fatalf("unexpected entry: %+v", got)
	}
}

func TestSearch_NotFound(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{s: &fakeScoresRepo{bestErr: common.ErrorNotFound}}
	svc := NewScoreService(db, rm)

	_, err := svc.Search(context.Background(), "nobody")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}
