package sqlite_test

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/example/permlog/internal/adapters/sqlite"
)

func TestPlayerRepository_LookupUUID(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewPlayerRepository(db)
	ctx := context.Background()

	if err := repo.SaveUsername(ctx, notchID, "notch"); err != nil {
		t.Fatalf("SaveUsername failed: %v", err)
	}

	t.Run("finds cached username", func(t *testing.T) {
		id, found, err := repo.LookupUUID(ctx, "notch")
		if err != nil {
			t.Fatalf("LookupUUID failed: %v", err)
		}
		if !found {
			t.Fatal("expected username to be found")
		}
		if id != notchID {
			t.Errorf("LookupUUID = %s, want %s", id, notchID)
		}
	})

	t.Run("unknown username is not an error", func(t *testing.T) {
		id, found, err := repo.LookupUUID(ctx, "ghost")
		if err != nil {
			t.Fatalf("LookupUUID failed: %v", err)
		}
		if found || id != uuid.Nil {
			t.Errorf("LookupUUID(ghost) = %s, %v, want nil, false", id, found)
		}
	})

	t.Run("lookup is exact", func(t *testing.T) {
		_, found, err := repo.LookupUUID(ctx, "Notch")
		if err != nil {
			t.Fatalf("LookupUUID failed: %v", err)
		}
		if found {
			t.Error("expected callers to lower-case usernames before lookup")
		}
	})
}

func TestPlayerRepository_SaveUsername(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewPlayerRepository(db)
	ctx := context.Background()

	t.Run("rename replaces old username", func(t *testing.T) {
		if err := repo.SaveUsername(ctx, jebID, "jeb"); err != nil {
			t.Fatalf("SaveUsername failed: %v", err)
		}
		if err := repo.SaveUsername(ctx, jebID, "jeb_"); err != nil {
			t.Fatalf("SaveUsername failed: %v", err)
		}

		if _, found, _ := repo.LookupUUID(ctx, "jeb"); found {
			t.Error("old username should no longer resolve")
		}
		id, found, err := repo.LookupUUID(ctx, "jeb_")
		if err != nil || !found || id != jebID {
			t.Errorf("LookupUUID(jeb_) = %s, %v, %v, want %s", id, found, err, jebID)
		}
	})

	t.Run("username moves to new owner", func(t *testing.T) {
		if err := repo.SaveUsername(ctx, notchID, "jeb_"); err != nil {
			t.Fatalf("SaveUsername failed: %v", err)
		}

		id, found, err := repo.LookupUUID(ctx, "jeb_")
		if err != nil || !found || id != notchID {
			t.Errorf("LookupUUID(jeb_) = %s, %v, %v, want %s", id, found, err, notchID)
		}
	})
}
