package migration

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/mock/gomock"

	"github.com/ethernalpaths/gamecore/gamecore/catalog"
	"github.com/ethernalpaths/gamecore/gamecore/database/models"
	"github.com/ethernalpaths/gamecore/gamecore/database/repositories/mock"
)

func writeDump[T any](t *testing.T, path string, docs []T) {
	t.Helper()
	var buf []byte
	for _, doc := range docs {
		raw, err := bson.Marshal(doc)
		if err != nil {
			t.Fatalf("failed to marshal document: %v", err)
		}
		buf = append(buf, raw...)
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", filepath.Base(path), err)
	}
}

func TestImportAll_PlayerCardsAndAchievements(t *testing.T) {
	cat, err := catalog.New()
	if err != nil {
		t.Fatalf("catalog.New() error = %v", err)
	}

	dir := t.TempDir()
	writeDump(t, filepath.Join(dir, "players.bson"), []MongoPlayer{{
		DeviceID:  "dev-1",
		Username:  "anna",
		XP:        500,
		Level:     1,
		Cards:     []string{"card_ivo", "ethernal:card:card_marcus", "card_legacy_ghost"},
		Unlocked:  []string{"first_steps", "legacy_badge"},
		LastLogin: time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC),
	}})
	writeDump(t, filepath.Join(dir, "questcompletions.bson"), []MongoQuestCompletion{})
	writeDump(t, filepath.Join(dir, "claims.bson"), []MongoClaim{})

	ctrl := gomock.NewController(t)
	players := mock.NewMockPlayerRepository(ctrl)
	stats := mock.NewMockStatsRepository(ctrl)
	cards := mock.NewMockCardRepository(ctrl)
	quests := mock.NewMockQuestRepository(ctrl)
	achievements := mock.NewMockAchievementRepository(ctrl)
	claims := mock.NewMockClaimRepository(ctrl)

	players.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *models.Player) error {
			p.ID = 7
			return nil
		})

	record := &models.PlayerStats{PlayerID: 7}
	stats.EXPECT().Get(gomock.Any(), int64(7)).Return(record, nil)
	var updates []models.PlayerStats
	stats.EXPECT().Update(gomock.Any(), record).DoAndReturn(
		func(context.Context, *models.PlayerStats) error {
			updates = append(updates, *record)
			return nil
		}).Times(2)

	// The unknown legacy card and achievement key are skipped; the prefixed
	// card id is normalized before the lookup.
	cards.EXPECT().Add(gomock.Any(), int64(7), "card_ivo").Return(true, nil)
	cards.EXPECT().Add(gomock.Any(), int64(7), "card_marcus").Return(true, nil)
	achievements.EXPECT().Unlock(gomock.Any(), int64(7), "first_steps").Return(nil)

	m := NewMigrator(cat, players, stats, cards, quests, achievements, claims, dir)
	if err := m.ImportAll(context.Background()); err != nil {
		t.Fatalf("ImportAll() error = %v", err)
	}

	final := updates[len(updates)-1]
	if final.CollectedCards != 2 {
		t.Errorf("CollectedCards = %d, want 2", final.CollectedCards)
	}

	report := m.report.Players["dev-1"]
	if report == nil {
		t.Fatalf("no import report for dev-1")
	}
	if report.Read != 3 || report.Imported != 2 || report.Skipped != 1 {
		t.Errorf("card report = read %d imported %d skipped %d, want 3/2/1",
			report.Read, report.Imported, report.Skipped)
	}
}
