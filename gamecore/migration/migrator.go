package migration

import (
	"bufio"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/sync/errgroup"

	"github.com/ethernalpaths/gamecore/gamecore/catalog"
	"github.com/ethernalpaths/gamecore/gamecore/database/models"
	"github.com/ethernalpaths/gamecore/gamecore/database/repositories"
)

// Migrator imports the legacy Mongo backend's bsondump exports into the new
// schema. It is run once per deployment with the -import-legacy flag.
type Migrator struct {
	catalog      *catalog.Catalog
	players      repositories.PlayerRepository
	stats        repositories.StatsRepository
	cards        repositories.CardRepository
	quests       repositories.QuestRepository
	achievements repositories.AchievementRepository
	claims       repositories.ClaimRepository

	dataDir string
	report  ImportStats
}

func NewMigrator(
	cat *catalog.Catalog,
	players repositories.PlayerRepository,
	stats repositories.StatsRepository,
	cards repositories.CardRepository,
	quests repositories.QuestRepository,
	achievements repositories.AchievementRepository,
	claims repositories.ClaimRepository,
	dataDir string,
) *Migrator {
	return &Migrator{
		catalog:      cat,
		players:      players,
		stats:        stats,
		cards:        cards,
		quests:       quests,
		achievements: achievements,
		claims:       claims,
		dataDir:      dataDir,
		report: ImportStats{
			Players: make(map[string]*TableStats),
			Start:   time.Now(),
		},
	}
}

// ImportAll parses the three dump files concurrently, then imports them in
// dependency order: players first, then their quests and claims.
func (m *Migrator) ImportAll(ctx context.Context) error {
	var (
		mongoPlayers []MongoPlayer
		mongoQuests  []MongoQuestCompletion
		mongoClaims  []MongoClaim
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		return readBSONFile(filepath.Join(m.dataDir, "players.bson"), &mongoPlayers)
	})
	g.Go(func() error {
		return readBSONFile(filepath.Join(m.dataDir, "questcompletions.bson"), &mongoQuests)
	})
	g.Go(func() error {
		return readBSONFile(filepath.Join(m.dataDir, "claims.bson"), &mongoClaims)
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to parse legacy dumps: %w", err)
	}

	slog.Info("Legacy dumps parsed",
		slog.Int("players", len(mongoPlayers)),
		slog.Int("quest_completions", len(mongoQuests)),
		slog.Int("claims", len(mongoClaims)),
	)

	idByDevice := make(map[string]int64, len(mongoPlayers))
	for _, mp := range mongoPlayers {
		id, err := m.importPlayer(ctx, mp)
		if err != nil {
			return fmt.Errorf("failed to import player %s: %w", mp.DeviceID, err)
		}
		idByDevice[mp.DeviceID] = id
	}

	if err := m.importQuests(ctx, mongoQuests, idByDevice); err != nil {
		return err
	}
	if err := m.importClaims(ctx, mongoClaims, idByDevice); err != nil {
		return err
	}

	slog.Info("Legacy import finished",
		slog.Duration("took", time.Since(m.report.Start)),
	)
	return nil
}

func (m *Migrator) importPlayer(ctx context.Context, mp MongoPlayer) (int64, error) {
	player := &models.Player{
		DeviceID: mp.DeviceID,
		Username: mp.Username,
		XP:       mp.XP,
		Level:    mp.Level,
	}
	if player.Level < 1 {
		player.Level = 1
	}
	if err := m.players.Create(ctx, player); err != nil {
		return 0, err
	}

	record, err := m.stats.Get(ctx, player.ID)
	if err != nil {
		return 0, err
	}
	record.FriendsCount = len(mp.Friends)
	record.FriendTeams = mp.FriendTeams
	record.LoginStreak = mp.LoginStreak
	record.LastLoginAt = mp.LastLogin
	record.TotalDistanceWalked = mp.Distance
	record.WorkshopVisited = mp.Workshop
	record.RewardsRedeemed = mp.Redeemed
	if err := m.stats.Update(ctx, record); err != nil {
		return 0, err
	}

	imported, skippedCards := 0, 0
	for _, rawID := range mp.Cards {
		cardID := catalog.NormalizeCardID(rawID)
		if _, ok := m.catalog.CardByID(cardID); !ok {
			// Old test content no longer in the catalog.
			skippedCards++
			continue
		}
		added, err := m.cards.Add(ctx, player.ID, cardID)
		if err != nil {
			return 0, err
		}
		if added {
			imported++
		}
	}
	if imported > 0 {
		record.CollectedCards = imported
		if err := m.stats.Update(ctx, record); err != nil {
			return 0, err
		}
	}

	for _, key := range mp.Unlocked {
		if _, ok := m.catalog.AchievementByKey(key); !ok {
			slog.Warn("Unlocked achievement no longer in the catalog, skipping",
				slog.String("device_id", mp.DeviceID),
				slog.String("achievement_key", key),
			)
			continue
		}
		if err := m.achievements.Unlock(ctx, player.ID, key); err != nil {
			return 0, err
		}
	}

	m.report.Players[mp.DeviceID] = &TableStats{
		Read:     len(mp.Cards),
		Imported: imported,
		Skipped:  skippedCards,
	}
	return player.ID, nil
}

func (m *Migrator) importQuests(ctx context.Context, quests []MongoQuestCompletion, idByDevice map[string]int64) error {
	questsCompleted := make(map[int64]int)

	for _, mq := range quests {
		playerID, ok := idByDevice[mq.DeviceID]
		if !ok {
			slog.Warn("Quest completion for unknown player, skipping",
				slog.String("device_id", mq.DeviceID),
				slog.String("quest_id", mq.QuestID),
			)
			continue
		}
		if err := m.quests.RecordCompletion(ctx, &models.QuestCompletion{
			PlayerID:        playerID,
			QuestID:         mq.QuestID,
			Kind:            mq.Kind,
			Country:         mq.Country,
			DurationSeconds: mq.Duration,
			XPAwarded:       mq.XPAwarded,
			CompletedAt:     mq.CompletedAt,
		}); err != nil {
			return fmt.Errorf("failed to import quest completion: %w", err)
		}
		questsCompleted[playerID]++
	}

	// Rebuild the counter from the imported rows so it matches exactly.
	for playerID, count := range questsCompleted {
		record, err := m.stats.Get(ctx, playerID)
		if err != nil {
			return err
		}
		record.QuestsCompleted = count
		if err := m.stats.Update(ctx, record); err != nil {
			return err
		}
	}
	return nil
}

func (m *Migrator) importClaims(ctx context.Context, claims []MongoClaim, idByDevice map[string]int64) error {
	for _, mc := range claims {
		playerID, ok := idByDevice[mc.DeviceID]
		if !ok {
			continue
		}
		if _, ok := m.catalog.ChallengeByID(mc.ChallengeID); !ok {
			continue
		}
		if _, err := m.claims.Insert(ctx, &models.ChallengeClaim{
			ClaimCode:   mc.Code,
			PlayerID:    playerID,
			ChallengeID: mc.ChallengeID,
			ClaimedAt:   mc.ClaimedAt,
		}); err != nil {
			return fmt.Errorf("failed to import claim: %w", err)
		}
	}
	return nil
}

// readBSONFile streams a bsondump file: each document is a little-endian
// length prefix followed by the document bytes, back to back.
func readBSONFile[T any](path string, out *[]T) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", filepath.Base(path), err)
	}
	defer file.Close()

	reader := bufio.NewReaderSize(file, 1<<20)
	for {
		var length int32
		if err := binary.Read(reader, binary.LittleEndian, &length); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to read document length: %w", err)
		}
		if length < 5 {
			return fmt.Errorf("invalid document length %d in %s", length, filepath.Base(path))
		}

		doc := make([]byte, length)
		binary.LittleEndian.PutUint32(doc[:4], uint32(length))
		if _, err := io.ReadFull(reader, doc[4:]); err != nil {
			return fmt.Errorf("failed to read document body: %w", err)
		}

		var value T
		if err := bson.Unmarshal(doc, &value); err != nil {
			return fmt.Errorf("failed to unmarshal document: %w", err)
		}
		*out = append(*out, value)
	}
}
