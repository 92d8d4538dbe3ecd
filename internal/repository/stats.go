package repository

import (
	"context"
	"fmt"

	"github.com/inkclash/inkclash-server/internal/game"
)

// StatsRepository keeps aggregate win/loss/draw counters per player.
// Only totals are stored; individual matches are not persisted.
type StatsRepository struct {
	db *DB
}

// NewStatsRepository builds the stats store over db.
func NewStatsRepository(db *DB) *StatsRepository {
	return &StatsRepository{db: db}
}

const statsSchema = `
CREATE TABLE IF NOT EXISTS player_stats (
	player_id TEXT PRIMARY KEY,
	wins      INTEGER NOT NULL DEFAULT 0,
	losses    INTEGER NOT NULL DEFAULT 0,
	draws     INTEGER NOT NULL DEFAULT 0
)`

// EnsureSchema creates the stats table when it does not exist yet.
func (r *StatsRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Pool.Exec(ctx, statsSchema); err != nil {
		return fmt.Errorf("creating player_stats table: %w", err)
	}
	return nil
}

const upsertStat = `
INSERT INTO player_stats (player_id, wins, losses, draws)
VALUES ($1, $2, $3, $4)
ON CONFLICT (player_id) DO UPDATE SET
	wins   = player_stats.wins   + EXCLUDED.wins,
	losses = player_stats.losses + EXCLUDED.losses,
	draws  = player_stats.draws  + EXCLUDED.draws`

// RecordResult bumps both players' aggregates for one finished game.
func (r *StatsRepository) RecordResult(ctx context.Context, playerOne, playerTwo string, winner game.Winner) error {
	type line struct {
		id                  string
		wins, losses, draws int
	}
	var lines [2]line
	switch winner {
	case game.WinnerPlayerOne:
		lines = [2]line{{id: playerOne, wins: 1}, {id: playerTwo, losses: 1}}
	case game.WinnerPlayerTwo:
		lines = [2]line{{id: playerOne, losses: 1}, {id: playerTwo, wins: 1}}
	default:
		lines = [2]line{{id: playerOne, draws: 1}, {id: playerTwo, draws: 1}}
	}

	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("starting stats transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, l := range lines {
		if _, err := tx.Exec(ctx, upsertStat, l.id, l.wins, l.losses, l.draws); err != nil {
			return fmt.Errorf("upserting stats for %s: %w", l.id, err)
		}
	}
	return tx.Commit(ctx)
}

// PlayerStats is one player's lifetime record.
type PlayerStats struct {
	PlayerID string
	Wins     int
	Losses   int
	Draws    int
}

// Stats fetches one player's record. A player never seen before
// reports zeroes.
func (r *StatsRepository) Stats(ctx context.Context, playerID string) (PlayerStats, error) {
	const q = `SELECT wins, losses, draws FROM player_stats WHERE player_id = $1`
	out := PlayerStats{PlayerID: playerID}
	rows, err := r.db.Pool.Query(ctx, q, playerID)
	if err != nil {
		return out, fmt.Errorf("querying stats for %s: %w", playerID, err)
	}
	defer rows.Close()
	if rows.Next() {
		if err := rows.Scan(&out.Wins, &out.Losses, &out.Draws); err != nil {
			return out, fmt.Errorf("scanning stats for %s: %w", playerID, err)
		}
	}
	return out, rows.Err()
}
