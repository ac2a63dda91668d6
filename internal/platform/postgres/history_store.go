package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pkawa95/studytask-api/internal/domain"
	"github.com/pkawa95/studytask-api/internal/platform/logger"
	"github.com/pkawa95/studytask-api/internal/store"
)

// PostgresHistoryStore implements the store.HistoryStore interface using
// a PostgreSQL database as the storage backend.
type PostgresHistoryStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresHistoryStore creates a new PostgreSQL implementation of the
// HistoryStore interface. If logger is nil, the default logger is used.
func NewPostgresHistoryStore(db store.DBTX, logger *slog.Logger) *PostgresHistoryStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresHistoryStore{
		db:     db,
		logger: logger.With(slog.String("component", "history_store")),
	}
}

// Ensure PostgresHistoryStore implements store.HistoryStore interface
var _ store.HistoryStore = (*PostgresHistoryStore)(nil)

// Append implements store.HistoryStore.Append
func (s *PostgresHistoryStore) Append(ctx context.Context, entry *domain.HistoryEntry) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := entry.Validate(); err != nil {
		log.Warn("history entry validation failed during append",
			slog.String("error", err.Error()),
			slog.String("task_id", entry.TaskID.String()))
		return err
	}

	query := `
		INSERT INTO task_history (id, task_id, user_id, action, timestamp)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		entry.ID,
		entry.TaskID,
		entry.UserID,
		entry.Action,
		entry.Timestamp,
	)

	if err != nil {
		log.Error("failed to append history entry",
			slog.String("error", err.Error()),
			slog.String("task_id", entry.TaskID.String()),
			slog.String("action", string(entry.Action)))
		return err
	}

	return nil
}

// ListByUser implements store.HistoryStore.ListByUser
func (s *PostgresHistoryStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.HistoryEntry, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, task_id, user_id, action, timestamp
		FROM task_history
		WHERE user_id = $1
		ORDER BY timestamp DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to query history entries",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var entries []*domain.HistoryEntry
	for rows.Next() {
		var entry domain.HistoryEntry
		var action string

		err := rows.Scan(
			&entry.ID,
			&entry.TaskID,
			&entry.UserID,
			&action,
			&entry.Timestamp,
		)
		if err != nil {
			log.Error("failed to scan history row",
				slog.String("error", err.Error()))
			return nil, err
		}

		entry.Action = domain.HistoryAction(action)
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	if entries == nil {
		entries = []*domain.HistoryEntry{}
	}

	return entries, nil
}

// DeleteByTask implements store.HistoryStore.DeleteByTask
func (s *PostgresHistoryStore) DeleteByTask(ctx context.Context, taskID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	_, err := s.db.ExecContext(
		ctx,
		`DELETE FROM task_history WHERE task_id = $1`,
		taskID,
	)
	if err != nil {
		log.Error("failed to delete history entries by task",
			slog.String("error", err.Error()),
			slog.String("task_id", taskID.String()))
		return err
	}

	return nil
}

// DeleteByTasks implements store.HistoryStore.DeleteByTasks. The batches
// here are small (a subject's tasks), so one statement per task keeps the
// SQL simple.
func (s *PostgresHistoryStore) DeleteByTasks(ctx context.Context, taskIDs []uuid.UUID) error {
	for _, id := range taskIDs {
		if err := s.DeleteByTask(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// WithTx implements store.HistoryStore.WithTx
func (s *PostgresHistoryStore) WithTx(tx *sql.Tx) store.HistoryStore {
	return &PostgresHistoryStore{
		db:     tx,
		logger: s.logger,
	}
}
