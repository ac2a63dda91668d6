package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pkawa95/studytask-api/internal/domain"
	"github.com/pkawa95/studytask-api/internal/platform/logger"
	"github.com/pkawa95/studytask-api/internal/store"
)

// PostgresSubjectStore implements the store.SubjectStore interface using
// a PostgreSQL database as the storage backend.
type PostgresSubjectStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresSubjectStore creates a new PostgreSQL implementation of the
// SubjectStore interface. If logger is nil, the default logger is used.
func NewPostgresSubjectStore(db store.DBTX, logger *slog.Logger) *PostgresSubjectStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresSubjectStore{
		db:     db,
		logger: logger.With(slog.String("component", "subject_store")),
	}
}

// Ensure PostgresSubjectStore implements store.SubjectStore interface
var _ store.SubjectStore = (*PostgresSubjectStore)(nil)

// List implements store.SubjectStore.List
func (s *PostgresSubjectStore) List(ctx context.Context, ownerID uuid.UUID) ([]*domain.Subject, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, owner_id, name, description, teacher, color
		FROM subjects
		WHERE owner_id = $1
		ORDER BY name ASC
	`

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		log.Error("failed to query subjects",
			slog.String("error", err.Error()),
			slog.String("owner_id", ownerID.String()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var subjects []*domain.Subject
	for rows.Next() {
		subject, err := scanSubject(rows)
		if err != nil {
			log.Error("failed to scan subject row",
				slog.String("error", err.Error()))
			return nil, err
		}
		subjects = append(subjects, subject)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	if subjects == nil {
		subjects = []*domain.Subject{}
	}

	return subjects, nil
}

// GetByID implements store.SubjectStore.GetByID. The owner ID is part of
// the query predicate: a subject owned by another user reads as not
// found.
func (s *PostgresSubjectStore) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Subject, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, owner_id, name, description, teacher, color
		FROM subjects
		WHERE id = $1 AND owner_id = $2
	`

	row := s.db.QueryRowContext(ctx, query, id, ownerID)
	subject, err := scanSubject(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("subject not found",
				slog.String("subject_id", id.String()),
				slog.String("owner_id", ownerID.String()))
			return nil, store.ErrSubjectNotFound
		}
		log.Error("failed to get subject by ID",
			slog.String("error", err.Error()),
			slog.String("subject_id", id.String()))
		return nil, err
	}

	return subject, nil
}

// Create implements store.SubjectStore.Create
func (s *PostgresSubjectStore) Create(ctx context.Context, subject *domain.Subject) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := subject.Validate(); err != nil {
		log.Warn("subject validation failed during create",
			slog.String("error", err.Error()),
			slog.String("subject_id", subject.ID.String()))
		return err
	}

	query := `
		INSERT INTO subjects (id, owner_id, name, description, teacher, color)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		subject.ID,
		subject.OwnerID,
		subject.Name,
		subject.Description,
		subject.Teacher,
		subject.Color,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during subject creation",
				slog.String("subject_id", subject.ID.String()),
				slog.String("owner_id", subject.OwnerID.String()))
			return store.ErrInvalidEntity
		}

		log.Error("failed to create subject",
			slog.String("error", err.Error()),
			slog.String("subject_id", subject.ID.String()))
		return err
	}

	log.Info("subject created successfully",
		slog.String("subject_id", subject.ID.String()),
		slog.String("owner_id", subject.OwnerID.String()))
	return nil
}

// Update implements store.SubjectStore.Update
func (s *PostgresSubjectStore) Update(ctx context.Context, subject *domain.Subject) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := subject.Validate(); err != nil {
		log.Warn("subject validation failed during update",
			slog.String("error", err.Error()),
			slog.String("subject_id", subject.ID.String()))
		return err
	}

	query := `
		UPDATE subjects
		SET name = $1, description = $2, teacher = $3, color = $4
		WHERE id = $5 AND owner_id = $6
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		subject.Name,
		subject.Description,
		subject.Teacher,
		subject.Color,
		subject.ID,
		subject.OwnerID,
	)

	if err != nil {
		log.Error("failed to update subject",
			slog.String("error", err.Error()),
			slog.String("subject_id", subject.ID.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("subject_id", subject.ID.String()))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("subject not found for update",
			slog.String("subject_id", subject.ID.String()))
		return store.ErrSubjectNotFound
	}

	return nil
}

// Delete implements store.SubjectStore.Delete
func (s *PostgresSubjectStore) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(
		ctx,
		`DELETE FROM subjects WHERE id = $1 AND owner_id = $2`,
		id,
		ownerID,
	)
	if err != nil {
		log.Error("failed to delete subject",
			slog.String("error", err.Error()),
			slog.String("subject_id", id.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("subject_id", id.String()))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("subject not found for delete",
			slog.String("subject_id", id.String()),
			slog.String("owner_id", ownerID.String()))
		return store.ErrSubjectNotFound
	}

	log.Info("subject deleted successfully",
		slog.String("subject_id", id.String()))
	return nil
}

// WithTx implements store.SubjectStore.WithTx
func (s *PostgresSubjectStore) WithTx(tx *sql.Tx) store.SubjectStore {
	return &PostgresSubjectStore{
		db:     tx,
		logger: s.logger,
	}
}

// scanSubject reads one subject row from either a *sql.Row or *sql.Rows.
func scanSubject(row interface{ Scan(dest ...any) error }) (*domain.Subject, error) {
	var subject domain.Subject
	var description, teacher sql.NullString

	err := row.Scan(
		&subject.ID,
		&subject.OwnerID,
		&subject.Name,
		&description,
		&teacher,
		&subject.Color,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		subject.Description = &description.String
	}
	if teacher.Valid {
		subject.Teacher = &teacher.String
	}

	return &subject, nil
}
