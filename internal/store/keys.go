package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrKeyNotFound = errors.New("api key not found")
	ErrKeyInvalid  = errors.New("api key input is invalid")
)

type APIKey struct {
	ID        string
	Name      string
	Value     string
	Usage     int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateKeyInput struct {
	Name  string
	Value string
	Usage int64
	// Prefix is prepended to generated values when Value is empty.
	Prefix string
}

// ReplaceKeyInput overwrites every field. An empty Value keeps the stored one.
type ReplaceKeyInput struct {
	ID    string
	Name  string
	Value string
	Usage int64
}

// PatchKeyInput changes only the non-nil fields.
type PatchKeyInput struct {
	ID    string
	Name  *string
	Value *string
	Usage *int64
}

// GenerateKeyValue returns prefix followed by 32 random hex characters.
func GenerateKeyValue(prefix string) string {
	return prefix + strings.ReplaceAll(uuid.NewString(), "-", "")
}

func (s *Store) CreateKey(ctx context.Context, input CreateKeyInput) (APIKey, error) {
	now := time.Now().UTC().Truncate(time.Second)
	record := APIKey{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(input.Name),
		Value:     strings.TrimSpace(input.Value),
		Usage:     input.Usage,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if record.Name == "" || record.Usage < 0 {
		return APIKey{}, ErrKeyInvalid
	}
	if record.Value == "" {
		record.Value = GenerateKeyValue(input.Prefix)
	}
	if _, err := s.db.ExecContext(
		ctx,
		`INSERT INTO api_keys (id, name, value, usage, created_at_unix, updated_at_unix)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.Name,
		record.Value,
		record.Usage,
		record.CreatedAt.Unix(),
		record.UpdatedAt.Unix(),
	); err != nil {
		return APIKey{}, fmt.Errorf("insert api key: %w", err)
	}
	return record, nil
}

// ListKeys returns every key, newest first.
func (s *Store) ListKeys(ctx context.Context) ([]APIKey, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, name, value, usage, created_at_unix, updated_at_unix
		 FROM api_keys
		 ORDER BY created_at_unix DESC, rowid DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query api keys: %w", err)
	}
	defer rows.Close()

	results := []APIKey{}
	for rows.Next() {
		record, scanErr := scanKey(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		results = append(results, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate api keys: %w", err)
	}
	return results, nil
}

func (s *Store) LookupKey(ctx context.Context, id string) (APIKey, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT id, name, value, usage, created_at_unix, updated_at_unix
		 FROM api_keys
		 WHERE id = ?`,
		strings.TrimSpace(id),
	)
	record, err := scanKey(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return APIKey{}, ErrKeyNotFound
		}
		return APIKey{}, err
	}
	return record, nil
}

func (s *Store) ReplaceKey(ctx context.Context, input ReplaceKeyInput) (APIKey, error) {
	name := strings.TrimSpace(input.Name)
	value := strings.TrimSpace(input.Value)
	return s.PatchKey(ctx, PatchKeyInput{
		ID:    input.ID,
		Name:  &name,
		Value: &value,
		Usage: &input.Usage,
	})
}

func (s *Store) PatchKey(ctx context.Context, input PatchKeyInput) (APIKey, error) {
	id := strings.TrimSpace(input.ID)
	if id == "" {
		return APIKey{}, ErrKeyInvalid
	}
	current, err := s.LookupKey(ctx, id)
	if err != nil {
		return APIKey{}, err
	}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return APIKey{}, ErrKeyInvalid
		}
		current.Name = name
	}
	if input.Value != nil {
		if value := strings.TrimSpace(*input.Value); value != "" {
			current.Value = value
		}
	}
	if input.Usage != nil {
		if *input.Usage < 0 {
			return APIKey{}, ErrKeyInvalid
		}
		current.Usage = *input.Usage
	}
	current.UpdatedAt = time.Now().UTC().Truncate(time.Second)

	result, err := s.db.ExecContext(
		ctx,
		`UPDATE api_keys
		 SET name = ?, value = ?, usage = ?, updated_at_unix = ?
		 WHERE id = ?`,
		current.Name,
		current.Value,
		current.Usage,
		current.UpdatedAt.Unix(),
		id,
	)
	if err != nil {
		return APIKey{}, fmt.Errorf("update api key: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return APIKey{}, ErrKeyNotFound
	}
	return current, nil
}

func (s *Store) DeleteKey(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrKeyInvalid
	}
	result, err := s.db.ExecContext(ctx, `DELETE FROM api_keys WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete api key: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete api key rows: %w", err)
	}
	if affected == 0 {
		return ErrKeyNotFound
	}
	return nil
}

func scanKey(scanner rowScanner) (APIKey, error) {
	var record APIKey
	var createdAt int64
	var updatedAt int64
	if err := scanner.Scan(
		&record.ID,
		&record.Name,
		&record.Value,
		&record.Usage,
		&createdAt,
		&updatedAt,
	); err != nil {
		return APIKey{}, err
	}
	record.CreatedAt = time.Unix(createdAt, 0).UTC()
	record.UpdatedAt = time.Unix(updatedAt, 0).UTC()
	return record, nil
}
