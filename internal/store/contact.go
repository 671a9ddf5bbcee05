package store

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrContactInvalid = errors.New("contact message input is invalid")

type ContactMessage struct {
	ID        string
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}

type CreateContactInput struct {
	Name    string
	Email   string
	Message string
}

func (s *Store) CreateContactMessage(ctx context.Context, input CreateContactInput) (ContactMessage, error) {
	record := ContactMessage{
		ID:        "msg_" + uuid.NewString(),
		Name:      strings.TrimSpace(input.Name),
		Email:     strings.TrimSpace(input.Email),
		Message:   strings.TrimSpace(input.Message),
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	if record.Name == "" || record.Email == "" || record.Message == "" {
		return ContactMessage{}, ErrContactInvalid
	}
	if _, err := mail.ParseAddress(record.Email); err != nil {
		return ContactMessage{}, ErrContactInvalid
	}
	if _, err := s.db.ExecContext(
		ctx,
		`INSERT INTO contact_messages (id, name, email, message, created_at_unix) VALUES (?, ?, ?, ?, ?)`,
		record.ID,
		record.Name,
		record.Email,
		record.Message,
		record.CreatedAt.Unix(),
	); err != nil {
		return ContactMessage{}, fmt.Errorf("insert contact message: %w", err)
	}
	return record, nil
}

func (s *Store) ListContactMessages(ctx context.Context, limit int) ([]ContactMessage, error) {
	if limit < 1 {
		limit = 50
	}
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, name, email, message, created_at_unix
		 FROM contact_messages
		 ORDER BY created_at_unix DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query contact messages: %w", err)
	}
	defer rows.Close()

	results := []ContactMessage{}
	for rows.Next() {
		var record ContactMessage
		var createdAt int64
		if err := rows.Scan(&record.ID, &record.Name, &record.Email, &record.Message, &createdAt); err != nil {
			return nil, err
		}
		record.CreatedAt = time.Unix(createdAt, 0).UTC()
		results = append(results, record)
	}
	return results, nil
}
