package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/BlackZ36/Meibeichi/internal/models"
)

// ChatStore manages reusable chat reply templates.
type ChatStore struct {
	db *sql.DB
}

// NewChatStore returns a new ChatStore.
func NewChatStore(db *sql.DB) *ChatStore {
	return &ChatStore{db: db}
}

const chatColumns = `id, title, lines, pin, created_at`

func scanChat(scanner interface{ Scan(...any) error }) (*models.Chat, error) {
	var c models.Chat
	var lines []byte
	err := scanner.Scan(&c.ID, &c.Title, &lines, &c.Pin, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(lines, &c.Values); err != nil {
		return nil, fmt.Errorf("decode chat values: %w", err)
	}
	if c.Values == nil {
		c.Values = []string{}
	}
	return &c, nil
}

// List returns all chats with pinned templates first, otherwise in
// creation order.
func (s *ChatStore) List() ([]models.Chat, error) {
	rows, err := s.db.Query(`
		SELECT ` + chatColumns + `
		FROM chats
		ORDER BY pin DESC, created_at ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list chats: %w", err)
	}
	defer rows.Close()

	var items []models.Chat
	for rows.Next() {
		c, err := scanChat(rows)
		if err != nil {
			return nil, fmt.Errorf("scan chat: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// ListPinned returns only pinned chats, in creation order. The catalog
// page shows these next to the product detail panel.
func (s *ChatStore) ListPinned() ([]models.Chat, error) {
	rows, err := s.db.Query(`
		SELECT ` + chatColumns + `
		FROM chats
		WHERE pin
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list pinned chats: %w", err)
	}
	defer rows.Close()

	var items []models.Chat
	for rows.Next() {
		c, err := scanChat(rows)
		if err != nil {
			return nil, fmt.Errorf("scan chat: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// FindByID retrieves a chat by ID. Returns nil if not found.
func (s *ChatStore) FindByID(id uuid.UUID) (*models.Chat, error) {
	row := s.db.QueryRow(`SELECT `+chatColumns+` FROM chats WHERE id = $1`, id)
	c, err := scanChat(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find chat by id: %w", err)
	}
	return c, nil
}

// Create inserts a new chat and returns it with the generated ID.
func (s *ChatStore) Create(c *models.Chat) (*models.Chat, error) {
	lines, err := jsonList(c.Values)
	if err != nil {
		return nil, fmt.Errorf("encode chat values: %w", err)
	}

	row := s.db.QueryRow(`
		INSERT INTO chats (title, lines, pin) VALUES ($1, $2, $3)
		RETURNING `+chatColumns,
		c.Title, lines, c.Pin,
	)
	result, err := scanChat(row)
	if err != nil {
		return nil, fmt.Errorf("create chat: %w", err)
	}
	return result, nil
}

// Update writes the title, value lines, and pin flag of an existing chat.
func (s *ChatStore) Update(c *models.Chat) error {
	lines, err := jsonList(c.Values)
	if err != nil {
		return fmt.Errorf("encode chat values: %w", err)
	}

	_, err = s.db.Exec(
		`UPDATE chats SET title = $1, lines = $2, pin = $3 WHERE id = $4`,
		c.Title, lines, c.Pin, c.ID,
	)
	if err != nil {
		return fmt.Errorf("update chat: %w", err)
	}
	return nil
}

// Delete removes a chat by ID.
func (s *ChatStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM chats WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete chat: %w", err)
	}
	return nil
}
