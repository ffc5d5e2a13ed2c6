package database

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// Seed populates the database with initial development data: the default
// jewelry category set, one sample product, and one sample chat template.
// It is a no-op when any categories already exist.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		return fmt.Errorf("seed check categories: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	categories := []struct {
		name  string
		value string
	}{
		{"Nhẫn", "nhan"},
		{"Vòng Tay", "vong-tay"},
		{"Dây Chuyền", "day-chuyen"},
		{"Khuyên Tai", "khuyen-tai"},
		{"Lắc Chân", "lac-chan"},
	}
	for _, c := range categories {
		if _, err := db.Exec(
			`INSERT INTO categories (name, value) VALUES ($1, $2)`, c.name, c.value,
		); err != nil {
			return fmt.Errorf("seed insert category %q: %w", c.value, err)
		}
	}

	_, err := db.Exec(`
		INSERT INTO products (code, name, type, price, material, images, links, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, "001", "Nhẫn Bạc 925", "nhan", "250.000đ", "Bạc 925",
		`[]`, `[{"label":"Shopee","url":"https://shopee.vn/meibeichi"}]`, 0)
	if err != nil {
		return fmt.Errorf("seed insert product: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO chats (title, lines, pin) VALUES ($1, $2, $3)
	`, "Chào khách", `["Chào bạn, shop có thể giúp gì cho bạn ạ?","Bạn cần tư vấn size nhẫn không ạ?"]`, true)
	if err != nil {
		return fmt.Errorf("seed insert chat: %w", err)
	}

	slog.Info("database seeded with default categories and sample data",
		"categories", len(categories),
	)
	return nil
}
