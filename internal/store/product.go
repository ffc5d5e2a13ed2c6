// Package store implements typed CRUD over the three catalog collections:
// products, categories, and chats.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/BlackZ36/Meibeichi/internal/models"
)

// ProductStore handles all product-related database operations.
type ProductStore struct {
	db *sql.DB
}

// NewProductStore creates a new ProductStore with the given database connection.
func NewProductStore(db *sql.DB) *ProductStore {
	return &ProductStore{db: db}
}

// productColumns lists the columns selected in product queries.
const productColumns = `id, code, name, type, price, material, images, links, sort_order, date, updated_at`

// scanProduct scans a product row, decoding the jsonb list columns.
func scanProduct(scanner interface{ Scan(...any) error }) (*models.Product, error) {
	var p models.Product
	var images, links []byte
	err := scanner.Scan(
		&p.ID, &p.Code, &p.Name, &p.Type, &p.Price, &p.Material,
		&images, &links, &p.Order, &p.Date, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(images, &p.Images); err != nil {
		return nil, fmt.Errorf("decode images: %w", err)
	}
	if err := json.Unmarshal(links, &p.Links); err != nil {
		return nil, fmt.Errorf("decode links: %w", err)
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Links == nil {
		p.Links = []models.LinkRow{}
	}
	return &p, nil
}

// jsonList marshals a list-valued field for a jsonb column. A nil slice
// is stored as an empty array, never as SQL/JSON null.
func jsonList(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if string(b) == "null" {
		return []byte("[]"), nil
	}
	return b, nil
}

// List returns all products ordered by creation date ascending. The
// catalog pipeline derives every display ordering from this stable base.
func (s *ProductStore) List() ([]models.Product, error) {
	rows, err := s.db.Query(`
		SELECT ` + productColumns + `
		FROM products
		ORDER BY date ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var items []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// FindByID retrieves a product by its UUID. Returns nil if not found.
func (s *ProductStore) FindByID(id uuid.UUID) (*models.Product, error) {
	row := s.db.QueryRow(`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find product by id: %w", err)
	}
	return p, nil
}

// Create inserts a new product and returns it with the generated ID and
// timestamps.
func (s *ProductStore) Create(p *models.Product) (*models.Product, error) {
	images, err := jsonList(p.Images)
	if err != nil {
		return nil, fmt.Errorf("encode images: %w", err)
	}
	links, err := jsonList(p.Links)
	if err != nil {
		return nil, fmt.Errorf("encode links: %w", err)
	}

	row := s.db.QueryRow(`
		INSERT INTO products (code, name, type, price, material, images, links, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+productColumns,
		p.Code, p.Name, p.Type, p.Price, p.Material, images, links, p.Order,
	)
	result, err := scanProduct(row)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return result, nil
}

// Update writes all mutable fields of an existing product. Callers merge
// partial edits into a fetched record before calling Update.
func (s *ProductStore) Update(p *models.Product) error {
	images, err := jsonList(p.Images)
	if err != nil {
		return fmt.Errorf("encode images: %w", err)
	}
	links, err := jsonList(p.Links)
	if err != nil {
		return fmt.Errorf("encode links: %w", err)
	}

	_, err = s.db.Exec(`
		UPDATE products SET
			code = $1, name = $2, type = $3, price = $4, material = $5,
			images = $6, links = $7, sort_order = $8, updated_at = NOW()
		WHERE id = $9
	`, p.Code, p.Name, p.Type, p.Price, p.Material, images, links, p.Order, p.ID)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// SetOrder persists only the pin priority. Used by pin/unpin, which
// never touches the other fields.
func (s *ProductStore) SetOrder(id uuid.UUID, order int) error {
	_, err := s.db.Exec(
		`UPDATE products SET sort_order = $1, updated_at = NOW() WHERE id = $2`,
		order, id,
	)
	if err != nil {
		return fmt.Errorf("set product order: %w", err)
	}
	return nil
}

// Delete removes a product by ID.
func (s *ProductStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// Count returns the total number of products.
func (s *ProductStore) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return count, nil
}
