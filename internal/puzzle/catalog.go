// Package puzzle holds the pictures shipped with the game and picks the
// one for a given day.
package puzzle

import (
	"crypto/hmac"
	"crypto/sha256"
	"embed"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"

	"github.com/KirkDiggler/blrd/internal/models"
)

//go:embed assets/puzzles.json
var assets embed.FS

// DefaultSalt keeps the daily pick stable across devices when unset
const DefaultSalt = "blrd"

var (
	ErrEmptyCatalog   = errors.New("puzzle catalog is empty")
	ErrPuzzleNotFound = errors.New("puzzle not found")
)

// Catalog is an ordered list of validated puzzles
type Catalog struct {
	puzzles []*models.Puzzle
	salt    string
}

// Config holds configuration for a catalog
type Config struct {
	// Salt feeds the daily pick
	Salt string

	// Data overrides the embedded puzzles when set
	Data []byte
}

// Load decodes and validates the puzzles
func Load(cfg *Config) (*Catalog, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	data := cfg.Data
	if data == nil {
		var err error
		data, err = assets.ReadFile("assets/puzzles.json")
		if err != nil {
			return nil, fmt.Errorf("failed to read puzzles: %w", err)
		}
	}

	var puzzles []*models.Puzzle
	if err := json.Unmarshal(data, &puzzles); err != nil {
		return nil, fmt.Errorf("failed to unmarshal puzzles: %w", err)
	}
	if len(puzzles) == 0 {
		return nil, ErrEmptyCatalog
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	for i, p := range puzzles {
		if p == nil {
			return nil, fmt.Errorf("puzzle %d is null", i)
		}
		if err := validate.Struct(p); err != nil {
			return nil, fmt.Errorf("puzzle %d (%q): %w", i, p.Answer, err)
		}
		p.Answer = strings.ToUpper(p.Answer)
	}

	salt := cfg.Salt
	if salt == "" {
		salt = DefaultSalt
	}

	return &Catalog{puzzles: puzzles, salt: salt}, nil
}

// Len returns the number of puzzles
func (c *Catalog) Len() int {
	return len(c.puzzles)
}

// DateKey returns YYYY-MM-DD of t in its own location
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// Index returns HMAC-SHA256(salt, YYYY-MM-DD) mod n for t's local date
func Index(t time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(t)))
	sum := h.Sum(nil)
	return int(binary.BigEndian.Uint64(sum[:8]) % uint64(n))
}

// ForDate returns the puzzle for t's local calendar day
func (c *Catalog) ForDate(t time.Time) *models.Puzzle {
	return c.puzzles[Index(t, c.salt, len(c.puzzles))]
}

// Get returns the puzzle whose answer matches, ignoring case
func (c *Catalog) Get(answer string) (*models.Puzzle, error) {
	for _, p := range c.puzzles {
		if strings.EqualFold(p.Answer, answer) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrPuzzleNotFound, answer)
}
