package game

import (
	"fmt"
	"strings"
)

// OptionCount is the number of answer options every quiz carries.
// Answer indices are 1-based, so a valid correct option is in [1,OptionCount].
const OptionCount = 4

// Quiz is a single trivia question. Values are immutable once a Catalog
// has accepted them.
type Quiz struct {
	ID            int      `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectOption int      `json:"correct_option"`
}

// Catalog is the read-only set of quizzes served for the lifetime of the
// process. It is safe for unsynchronized concurrent reads because it is
// never mutated after construction.
type Catalog struct {
	quizzes []Quiz
	byID    map[int]Quiz
}

// NewCatalog validates the seed questions and builds a catalog. Listing
// order matches the order of the input slice.
func NewCatalog(quizzes []Quiz) (*Catalog, error) {
	if len(quizzes) == 0 {
		return nil, fmt.Errorf("%w: catalog requires at least one question", ErrInvalidArgument)
	}

	c := &Catalog{
		quizzes: make([]Quiz, 0, len(quizzes)),
		byID:    make(map[int]Quiz, len(quizzes)),
	}

	for _, q := range quizzes {
		if q.ID <= 0 {
			return nil, fmt.Errorf("%w: quiz id must be positive, got %d", ErrInvalidArgument, q.ID)
		}
		if _, exists := c.byID[q.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate quiz id %d", ErrInvalidArgument, q.ID)
		}
		if strings.TrimSpace(q.Question) == "" {
			return nil, fmt.Errorf("%w: quiz %d has no question text", ErrInvalidArgument, q.ID)
		}
		if len(q.Options) != OptionCount {
			return nil, fmt.Errorf("%w: quiz %d has %d options, want %d", ErrInvalidArgument, q.ID, len(q.Options), OptionCount)
		}
		seen := make(map[string]bool, OptionCount)
		for _, opt := range q.Options {
			if seen[opt] {
				return nil, fmt.Errorf("%w: quiz %d repeats option %q", ErrInvalidArgument, q.ID, opt)
			}
			seen[opt] = true
		}
		if q.CorrectOption < 1 || q.CorrectOption > OptionCount {
			return nil, fmt.Errorf("%w: quiz %d correct option %d out of range", ErrInvalidArgument, q.ID, q.CorrectOption)
		}

		c.quizzes = append(c.quizzes, q)
		c.byID[q.ID] = q
	}

	return c, nil
}

// ListAll returns every quiz in seed order.
func (c *Catalog) ListAll() []Quiz {
	out := make([]Quiz, len(c.quizzes))
	copy(out, c.quizzes)
	return out
}

// FindByID returns the quiz with the given id.
func (c *Catalog) FindByID(id int) (Quiz, error) {
	q, ok := c.byID[id]
	if !ok {
		return Quiz{}, fmt.Errorf("%w: quiz %d", ErrNotFound, id)
	}
	return q, nil
}
