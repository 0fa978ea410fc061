// Package mem is the in-memory recipe store. Nothing is written to disk; the
// collection lives as long as the process does.
package mem

import (
	"fmt"
	"time"

	"github.com/byxorna/recipebox/pkg/db"
	"github.com/byxorna/recipebox/pkg/types/v1"
	"github.com/google/uuid"
)

const (
	// attempts at finding an unused id before giving up
	maxIDAttempts = 8
)

var (
	ErrIDExhausted = fmt.Errorf("unable to generate an unused recipe id")
)

type Option func(*Store)

// WithIDGenerator replaces the UUIDv7 generator
func WithIDGenerator(f func() v1.ID) Option {
	return func(s *Store) { s.newID = f }
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithRecipes seeds the store. The first draft ends up at the top of the
// list, so drafts are added in reverse.
func WithRecipes(drafts ...v1.Draft) Option {
	return func(s *Store) { s.seed = append(s.seed, drafts...) }
}

// Store keeps recipes newest first. It is not safe for concurrent use: every
// call is expected to come from the UI event loop.
type Store struct {
	recipes  []v1.Recipe
	revision uint64

	newID func() v1.ID
	now   func() time.Time
	seed  []v1.Draft

	subscribers []subscriber
	nextSubID   int
}

type subscriber struct {
	id int
	fn func(db.Change)
}

var _ db.RecipeStore = (*Store)(nil)

func New(opts ...Option) (*Store, error) {
	s := Store{
		recipes: []v1.Recipe{},
		newID:   newUUIDv7,
		now:     time.Now,
	}
	for _, o := range opts {
		o(&s)
	}

	for i := len(s.seed) - 1; i >= 0; i-- {
		if _, err := s.Add(s.seed[i]); err != nil {
			return nil, fmt.Errorf("unable to seed recipe %q: %w", s.seed[i].Title, err)
		}
	}
	s.seed = nil

	return &s, nil
}

func newUUIDv7() v1.ID {
	u, err := uuid.NewV7()
	if err != nil {
		// only fails when the system random source does
		u = uuid.New()
	}
	return v1.ID(u.String())
}

func (s *Store) index(id v1.ID) int {
	for i := range s.recipes {
		if s.recipes[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) unusedID() (v1.ID, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := s.newID()
		if id != "" && s.index(id) < 0 {
			return id, nil
		}
	}
	return "", ErrIDExhausted
}

func validateDraft(d v1.Draft) error {
	if err := d.Validate(); err != nil {
		return fmt.Errorf("%w: %v", db.ErrInvalidRecipe, err)
	}
	return nil
}

func notFound(id v1.ID) error {
	return fmt.Errorf("%w: %s", db.ErrNoRecipeFound, id)
}

// Add prepends a new recipe and returns its id
func (s *Store) Add(d v1.Draft) (v1.ID, error) {
	if err := validateDraft(d); err != nil {
		return "", err
	}

	id, err := s.unusedID()
	if err != nil {
		return "", err
	}

	r := v1.Recipe{
		ID:      id,
		Draft:   d,
		Created: s.now(),
	}
	s.recipes = append([]v1.Recipe{r}, s.recipes...)
	s.notify(db.OpAdd, id)
	return id, nil
}

// Update replaces the editable fields in place. The recipe keeps its position
// and its pending edit flag is cleared.
func (s *Store) Update(id v1.ID, d v1.Draft) error {
	i := s.index(id)
	if i < 0 {
		return notFound(id)
	}
	if err := validateDraft(d); err != nil {
		return err
	}

	t := s.now()
	r := &s.recipes[i]
	r.Draft = d
	r.PendingEdit = false
	r.Modified = &t
	s.notify(db.OpUpdate, id)
	return nil
}

// FlagForEdit marks id as the one recipe waiting to be loaded into the
// compose screen. Any earlier flag is overwritten.
func (s *Store) FlagForEdit(id v1.ID) error {
	i := s.index(id)
	if i < 0 {
		return notFound(id)
	}
	for k := range s.recipes {
		s.recipes[k].PendingEdit = k == i
	}
	s.notify(db.OpFlagForEdit, id)
	return nil
}

func (s *Store) PendingEdit() (v1.Recipe, bool) {
	for _, r := range s.recipes {
		if r.PendingEdit {
			return clone(r), true
		}
	}
	return v1.Recipe{}, false
}

func (s *Store) ConsumePendingEdit() (v1.Recipe, bool) {
	r, ok := s.PendingEdit()
	if !ok {
		return v1.Recipe{}, false
	}
	for k := range s.recipes {
		s.recipes[k].PendingEdit = false
	}
	s.notify(db.OpConsumeEdit, r.ID)
	r.PendingEdit = false
	return r, true
}

func (s *Store) Delete(id v1.ID) error {
	i := s.index(id)
	if i < 0 {
		return notFound(id)
	}
	s.recipes = append(s.recipes[:i:i], s.recipes[i+1:]...)
	s.notify(db.OpDelete, id)
	return nil
}

func (s *Store) DeleteAll() {
	s.recipes = []v1.Recipe{}
	s.notify(db.OpDeleteAll, "")
}

func (s *Store) List() []v1.Recipe {
	out := make([]v1.Recipe, len(s.recipes))
	for i := range s.recipes {
		out[i] = clone(s.recipes[i])
	}
	return out
}

func (s *Store) Get(id v1.ID) (v1.Recipe, error) {
	i := s.index(id)
	if i < 0 {
		return v1.Recipe{}, notFound(id)
	}
	return clone(s.recipes[i]), nil
}

func (s *Store) Count() int { return len(s.recipes) }

// Revision increases by one on every successful mutation
func (s *Store) Revision() uint64 { return s.revision }

// Subscribe registers fn to be called after each successful mutation, on the
// caller's goroutine.
func (s *Store) Subscribe(fn func(db.Change)) func() {
	s.nextSubID++
	id := s.nextSubID
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})
	return func() {
		for i, sub := range s.subscribers {
			if sub.id == id {
				s.subscribers = append(s.subscribers[:i:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) notify(op db.Op, id v1.ID) {
	s.revision++
	c := db.Change{Op: op, ID: id, Revision: s.revision}
	for _, sub := range append([]subscriber(nil), s.subscribers...) {
		sub.fn(c)
	}
}

// clone detaches the Modified pointer so callers cannot reach into the store
func clone(r v1.Recipe) v1.Recipe {
	if r.Modified != nil {
		t := *r.Modified
		r.Modified = &t
	}
	return r
}
