package db

import (
	"fmt"

	"github.com/byxorna/recipebox/pkg/types/v1"
)

var (
	ErrNoRecipeFound = fmt.Errorf("no recipe found")
	ErrInvalidRecipe = fmt.Errorf("invalid recipe")
)

// Op names the mutation that produced a Change
type Op string

const (
	OpAdd         Op = "add"
	OpUpdate      Op = "update"
	OpFlagForEdit Op = "flag-for-edit"
	OpConsumeEdit Op = "consume-edit"
	OpDelete      Op = "delete"
	OpDeleteAll   Op = "delete-all"
)

// Change is delivered to subscribers after every successful mutation.
// ID is empty for OpDeleteAll.
type Change struct {
	Op       Op
	ID       v1.ID
	Revision uint64
}

func (c Change) String() string {
	if c.ID == "" {
		return fmt.Sprintf("%s (rev %d)", c.Op, c.Revision)
	}
	return fmt.Sprintf("%s %s (rev %d)", c.Op, c.ID, c.Revision)
}

// RecipeStore owns the recipe collection. Every mutation either completes or
// returns an error and leaves the collection untouched. mem.Store implements
// this.
type RecipeStore interface {
	RecipeStoreRead
	RecipeStoreWrite

	Subscribe(func(Change)) (unsubscribe func())
}

type RecipeStoreRead interface {
	// List returns the collection newest first. The slice is a copy.
	List() []v1.Recipe
	Get(id v1.ID) (v1.Recipe, error)
	Count() int
	Revision() uint64

	// PendingEdit reports the recipe flagged for editing without consuming it
	PendingEdit() (v1.Recipe, bool)
}

type RecipeStoreWrite interface {
	Add(d v1.Draft) (v1.ID, error)
	Update(id v1.ID, d v1.Draft) error
	FlagForEdit(id v1.ID) error
	// ConsumePendingEdit returns the flagged recipe, if any, and clears the
	// flag on every recipe
	ConsumePendingEdit() (v1.Recipe, bool)
	Delete(id v1.ID) error
	DeleteAll()
}
