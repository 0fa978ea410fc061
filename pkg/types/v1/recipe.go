package v1

import (
	"fmt"
	"strings"
	"time"

	"github.com/byxorna/recipebox/pkg/text"
)

// Draft is the editable part of a recipe. It is what the compose screen
// holds while the user is typing.
type Draft struct {
	Title        string `yaml:"title" validate:"notblank"`
	Ingredients  string `yaml:"ingredients,omitempty" validate:""`
	Instructions string `yaml:"instructions,omitempty" validate:""`
}

func (d Draft) Validate() error {
	return validate.Struct(d)
}

func (d Draft) IsZero() bool {
	return d.Title == "" && d.Ingredients == "" && d.Instructions == ""
}

type Recipe struct {
	ID ID `yaml:"id" validate:"required"`
	Draft

	// PendingEdit asks the compose screen to load this recipe. It is
	// consumed at most once.
	PendingEdit bool `yaml:"-"`

	Created  time.Time  `yaml:"created" validate:"required"`
	Modified *time.Time `yaml:"modified,omitempty"`
}

// IngredientList splits the free-form ingredients text on newlines and commas
func (r *Recipe) IngredientList() []string {
	fields := strings.FieldsFunc(r.Ingredients, func(c rune) bool {
		return c == '\n' || c == ','
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func (r *Recipe) Summary() string {
	n := len(r.IngredientList())
	var ingredients string
	switch n {
	case 0:
		ingredients = "no ingredients"
	case 1:
		ingredients = "1 ingredient"
	default:
		ingredients = fmt.Sprintf("%d ingredients", n)
	}

	if r.Modified != nil {
		return ingredients + " · edited " + text.RelativeTime(*r.Modified)
	}
	return ingredients + " · added " + text.RelativeTime(r.Created)
}

func (r *Recipe) Icon() string {
	return text.FoodEmoji(string(r.ID))
}

// AsMarkdown renders the recipe as a markdown document for the detail pane
func (r *Recipe) AsMarkdown() string {
	b := strings.Builder{}
	fmt.Fprintf(&b, "# %s %s\n\n", r.Icon(), r.Title)

	b.WriteString("## Ingredients\n\n")
	if items := r.IngredientList(); len(items) > 0 {
		for _, i := range items {
			fmt.Fprintf(&b, "- %s\n", i)
		}
	} else {
		b.WriteString("_none listed_\n")
	}

	b.WriteString("\n## Instructions\n\n")
	if s := strings.TrimSpace(r.Instructions); s != "" {
		b.WriteString(s)
		b.WriteString("\n")
	} else {
		b.WriteString("_none listed_\n")
	}
	return b.String()
}
