package app

import (
	"fmt"

	"github.com/byxorna/recipebox/pkg/text"
	"github.com/byxorna/recipebox/pkg/types/v1"
	"github.com/byxorna/recipebox/pkg/ui"
	"github.com/charmbracelet/bubbles/list"
)

const (
	descriptionWidth = 60
)

// recipeItem adapts a recipe to list.DefaultItem
type recipeItem struct {
	recipe v1.Recipe
}

func (i recipeItem) Title() string {
	return fmt.Sprintf("%s %s", i.recipe.Icon(), i.recipe.Title)
}

func (i recipeItem) Description() string {
	d := i.recipe.Summary()
	if s := text.OneLine(i.recipe.Ingredients); s != "" {
		d = d + " · " + s
	}
	return text.TruncateWithTail(d, descriptionWidth, text.Ellipsis)
}

// FilterValue is required by list.Item; filtering itself is turned off
func (i recipeItem) FilterValue() string { return i.recipe.Title }

func itemsFromRecipes(recipes []v1.Recipe) []list.Item {
	lx := make([]list.Item, len(recipes))
	for i := range recipes {
		lx[i] = recipeItem{recipe: recipes[i]}
	}
	return lx
}

func newRecipeDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.Styles.SelectedTitle = d.Styles.SelectedTitle.
		Foreground(ui.Tomato).
		BorderLeftForeground(ui.Tomato)
	d.Styles.SelectedDesc = d.Styles.SelectedDesc.
		Foreground(ui.InstaOrange).
		BorderLeftForeground(ui.Tomato)
	return d
}
