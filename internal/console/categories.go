package console

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmperov/shopadmin/internal/api"
	"github.com/dmperov/shopadmin/internal/forms"
	"github.com/dmperov/shopadmin/internal/models"
	"github.com/dmperov/shopadmin/internal/services"
	"github.com/dmperov/shopadmin/internal/ui"
)

// Categories runs the category list view with inline create/edit/delete.
func (a *App) Categories(ctx context.Context) error {
	if !a.requireAdmin() {
		return nil
	}

	state := &ListState[models.Category]{}
	if !a.refreshCategories(ctx, state) {
		return nil
	}

	for {
		ui.Header(a.out, fmt.Sprintf("Categories — %d total", state.Total()))
		tbl := ui.NewTable(a.out, "#", "NAME", "DESCRIPTION")
		for i, c := range state.Items() {
			tbl.AddRow(strconv.Itoa(i+1), c.Name, c.Description)
		}
		tbl.Render()

		action, err := getSimpleText(a.reader, "(a)dd, (e)dit, (d)elete, (b)ack", a.out)
		if err != nil {
			return err
		}

		switch strings.ToLower(action) {
		case "a", "add":
			if a.saveCategory(ctx, forms.NewCategoryDraft(), "") {
				a.refreshCategories(ctx, state)
			}
		case "e", "edit":
			input, err := getSimpleText(a.reader, "Row number to edit", a.out)
			if err != nil {
				return err
			}
			row, ok := pickRow(state, input)
			if !ok {
				printlnFn("No such row.")
				continue
			}
			if a.saveCategory(ctx, forms.CategoryDraftFrom(row), row.ID) {
				a.refreshCategories(ctx, state)
			}
		case "d", "delete":
			if a.deleteCategory(ctx, state) {
				a.refreshCategories(ctx, state)
			}
		case "b", "back", "":
			return nil
		default:
			printlnFn("Unknown action:", action)
		}
	}
}

func (a *App) refreshCategories(ctx context.Context, state *ListState[models.Category]) bool {
	seq := state.Begin()
	result, err := a.categories.List(ctx, services.ListParams{})
	if err != nil {
		state.Fail(seq)
		ui.Errorf(a.out, "Could not load categories: %s", api.UserMessage(err))
		return false
	}
	return state.Apply(seq, result)
}

// saveCategory fills the draft interactively and creates or updates
// depending on whether id is set.
func (a *App) saveCategory(ctx context.Context, draft *forms.CategoryDraft, id string) bool {
	for {
		if v, ok := a.promptField("Category name", draft.Name); !ok {
			return false
		} else if v != "" {
			draft.SetName(v)
		}
		if v, ok := a.promptField("Description", draft.Description); !ok {
			return false
		} else if v != "" {
			draft.SetDescription(v)
		}

		err := draft.BeginSubmit()
		if err == nil {
			break
		}
		a.renderFieldErrors(draft.Errors(), []string{"name", "description"})

		again, aerr := getSimpleText(a.reader, "Fix and retry? (y/N)", a.out)
		if aerr != nil || !strings.EqualFold(again, "y") {
			return false
		}
	}

	var err error
	if id == "" {
		_, err = a.categories.Create(ctx, draft.Payload())
	} else {
		_, err = a.categories.Update(ctx, id, draft.Payload())
	}
	draft.EndSubmit()
	if err != nil {
		ui.Errorf(a.out, "Could not save category: %s", api.UserMessage(err))
		return false
	}
	ui.Success(a.out, "Category saved.")
	return true
}

func (a *App) deleteCategory(ctx context.Context, state *ListState[models.Category]) bool {
	input, err := getSimpleText(a.reader, "Row number to delete", a.out)
	if err != nil {
		return false
	}
	row, ok := pickRow(state, input)
	if !ok {
		printlnFn("No such row.")
		return false
	}

	if !Confirm(a.reader, fmt.Sprintf("Delete category %q?", row.Name), a.out) {
		printlnFn("Cancelled.")
		return false
	}

	if err := a.categories.Delete(ctx, row.ID); err != nil {
		ui.Errorf(a.out, "Could not delete category: %s", api.UserMessage(err))
		return false
	}
	ui.Success(a.out, "Category deleted.")
	return true
}
