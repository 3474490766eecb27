package console

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmperov/shopadmin/internal/api"
	"github.com/dmperov/shopadmin/internal/models"
	"github.com/dmperov/shopadmin/internal/services"
	"github.com/dmperov/shopadmin/internal/ui"
)

// Users runs the customer list view with block/unblock.
func (a *App) Users(ctx context.Context) error {
	if !a.requireAdmin() {
		return nil
	}

	state := &ListState[models.User]{}
	page := 1
	if !a.refreshUsers(ctx, state, page) {
		return nil
	}

	for {
		ui.Header(a.out, fmt.Sprintf("Users — page %d, %d total", state.Page(), state.Total()))
		tbl := ui.NewTable(a.out, "#", "NAME", "EMAIL", "ROLE", "STATUS")
		for i, u := range state.Items() {
			status := ui.Chip(blockedLabel(u.IsBlocked), ui.BlockedKind(u.IsBlocked))
			tbl.AddRow(strconv.Itoa(i+1), u.Name, u.Email, u.Role, status)
		}
		tbl.Render()

		action, err := getSimpleText(a.reader, "(n)ext, (p)rev, (t)oggle block, (b)ack", a.out)
		if err != nil {
			return err
		}

		switch strings.ToLower(action) {
		case "n", "next":
			page++
			if !a.refreshUsers(ctx, state, page) {
				page--
			}
		case "p", "prev":
			if page > 1 {
				page--
				a.refreshUsers(ctx, state, page)
			}
		case "t", "toggle":
			if a.toggleBlock(ctx, state) {
				a.refreshUsers(ctx, state, page)
			}
		case "b", "back", "":
			return nil
		default:
			printlnFn("Unknown action:", action)
		}
	}
}

func blockedLabel(blocked bool) string {
	if blocked {
		return "Blocked"
	}
	return "Active"
}

func (a *App) refreshUsers(ctx context.Context, state *ListState[models.User], page int) bool {
	seq := state.Begin()
	result, err := a.users.List(ctx, services.ListParams{Page: page, Limit: a.config.PageSize})
	if err != nil {
		state.Fail(seq)
		ui.Errorf(a.out, "Could not load users: %s", api.UserMessage(err))
		return false
	}
	return state.Apply(seq, result)
}

func (a *App) toggleBlock(ctx context.Context, state *ListState[models.User]) bool {
	input, err := getSimpleText(a.reader, "Row number", a.out)
	if err != nil {
		return false
	}
	u, ok := pickRow(state, input)
	if !ok {
		printlnFn("No such row.")
		return false
	}

	verb := "Block"
	if u.IsBlocked {
		verb = "Unblock"
	}
	if !Confirm(a.reader, fmt.Sprintf("%s user %q?", verb, u.Email), a.out) {
		printlnFn("Cancelled.")
		return false
	}

	result, err := a.users.ToggleBlock(ctx, u.ID)
	if err != nil {
		ui.Errorf(a.out, "Could not update user: %s", api.UserMessage(err))
		return false
	}
	if result.IsBlocked {
		ui.Success(a.out, "User blocked.")
	} else {
		ui.Success(a.out, "User unblocked.")
	}
	return true
}
