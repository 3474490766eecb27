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

// Products runs the product list view: a paginated, searchable table with
// add, edit, and delete actions. Every successful mutation refreshes the
// current page exactly once.
func (a *App) Products(ctx context.Context) error {
	if !a.requireAdmin() {
		return nil
	}

	state := &ListState[models.Product]{}
	page := 1
	if !a.refreshProducts(ctx, state, page) {
		return nil
	}

	for {
		a.renderProducts(state)

		action, err := getSimpleText(a.reader, "(n)ext, (p)rev, (s)earch, (a)dd, (e)dit, (d)elete, (b)ack", a.out)
		if err != nil {
			return err
		}

		switch strings.ToLower(action) {
		case "n", "next":
			page++
			if !a.refreshProducts(ctx, state, page) {
				page--
			}
		case "p", "prev":
			if page > 1 {
				page--
				a.refreshProducts(ctx, state, page)
			}
		case "s", "search":
			q, err := getSimpleText(a.reader, "Search products (empty clears)", a.out)
			if err != nil {
				return err
			}
			state.SetSearch(q)
			page = 1
			a.refreshProducts(ctx, state, page)
		case "a", "add":
			if a.addProduct(ctx) {
				a.refreshProducts(ctx, state, page)
			}
		case "e", "edit":
			if a.editProduct(ctx, state) {
				a.refreshProducts(ctx, state, page)
			}
		case "d", "delete":
			if a.deleteProduct(ctx, state) {
				a.refreshProducts(ctx, state, page)
			}
		case "b", "back", "":
			return nil
		default:
			printlnFn("Unknown action:", action)
		}
	}
}

// refreshProducts fetches one page through the ListState sequence protocol.
func (a *App) refreshProducts(ctx context.Context, state *ListState[models.Product], page int) bool {
	seq := state.Begin()
	result, err := a.products.List(ctx, services.ListParams{
		Page:   page,
		Limit:  a.config.PageSize,
		Search: state.Search(),
	})
	if err != nil {
		state.Fail(seq)
		ui.Errorf(a.out, "Could not load products: %s", api.UserMessage(err))
		return false
	}
	return state.Apply(seq, result)
}

func (a *App) renderProducts(state *ListState[models.Product]) {
	ui.Header(a.out, fmt.Sprintf("Products — page %d, %d total", state.Page(), state.Total()))

	items := state.Items()
	if len(items) == 0 {
		ui.Info(a.out, "No products found.")
		return
	}

	tbl := ui.NewTable(a.out, "#", "NAME", "CATEGORY", "PRICE", "STOCK", "STATUS", "IMAGE")
	for i, p := range items {
		stock := ui.Chip(strconv.Itoa(p.CountInStock), stockKind(p.CountInStock))
		status := ui.Chip(statusLabel(p.IsActive), ui.ActiveKind(p.IsActive))
		tbl.AddRow(strconv.Itoa(i+1), p.Name, p.Category.DisplayName(),
			fmt.Sprintf("%.2f", p.Price), stock, status, a.assetCell(p.FirstImage()))
	}
	tbl.Render()
}

// assetCell renders an optional image name as a full URL for table output.
func (a *App) assetCell(name string) string {
	if name == "" {
		return ""
	}
	return a.client.AssetURL(name)
}

func stockKind(count int) ui.ChipKind {
	if count > 0 {
		return ui.ChipSuccess
	}
	return ui.ChipError
}

func statusLabel(active bool) string {
	if active {
		return "Active"
	}
	return "Inactive"
}

// pickRow resolves a 1-based row number typed by the user against the
// current page.
func pickRow[T any](state *ListState[T], input string) (T, bool) {
	var zero T
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return zero, false
	}
	items := state.Items()
	if n < 1 || n > len(items) {
		return zero, false
	}
	return items[n-1], true
}

func (a *App) addProduct(ctx context.Context) bool {
	draft := forms.NewProductDraft()
	if !a.fillProductDraft(ctx, draft, true) {
		return false
	}

	if _, err := a.products.Create(ctx, draft.Payload()); err != nil {
		draft.EndSubmit()
		ui.Errorf(a.out, "Could not create product: %s", api.UserMessage(err))
		return false
	}
	draft.EndSubmit()
	ui.Success(a.out, "Product created.")
	return true
}

func (a *App) editProduct(ctx context.Context, state *ListState[models.Product]) bool {
	input, err := getSimpleText(a.reader, "Row number to edit", a.out)
	if err != nil {
		return false
	}
	row, ok := pickRow(state, input)
	if !ok {
		printlnFn("No such row.")
		return false
	}

	// Re-fetch so the draft seeds from the current record, not a stale page.
	product, err := a.products.GetByID(ctx, row.ID)
	if err != nil {
		ui.Errorf(a.out, "Could not load product: %s", api.UserMessage(err))
		return false
	}

	draft := forms.ProductDraftFrom(product)
	if !a.fillProductDraft(ctx, draft, false) {
		return false
	}

	if _, err := a.products.Update(ctx, product.ID, draft.Payload()); err != nil {
		draft.EndSubmit()
		ui.Errorf(a.out, "Could not update product: %s", api.UserMessage(err))
		return false
	}
	draft.EndSubmit()
	ui.Success(a.out, "Product updated.")
	return true
}

func (a *App) deleteProduct(ctx context.Context, state *ListState[models.Product]) bool {
	input, err := getSimpleText(a.reader, "Row number to delete", a.out)
	if err != nil {
		return false
	}
	row, ok := pickRow(state, input)
	if !ok {
		printlnFn("No such row.")
		return false
	}

	if !Confirm(a.reader, fmt.Sprintf("Delete product %q?", row.Name), a.out) {
		printlnFn("Cancelled.")
		return false
	}

	if err := a.products.Delete(ctx, row.ID); err != nil {
		ui.Errorf(a.out, "Could not delete product: %s", api.UserMessage(err))
		return false
	}
	ui.Success(a.out, "Product deleted.")
	return true
}

// fillProductDraft runs the interactive form over the draft: field prompts
// (blank keeps the current value), the image loop, then a submit action. The
// create flow additionally offers a reset that restores the empty-form
// defaults. It returns true with the draft locked in Submitting, ready for
// the API call.
func (a *App) fillProductDraft(ctx context.Context, draft *forms.ProductDraft, allowReset bool) bool {
	for {
		if !a.promptProductFields(ctx, draft) {
			return false
		}
		if !a.promptImages(draft) {
			return false
		}

		prompt := "(s)ubmit, (c)ancel"
		if allowReset {
			prompt = "(s)ubmit, (r)eset, (c)ancel"
		}

	actions:
		for {
			action, err := getSimpleText(a.reader, prompt, a.out)
			if err != nil {
				return false
			}
			switch strings.ToLower(action) {
			case "r", "reset":
				if !allowReset {
					printlnFn("Unknown action:", action)
					continue
				}
				draft.Reset()
				break actions
			case "s", "submit", "":
				if draft.BeginSubmit() == nil {
					return true
				}
				a.renderFieldErrors(draft.Errors(), []string{
					"name", "price", "countInStock", "category", "description", "images",
				})
				break actions
			case "c", "cancel":
				return false
			default:
				printlnFn("Unknown action:", action)
			}
		}
	}
}

func (a *App) promptProductFields(ctx context.Context, draft *forms.ProductDraft) bool {
	if v, ok := a.promptField("Name", draft.Name); !ok {
		return false
	} else if v != "" {
		draft.SetName(v)
	}
	if v, ok := a.promptField("Price", draft.Price); !ok {
		return false
	} else if v != "" {
		draft.SetPrice(v)
	}
	if v, ok := a.promptField("Stock", draft.CountInStock); !ok {
		return false
	} else if v != "" {
		draft.SetCountInStock(v)
	}
	if !a.promptCategory(ctx, draft) {
		return false
	}
	if v, ok := a.promptField("Description", draft.Description); !ok {
		return false
	} else if v != "" {
		draft.SetDescription(v)
	}
	if v, ok := a.promptField("Featured (y/n)", boolLabel(draft.IsFeatured)); !ok {
		return false
	} else if v != "" {
		draft.SetFeatured(strings.EqualFold(v, "y"))
	}
	if v, ok := a.promptField("Active (y/n)", boolLabel(draft.IsActive)); !ok {
		return false
	} else if v != "" {
		draft.SetActive(strings.EqualFold(v, "y"))
	}
	return true
}

func (a *App) promptField(label, current string) (string, bool) {
	prompt := label
	if current != "" {
		prompt = fmt.Sprintf("%s [%s]", label, current)
	}
	v, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", false
	}
	return v, true
}

func boolLabel(b bool) string {
	if b {
		return "y"
	}
	return "n"
}

// promptCategory shows the category list and reads a selection by row
// number. Blank keeps the draft's current category.
func (a *App) promptCategory(ctx context.Context, draft *forms.ProductDraft) bool {
	page, err := a.categories.List(ctx, services.ListParams{})
	if err != nil {
		ui.Errorf(a.out, "Could not load categories: %s", api.UserMessage(err))
		return false
	}
	for i, c := range page.Items {
		fmt.Fprintf(a.out, "  %d. %s\n", i+1, c.Name)
	}
	v, err := getSimpleText(a.reader, "Category number", a.out)
	if err != nil {
		return false
	}
	if v == "" {
		return true
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 || n > len(page.Items) {
		printlnFn("No such category.")
		return true
	}
	draft.SetCategory(page.Items[n-1].ID)
	return true
}

// promptImages runs the add/remove loop over the draft's image set.
func (a *App) promptImages(draft *forms.ProductDraft) bool {
	for {
		existing := draft.Images.Existing()
		pending := draft.Images.Pending()
		fmt.Fprintf(a.out, "Images (%d/%d):\n", draft.Images.Total(), forms.MaxImages)
		for i, name := range existing {
			fmt.Fprintf(a.out, "  e%d. %s\n", i+1, name)
		}
		for i, img := range pending {
			fmt.Fprintf(a.out, "  p%d. %s (new)\n", i+1, img.Name)
		}

		action, err := getSimpleText(a.reader, "(a)dd file, (r)emove, (k) keep as is", a.out)
		if err != nil {
			return false
		}
		switch strings.ToLower(action) {
		case "a", "add":
			path, err := getSimpleText(a.reader, "Image file path", a.out)
			if err != nil {
				return false
			}
			img, err := forms.LoadImage(path)
			if err != nil {
				ui.Errorf(a.out, "Could not read image: %s", err)
				continue
			}
			if err := draft.Images.AddFiles(img); err != nil {
				ui.Errorf(a.out, "%s", err)
			}
		case "r", "remove":
			ref, err := getSimpleText(a.reader, "Image ref (e1, p2, ...)", a.out)
			if err != nil {
				return false
			}
			a.removeImage(draft, ref)
		case "k", "keep", "":
			return true
		default:
			printlnFn("Unknown action:", action)
		}
	}
}

func (a *App) removeImage(draft *forms.ProductDraft, ref string) {
	ref = strings.ToLower(strings.TrimSpace(ref))
	if len(ref) < 2 {
		printlnFn("No such image.")
		return
	}
	n, err := strconv.Atoi(ref[1:])
	if err != nil || n < 1 {
		printlnFn("No such image.")
		return
	}
	switch ref[0] {
	case 'e':
		existing := draft.Images.Existing()
		if n > len(existing) || !draft.Images.RemoveExisting(existing[n-1]) {
			printlnFn("No such image.")
		}
	case 'p':
		if !draft.Images.RemovePending(n - 1) {
			printlnFn("No such image.")
		}
	default:
		printlnFn("No such image.")
	}
}

func (a *App) renderFieldErrors(errs forms.FieldErrors, order []string) {
	for _, field := range order {
		if msg, ok := errs[field]; ok {
			ui.FieldError(a.out, msg)
		}
	}
}
