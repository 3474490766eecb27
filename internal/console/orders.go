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

// Orders runs the order list view: paginated table with payment and status
// chips, order details, status changes, and the tracking form. Cancelled
// orders are terminal: status changes and tracking edits are refused without
// touching the API.
func (a *App) Orders(ctx context.Context) error {
	if !a.requireAdmin() {
		return nil
	}

	state := &ListState[models.Order]{}
	page := 1
	if !a.refreshOrders(ctx, state, page) {
		return nil
	}

	for {
		a.renderOrders(state)

		action, err := getSimpleText(a.reader, "(n)ext, (p)rev, (v)iew, (s)tatus, (t)racking, (b)ack", a.out)
		if err != nil {
			return err
		}

		switch strings.ToLower(action) {
		case "n", "next":
			page++
			if !a.refreshOrders(ctx, state, page) {
				page--
			}
		case "p", "prev":
			if page > 1 {
				page--
				a.refreshOrders(ctx, state, page)
			}
		case "v", "view":
			a.viewOrder(state)
		case "s", "status":
			if a.changeOrderStatus(ctx, state) {
				a.refreshOrders(ctx, state, page)
			}
		case "t", "tracking":
			if a.editTracking(ctx, state) {
				a.refreshOrders(ctx, state, page)
			}
		case "b", "back", "":
			return nil
		default:
			printlnFn("Unknown action:", action)
		}
	}
}

func (a *App) refreshOrders(ctx context.Context, state *ListState[models.Order], page int) bool {
	seq := state.Begin()
	result, err := a.orders.List(ctx, services.ListParams{Page: page, Limit: a.config.PageSize})
	if err != nil {
		state.Fail(seq)
		ui.Errorf(a.out, "Could not load orders: %s", api.UserMessage(err))
		return false
	}
	return state.Apply(seq, result)
}

func (a *App) renderOrders(state *ListState[models.Order]) {
	ui.Header(a.out, fmt.Sprintf("Orders — page %d, %d total", state.Page(), state.Total()))

	tbl := ui.NewTable(a.out, "#", "CUSTOMER", "TOTAL", "PAYMENT", "STATUS")
	for i, o := range state.Items() {
		payment := ui.Chip(o.PaymentStatus, ui.PaymentStatusKind(o.PaymentStatus))
		status := ui.Chip(string(o.OrderStatus), ui.OrderStatusKind(o.OrderStatus))
		tbl.AddRow(strconv.Itoa(i+1), o.User.Email,
			fmt.Sprintf("%.2f", o.TotalPrice), payment, status)
	}
	tbl.Render()
}

// viewOrder renders the details dialog: items, shipping address, totals.
func (a *App) viewOrder(state *ListState[models.Order]) {
	input, err := getSimpleText(a.reader, "Row number to view", a.out)
	if err != nil {
		return
	}
	o, ok := pickRow(state, input)
	if !ok {
		printlnFn("No such row.")
		return
	}

	ui.Header(a.out, "Order "+o.ID)

	kv := ui.NewKeyValue(a.out)
	kv.AddRow("Customer", fmt.Sprintf("%s <%s>", o.User.Name, o.User.Email))
	kv.AddRow("Status", string(o.OrderStatus))
	kv.AddRow("Payment", o.PaymentStatus)
	if o.TrackingNumber != "" {
		kv.AddRow("Tracking", o.TrackingNumber)
	}
	if o.EstimatedDelivery != "" {
		kv.AddRow("Est. delivery", o.EstimatedDeliveryDate())
	}
	addr := o.ShippingAddress
	kv.AddRow("Ship to", fmt.Sprintf("%s, %s, %s %s, %s",
		addr.Street, addr.City, addr.State, addr.PostalCode, addr.Country))
	kv.Render()

	tbl := ui.NewTable(a.out, "ITEM", "QTY", "PRICE", "IMAGE")
	for _, item := range o.OrderItems {
		tbl.AddRow(item.Name, strconv.Itoa(item.Quantity),
			fmt.Sprintf("%.2f", item.Price), a.assetCell(item.Image))
	}
	tbl.Render()

	kv = ui.NewKeyValue(a.out)
	kv.AddRow("Items", fmt.Sprintf("%.2f", o.ItemsPrice))
	kv.AddRow("Total", fmt.Sprintf("%.2f", o.TotalPrice))
	kv.Render()
}

func (a *App) changeOrderStatus(ctx context.Context, state *ListState[models.Order]) bool {
	input, err := getSimpleText(a.reader, "Row number", a.out)
	if err != nil {
		return false
	}
	o, ok := pickRow(state, input)
	if !ok {
		printlnFn("No such row.")
		return false
	}

	allowed := models.AllowedStatuses()
	for i, s := range allowed {
		fmt.Fprintf(a.out, "  %d. %s\n", i+1, s)
	}
	choice, err := getSimpleText(a.reader, "New status number", a.out)
	if err != nil {
		return false
	}
	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > len(allowed) {
		printlnFn("No such status.")
		return false
	}
	target := allowed[n-1]
	if !o.OrderStatus.ValidTransition(target) {
		printlnFn("Cancelled orders cannot be updated.")
		return false
	}

	if err := a.orders.UpdateStatus(ctx, o.ID, target); err != nil {
		ui.Errorf(a.out, "Could not update status: %s", api.UserMessage(err))
		return false
	}
	ui.Success(a.out, "Order status updated.")
	return true
}

func (a *App) editTracking(ctx context.Context, state *ListState[models.Order]) bool {
	input, err := getSimpleText(a.reader, "Row number", a.out)
	if err != nil {
		return false
	}
	o, ok := pickRow(state, input)
	if !ok {
		printlnFn("No such row.")
		return false
	}
	// A tracking edit re-asserts the order's current status, so it obeys
	// the same transition rule as a status change.
	if !o.OrderStatus.ValidTransition(o.OrderStatus) {
		printlnFn("Cancelled orders cannot be updated.")
		return false
	}

	draft := forms.TrackingDraftFrom(o)
	for {
		if v, ok := a.promptField("Tracking number", draft.TrackingNumber); !ok {
			return false
		} else if v != "" {
			draft.SetTrackingNumber(v)
		}
		if v, ok := a.promptField("Estimated delivery (YYYY-MM-DD)", draft.EstimatedDelivery); !ok {
			return false
		} else if v != "" {
			draft.SetEstimatedDelivery(v)
		}

		err := draft.BeginSubmit()
		if err == nil {
			break
		}
		a.renderFieldErrors(draft.Errors(), []string{"trackingNumber", "estimatedDelivery"})

		again, aerr := getSimpleText(a.reader, "Fix and retry? (y/N)", a.out)
		if aerr != nil || !strings.EqualFold(again, "y") {
			return false
		}
	}

	err = a.orders.UpdateTracking(ctx, o.ID, draft.Payload())
	draft.EndSubmit()
	if err != nil {
		ui.Errorf(a.out, "Could not update tracking: %s", api.UserMessage(err))
		return false
	}
	ui.Success(a.out, "Tracking updated.")
	return true
}
