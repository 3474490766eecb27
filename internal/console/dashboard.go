package console

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmperov/shopadmin/internal/api"
	"github.com/dmperov/shopadmin/internal/ui"
)

// Dashboard renders the store KPIs plus low-stock products and recent
// orders.
func (a *App) Dashboard(ctx context.Context) error {
	if !a.requireAdmin() {
		return nil
	}

	stats, err := a.dashboard.Stats(ctx)
	if err != nil {
		ui.Errorf(a.out, "Could not load dashboard: %s", api.UserMessage(err))
		return nil
	}

	ui.Header(a.out, "Dashboard")

	kv := ui.NewKeyValue(a.out)
	kv.AddRow("Total sales", fmt.Sprintf("%.2f", stats.TotalSales))
	kv.AddRow("Orders", strconv.Itoa(stats.TotalOrders))
	kv.AddRow("Users", strconv.Itoa(stats.TotalUsers))
	kv.Render()

	if len(stats.LowStockProducts) > 0 {
		ui.Header(a.out, "Low stock")
		tbl := ui.NewTable(a.out, "NAME", "STOCK")
		for _, p := range stats.LowStockProducts {
			tbl.AddRow(p.Name, ui.Chip(strconv.Itoa(p.CountInStock), ui.ChipWarning))
		}
		tbl.Render()
	}

	if len(stats.RecentOrders) > 0 {
		ui.Header(a.out, "Recent orders")
		tbl := ui.NewTable(a.out, "CUSTOMER", "TOTAL", "STATUS")
		for _, o := range stats.RecentOrders {
			tbl.AddRow(o.User.Email, fmt.Sprintf("%.2f", o.TotalPrice),
				ui.Chip(string(o.OrderStatus), ui.OrderStatusKind(o.OrderStatus)))
		}
		tbl.Render()
	}
	return nil
}
