// Package orderquery holds the admin order listing rules: which orders a filter keeps and the figures
// reported alongside them.
package orderquery

import (
	"mealky-way/common/constant"
	"mealky-way/common/errs"
	"mealky-way/model"
	"mealky-way/outbound/sqlgen"
	"net/url"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"golang.org/x/text/cases"
)

// Filter narrows the order listing. Empty fields do not constrain the result.
type Filter struct {
	Date        string
	Institution string
	Hall        string
	Customer    string

	date time.Time
}

func ParseFilter(values url.Values) (Filter, error) {
	f := Filter{
		Date:        strings.TrimSpace(values.Get("date")),
		Institution: strings.TrimSpace(values.Get("institution")),
		Hall:        strings.TrimSpace(values.Get("hall")),
		Customer:    strings.TrimSpace(values.Get("customer")),
	}

	invalid := make(map[string]string)

	if f.Date != "" {
		date, err := time.Parse(constant.DateLayout, f.Date)
		if err != nil {
			invalid["date"] = "datetime"
		}
		f.date = date
	}

	if f.Institution != "" {
		if _, ok := constant.InstitutionNameByCode[f.Institution]; !ok {
			invalid["institution"] = "not found"
		}
	}

	if len(invalid) > 0 {
		return Filter{}, errs.InvalidInput("Validation failed", invalid)
	}

	return f, nil
}

// DateParam is the date constraint in the form the listing query expects; it is NULL when no date was given.
func (f Filter) DateParam() pgtype.Date {
	if f.Date == "" {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: f.date, Valid: true}
}

// Apply keeps the orders matching every non-empty field of f, preserving their order.
// The date field is matched as well so Apply is correct on an unfiltered input.
func Apply(orders []model.OrderResponse, f Filter) []model.OrderResponse {
	fold := cases.Fold()
	hall := fold.String(f.Hall)
	customer := fold.String(f.Customer)
	institutionPrefix := f.Institution + constant.HallInstitutionSeparator

	filtered := make([]model.OrderResponse, 0, len(orders))
	for _, order := range orders {
		if f.Date != "" && order.Date != f.Date {
			continue
		}
		if f.Institution != "" && !strings.HasPrefix(order.Hall, institutionPrefix) {
			continue
		}
		if hall != "" && !strings.Contains(fold.String(order.Hall), hall) {
			continue
		}
		if customer != "" && !strings.Contains(fold.String(order.Name), customer) {
			continue
		}
		filtered = append(filtered, order)
	}

	return filtered
}

// Summarize counts orders and quantities overall and for the calendar date today (YYYY-MM-DD).
func Summarize(orders []model.OrderResponse, today string) model.OrderStats {
	var stats model.OrderStats
	for _, order := range orders {
		stats.TotalOrders++
		stats.TotalQuantity += int64(order.Quantity)

		if order.Date == today {
			stats.TodayOrders++
			stats.TodayQuantity += int64(order.Quantity)
		}
	}
	return stats
}

func FromRow(row sqlgen.ListOrdersWithCustomerRow) model.OrderResponse {
	return model.OrderResponse{
		Id:            row.ID,
		CustomerId:    row.CustomerID,
		Quantity:      row.Quantity,
		Date:          row.Date.Format(constant.DateLayout),
		CreatedAt:     row.CreatedAt,
		Name:          row.Name,
		ContactNumber: row.ContactNumber,
		Hall:          row.Hall,
		Room:          row.Room,
	}
}

func FromRows(rows []sqlgen.ListOrdersWithCustomerRow) []model.OrderResponse {
	orders := make([]model.OrderResponse, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, FromRow(row))
	}
	return orders
}
