package inventory

import (
	"sort"
	"time"

	"github.com/erp/godown/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ProductTotal is the per-product sum of a godown's stock entries
type ProductTotal struct {
	ProductID      uuid.UUID
	ProductName    string
	TotalQuantity  int
	ReferencePrice decimal.Decimal
}

// Availability is a transfer-picker row. Anomaly flags a negative total.
type Availability struct {
	ProductID     uuid.UUID
	ProductName   string
	TotalQuantity int
	Anomaly       bool
}

// Bill groups stock entries bought under one purchase number.
// Entries without a purchase number are singleton bills keyed "no-bill-<id>".
type Bill struct {
	Key           string
	BillNumber    *string
	Date          time.Time
	ItemCount     int
	TotalQuantity int
	TotalAmount   decimal.Decimal
	Entries       []StockEntry
}

// DateRange bounds a history query. Both ends are inclusive; nil is open.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

const dateLayout = "2006-01-02"

// ParseDateRange reads YYYY-MM-DD bounds in loc. The upper bound covers
// the whole day.
func ParseDateRange(from, to string, loc *time.Location) (DateRange, error) {
	if loc == nil {
		loc = time.Local
	}
	var r DateRange
	if from != "" {
		f, err := time.ParseInLocation(dateLayout, from, loc)
		if err != nil {
			return r, shared.NewValidationError("from must be a date in YYYY-MM-DD format")
		}
		r.From = &f
	}
	if to != "" {
		t, err := time.ParseInLocation(dateLayout, to, loc)
		if err != nil {
			return r, shared.NewValidationError("to must be a date in YYYY-MM-DD format")
		}
		end := t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		r.To = &end
	}
	if r.From != nil && r.To != nil && r.From.After(*r.To) {
		return r, shared.NewValidationError("from must not be after to")
	}
	return r, nil
}

// Contains reports whether t falls inside the range
func (r DateRange) Contains(t time.Time) bool {
	if r.From != nil && t.Before(*r.From) {
		return false
	}
	if r.To != nil && t.After(*r.To) {
		return false
	}
	return true
}

type productSum struct {
	id    uuid.UUID
	total int
}

func sumByProduct(entries []StockEntry) []productSum {
	order := make([]uuid.UUID, 0)
	totals := make(map[uuid.UUID]int)
	for _, e := range entries {
		if _, ok := totals[e.ProductID]; !ok {
			order = append(order, e.ProductID)
		}
		totals[e.ProductID] += e.Quantity
	}
	sums := make([]productSum, 0, len(order))
	for _, id := range order {
		sums = append(sums, productSum{id: id, total: totals[id]})
	}
	return sums
}

// sortByName orders rows by product name using English collation, so that
// case and accents do not split otherwise adjacent names.
func sortByName[T any](rows []T, name func(T) string) {
	c := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(rows, func(i, j int) bool {
		return c.CompareString(name(rows[i]), name(rows[j])) < 0
	})
}

// AggregateByProduct sums quantity per product. The reference price is the
// catalog MRP.
func AggregateByProduct(entries []StockEntry, products ProductIndex) []ProductTotal {
	sums := sumByProduct(entries)
	out := make([]ProductTotal, 0, len(sums))
	for _, s := range sums {
		out = append(out, ProductTotal{
			ProductID:      s.id,
			ProductName:    products.Name(s.id),
			TotalQuantity:  s.total,
			ReferencePrice: products.MRP(s.id),
		})
	}
	sortByName(out, func(p ProductTotal) string { return p.ProductName })
	return out
}

// GroupedAvailability sums quantity per product for transfer pickers,
// sorted by product name. Negative totals are kept and flagged.
func GroupedAvailability(entries []StockEntry, products ProductIndex) []Availability {
	sums := sumByProduct(entries)
	out := make([]Availability, 0, len(sums))
	for _, s := range sums {
		out = append(out, Availability{
			ProductID:     s.id,
			ProductName:   products.Name(s.id),
			TotalQuantity: s.total,
			Anomaly:       s.total < 0,
		})
	}
	sortByName(out, func(a Availability) string { return a.ProductName })
	return out
}

// BillGroupedHistory groups the entries inside r into bills, newest first
func BillGroupedHistory(entries []StockEntry, r DateRange) []Bill {
	history := make([]StockEntry, 0, len(entries))
	for _, e := range entries {
		if r.Contains(e.CreatedAt) {
			history = append(history, e)
		}
	}
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].CreatedAt.After(history[j].CreatedAt)
	})

	bills := make([]*Bill, 0)
	byKey := make(map[string]*Bill)
	for _, e := range history {
		key := billKey(e)
		b, ok := byKey[key]
		if !ok {
			b = &Bill{
				Key:         key,
				BillNumber:  e.PurchaseNumber,
				Date:        e.CreatedAt,
				TotalAmount: decimal.Zero,
			}
			byKey[key] = b
			bills = append(bills, b)
		}
		b.Entries = append(b.Entries, e)
		b.ItemCount++
		b.TotalQuantity += e.Quantity
		b.TotalAmount = b.TotalAmount.Add(e.Amount())
	}

	out := make([]Bill, 0, len(bills))
	for _, b := range bills {
		out = append(out, *b)
	}
	return out
}

func billKey(e StockEntry) string {
	if e.PurchaseNumber != nil && *e.PurchaseNumber != "" {
		return *e.PurchaseNumber
	}
	return "no-bill-" + e.ID.String()
}
