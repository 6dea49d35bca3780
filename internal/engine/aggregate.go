package engine

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

const chartLabelLayout = "01-02"

var potentialSavingsRate = decimal.NewFromFloat(0.2)

// ChartPoint is the debit total of one calendar day.
type ChartPoint struct {
	Label  string
	Date   time.Time
	Amount decimal.Decimal
}

// CategoryTotal is one slice of the expense breakdown.
type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
}

// DerivedAggregate is everything the dashboard shows about a ledger.
// It is recomputed from scratch for every snapshot.
type DerivedAggregate struct {
	TotalExpense   decimal.Decimal
	TotalIncome    decimal.Decimal
	CurrentBalance decimal.Decimal
	CategoryTotals map[string]decimal.Decimal
	ChartSeries    []ChartPoint
}

// Aggregate derives totals, the category breakdown and the spending chart.
// The balance is always allowance + income - expense.
func Aggregate(ledger *Ledger, budget BudgetProfile) DerivedAggregate {
	agg := DerivedAggregate{
		TotalExpense:   decimal.Zero,
		TotalIncome:    decimal.Zero,
		CategoryTotals: make(map[string]decimal.Decimal),
	}

	buckets := make(map[string]ChartPoint)
	for _, t := range ledger.List(Filter{}) {
		switch t.Kind {
		case KindCredit:
			agg.TotalIncome = agg.TotalIncome.Add(t.Amount)
		case KindDebit:
			agg.TotalExpense = agg.TotalExpense.Add(t.Amount)
			agg.CategoryTotals[t.Category] = agg.CategoryTotals[t.Category].Add(t.Amount)

			day := DateOf(t.Date)
			key := day.Format(time.DateOnly)
			point, ok := buckets[key]
			if !ok {
				point = newChartPoint(day, decimal.Zero)
			}
			point.Amount = point.Amount.Add(t.Amount)
			buckets[key] = point
		}
	}

	agg.CurrentBalance = budget.MonthlyAllowance.Add(agg.TotalIncome).Sub(agg.TotalExpense)
	agg.ChartSeries = chartSeries(buckets)

	return agg
}

func chartSeries(buckets map[string]ChartPoint) []ChartPoint {
	series := make([]ChartPoint, 0, len(buckets)+1)
	for _, point := range buckets {
		series = append(series, point)
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})

	// A single point cannot be drawn as a line.
	if len(series) == 1 {
		previous := series[0].Date.AddDate(0, 0, -1)
		series = append([]ChartPoint{newChartPoint(previous, decimal.Zero)}, series...)
	}

	return series
}

func newChartPoint(day time.Time, amount decimal.Decimal) ChartPoint {
	return ChartPoint{
		Label:  day.Format(chartLabelLayout),
		Date:   day,
		Amount: amount,
	}
}

// DailySeries returns days+1 consecutive debit buckets ending on end's
// calendar date, zero-filled. Days are matched by calendar date, so the
// locations of end and the stored dates do not matter.
func DailySeries(ledger *Ledger, end time.Time, days int) []ChartPoint {
	if days < 0 {
		days = 0
	}
	y, m, d := end.Date()
	last := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	first := last.AddDate(0, 0, -days)
	firstKey, lastKey := first.Format(time.DateOnly), last.Format(time.DateOnly)

	buckets := make(map[string]decimal.Decimal)
	for _, t := range ledger.List(Filter{Kind: FilterExpense}) {
		key := t.Date.Format(time.DateOnly)
		if key < firstKey || key > lastKey {
			continue
		}
		buckets[key] = buckets[key].Add(t.Amount)
	}

	series := make([]ChartPoint, 0, days+1)
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		series = append(series, newChartPoint(day, buckets[day.Format(time.DateOnly)]))
	}
	return series
}

// Categories returns the category totals ordered by amount, largest first.
// Equal amounts are ordered by name.
func (a DerivedAggregate) Categories() []CategoryTotal {
	out := make([]CategoryTotal, 0, len(a.CategoryTotals))
	for category, amount := range a.CategoryTotals {
		out = append(out, CategoryTotal{Category: category, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		if cmp := out[i].Amount.Cmp(out[j].Amount); cmp != 0 {
			return cmp > 0
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// PotentialSavings is a fifth of whatever balance is left, or zero when overspent.
func PotentialSavings(agg DerivedAggregate) decimal.Decimal {
	if !agg.CurrentBalance.IsPositive() {
		return decimal.Zero
	}
	return agg.CurrentBalance.Mul(potentialSavingsRate).Round(2)
}
