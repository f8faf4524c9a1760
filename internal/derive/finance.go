package derive

import (
	"time"

	"github.com/MKhiriev/aion/models"
)

// categoryLabels maps transaction category values to display labels.
// Categories cover 8 expense and 5 income values; "other" appears in both.
var categoryLabels = map[string]string{
	"housing":        "Housing",
	"food":           "Food & Dining",
	"transportation": "Transportation",
	"shopping":       "Shopping",
	"utilities":      "Utilities",
	"entertainment":  "Entertainment",
	"health":         "Health",
	"other":          "Other",
	"salary":         "Salary",
	"freelance":      "Freelance",
	"investment":     "Investment",
	"gift":           "Gift",
}

// categoryColors maps transaction category values to chart colors.
var categoryColors = map[string]string{
	"housing":        "#4F46E5",
	"food":           "#10B981",
	"transportation": "#F59E0B",
	"shopping":       "#EC4899",
	"utilities":      "#6366F1",
	"entertainment":  "#8B5CF6",
	"health":         "#14B8A6",
	"other":          "#9CA3AF",
	"salary":         "#059669",
	"freelance":      "#0D9488",
	"investment":     "#0369A1",
	"gift":           "#7C3AED",
}

// neutralColor is the fallback for categories outside the table.
const neutralColor = "#9CA3AF"

// CategoryLabel returns the display label for a category value, or the raw
// value itself when unknown.
func CategoryLabel(category string) string {
	if label, ok := categoryLabels[category]; ok {
		return label
	}
	return category
}

// CategoryColor returns the chart color for a category value, or the neutral
// gray when unknown.
func CategoryColor(category string) string {
	if color, ok := categoryColors[category]; ok {
		return color
	}
	return neutralColor
}

// SumByType totals the amounts of all transactions of the given type.
func SumByType(transactions []models.Transaction, txType models.TransactionType) float64 {
	var sum float64
	for _, tx := range transactions {
		if tx.Type == txType {
			sum += tx.Amount
		}
	}
	return sum
}

// CategoryTotal is the rollup of one category within a transaction list.
type CategoryTotal struct {
	Category string  `json:"category"`
	Label    string  `json:"label"`
	Color    string  `json:"color"`
	Amount   float64 `json:"amount"`
}

// CategoryTotals sums transactions of the given type per category. Categories
// appear in order of first occurrence, so the per-category amounts always
// partition SumByType for the same input.
func CategoryTotals(transactions []models.Transaction, txType models.TransactionType) []CategoryTotal {
	index := make(map[string]int)
	totals := make([]CategoryTotal, 0)

	for _, tx := range transactions {
		if tx.Type != txType {
			continue
		}

		i, seen := index[tx.Category]
		if !seen {
			i = len(totals)
			index[tx.Category] = i
			totals = append(totals, CategoryTotal{
				Category: tx.Category,
				Label:    CategoryLabel(tx.Category),
				Color:    CategoryColor(tx.Category),
			})
		}
		totals[i].Amount += tx.Amount
	}

	return totals
}

// FinanceSummary aggregates a transaction list into totals and savings.
type FinanceSummary struct {
	Income      float64 `json:"income"`
	Expenses    float64 `json:"expenses"`
	Net         float64 `json:"net"`
	SavingsRate float64 `json:"savingsRate"`
}

// Summarize computes income and expense totals, net savings, and the savings
// rate as a percentage of income. The rate is 0 when there is no income.
func Summarize(transactions []models.Transaction) FinanceSummary {
	summary := FinanceSummary{
		Income:   SumByType(transactions, models.TransactionIncome),
		Expenses: SumByType(transactions, models.TransactionExpense),
	}
	summary.Net = summary.Income - summary.Expenses
	if summary.Income > 0 {
		summary.SavingsRate = summary.Net / summary.Income * 100
	}

	return summary
}

// Period selects a reporting window for financial rollups.
type Period string

// Supported reporting periods.
const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// PeriodRange returns the inclusive [start, end] window of the period
// containing the reference instant: the trailing seven days for PeriodWeek,
// the calendar month for PeriodMonth and the calendar year for PeriodYear.
func PeriodRange(period Period, ref time.Time) (time.Time, time.Time) {
	switch period {
	case PeriodMonth:
		start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
		return start, endOfDay(start.AddDate(0, 1, -1))
	case PeriodYear:
		start := time.Date(ref.Year(), time.January, 1, 0, 0, 0, 0, ref.Location())
		return start, endOfDay(time.Date(ref.Year(), time.December, 31, 0, 0, 0, 0, ref.Location()))
	default:
		return startOfDay(ref).AddDate(0, 0, -6), endOfDay(ref)
	}
}
