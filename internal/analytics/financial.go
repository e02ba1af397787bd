package analytics

import "github.com/BruksfildServices01/barberpro/internal/models"

type Financial struct {
	TotalRevenue       float64 `json:"totalRevenue"`
	TotalExpenses      float64 `json:"totalExpenses"`
	NetProfit          float64 `json:"netProfit"`
	ExpensesByCategory []Slice `json:"expensesByCategory"`
	Arcs               []Arc   `json:"arcs"`
	ConicGradient      string  `json:"conicGradient"`
}

// BuildFinancial sums every expense regardless of date or category. Net
// profit is not clamped: a loss is reported as a negative number.
func BuildFinancial(totalRevenue float64, expenses []models.Expense) Financial {
	byCategory := newBucket()
	var total float64
	for _, e := range expenses {
		total += e.Amount
		byCategory.add(string(e.Category), e.Amount)
	}

	cats := byCategory.sorted()
	percentages(cats, total)

	f := Financial{
		TotalRevenue:       totalRevenue,
		TotalExpenses:      total,
		NetProfit:          totalRevenue - total,
		ExpensesByCategory: cats,
	}

	// Angles follow the cumulative percentage rather than raw amounts.
	if total > 0 {
		var before float64
		for i := range cats {
			cats[i].StartAngle = 360 * before / 100
			before += cats[i].Percentage
			cats[i].EndAngle = 360 * before / 100
		}
		f.Arcs = arcs(cats)
	} else {
		f.Arcs = arcs(nil)
	}
	f.ConicGradient = ConicGradient(f.Arcs)
	return f
}
