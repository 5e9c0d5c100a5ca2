package output

import (
	"bytes"
	"fmt"

	"github.com/sipcalc/investment-calculator/internal/domain"
	"github.com/sipcalc/investment-calculator/pkg/money"
)

// ReportFormatter renders the canonical plain-text projection report:
// sections separated by one blank line, each section a title line followed
// by a header row and comma-separated integer data rows. The underlying
// result keeps full precision; rounding happens here only.
type ReportFormatter struct{}

func (r ReportFormatter) Name() string { return "report" }

func (r ReportFormatter) Format(result *domain.CalculationResult) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "INVESTMENT PROJECTION REPORT")

	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "SUMMARY")
	fmt.Fprintln(&buf, "total_invested,total_wealth,total_real_wealth,total_gain")
	fmt.Fprintf(&buf, "%s,%s,%s,%s\n",
		money.FormatRounded(result.TotalInvested),
		money.FormatRounded(result.TotalWealth),
		money.FormatRounded(result.TotalRealWealth),
		money.FormatRounded(result.TotalGain),
	)

	if result.GoalAchievedMonth != nil {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "GOAL ACHIEVED")
		fmt.Fprintln(&buf, "year,month")
		fmt.Fprintf(&buf, "%d,%d\n", result.GoalAchievedMonth.Year, result.GoalAchievedMonth.Month)
	}

	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "YEARLY BREAKDOWN")
	fmt.Fprintln(&buf, "year,invested,interest_earned,total_value,real_value")
	for _, y := range result.YearlyBreakdown {
		fmt.Fprintf(&buf, "%d,%s,%s,%s,%s\n",
			y.Year,
			money.FormatRounded(y.InvestedAmount),
			money.FormatRounded(y.InterestEarned),
			money.FormatRounded(y.TotalValue),
			money.FormatRounded(y.RealValue),
		)
	}

	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "MONTHLY BREAKDOWN")
	fmt.Fprintln(&buf, "month_index,year,invested,value,real_value,installment")
	for _, m := range result.MonthlyData {
		fmt.Fprintf(&buf, "%d,%d,%s,%s,%s,%s\n",
			m.MonthIndex,
			m.Year,
			money.FormatRounded(m.Invested),
			money.FormatRounded(m.Value),
			money.FormatRounded(m.RealValue),
			money.FormatRounded(m.Installment),
		)
	}

	return buf.Bytes(), nil
}
