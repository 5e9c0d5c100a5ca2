package output

import (
	"bytes"
	"fmt"

	"github.com/sipcalc/investment-calculator/internal/domain"
	"github.com/sipcalc/investment-calculator/pkg/money"
)

// ConsoleFormatter provides a concise human-readable summary via the
// formatter interface. Currency strings appear here only; the machine report
// stays symbol-free.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(result *domain.CalculationResult) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "INVESTMENT PROJECTION SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Total Invested:    %s\n", money.FormatCurrency(result.TotalInvested))
	fmt.Fprintf(&buf, "Total Wealth:      %s\n", money.FormatCurrency(result.TotalWealth))
	fmt.Fprintf(&buf, "Total Real Wealth: %s\n", money.FormatCurrency(result.TotalRealWealth))
	fmt.Fprintf(&buf, "Total Gain:        %s\n", money.FormatCurrency(result.TotalGain))
	if g := result.GoalAchievedMonth; g != nil {
		fmt.Fprintf(&buf, "Goal reached in year %d, month %d\n", g.Year, g.Month)
	}
	fmt.Fprintln(&buf)
	for _, y := range result.YearlyBreakdown {
		fmt.Fprintf(&buf, "Year %2d: invested=%s value=%s interest=%s real=%s\n",
			y.Year,
			money.FormatCurrency(y.InvestedAmount),
			money.FormatCurrency(y.TotalValue),
			money.FormatCurrency(y.InterestEarned),
			money.FormatCurrency(y.RealValue),
		)
	}
	return buf.Bytes(), nil
}
