package integration

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sipcalc/investment-calculator/internal/calculation"
	"github.com/sipcalc/investment-calculator/internal/config"
	"github.com/sipcalc/investment-calculator/internal/output"
)

func TestEndToEndProjection(t *testing.T) {
	parser := config.NewInputParser()
	state, err := parser.LoadFromFile("../testdata/example_state.yaml")
	require.NoError(t, err)

	engine := calculation.NewCalculationEngine()
	result, err := engine.Simulate(state)
	require.NoError(t, err)

	assert.Len(t, result.MonthlyData, state.TotalMonths())
	assert.Len(t, result.YearlyBreakdown, state.DurationYears)
	assert.Greater(t, result.TotalWealth, result.TotalInvested)
	assert.Less(t, result.TotalRealWealth, result.TotalWealth)

	// Both injections fall inside the 15-year range.
	installments := 0.0
	for _, m := range result.MonthlyData {
		installments += m.Installment
	}
	assert.InDelta(t, installments+150000, result.TotalInvested, 1e-6)

	// A 2.5M target against these contributions is reached before the end.
	require.NotNil(t, result.GoalAchievedMonth)
	assert.GreaterOrEqual(t, result.GoalAchievedMonth.Year, 1)
	assert.LessOrEqual(t, result.GoalAchievedMonth.Year, state.DurationYears)
}

func TestOutputGeneration(t *testing.T) {
	parser := config.NewInputParser()
	state, err := parser.LoadFromFile("../testdata/example_state.yaml")
	require.NoError(t, err)

	engine := calculation.NewCalculationEngine()
	result, err := engine.Simulate(state)
	require.NoError(t, err)

	// GenerateReport writes timestamped files into the working directory.
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	for _, format := range []string{"report", "console", "csv", "json"} {
		assert.NoError(t, output.GenerateReport(result, format), "format %s", format)
	}

	data, err := output.ReportFormatter{}.Format(result)
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.HasPrefix(text, "INVESTMENT PROJECTION REPORT\n"))
	assert.Contains(t, text, "GOAL ACHIEVED")
	assert.Contains(t, text, "MONTHLY BREAKDOWN")
}
