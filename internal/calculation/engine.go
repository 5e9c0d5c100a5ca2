package calculation

import (
	"errors"
	"math"

	"github.com/sipcalc/investment-calculator/internal/domain"
)

// ErrInflationTooLow is returned when the inflation rate is -100% or below,
// which would make the real-value denominator zero or negative.
var ErrInflationTooLow = errors.New("inflation rate must be greater than -100%")

// CalculationEngine runs investment growth simulations. It holds no state
// between runs; concurrent Simulate calls are safe as long as each call gets
// its own unshared input snapshot.
type CalculationEngine struct {
	Debug  bool
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine with a no-op logger.
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op
// logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

type monthKey struct {
	year  int
	month int
}

// indexLumpsums folds the injection list into a (year, month) -> amount map so
// the month loop resolves extras in O(1) instead of re-scanning the list.
// Injections landing on the same month are summed.
func indexLumpsums(injections []domain.Lumpsum) map[monthKey]float64 {
	if len(injections) == 0 {
		return nil
	}
	index := make(map[monthKey]float64, len(injections))
	for _, inj := range injections {
		index[monthKey{inj.Year, inj.Month}] += inj.Amount
	}
	return index
}

// Simulate projects the growth of the configured investment month by month
// and returns a brand-new result. The input state is never mutated.
//
// Deposits follow the annuity-due convention: each month's contribution is
// added to the balance before interest accrues for that month. Real values
// discount the nominal balance by elapsed calendar time in fractional years.
func (ce *CalculationEngine) Simulate(state *domain.CalculatorState) (*domain.CalculationResult, error) {
	inflation := state.InflationRate / 100
	if inflation <= -1 {
		return nil, ErrInflationTooLow
	}

	if state.DurationYears <= 0 {
		// No months to simulate; no cash flow ever occurs, so even a lumpsum
		// opening balance stays out of the totals.
		ce.Logger.Warnf("non-positive duration (%d years), returning empty result", state.DurationYears)
		return &domain.CalculationResult{
			MonthlyData:     []domain.MonthlyPoint{},
			YearlyBreakdown: []domain.YearlySnapshot{},
		}, nil
	}

	totalMonths := state.DurationYears * 12
	monthlyRate := state.AnnualInterestRate / 12 / 100
	extras := indexLumpsums(state.AdditionalLumpsums)

	installment := state.MonthlyInvestment
	balance := 0.0
	totalInvested := 0.0
	if state.Mode == domain.ModeLumpsum {
		installment = 0
		balance = state.LumpsumInvestment
		totalInvested = state.LumpsumInvestment
	}

	if ce.Debug {
		ce.Logger.Debugf("simulate: mode=%s months=%d rate=%.4f%%/mo injections=%d",
			state.Mode, totalMonths, monthlyRate*100, len(state.AdditionalLumpsums))
	}

	monthlyData := make([]domain.MonthlyPoint, 0, totalMonths)
	yearlyBreakdown := make([]domain.YearlySnapshot, 0, state.DurationYears)
	var goal *domain.GoalMonth

	for m := 1; m <= totalMonths; m++ {
		// Step-up adjustments are cumulative: the installment keeps every
		// prior increment. Yearly step-ups fire at the first month of each
		// year after the first.
		if state.Mode == domain.ModeStepUp && m > 1 {
			switch state.StepUpFrequency {
			case domain.StepUpMonthly:
				installment += state.StepUpAmount
			case domain.StepUpYearly:
				if (m-1)%12 == 0 {
					installment += state.StepUpAmount
				}
			}
		}

		projectYear := (m-1)/12 + 1
		monthInYear := (m-1)%12 + 1
		extra := extras[monthKey{projectYear, monthInYear}]

		deposit := installment + extra
		afterDeposit := balance + deposit
		balance = afterDeposit + afterDeposit*monthlyRate
		totalInvested += deposit

		realValue := balance / math.Pow(1+inflation, float64(m)/12)

		// First crossing wins; equality counts; nominal balance even when
		// inflation tracking is on.
		if goal == nil && state.TargetAmount != nil && balance >= *state.TargetAmount {
			goal = &domain.GoalMonth{Year: projectYear, Month: monthInYear}
			if ce.Debug {
				ce.Logger.Debugf("goal reached: year %d month %d balance %.2f", projectYear, monthInYear, balance)
			}
		}

		monthlyData = append(monthlyData, domain.MonthlyPoint{
			MonthIndex:  m,
			Year:        projectYear,
			Invested:    totalInvested,
			Value:       balance,
			RealValue:   realValue,
			Installment: installment,
		})

		if m%12 == 0 || m == totalMonths {
			yearlyBreakdown = append(yearlyBreakdown, domain.YearlySnapshot{
				Year:           projectYear,
				InvestedAmount: totalInvested,
				InterestEarned: balance - totalInvested,
				TotalValue:     balance,
				RealValue:      realValue,
			})
		}
	}

	return &domain.CalculationResult{
		TotalInvested:     totalInvested,
		TotalWealth:       balance,
		TotalRealWealth:   balance / math.Pow(1+inflation, float64(state.DurationYears)),
		TotalGain:         balance - totalInvested,
		MonthlyData:       monthlyData,
		YearlyBreakdown:   yearlyBreakdown,
		GoalAchievedMonth: goal,
	}, nil
}
