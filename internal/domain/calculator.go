package domain

// InvestmentMode selects how contributions flow into the simulation.
type InvestmentMode string

const (
	// ModeSIP invests a fixed amount every month.
	ModeSIP InvestmentMode = "sip"
	// ModeLumpsum invests a single opening amount and nothing monthly.
	ModeLumpsum InvestmentMode = "lumpsum"
	// ModeStepUp invests monthly with scheduled increases to the installment.
	ModeStepUp InvestmentMode = "step_up"
)

// StepUpFrequency controls how often the installment is increased in step-up mode.
type StepUpFrequency string

const (
	StepUpMonthly StepUpFrequency = "monthly"
	StepUpYearly  StepUpFrequency = "yearly"
)

// Lumpsum is a one-time extra contribution tied to a specific simulated month.
// Year is the 1-based project year, Month is 1-12 within that year. An entry
// whose (year, month) never occurs within the simulated range is inert.
type Lumpsum struct {
	ID     string  `json:"id" yaml:"id"`
	Year   int     `json:"year" yaml:"year"`
	Month  int     `json:"month" yaml:"month"`
	Amount float64 `json:"amount" yaml:"amount"`
}

// CalculatorState is the fully-specified input snapshot for one simulation
// run. The engine never mutates it; callers must not mutate it (including the
// injection list) while a simulation over it is in flight.
type CalculatorState struct {
	Mode               InvestmentMode  `json:"mode" yaml:"mode"`
	MonthlyInvestment  float64         `json:"monthly_investment" yaml:"monthly_investment"`
	LumpsumInvestment  float64         `json:"lumpsum_investment" yaml:"lumpsum_investment"`
	AnnualInterestRate float64         `json:"annual_interest_rate" yaml:"annual_interest_rate"` // percent
	InflationRate      float64         `json:"inflation_rate" yaml:"inflation_rate"`             // percent per year, 0 disables real-value tracking
	DurationYears      int             `json:"duration_years" yaml:"duration_years"`
	StepUpAmount       float64         `json:"step_up_amount" yaml:"step_up_amount"`
	StepUpFrequency    StepUpFrequency `json:"step_up_frequency" yaml:"step_up_frequency"`
	AdditionalLumpsums []Lumpsum       `json:"additional_lumpsums" yaml:"additional_lumpsums"`
	TargetAmount       *float64        `json:"target_amount,omitempty" yaml:"target_amount,omitempty"`
}

// TotalMonths returns the number of months the simulation covers.
func (s *CalculatorState) TotalMonths() int {
	return s.DurationYears * 12
}

// IsRecurring reports whether the mode contributes a monthly installment.
func (s *CalculatorState) IsRecurring() bool {
	return s.Mode != ModeLumpsum
}

// MonthlyPoint is one simulated month. Value is the closing balance after the
// month's deposit and interest accrual; Installment is the recurring
// contribution for that month (extra lumpsum injections excluded).
type MonthlyPoint struct {
	MonthIndex  int     `json:"month_index"`
	Year        int     `json:"year"`
	Invested    float64 `json:"invested"`
	Value       float64 `json:"value"`
	RealValue   float64 `json:"real_value"`
	Installment float64 `json:"installment"`
}

// YearlySnapshot is taken at each completed project year, plus at the final
// month when it does not land on a year boundary.
type YearlySnapshot struct {
	Year           int     `json:"year"`
	InvestedAmount float64 `json:"invested_amount"`
	InterestEarned float64 `json:"interest_earned"`
	TotalValue     float64 `json:"total_value"`
	RealValue      float64 `json:"real_value"`
}

// GoalMonth identifies the first simulated month whose closing nominal
// balance met or exceeded the target amount.
type GoalMonth struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// CalculationResult is the immutable output of one simulation run. All values
// carry full double precision; rounding happens only at report render time.
type CalculationResult struct {
	TotalInvested     float64          `json:"total_invested"`
	TotalWealth       float64          `json:"total_wealth"`
	TotalRealWealth   float64          `json:"total_real_wealth"`
	TotalGain         float64          `json:"total_gain"`
	MonthlyData       []MonthlyPoint   `json:"monthly_data"`
	YearlyBreakdown   []YearlySnapshot `json:"yearly_breakdown"`
	GoalAchievedMonth *GoalMonth       `json:"goal_achieved_month,omitempty"`
}

// GoalAchieved reports whether the target amount was reached during the run.
func (r *CalculationResult) GoalAchieved() bool {
	return r.GoalAchievedMonth != nil
}

// FinalBalance returns the closing balance of the last simulated month, or
// zero for an empty result.
func (r *CalculationResult) FinalBalance() float64 {
	if len(r.MonthlyData) == 0 {
		return 0
	}
	return r.MonthlyData[len(r.MonthlyData)-1].Value
}
