package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sipcalc/investment-calculator/internal/domain"
)

func writeStateFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromFile_Success(t *testing.T) {
	path := writeStateFile(t, ""+
		"mode: step_up\n"+
		"monthly_investment: 5000\n"+
		"annual_interest_rate: 12\n"+
		"inflation_rate: 6\n"+
		"duration_years: 10\n"+
		"step_up_amount: 500\n"+
		"step_up_frequency: yearly\n"+
		"target_amount: 1500000\n"+
		"additional_lumpsums:\n"+
		"  - year: 2\n"+
		"    month: 4\n"+
		"    amount: 50000\n"+
		"  - id: bonus-2027\n"+
		"    year: 3\n"+
		"    month: 1\n"+
		"    amount: 25000\n")

	parser := NewInputParser()
	state, err := parser.LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, domain.ModeStepUp, state.Mode)
	assert.Equal(t, 10, state.DurationYears)
	assert.Equal(t, domain.StepUpYearly, state.StepUpFrequency)
	require.NotNil(t, state.TargetAmount)
	assert.Equal(t, 1500000.0, *state.TargetAmount)

	require.Len(t, state.AdditionalLumpsums, 2)
	// Missing ids are defaulted, explicit ids are kept.
	assert.NotEmpty(t, state.AdditionalLumpsums[0].ID)
	assert.Equal(t, "bonus-2027", state.AdditionalLumpsums[1].ID)
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	_, err := NewInputParser().LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFromFile_MalformedYAML(t *testing.T) {
	path := writeStateFile(t, "mode: [unclosed\n")
	_, err := NewInputParser().LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestValidateState(t *testing.T) {
	valid := func() *domain.CalculatorState {
		return &domain.CalculatorState{
			Mode:               domain.ModeSIP,
			MonthlyInvestment:  1000,
			AnnualInterestRate: 12,
			DurationYears:      10,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*domain.CalculatorState)
		wantErr string
	}{
		{"valid sip", func(s *domain.CalculatorState) {}, ""},
		{"missing mode", func(s *domain.CalculatorState) { s.Mode = "" }, "mode is required"},
		{"unknown mode", func(s *domain.CalculatorState) { s.Mode = "dca" }, "mode must be"},
		{"rate too high", func(s *domain.CalculatorState) { s.AnnualInterestRate = 51 }, "annual interest rate"},
		{"rate negative", func(s *domain.CalculatorState) { s.AnnualInterestRate = -1 }, "annual interest rate"},
		{"duration zero", func(s *domain.CalculatorState) { s.DurationYears = 0 }, "duration"},
		{"duration too long", func(s *domain.CalculatorState) { s.DurationYears = 51 }, "duration"},
		{"inflation floor", func(s *domain.CalculatorState) { s.InflationRate = -100 }, "inflation rate"},
		{"negative monthly", func(s *domain.CalculatorState) { s.MonthlyInvestment = -5 }, "monthly investment"},
		{"negative lumpsum", func(s *domain.CalculatorState) { s.LumpsumInvestment = -5 }, "lumpsum investment"},
		{"step-up without frequency", func(s *domain.CalculatorState) { s.Mode = domain.ModeStepUp }, "step-up frequency"},
		{"non-positive target", func(s *domain.CalculatorState) { v := 0.0; s.TargetAmount = &v }, "target amount"},
		{"injection month", func(s *domain.CalculatorState) {
			s.AdditionalLumpsums = []domain.Lumpsum{{Year: 1, Month: 13, Amount: 10}}
		}, "month must be"},
		{"injection year", func(s *domain.CalculatorState) {
			s.AdditionalLumpsums = []domain.Lumpsum{{Year: 0, Month: 5, Amount: 10}}
		}, "year must be"},
		{"injection amount", func(s *domain.CalculatorState) {
			s.AdditionalLumpsums = []domain.Lumpsum{{Year: 1, Month: 5, Amount: -10}}
		}, "amount cannot be negative"},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := valid()
			tt.mutate(state)
			err := parser.ValidateState(state)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCreateExampleState(t *testing.T) {
	parser := NewInputParser()
	state := parser.CreateExampleState()
	require.NoError(t, parser.ValidateState(state))
	assert.NotEmpty(t, state.AdditionalLumpsums[0].ID)
}
