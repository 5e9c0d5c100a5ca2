package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/sipcalc/investment-calculator/internal/domain"
)

// InputParser handles parsing of calculator state files. Range enforcement
// lives here, at the input boundary: the engine itself accepts any
// well-formed state and computes a best-effort result.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a calculator state from a YAML file, validates it, and
// assigns ids to injections that lack one.
func (ip *InputParser) LoadFromFile(filename string) (*domain.CalculatorState, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var state domain.CalculatorState
	if err := yaml.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateState(&state); err != nil {
		return nil, fmt.Errorf("state validation failed: %w", err)
	}

	for i := range state.AdditionalLumpsums {
		if strings.TrimSpace(state.AdditionalLumpsums[i].ID) == "" {
			state.AdditionalLumpsums[i].ID = uuid.NewString()
		}
	}

	return &state, nil
}

// ValidateState validates a calculator state against the input-layer ranges.
func (ip *InputParser) ValidateState(state *domain.CalculatorState) error {
	switch state.Mode {
	case domain.ModeSIP, domain.ModeLumpsum, domain.ModeStepUp:
	case "":
		return fmt.Errorf("mode is required (sip, lumpsum or step_up)")
	default:
		return fmt.Errorf("mode must be 'sip', 'lumpsum' or 'step_up', got %q", state.Mode)
	}

	if state.AnnualInterestRate < 0 || state.AnnualInterestRate > 50 {
		return fmt.Errorf("annual interest rate must be between 0%% and 50%%, got %.2f%%", state.AnnualInterestRate)
	}
	if state.DurationYears < 1 || state.DurationYears > 50 {
		return fmt.Errorf("duration must be between 1 and 50 years, got %d", state.DurationYears)
	}
	if state.InflationRate <= -100 {
		return fmt.Errorf("inflation rate must be greater than -100%%, got %.2f%%", state.InflationRate)
	}
	if state.MonthlyInvestment < 0 {
		return fmt.Errorf("monthly investment cannot be negative")
	}
	if state.LumpsumInvestment < 0 {
		return fmt.Errorf("lumpsum investment cannot be negative")
	}

	if state.Mode == domain.ModeStepUp {
		switch state.StepUpFrequency {
		case domain.StepUpMonthly, domain.StepUpYearly:
		default:
			return fmt.Errorf("step-up frequency must be 'monthly' or 'yearly', got %q", state.StepUpFrequency)
		}
	}

	if state.TargetAmount != nil && *state.TargetAmount <= 0 {
		return fmt.Errorf("target amount must be positive")
	}

	for i, inj := range state.AdditionalLumpsums {
		if inj.Month < 1 || inj.Month > 12 {
			return fmt.Errorf("lumpsum %d: month must be between 1 and 12, got %d", i, inj.Month)
		}
		if inj.Year < 1 {
			return fmt.Errorf("lumpsum %d: year must be at least 1, got %d", i, inj.Year)
		}
		if inj.Amount < 0 {
			return fmt.Errorf("lumpsum %d: amount cannot be negative", i)
		}
	}

	return nil
}

// CreateExampleState returns a small, valid example state suitable for
// writing out as a starter YAML file.
func (ip *InputParser) CreateExampleState() *domain.CalculatorState {
	target := 2500000.0
	return &domain.CalculatorState{
		Mode:               domain.ModeStepUp,
		MonthlyInvestment:  10000,
		AnnualInterestRate: 12,
		InflationRate:      6,
		DurationYears:      15,
		StepUpAmount:       1000,
		StepUpFrequency:    domain.StepUpYearly,
		AdditionalLumpsums: []domain.Lumpsum{
			{ID: uuid.NewString(), Year: 3, Month: 4, Amount: 100000},
		},
		TargetAmount: &target,
	}
}
