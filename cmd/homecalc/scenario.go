package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"homecalc/domain"
	"homecalc/engine"
)

// Scenario is a YAML file with one optional section per calculator, keyed
// by the calculator's slug.
type Scenario struct {
	Mortgage      *domain.MortgageInput      `yaml:"mortgage"`
	HomeLoan      *domain.HomeLoanInput      `yaml:"home-loan"`
	Affordability *domain.AffordabilityInput `yaml:"mortgage-affordability"`
	HomePrice     *domain.HomePriceInput     `yaml:"home-price"`
	RentVsBuy     *domain.RentVsBuyScenario  `yaml:"rent-vs-buy"`
	HomeEquity    *domain.HomeEquityInput    `yaml:"home-equity"`
	PaymentPlan   *domain.PaymentPlanInput   `yaml:"mortgage-payment"`
	HomeValue     *domain.PropertyValuation  `yaml:"home-value"`
	PropertyTax   *domain.PropertyTaxInput   `yaml:"property-tax"`
	ROI           *domain.InvestmentScenario `yaml:"real-estate-roi"`
}

var errEmptyScenario = errors.New("scenario has no calculator sections")

// LoadScenario reads a scenario file. Unknown sections and fields are errors.
func LoadScenario(filename string) (*Scenario, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if s == (Scenario{}) {
		return nil, errEmptyScenario
	}
	return &s, nil
}

// Section is the outcome of one calculator in a scenario.
type Section struct {
	Kind   domain.CalculatorKind
	Result any
	Err    error
}

// Run evaluates every section present in the scenario, in catalog order.
// A non-empty only restricts the run to those calculators.
func (s *Scenario) Run(only map[domain.CalculatorKind]bool) []Section {
	candidates := []*Section{
		runSection(domain.KindMortgage, s.Mortgage, engine.Mortgage),
		runSection(domain.KindHomeLoan, s.HomeLoan, engine.HomeLoan),
		runSection(domain.KindAffordability, s.Affordability, engine.MaxAffordablePrice),
		runSection(domain.KindHomePrice, s.HomePrice, engine.EstimateHomePrice),
		runSection(domain.KindRentVsBuy, s.RentVsBuy, engine.CompareRentVsBuy),
		runSection(domain.KindHomeEquity, s.HomeEquity, engine.HomeEquity),
		runSection(domain.KindMortgagePayment, s.PaymentPlan, engine.PaymentPlan),
		runSection(domain.KindHomeValue, s.HomeValue, engine.ProjectValue),
		runSection(domain.KindPropertyTax, s.PropertyTax, engine.PropertyTaxFor),
		runSection(domain.KindROI, s.ROI, engine.AnalyzeInvestment),
	}

	var out []Section
	for _, sec := range candidates {
		if sec == nil {
			continue
		}
		if len(only) > 0 && !only[sec.Kind] {
			continue
		}
		out = append(out, *sec)
	}
	return out
}

func runSection[In, Out any](kind domain.CalculatorKind, in *In, fn func(In) (Out, error)) *Section {
	if in == nil {
		return nil
	}
	result, err := fn(*in)
	if err != nil {
		return &Section{Kind: kind, Err: err}
	}
	return &Section{Kind: kind, Result: result}
}
