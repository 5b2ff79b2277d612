package service

const (
	MaxAmount      = 1_000_000_000.0 // largest price, balance or income accepted
	MaxRatePercent = 100.0           // largest annual interest, tax or growth rate
	MaxYears       = 50              // year-denominated inputs are capped here

	// DefaultHistoryLimit is used when a history listing does not ask for a size.
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)
