package domain

import (
	"fmt"
	"time"
)

// CalculatorKind enumerates every calculator page the site offers.
type CalculatorKind int

const (
	KindMortgage CalculatorKind = iota
	KindHomeLoan
	KindAffordability
	KindHomePrice
	KindRentVsBuy
	KindHomeEquity
	KindMortgagePayment
	KindHomeValue
	KindPropertyTax
	KindROI
	KindHomeSelling
	KindHomeBuying

	kindCount
)

const imageBase = "https://images.unsplash.com/"

// Calculator is the catalog entry for one calculator page.
type Calculator struct {
	Kind        CalculatorKind `json:"kind"`
	Slug        string         `json:"slug"`
	Title       string         `json:"title"`
	NavLabel    string         `json:"navLabel"`
	Description string         `json:"description"`
	Image       string         `json:"image"`
	Available   bool           `json:"available"`
}

// Route is the page path on the public site.
func (c Calculator) Route() string {
	return "/" + c.Slug + "-calculator"
}

// PageTitle is the browser title for the page under the given site name.
func (c Calculator) PageTitle(site string) string {
	return c.Title + " | " + site
}

// catalog is indexed by kind; the array length pins it to kindCount.
var catalog = [kindCount]Calculator{
	KindMortgage: {
		Slug: "mortgage", Title: "Mortgage Calculator", NavLabel: "Mortgage Calculator",
		Description: "Estimate your monthly mortgage payment and total interest",
		Image:       imageBase + "photo-1560518883-ce09059eeffa", Available: true,
	},
	KindHomeLoan: {
		Slug: "home-loan", Title: "Home Loan Calculator", NavLabel: "Home Loan Calculator",
		Description: "Break down principal, interest, taxes, insurance and PMI",
		Image:       imageBase + "photo-1554224155-8d04cb21cd6c", Available: true,
	},
	KindAffordability: {
		Slug: "mortgage-affordability", Title: "Mortgage Affordability Calculator", NavLabel: "Mortgage Affordability",
		Description: "Find the home price your income supports under the 28/36 rule",
		Image:       imageBase + "photo-1600585154340-be6161a56a0c", Available: true,
	},
	KindHomePrice: {
		Slug: "home-price", Title: "Home Price Calculator", NavLabel: "Home Price Calculator",
		Description: "Estimate a price from square footage, land and upgrades",
		Image:       imageBase + "photo-1570129477492-45c003edd2be", Available: true,
	},
	KindRentVsBuy: {
		Slug: "rent-vs-buy", Title: "Rent vs Buy Calculator", NavLabel: "Rent vs. Buy",
		Description: "Compare the cost of renting with the cost of owning over time",
		Image:       imageBase + "photo-1560518883-b2275537fde2", Available: true,
	},
	KindHomeEquity: {
		Slug: "home-equity", Title: "Home Equity Calculator", NavLabel: "Home Equity",
		Description: "See your current equity and where it will be in a year",
		Image:       imageBase + "photo-1560184897-ae75f418493e", Available: true,
	},
	KindMortgagePayment: {
		Slug: "mortgage-payment", Title: "Mortgage Payment Calculator", NavLabel: "Mortgage Payment",
		Description: "See how extra payments shorten your loan",
		Image:       imageBase + "photo-1560520653-9e0e4c89eb11", Available: true,
	},
	KindHomeValue: {
		Slug: "home-value", Title: "Home Value Calculator", NavLabel: "Home Value",
		Description: "Project your home's value with appreciation and adjustments",
		Image:       imageBase + "photo-1582407947304-fd86f028f716", Available: true,
	},
	KindPropertyTax: {
		Slug: "property-tax", Title: "Property Tax Calculator", NavLabel: "Property Tax",
		Description: "Estimate annual and monthly property tax",
		Image:       imageBase + "photo-1589829545856-d10d557cf95f", Available: true,
	},
	KindROI: {
		Slug: "real-estate-roi", Title: "Real Estate ROI Calculator", NavLabel: "Real Estate ROI",
		Description: "Calculate potential returns on your real estate investment",
		Image:       imageBase + "photo-1543286386-713bdd548da4", Available: true,
	},
	KindHomeSelling: {
		Slug: "home-selling", Title: "Home Selling Calculator", NavLabel: "Home Selling",
		Description: "Coming soon",
		Image:       imageBase + "photo-1582407947304-fd86f028f716",
	},
	KindHomeBuying: {
		Slug: "home-buying", Title: "Home Buying Calculator", NavLabel: "Home Buying",
		Description: "Coming soon",
		Image:       imageBase + "photo-1560518883-ce09059eeffa",
	},
}

func init() {
	for i := range catalog {
		catalog[i].Kind = CalculatorKind(i)
	}
}

// Calculators returns the catalog in navigation order.
func Calculators() []Calculator {
	out := make([]Calculator, len(catalog))
	copy(out, catalog[:])
	return out
}

// Info returns the catalog entry for k.
func (k CalculatorKind) Info() (Calculator, bool) {
	if !k.Valid() {
		return Calculator{}, false
	}
	return catalog[k], true
}

func (k CalculatorKind) Valid() bool {
	return k >= 0 && k < kindCount
}

func (k CalculatorKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("calculator(%d)", int(k))
	}
	return catalog[k].Slug
}

func (k CalculatorKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("unknown calculator kind %d", int(k))
	}
	return []byte(catalog[k].Slug), nil
}

func (k *CalculatorKind) UnmarshalText(text []byte) error {
	parsed, ok := ParseKind(string(text))
	if !ok {
		return fmt.Errorf("unknown calculator %q", string(text))
	}
	*k = parsed
	return nil
}

// ParseKind resolves a slug to its kind.
func ParseKind(slug string) (CalculatorKind, bool) {
	for i := range catalog {
		if catalog[i].Slug == slug {
			return CalculatorKind(i), true
		}
	}
	return 0, false
}

// CalculationRecord is one stored calculation. Input and Result hold the
// msgpack encoding of the kind's input and result structs.
type CalculationRecord struct {
	ID        string         `json:"id"`
	Kind      CalculatorKind `json:"kind"`
	Input     []byte         `json:"-"`
	Result    []byte         `json:"-"`
	CreatedAt time.Time      `json:"createdAt"`
}
