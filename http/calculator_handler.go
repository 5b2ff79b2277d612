package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"homecalc/domain"
	"homecalc/format"
	"homecalc/service"
)

type CalculatorHandler struct {
	service  *service.CalculatorService
	siteName string
}

func NewCalculatorHandler(service *service.CalculatorService, siteName string) *CalculatorHandler {
	return &CalculatorHandler{service: service, siteName: siteName}
}

type calculationResponse struct {
	ID      string                `json:"id"`
	Kind    domain.CalculatorKind `json:"kind"`
	Result  any                   `json:"result"`
	Display map[string]string     `json:"display"`
	Cached  bool                  `json:"cached"`
}

type catalogEntry struct {
	domain.Calculator
	Route     string `json:"route"`
	PageTitle string `json:"pageTitle"`
}

// Catalog lists every calculator page in navigation order.
func (h *CalculatorHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	calcs := domain.Calculators()
	out := make([]catalogEntry, 0, len(calcs))
	for _, c := range calcs {
		out = append(out, catalogEntry{Calculator: c, Route: c.Route(), PageTitle: c.PageTitle(h.siteName)})
	}
	writeJSON(w, r, http.StatusOK, out)
}

// Calculate runs the calculator named by the {slug} path parameter.
func (h *CalculatorHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	kind, ok := domain.ParseKind(chi.URLParam(r, "slug"))
	if !ok {
		writeError(w, r, http.StatusNotFound, "unknown calculator")
		return
	}
	if info, _ := kind.Info(); !info.Available {
		writeError(w, r, http.StatusNotImplemented, info.Title+" is coming soon")
		return
	}

	s := h.service
	switch kind {
	case domain.KindMortgage:
		calculate(w, r, s.Mortgage)
	case domain.KindHomeLoan:
		calculate(w, r, s.HomeLoan)
	case domain.KindAffordability:
		calculate(w, r, s.Affordability)
	case domain.KindHomePrice:
		calculate(w, r, s.HomePrice)
	case domain.KindRentVsBuy:
		calculate(w, r, s.RentVsBuy)
	case domain.KindHomeEquity:
		calculate(w, r, s.HomeEquity)
	case domain.KindMortgagePayment:
		calculate(w, r, s.PaymentPlan)
	case domain.KindHomeValue:
		calculate(w, r, s.HomeValue)
	case domain.KindPropertyTax:
		calculate(w, r, s.PropertyTax)
	case domain.KindROI:
		calculate(w, r, s.ROI)
	default:
		writeError(w, r, http.StatusNotImplemented, kind.String()+" has no calculator")
	}
}

func calculate[In, Out any](w http.ResponseWriter, r *http.Request, run func(In) (service.Outcome[Out], error)) {
	var in In
	if err := decodeJSON(w, r, &in); err != nil {
		writeDecodeError(w, r, err)
		return
	}

	out, err := run(in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, calculationResponse{
		ID:      out.ID,
		Kind:    out.Kind,
		Result:  out.Result,
		Display: format.Display(out.Result),
		Cached:  out.Cached,
	})
}

type scheduleRequest struct {
	domain.LoanTerms
	ExtraMonthlyPayment float64 `json:"extraMonthlyPayment"`
}

func (h *CalculatorHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, r, err)
		return
	}

	result, err := h.service.Schedule(req.LoanTerms, req.ExtraMonthlyPayment)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}

func (h *CalculatorHandler) RecommendTerm(w http.ResponseWriter, r *http.Request) {
	var in domain.TermRecommendationInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeDecodeError(w, r, err)
		return
	}

	result, err := h.service.RecommendTerm(in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}

func (h *CalculatorHandler) History(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, r, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	entries, err := h.service.History(limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, entries)
}

func (h *CalculatorHandler) Calculation(w http.ResponseWriter, r *http.Request) {
	entry, err := h.service.Calculation(chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, entry)
}
