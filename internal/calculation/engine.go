package calculation

import (
	"fmt"
	"math"
	"strconv"
	"sync"

	"github.com/immocalc/immo-vs-etf/internal/domain"
	"github.com/immocalc/immo-vs-etf/pkg/money"
)

// Row labels of the annual snapshot.
const (
	LabelAnnualRent         = "Jährliche Mieteinnahmen (gesamt)"
	LabelOperatingCosts     = "Betriebskosten (jährlich)"
	LabelVacancyLoss        = "Leerstand (jährlich)"
	LabelReserves           = "Rücklagen (jährlich)"
	LabelInterest           = "Zinsaufwand (jährlich)"
	LabelPrincipal          = "Tilgung (jährlich)"
	LabelLoanPayment        = "Jährliche Kreditrate (Zins+Tilgung)"
	LabelTaxableIncome      = "Steuerbarer Gewinn (vor Steuern)"
	LabelEffectiveTaxRate   = "Effektiver Steuersatz (%)"
	LabelIncomeTax          = "Einkommensteuer (jährlich)"
	LabelCashflowAfterTax   = "Cashflow nach Steuern (jährlich)"
	LabelTaxLossBenefit     = "Steuerersparnis durch Verlust"
	LabelEffectiveCashflow  = "Effektiver Cashflow (nach Steuerersparnis)"
	LabelLoanAmount         = "Darlehensbetrag"
	LabelAcquisitionCosts   = "Kaufnebenkosten (gesamt)"
	labelDepreciationFormat = "Jährliche AfA (%s%%, Baujahr %d)"
)

// CalculationEngine orchestrates the tax, depreciation and ETF calculators.
//
// The engine holds a current parameter set for convenience. Every method also
// accepts an explicit parameter set; callers sharing an engine across goroutines
// should always pass one.
type CalculationEngine struct {
	TaxCalc *TaxCalculator
	AfACalc *AfACalculator
	ETFCalc *ETFTaxCalculator
	Debug   bool // Enable debug output for detailed calculations
	Logger  Logger

	mu     sync.RWMutex
	inputs domain.InputParameters
}

// NewCalculationEngine creates a new calculation engine holding the default inputs
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		TaxCalc: NewTaxCalculator2024(),
		AfACalc: NewAfACalculator(),
		ETFCalc: NewETFTaxCalculator2024(),
		Logger:  NopLogger{},
		inputs:  domain.DefaultInputs(),
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// SetInputs replaces the current parameter set.
func (ce *CalculationEngine) SetInputs(p domain.InputParameters) {
	ce.mu.Lock()
	defer ce.mu.Unlock()
	ce.inputs = p
}

// Inputs returns the current parameter set.
func (ce *CalculationEngine) Inputs() domain.InputParameters {
	ce.mu.RLock()
	defer ce.mu.RUnlock()
	return ce.inputs
}

// resolve returns p, or the current parameter set when p is nil.
func (ce *CalculationEngine) resolve(p *domain.InputParameters) domain.InputParameters {
	if p != nil {
		return *p
	}
	return ce.Inputs()
}

// effectiveTaxRate is the rate applied to rental profit, in percent.
func (ce *CalculationEngine) effectiveTaxRate(p domain.InputParameters) float64 {
	if p.UseDynamicTax && p.GrossAnnualIncome > 0 {
		return ce.TaxCalc.EffectiveTaxRateForRealEstate(p.GrossAnnualIncome, p.ChurchTax)
	}
	return p.ManualTaxRatePct
}

// yearFigures holds the per-year operating figures shared by the snapshot and the projection.
type yearFigures struct {
	OperatingCosts float64
	VacancyLoss    float64
	Reserves       float64
	Depreciation   float64
	TaxableIncome  float64
	Tax            float64
	Cashflow       float64
}

// computeYear derives operating costs, tax and after-tax cashflow for one year's
// rent and property value.
func computeYear(p domain.InputParameters, rent, propertyValue, interest, principal, afaRate, taxRate float64) yearFigures {
	f := yearFigures{
		OperatingCosts: rent * p.OperatingCostPct / 100,
		VacancyLoss:    rent * p.VacancyPct / 100,
		Reserves:       p.LivingArea * p.ReservesPerSqmYear,
		Depreciation:   propertyValue * p.BuildingSharePct / 100 * afaRate / 100,
	}
	f.TaxableIncome = rent - f.OperatingCosts - f.VacancyLoss - interest - f.Depreciation
	f.Tax = math.Max(0, f.TaxableIncome) * taxRate / 100
	f.Cashflow = rent - f.OperatingCosts - f.VacancyLoss - (interest + principal) - f.Tax - f.Reserves
	return f
}

// CalcAnnual computes the one-year breakdown at current parameter levels.
// A nil p uses the current inputs.
func (ce *CalculationEngine) CalcAnnual(p *domain.InputParameters) domain.AnnualSnapshot {
	in := ce.resolve(p)

	rent := in.AnnualRent()
	afaRate := ce.AfACalc.CalculateAfARate(in.ConstructionYear).Rate
	loan := in.LoanAmount()
	interest := loan * in.InterestPct / 100
	principal := loan * in.AmortizationPct / 100
	payment := interest + principal
	taxRate := ce.effectiveTaxRate(in)

	f := computeYear(in, rent, in.PurchasePrice, interest, principal, afaRate, taxRate)

	var benefit float64
	effectiveCashflow := f.Cashflow
	if f.Cashflow < 0 && in.UseDynamicTax && in.GrossAnnualIncome > 0 {
		b := ce.TaxCalc.CalculateRealEstateTaxBenefit(in.GrossAnnualIncome, math.Abs(f.Cashflow), in.ChurchTax)
		benefit = b.TaxSavingsFromLoss
		effectiveCashflow = f.Cashflow + benefit
	}
	acquisitionCosts := in.PurchasePrice * in.AcquisitionCostPct() / 100

	rows := domain.AnnualSnapshot{
		row(domain.RowAnnualRent, LabelAnnualRent, rent),
		row(domain.RowOperatingCosts, LabelOperatingCosts, f.OperatingCosts),
		row(domain.RowVacancyLoss, LabelVacancyLoss, f.VacancyLoss),
		row(domain.RowReserves, LabelReserves, f.Reserves),
		row(domain.RowDepreciation, depreciationLabel(afaRate, in.ConstructionYear), f.Depreciation),
		row(domain.RowInterest, LabelInterest, interest),
		row(domain.RowPrincipal, LabelPrincipal, principal),
		row(domain.RowLoanPayment, LabelLoanPayment, payment),
		row(domain.RowTaxableIncome, LabelTaxableIncome, f.TaxableIncome),
		row(domain.RowEffectiveTaxRate, LabelEffectiveTaxRate, taxRate),
		row(domain.RowIncomeTax, LabelIncomeTax, f.Tax),
		row(domain.RowCashflowAfterTax, LabelCashflowAfterTax, f.Cashflow),
	}
	if benefit > 0 {
		rows = append(rows,
			row(domain.RowTaxLossBenefit, LabelTaxLossBenefit, benefit),
			row(domain.RowEffectiveCashflow, LabelEffectiveCashflow, effectiveCashflow),
		)
	}
	rows = append(rows,
		row(domain.RowLoanAmount, LabelLoanAmount, loan),
		row(domain.RowAcquisitionCosts, LabelAcquisitionCosts, acquisitionCosts),
	)

	if ce.Debug {
		ce.Logger.Debugf("annual: rent=%.2f afa=%.2f%% tax_rate=%.2f%% cashflow=%.2f benefit=%.2f",
			rent, afaRate, taxRate, f.Cashflow, benefit)
	}
	return rows
}

func row(id, label string, value float64) domain.AnnualRow {
	return domain.AnnualRow{ID: id, Label: label, Value: money.Round(value)}
}

// depreciationLabel renders the rate in its shortest form (2, 2.5, 3).
func depreciationLabel(rate float64, year int) string {
	return fmt.Sprintf(labelDepreciationFormat, strconv.FormatFloat(rate, 'f', -1, 64), year)
}

// AfAInfo returns the depreciation summary for the construction year of p.
func (ce *CalculationEngine) AfAInfo(p *domain.InputParameters) domain.AfAInfo {
	in := ce.resolve(p)
	return ce.AfACalc.AfAInfo(in.ConstructionYear)
}

// Report bundles all derived views of one parameter set for the output formatters.
func (ce *CalculationEngine) Report(p *domain.InputParameters) *domain.Report {
	in := ce.resolve(p)

	projection := ce.Projection(&in)
	ce.Logger.Infof("report: %s", in)

	return &domain.Report{
		Inputs:        in,
		Annual:        ce.CalcAnnual(&in),
		Projection:    projection,
		Comparison:    ce.ImmoVsEtf(&in),
		CashflowStats: CashflowStats(projection),
		Equity:        ce.EquityProgression(&in),
		AfA:           ce.AfAInfo(&in),
		IncomeTax:     ce.TaxCalc.CalculateIncomeTax(in.GrossAnnualIncome, in.ChurchTax),
		Assumptions:   in.GenerateAssumptions(),
	}
}
