package main

import (
	"flag"
	"fmt"

	"github.com/immocalc/immo-vs-etf/internal/calculation"
	"github.com/immocalc/immo-vs-etf/internal/domain"
)

func main() {
	monthly := flag.Float64("monthly", 500, "monthly investment")
	years := flag.Int("years", 10, "investment period")
	ret := flag.Float64("return", 6, "expected annual return in %")
	flag.Parse()

	ec := calculation.NewETFTaxCalculator2024()
	params := domain.ETFParameters{
		MonthlyInvestment:     *monthly,
		InvestmentPeriodYears: *years,
		ExpectedAnnualReturn:  *ret,
		Type:                  domain.ETFAccumulating,
		PartialExemptionRate:  30,
	}
	res := ec.CalculateETFTaxes(params)

	fmt.Println("Year,StartValue,EndValue,LumpSum,Tax,TaxCredit")
	for _, y := range res.YearlyAdvanceLumpSums {
		fmt.Printf("%d,%.2f,%.2f,%.2f,%.2f,%.2f\n", y.Year, y.YearStartValue, y.YearEndValue, y.LumpSum, y.TaxOnLumpSum, y.RemainingTaxCredit)
	}
	fmt.Printf("\nTotal lump sum: %.2f\n", res.TotalAdvanceLumpSum)
	fmt.Printf("Final tax: gross=%.2f credit=%.2f due=%.2f\n", res.FinalTax.GrossTax, res.FinalTax.AdvanceTaxCredit, res.FinalTax.FinalTaxDue)
	fmt.Printf("Simplified tax on same plan: %.2f\n",
		ec.CalculateSimplifiedETFTax(res.TotalInvestment, res.TotalGrossReturn, params.PartialExemptionRate, false))
}
