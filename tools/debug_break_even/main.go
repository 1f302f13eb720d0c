package main

import (
	"fmt"
	"os"

	calc "github.com/immocalc/immo-vs-etf/internal/calculation"
	"github.com/immocalc/immo-vs-etf/internal/config"
	"github.com/immocalc/immo-vs-etf/internal/domain"
)

// Prints the property advantage across a sweep of ETF returns and the solver
// result, to check where advantage_immo crosses zero.
func main() {
	inputs := domain.DefaultInputs()
	if len(os.Args) > 1 {
		p := config.NewInputParser()
		loaded, err := p.LoadFromFile(os.Args[1])
		if err != nil {
			panic(err)
		}
		inputs = *loaded
	}

	engine := calc.NewCalculationEngine()

	// Cumulative cashflow as seen by the chart
	cumulative := 0.0
	for _, row := range engine.Projection(&inputs) {
		cumulative += row.CashflowAfterTax
		fmt.Printf("Year %2d: cashflow=%10.2f cumulative=%12.2f\n", row.Year, row.CashflowAfterTax, cumulative)
	}
	fmt.Println()

	fmt.Println("ETFReturn,NetProperty,NetETF,Advantage")
	for r := -10.0; r <= 10.0; r += 1 {
		p := inputs
		p.ETFReturnPct = r
		c := engine.ImmoVsEtf(&p)
		fmt.Printf("%.1f,%.2f,%.2f,%.2f\n", r, c.NetSaleProceeds, c.NetETFValue, c.AdvantageProperty)
	}

	be := engine.BreakEvenETFReturn(&inputs)
	fmt.Printf("\nBreakEven: %+v\n", be)
}
