package main

import (
	"fmt"
	"log"
	"math"
	"os"
	"strings"

	"github.com/immocalc/immo-vs-etf/internal/calculation"
	"github.com/immocalc/immo-vs-etf/internal/config"
	"github.com/immocalc/immo-vs-etf/internal/domain"
	"github.com/immocalc/immo-vs-etf/internal/output"
)

// Traces the series the HTML report embeds and checks them against the projection.
func main() {
	inputs := domain.DefaultInputs()
	if len(os.Args) > 1 {
		loaded, err := config.NewInputParser().LoadFromFile(os.Args[1])
		if err != nil {
			log.Fatal(err)
		}
		inputs = *loaded
	}

	engine := calculation.NewCalculationEngine()
	report := engine.Report(&inputs)

	fmt.Printf("=== EQUITY PROGRESSION ===\n")
	fmt.Printf("Projection rows: %d, equity points: %d\n", len(report.Projection), len(report.Equity))
	if len(report.Projection) != len(report.Equity) {
		fmt.Printf("❌ series length mismatch\n")
	}

	problems := 0
	prevETF := math.Inf(-1)
	for i, pt := range report.Equity {
		if i < len(report.Projection) {
			row := report.Projection[i]
			if math.Abs(row.Equity()-pt.PropertyEquity) > 0.01 {
				fmt.Printf("❌ Year %d: equity %.2f != value-debt %.2f\n", pt.Year, pt.PropertyEquity, row.Equity())
				problems++
			}
		}
		if pt.ETFValue < prevETF && inputs.ETFReturnPct >= 0 {
			fmt.Printf("❌ Year %d: ETF value fell to %.0f with non-negative return\n", pt.Year, pt.ETFValue)
			problems++
		}
		prevETF = pt.ETFValue
		fmt.Printf("  Year %2d: property=%12.2f etf=%12.0f\n", pt.Year, pt.PropertyEquity, pt.ETFValue)
	}
	if problems == 0 {
		fmt.Printf("✅ equity series consistent\n")
	}

	fmt.Printf("\n=== RENDERED HTML ===\n")
	html, err := output.HTMLFormatter{}.Format(report)
	if err != nil {
		log.Fatal(err)
	}
	content := string(html)
	for _, marker := range []string{"<h2>Projektion</h2>", "<h2>Vergleich</h2>", "equityProgression", "etf_value"} {
		if strings.Contains(content, marker) {
			fmt.Printf("✅ found %q\n", marker)
		} else {
			fmt.Printf("❌ missing %q\n", marker)
		}
	}
	fmt.Printf("HTML size: %d bytes\n", len(html))
}
