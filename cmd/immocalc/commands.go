package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/immocalc/immo-vs-etf/internal/domain"
	"github.com/immocalc/immo-vs-etf/internal/output"
)

func (a *app) annualCommand() *cobra.Command {
	var o inputOverrides
	cmd := &cobra.Command{
		Use:   "annual",
		Short: "Show the first-year income, cost and tax breakdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.loadInputs(cmd, &o)
			if err != nil {
				return err
			}
			writeAnnual(cmd.OutOrStdout(), a.engine.CalcAnnual(p))
			return nil
		},
	}
	addInputOverrides(cmd, &o)
	return cmd
}

func writeAnnual(w io.Writer, s domain.AnnualSnapshot) {
	width := 0
	for _, r := range s {
		if n := len([]rune(r.Label)); n > width {
			width = n
		}
	}
	for _, r := range s {
		value := output.FormatCurrency(r.Value)
		if r.ID == domain.RowEffectiveTaxRate {
			value = output.FormatPercentage(r.Value)
		}
		fmt.Fprintf(w, "%s%s  %18s\n", r.Label, strings.Repeat(" ", width-len([]rune(r.Label))), value)
	}
}

func (a *app) projectionCommand() *cobra.Command {
	var o inputOverrides
	cmd := &cobra.Command{
		Use:   "projection",
		Short: "Project rent, value, debt and cashflow over the holding period",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.loadInputs(cmd, &o)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-5s %16s %16s %16s %14s %14s %16s\n",
				"Jahr", "Miete", "Wert", "Restschuld", "Zinsen", "Tilgung", "Cashflow")
			for _, r := range a.engine.Projection(p) {
				fmt.Fprintf(w, "%-5d %16s %16s %16s %14s %14s %16s\n", r.Year,
					output.FormatCurrency(r.Rent),
					output.FormatCurrency(r.PropertyValue),
					output.FormatCurrency(r.RemainingDebt),
					output.FormatCurrency(r.InterestPaid),
					output.FormatCurrency(r.PrincipalPaid),
					output.FormatCurrency(r.CashflowAfterTax))
			}
			return nil
		},
	}
	addInputOverrides(cmd, &o)
	return cmd
}

func (a *app) compareCommand() *cobra.Command {
	var o inputOverrides
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare net sale proceeds with the ETF alternative",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.loadInputs(cmd, &o)
			if err != nil {
				return err
			}
			return output.RenderReport(cmd.OutOrStdout(), a.engine.Report(p), "summary")
		},
	}
	addInputOverrides(cmd, &o)
	return cmd
}

func (a *app) reportCommand() *cobra.Command {
	var o inputOverrides
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render the full report in the selected format",
		Example: "  immocalc report --format html --output-dir reports\n" +
			"  immocalc report -i inputs.yaml -f detailed-csv",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.loadInputs(cmd, &o)
			if err != nil {
				return err
			}
			report := a.engine.Report(p)
			format := a.settings.Output.Format
			if dir := a.settings.Output.Dir; dir != "" {
				name, err := output.GenerateReport(report, format, dir)
				if err != nil {
					return err
				}
				a.logger.Sugar().Infow("report written", "op", "report", "file", name, "format", format)
				fmt.Fprintln(cmd.OutOrStdout(), name)
				return nil
			}
			return output.RenderReport(cmd.OutOrStdout(), report, format)
		},
	}
	addInputOverrides(cmd, &o)
	return cmd
}

func (a *app) breakEvenCommand() *cobra.Command {
	var o inputOverrides
	cmd := &cobra.Command{
		Use:   "breakeven",
		Short: "Find the ETF return at which property and ETF end up equal",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.loadInputs(cmd, &o)
			if err != nil {
				return err
			}
			res := a.engine.BreakEvenETFReturn(p)
			w := cmd.OutOrStdout()
			if !res.Found {
				fmt.Fprintln(w, "No break-even ETF return between -50 % and 30 %.")
				return nil
			}
			fmt.Fprintf(w, "Break-even ETF return: %s (%d iterations)\n", output.FormatPercentage(res.ETFReturnPct), res.Iterations)
			fmt.Fprintf(w, "Net property: %s  Net ETF: %s\n",
				output.FormatCurrency(res.Comparison.NetSaleProceeds), output.FormatCurrency(res.Comparison.NetETFValue))
			return nil
		},
	}
	addInputOverrides(cmd, &o)
	return cmd
}

func (a *app) taxCommand() *cobra.Command {
	var income float64
	var church bool
	cmd := &cobra.Command{
		Use:   "tax",
		Short: "Income tax breakdown and effective rate for rental losses",
		RunE: func(cmd *cobra.Command, args []string) error {
			if income < 0 {
				return fmt.Errorf("income must not be negative: %v", income)
			}
			tc := a.engine.TaxCalc
			res := tc.CalculateIncomeTax(income, church)
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Bruttoeinkommen:        %s\n", output.FormatCurrency(res.GrossIncome))
			fmt.Fprintf(w, "Zu versteuern:          %s\n", output.FormatCurrency(res.TaxableIncome))
			fmt.Fprintf(w, "Einkommensteuer:        %s\n", output.FormatCurrency(res.IncomeTax))
			fmt.Fprintf(w, "Solidaritätszuschlag:   %s\n", output.FormatCurrency(res.SolidarityTax))
			fmt.Fprintf(w, "Kirchensteuer:          %s\n", output.FormatCurrency(res.ChurchTax))
			fmt.Fprintf(w, "Steuern gesamt:         %s\n", output.FormatCurrency(res.TotalTax))
			fmt.Fprintf(w, "Netto:                  %s\n", output.FormatCurrency(res.NetIncome))
			fmt.Fprintf(w, "Grenzsteuersatz:        %s\n", output.FormatPercentage(res.MarginalTaxRate))
			fmt.Fprintf(w, "Durchschnittssteuersatz: %s\n", output.FormatPercentage(res.AverageTaxRate))
			if b, ok := tc.TaxBracketInfo(res.TaxableIncome); ok {
				fmt.Fprintf(w, "Steuerzone:             %s\n", b.Description)
			}
			fmt.Fprintf(w, "Satz für V+V-Verluste:  %s\n", output.FormatPercentage(tc.EffectiveTaxRateForRealEstate(income, church)))
			return nil
		},
	}
	cmd.Flags().Float64Var(&income, "income", domain.DefaultInputs().GrossAnnualIncome, "gross annual income")
	cmd.Flags().BoolVar(&church, "church", false, "apply church tax")
	return cmd
}

func (a *app) afaCommand() *cobra.Command {
	var year int
	var buildingValue float64
	cmd := &cobra.Command{
		Use:   "afa",
		Short: "Depreciation rule, scenarios and special options for a construction year",
		RunE: func(cmd *cobra.Command, args []string) error {
			ac := a.engine.AfACalc
			w := cmd.OutOrStdout()
			info := ac.AfAInfo(year)
			fmt.Fprintf(w, "Regel: %s (%s)\n", info.CurrentRule.Description, output.FormatPercentage(info.CurrentRule.Rate))
			fmt.Fprintf(w, "       %s\n", info.CurrentRule.Details)
			fmt.Fprintf(w, "Gebäudealter: %d Jahre\n", info.BuildingAge)

			sc := ac.CurrentScenarios(year, buildingValue)
			fmt.Fprintln(w)
			writeAfACalculation(w, "Standard", sc.Standard)
			writeAfACalculation(w, "Denkmal", sc.Monument)
			if sc.SupportedArea != nil {
				writeAfACalculation(w, "Sanierungsgebiet", *sc.SupportedArea)
			}
			if len(info.SpecialOptions) > 0 {
				fmt.Fprintln(w)
				fmt.Fprintln(w, "Sonderabschreibungen:")
				for _, opt := range info.SpecialOptions {
					fmt.Fprintf(w, "  - %s\n", opt)
				}
			}
			fmt.Fprintln(w)
			fmt.Fprintln(w, "AfA-Regeln:")
			for _, r := range ac.AllAfARules() {
				fmt.Fprintf(w, "  %d-%d  %5s  %s\n", r.YearFrom, r.YearTo, output.FormatPercentage(r.Rate), r.Description)
			}
			return nil
		},
	}
	d := domain.DefaultInputs()
	cmd.Flags().IntVar(&year, "year", d.ConstructionYear, "construction year (baujahr)")
	cmd.Flags().Float64Var(&buildingValue, "building-value", d.PurchasePrice*d.BuildingSharePct/100, "depreciable building value")
	return cmd
}

func writeAfACalculation(w io.Writer, name string, c domain.AfACalculation) {
	fmt.Fprintf(w, "%-17s %8s  %14s/Jahr  Restjahre %2d  bisher %s\n", name,
		output.FormatPercentage(c.Rate), output.FormatCurrency(c.AnnualAmount), c.RemainingYears,
		output.FormatCurrency(c.TotalDepreciation))
}

func (a *app) etfCommand() *cobra.Command {
	var params domain.ETFParameters
	var etfType string
	cmd := &cobra.Command{
		Use:   "etf",
		Short: "Taxes of an ETF savings plan (Vorabpauschale, partial exemption, final tax)",
		RunE: func(cmd *cobra.Command, args []string) error {
			params.Type = domain.ETFType(etfType)
			if !params.Type.Valid() {
				return fmt.Errorf("invalid ETF type %q (accumulating or distributing)", etfType)
			}
			if params.InvestmentPeriodYears < 1 {
				return fmt.Errorf("years must be at least 1: %d", params.InvestmentPeriodYears)
			}
			ec := a.engine.ETFCalc
			calc := ec.CalculateETFTaxes(params)
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Eingezahlt:             %s\n", output.FormatCurrency(calc.TotalInvestment))
			fmt.Fprintf(w, "Endwert:                %s\n", output.FormatCurrency(calc.TotalGrossReturn))
			fmt.Fprintf(w, "Kursgewinne:            %s\n", output.FormatCurrency(calc.TotalCapitalGains))
			fmt.Fprintf(w, "Teilfreistellung:       %s (%s)\n", output.FormatCurrency(calc.PartialExemptionAmount), output.FormatPercentage(calc.PartialExemptionRate))
			fmt.Fprintf(w, "Vorabpauschalen:        %s\n", output.FormatCurrency(calc.TotalAdvanceLumpSum))
			fmt.Fprintf(w, "Steuern gesamt:         %s\n", output.FormatCurrency(calc.TotalTaxes))
			fmt.Fprintf(w, "Netto:                  %s\n", output.FormatCurrency(calc.NetReturn))
			fmt.Fprintf(w, "Rendite nach Steuern:   %s p.a.\n", output.FormatPercentage(calc.EffectiveReturnRate))
			fmt.Fprintf(w, "Steuerquote Gewinne:    %s\n", output.FormatPercentage(ec.TaxRateOnGains(calc)))
			if params.Type != ec.RecommendedETFType() {
				fmt.Fprintf(w, "Hinweis: %s ETFs sind steuerlich meist effizienter.\n", ec.RecommendedETFType())
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.Float64Var(&params.MonthlyInvestment, "monthly", 500, "monthly investment")
	f.IntVar(&params.InvestmentPeriodYears, "years", 20, "investment period in years")
	f.Float64Var(&params.ExpectedAnnualReturn, "return", 6, "expected annual return in %")
	f.StringVar(&etfType, "type", string(domain.ETFAccumulating), "fund type (accumulating, distributing)")
	f.Float64Var(&params.PartialExemptionRate, "exemption", 30, "partial exemption rate in %")
	f.BoolVar(&params.HasChurchTax, "church", false, "apply church tax")
	return cmd
}

func (a *app) exampleCommand() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Write an inputs file with the default parameters",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.parser.SaveToFile(a.parser.CreateExampleInputs(), out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example inputs written to %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "immocalc_inputs.yaml", "destination file")
	return cmd
}

func (a *app) formatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List report formats and aliases",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Formats: %s\n", strings.Join(output.AvailableFormatterNames(), ", "))
			fmt.Fprintf(w, "Aliases: %s\n", strings.Join(output.AvailableFormatAliases(), ", "))
			return nil
		},
	}
}
