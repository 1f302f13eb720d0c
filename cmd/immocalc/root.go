package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/immocalc/immo-vs-etf/internal/calculation"
	"github.com/immocalc/immo-vs-etf/internal/config"
	"github.com/immocalc/immo-vs-etf/internal/domain"
)

// app carries the state shared by all commands of one invocation.
type app struct {
	v            *viper.Viper
	settingsFile string
	debug        bool

	settings *config.Settings
	logger   *zap.Logger
	engine   *calculation.CalculationEngine
	parser   *config.InputParser
}

func newApp() *app {
	return &app{
		v:      config.NewViper(),
		engine: calculation.NewCalculationEngine(),
		parser: config.NewInputParser(),
	}
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "immocalc",
		Short:         "Compare a leveraged rental property with an ETF savings plan",
		Long:          "immocalc projects a German buy-to-let property (financing, rent, depreciation, income tax) and compares the outcome with investing the same money in an ETF.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.settingsFile, "config", "", "settings file (yaml)")
	pf.String("log-level", "warn", "log level (debug, info, warn, error)")
	pf.String("log-format", "console", "log format (console, json)")
	pf.String("log-file", "", "write logs to this file instead of stderr")
	pf.StringP("inputs", "i", "", "inputs file (yaml, see 'immocalc example')")
	pf.StringP("format", "f", "console", "output format for reports")
	pf.String("output-dir", "", "write reports to this directory instead of stdout")
	pf.BoolVar(&a.debug, "debug", false, "log every projection year")

	_ = a.v.BindPFlag(config.KeyLogLevel, pf.Lookup("log-level"))
	_ = a.v.BindPFlag(config.KeyLogFormat, pf.Lookup("log-format"))
	_ = a.v.BindPFlag(config.KeyLogFile, pf.Lookup("log-file"))
	_ = a.v.BindPFlag(config.KeyInputs, pf.Lookup("inputs"))
	_ = a.v.BindPFlag(config.KeyOutputFormat, pf.Lookup("format"))
	_ = a.v.BindPFlag(config.KeyOutputDir, pf.Lookup("output-dir"))

	root.AddCommand(
		a.annualCommand(),
		a.projectionCommand(),
		a.compareCommand(),
		a.reportCommand(),
		a.breakEvenCommand(),
		a.taxCommand(),
		a.afaCommand(),
		a.etfCommand(),
		a.exampleCommand(),
		a.formatsCommand(),
	)
	return root
}

func (a *app) setup() error {
	settings, err := config.LoadSettings(a.v, a.settingsFile)
	if err != nil {
		return err
	}
	a.settings = settings

	logger, err := config.NewLogger(settings.Logging)
	if err != nil {
		return err
	}
	a.logger = logger
	a.engine.SetLogger(logger.Sugar())
	a.engine.Debug = a.debug
	logger.Debug("settings loaded",
		zap.String("op", "setup"),
		zap.String("inputs", settings.Inputs),
		zap.String("format", settings.Output.Format),
	)
	return nil
}

func (a *app) sync() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// inputOverrides are flag overrides for the most commonly varied parameters.
type inputOverrides struct {
	price     float64
	equity    float64
	rent      float64
	interest  float64
	income    float64
	etfReturn float64
	years     int
}

func addInputOverrides(cmd *cobra.Command, o *inputOverrides) {
	f := cmd.Flags()
	f.Float64Var(&o.price, "price", 0, "purchase price (kaufpreis)")
	f.Float64Var(&o.equity, "equity", 0, "equity contributed (eigenkapital)")
	f.Float64Var(&o.rent, "rent", 0, "monthly cold rent per m² (miete_pro_qm_monat)")
	f.Float64Var(&o.interest, "interest", 0, "loan interest in % (zins_pct)")
	f.Float64Var(&o.income, "income", 0, "gross annual income (jahreseinkommen_brutto)")
	f.Float64Var(&o.etfReturn, "etf-return", 0, "expected ETF return in % (etf_rendite_pct)")
	f.IntVar(&o.years, "years", 0, "holding period in years (haltejahre)")
}

func (o *inputOverrides) apply(cmd *cobra.Command, p *domain.InputParameters) {
	f := cmd.Flags()
	if f.Changed("price") {
		p.PurchasePrice = o.price
	}
	if f.Changed("equity") {
		p.Equity = o.equity
	}
	if f.Changed("rent") {
		p.RentPerSqmMonth = o.rent
	}
	if f.Changed("interest") {
		p.InterestPct = o.interest
	}
	if f.Changed("income") {
		p.GrossAnnualIncome = o.income
	}
	if f.Changed("etf-return") {
		p.ETFReturnPct = o.etfReturn
	}
	if f.Changed("years") {
		p.HoldingYears = o.years
	}
}

// loadInputs resolves the parameter set: inputs file or defaults, then flag
// overrides, then validation.
func (a *app) loadInputs(cmd *cobra.Command, o *inputOverrides) (*domain.InputParameters, error) {
	var p *domain.InputParameters
	if a.settings.Inputs != "" {
		loaded, err := a.parser.LoadFromFile(a.settings.Inputs)
		if err != nil {
			return nil, fmt.Errorf("failed to load inputs: %w", err)
		}
		p = loaded
	} else {
		defaults := domain.DefaultInputs()
		p = &defaults
	}
	o.apply(cmd, p)
	if err := a.parser.ValidateInputs(p); err != nil {
		return nil, err
	}
	a.engine.SetInputs(*p)
	a.logger.Info("inputs resolved", zap.String("op", "loadInputs"), zap.Stringer("inputs", p))
	return p, nil
}
