package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"parcel-pricing/internal/config"
	"parcel-pricing/internal/domain"
	"parcel-pricing/internal/gateway"
	"parcel-pricing/internal/logging"
	"parcel-pricing/internal/usecase"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pricer",
	Short: "Price parcel shipments and apply promotional discounts",
	Long: `pricer reads shipment records and prices each one against the
carrier catalog, applying the small-package price equalization and the
large-package free-shipment promotion.

Each input line is one record: <date> <size> <carrier>, for example
"2023-08-06 S LP". The output echoes each line followed by the final
price and the discount ("-" when none applied).

Examples:
  pricer process input.txt
  pricer process --config tariff.json input.txt
  cat input.txt | pricer process`,
}

// processCmd prices a record stream from a file or stdin.
var processCmd = &cobra.Command{
	Use:   "process [input-file]",
	Short: "Price a stream of shipment records",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runProcess,
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("pricer version 0.1.0")
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "tariff config file (JSON)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(processCmd)
	rootCmd.AddCommand(versionCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	if verbose {
		logging.Initialize("debug")
	}
	defer logging.Sync()

	cfg := config.Default()
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Wire the application by hand: gateway in and out, processor in
	// the middle.
	var source *gateway.LineSource
	if len(args) > 0 {
		opened, err := gateway.OpenLineSource(args[0])
		if err != nil {
			return err
		}
		defer opened.Close()
		source = opened
	} else {
		source = gateway.NewLineSource(os.Stdin)
	}

	sink := gateway.NewLineWriter(os.Stdout)

	catalog := domain.NewCatalog(cfg.Catalog)
	processor := usecase.NewProcessor(catalog, cfg.MonthlyDiscountCap, cfg.FreeLargeShipmentNth, cfg.PromotionalCarrier)

	if err := processor.Run(cmd.Context(), source, sink); err != nil {
		return err
	}
	return sink.Flush()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
