// Package ingest handles the statement ingestion command.
package ingest

import (
	"fmt"
	"os"

	"dmunoz/cartola-csv/cmd/root"
	"dmunoz/cartola-csv/internal/export"
	"dmunoz/cartola-csv/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the ingest command.
var Cmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest a bank statement file and categorize its transactions",
	Long: `Ingest reads a CSV or Excel statement export, infers the column layout,
normalizes every row and categorizes it. With --output the result is
written as CSV; otherwise a summary is printed.`,
	RunE: ingestFunc,
}

func ingestFunc(cmd *cobra.Command, _ []string) error {
	input := root.SharedFlags.Input
	if input == "" {
		return fmt.Errorf("input file is required, use --input")
	}

	p, err := root.NewPipeline()
	if err != nil {
		return err
	}

	file, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("opening input file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	transactions, err := p.Run(cmd.Context(), input, file)
	if err != nil {
		return err
	}

	recurring := 0
	cargos, abonos := 0, 0
	var cargoTotal, abonoTotal float64
	for _, tx := range transactions {
		if tx.IsRecurring {
			recurring++
		}
		switch {
		case tx.IsCargo():
			cargos++
			cargoTotal += tx.AmountAsFloat()
		case tx.IsAbono():
			abonos++
			abonoTotal += tx.AmountAsFloat()
		}
	}
	root.Log.Info("Statement ingested",
		logging.F("file", input),
		logging.F("transactions", len(transactions)),
		logging.F("recurring", recurring),
		logging.F("cargos", cargos),
		logging.F("abonos", abonos))

	if output := root.SharedFlags.Output; output != "" {
		writer := export.NewWriter(root.Cfg.Delimiter(), root.Log)
		if err := writer.WriteFile(transactions, output); err != nil {
			return err
		}
		return nil
	}

	for _, tx := range transactions {
		fmt.Printf("%4d  %s  %-40s %12s  %-5s  %s (%s)\n",
			tx.ID, tx.Date, tx.Description, tx.Amount.String(),
			tx.Type, tx.SelectedCategory, tx.Confidence)
	}
	fmt.Printf("\n%d transactions: %d cargos (%.2f), %d abonos (%.2f)\n",
		len(transactions), cargos, cargoTotal, abonos, abonoTotal)
	return nil
}
