package cmd

import (
	"context"
	"fmt"

	"shop-reconciler/core/batch"
	"shop-reconciler/core/config"
	"shop-reconciler/core/flatfile"
	"shop-reconciler/core/logger"
	"shop-reconciler/feature/customer"
	"shop-reconciler/feature/order"
	"shop-reconciler/feature/product"
	"shop-reconciler/feature/search"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var processDir string

// runCmd executes one batch operation selected by its operation code.
var runCmd = &cobra.Command{
	Use:   "run <operation-code>",
	Short: "Run one batch reconciliation operation",
	Long: `Run one batch reconciliation operation against the processing folder.

The operation code is <entity-group>.<action>, e.g.:

  # Reload and validate all three entity files
  run all.load

  # Apply the new-order batch
  run order.add --dir ./data

  # Report the top 3 most-ordered products
  run search.top-products

Use the "ops" command to list every valid code.`,
	Args: cobra.ExactArgs(1),
	RunE: runOperation,
}

func init() {
	runCmd.Flags().StringVar(&processDir, "dir", ".", "Processing folder holding InputFolder/ and OutputFolder/")
	RootCmd.AddCommand(runCmd)
}

func runOperation(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Resolve the code before touching any state: an invalid operation
	// must produce a message and nothing else.
	code, err := batch.ParseCode(args[0])
	if err != nil {
		return fmt.Errorf("%w (valid codes: %v)", err, batch.Codes())
	}

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	l.Info("Starting batch operation",
		zap.Stringer("operation", code),
		zap.String("dir", processDir))

	files := flatfile.NewDir(processDir, cfg.Files)
	sink := flatfile.NewErrorLog(processDir)

	customers := customer.NewService(files, sink, l)
	products := product.NewService(files, sink, l)
	orders := order.NewService(files, sink, l, customers, products, cfg.Files)
	searchSvc := search.NewService(files, sink, l, products, orders)

	orchestrator := batch.New(l, sink, customers, products, orders, searchSvc, cfg.Batch)
	return orchestrator.Run(ctx, code)
}
