// store-demo 以內建（或 STORE_SEED_FILE 指定的）目錄重播示範訂單
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jackyeh168/product_store/src/internal/app"
	"github.com/jackyeh168/product_store/src/internal/application/catalog"
	"github.com/jackyeh168/product_store/src/internal/application/ordering"
	"github.com/jackyeh168/product_store/src/internal/infrastructure/eventlog"
	"github.com/jackyeh168/product_store/src/internal/infrastructure/logging"
	"github.com/jackyeh168/product_store/src/internal/infrastructure/memory"
	"github.com/jackyeh168/product_store/src/internal/infrastructure/seed"
	"go.uber.org/zap"
)

// demoOrder 以目錄中的位置（而非名稱）指定商品
type demoOrder [][2]int

var demoOrders = []demoOrder{
	{{0, 1}, {1, 2}},
	{{0, 4}},
	{{1, 4}},
	{{3, 4}},
}

func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger, os.Stdout); err != nil {
		logger.Error("store demo failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg app.Config, logger *zap.Logger, out io.Writer) error {
	c := seed.Default()
	if cfg.SeedFile != "" {
		loaded, err := seed.LoadFile(cfg.SeedFile)
		if err != nil {
			return err
		}
		c = loaded
	}

	s, err := c.Build()
	if err != nil {
		return fmt.Errorf("failed to build store: %w", err)
	}

	txManager := memory.NewTransactionManager()
	publisher := eventlog.NewPublisher(logger)

	list := catalog.NewListProductsUseCase(s, txManager)
	total := catalog.NewGetTotalQuantityUseCase(s, txManager)
	placeOrder := ordering.NewPlaceOrderUseCase(s, txManager, publisher, logger)

	listing, err := list.Execute()
	if err != nil {
		return err
	}
	for i, p := range listing.Products {
		fmt.Fprintf(out, "%d. %s\n", i, p.Display)
	}
	quantity, err := total.Execute()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Total quantity: %d\n", quantity)

	for n, order := range demoOrders {
		cmd := ordering.PlaceOrderCommand{}
		for _, line := range order {
			if line[0] >= len(listing.Products) {
				return fmt.Errorf("demo order %d: catalog has no product #%d", n+1, line[0])
			}
			cmd.Lines = append(cmd.Lines, ordering.PlaceOrderLine{
				ProductName: listing.Products[line[0]].Name,
				Quantity:    line[1],
			})
		}

		result, err := placeOrder.Execute(cmd)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Order %d total: %s\n", n+1, result.Total.String())
		if cfg.Verbose {
			for _, l := range result.Lines {
				fmt.Fprintf(out, "  %s x%d: %s %s\n", l.ProductName, l.Quantity, l.Status, l.Charge.String())
			}
		}
	}

	counts := publisher.Counts()
	logger.Info("demo finished",
		zap.Int("purchases", counts["product.purchased"]),
		zap.Int("deactivations", counts["product.deactivated"]))
	return nil
}
