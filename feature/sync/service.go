package sync

import (
	"context"
	"fmt"

	"seller-sync/core/marketplace"
	"seller-sync/core/reconcile"
	"seller-sync/core/supplier"

	"go.uber.org/zap"
)

// Service drives one synchronization run.
type Service struct {
	market marketplace.Client
	feed   supplier.Source
	cfg    Config
	log    *zap.Logger
}

// NewService creates a sync service.
func NewService(market marketplace.Client, feed supplier.Source, cfg Config, log *zap.Logger) *Service {
	return &Service{
		market: market,
		feed:   feed,
		cfg:    cfg,
		log:    log,
	}
}

// Summary aggregates the counts of one run.
type Summary struct {
	// Offers is the catalog size reported by the marketplace.
	Offers int
	// SupplierRows is the number of parsed feed records.
	SupplierRows int
	// StockUpdates is the size of the stock list (always equals Offers).
	StockUpdates int
	// ZeroedOffers counts catalog offers the feed did not cover.
	ZeroedOffers int
	// PriceUpdates is the size of the price list.
	PriceUpdates int
	// StockBatches and PriceBatches count submitted batches.
	StockBatches int
	PriceBatches int
}

// Run executes the pipeline: fetch catalog, fetch feed, reconcile and
// submit stocks, reconcile and submit prices. The first error aborts the
// run; in dry-run mode both submission steps are skipped.
func (s *Service) Run(ctx context.Context) (*Summary, error) {
	offerIDs, err := s.fetchOfferIDs(ctx)
	if err != nil {
		return nil, fail(StageFetchCatalog, err)
	}
	s.log.Info("Fetched seller catalog", zap.Int("offers", len(offerIDs)))

	records, err := s.feed.Records(ctx)
	if err != nil {
		return nil, fail(StageFetchSupplier, err)
	}
	s.log.Info("Fetched supplier feed", zap.Int("rows", len(records)))

	summary := &Summary{
		Offers:       len(offerIDs),
		SupplierRows: len(records),
	}

	stocks, err := reconcile.Stocks(records, offerIDs)
	if err != nil {
		return nil, fail(StageReconcileStocks, err)
	}
	summary.StockUpdates = len(stocks)
	summary.ZeroedOffers = countZeroed(stocks, records)

	stockBatches := reconcile.Chunk(stocks, s.cfg.StockBatchSize)
	summary.StockBatches = len(stockBatches)
	if err := submit(ctx, s, stockBatches, s.market.UpdateStocks, "stocks"); err != nil {
		return nil, fail(StageSubmitStocks, err)
	}

	prices := reconcile.Prices(records, offerIDs)
	summary.PriceUpdates = len(prices)

	priceBatches := reconcile.Chunk(prices, s.cfg.PriceBatchSize)
	summary.PriceBatches = len(priceBatches)
	if err := submit(ctx, s, priceBatches, s.market.UpdatePrices, "prices"); err != nil {
		return nil, fail(StageSubmitPrices, err)
	}

	s.log.Info("Sync finished",
		zap.Int("offers", summary.Offers),
		zap.Int("supplier_rows", summary.SupplierRows),
		zap.Int("stock_updates", summary.StockUpdates),
		zap.Int("zeroed_offers", summary.ZeroedOffers),
		zap.Int("price_updates", summary.PriceUpdates),
		zap.Int("stock_batches", summary.StockBatches),
		zap.Int("price_batches", summary.PriceBatches),
		zap.Bool("dry_run", s.cfg.DryRun),
	)
	return summary, nil
}

// fetchOfferIDs pages through the product list until the accumulated count
// matches the server-reported total, bounded by MaxPages.
func (s *Service) fetchOfferIDs(ctx context.Context) (map[string]struct{}, error) {
	ids := make(map[string]struct{})
	lastID := ""
	fetched := 0

	for page := 0; page < s.cfg.MaxPages; page++ {
		p, err := s.market.ProductPage(ctx, lastID, s.cfg.PageLimit)
		if err != nil {
			return nil, err
		}

		for _, item := range p.Items {
			ids[item.OfferID] = struct{}{}
		}
		fetched += len(p.Items)
		lastID = p.LastID

		s.log.Debug("Fetched catalog page",
			zap.Int("page", page),
			zap.Int("items", len(p.Items)),
			zap.Int("total", p.Total),
		)

		if fetched >= p.Total {
			return ids, nil
		}
		if len(p.Items) == 0 {
			return nil, fmt.Errorf("catalog listing stalled at %d of %d items", fetched, p.Total)
		}
	}

	return nil, fmt.Errorf("catalog listing did not converge within %d pages", s.cfg.MaxPages)
}

// submit sends the batches one at a time, blocking on each response.
func submit[T any](ctx context.Context, s *Service, batches [][]T, send func(context.Context, []T) error, kind string) error {
	if s.cfg.DryRun {
		s.log.Info("Dry-run: skipping submission", zap.String("kind", kind), zap.Int("batches", len(batches)))
		return nil
	}

	for i, batch := range batches {
		if err := send(ctx, batch); err != nil {
			return fmt.Errorf("batch %d/%d: %w", i+1, len(batches), err)
		}
		s.log.Debug("Submitted batch",
			zap.String("kind", kind),
			zap.Int("batch", i+1),
			zap.Int("of", len(batches)),
			zap.Int("size", len(batch)),
		)
	}
	return nil
}

// countZeroed counts stock entries that were not produced by a feed row,
// i.e. catalog offers the supplier never mentioned.
func countZeroed(stocks []reconcile.StockUpdate, records []reconcile.SupplierRecord) int {
	covered := make(map[string]struct{}, len(records))
	for _, rec := range records {
		covered[rec.Code] = struct{}{}
	}

	zeroed := 0
	for _, s := range stocks {
		if _, ok := covered[s.OfferID]; !ok {
			zeroed++
		}
	}
	return zeroed
}
