package sync

// Config holds configuration for the sync pipeline.
type Config struct {
	// StockBatchSize caps one stock import call.
	StockBatchSize int `mapstructure:"stock_batch_size" default:"100"`
	// PriceBatchSize caps one price import call.
	PriceBatchSize int `mapstructure:"price_batch_size" default:"900"`
	// PageLimit is the page size for catalog list requests.
	PageLimit int `mapstructure:"page_limit" default:"1000"`
	// MaxPages bounds catalog pagination so an upstream that never
	// converges on its reported total cannot loop the run forever.
	MaxPages int `mapstructure:"max_pages" default:"1000"`
	// DryRun reconciles and reports without submitting anything.
	DryRun bool `mapstructure:"dry_run" default:"false"`
}
