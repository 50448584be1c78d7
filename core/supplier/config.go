package supplier

// Config holds configuration for the supplier feed.
type Config struct {
	// URL is the address of the zipped stock spreadsheet.
	URL string `mapstructure:"url" default:"https://timeworld.ru/upload/files/ostatki.zip"`
	// TimeoutSeconds is the download timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"60"`
	// HeaderRow is the zero-based index of the spreadsheet header row.
	HeaderRow int `mapstructure:"header_row" default:"17"`
	// CodeColumn is the header label of the article code column.
	CodeColumn string `mapstructure:"code_column" default:"Код"`
	// QuantityColumn is the header label of the quantity column.
	QuantityColumn string `mapstructure:"quantity_column" default:"Количество"`
	// PriceColumn is the header label of the price column.
	PriceColumn string `mapstructure:"price_column" default:"Цена"`
}
