package marketplace

// Config holds configuration for the seller API client.
type Config struct {
	// BaseURL is the root of the seller API.
	BaseURL string `mapstructure:"base_url" default:"https://api-seller.ozon.ru"`
	// ClientID identifies the seller account.
	ClientID string `mapstructure:"client_id" default:""`
	// SellerToken is the API key for the seller account.
	SellerToken string `mapstructure:"seller_token" default:""`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
