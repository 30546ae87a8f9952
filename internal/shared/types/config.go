package types

const (
	DefaultAPIBaseURL  = "https://public-api.live.buildops.com"
	DefaultAuthURL     = "https://public-api.live.buildops.com/v1/auth/token"
	DefaultPageSize    = 100
	DefaultHTTPTimeout = 60

	// Customers are fetched with a smaller pool than the other collections.
	DefaultCustomerWorkers = 10
	DefaultResourceWorkers = 50
	DefaultLookupWorkers   = 50

	// DefaultManyAddressesThreshold is the address count a property must exceed
	// to be reported by the many-addresses audit.
	DefaultManyAddressesThreshold = 2
)

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	APIBaseURL             string   `json:"api_base_url" yaml:"api_base_url" toml:"api_base_url"`
	AuthURL                string   `json:"auth_url" yaml:"auth_url" toml:"auth_url"`
	PageSize               int      `json:"page_size" yaml:"page_size" toml:"page_size"`
	CustomerWorkers        int      `json:"customer_workers" yaml:"customer_workers" toml:"customer_workers"`
	ResourceWorkers        int      `json:"resource_workers" yaml:"resource_workers" toml:"resource_workers"`
	LookupWorkers          int      `json:"lookup_workers" yaml:"lookup_workers" toml:"lookup_workers"`
	ManyAddressesThreshold *int     `json:"many_addresses_threshold" yaml:"many_addresses_threshold" toml:"many_addresses_threshold"`
	RequestsPerSecond      float64  `json:"requests_per_second" yaml:"requests_per_second" toml:"requests_per_second"`
	HTTPTimeoutSeconds     int      `json:"http_timeout_seconds" yaml:"http_timeout_seconds" toml:"http_timeout_seconds"`
	ReportName             string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType             []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir                    string   `json:"dir" yaml:"dir" toml:"dir"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		APIBaseURL:             DefaultAPIBaseURL,
		AuthURL:                DefaultAuthURL,
		PageSize:               DefaultPageSize,
		CustomerWorkers:        DefaultCustomerWorkers,
		ResourceWorkers:        DefaultResourceWorkers,
		LookupWorkers:          DefaultLookupWorkers,
		ManyAddressesThreshold: intPtr(DefaultManyAddressesThreshold),
		HTTPTimeoutSeconds:     DefaultHTTPTimeout,
	}
}

// WithDefaults preenche os campos zerados com os valores padrão.
func (c *Config) WithDefaults() *Config {
	d := DefaultConfig()
	if c == nil {
		return d
	}
	merged := *c
	if merged.APIBaseURL == "" {
		merged.APIBaseURL = d.APIBaseURL
	}
	if merged.AuthURL == "" {
		merged.AuthURL = d.AuthURL
	}
	if merged.PageSize <= 0 {
		merged.PageSize = d.PageSize
	}
	if merged.CustomerWorkers <= 0 {
		merged.CustomerWorkers = d.CustomerWorkers
	}
	if merged.ResourceWorkers <= 0 {
		merged.ResourceWorkers = d.ResourceWorkers
	}
	if merged.LookupWorkers <= 0 {
		merged.LookupWorkers = d.LookupWorkers
	}
	// Zero is a valid threshold; only an absent or negative one falls back.
	if merged.ManyAddressesThreshold == nil || *merged.ManyAddressesThreshold < 0 {
		merged.ManyAddressesThreshold = d.ManyAddressesThreshold
	} else {
		merged.ManyAddressesThreshold = intPtr(*merged.ManyAddressesThreshold)
	}
	if merged.HTTPTimeoutSeconds <= 0 {
		merged.HTTPTimeoutSeconds = d.HTTPTimeoutSeconds
	}
	if merged.RequestsPerSecond < 0 {
		merged.RequestsPerSecond = 0
	}
	return &merged
}

// AddressThreshold returns the many-addresses threshold, or the default when unset.
func (c *Config) AddressThreshold() int {
	if c == nil || c.ManyAddressesThreshold == nil {
		return DefaultManyAddressesThreshold
	}
	return *c.ManyAddressesThreshold
}

func intPtr(n int) *int { return &n }

// Credentials holds the client credentials exchanged for a session.
type Credentials struct {
	ClientID     string
	ClientSecret string
	TenantID     string
}

// Validate checks that every credential is present.
func (c Credentials) Validate() error {
	var missing []string
	if c.ClientID == "" {
		missing = append(missing, "CLIENT_ID")
	}
	if c.ClientSecret == "" {
		missing = append(missing, "CLIENT_SECRET")
	}
	if c.TenantID == "" {
		missing = append(missing, "TENANT_ID")
	}
	if len(missing) > 0 {
		return &MissingCredentialsError{Names: missing}
	}
	return nil
}
