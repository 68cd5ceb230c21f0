package analyzer

// Config holds runtime settings for the analyzer. Keep small initially.
type Config struct {
	// MaxFileBytes caps how large an upload the metric extractors will
	// look at. Oversized files skip extraction (baseline-only scoring
	// with a warning) rather than failing the analysis; 0 means no cap.
	MaxFileBytes int `json:"max_file_bytes"`
}

// DefaultConfig returns the analyzer defaults.
func DefaultConfig() *Config {
	return &Config{
		MaxFileBytes: 256 << 20, // 256 MiB
	}
}
