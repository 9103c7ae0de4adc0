package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The database DSN, HTTP address and registry base URL are mandatory. The AI
// section is deliberately optional: an unconfigured suggestion service means
// the generator serves the static fallback list only, which is a legal
// degraded mode.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Vegvesen.BaseURL == "" {
		return ErrInvalidVegvesenConfigs
	}

	return nil
}
