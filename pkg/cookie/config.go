package cookie

// Config holds factory defaults loaded from the environment.
type Config struct {
	Domain   string `env:"COOKIE_DOMAIN" envDefault:""`
	Path     string `env:"COOKIE_PATH" envDefault:"/"`
	MaxAge   int    `env:"COOKIE_MAX_AGE" envDefault:"0"`
	Secure   bool   `env:"COOKIE_SECURE" envDefault:"false"`
	HTTPOnly bool   `env:"COOKIE_HTTP_ONLY" envDefault:"false"`
	SameSite string `env:"COOKIE_SAME_SITE" envDefault:""`
	HashKey  string `env:"COOKIE_HASH_KEY" envDefault:""`
	BlockKey string `env:"COOKIE_BLOCK_KEY" envDefault:""`
}

// DefaultConfig returns the configuration matching DefaultDirectives.
func DefaultConfig() Config {
	return Config{Path: "/"}
}

// Directives converts the configuration into factory defaults.
// An empty SameSite leaves the directive unset.
func (c Config) Directives() Directives {
	d := Directives{
		Domain:   c.Domain,
		Path:     c.Path,
		MaxAge:   c.MaxAge,
		Secure:   c.Secure,
		HTTPOnly: c.HTTPOnly,
	}
	if c.SameSite != "" {
		d.SameSite = ParseSameSite(c.SameSite)
	}
	return d
}

// NewFromConfig creates a Factory whose defaults come from cfg. When
// HashKey is set, values are signed (and encrypted with BlockKey) through
// a securecookie codec. Options passed in opts are applied last.
func NewFromConfig(cfg Config, sink Sink, opts ...Option) (*Factory, error) {
	configOpts := make([]Option, 0, len(opts)+2)
	configOpts = append(configOpts, WithDefaults(cfg.Directives()))

	if cfg.HashKey != "" {
		codec, err := NewSecureCodec([]byte(cfg.HashKey), []byte(cfg.BlockKey))
		if err != nil {
			return nil, err
		}
		configOpts = append(configOpts, WithCodec(codec))
	}

	return NewFactory(sink, append(configOpts, opts...)...), nil
}
