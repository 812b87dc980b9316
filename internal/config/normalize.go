// internal/config/normalize.go
package config

// Normalize applies post-validation defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	l := &cfg.Gateway.Listen

	if l.BaudRate == 0 {
		l.BaudRate = 9600
	}
	if l.DataBits == 0 {
		l.DataBits = 8
	}
	if l.StopBits == 0 {
		l.StopBits = 1
	}
	if l.Parity == "" {
		l.Parity = "N"
	}
	if l.TimeoutMs == 0 {
		l.TimeoutMs = 1000
	}

	if f := cfg.Gateway.Forward; f != nil && f.TimeoutMs == 0 {
		f.TimeoutMs = 500
	}

	if cfg.Gateway.Log.Level == "" {
		cfg.Gateway.Log.Level = "info"
	}
}
