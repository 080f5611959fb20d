package config

const (
	defaultDataDir        = "~/.local/share/scriptorium"
	defaultLogDir         = "~/.local/share/scriptorium/logs"
	defaultSLADefaultDays = 5
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		SLA: SLA{
			DefaultDays: defaultSLADefaultDays,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
