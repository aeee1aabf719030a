package config

const (
	defaultConfigPath     = "~/.config/subdesk/config.toml"
	defaultStateDir       = "~/.local/share/subdesk"
	defaultLogDir         = "~/.local/share/subdesk/logs"
	defaultSubtitlePaths  = "./"
	defaultProbeTimeoutMS = 300
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	maxProbeTimeoutMS     = 10000
)

var defaultProbePorts = []int{445, 139}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir: defaultStateDir,
			LogDir:   defaultLogDir,
		},
		Host: Host{
			SubtitlePaths: defaultSubtitlePaths,
		},
		Probe: Probe{
			TimeoutMS: defaultProbeTimeoutMS,
			Ports:     append([]int(nil), defaultProbePorts...),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
