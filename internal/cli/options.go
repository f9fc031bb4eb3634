package cli

// Options are the settings shared by every command, gathered from flags.
type Options struct {
	Files      []string
	ConfigPath string
	ParticleDB string
	Stable     []string
	Debug      bool
	NoCC       bool
	Metrics    bool
	LogLevel   string
}
