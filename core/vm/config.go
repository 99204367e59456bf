package vm

// Config are the configuration options for the native-call precompiles.
type Config struct {
	// StrictPadding rejects integer arguments whose unused high-order bytes
	// are not zero. Conforming encoders never set them.
	StrictPadding bool `toml:",omitempty"`
}

// DefaultConfig contains the default precompile settings.
var DefaultConfig = Config{
	StrictPadding: false,
}
