package config

// Config holds all application configuration.
type Config struct {
	Log     LogConfig     `mapstructure:"log" validate:"required"`
	Display DisplayConfig `mapstructure:"display" validate:"required"`
}

// LogConfig contains the logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

// DisplayConfig controls how quantities are rendered.
type DisplayConfig struct {
	// Precision is the number of decimal places; -1 renders the shortest
	// exact representation.
	Precision int `mapstructure:"precision" validate:"gte=-1,lte=15"`
}
