// internal/config/config.go
package config

type Config struct {
	Gateway GatewayConfig `yaml:"gateway"`
}

type GatewayConfig struct {
	Listen  ListenConfig   `yaml:"listen"`
	Forward *ForwardConfig `yaml:"forward"` // optional, opt-in
	Log     LogConfig      `yaml:"log"`
}

// ---- SERIAL LISTEN ----

type ListenConfig struct {
	Device    string `yaml:"device"`
	BaudRate  int    `yaml:"baud_rate"`
	DataBits  int    `yaml:"data_bits"`
	StopBits  int    `yaml:"stop_bits"`
	Parity    string `yaml:"parity"` // N, E, O
	TimeoutMs int    `yaml:"timeout_ms"`
}

// ---- MODBUS FORWARD TARGET ----

type ForwardConfig struct {
	Endpoint  string        `yaml:"endpoint"`
	UnitID    uint8         `yaml:"unit_id"`
	TimeoutMs int           `yaml:"timeout_ms"`
	Slaves    []SlaveConfig `yaml:"slaves"`
}

// SlaveConfig reserves a holding-register span for one sensor slave.
type SlaveConfig struct {
	SlaveAddress uint8  `yaml:"slave_address"`
	BaseAddress  uint16 `yaml:"base_address"`
	Quantity     uint16 `yaml:"quantity"` // reserved registers, 1..1020
}

// ---- LOG ----

type LogConfig struct {
	Level string `yaml:"level"`
}
