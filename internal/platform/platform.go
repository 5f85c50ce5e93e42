package platform

// Config names the host document elements the adapters bind to.
type Config struct {
	CanvasID string
	ErrorID  string
}

func DefaultConfig() Config {
	return Config{CanvasID: "canvas", ErrorID: "error-message"}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.CanvasID == "" {
		c.CanvasID = def.CanvasID
	}
	if c.ErrorID == "" {
		c.ErrorID = def.ErrorID
	}
	return c
}
