package hal

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
	Scale  float64
	Hz     int
}

func (c WindowConfig) withDefaults() WindowConfig {
	if c.Title == "" {
		c.Title = "wireframe"
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.Hz <= 0 {
		c.Hz = 60
	}
	return c
}
