package sqlite

import "strings"

// Config holds the storage configuration. Use the provided ConfigFuncs to
// build one; setters panic on invalid values.
type Config struct {
	file    string
	durable bool
}

type ConfigFunc = func(c *Config)

func (c *Config) File(file string) {
	file = strings.TrimSpace(file)
	if file == "" {
		panic("file can't be blank")
	}
	if strings.Contains(file, "?") {
		panic("file can't contain ?")
	}
	c.file = file
}

func (c *Config) Durable(durable bool) {
	c.durable = durable
}

// WithFile sets the database file path. ":memory:" keeps the store in memory.
func WithFile(file string) ConfigFunc {
	return func(c *Config) {
		c.File(file)
	}
}

// WithDurable makes every write wait for a full fsync.
func WithDurable(durable bool) ConfigFunc {
	return func(c *Config) {
		c.Durable(durable)
	}
}
