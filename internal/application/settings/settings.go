// Package settings defines application-level configuration data.
package settings

import (
	"time"

	"cloud.google.com/go/civil"
)

// Output formats understood by the console renderer.
const (
	FormatDebug = "debug"
	FormatJSON  = "json"
	FormatText  = "text"
)

// Settings represents the run configuration.
type Settings struct {
	Date      civil.Date    `yaml:"date" kong:"short='d',help='Keep only entries published on or after this date',placeholder='YYYY-MM-DD'"`
	File      string        `yaml:"file" kong:"short='f',type='path',help='Feed list to read when stdin is not piped'"`
	Format    string        `yaml:"format" kong:"enum='debug,json,text',default='debug',help='Record format (debug/json/text)'"`
	LogLevel  string        `yaml:"log_level" kong:"enum='debug,info,warn,error',default='info',help='Log level'"`
	UserAgent string        `yaml:"user_agent" kong:"default='rssreader/1.0',help='User-Agent header sent with feed requests'"`
	Timeout   time.Duration `yaml:"timeout" kong:"default='0s',help='Per-request timeout, 0 keeps the transport default'"`
}

// Cutoff returns the configured cutoff date, or nil when none was given.
func (s Settings) Cutoff() *civil.Date {
	if !s.Date.IsValid() {
		return nil
	}
	d := s.Date
	return &d
}
