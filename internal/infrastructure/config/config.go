// Package config handles configuration loading from flags and YAML files.
package config

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/alecthomas/kong"
	"github.com/tesso57/rssreader/internal/application/settings"
	"gopkg.in/yaml.v3"
)

const description = "Fetch RSS feeds concurrently and print their entries, optionally only those published since a date."

type cli struct {
	settings.Settings `kong:"embed"`

	Config kong.ConfigFlag `kong:"help='YAML config file with defaults for any flag',placeholder='PATH'"`
}

// Load parses command-line arguments, consulting the YAML file named by --config.
func Load(args []string, options ...kong.Option) (*settings.Settings, error) {
	var c cli

	options = append([]kong.Option{
		kong.Name("rssreader"),
		kong.Description(description),
		kong.Configuration(yamlKongLoader),
		kong.TypeMapper(reflect.TypeFor[civil.Date](), kong.MapperFunc(decodeDate)),
	}, options...)

	parser, err := kong.New(&c, options...)
	if err != nil {
		return nil, err
	}

	if _, err := parser.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse arguments: %w", err)
	}

	s := c.Settings
	s.File = strings.TrimSpace(s.File)
	s.UserAgent = strings.TrimSpace(s.UserAgent)
	return &s, nil
}

func decodeDate(ctx *kong.DecodeContext, target reflect.Value) error {
	token, err := ctx.Scan.PopValue("date")
	if err != nil {
		return err
	}

	var d civil.Date
	switch v := token.Value.(type) {
	case string:
		d, err = civil.ParseDate(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("expected a YYYY-MM-DD date but got %q", v)
		}
	case time.Time:
		d = civil.DateOf(v)
	default:
		return fmt.Errorf("expected a YYYY-MM-DD date but got %v (%T)", token.Value, token.Value)
	}

	target.Set(reflect.ValueOf(d))
	return nil
}

func yamlKongLoader(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	var f kong.ResolverFunc = func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		names := []string{flag.Name, strings.ReplaceAll(flag.Name, "-", "_")}
		for _, name := range names {
			if v, ok := values[name]; ok {
				return v, nil
			}
		}
		return nil, nil
	}
	return f, nil
}
