// Package config loads the connection and pool settings of the client from a
// .properties file and REDIS_* environment variables.
package config

import (
	"bufio"
	"fmt"
	"go-redis-client/lib/logger"
	"io"
	"net"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// ClientProperties defines the settings of one client instance
type ClientProperties struct {
	Host     string `cfg:"host"`
	Port     int    `cfg:"port"`
	Password string `cfg:"password"`
	Database int    `cfg:"database"`

	MaxTotal      int `cfg:"max-total"`
	MaxIdle       int `cfg:"max-idle"`
	MaxWaitMillis int `cfg:"max-wait-millis"`
	// connection-open timeout
	TimeoutMillis      int `cfg:"timeout"`
	ReadTimeoutMillis  int `cfg:"read-timeout"`
	WriteTimeoutMillis int `cfg:"write-timeout"`
	CloseTimeoutMillis int `cfg:"close-timeout"`

	Log logger.Settings
}

// Default returns the settings used when nothing is configured
func Default() *ClientProperties {
	return &ClientProperties{
		Host:               "localhost",
		Port:               6379,
		MaxTotal:           600,
		MaxIdle:            300,
		MaxWaitMillis:      1000,
		TimeoutMillis:      10000,
		ReadTimeoutMillis:  3000,
		WriteTimeoutMillis: 3000,
		CloseTimeoutMillis: 10000,
		Log: logger.Settings{
			Level:      "info",
			MaxSizeMB:  100,
			MaxBackups: 7,
			MaxAgeDays: 30,
		},
	}
}

// Addr returns host:port
func (p *ClientProperties) Addr() string {
	return net.JoinHostPort(p.Host, strconv.Itoa(p.Port))
}

func (p *ClientProperties) MaxWait() time.Duration {
	return millis(p.MaxWaitMillis)
}

func (p *ClientProperties) DialTimeout() time.Duration {
	return millis(p.TimeoutMillis)
}

func (p *ClientProperties) ReadTimeout() time.Duration {
	return millis(p.ReadTimeoutMillis)
}

func (p *ClientProperties) WriteTimeout() time.Duration {
	return millis(p.WriteTimeoutMillis)
}

func (p *ClientProperties) CloseTimeout() time.Duration {
	return millis(p.CloseTimeoutMillis)
}

func millis(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// Load reads the properties file at path over the defaults
func Load(path string) (*ClientProperties, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	props := Default()
	if err := props.parse(file); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return props, nil
}

// parse reads key=value (or key: value) lines. Lines starting with # or ! are comments.
func (p *ClientProperties) parse(src io.Reader) error {
	rawMap := make(map[string]string)
	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' || line[0] == '!' {
			continue
		}
		pivot := strings.IndexAny(line, "=:")
		if pivot <= 0 {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(line[:pivot]))
		rawMap[key] = strings.TrimSpace(line[pivot+1:])
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return p.assign(func(key string) (string, bool) {
		v, ok := rawMap[key]
		return v, ok
	})
}

// ApplyEnv overrides settings from environment variables named REDIS_<KEY>,
// the key upper-cased with dashes turned into underscores, e.g. REDIS_MAX_TOTAL.
func (p *ClientProperties) ApplyEnv() error {
	return p.assign(func(key string) (string, bool) {
		name := "REDIS_" + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
		return os.LookupEnv(name)
	})
}

func (p *ClientProperties) assign(lookup func(key string) (string, bool)) error {
	return assignStruct(reflect.ValueOf(p).Elem(), lookup)
}

func assignStruct(v reflect.Value, lookup func(key string) (string, bool)) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldVal := v.Field(i)
		if field.Type.Kind() == reflect.Struct {
			if err := assignStruct(fieldVal, lookup); err != nil {
				return err
			}
			continue
		}
		key, ok := field.Tag.Lookup("cfg")
		if !ok {
			continue
		}
		value, ok := lookup(key)
		if !ok {
			continue
		}
		switch field.Type.Kind() {
		case reflect.String:
			fieldVal.SetString(value)
		case reflect.Int:
			n, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			fieldVal.SetInt(n)
		case reflect.Bool:
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			fieldVal.SetBool(b)
		}
	}
	return nil
}
