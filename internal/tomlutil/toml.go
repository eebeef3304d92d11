// Package tomlutil wraps TOML decoding so callers never import the TOML
// library directly.
package tomlutil

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// MaxInputSize limits TOML input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("tomlutil: nil or empty data")
	ErrNilDestination = errors.New("tomlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("tomlutil: input exceeds maximum size")
	ErrUnknownKeys    = errors.New("tomlutil: unknown keys")
)

func validateInput(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

// Unmarshal decodes data into v, ignoring keys v has no field for.
func Unmarshal(data []byte, v any) error {
	_, err := decode(data, v)
	return err
}

// UnmarshalStrict rejects keys that were not decoded into v.
func UnmarshalStrict(data []byte, v any) error {
	md, err := decode(data, v)
	if err != nil {
		return err
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w: %s", ErrUnknownKeys, strings.Join(keys, ", "))
	}
	return nil
}

func decode(data []byte, v any) (toml.MetaData, error) {
	if err := validateInput(data, v); err != nil {
		return toml.MetaData{}, err
	}
	md, err := toml.Decode(string(data), v)
	if err != nil {
		return md, fmt.Errorf("tomlutil: %w", err)
	}
	return md, nil
}
