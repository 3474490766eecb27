package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Duration wraps time.Duration so JSON can specify timeouts either as
// strings like "15s" or as integer nanoseconds.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		d.Duration = parsed
	default:
		return fmt.Errorf("invalid duration: %v", v)
	}
	return nil
}

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from "zero" so the file only overrides what
// it mentions.
type jsonConfig struct {
	BaseURL        *string   `json:"base_url"`
	SessionFile    *string   `json:"session_file"`
	RequestTimeout *Duration `json:"request_timeout"`
	PageSize       *int      `json:"page_size"`
}

func (c *Config) applyJSON(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if jc.BaseURL != nil {
		c.BaseURL = *jc.BaseURL
	}
	if jc.SessionFile != nil {
		c.SessionFile = *jc.SessionFile
	}
	if jc.RequestTimeout != nil {
		c.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.PageSize != nil && *jc.PageSize > 0 {
		c.PageSize = *jc.PageSize
	}
	return nil
}
