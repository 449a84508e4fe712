// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey   string   `json:"token_sign_key"`
		TokenAlgorithm string   `json:"token_algorithm"`
		TokenDuration  Duration `json:"token_duration"`
		LogLevel       string   `json:"log_level"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress       string   `json:"http_address"`
		RequestTimeout    Duration `json:"request_timeout"`
		TrustProxyHeaders bool     `json:"trust_proxy_headers"`
	} `json:"server,omitempty"`

	RateLimits struct {
		Login         string   `json:"login"`
		Info          string   `json:"info"`
		ROT13         string   `json:"rot13"`
		UserInfo      string   `json:"user_info"`
		Health        string   `json:"health"`
		SweepInterval Duration `json:"sweep_interval"`
	} `json:"rate_limits,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		Username       string   `json:"username"`
		Password       string   `json:"password"`
	} `json:"adapter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:   jsonCfg.App.TokenSignKey,
			TokenAlgorithm: jsonCfg.App.TokenAlgorithm,
			TokenDuration:  time.Duration(jsonCfg.App.TokenDuration),
			LogLevel:       jsonCfg.App.LogLevel,
		},
		Server: Server{
			HTTPAddress:       jsonCfg.Server.HTTPAddress,
			RequestTimeout:    time.Duration(jsonCfg.Server.RequestTimeout),
			TrustProxyHeaders: jsonCfg.Server.TrustProxyHeaders,
		},
		RateLimits: RateLimits{
			Login:         jsonCfg.RateLimits.Login,
			Info:          jsonCfg.RateLimits.Info,
			ROT13:         jsonCfg.RateLimits.ROT13,
			UserInfo:      jsonCfg.RateLimits.UserInfo,
			Health:        jsonCfg.RateLimits.Health,
			SweepInterval: time.Duration(jsonCfg.RateLimits.SweepInterval),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			Username:       jsonCfg.Adapter.Username,
			Password:       jsonCfg.Adapter.Password,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
