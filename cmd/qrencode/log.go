// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultLogLevel = "warn"

// logLevel returns the level named by QRENCODE_LOG_LEVEL, or debug if
// debug is set.
func logLevel(debug bool) zap.AtomicLevel {
	level := zap.NewAtomicLevel()
	if debug {
		level.SetLevel(zap.DebugLevel)
		return level
	}
	env := strings.ToLower(strings.TrimSpace(os.Getenv("QRENCODE_LOG_LEVEL")))
	if err := level.UnmarshalText([]byte(env)); err != nil || env == "" {
		_ = level.UnmarshalText([]byte(defaultLogLevel))
	}
	return level
}

// newLogger returns a logger writing to standard error, which leaves
// standard output to the code.
func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.Config{
		Level:    logLevel(debug),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey:  "msg",
			LevelKey:    "level",
			EncodeLevel: zapcore.LowercaseLevelEncoder,
		},
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
		DisableCaller:     true,
		DisableStacktrace: true,
	}
	return cfg.Build()
}
