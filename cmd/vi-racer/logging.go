package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

const (
	logFileName = "vi-racer.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

// setupLogging builds the process logger
// The terminal belongs to the renderer, so output is discarded unless debug is set;
// with debug, logs go to dir/vi-racer.log, rotated aside when over maxLogSize
func setupLogging(debug bool, dir string) (zerolog.Logger, *os.File) {
	if !debug {
		log.SetOutput(io.Discard)
		return zerolog.New(io.Discard).Level(zerolog.Disabled), nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return zerolog.New(io.Discard).Level(zerolog.Disabled), nil
	}

	logPath := filepath.Join(dir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("vi-racer_%s.log", time.Now().Format("20060102_150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return zerolog.New(io.Discard).Level(zerolog.Disabled), nil
	}

	// Third-party packages logging through the standard logger land in the same file
	log.SetOutput(f)
	logger := zerolog.New(f).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	return logger, f
}
