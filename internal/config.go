package internal

import (
	"io"
	"os"
	"path/filepath"

	"github.com/criblio/greeter/util"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitConfig sets up logging to stderr at info level.
func InitConfig() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

// SetLogWriter sets log output to w as raw JSON lines
func SetLogWriter(w io.Writer) {
	log.Logger = zerolog.New(w).With().Timestamp().Caller().Logger()
}

// SetLogFile sets log output to a particular file path
func SetLogFile(path string) {
	err := os.MkdirAll(filepath.Dir(path), 0755)
	util.CheckErrSprintf(err, "could not create path to log file %s: %v", path, err)
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
	util.CheckErrSprintf(err, "could not open log file %s: %v", path, err)
	SetLogWriter(f)
}

// SetDebug sets logging to debug
func SetDebug() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
}
