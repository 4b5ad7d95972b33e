package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

var logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Init configures the global logger. When file is non-empty, output goes
// through a lumberjack rotating writer; otherwise it stays on stderr.
func Init(file string, maxSizeMB, maxBackups, maxAgeDays int, compress bool, level string) {
	var out io.Writer = os.Stderr
	if file != "" {
		out = &lumberjack.Logger{
			Filename:   file,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
			Compress:   compress,
		}
	}
	logger = zerolog.New(out).With().Timestamp().Logger().Level(parseLevel(level))
}

// SetLogLevel changes the minimum level of the global logger.
func SetLogLevel(level string) {
	logger = logger.Level(parseLevel(level))
}

// SetLoggerForTest swaps the global logger; tests use this to capture output.
func SetLoggerForTest(l zerolog.Logger) {
	logger = l
}

func parseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// Info logs at info level with alternating key/value pairs.
func Info(msg string, kv ...interface{}) {
	logWith(logger.Info(), msg, kv)
}

// Warn logs at warn level with alternating key/value pairs.
func Warn(msg string, kv ...interface{}) {
	logWith(logger.Warn(), msg, kv)
}

// Error logs at error level with alternating key/value pairs.
func Error(msg string, kv ...interface{}) {
	logWith(logger.Error(), msg, kv)
}

func logWith(ev *zerolog.Event, msg string, kv []interface{}) {
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		ev = ev.Interface(key, kv[i+1])
	}
	ev.Msg(msg)
}
