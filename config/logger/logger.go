package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

type CommonLogger struct {
	Info    zerolog.Logger
	Error   zerolog.Logger
	Trace   zerolog.Logger
	Warning zerolog.Logger
	Stream  zerolog.Logger
}

type AppLogger struct {
	Http CommonLogger
}

func NewLogger(dir string) *AppLogger {
	if dir == "" {
		dir = "logs"
	}
	_ = os.MkdirAll(dir, 0755)

	zerolog.TimeFieldFormat = "2006-01-02 15:04:05.000"

	consoleWriter := consoleConfWriter()

	log := &AppLogger{}

	log.Http.Stream = newMultiLogger(consoleWriter, filepath.Join(dir, "stream.log"))
	log.Http.Info = newMultiLogger(consoleWriter, filepath.Join(dir, "info.log"))
	log.Http.Trace = newMultiLogger(consoleWriter, filepath.Join(dir, "trace.log"))
	log.Http.Warning = newMultiLogger(consoleWriter, filepath.Join(dir, "warning.log"))
	log.Http.Error = newMultiLogger(consoleWriter, filepath.Join(dir, "error.log"))

	return log
}

// NewWriterLogger sends every level to w. Tests use it to inspect output.
func NewWriterLogger(w io.Writer) *AppLogger {
	l := zerolog.New(w).With().Timestamp().Logger()
	return &AppLogger{Http: CommonLogger{Info: l, Error: l, Trace: l, Warning: l, Stream: l}}
}

func NewNopLogger() *AppLogger {
	l := zerolog.Nop()
	return &AppLogger{Http: CommonLogger{Info: l, Error: l, Trace: l, Warning: l, Stream: l}}
}

func newMultiLogger(console zerolog.ConsoleWriter, filename string) zerolog.Logger {
	multi := io.MultiWriter(console, fileConsoleWriter(filename))

	return zerolog.New(multi).With().Timestamp().Logger()
}

func consoleConfWriter() zerolog.ConsoleWriter {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "2006-01-02 15:04:05.000",
		NoColor:    false,
		FormatTimestamp: func(i interface{}) string {
			return fmt.Sprintf("[%s]", i)
		},
		FormatLevel: func(i interface{}) string {
			return fmt.Sprintf("[%s]", strings.ToUpper(fmt.Sprint(i)))
		},
		FormatMessage: func(i interface{}) string {
			return fmt.Sprintf("%s", i)
		},
	}
	return consoleWriter
}

func fileConsoleWriter(filename string) io.Writer {
	return zerolog.ConsoleWriter{
		Out: &lumberjack.Logger{
			Filename:   filename,
			MaxSize:    5,
			MaxAge:     20,
			MaxBackups: 5,
			Compress:   true,
		},
		NoColor:    true,
		TimeFormat: "2006-01-02 15:04:05.000",
		FormatTimestamp: func(i interface{}) string {
			return fmt.Sprintf("[%s]", i)
		},
		FormatLevel: func(i interface{}) string {
			return fmt.Sprintf("[%s]", strings.ToUpper(fmt.Sprint(i)))
		},
		FormatMessage: func(i interface{}) string {
			return fmt.Sprintf("%s", i)
		},
		FormatFieldName: func(i interface{}) string {
			return fmt.Sprintf("%s=", i)
		},
		FormatFieldValue: func(i interface{}) string {
			return fmt.Sprintf("%v", i)
		},
	}
}
