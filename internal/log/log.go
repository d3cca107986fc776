// Package log builds the zap loggers used by the command line tools.
package log

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Format is the log output encoding.
type Format string

const (
	FormatJSON    Format = "json"
	FormatConsole Format = "console"
)

// AvailableFormats lists the accepted --log-format values.
var AvailableFormats = []Format{FormatJSON, FormatConsole}

// String implements pflag.Value.
func (f *Format) String() string {
	return string(*f)
}

// Set implements pflag.Value.
func (f *Format) Set(s string) error {
	switch Format(strings.ToLower(s)) {
	case FormatJSON:
		*f = FormatJSON
	case FormatConsole:
		*f = FormatConsole
	default:
		return fmt.Errorf("invalid format %q, must be one of %v", s, AvailableFormats)
	}

	return nil
}

// Type implements pflag.Value.
func (f *Format) Type() string {
	return "string"
}

// Options holds the logging flags.
type Options struct {
	// Debug enables debug level and development defaults.
	Debug bool
	// Format selects the encoder.
	Format Format
}

// NewDefaultOptions returns info-level JSON logging.
func NewDefaultOptions() Options {
	return Options{
		Debug:  false,
		Format: FormatJSON,
	}
}

// AddFlags registers the logging flags on fs.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&o.Debug, "log-debug", o.Debug, "Enables more verbose logging")
	fs.Var(&o.Format, "log-format", fmt.Sprintf("Log format, one of %v", AvailableFormats))
}

// New returns a logger writing to stderr.
func New(debug bool, format Format) *zap.Logger {
	return NewWithSink(debug, format, zapcore.Lock(os.Stderr))
}

// NewWithSink returns a logger writing to sink.
func NewWithSink(debug bool, format Format, sink zapcore.WriteSyncer) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	lvl := zap.NewAtomicLevelAt(zap.InfoLevel)
	opts := []zap.Option{zap.AddCaller()}

	if debug {
		encCfg = zap.NewDevelopmentEncoderConfig()
		lvl.SetLevel(zap.DebugLevel)
		opts = append(opts, zap.Development(), zap.AddStacktrace(zap.ErrorLevel))
	}

	var enc zapcore.Encoder
	if format == FormatConsole {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	return zap.New(zapcore.NewCore(enc, sink, lvl), opts...)
}
