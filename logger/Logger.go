package logger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const PropertiesName = "logger"

var Log = &Logger{entry: logrus.NewEntry(logrus.StandardLogger())}

// Logger writes JSON lines through logrus. Output never goes to stdout,
// the terminal belongs to the game screen.
type Logger struct {
	entry  *logrus.Entry
	output *lumberjack.Logger
}

type Properties struct {
	Filename   string
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
	Level      string
}

func setLoggerDefaults(v *viper.Viper) {
	v.SetDefault("logFilename", "pong.log")
	v.SetDefault("maxSize", 10)
	v.SetDefault("maxBackups", 3)
	v.SetDefault("maxAge", 28)
	v.SetDefault("compress", false)
	v.SetDefault("level", "Info")
}

// ReadProperties loads logger.properties from ./properties or ./, or
// configFile when given.
func ReadProperties(v *viper.Viper, configFile string) (Properties, error) {
	setLoggerDefaults(v)
	v.SetConfigType("properties")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(PropertiesName)
		v.AddConfigPath("./properties")
		v.AddConfigPath("./")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Properties{}, fmt.Errorf("read logger properties: %w", err)
		}
	}

	return Properties{
		Filename:   cast.ToString(v.Get("logFilename")),
		MaxSize:    cast.ToInt(v.Get("maxSize")),
		MaxBackups: cast.ToInt(v.Get("maxBackups")),
		MaxAge:     cast.ToInt(v.Get("maxAge")),
		Compress:   cast.ToBool(v.Get("compress")),
		Level:      cast.ToString(v.Get("level")),
	}, nil
}

func parseLevel(level string) logrus.Level {
	switch strings.ToLower(level) {

	case "trace":
		return logrus.TraceLevel

	case "info":
		return logrus.InfoLevel

	case "warn":
		return logrus.WarnLevel

	case "error":
		return logrus.ErrorLevel

	case "fatal":
		return logrus.FatalLevel

	default:
		return logrus.DebugLevel
	}
}

func (l *Logger) Init(p Properties) {
	l.output = &lumberjack.Logger{
		Filename:   p.Filename,
		MaxSize:    p.MaxSize,
		MaxBackups: p.MaxBackups,
		MaxAge:     p.MaxAge,
		Compress:   p.Compress,
	}

	base := logrus.New()
	base.SetFormatter(&logrus.JSONFormatter{})
	base.SetOutput(l.output)
	base.SetLevel(parseLevel(p.Level))

	l.entry = logrus.NewEntry(base)
}

// WithSession tags every following line with the given session id.
func (l *Logger) WithSession(id string) {
	l.entry = l.entry.WithField("session", id)
}

func (l *Logger) Close() error {
	if l.output == nil {
		return nil
	}
	return l.output.Close()
}

func (l *Logger) Info(message string) {
	l.entry.Info(message)
}

func (l *Logger) Error(message string) {
	l.entry.Error(message)
}

func (l *Logger) Debug(message string) {
	l.entry.Debug(message)
}

func (l *Logger) Warn(message string) {
	l.entry.Warn(message)
}

func (l *Logger) Fatal(message string) {
	l.entry.Fatal(message)
}
