package log

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

var std = logrus.New()

// Setup configures the shared logger: text format, file plus stdout.
func Setup(debug bool) error {
	std.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	if debug {
		std.SetLevel(logrus.DebugLevel)
	} else {
		std.SetLevel(logrus.InfoLevel)
	}

	if err := os.MkdirAll("logs", 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(filepath.Join("logs", "assetdog.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	std.SetOutput(io.MultiWriter(os.Stdout, f))
	return nil
}

func Debugf(format string, args ...interface{}) { std.Debugf(format, args...) }
func Infof(format string, args ...interface{})  { std.Infof(format, args...) }
func Warnf(format string, args ...interface{})  { std.Warnf(format, args...) }
func Errorf(format string, args ...interface{}) { std.Errorf(format, args...) }
func Info(args ...interface{})                  { std.Info(args...) }
func Warn(args ...interface{})                  { std.Warn(args...) }
func Error(args ...interface{})                 { std.Error(args...) }

func WithError(err error) *logrus.Entry {
	return std.WithError(err)
}

func WithField(key string, value interface{}) *logrus.Entry {
	return std.WithField(key, value)
}

// Hook returns the access log middleware.
func Hook() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			std.WithFields(logrus.Fields{
				"method": c.Request().Method,
				"uri":    c.Request().RequestURI,
				"status": c.Response().Status,
				"ip":     c.RealIP(),
				"cost":   time.Since(start).String(),
			}).Debug("access")
			return err
		}
	}
}
