package logger

import (
	"io"
	"os"
	"time"

	"github.com/natefinch/lumberjack"
	logrus "github.com/sirupsen/logrus"
	gormlogger "gorm.io/gorm/logger"
)

// Setup builds a Logrus logger writing to stdout and a rotating file.
// The returned writer is the file rotator so other components (request
// logging) can share it.
func Setup(filename, level string) (*logrus.Logger, io.Writer) {
	// 1) Lumberjack for file rotation
	rotator := &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    10, // megabytes
		MaxBackups: 7,  // keep up to 7 old files
		MaxAge:     7,  // days
		Compress:   true,
	}

	// 2) Configure Logrus to write to that file
	log := logrus.New()
	log.SetOutput(io.MultiWriter(os.Stdout, rotator))
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		log.WithField("level", level).Warn("unknown LOG_LEVEL, falling back to info")
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	return log, rotator
}

// GormLogger adapts log for GORM. SQL statements are emitted at Info level
// only when log is at Debug level.
func GormLogger(log *logrus.Logger) gormlogger.Interface {
	level := gormlogger.Warn
	if log.IsLevelEnabled(logrus.DebugLevel) {
		level = gormlogger.Info
	}
	return gormlogger.New(log, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
