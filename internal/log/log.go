// Package log настраивает общий logrus-логгер приложения.
package log

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"strings"
	"sync"

	formatter "github.com/antonfisher/nested-logrus-formatter"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	logger *logrus.Logger
	once   sync.Once
)

// Fields поля структурированной записи
type Fields = logrus.Fields

// Options параметры логгера
type Options struct {
	Level string // debug, info, warn, error
	File  string // путь к файлу с ротацией, пусто — только stderr
}

// Init настраивает логгер один раз за время жизни процесса.
func Init(opts Options) *logrus.Logger {
	once.Do(func() {
		logger = newLogger(opts, os.Stderr)
	})
	return logger
}

func newLogger(opts Options, console io.Writer) *logrus.Logger {
	l := logrus.New()

	lvl, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	l.SetFormatter(&formatter.Formatter{
		NoColors:        opts.File != "",
		TimestampFormat: "02 Jan 06 - 15:04:05",
		HideKeys:        false,
		CallerFirst:     true,
		CustomCallerFormatter: func(f *runtime.Frame) string {
			s := strings.Split(f.Function, ".")
			funcName := s[len(s)-1]
			return fmt.Sprintf(" [%s:%d][%s()]", path.Base(f.File), f.Line, funcName)
		},
	})

	writers := []io.Writer{console}
	if opts.File != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   opts.File,
			LocalTime:  true,
			Compress:   true,
			MaxSize:    100,
			MaxAge:     7,
			MaxBackups: 3,
		})
	}

	l.SetOutput(io.MultiWriter(writers...))
	l.SetReportCaller(true)
	return l
}

// L возвращает общий логгер, при необходимости создавая его с настройками по умолчанию.
func L() *logrus.Logger {
	return Init(Options{Level: "info"})
}

// With возвращает запись с заданными полями
func With(fields Fields) *logrus.Entry {
	if fields == nil {
		fields = Fields{}
	}
	return L().WithFields(fields)
}

func Debug(fields Fields, msg string) {
	With(fields).Debug(msg)
}

func Info(fields Fields, msg string) {
	With(fields).Info(msg)
}

func Warn(fields Fields, msg string) {
	With(fields).Warn(msg)
}

func Error(fields Fields, msg string) {
	With(fields).Error(msg)
}

func Fatal(fields Fields, msg string) {
	With(fields).Fatal(msg)
}
