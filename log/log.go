//  Copyright (c) 2014 Couchbase, Inc.

// Package log implement a leveled logger shared by all packages in this
// repository. Applications can integrate their own logger by supplying
// an object implementing the Logger interface.
package log

import "io"
import "os"
import "fmt"
import "time"
import "strings"
import "sync"

import "github.com/emokater/data-search-algorithms/lib"

func init() {
	setts := lib.Settings{
		"log.level": "info",
		"log.file":  "",
	}
	SetLogger(nil, setts)
}

// Logger interface for logging, applications can supply a logger object
// implementing this interface or fall back to the defaultLogger{}.
type Logger interface {
	SetLogLevel(string)
	Fatalf(format string, v ...interface{})
	Errorf(format string, v ...interface{})
	Warnf(format string, v ...interface{})
	Infof(format string, v ...interface{})
	Verbosef(format string, v ...interface{})
	Debugf(format string, v ...interface{})
	Tracef(format string, v ...interface{})
	Printlf(loglevel LogLevel, format string, v ...interface{})
}

// LogLevel defines log level.
type LogLevel int

const (
	logLevelIgnore LogLevel = iota + 1
	logLevelFatal
	logLevelError
	logLevelWarn
	logLevelInfo
	logLevelVerbose
	logLevelDebug
	logLevelTrace
)

var log Logger // object used by all components for logging.

// SetLogger to integrate logging with application logging. Importing
// this package will initialize the logger with info level logging to
// console. If `logger` is nil, a default logger is created with
// settings,
//
// "log.level" (string, default: "info")
//		One of ignore, fatal, error, warn, info, verbose, debug, trace.
//
// "log.file" (string, default: "")
//		Append log lines to this file, if empty log to os.Stdout.
func SetLogger(logger Logger, setts lib.Settings) Logger {
	if logger != nil {
		log = logger
		return log
	}

	level := string2logLevel(setts.String("log.level"))
	var output io.Writer = os.Stdout
	if logfile := setts.String("log.file"); logfile != "" {
		flags := os.O_CREATE | os.O_WRONLY | os.O_APPEND
		logfd, err := os.OpenFile(logfile, flags, 0660)
		if err != nil {
			panic(fmt.Errorf("SetLogger(): %v", err))
		}
		output = logfd
	}
	log = &defaultLogger{level: level, output: output}
	return log
}

// SetOutput redirect the default logger to `w` and return the previous
// output, a no-op for application supplied loggers.
func SetOutput(w io.Writer) io.Writer {
	if l, ok := log.(*defaultLogger); ok {
		l.mu.Lock()
		defer l.mu.Unlock()
		prev := l.output
		l.output = w
		return prev
	}
	return nil
}

// defaultLogger write timestamped lines, tagged with their level, to
// an io.Writer. Lines above the configured level are dropped.
type defaultLogger struct {
	mu     sync.Mutex
	level  LogLevel
	output io.Writer
}

func (l *defaultLogger) SetLogLevel(level string) {
	l.mu.Lock()
	l.level = string2logLevel(level)
	l.mu.Unlock()
}

func (l *defaultLogger) Fatalf(format string, v ...interface{}) {
	l.Printlf(logLevelFatal, format, v...)
}

func (l *defaultLogger) Errorf(format string, v ...interface{}) {
	l.Printlf(logLevelError, format, v...)
}

func (l *defaultLogger) Warnf(format string, v ...interface{}) {
	l.Printlf(logLevelWarn, format, v...)
}

func (l *defaultLogger) Infof(format string, v ...interface{}) {
	l.Printlf(logLevelInfo, format, v...)
}

func (l *defaultLogger) Verbosef(format string, v ...interface{}) {
	l.Printlf(logLevelVerbose, format, v...)
}

func (l *defaultLogger) Debugf(format string, v ...interface{}) {
	l.Printlf(logLevelDebug, format, v...)
}

func (l *defaultLogger) Tracef(format string, v ...interface{}) {
	l.Printlf(logLevelTrace, format, v...)
}

func (l *defaultLogger) Printlf(level LogLevel, format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level > l.level || l.output == nil {
		return
	}
	line := fmt.Sprintf(format, v...)
	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}
	ts := time.Now().Format(timeformat)
	fmt.Fprintf(l.output, "%s [%-5s] %s", ts, level, line)
}

const timeformat = "2006-01-02T15:04:05.000Z07:00"

// level tags, indexed by LogLevel.
var levelnames = [...]string{
	logLevelIgnore:  "IGNORE",
	logLevelFatal:   "FATAL",
	logLevelError:   "ERROR",
	logLevelWarn:    "WARN",
	logLevelInfo:    "INFO",
	logLevelVerbose: "VERBOSE",
	logLevelDebug:   "DEBUG",
	logLevelTrace:   "TRACE",
}

func (l LogLevel) String() string {
	if l < logLevelIgnore || l > logLevelTrace {
		panic(fmt.Errorf("unexpected log level %d", int(l)))
	}
	return levelnames[l]
}

func string2logLevel(s string) LogLevel {
	name := strings.ToUpper(strings.TrimSpace(s))
	for level := logLevelIgnore; level <= logLevelTrace; level++ {
		if levelnames[level] == name {
			return level
		}
	}
	panic(fmt.Errorf("unexpected log level %q", s))
}

// Fatalf log with fatal level.
func Fatalf(format string, v ...interface{}) {
	log.Printlf(logLevelFatal, format, v...)
}

// Errorf log with error level.
func Errorf(format string, v ...interface{}) {
	log.Printlf(logLevelError, format, v...)
}

// Warnf log with warning level.
func Warnf(format string, v ...interface{}) {
	log.Printlf(logLevelWarn, format, v...)
}

// Infof log with info level.
func Infof(format string, v ...interface{}) {
	log.Printlf(logLevelInfo, format, v...)
}

// Verbosef log with verbose level.
func Verbosef(format string, v ...interface{}) {
	log.Printlf(logLevelVerbose, format, v...)
}

// Debugf log with debug level.
func Debugf(format string, v ...interface{}) {
	log.Printlf(logLevelDebug, format, v...)
}

// Tracef log with trace level.
func Tracef(format string, v ...interface{}) {
	log.Printlf(logLevelTrace, format, v...)
}

// SetLogLevel change the log level of the current logger.
func SetLogLevel(level string) {
	log.SetLogLevel(level)
}
