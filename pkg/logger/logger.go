package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
)

var (
	InfoLogger  *log.Logger
	ErrorLogger *log.Logger
	DebugLogger *log.Logger
	WarnLogger  *log.Logger

	debugEnabled = os.Getenv("ENVIRONMENT") == "development"
)

func init() {
	SetOutput(os.Stdout, os.Stderr)
}

// SetOutput redirects the level loggers. Tests use it to capture output.
func SetOutput(out, errOut io.Writer) {
	flags := log.Ldate | log.Ltime | log.Lshortfile
	InfoLogger = log.New(out, "INFO: ", flags)
	ErrorLogger = log.New(errOut, "ERROR: ", flags)
	DebugLogger = log.New(out, "DEBUG: ", flags)
	WarnLogger = log.New(out, "WARN: ", flags)
}

// Configure enables debug output for the development environment.
func Configure(environment string) {
	debugEnabled = environment == "development"
}

func Info(format string, v ...interface{}) {
	InfoLogger.Output(2, fmt.Sprintf(format, v...))
}

func Error(format string, v ...interface{}) {
	ErrorLogger.Output(2, fmt.Sprintf(format, v...))
}

func Debug(format string, v ...interface{}) {
	if debugEnabled {
		DebugLogger.Output(2, fmt.Sprintf(format, v...))
	}
}

func Warn(format string, v ...interface{}) {
	WarnLogger.Output(2, fmt.Sprintf(format, v...))
}

// Fields renders key/value pairs as "k1=v1 k2=v2", keys sorted.
func Fields(fields map[string]interface{}) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, fields[k]))
	}
	return strings.Join(parts, " ")
}

// LogCheckoutStep records a failed step of the non-atomic checkout flow.
func LogCheckoutStep(orderID, step string, err error) {
	ErrorLogger.Output(2, "checkout incomplete: "+Fields(map[string]interface{}{
		"order": orderID,
		"step":  step,
		"error": err,
	}))
}
