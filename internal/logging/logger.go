package logging

import (
    "log"
    "time"
)

// Thin level-prefixed wrapper over the standard logger.

func Infof(format string, args ...any) { logf("INFO ", format, args...) }

func Warnf(format string, args ...any) { logf("WARN ", format, args...) }

func Errorf(format string, args ...any) { logf("ERROR", format, args...) }

func logf(level, format string, args ...any) {
    log.Printf(level+" %s "+format, append([]any{time.Now().UTC().Format(time.RFC3339Nano)}, args...)...)
}
