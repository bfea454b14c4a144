package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync/atomic"
)

var (
	logger    = log.New(os.Stderr, "", log.LstdFlags)
	nodeLog   atomic.Bool
	serverLog atomic.Bool
)

// InitLog switches the compute (node) and transport (server) lines on or
// off. Warnings are always written.
func InitLog(node, server bool) {
	nodeLog.Store(node)
	serverLog.Store(server)
}

// SetLogOutput redirects every line of this package to w.
func SetLogOutput(w io.Writer) {
	logger.SetOutput(w)
}

// ServerLog reports HTTP, gRPC and queue traffic.
func ServerLog(format string, v ...any) {
	if serverLog.Load() {
		logf("INFO", "Server", format, v...)
	}
}

// NodeLog reports job progress of a master or worker.
func NodeLog(role string, format string, v ...any) {
	if nodeLog.Load() {
		logf("INFO", "Compute "+role, format, v...)
	}
}

func WarnLog(role string, format string, v ...any) {
	logf("WARN", role, format, v...)
}

func logf(level, scope, format string, v ...any) {
	logger.Printf("%s %s: %s", level, scope, fmt.Sprintf(format, v...))
}
