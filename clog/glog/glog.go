// Package glog routes clog output to github.com/golang/glog.
// Importing it for side effects is enough to switch the backend.
package glog

import (
	"fmt"

	"github.com/golang/glog"

	"github.com/cayleygraph/ols/clog"
)

func init() {
	clog.SetLogger(Logger{})
}

// Logger is a clog.Logger backed by glog. Verbosity follows glog's -v flag.
type Logger struct{}

func (Logger) Infof(format string, args ...interface{}) {
	glog.InfoDepth(3, fmt.Sprintf(format, args...))
}
func (Logger) Warningf(format string, args ...interface{}) {
	glog.WarningDepth(3, fmt.Sprintf(format, args...))
}
func (Logger) Errorf(format string, args ...interface{}) {
	glog.ErrorDepth(3, fmt.Sprintf(format, args...))
}
func (Logger) Fatalf(format string, args ...interface{}) {
	glog.FatalDepth(3, fmt.Sprintf(format, args...))
}

func (Logger) V(level int) bool {
	return bool(glog.V(glog.Level(level)))
}

// SetV is a no-op; glog only reads its level from the -v flag.
func (Logger) SetV(v int) {
	glog.Warningf("changing log level is not supported; run command with '-v %d' flag", v)
}
