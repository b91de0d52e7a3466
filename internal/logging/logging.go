package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// DefaultFile is where debug output goes when no path is given
const DefaultFile = "debug.log"

var (
	Debug   *logrus.Entry
	Counter *logrus.Entry
	Enabled bool

	base = logrus.New()
)

func init() {
	Debug = base.WithField("component", "core")
	Counter = base.WithField("component", "counter")

	// Only enable logging if CODEMAP_DEBUG environment variable is set
	if os.Getenv("CODEMAP_DEBUG") == "" {
		disable()
		return
	}
	Enable("")
}

// Enable starts writing debug output to path (DefaultFile if empty).
// Falls back to stderr if the file cannot be opened.
func Enable(path string) {
	if path == "" {
		path = DefaultFile
	}

	Enabled = true
	base.SetLevel(logrus.DebugLevel)
	base.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000000",
	})

	debugFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		base.SetOutput(os.Stderr)
		return
	}
	base.SetOutput(debugFile)
}

func disable() {
	Enabled = false
	base.SetOutput(io.Discard)
	base.SetLevel(logrus.PanicLevel)
}
