package logging

import (
	"io"
	"log"
	"os"
)

var (
	InfoLog = log.New(os.Stdout, "INFO: ", log.LstdFlags|log.Lshortfile)
	WarnLog = log.New(os.Stdout, "WARN: ", log.LstdFlags|log.Lshortfile)
	ErrLog  = log.New(os.Stderr, "ERROR: ", log.LstdFlags|log.Lshortfile)
)

// SetOutput redirects all loggers to w. Passing io.Discard silences them,
// which is mostly useful in tests.
func SetOutput(w io.Writer) {
	InfoLog.SetOutput(w)
	WarnLog.SetOutput(w)
	ErrLog.SetOutput(w)
}
