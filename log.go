package cyclecursor

import (
	"github.com/rs/zerolog"

	"gregoryjjb/cyclecursor/logging"
)

var plog zerolog.Logger

func init() {
	plog = logging.Component("cyclecursor")
}

// SetLogger replaces the logger used for cursor diagnostics. The default is
// derived from the global zerolog logger when the package is initialized.
func SetLogger(l zerolog.Logger) {
	plog = l.With().Str("component", "cyclecursor").Logger()
}
