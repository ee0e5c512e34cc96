package internal

import (
	"os"

	"github.com/sirupsen/logrus"
)

// SetupLogging configures diagnostics logging. Operator-facing output
// goes to stdout as plain text; logrus carries diagnostics on stderr.
func SetupLogging(verbose bool) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
	}
}
