package log

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/datawire/dlib/dlog"
)

// MakeBaseLogger configures the process-wide logrus logger, wraps it in a
// dlog.Logger, and returns a context that carries it.
func MakeBaseLogger(ctx context.Context, logLevel string) context.Context {
	logrusLogger := logrus.StandardLogger()
	logrusLogger.SetFormatter(NewFormatter("2006-01-02 15:04:05.0000"))
	SetLogrusLevel(logrusLogger, logLevel)

	logger := dlog.WrapLogrus(logrusLogger)
	dlog.SetFallbackLogger(logger)
	return dlog.WithLogger(ctx, logger)
}

// SetLogrusLevel sets the log-level of the given logger from logLevelStr,
// falling back to info on an unparsable level.
func SetLogrusLevel(logrusLogger *logrus.Logger, logLevelStr string) {
	logLevel := logrus.InfoLevel
	if logLevelStr != "" {
		var err error
		if logLevel, err = logrus.ParseLevel(logLevelStr); err != nil {
			logLevel = logrus.InfoLevel
			logrusLogger.Errorf("%v, falling back to default %q", err, logLevel)
		}
	}
	logrusLogger.SetLevel(logLevel)
}

// Formatter formats log messages for the proxier.
type Formatter struct {
	timestampFormat string
}

func NewFormatter(timestampFormat string) *Formatter {
	return &Formatter{timestampFormat: timestampFormat}
}

// Format implements logrus.Formatter.
func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b *bytes.Buffer
	if entry.Buffer != nil {
		b = entry.Buffer
	} else {
		b = &bytes.Buffer{}
	}

	data := make(logrus.Fields, len(entry.Data))
	for k, v := range entry.Data {
		data[k] = v
	}
	goroutine, _ := data["THREAD"].(string)
	delete(data, "THREAD")

	if len(goroutine) > 0 {
		fmt.Fprintf(b, "%s %-*s %s : %s",
			entry.Time.Format(f.timestampFormat),
			len("warning"), entry.Level,
			strings.TrimPrefix(goroutine, "/"),
			entry.Message)
	} else {
		fmt.Fprintf(b, "%s %-*s %s",
			entry.Time.Format(f.timestampFormat),
			len("warning"), entry.Level,
			entry.Message)
	}

	if len(data) > 0 {
		b.WriteString(" :")
		keys := make([]string, 0, len(data))
		for key := range data {
			keys = append(keys, key)
		}
		sort.Slice(keys, func(i, j int) bool {
			// dexec fields come first, in a fixed order.
			orders := map[string]int{
				"dexec.pid":    -4,
				"dexec.stream": -3,
				"dexec.data":   -2,
				"dexec.err":    -1,
			}
			iOrd := orders[keys[i]]
			jOrd := orders[keys[j]]
			if iOrd != jOrd {
				return iOrd < jOrd
			}
			return keys[i] < keys[j]
		})
		for _, key := range keys {
			fmt.Fprintf(b, " %s=%q", key, fmt.Sprintf("%+v", data[key]))
		}
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}
