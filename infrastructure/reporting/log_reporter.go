package reporting

import (
	"context"
	"strings"
	"time"

	"demoqa_automation/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// LogReporter writes one line when a step starts and one when it ends,
// indented by nesting depth.
type LogReporter struct {
	logger *logrus.Logger
}

type depthKey struct{ l *LogReporter }

// NewLogReporter - creates a reporter logging through logger
func NewLogReporter(logger *logrus.Logger) *LogReporter {
	return &LogReporter{logger: logger}
}

// Step - logs body as a step titled title
func (l *LogReporter) Step(ctx context.Context, title string, body func(ctx context.Context) error) (err error) {
	depth, _ := ctx.Value(depthKey{l}).(int)
	indent := strings.Repeat("  ", depth)
	entry := l.logger.WithFields(logrus.Fields{
		"step":  title,
		"depth": depth,
	})

	entry.Debugf("%s> %s", indent, title)
	start := time.Now()

	defer func() {
		rec := recover()
		entry := entry.WithField("duration", time.Since(start).Round(time.Millisecond))
		switch {
		case rec != nil:
			entry.WithField("status", "broken").Errorf("%s! %s: %v", indent, title, rec)
		case err != nil:
			entry.WithField("status", "failed").WithError(err).Errorf("%sx %s", indent, title)
		default:
			entry.WithField("status", "passed").Infof("%sv %s", indent, title)
		}
		if rec != nil {
			panic(rec)
		}
	}()

	return body(context.WithValue(ctx, depthKey{l}, depth+1))
}

var _ interfaces.StepReporter = (*LogReporter)(nil)
