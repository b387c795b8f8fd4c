package catalog

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// errorSink receives the screen-level error line of a catalog
type errorSink interface {
	setError(msg string)
	clearError()
}

// mutation is one write against the remote store, run as
// validate → submit → resynchronize. Local state changes only after the
// server confirmed the submit.
type mutation struct {
	name    string
	failure string

	validate    func() error
	submit      func(ctx context.Context) error
	onSubmitted func()
	resync      func(ctx context.Context) error
}

func (m mutation) run(ctx context.Context, sink errorSink) error {
	entry := log.WithField("operation", m.name)

	if m.validate != nil {
		if err := m.validate(); err != nil {
			entry.WithError(err).Debug("Rejected before submission")
			sink.setError(failureMessage(m.failure, err))
			return err
		}
	}

	if err := m.submit(ctx); err != nil {
		entry.WithFields(logrus.Fields{"error": err.Error()}).Warn("Remote operation failed")
		sink.setError(failureMessage(m.failure, err))
		return fmt.Errorf("%s: %w", m.name, err)
	}
	sink.clearError()
	if m.onSubmitted != nil {
		m.onSubmitted()
	}

	if m.resync != nil {
		return m.resync(ctx)
	}
	return nil
}
