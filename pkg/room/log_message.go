package room

import (
	"context"

	"chatpoker/pkg/playable"
)

const logMessageLimit = 25

// addLogMessages keeps the most recent table log messages for clients that connect later
// Note: this must only be called from within the run loop
func (d *Dealer) addLogMessages(messages []*playable.LogMessage) {
	m := append(d.logMessages, messages...)
	count := len(m)
	if count > logMessageLimit {
		m = m[count-logMessageLimit:]
	}

	d.logMessages = m
}

// LogMessages returns the most recent table log messages
func (d *Dealer) LogMessages(ctx context.Context) ([]*playable.LogMessage, error) {
	var logs []*playable.LogMessage
	err := d.exec(ctx, func() error {
		logs = make([]*playable.LogMessage, len(d.logMessages))
		copy(logs, d.logMessages)
		return nil
	})

	return logs, err
}
