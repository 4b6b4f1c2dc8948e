package worker

import (
	"context"
	"sync"
)

const portBuffer = 64

// Port is one page instance connected to the worker
type Port struct {
	worker   *Worker
	messages chan Message
	id       uint64

	// controlled принадлежит актору
	controlled bool
	closeOnce  sync.Once
}

// Messages delivers worker → page messages. The channel is closed when the
// port or the worker shuts down.
func (p *Port) Messages() <-chan Message {
	return p.messages
}

// Post sends a page → worker message and waits until the worker handled it
func (p *Port) Post(ctx context.Context, msg Message) error {
	return p.worker.call(ctx, func() error {
		return p.worker.handleMessage(ctx, msg)
	})
}

// Close disconnects the page
func (p *Port) Close() {
	p.closeOnce.Do(func() {
		_ = p.worker.call(context.Background(), func() error {
			p.worker.removePort(p)
			return nil
		})
	})
}
