package translate

import (
	"context"
	"fmt"
	"time"

	"github.com/leofalp/aisdkstream/core/upstream"
)

// WithUpstreamTimeout wraps stream so iteration fails with an
// upstream-exception if no new item arrives within d of the previous one.
// The deadline resets on every item, since an upstream agent loop may run
// arbitrarily long as long as it keeps producing events.
func WithUpstreamTimeout(stream upstream.Stream, d time.Duration) upstream.Stream {
	return upstream.NewStream(func(yield func(upstream.Item, error) bool) {
		type msg struct {
			item upstream.Item
			err  error
		}

		items := make(chan msg)
		done := make(chan struct{})
		defer close(done)

		go func() {
			for item, err := range stream.Iter() {
				select {
				case items <- msg{item, err}:
				case <-done:
					return
				}
				if err != nil {
					return
				}
			}
			close(items)
		}()

		timer := time.NewTimer(d)
		defer timer.Stop()

		for {
			select {
			case m, open := <-items:
				if !open {
					return
				}
				if !timer.Stop() {
					<-timer.C
				}
				timer.Reset(d)
				if !yield(m.item, m.err) || m.err != nil {
					return
				}

			case <-timer.C:
				yield(upstream.Item{}, fmt.Errorf("translate: upstream idle for %s: %w", d, context.DeadlineExceeded))
				return
			}
		}
	})
}
