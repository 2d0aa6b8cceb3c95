// Package share exports a report out of the application through a chain of
// decreasingly capable channels: a system share command handling the PDF, a
// plain-text file export, and finally the clipboard. The first channel that
// succeeds wins; a channel that is unavailable or cancelled passes the
// content to the next one, while a real failure aborts the chain.
package share

import (
	"context"
	"errors"
)

//go:generate mockgen -source=share.go -destination=../mock/sharer_mock.go -package=mock

var (
	// ErrShareUnavailable means the channel cannot run on this machine at
	// all (missing command, no clipboard). The chain moves on.
	ErrShareUnavailable = errors.New("share channel unavailable")

	// ErrShareCancelled means the user dismissed the channel. The chain
	// moves on, matching how an aborted native share dialog behaves.
	ErrShareCancelled = errors.New("share cancelled")
)

// Content is what gets shared. PDF may be nil when the report has none; text
// channels ignore it.
type Content struct {
	Title string
	Text  string
	PDF   []byte
}

// Sharer is one channel in the chain.
type Sharer interface {
	// Name identifies the channel in logs and user feedback.
	Name() string

	// Share pushes content out. Returns ErrShareUnavailable or
	// ErrShareCancelled to yield to the next channel; any other error is
	// final.
	Share(ctx context.Context, content Content) error
}

// Chain tries each sharer in order. It returns the name of the channel that
// succeeded, or the first final error, or ErrShareUnavailable when every
// channel yielded.
func Chain(ctx context.Context, content Content, sharers ...Sharer) (string, error) {
	for _, sharer := range sharers {
		err := sharer.Share(ctx, content)
		if err == nil {
			return sharer.Name(), nil
		}
		if errors.Is(err, ErrShareUnavailable) || errors.Is(err, ErrShareCancelled) {
			continue
		}
		return sharer.Name(), err
	}
	return "", ErrShareUnavailable
}
