// Package ui holds the state of the link generator page: the generated link,
// the preview pane, the copy control and the status notifier. The Controller
// owns all of it; nothing else mutates page state.
package ui

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/vadimbarashkov/media-link/internal/entity"
	"github.com/vadimbarashkov/media-link/internal/notify"
)

// DefaultCopyRevert is how long the copy control stays confirmed.
const DefaultCopyRevert = 2 * time.Second

// Clipboard writes text to a clipboard.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

type linkUseCase interface {
	GenerateLink(origin, rawInput string) (*entity.ShareableLink, error)
}

type CopyState string

const (
	CopyIdle      CopyState = "idle"
	CopyConfirmed CopyState = "confirmed"
)

type CopyOutcome string

const (
	Copied     CopyOutcome = "copied"
	CopyFailed CopyOutcome = "failed"
)

// Preview is the content of the preview pane.
type Preview struct {
	Descriptor entity.PreviewDescriptor
	// Failed is set once the media failed to load; Placeholder is shown instead.
	Failed bool
}

// State is a snapshot of the page.
type State struct {
	Link        string
	ResultShown bool
	Preview     Preview
	CopyState   CopyState
	Status      notify.Status
}

type Option func(*Controller)

// WithCopyRevert sets how long the copy control stays confirmed after a copy.
func WithCopyRevert(d time.Duration) Option {
	return func(c *Controller) {
		c.copyRevert = d
	}
}

// WithLogger sets the logger used for diagnostics that are never shown to the user.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

type Controller struct {
	origin     string
	links      linkUseCase
	clipboard  Clipboard
	notifier   *notify.Notifier
	logger     *slog.Logger
	copyRevert time.Duration

	mu          sync.Mutex
	link        string
	resultShown bool
	preview     Preview
	copyState   CopyState
	copySeq     uint64
}

// New builds the controller for a page served at origin.
func New(origin string, links linkUseCase, clipboard Clipboard, notifier *notify.Notifier, opts ...Option) *Controller {
	c := &Controller{
		origin:     origin,
		links:      links,
		clipboard:  clipboard,
		notifier:   notifier,
		logger:     slog.Default(),
		copyRevert: DefaultCopyRevert,
		copyState:  CopyIdle,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Generate builds a link for rawInput and shows it with its preview. On a
// validation error the page is left as it was and a status message explains why.
func (c *Controller) Generate(rawInput string) (*entity.ShareableLink, error) {
	const op = "ui.Controller.Generate"

	link, err := c.links.GenerateLink(c.origin, rawInput)
	if err != nil {
		c.notifier.Notify(entity.StatusMessage(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	c.mu.Lock()
	c.link = link.Link
	c.resultShown = true
	c.preview = Preview{Descriptor: link.Preview}
	c.mu.Unlock()

	return link, nil
}

// PreviewFailed swaps the current preview for its placeholder and reports the
// failure. The generated link stays valid. It reports false if there is no
// preview or the failure was already handled.
func (c *Controller) PreviewFailed() bool {
	c.mu.Lock()
	if !c.resultShown || c.preview.Failed {
		c.mu.Unlock()
		return false
	}
	c.preview.Failed = true
	msg := c.preview.Descriptor.FailureMessage
	c.mu.Unlock()

	c.notifier.Notify(msg)

	return true
}

// RejectUpload answers a dropped or picked file with upload guidance.
func (c *Controller) RejectUpload() error {
	c.notifier.Notify(entity.MsgUnsupportedUpload)
	return entity.ErrUnsupportedUpload
}

// Copy writes the current link to the clipboard. On success the copy control
// is confirmed until the revert window passes. Clipboard errors are logged and
// replaced by a manual-copy hint.
func (c *Controller) Copy(ctx context.Context) (CopyOutcome, error) {
	const op = "ui.Controller.Copy"

	c.mu.Lock()
	link := c.link
	c.mu.Unlock()

	if link == "" {
		c.notifier.Notify(entity.MsgNothingToCopy)
		return CopyFailed, fmt.Errorf("%s: %w", op, entity.ErrNothingToCopy)
	}

	if err := c.clipboard.WriteText(ctx, link); err != nil {
		c.logger.Error("failed to copy link", slog.String("op", op), slog.Any("err", err))
		c.notifier.Notify(entity.MsgCopyFailed)
		return CopyFailed, fmt.Errorf("%s: %w: %w", op, entity.ErrClipboardFailure, err)
	}

	c.mu.Lock()
	c.copySeq++
	seq := c.copySeq
	c.copyState = CopyConfirmed
	c.mu.Unlock()

	time.AfterFunc(c.copyRevert, func() {
		c.mu.Lock()
		defer c.mu.Unlock()

		if c.copySeq == seq {
			c.copyState = CopyIdle
		}
	})

	c.notifier.Notify(entity.MsgCopied)

	return Copied, nil
}

// State returns a snapshot of the page.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return State{
		Link:        c.link,
		ResultShown: c.resultShown,
		Preview:     c.preview,
		CopyState:   c.copyState,
		Status:      c.notifier.Current(),
	}
}
