// Package notify implements the single-slot status notifier shown to the user.
//
// Every message gets a fresh token. The auto-hide timer of a message only hides
// it while its token is still current, so an old timer never hides a newer message.
package notify

import (
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// DefaultTimeout is how long a message stays visible.
const DefaultTimeout = 3 * time.Second

const tokenLength = 12

// Token identifies one notification.
type Token string

// Status is the state of the notification slot.
type Status struct {
	Token   Token
	Message string
	Visible bool
}

type Option func(*Notifier)

// WithTimeout sets the visibility window. A non-positive d disables auto-hide.
func WithTimeout(d time.Duration) Option {
	return func(n *Notifier) {
		n.timeout = d
	}
}

// WithOnChange registers a callback invoked after every change of the slot.
// It is called without the notifier lock held.
func WithOnChange(fn func(Status)) Option {
	return func(n *Notifier) {
		n.onChange = fn
	}
}

type Notifier struct {
	mu       sync.Mutex
	timeout  time.Duration
	current  Status
	onChange func(Status)
}

func New(opts ...Option) *Notifier {
	n := &Notifier{timeout: DefaultTimeout}

	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Notify replaces the current message with message and makes it visible.
func (n *Notifier) Notify(message string) Token {
	tok := Token(gonanoid.Must(tokenLength))

	n.mu.Lock()
	n.current = Status{Token: tok, Message: message, Visible: true}
	st := n.current
	n.mu.Unlock()

	if n.timeout > 0 {
		time.AfterFunc(n.timeout, func() {
			n.Hide(tok)
		})
	}

	n.changed(st)

	return tok
}

// Hide hides the message identified by tok. It reports false when tok is no
// longer current or the message is already hidden.
func (n *Notifier) Hide(tok Token) bool {
	n.mu.Lock()
	if n.current.Token != tok || !n.current.Visible {
		n.mu.Unlock()
		return false
	}
	n.current.Visible = false
	st := n.current
	n.mu.Unlock()

	n.changed(st)

	return true
}

// Current returns the state of the slot.
func (n *Notifier) Current() Status {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.current
}

func (n *Notifier) changed(st Status) {
	if n.onChange != nil {
		n.onChange(st)
	}
}
