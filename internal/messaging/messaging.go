// Package messaging carries popup requests to the page context and back.
package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/securepass/securepass-go/internal/model"
)

// ErrTransport means no usable response came back: the receiver was
// unreachable, failed, or answered with something that is not a response.
var ErrTransport = errors.New("message transport failed")

// Sender delivers a message and waits for the single response.
type Sender interface {
	Send(ctx context.Context, msg model.Message) (model.MessageResponse, error)
}

// Receiver handles a message on the page side.
type Receiver interface {
	Receive(ctx context.Context, msg model.Message) (model.MessageResponse, error)
}

// NewMessage builds a message with a fresh correlation id.
func NewMessage(action, password string) model.Message {
	return model.Message{ID: uuid.NewString(), Action: action, Password: password}
}

// Local delivers messages to an in-process receiver.
type Local struct {
	receiver Receiver
}

func NewLocal(r Receiver) *Local {
	return &Local{receiver: r}
}

func (l *Local) Send(ctx context.Context, msg model.Message) (model.MessageResponse, error) {
	if l.receiver == nil {
		return model.MessageResponse{}, fmt.Errorf("%w: no page attached", ErrTransport)
	}
	resp, err := l.receiver.Receive(ctx, msg)
	if err != nil {
		return model.MessageResponse{}, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	return resp, nil
}

// Client posts messages to a content agent over HTTP. When a page is attached
// with SetDocument it travels with every message that carries none, and the
// filled page returned by the agent replaces it.
type Client struct {
	url  string
	http *http.Client

	mu  sync.Mutex
	doc string
}

// NewClient targets url, e.g. http://localhost:8080/api/v1/content/message.
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{url: url, http: &http.Client{Timeout: timeout}}
}

// SetDocument attaches page HTML.
func (c *Client) SetDocument(doc string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.doc = doc
}

// Document returns the attached page, including any fills applied so far.
func (c *Client) Document() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.doc
}

func (c *Client) Send(ctx context.Context, msg model.Message) (model.MessageResponse, error) {
	attached := msg.Document == ""
	if attached {
		msg.Document = c.Document()
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return model.MessageResponse{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return model.MessageResponse{}, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return model.MessageResponse{}, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return model.MessageResponse{}, fmt.Errorf("%w: status %d", ErrTransport, res.StatusCode)
	}

	var out model.MessageResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return model.MessageResponse{}, fmt.Errorf("%w: decoding response: %w", ErrTransport, err)
	}
	if attached && out.Document != "" {
		c.SetDocument(out.Document)
	}
	return out, nil
}
