package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/securepass/securepass-go/internal/filler"
	"github.com/securepass/securepass-go/internal/model"
)

var (
	ErrUnknownAction = errors.New("unknown message action")
	ErrNoDocument    = errors.New("document is required")
)

// DocumentSource resolves the page a message applies to.
type DocumentSource interface {
	Document(ctx context.Context, msg model.Message) (filler.Document, error)
}

// HTMLSource parses the page carried in the message itself.
type HTMLSource struct{}

func (HTMLSource) Document(_ context.Context, msg model.Message) (filler.Document, error) {
	if msg.Document == "" {
		return nil, ErrNoDocument
	}
	return filler.ParseHTMLString(msg.Document)
}

// AttachedSource always answers with the same, already attached page.
type AttachedSource struct {
	Doc filler.Document
}

func (s AttachedSource) Document(context.Context, model.Message) (filler.Document, error) {
	if s.Doc == nil {
		return nil, ErrNoDocument
	}
	return s.Doc, nil
}

// ContentAgent is the page-side message handler.
type ContentAgent struct {
	source DocumentSource
}

func NewContentAgent(source DocumentSource) *ContentAgent {
	return &ContentAgent{source: source}
}

// Receive applies msg to its document. An unfilled page is a normal
// unsuccessful response, not an error.
func (a *ContentAgent) Receive(ctx context.Context, msg model.Message) (model.MessageResponse, error) {
	switch msg.Action {
	case model.ActionFillPassword:
		return a.fill(ctx, msg)
	case model.ActionDetectFields:
		return a.detect(ctx, msg)
	}
	return model.MessageResponse{}, fmt.Errorf("%w: %q", ErrUnknownAction, msg.Action)
}

func (a *ContentAgent) fill(ctx context.Context, msg model.Message) (model.MessageResponse, error) {
	if msg.Password == "" {
		return model.MessageResponse{Success: false, Error: ErrPasswordRequired.Error()}, nil
	}

	doc, err := a.source.Document(ctx, msg)
	if err != nil {
		return model.MessageResponse{}, err
	}

	ok, err := filler.Fill(ctx, doc, msg.Password)
	if err != nil {
		return model.MessageResponse{}, err
	}
	slog.Info("fill message handled", "id", msg.ID, "success", ok)

	resp := model.MessageResponse{Success: ok}
	if !ok {
		resp.Error = filler.ErrNoFieldFound.Error()
	}
	if html, isHTML := doc.(*filler.HTMLDocument); isHTML && msg.Document != "" {
		resp.Document = html.String()
	}
	return resp, nil
}

func (a *ContentAgent) detect(ctx context.Context, msg model.Message) (model.MessageResponse, error) {
	doc, err := a.source.Document(ctx, msg)
	if err != nil {
		return model.MessageResponse{}, err
	}

	n, err := filler.Detect(ctx, doc)
	if err != nil {
		return model.MessageResponse{}, err
	}
	return model.MessageResponse{Success: n > 0, Fields: n}, nil
}
