package filler

import (
	"context"
	"fmt"
	"io"

	"github.com/playwright-community/playwright-go"
)

// nativeSetterJS assigns through HTMLInputElement's prototype setter so that
// frameworks overriding the instance property still see the change.
const nativeSetterJS = `(el, value) => {
	const desc = Object.getOwnPropertyDescriptor(window.HTMLInputElement.prototype, 'value');
	if (desc && desc.set) { desc.set.call(el, value); }
}`

const directSetterJS = `(el, value) => { el.value = value; }`

// PageDocument adapts a live playwright page.
type PageDocument struct {
	page playwright.Page
}

func NewPageDocument(page playwright.Page) *PageDocument {
	return &PageDocument{page: page}
}

func (d *PageDocument) Inputs(ctx context.Context) ([]Element, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	handles, err := d.page.QuerySelectorAll("input")
	if err != nil {
		return nil, fmt.Errorf("selector query failed: %w", err)
	}

	out := make([]Element, 0, len(handles))
	for _, h := range handles {
		in, err := newPageInput(h)
		if err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, nil
}

type pageInput struct {
	handle playwright.ElementHandle
	field  Field
}

func newPageInput(h playwright.ElementHandle) (*pageInput, error) {
	attrs := map[string]*string{}
	in := &pageInput{handle: h}
	attrs["type"] = &in.field.Type
	attrs["name"] = &in.field.Name
	attrs["id"] = &in.field.ID
	attrs["placeholder"] = &in.field.Placeholder
	attrs["class"] = &in.field.Class
	attrs["data-testid"] = &in.field.TestID
	attrs["aria-label"] = &in.field.AriaLabel

	for name, dst := range attrs {
		v, err := h.GetAttribute(name)
		if err != nil {
			return nil, fmt.Errorf("reading attribute %s: %w", name, err)
		}
		*dst = v
	}
	return in, nil
}

func (in *pageInput) Field() Field { return in.field }

func (in *pageInput) Focus(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return in.handle.Focus()
}

func (in *pageInput) SetValue(ctx context.Context, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := in.handle.Evaluate(directSetterJS, value)
	return err
}

func (in *pageInput) SetNativeValue(ctx context.Context, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := in.handle.Evaluate(nativeSetterJS, value)
	return err
}

func (in *pageInput) Dispatch(ctx context.Context, event string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return in.handle.DispatchEvent(event)
}

// BrowserSession is a chromium page opened for filling.
type BrowserSession struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	Page    playwright.Page
}

// OpenPage starts playwright, installing its driver and browser on first use,
// and navigates a new page to url.
func OpenPage(url string, headless bool) (*BrowserSession, error) {
	opts := &playwright.RunOptions{
		Verbose: false,
		Stdout:  io.Discard,
		Stderr:  io.Discard,
	}
	if err := playwright.Install(opts); err != nil {
		return nil, fmt.Errorf("failed to install playwright: %w", err)
	}
	pw, err := playwright.Run(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: &headless,
	})
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	page, err := browser.NewPage()
	if err != nil {
		_ = browser.Close()
		_ = pw.Stop()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	if _, err := page.Goto(url); err != nil {
		_ = browser.Close()
		_ = pw.Stop()
		return nil, fmt.Errorf("navigation failed: %w", err)
	}

	return &BrowserSession{pw: pw, browser: browser, Page: page}, nil
}

// Document returns the session page as a fillable document.
func (s *BrowserSession) Document() *PageDocument {
	return NewPageDocument(s.Page)
}

// Close shuts the browser and the playwright driver down.
func (s *BrowserSession) Close() error {
	if err := s.browser.Close(); err != nil {
		_ = s.pw.Stop()
		return err
	}
	return s.pw.Stop()
}
