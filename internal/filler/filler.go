package filler

import (
	"context"
	"errors"
	"fmt"
)

var ErrNoFieldFound = errors.New("no password field found")

// Events dispatched after the direct value assignment, in order.
var fillEvents = []string{"input", "change", "keyup", "paste"}

// Element is a writable input on a page.
type Element interface {
	Field() Field
	Focus(ctx context.Context) error
	// SetValue assigns the element's value directly.
	SetValue(ctx context.Context, value string) error
	// SetNativeValue assigns through the native property setter, which
	// frameworks that wrap the value property (React) still observe.
	SetNativeValue(ctx context.Context, value string) error
	Dispatch(ctx context.Context, event string) error
}

// Document exposes a page's inputs in document order.
type Document interface {
	Inputs(ctx context.Context) ([]Element, error)
}

// Fill writes value into the best password candidates of doc. It reports
// false with a nil error when the page has no candidate.
func Fill(ctx context.Context, doc Document, value string) (bool, error) {
	inputs, err := doc.Inputs(ctx)
	if err != nil {
		return false, fmt.Errorf("listing inputs: %w", err)
	}

	fields := make([]Field, len(inputs))
	for i, el := range inputs {
		fields[i] = el.Field()
		fields[i].Index = i
	}

	targets := Rank(fields).Targets()
	if len(targets) == 0 {
		return false, nil
	}

	for _, t := range targets {
		if err := Write(ctx, inputs[t.Index], value); err != nil {
			return false, fmt.Errorf("writing input %d: %w", t.Index, err)
		}
	}
	return true, nil
}

// Write clears el, sets value through both assignment paths and fires the
// notification events page scripts listen for.
func Write(ctx context.Context, el Element, value string) error {
	if err := el.Focus(ctx); err != nil {
		return err
	}
	if err := el.SetValue(ctx, ""); err != nil {
		return err
	}
	if err := el.SetValue(ctx, value); err != nil {
		return err
	}
	for _, ev := range fillEvents {
		if err := el.Dispatch(ctx, ev); err != nil {
			return err
		}
	}
	if err := el.SetNativeValue(ctx, value); err != nil {
		return err
	}
	return el.Dispatch(ctx, "input")
}

// Detect counts the inputs that are password-typed or named/identified as
// password fields.
func Detect(ctx context.Context, doc Document) (int, error) {
	inputs, err := doc.Inputs(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing inputs: %w", err)
	}

	n := 0
	for _, el := range inputs {
		if el.Field().isIndicated() {
			n++
		}
	}
	return n, nil
}
