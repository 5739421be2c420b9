package filler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const signupPage = `<html><body><form>
<input type="email" name="email">
<input type="password" value="old">
<input type="password" name="confirm">
</form></body></html>`

func TestFillPasswordAndConfirmation(t *testing.T) {
	doc, err := ParseHTMLString(signupPage)
	require.NoError(t, err)

	ok, err := Fill(context.Background(), doc, "s3cret!Value")
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, "", doc.Input(0).Value())
	for _, i := range []int{1, 2} {
		in := doc.Input(i)
		assert.Equal(t, "s3cret!Value", in.Value())
		assert.True(t, in.Focused())
		assert.Equal(t, []string{"input", "change", "keyup", "paste", "input"}, in.Events())
	}
	assert.Contains(t, doc.String(), `name="confirm" value="s3cret!Value"`)
}

func TestFillHeuristicField(t *testing.T) {
	doc, err := ParseHTMLString(`<input name="user"><input placeholder="Enter pwd"><input type="text" id="secret2">`)
	require.NoError(t, err)

	ok, err := Fill(context.Background(), doc, "abc")
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, "", doc.Input(0).Value())
	assert.Equal(t, "abc", doc.Input(1).Value())
	assert.Equal(t, "", doc.Input(2).Value())
}

func TestFillNoCandidate(t *testing.T) {
	doc, err := ParseHTMLString(`<input type="email" name="email"><textarea name="password"></textarea>`)
	require.NoError(t, err)

	ok, err := Fill(context.Background(), doc, "abc")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, doc.Input(0).Events())
}

func TestFillCancelledContext(t *testing.T) {
	doc, err := ParseHTMLString(signupPage)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = Fill(ctx, doc, "abc")
	assert.ErrorIs(t, err, context.Canceled)
}

type brokenElement struct {
	field Field
}

func (b brokenElement) Field() Field { return b.field }
func (brokenElement) Focus(context.Context) error { return nil }
func (brokenElement) SetValue(context.Context, string) error { return nil }
func (brokenElement) SetNativeValue(context.Context, string) error { return nil }
func (brokenElement) Dispatch(context.Context, string) error { return errors.New("detached") }

type fixedDocument []Element

func (d fixedDocument) Inputs(context.Context) ([]Element, error) { return d, nil }

func TestFillPropagatesElementErrors(t *testing.T) {
	doc := fixedDocument{brokenElement{field: Field{Type: "password"}}}

	ok, err := Fill(context.Background(), doc, "abc")
	assert.False(t, ok)
	assert.ErrorContains(t, err, "detached")
}

func TestDetect(t *testing.T) {
	doc, err := ParseHTMLString(`
		<input type="password">
		<input name="new_password">
		<input id="PasswordRepeat">
		<input placeholder="password">
		<input type="text" name="pwd">`)
	require.NoError(t, err)

	n, err := Detect(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
