package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/dshills/twine/internal/charset"
	"github.com/dshills/twine/internal/text/buffer"
	"github.com/dshills/twine/internal/text/codec"
	"github.com/dshills/twine/internal/text/view"
)

// input returns the command's text as a view in the configured encoding.
// A trailing line break on standard input is dropped.
func (a *App) input(args []string) (view.View, error) {
	enc := a.cfg.Text.Encoding()

	if len(args) > 0 {
		b := buffer.New(enc, a.cfg.Text.BufferOptions()...)
		if err := b.AppendFrom(codec.UTF8, view.FromString(strings.Join(args, " "))); err != nil {
			return view.Null(), fmt.Errorf("reading arguments as %s: %w", enc, err)
		}
		return b.View(), nil
	}

	raw, err := io.ReadAll(a.In)
	if err != nil {
		return view.Null(), fmt.Errorf("reading stdin: %w", err)
	}
	b, err := charset.Normalize(a.cfg.Text.Charset, raw, enc, a.cfg.Text.BufferOptions()...)
	if err != nil {
		return view.Null(), fmt.Errorf("reading stdin: %w", err)
	}
	a.logger.Debug("read %d bytes of %s as %d bytes of %s", len(raw), a.cfg.Text.Charset, b.Len(), enc)
	return trimLineBreak(enc, b.View()), nil
}

// rawInput returns the command's bytes without any decoding.
func (a *App) rawInput(args []string) ([]byte, error) {
	if len(args) > 0 {
		return []byte(strings.Join(args, " ")), nil
	}
	raw, err := io.ReadAll(a.In)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return raw, nil
}

func trimLineBreak(enc codec.Encoding, v view.View) view.View {
	for _, want := range []codec.Codepoint{'\n', '\r'} {
		if c, n := v.Last(enc); n > 0 && c == want {
			v = v.Trunc(v.Len() - n)
		}
	}
	return v
}

// write transcodes v from the configured encoding to UTF-8 and writes it.
func (a *App) write(v view.View) error {
	out := buffer.DefaultPool.Get(codec.UTF8)
	defer buffer.DefaultPool.Put(out)

	if err := out.AppendFrom(a.cfg.Text.Encoding(), v); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	_, err := a.Out.Write(out.Bytes())
	return err
}

// writeLine is write followed by a newline.
func (a *App) writeLine(v view.View) error {
	if err := a.write(v); err != nil {
		return err
	}
	_, err := io.WriteString(a.Out, "\n")
	return err
}
