package charset

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/dshills/twine/internal/text/buffer"
	"github.com/dshills/twine/internal/text/codec"
	"github.com/dshills/twine/internal/text/view"
)

// ErrUnknownCharset indicates a name that is not a WHATWG charset label.
var ErrUnknownCharset = errors.New("unknown charset")

// Lookup returns the encoding for a charset name or label.
func Lookup(name string) (encoding.Encoding, error) {
	enc, err := htmlindex.Get(strings.TrimSpace(name))
	if err != nil {
		return nil, fmt.Errorf("charset %q: %w", name, ErrUnknownCharset)
	}
	return enc, nil
}

// Name returns the canonical name of a charset label.
func Name(name string) (string, error) {
	enc, err := Lookup(name)
	if err != nil {
		return "", err
	}
	canonical, err := htmlindex.Name(enc)
	if err != nil {
		return "", fmt.Errorf("charset %q: %w", name, err)
	}
	return canonical, nil
}

// ToUTF8 decodes src from the named charset into UTF-8. A leading BOM
// selects UTF-8 or UTF-16 and is stripped. Bytes the charset cannot map
// decode to U+FFFD.
func ToUTF8(name string, src []byte) ([]byte, error) {
	enc, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	out, _, err := transform.Bytes(unicode.BOMOverride(enc.NewDecoder()), src)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return out, nil
}

// FromUTF8 encodes UTF-8 text into the named charset. Characters the
// charset cannot represent are an error.
func FromUTF8(name string, src []byte) ([]byte, error) {
	enc, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	out, err := enc.NewEncoder().Bytes(src)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", name, err)
	}
	return out, nil
}

// Normalize decodes src from the named charset into a new buffer in enc.
func Normalize(name string, src []byte, enc codec.Encoding, opts ...buffer.Option) (*buffer.Buffer, error) {
	text, err := ToUTF8(name, src)
	if err != nil {
		return nil, err
	}
	b := buffer.New(enc, opts...)
	if err := b.AppendFrom(codec.UTF8, view.Of(text)); err != nil {
		return nil, fmt.Errorf("normalize %s to %s: %w", name, enc, err)
	}
	return b, nil
}
