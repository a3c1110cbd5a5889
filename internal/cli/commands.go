package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dshills/twine/internal/text/buffer"
	"github.com/dshills/twine/internal/text/codec"
	"github.com/dshills/twine/internal/text/view"
)

// ErrInvalidText is returned by validate for malformed input.
var ErrInvalidText = errors.New("invalid text")

const staircaseIndent = 4

func (a *App) decodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [text...]",
		Short: "Print the codepoints of the text, one U+XXXX per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.input(args)
			if err != nil {
				return err
			}
			for _, c := range v.Codepoints(a.cfg.Text.Encoding()) {
				if _, err := fmt.Fprintf(a.Out, "U+%04X\n", uint32(c)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (a *App) encodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "encode codepoint...",
		Short: "Print the encoded bytes of each codepoint (U+00C1, 0xC1 or 193)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := a.cfg.Text.Encoding()
			scratch := make([]byte, 0, codec.MaxEncodedLength)
			for _, arg := range args {
				c, err := parseCodepoint(arg)
				if err != nil {
					return err
				}
				encoded, ok := codec.AppendEncoded(enc, scratch[:0], c)
				if !ok {
					return fmt.Errorf("U+%04X: %w", uint32(c), buffer.ErrInvalidCodepoint)
				}
				if _, err := fmt.Fprintf(a.Out, "U+%04X % X\n", uint32(c), encoded); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// parseCodepoint accepts U+XXXX, 0xXX or decimal notation.
func parseCodepoint(s string) (codec.Codepoint, error) {
	base := 0
	digits := s
	if rest, ok := strings.CutPrefix(strings.ToUpper(s), "U+"); ok {
		base = 16
		digits = rest
	}
	n, err := strconv.ParseUint(digits, base, 32)
	if err != nil {
		return 0, fmt.Errorf("parsing codepoint %q: %w", s, err)
	}
	return codec.Codepoint(n), nil
}

func (a *App) lenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "len [text...]",
		Short: "Print the length of the text in codepoints and bytes",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.input(args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(a.Out, "codepoints=%d bytes=%d\n", v.Length(a.cfg.Text.Encoding()), v.Len())
			return err
		},
	}
}

func (a *App) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [text...]",
		Short: "Check that the raw input is well-formed in the configured encoding",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := a.rawInput(args)
			if err != nil {
				return err
			}
			enc := a.cfg.Text.Encoding()
			v := view.Of(raw)
			if v.IsValid(enc) {
				_, err := fmt.Fprintf(a.Out, "valid %s: %d codepoints\n", enc, v.Length(enc))
				return err
			}

			rest := v
			for {
				step := view.NextStep(enc, &rest)
				if step.Status != view.Decoded {
					at := v.Len() - rest.Len()
					a.logger.Info("malformed %s at byte %d", enc, at)
					return fmt.Errorf("%w: malformed %s at byte %d", ErrInvalidText, enc, at)
				}
			}
		},
	}
}

type splitFlags struct {
	sep string
}

func (f *splitFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.sep, "sep", "s", " ", "separator codepoint")
}

func (a *App) splitCommand() *cobra.Command {
	var flags splitFlags
	cmd := &cobra.Command{
		Use:   "split [text...]",
		Short: "Print each piece of the text between separators on its own line",
		RunE: func(cmd *cobra.Command, args []string) error {
			sep, err := separator(flags.sep)
			if err != nil {
				return err
			}
			v, err := a.input(args)
			if err != nil {
				return err
			}
			enc := a.cfg.Text.Encoding()
			for !v.IsEmpty() {
				head, rest, _ := v.Split(enc, sep)
				if rest.Len() == v.Len() {
					return fmt.Errorf("malformed %s input", enc)
				}
				if err := a.writeLine(head); err != nil {
					return err
				}
				v = rest
			}
			return nil
		},
	}
	flags.register(cmd.Flags())
	return cmd
}

func separator(s string) (codec.Codepoint, error) {
	v := view.FromString(s)
	c, n := v.First(codec.UTF8)
	if n == 0 || n != v.Len() {
		return 0, fmt.Errorf("separator %q must be a single character", s)
	}
	return c, nil
}

func (a *App) sumCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sum [numbers...]",
		Short: "Add the whitespace-separated integers in the text",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.input(args)
			if err != nil {
				return err
			}
			enc := a.cfg.Text.Encoding()

			var total int64
			for !v.IsEmpty() {
				word, rest, _ := v.SplitBy(enc, view.IsSpace)
				if rest.Len() == v.Len() {
					return fmt.Errorf("malformed %s input", enc)
				}
				v = rest
				if word.IsEmpty() {
					continue
				}

				text, err := a.utf8(word)
				if err != nil {
					return err
				}
				n, err := strconv.ParseInt(text, 10, 64)
				if err != nil {
					return fmt.Errorf("sum: %q is not an integer", text)
				}
				a.logger.Debug("term %d", n)
				total += n
			}
			_, err = fmt.Fprintln(a.Out, total)
			return err
		},
	}
}

// utf8 returns v, in the configured encoding, as a Go string.
func (a *App) utf8(v view.View) (string, error) {
	out := buffer.DefaultPool.Get(codec.UTF8)
	defer buffer.DefaultPool.Put(out)
	if err := out.AppendFrom(a.cfg.Text.Encoding(), v); err != nil {
		return "", err
	}
	return out.String(), nil
}

type trimFlags struct {
	left  bool
	right bool
}

func (f *trimFlags) register(fs *pflag.FlagSet) {
	fs.BoolVarP(&f.left, "left", "l", false, "only trim leading whitespace")
	fs.BoolVarP(&f.right, "right", "r", false, "only trim trailing whitespace")
}

func (a *App) trimCommand() *cobra.Command {
	var flags trimFlags
	cmd := &cobra.Command{
		Use:   "trim [text...]",
		Short: "Print the text without leading and trailing whitespace, quoted",
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.left && flags.right {
				return errors.New("--left and --right are mutually exclusive")
			}
			v, err := a.input(args)
			if err != nil {
				return err
			}
			enc := a.cfg.Text.Encoding()
			switch {
			case flags.left:
				v = v.TrimLeft(enc)
			case flags.right:
				v = v.TrimRight(enc)
			default:
				v = v.Trim(enc)
			}
			if _, err := fmt.Fprint(a.Out, "'"); err != nil {
				return err
			}
			if err := a.write(v); err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.Out, "'")
			return err
		},
	}
	flags.register(cmd.Flags())
	return cmd
}

func (a *App) reverseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reverse [text...]",
		Short: "Print the text with its codepoints in reverse order",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.input(args)
			if err != nil {
				return err
			}
			enc := a.cfg.Text.Encoding()

			rev := buffer.NewWithCapacity(enc, v.Len(), a.cfg.Text.BufferOptions()...)
			for _, c := range v.Backward(enc) {
				if err := rev.Push(c); err != nil {
					return err
				}
			}
			return a.writeLine(rev.View())
		},
	}
}

func (a *App) staircaseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "staircase [text...]",
		Short: "Print one codepoint per line, each indented one step further (default text HI!)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"HI!"}
			}
			v, err := a.input(args)
			if err != nil {
				return err
			}
			enc := a.cfg.Text.Encoding()

			line := buffer.New(enc, buffer.WithGrowth(buffer.GrowthDouble))
			step := 0
			for _, c := range v.Codepoints(enc) {
				line.Clear()
				for range step * staircaseIndent {
					if err := line.Push(' '); err != nil {
						return err
					}
				}
				if err := line.Push(c); err != nil {
					return err
				}
				if err := a.writeLine(line.View()); err != nil {
					return err
				}
				step++
			}
			return nil
		},
	}
}
