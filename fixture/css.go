package fixture

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"

	"github.com/grindlemire/go-blockflow"
)

// DefaultScrollbarWidth is the gutter reserved for scrollbar-width: auto.
const DefaultScrollbarWidth = 15

// StyleParser turns inline CSS declarations into a Style.
type StyleParser struct {
	// ScrollbarWidth is used for scrollbar-width: auto and is halved for
	// thin. Zero means DefaultScrollbarWidth.
	ScrollbarWidth float32
	// Log receives unknown properties at debug level. Nil discards them.
	Log *zap.Logger
}

// ParseStyle parses src with a default StyleParser.
func ParseStyle(src string) (blockflow.Style, error) {
	return StyleParser{}.Parse(src)
}

// Parse parses a declaration list such as "width: 10px; margin: 0 auto".
// Properties start from their initial values. Unknown properties are
// skipped; invalid values of known properties are errors.
func (sp StyleParser) Parse(src string) (blockflow.Style, error) {
	s := blockflow.DefaultStyle()
	s.ScrollbarWidth = sp.scrollbarWidth()

	p := css.NewParser(parse.NewInputString(src), true)
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			err := p.Err()
			if errors.Is(err, io.EOF) {
				return s, nil
			}
			if err != nil {
				return s, fmt.Errorf("parsing style %q: %w", src, err)
			}
			return s, fmt.Errorf("parsing style %q: malformed declaration", src)
		case css.DeclarationGrammar:
			name := strings.ToLower(string(data))
			values := significant(p.Values())
			if err := sp.apply(&s, name, values); err != nil {
				return s, fmt.Errorf("%s: %w", name, err)
			}
		}
	}
}

func (sp StyleParser) scrollbarWidth() float32 {
	if sp.ScrollbarWidth > 0 {
		return sp.ScrollbarWidth
	}
	return DefaultScrollbarWidth
}

// significant drops whitespace, comments and a trailing !important.
func significant(tokens []css.Token) []css.Token {
	out := make([]css.Token, 0, len(tokens))
	for _, t := range tokens {
		if t.TokenType == css.WhitespaceToken || t.TokenType == css.CommentToken {
			continue
		}
		out = append(out, t)
	}
	if k := len(out); k >= 2 && isDelim(out[k-2], '!') && ident(out[k-1]) == "important" {
		out = out[:k-2]
	}
	return out
}

func (sp StyleParser) apply(s *blockflow.Style, name string, v []css.Token) error {
	if len(v) == 0 {
		return errors.New("missing value")
	}

	switch name {
	case "display":
		return keyword(v, &s.Display, map[string]blockflow.Display{
			"block": blockflow.DisplayBlock,
			"none":  blockflow.DisplayNone,
		})
	case "position":
		return keyword(v, &s.Position, map[string]blockflow.Position{
			"static":   blockflow.PositionRelative,
			"relative": blockflow.PositionRelative,
			"absolute": blockflow.PositionAbsolute,
		})
	case "box-sizing":
		return keyword(v, &s.BoxSizing, map[string]blockflow.BoxSizing{
			"border-box":  blockflow.BoxSizingBorderBox,
			"content-box": blockflow.BoxSizingContentBox,
		})
	case "text-align":
		return keyword(v, &s.TextAlign, textAligns)

	case "width":
		return single(v, &s.Width, sizeValue)
	case "height":
		return single(v, &s.Height, sizeValue)
	case "min-width":
		return single(v, &s.MinWidth, sizeValue)
	case "min-height":
		return single(v, &s.MinHeight, sizeValue)
	case "max-width":
		return single(v, &s.MaxWidth, maxSizeValue)
	case "max-height":
		return single(v, &s.MaxHeight, maxSizeValue)

	case "aspect-ratio":
		ratio, err := aspectRatio(v)
		if err != nil {
			return err
		}
		s.AspectRatio = ratio
		return nil

	case "inset":
		return shorthand(v, &s.Inset, autoValue)
	case "margin":
		return shorthand(v, &s.Margin, autoValue)
	case "padding":
		return shorthand(v, &s.Padding, nonNegative)
	case "border-width":
		return shorthand(v, &s.Border, nonNegative)
	case "border":
		return borderShorthand(v, sides(&s.Border)...)

	case "overflow":
		if len(v) > 2 {
			return errors.New("expected one or two values")
		}
		if err := keyword(v[:1], &s.OverflowX, overflows); err != nil {
			return err
		}
		return keyword(v[len(v)-1:], &s.OverflowY, overflows)
	case "overflow-x":
		return keyword(v, &s.OverflowX, overflows)
	case "overflow-y":
		return keyword(v, &s.OverflowY, overflows)

	case "scrollbar-width":
		return sp.applyScrollbarWidth(s, v)
	}

	if sd, prop, ok := splitSide(name); ok {
		switch prop {
		case "":
			return single(v, sideOf(&s.Inset, sd), autoValue)
		case "margin":
			return single(v, sideOf(&s.Margin, sd), autoValue)
		case "padding":
			return single(v, sideOf(&s.Padding, sd), nonNegative)
		case "border-width":
			return single(v, sideOf(&s.Border, sd), nonNegative)
		case "border":
			return borderShorthand(v, sideOf(&s.Border, sd))
		}
	}

	if sp.Log != nil {
		sp.Log.Debug("ignoring unsupported property", zap.String("property", name))
	}
	return nil
}

func (sp StyleParser) applyScrollbarWidth(s *blockflow.Style, v []css.Token) error {
	if len(v) != 1 {
		return errors.New("expected one value")
	}
	switch ident(v[0]) {
	case "auto":
		s.ScrollbarWidth = sp.scrollbarWidth()
		return nil
	case "thin":
		s.ScrollbarWidth = sp.scrollbarWidth() / 2
		return nil
	case "none":
		s.ScrollbarWidth = 0
		return nil
	}
	px, err := length(v[0])
	if err != nil {
		return err
	}
	if px < 0 {
		return fmt.Errorf("negative width %g", px)
	}
	s.ScrollbarWidth = px
	return nil
}

var textAligns = map[string]blockflow.TextAlign{
	"auto":           blockflow.TextAlignAuto,
	"start":          blockflow.TextAlignAuto,
	"left":           blockflow.TextAlignLeft,
	"-webkit-left":   blockflow.TextAlignLeft,
	"end":            blockflow.TextAlignRight,
	"right":          blockflow.TextAlignRight,
	"-webkit-right":  blockflow.TextAlignRight,
	"center":         blockflow.TextAlignCenter,
	"-webkit-center": blockflow.TextAlignCenter,
	"justify":        blockflow.TextAlignLeft,
}

// overflows maps CSS overflow keywords. Only scroll reserves a gutter.
var overflows = map[string]blockflow.Overflow{
	"visible": blockflow.OverflowVisible,
	"hidden":  blockflow.OverflowHidden,
	"clip":    blockflow.OverflowHidden,
	"auto":    blockflow.OverflowHidden,
	"scroll":  blockflow.OverflowScroll,
}

func keyword[T any](v []css.Token, dst *T, values map[string]T) error {
	if len(v) != 1 {
		return errors.New("expected one keyword")
	}
	k, ok := values[ident(v[0])]
	if !ok {
		return fmt.Errorf("unsupported value %q", v[0].Data)
	}
	*dst = k
	return nil
}

type valueParser func(css.Token) (blockflow.Value, error)

func single(v []css.Token, dst *blockflow.Value, fn valueParser) error {
	if len(v) != 1 {
		return errors.New("expected one value")
	}
	val, err := fn(v[0])
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

// shorthand expands one to four values in top, right, bottom, left order.
func shorthand(v []css.Token, dst *blockflow.EdgeValues, fn valueParser) error {
	if len(v) > 4 {
		return errors.New("expected at most four values")
	}
	vals := make([]blockflow.Value, len(v))
	for i, t := range v {
		val, err := fn(t)
		if err != nil {
			return err
		}
		vals[i] = val
	}
	switch len(vals) {
	case 1:
		*dst = blockflow.EdgeValuesAll(vals[0])
	case 2:
		*dst = blockflow.EdgeValuesSymmetric(vals[0], vals[1])
	case 3:
		*dst = blockflow.EdgeValuesTRBL(vals[0], vals[1], vals[2], vals[1])
	case 4:
		*dst = blockflow.EdgeValuesTRBL(vals[0], vals[1], vals[2], vals[3])
	}
	return nil
}

// borderShorthand takes the width from "border: 2px solid red" and
// ignores style and color. A missing width is medium (3px), and a style of
// none or hidden is a zero width.
func borderShorthand(v []css.Token, dst ...*blockflow.Value) error {
	width := blockflow.Length(3)
	for _, t := range v {
		switch ident(t) {
		case "none", "hidden":
			width = blockflow.Length(0)
			continue
		case "thin":
			width = blockflow.Length(1)
			continue
		case "medium":
			width = blockflow.Length(3)
			continue
		case "thick":
			width = blockflow.Length(5)
			continue
		}
		if t.TokenType == css.DimensionToken || t.TokenType == css.NumberToken {
			val, err := nonNegative(t)
			if err != nil {
				return err
			}
			width = val
		}
	}
	for _, d := range dst {
		*d = width
	}
	return nil
}

func aspectRatio(v []css.Token) (float32, error) {
	switch {
	case len(v) == 1 && ident(v[0]) == "auto":
		return 0, nil
	case len(v) == 1:
		return number(v[0])
	case len(v) == 3 && isDelim(v[1], '/'):
		w, err := number(v[0])
		if err != nil {
			return 0, err
		}
		h, err := number(v[2])
		if err != nil {
			return 0, err
		}
		if h == 0 {
			return 0, nil
		}
		return w / h, nil
	}
	return 0, errors.New("expected <number> or <number> / <number>")
}

func sizeValue(t css.Token) (blockflow.Value, error) {
	val, err := autoValue(t)
	if err == nil && !val.IsAuto() && val.Amount < 0 {
		return val, fmt.Errorf("negative size %q", t.Data)
	}
	return val, err
}

func maxSizeValue(t css.Token) (blockflow.Value, error) {
	if ident(t) == "none" {
		return blockflow.Auto(), nil
	}
	return sizeValue(t)
}

func nonNegative(t css.Token) (blockflow.Value, error) {
	val, err := lengthPercentage(t)
	if err == nil && val.Amount < 0 {
		return val, fmt.Errorf("negative value %q", t.Data)
	}
	return val, err
}

func autoValue(t css.Token) (blockflow.Value, error) {
	if ident(t) == "auto" {
		return blockflow.Auto(), nil
	}
	return lengthPercentage(t)
}

func lengthPercentage(t css.Token) (blockflow.Value, error) {
	if t.TokenType == css.PercentageToken {
		p, err := strconv.ParseFloat(strings.TrimSuffix(string(t.Data), "%"), 32)
		if err != nil {
			return blockflow.Value{}, fmt.Errorf("invalid percentage %q", t.Data)
		}
		return blockflow.Percent(float32(p) / 100), nil
	}
	px, err := length(t)
	if err != nil {
		return blockflow.Value{}, err
	}
	return blockflow.Length(px), nil
}

// length accepts px dimensions and unitless numbers.
func length(t css.Token) (float32, error) {
	switch t.TokenType {
	case css.NumberToken:
		return number(t)
	case css.DimensionToken:
		data := string(t.Data)
		i := len(data)
		for i > 0 && isLetter(data[i-1]) {
			i--
		}
		if unit := strings.ToLower(data[i:]); unit != "px" {
			return 0, fmt.Errorf("unsupported unit %q", unit)
		}
		v, err := strconv.ParseFloat(data[:i], 32)
		if err != nil {
			return 0, fmt.Errorf("invalid length %q", data)
		}
		return float32(v), nil
	}
	return 0, fmt.Errorf("expected a length, got %q", t.Data)
}

func number(t css.Token) (float32, error) {
	if t.TokenType != css.NumberToken {
		return 0, fmt.Errorf("expected a number, got %q", t.Data)
	}
	v, err := strconv.ParseFloat(string(t.Data), 32)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", t.Data)
	}
	return float32(v), nil
}

func ident(t css.Token) string {
	if t.TokenType != css.IdentToken {
		return ""
	}
	return strings.ToLower(string(t.Data))
}

func isDelim(t css.Token, c byte) bool {
	return t.TokenType == css.DelimToken && len(t.Data) == 1 && t.Data[0] == c
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

type side int

const (
	sideTop side = iota
	sideRight
	sideBottom
	sideLeft
)

var sideNames = map[string]side{
	"top":    sideTop,
	"right":  sideRight,
	"bottom": sideBottom,
	"left":   sideLeft,
}

// splitSide splits "margin-top" into (top, "margin") and
// "border-left-width" into (left, "border-width"). A bare side name such
// as "top" returns an empty property.
func splitSide(name string) (side, string, bool) {
	if s, ok := sideNames[name]; ok {
		return s, "", true
	}
	parts := strings.Split(name, "-")
	switch {
	case len(parts) == 2:
		s, ok := sideNames[parts[1]]
		return s, parts[0], ok
	case len(parts) == 3 && parts[0] == "border" && parts[2] == "width":
		s, ok := sideNames[parts[1]]
		return s, "border-width", ok
	}
	return 0, "", false
}

func sideOf(e *blockflow.EdgeValues, s side) *blockflow.Value {
	switch s {
	case sideTop:
		return &e.Top
	case sideRight:
		return &e.Right
	case sideBottom:
		return &e.Bottom
	default:
		return &e.Left
	}
}

func sides(e *blockflow.EdgeValues) []*blockflow.Value {
	return []*blockflow.Value{&e.Top, &e.Right, &e.Bottom, &e.Left}
}
