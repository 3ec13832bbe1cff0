package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/grindlemire/go-blockflow"
	"github.com/grindlemire/go-blockflow/fixture"
	"github.com/grindlemire/go-blockflow/internal/observability"
)

type layoutOptions struct {
	format string
	trace  bool
	at     string
}

func newLayoutCmd(a *app) *cobra.Command {
	var opts layoutOptions

	cmd := &cobra.Command{
		Use:   "layout <fixture>",
		Short: "Lay out a fixture and print every box",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runLayout(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.format, "format", "f", "text", "output format: text or json")
	flags.BoolVar(&opts.trace, "trace", false, "log every node computation at debug level")
	flags.StringVar(&opts.at, "at", "", "also report the node at point x,y")
	flags.String("width", "", "viewport width: a number, min-content or max-content")
	flags.String("height", "", "viewport height: a number, min-content or max-content")
	mustBind(a.v, "layout.viewport_width", flags.Lookup("width"))
	mustBind(a.v, "layout.viewport_height", flags.Lookup("height"))
	return cmd
}

// mustBind binds a flag to a config key so the flag overrides the config
// file and environment. It panics when the flag does not exist.
func mustBind(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("binding flag to %s: %v", key, err))
	}
}

// box is one laid-out node as printed by the layout command.
type box struct {
	Name          string  `json:"name"`
	Text          string  `json:"text,omitempty"`
	X             float32 `json:"x"`
	Y             float32 `json:"y"`
	Width         float32 `json:"width"`
	Height        float32 `json:"height"`
	AbsX          float32 `json:"abs_x"`
	AbsY          float32 `json:"abs_y"`
	ContentWidth  float32 `json:"content_width"`
	ContentHeight float32 `json:"content_height"`
	Children      []*box  `json:"children,omitempty"`
}

func (a *app) runLayout(stdout, stderr io.Writer, path string, opts layoutOptions) error {
	if opts.format != "text" && opts.format != "json" {
		return fmt.Errorf("unknown format %q", opts.format)
	}

	fx, err := a.load(path)
	if err != nil {
		return err
	}
	available, err := fx.Available()
	if err != nil {
		return err
	}
	b, err := a.builder()
	if err != nil {
		return err
	}

	var layoutOpts []blockflow.Option
	if opts.trace {
		traceCfg := a.cfg.Logger
		traceCfg.Level = "debug"
		tracer, err := observability.NewLogger(traceCfg, zapcore.AddSync(stderr))
		if err != nil {
			return err
		}
		defer func() { _ = observability.Sync(tracer) }()
		layoutOpts = append(layoutOpts, blockflow.WithLogger(tracer.Named("layout")))
	}

	tree := blockflow.New()
	root, err := b.Build(tree, fx)
	if err != nil {
		return err
	}
	if err := tree.ComputeLayout(root, available, layoutOpts...); err != nil {
		return err
	}
	a.log.Debug("layout computed",
		zap.String("fixture", fx.Name),
		zap.Int("nodes", tree.Len()),
		zap.Stringer("width", available.Width),
		zap.Stringer("height", available.Height),
	)

	names := make(map[blockflow.NodeID]string)
	top, err := describe(tree, fx.Root, "root", names)
	if err != nil {
		return err
	}

	switch opts.format {
	case "json":
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(top); err != nil {
			return err
		}
	default:
		if err := writeText(stdout, top); err != nil {
			return err
		}
	}

	if opts.at != "" {
		x, y, err := parsePoint(opts.at)
		if err != nil {
			return err
		}
		if id, ok := tree.NodeAt(root, x, y); ok {
			fmt.Fprintf(stderr, "node at %g,%g: %s\n", x, y, names[id])
		} else {
			fmt.Fprintf(stderr, "node at %g,%g: none\n", x, y)
		}
	}
	return nil
}

func describe(tree *blockflow.Tree, n *fixture.Node, name string, names map[blockflow.NodeID]string) (*box, error) {
	id, _ := n.NodeID()
	l, err := tree.GetLayout(id)
	if err != nil {
		return nil, err
	}
	abs, err := tree.AbsoluteRect(id)
	if err != nil {
		return nil, err
	}
	if n.ID != "" {
		name = "#" + n.ID
	}
	names[id] = name

	b := &box{
		Name:          name,
		Text:          n.Text,
		X:             l.Location.X,
		Y:             l.Location.Y,
		Width:         l.Size.Width,
		Height:        l.Size.Height,
		AbsX:          abs.X,
		AbsY:          abs.Y,
		ContentWidth:  l.ContentSize.Width,
		ContentHeight: l.ContentSize.Height,
	}
	for i, child := range n.Children {
		c, err := describe(tree, child, fmt.Sprintf("%s/%d", strings.TrimPrefix(name, "#"), i), names)
		if err != nil {
			return nil, err
		}
		b.Children = append(b.Children, c)
	}
	return b, nil
}

func writeText(w io.Writer, top *box) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NODE\tX\tY\tWIDTH\tHEIGHT\tABS X\tABS Y")

	var write func(b *box, depth int)
	write = func(b *box, depth int) {
		label := strings.Repeat("  ", depth) + b.Name
		if b.Text != "" {
			label += fmt.Sprintf(" %q", b.Text)
		}
		fmt.Fprintf(tw, "%s\t%g\t%g\t%g\t%g\t%g\t%g\n", label, b.X, b.Y, b.Width, b.Height, b.AbsX, b.AbsY)
		for _, c := range b.Children {
			write(c, depth+1)
		}
	}
	write(top, 0)
	return tw.Flush()
}

func parsePoint(s string) (x, y float32, err error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("point %q: want x,y", s)
	}
	fx, err := strconv.ParseFloat(strings.TrimSpace(xs), 32)
	if err != nil {
		return 0, 0, fmt.Errorf("point %q: %w", s, err)
	}
	fy, err := strconv.ParseFloat(strings.TrimSpace(ys), 32)
	if err != nil {
		return 0, 0, fmt.Errorf("point %q: %w", s, err)
	}
	return float32(fx), float32(fy), nil
}
