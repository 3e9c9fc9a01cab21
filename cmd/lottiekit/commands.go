package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/urfave/cli/v2"
	"gitlab.com/tozd/go/errors"

	"github.com/lottiebuilder/lottie-go"
	"github.com/lottiebuilder/lottie-go/internal/clog"
	"github.com/lottiebuilder/lottie-go/lottiejson"
	"github.com/lottiebuilder/lottie-go/query"
)

var outputFlag = &cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "write the result to `FILE` instead of stdout"}

var infoCommand = &cli.Command{
	Name:      "info",
	Usage:     "print composition properties",
	ArgsUsage: "FILE",
	Action: func(c *cli.Context) error {
		comp, err := load(c.Context, c.Args().First())
		if err != nil {
			return err
		}
		label := color.New(color.Bold).Sprint
		w := c.App.Writer
		fmt.Fprintf(w, "%s %s\n", label("name:   "), comp.Name())
		fmt.Fprintf(w, "%s %s\n", label("version:"), comp.Version())
		fmt.Fprintf(w, "%s %gx%g\n", label("size:   "), comp.Width(), comp.Height())
		fmt.Fprintf(w, "%s %g\n", label("fps:    "), comp.FrameRate())
		ip, _ := comp.InPoint()
		op, _ := comp.OutPoint()
		fmt.Fprintf(w, "%s %g-%g\n", label("frames: "), ip, op)
		fmt.Fprintf(w, "%s %d\n", label("layers: "), len(comp.Layers()))
		fmt.Fprintf(w, "%s %d\n", label("assets: "), len(comp.Assets()))
		fmt.Fprintf(w, "%s %d\n", label("markers:"), len(comp.Markers()))
		if m := comp.Meta(); m != nil && m.Generator() != "" {
			fmt.Fprintf(w, "%s %s\n", label("generator:"), m.Generator())
		}
		return nil
	},
}

var layersCommand = &cli.Command{
	Name:      "layers",
	Usage:     "list layers, optionally filtered",
	ArgsUsage: "FILE",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "where", Aliases: []string{"w"}, Usage: "filter `EXPR`, e.g. 'type == \"text\" && !hidden'"},
	},
	Action: func(c *cli.Context) error {
		comp, err := load(c.Context, c.Args().First())
		if err != nil {
			return err
		}
		layers := comp.Layers()
		if where := c.String("where"); where != "" {
			f, err := query.Compile(where)
			if err != nil {
				return err
			}
			if layers, err = f.Select(layers); err != nil {
				return err
			}
		}

		hidden := color.New(color.FgHiBlack, color.Faint)
		kind := color.New(color.FgCyan)
		for _, l := range layers {
			p := l.Position()
			line := fmt.Sprintf("%3d  %s %-24s x=%g y=%g o=%g", l.Index(), kind.Sprintf("%-16s", l.Type()), l.Name(), p.X, p.Y, l.Opacity())
			if ref := l.RefID(); ref != "" {
				line += " ref=" + ref
			}
			if l.IsHidden() {
				line = hidden.Sprintf("%s (hidden)", line)
			}
			fmt.Fprintln(c.App.Writer, line)
		}
		return nil
	},
}

var exportCommand = &cli.Command{
	Name:      "export",
	Usage:     "write the composition without hidden layers",
	ArgsUsage: "FILE",
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "prune", Usage: "also drop assets no layer uses"},
		outputFlag,
	},
	Action: func(c *cli.Context) error {
		comp, err := load(c.Context, c.Args().First())
		if err != nil {
			return err
		}
		var opts []lottie.ExportOption
		if c.Bool("prune") || configFrom(c.Context).Export.PruneUnused {
			opts = append(opts, lottie.WithPruneUnusedAssets())
		}
		doc, err := comp.Export(opts...)
		if err != nil {
			return err
		}
		return write(c, doc)
	},
}

var importCommand = &cli.Command{
	Name:      "import",
	Aliases:   []string{"merge"},
	Usage:     "add another composition as a precomposition layer",
	ArgsUsage: "TARGET SOURCE",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "name", Usage: "layer name, defaults to the source name"},
		&cli.IntFlag{Name: "index", Usage: "layer position"},
		&cli.Float64Flag{Name: "x", Usage: "layer x position"},
		&cli.Float64Flag{Name: "y", Usage: "layer y position"},
		&cli.Float64Flag{Name: "scale", Value: 1, Usage: "layer scale factor"},
		outputFlag,
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 2 {
			return errors.New("import: expected TARGET and SOURCE")
		}
		comp, err := load(c.Context, c.Args().Get(0))
		if err != nil {
			return err
		}
		src, err := load(c.Context, c.Args().Get(1))
		if err != nil {
			return err
		}

		name := c.String("name")
		if name == "" {
			name = src.Name()
		}
		if name == "" {
			name = "Imported"
		}
		transform := lottie.TransformOptions{Scale: lottie.Float(c.Float64("scale"))}
		if c.IsSet("x") {
			transform.X = lottie.Float(c.Float64("x"))
		}
		if c.IsSet("y") {
			transform.Y = lottie.Float(c.Float64("y"))
		}

		l, err := comp.AddLottieLayer(name, src.Document(), transform, c.Int("index"))
		if err != nil {
			return err
		}
		clog.Ctx(c.Context).InfoContext(c.Context, "imported composition", "layer", l.Name(), "asset", l.RefID())
		return write(c, comp.Document())
	},
}

var patchCommand = &cli.Command{
	Name:      "patch",
	Usage:     "apply a JSON patch (RFC 6902) or merge patch (RFC 7386)",
	ArgsUsage: "FILE PATCH",
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "merge", Usage: "read PATCH as a merge patch"},
		outputFlag,
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 2 {
			return errors.New("patch: expected FILE and PATCH")
		}
		comp, err := load(c.Context, c.Args().Get(0))
		if err != nil {
			return err
		}
		patch, err := readInput(c.Args().Get(1))
		if err != nil {
			return err
		}
		if c.Bool("merge") {
			err = comp.ApplyMergePatch(patch)
		} else {
			err = comp.ApplyPatch(patch)
		}
		if err != nil {
			return err
		}
		return write(c, comp.Document())
	},
}

var diffCommand = &cli.Command{
	Name:      "diff",
	Usage:     "print the merge patch turning FROM into TO",
	ArgsUsage: "FROM TO",
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "text", Usage: "print a line diff of the indented documents instead"},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 2 {
			return errors.New("diff: expected FROM and TO")
		}
		from, err := load(c.Context, c.Args().Get(0))
		if err != nil {
			return err
		}
		to, err := load(c.Context, c.Args().Get(1))
		if err != nil {
			return err
		}

		if !c.Bool("text") {
			patch, err := from.Diff(to)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.App.Writer, string(patch))
			return err
		}

		a, err := lottiejson.MarshalIndent(from.Document(), "", "  ")
		if err != nil {
			return err
		}
		b, err := lottiejson.MarshalIndent(to.Document(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprint(c.App.Writer, lineDiff(string(a), string(b)))
		return nil
	},
}

var validateCommand = &cli.Command{
	Name:      "validate",
	Usage:     "check asset references, layer types and parents",
	ArgsUsage: "FILE...",
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "strict", Usage: "also reject unknown fields and index drift"},
		&cli.BoolFlag{Name: "require-version", Usage: "require a supported bodymovin version"},
	},
	Action: func(c *cli.Context) error {
		var opts []lottie.ValidateOption
		if c.Bool("strict") {
			opts = append(opts, lottie.WithRejectUnknownFields(), lottie.WithCheckIndexes())
		}
		if c.Bool("require-version") {
			opts = append(opts, lottie.WithRequireSupportedVersion())
		}

		ok := color.New(color.FgGreen).Sprint("ok")
		failed := 0
		for _, path := range c.Args().Slice() {
			comp, err := load(c.Context, path)
			if err == nil {
				err = comp.Validate(opts...)
			}
			if err != nil {
				failed++
				fmt.Fprintf(c.App.Writer, "%s: %s\n", path, color.New(color.FgRed).Sprint(err))
				continue
			}
			fmt.Fprintf(c.App.Writer, "%s: %s\n", path, ok)
		}
		if failed > 0 {
			return cli.Exit(fmt.Sprintf("%d of %d files invalid", failed, c.NArg()), 1)
		}
		return nil
	},
}

// lineDiff renders a colored line diff of a and b.
func lineDiff(a, b string) string {
	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	add := color.New(color.FgGreen)
	del := color.New(color.FgRed)
	var out strings.Builder
	for _, d := range diffs {
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			switch d.Type {
			case diffmatchpatch.DiffInsert:
				out.WriteString(add.Sprint("+ " + line))
			case diffmatchpatch.DiffDelete:
				out.WriteString(del.Sprint("- " + line))
			default:
				out.WriteString("  " + line)
			}
		}
	}
	return out.String()
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		b, err := io.ReadAll(os.Stdin)
		return b, errors.WithStack(err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("read %s: %w", path, err)
	}
	return b, nil
}

func load(ctx context.Context, path string) (*lottie.Composition, error) {
	b, err := readInput(path)
	if err != nil {
		return nil, err
	}
	ids, err := configFrom(ctx).IDGenerator()
	if err != nil {
		return nil, err
	}
	comp, err := lottie.Parse(b,
		lottie.WithIDGenerator(ids),
		lottie.WithLogger(clog.Ctx(ctx).With("file", path)),
	)
	if err != nil {
		return nil, errors.Errorf("%s: %w", path, err)
	}
	return comp, nil
}

func write(c *cli.Context, doc lottie.Object) error {
	indent := configFrom(c.Context).Indent
	var (
		b   []byte
		err error
	)
	if indent == "" {
		b, err = lottiejson.Marshal(doc)
	} else {
		b, err = lottiejson.MarshalIndent(doc, "", indent)
	}
	if err != nil {
		return err
	}
	b = append(b, '\n')

	if out := c.String("output"); out != "" {
		return errors.WithStack(os.WriteFile(out, b, 0o644))
	}
	_, err = c.App.Writer.Write(b)
	return errors.WithStack(err)
}
