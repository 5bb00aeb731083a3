// Command docxpkg inspects and round-trips Open Packaging Convention
// packages such as .docx files.
package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/alecthomas/kong"

	"github.com/benjaminschreck/go-docx/pkg/docx"
	"github.com/benjaminschreck/go-docx/pkg/docxerr"
	"github.com/benjaminschreck/go-docx/pkg/opc"
	"github.com/benjaminschreck/go-docx/pkg/oxml"
)

const version = "0.2.0"

// CLI defines the command-line interface for docxpkg.
type CLI struct {
	Config   string `name:"config" help:"YAML configuration file" type:"existingfile"`
	LogLevel string `name:"log-level" help:"Log level: debug, info, warn, error or off"`

	Parts        PartsCmd        `cmd:"" help:"List the parts reachable from the package relationships"`
	Rels         RelsCmd         `cmd:"" help:"List the relationships of the package or of one part"`
	ContentTypes ContentTypesCmd `cmd:"" name:"content-types" help:"Show the content type manifest the package would be saved with"`
	Digest       DigestCmd       `cmd:"" help:"Print the BLAKE3 digest of every part"`
	Query        QueryCmd        `cmd:"" help:"Evaluate an XPath expression against an XML part"`
	Roundtrip    RoundtripCmd    `cmd:"" help:"Load a package and save it again"`
	Version      VersionCmd      `cmd:"" help:"Print version information"`
}

// applyConfig installs the global configuration: defaults, then the
// config file, then the environment, then --log-level.
func (c *CLI) applyConfig() error {
	config := opc.ConfigFromEnvironment()
	if c.Config != "" {
		loaded, err := opc.LoadConfig(c.Config)
		if err != nil {
			return err
		}
		config = loaded
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	opc.SetGlobalConfig(config)
	return nil
}

func openPackage(path string) (*opc.Package, error) {
	return opc.Open(path, opc.WithPartFactory(docx.NewPartFactory()))
}

// PartsCmd lists parts.
type PartsCmd struct {
	Path    string `arg:"" help:"Package file or directory" type:"path"`
	Orphans bool   `help:"Also list zip entries no relationship reaches"`
}

func (c *PartsCmd) Run(ctx *kong.Context) error {
	pkg, err := openPackage(c.Path)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(ctx.Stdout, 0, 4, 2, ' ', 0)
	for part := range pkg.IterParts() {
		blob, err := part.Blob()
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\n", part.Partname(), part.ContentType(), len(blob))
	}
	if c.Orphans {
		for _, name := range pkg.Orphans() {
			fmt.Fprintf(tw, "%s\t(orphan)\t\n", name)
		}
	}
	return tw.Flush()
}

// RelsCmd lists relationships.
type RelsCmd struct {
	Path string `arg:"" help:"Package file or directory" type:"path"`
	Part string `help:"Partname whose relationships to list; the package relationships by default"`
}

func (c *RelsCmd) Run(ctx *kong.Context) error {
	pkg, err := openPackage(c.Path)
	if err != nil {
		return err
	}
	rels := pkg.Rels()
	if c.Part != "" {
		part, err := findPart(pkg, c.Part)
		if err != nil {
			return err
		}
		rels = part.Rels()
	}
	tw := tabwriter.NewWriter(ctx.Stdout, 0, 4, 2, ' ', 0)
	for _, r := range rels.All() {
		mode := "internal"
		if r.IsExternal() {
			mode = "external"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.RID(), r.RelType(), r.TargetRef(), mode)
	}
	return tw.Flush()
}

// ContentTypesCmd prints the manifest.
type ContentTypesCmd struct {
	Path string `arg:"" help:"Package file or directory" type:"path"`
}

func (c *ContentTypesCmd) Run(ctx *kong.Context) error {
	pkg, err := openPackage(c.Path)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(ctx.Stdout, 0, 4, 2, ' ', 0)
	for _, e := range pkg.ContentTypes() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Kind, e.Key, e.ContentType)
	}
	return tw.Flush()
}

// DigestCmd prints part digests in partname order.
type DigestCmd struct {
	Path string `arg:"" help:"Package file or directory" type:"path"`
}

func (c *DigestCmd) Run(ctx *kong.Context) error {
	pkg, err := openPackage(c.Path)
	if err != nil {
		return err
	}
	return printFingerprint(ctx.Stdout, pkg)
}

func printFingerprint(w io.Writer, pkg *opc.Package) error {
	fp, err := opc.Fingerprint(pkg)
	if err != nil {
		return err
	}
	names := make([]string, 0, len(fp))
	for name := range fp {
		names = append(names, string(name))
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "%s  %s\n", fp[opc.PackURI(name)], name)
	}
	return nil
}

// QueryCmd runs XPath against one part.
type QueryCmd struct {
	Path string `arg:"" help:"Package file or directory" type:"path"`
	Expr string `arg:"" help:"XPath 1.0 expression; the usual OOXML prefixes such as w, r and cp are predeclared"`
	Part string `help:"Partname to query; the main document part by default"`
	XML  bool   `name:"xml" help:"Print matching nodes as XML instead of their text"`
}

func (c *QueryCmd) Run(ctx *kong.Context) error {
	pkg, err := openPackage(c.Path)
	if err != nil {
		return err
	}
	var part opc.Part
	if c.Part != "" {
		part, err = findPart(pkg, c.Part)
	} else {
		part, err = pkg.MainDocumentPart()
	}
	if err != nil {
		return err
	}
	xp, ok := part.(interface{ Element() *oxml.Element })
	if !ok {
		return docxerr.NewInvalidArgument("part", string(part.Partname()), "not an XML part")
	}
	matches, err := oxml.Query(xp.Element(), c.Expr)
	if err != nil {
		return err
	}
	for _, m := range matches {
		if c.XML {
			fmt.Fprintln(ctx.Stdout, m.XML)
		} else {
			fmt.Fprintln(ctx.Stdout, m.Text)
		}
	}
	return nil
}

// RoundtripCmd loads a package and saves it, then checks the saved copy
// loads to the same parts.
type RoundtripCmd struct {
	Path string `arg:"" help:"Package file or directory" type:"path"`
	Out  string `arg:"" help:"Output .docx path" type:"path"`
}

func (c *RoundtripCmd) Run(ctx *kong.Context) error {
	pkg, err := openPackage(c.Path)
	if err != nil {
		return err
	}
	if err := pkg.SaveFile(c.Out); err != nil {
		return err
	}
	saved, err := openPackage(c.Out)
	if err != nil {
		return fmt.Errorf("saved package does not load: %w", err)
	}

	want, err := opc.Fingerprint(pkg)
	if err != nil {
		return err
	}
	got, err := opc.Fingerprint(saved)
	if err != nil {
		return err
	}
	var changed []string
	for name, d := range want {
		if got[name] != d {
			changed = append(changed, string(name))
		}
	}
	for name := range got {
		if _, ok := want[name]; !ok {
			changed = append(changed, string(name))
		}
	}
	if len(changed) > 0 {
		sort.Strings(changed)
		return fmt.Errorf("round trip changed %d part(s): %v", len(changed), changed)
	}
	fmt.Fprintf(ctx.Stdout, "wrote %d parts to %s\n", len(want), c.Out)
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run(ctx *kong.Context) error {
	fmt.Fprintf(ctx.Stdout, "docxpkg version %s\n", version)
	return nil
}

func findPart(pkg *opc.Package, name string) (opc.Part, error) {
	partname, err := opc.NewPackURI(name)
	if err != nil {
		return nil, err
	}
	part, ok := pkg.PartByName(partname)
	if !ok {
		return nil, docxerr.NewInvalidArgument("part", name, "no such part in the package")
	}
	return part, nil
}

func newParser(cli *CLI, stdout, stderr io.Writer, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("docxpkg"),
		kong.Description("Inspect and round-trip Office Open XML packages"),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	}, options...)
	return kong.New(cli, options...)
}

// run parses args and executes the selected command.
func run(args []string, stdout, stderr io.Writer, options ...kong.Option) error {
	var cli CLI
	parser, err := newParser(&cli, stdout, stderr, options...)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	if err := cli.applyConfig(); err != nil {
		return err
	}
	return ctx.Run()
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "docxpkg: %v\n", err)
		os.Exit(1)
	}
}
