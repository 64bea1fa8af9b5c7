// Command glattribgen writes VertexLayout methods for vertex struct types, so
// that glutil.LayoutOf uses a layout fixed at compile time instead of
// deriving one by reflection.
//
// Usage:
//
//	//go:generate go run github.com/go-theft-auto/glutil/cmd/glattribgen -type Vertex
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"golang.org/x/tools/go/packages"
)

var (
	typeFlag = &cli.StringFlag{
		Name:     "type",
		Usage:    "comma-separated list of struct type names",
		Required: true,
	}
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file (default <type>_glattrib.go in the package directory)",
	}
)

func main() {
	app := &cli.App{
		Name:      "glattribgen",
		Usage:     "generate glutil vertex layouts for struct types",
		ArgsUsage: "[package directory]",
		Flags:     []cli.Flag{typeFlag, outputFlag},
		Action:    run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	dir := "."
	if ctx.NArg() > 0 {
		dir = ctx.Args().First()
	}
	pkg, err := loadPackage(dir)
	if err != nil {
		return err
	}

	var names []string
	for _, n := range strings.Split(ctx.String(typeFlag.Name), ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	if len(names) == 0 {
		return errors.New("-type names no types")
	}

	lts := make([]*layoutType, 0, len(names))
	for _, n := range names {
		lt, err := collectLayout(pkg.Types.Scope(), n)
		if err != nil {
			return err
		}
		lts = append(lts, lt)
	}
	out, err := generate(pkg.Name, lts)
	if err != nil {
		return err
	}

	output := ctx.String(outputFlag.Name)
	if output == "" {
		output = filepath.Join(dir, strings.ToLower(names[0])+"_glattrib.go")
	}
	return os.WriteFile(output, out, 0o644)
}

func loadPackage(dir string) (*packages.Package, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes,
		Dir:  dir,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, fmt.Errorf("load package: %w", err)
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("load package: %d packages in %s", len(pkgs), dir)
	}
	if errs := pkgs[0].Errors; len(errs) > 0 {
		return nil, fmt.Errorf("load package: %v", errs[0])
	}
	return pkgs[0], nil
}
