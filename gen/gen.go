// Package gen generates enum type packages from a YAML manifest. Each
// generated type is an int-indexed enum with Index/Value projections, a
// Make factory, and an init that registers it with the default registry.
package gen

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dave/jennifer/jen"
	"github.com/go-openapi/inflect"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

// enumPkg is the import path of the runtime package generated code binds to.
const enumPkg = "github.com/rossjcooper/laravel-enum"

var titleCaser = cases.Title(language.English)

// Generate writes one Go file per enum in the manifest into outDir. Files
// are generated in parallel; the first failure cancels the remaining work.
func Generate(ctx context.Context, m *Manifest, outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("gen: create output directory: %w", err)
	}
	g, ctx := errgroup.WithContext(ctx)
	for _, def := range m.Enums {
		def := def
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return generateEnum(m.Package, def, outDir)
		})
	}
	return g.Wait()
}

// generateEnum renders, formats, and writes a single enum file.
func generateEnum(pkg string, def EnumDef, outDir string) error {
	name := filepath.Join(outDir, inflect.Underscore(def.Name)+".go")
	var buf bytes.Buffer
	if err := enumFile(pkg, def).Render(&buf); err != nil {
		return fmt.Errorf("gen: render %s: %w", def.Name, err)
	}
	src, err := imports.Process(name, buf.Bytes(), nil)
	if err != nil {
		return fmt.Errorf("gen: format %s: %w", def.Name, err)
	}
	if err := os.WriteFile(name, src, 0o644); err != nil {
		return fmt.Errorf("gen: write %s: %w", name, err)
	}
	return nil
}

// enumFile builds the jennifer file for a single enum type.
func enumFile(pkg string, def EnumDef) *jen.File {
	f := jen.NewFile(pkg)
	f.HeaderComment("Code generated by enumgen. DO NOT EDIT.")
	f.ImportName(enumPkg, "enum")

	typeName := def.Name
	valuesVar := unexported(typeName) + "Values"

	// Type definition.
	f.Commentf("%s is an enumerated attribute type.", typeName)
	f.Type().Id(typeName).Int()

	// Member constants, indexed from zero.
	f.Commentf("%s members.", typeName)
	f.Const().DefsFunc(func(defs *jen.Group) {
		for i, v := range def.Values {
			if i == 0 {
				defs.Id(memberName(def, v)).Id(typeName).Op("=").Id("iota")
			} else {
				defs.Id(memberName(def, v))
			}
		}
	})

	// Symbolic values, ordered by index.
	f.Var().Id(valuesVar).Op("=").Index(jen.Op("...")).String().ValuesFunc(func(vals *jen.Group) {
		for _, v := range def.Values {
			vals.Lit(v.symbolic())
		}
	})

	f.Commentf("Index returns the integer index of the %s member.", typeName)
	f.Func().Params(jen.Id("e").Id(typeName)).Id("Index").Params().Int().Block(
		jen.Return(jen.Int().Call(jen.Id("e"))),
	)

	f.Commentf("Value returns the symbolic string value of the %s member.", typeName)
	f.Func().Params(jen.Id("e").Id(typeName)).Id("Value").Params().String().Block(
		jen.Return(jen.Id(valuesVar).Index(jen.Id("e"))),
	)

	f.Comment("String implements fmt.Stringer.")
	f.Func().Params(jen.Id("e").Id(typeName)).Id("String").Params().String().Block(
		jen.Return(jen.Id("e").Dot("Value").Call()),
	)

	// Factory from either storage projection.
	f.Commentf("Make%s constructs a %s from its index or symbolic value.", typeName, typeName)
	f.Func().Id("Make"+typeName).Params(jen.Id("v").Any()).Params(jen.Id(typeName), jen.Error()).Block(
		jen.Switch(jen.Id("v").Op(":=").Id("v").Assert(jen.Type())).Block(
			jen.Case(jen.Int()).Block(
				jen.Return(jen.Id("make"+typeName+"Index").Call(jen.Id("v"))),
			),
			jen.Case(jen.Int64()).Block(
				jen.Return(jen.Id("make"+typeName+"Index").Call(jen.Int().Call(jen.Id("v")))),
			),
			jen.Case(jen.String()).Block(
				jen.For(jen.List(jen.Id("i"), jen.Id("s")).Op(":=").Range().Id(valuesVar)).Block(
					jen.If(jen.Id("s").Op("==").Id("v")).Block(
						jen.Return(jen.Id(typeName).Call(jen.Id("i")), jen.Nil()),
					),
				),
				jen.Return(jen.Lit(0), jen.Qual("fmt", "Errorf").Call(
					jen.Lit(pkg+": unknown "+typeName+" value %q"), jen.Id("v"),
				)),
			),
			jen.Default().Block(
				jen.Return(jen.Lit(0), jen.Qual("fmt", "Errorf").Call(
					jen.Lit(pkg+": invalid "+typeName+" primitive %v (%T)"), jen.Id("v"), jen.Id("v"),
				)),
			),
		),
	)

	f.Func().Id("make"+typeName+"Index").Params(jen.Id("v").Int()).Params(jen.Id(typeName), jen.Error()).Block(
		jen.If(jen.Id("v").Op("<").Lit(0).Op("||").Id("v").Op(">=").Len(jen.Id(valuesVar))).Block(
			jen.Return(jen.Lit(0), jen.Qual("fmt", "Errorf").Call(
				jen.Lit(pkg+": unknown "+typeName+" index %d"), jen.Id("v"),
			)),
		),
		jen.Return(jen.Id(typeName).Call(jen.Id("v")), jen.Nil()),
	)

	f.Func().Id("init").Params().Block(
		jen.Qual(enumPkg, "Register").Call(
			jen.Lit(typeName),
			jen.Qual(enumPkg, "NewType").Index(jen.Id(typeName)).Call(jen.Lit(typeName), jen.Id("Make"+typeName)),
		),
	)

	return f
}

// symbolic returns the member's stored string value, derived from the
// member name when the manifest leaves it implicit.
func (v ValueDef) symbolic() string {
	if v.Value != "" {
		return v.Value
	}
	return inflect.Underscore(v.Name)
}

// memberName returns the exported constant name for a member, prefixed with
// the type name to keep members of sibling enums from colliding. Explicit
// manifest names are used verbatim; implicit ones are title-cased from the
// symbolic value.
func memberName(def EnumDef, v ValueDef) string {
	if v.Name != "" {
		return def.Name + v.Name
	}
	words := strings.FieldsFunc(v.Value, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	for i, w := range words {
		words[i] = titleCaser.String(w)
	}
	return def.Name + strings.Join(words, "")
}

func unexported(s string) string {
	return strings.ToLower(s[:1]) + s[1:]
}
