// Command gen reads catalogue.toml and emits catalogue_gen.go: the
// SensorKind/MotorKind/CoreKind enums and their ordered, case-sensitive
// lookup tables. Invoke via `go generate ./internal/corticalid` — see the
// //go:generate directive in ../doc.go.
//
// This replaces the original source's macro-based per-family code
// generation with Go's own code-generation idiom: a declarative table in,
// checked-in generated Go out.
package main

import (
	"flag"
	"fmt"
	"os"
	"text/template"

	"github.com/BurntSushi/toml"
)

type family struct {
	Kind string `toml:"kind"`
	Code string `toml:"code"`
	Name string `toml:"name"`
}

type coreEntry struct {
	ID   string `toml:"id"`
	Name string `toml:"name"`
}

type catalogue struct {
	Family []family    `toml:"family"`
	Core   []coreEntry `toml:"core"`
}

const tmplSource = `// Code generated by corticalid/gen. DO NOT EDIT.

package corticalid

// SensorKind enumerates the closed set of sensor families.
type SensorKind int

const (
	_ SensorKind = iota // zero value is intentionally not a valid SensorKind
{{- range .Sensors}}
	Sensor{{.Name}}
{{- end}}
)

// MotorKind enumerates the closed set of motor families.
type MotorKind int

const (
	_ MotorKind = iota // zero value is intentionally not a valid MotorKind
{{- range .Motors}}
	Motor{{.Name}}
{{- end}}
)

// CoreKind enumerates the closed set of core cortical identifiers.
type CoreKind int

const (
	_ CoreKind = iota // zero value is intentionally not a valid CoreKind
{{- range .Cores}}
	Core{{.Name}}
{{- end}}
)

type sensorCatalogueEntry struct {
	code string
	kind SensorKind
}

// sensorCatalogue is ordered and case-sensitive: iteration order here is
// the canonical order used by ListSensorFamilies.
var sensorCatalogue = []sensorCatalogueEntry{
{{- range .Sensors}}
	{code: "{{.Code}}", kind: Sensor{{.Name}}},
{{- end}}
}

type motorCatalogueEntry struct {
	code string
	kind MotorKind
}

// motorCatalogue is ordered and case-sensitive.
var motorCatalogue = []motorCatalogueEntry{
{{- range .Motors}}
	{code: "{{.Code}}", kind: Motor{{.Name}}},
{{- end}}
}

type coreCatalogueEntry struct {
	id   string
	kind CoreKind
}

// coreCatalogue is ordered; core identifiers are matched by exact 6-byte
// string equality.
var coreCatalogue = []coreCatalogueEntry{
{{- range .Cores}}
	{id: "{{.ID}}", kind: Core{{.Name}}},
{{- end}}
}
`

func main() {
	in := flag.String("in", "catalogue.toml", "path to catalogue.toml, relative to the package invoking go generate")
	out := flag.String("out", "catalogue_gen.go", "path to write the generated Go source")
	flag.Parse()

	data, err := os.ReadFile(*in)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var cat catalogue
	if _, err := toml.Decode(string(data), &cat); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var sensors, motors []family
	for _, f := range cat.Family {
		switch f.Kind {
		case "sensor":
			sensors = append(sensors, f)
		case "motor":
			motors = append(motors, f)
		default:
			fmt.Fprintf(os.Stderr, "unknown family kind %q for code %q\n", f.Kind, f.Code)
			os.Exit(1)
		}
	}

	tmpl, err := template.New("catalogue").Parse(tmplSource)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer f.Close()

	err = tmpl.Execute(f, map[string]any{
		"Sensors": sensors,
		"Motors":  motors,
		"Cores":   cat.Core,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
