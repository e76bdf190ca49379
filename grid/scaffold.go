package grid

import (
	"fmt"
	"sort"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
	"github.com/gosimple/slug"
	"github.com/maruel/natural"

	"github.com/tomsutton1984/lost/css"
	"github.com/tomsutton1984/lost/frac"
)

// defaultClassTemplate names scaffolded classes "name-numerator-denominator".
const defaultClassTemplate = "{{ .Name }}-{{ .Numerator }}-{{ .Denominator }}"

// ScaffoldSpec describes a generated class family: every numerator of
// a fixed denominator rendered through a class name template.
type ScaffoldSpec struct {
	// Name seeds the class names. It is slugified before templating.
	Name string
	// Denominator fixes the grid granularity; classes are generated for
	// numerators 1 through Denominator.
	Denominator int
	// ClassTemplate renders each class name. It receives Name,
	// Numerator and Denominator and may use the sprig function set.
	// Empty selects the default "name-numerator-denominator" shape.
	ClassTemplate string
}

type scaffoldValues struct {
	Name        string
	Numerator   int
	Denominator int
}

// Scaffold expands a spec into column rule sets for the whole class
// family, ordered naturally by class name so "col-2" sorts before
// "col-10" regardless of what the template rendered.
func Scaffold(spec ScaffoldSpec, opts Options) ([]css.Rule, error) {
	if spec.Denominator < 1 {
		return nil, fmt.Errorf("scaffold %q: denominator must be positive, got %d", spec.Name, spec.Denominator)
	}

	text := spec.ClassTemplate
	if text == "" {
		text = defaultClassTemplate
	}
	tmpl, err := template.New("scaffold").Funcs(sprig.FuncMap()).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("scaffold %q: bad class template: %w", spec.Name, err)
	}

	name := slug.Make(spec.Name)

	type entry struct {
		class    string
		fraction frac.Fraction
	}
	entries := make([]entry, 0, spec.Denominator)
	for n := 1; n <= spec.Denominator; n++ {
		f, err := frac.Parse(fmt.Sprintf("%d/%d", n, spec.Denominator))
		if err != nil {
			return nil, fmt.Errorf("scaffold %q: %w", spec.Name, err)
		}

		var sb strings.Builder
		err = tmpl.Execute(&sb, scaffoldValues{Name: name, Numerator: n, Denominator: spec.Denominator})
		if err != nil {
			return nil, fmt.Errorf("scaffold %q: rendering class name: %w", spec.Name, err)
		}
		entries = append(entries, entry{class: slug.Make(sb.String()), fraction: f})
	}

	sort.Slice(entries, func(i, j int) bool {
		return natural.Less(entries[i].class, entries[j].class)
	})

	var rules []css.Rule
	for _, e := range entries {
		rules = append(rules, Column("."+e.class, e.fraction, opts)...)
	}
	return rules, nil
}
