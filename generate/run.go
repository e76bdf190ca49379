// Package generate implements the generate subcommand: it expands
// configured scaffolds and rules into CSS and writes the resulting
// stylesheet to its destination.
package generate

import (
	"context"
	"fmt"
	"os"
	"runtime"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/tomsutton1984/lost/calc"
	"github.com/tomsutton1984/lost/config"
	"github.com/tomsutton1984/lost/css"
	"github.com/tomsutton1984/lost/frac"
	"github.com/tomsutton1984/lost/grid"
	"github.com/tomsutton1984/lost/misc"
	"github.com/tomsutton1984/lost/state"
)

// Run is the generate command entry point.
func Run(ctx context.Context, cmd *cli.Command) error {

	env := state.EnvFromContext(ctx)
	env.Overwrite = cmd.Bool("overwrite")

	log := env.Log.Named("generate")

	if src := env.Cfg.Sheet.Source; src != "" {
		if err := env.Rpt.StoreCopy("base.css", src); err != nil {
			log.Warn("Unable to copy base stylesheet into report", zap.String("source", src), zap.Error(err))
		}
	}

	sheet, err := Build(env.Cfg, log)
	if err != nil {
		return err
	}
	if env.Cfg.Sheet.Banner {
		// banner goes on top of whatever the base sheet contributed
		sheet.Items = append([]css.Item{{Comment: banner(env)}}, sheet.Items...)
	}

	dest := env.Cfg.Sheet.Destination
	if cmd.Args().Len() > 0 {
		dest = cmd.Args().Get(0)
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	if dest == "" || dest == "-" {
		if _, err := sheet.WriteTo(os.Stdout); err != nil {
			return fmt.Errorf("unable to write stylesheet to stdout: %w", err)
		}
		log.Debug("Stylesheet written", zap.String("destination", "STDOUT"))
		return nil
	}

	if !env.Overwrite {
		if _, err := os.Stat(dest); err == nil {
			return fmt.Errorf("destination '%s' already exists (use --overwrite to replace it)", dest)
		}
	}

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("unable to create destination file '%s': %w", dest, err)
	}
	defer out.Close()

	n, err := sheet.WriteTo(out)
	if err != nil {
		return fmt.Errorf("unable to write stylesheet to '%s': %w", dest, err)
	}
	env.Rpt.Store("output.css", dest)

	log.Info("Stylesheet written", zap.String("destination", dest), zap.Int64("bytes", n))
	return nil
}

// Build assembles the output stylesheet: the optional base sheet first,
// then scaffolded class families, then individual rules.
func Build(cfg *config.Config, log *zap.Logger) (*css.Stylesheet, error) {
	if log == nil {
		log = zap.NewNop()
	}

	gutter, err := calc.ParseGutter(cfg.Grid.Gutter)
	if err != nil {
		return nil, err
	}
	opts := grid.Options{
		Gutter:    gutter,
		Direction: cfg.Grid.Direction,
		Mode:      cfg.Grid.Mode,
		Cycle:     cfg.Grid.Cycle,
	}

	sheet := &css.Stylesheet{}
	if cfg.Sheet.Source != "" {
		data, err := os.ReadFile(cfg.Sheet.Source)
		if err != nil {
			return nil, fmt.Errorf("unable to read base stylesheet '%s': %w", cfg.Sheet.Source, err)
		}
		sheet = css.NewReader(log).Read(data, cfg.Sheet.Source)
		for _, w := range sheet.Warnings {
			log.Warn("Base stylesheet", zap.String("source", cfg.Sheet.Source), zap.String("warning", w))
		}
	}

	for _, s := range cfg.Scaffolds {
		rules, err := grid.Scaffold(grid.ScaffoldSpec{
			Name:          s.Name,
			Denominator:   s.Denominator,
			ClassTemplate: s.ClassTemplate,
		}, opts)
		if err != nil {
			return nil, err
		}
		log.Debug("Scaffold expanded", zap.String("name", s.Name), zap.Int("rules", len(rules)))
		sheet.Append(rules...)
	}

	for i, rc := range cfg.Rules {
		rules, err := applyRule(rc, opts)
		if err != nil {
			return nil, fmt.Errorf("rule %d (%s %s): %w", i+1, rc.Mixin, rc.Selector, err)
		}
		sheet.Append(rules...)
	}
	return sheet, nil
}

// applyRule dispatches a single configured rule to its mixin.
func applyRule(rc config.RuleConfig, opts grid.Options) ([]css.Rule, error) {
	if rc.Cycle > 0 {
		opts.Cycle = rc.Cycle
	}

	needsFraction := func() (frac.Fraction, error) {
		if rc.Fraction == "" {
			return frac.Fraction{}, fmt.Errorf("mixin %q requires a fraction", rc.Mixin)
		}
		return frac.Parse(rc.Fraction)
	}

	switch rc.Mixin {
	case "column":
		f, err := needsFraction()
		if err != nil {
			return nil, err
		}
		return grid.Column(rc.Selector, f, opts), nil
	case "row":
		f, err := needsFraction()
		if err != nil {
			return nil, err
		}
		return grid.Row(rc.Selector, f, opts), nil
	case "waffle":
		f, err := needsFraction()
		if err != nil {
			return nil, err
		}
		return grid.Waffle(rc.Selector, f, opts), nil
	case "offset":
		f, err := needsFraction()
		if err != nil {
			return nil, err
		}
		return grid.Offset(rc.Selector, f, rc.Axis, opts), nil
	case "move":
		f, err := needsFraction()
		if err != nil {
			return nil, err
		}
		return grid.Move(rc.Selector, f, rc.Axis, opts), nil
	case "masonry-wrap":
		return grid.MasonryWrap(rc.Selector, opts), nil
	case "masonry-column":
		f, err := needsFraction()
		if err != nil {
			return nil, err
		}
		return grid.MasonryColumn(rc.Selector, f, opts), nil
	case "center":
		return grid.Center(rc.Selector, rc.MaxWidth, rc.Padding, opts), nil
	case "align":
		return grid.Align(rc.Selector, rc.Location, opts)
	case "flex-container":
		return grid.FlexContainer(rc.Selector, rc.Axis), nil
	case "edit":
		return grid.Edit(rc.Selector, rc.Color), nil
	case "clearfix":
		return grid.Clearfix(rc.Selector), nil
	default:
		// config validation keeps this list in sync, still better to fail loudly
		return nil, fmt.Errorf("unknown mixin %q", rc.Mixin)
	}
}

func banner(env *state.LocalEnv) string {
	return fmt.Sprintf("generated by %s %s (%s) run %s, do not edit by hand",
		misc.GetAppName(), misc.GetVersion(), runtime.Version(), env.RunID)
}
