// Package main provides the CLI entrypoint for xml-digester.
//
// xml-digester maps XML documents onto objects driven by a declarative
// ruleset:
//   - create-bag pushes a typed property bag when its element opens
//   - set-body assigns element body text to a property of the current object
//   - set-attributes copies XML attributes onto same-named properties
package main

import (
	"fmt"
	"log/slog"
	"os"
	"reflect"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"xml-digester/config"
	"xml-digester/convert"
	"xml-digester/digester"
	"xml-digester/property"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "xml-digester",
		Short: "xml-digester — rule-driven XML to object mapping",
		Long:  "xml-digester walks XML element events and applies a declarative ruleset that builds and populates objects on a processing stack.",
	}

	rootCmd.AddCommand(mapCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func mapCmd() *cobra.Command {
	var rulesetPath string

	cmd := &cobra.Command{
		Use:   "map <document.xml>",
		Short: "Map an XML document onto objects using a ruleset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(rulesetPath)
			if err != nil {
				return fmt.Errorf("map: %w", err)
			}

			logger := newLogger(cfg)

			d, err := buildDigester(cfg, logger)
			if err != nil {
				return fmt.Errorf("map: building digester: %w", err)
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("map: %w", err)
			}
			defer func() { _ = f.Close() }()

			root, err := d.Parse(f)
			if err != nil {
				return fmt.Errorf("map: parsing %s: %w", args[0], err)
			}

			fmt.Print(spew.Sdump(root))
			return nil
		},
	}

	cmd.Flags().StringVarP(&rulesetPath, "ruleset", "r", "ruleset.yaml", "ruleset file to apply")
	return cmd
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Level()}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func buildDigester(cfg *config.Config, logger *slog.Logger) (*digester.Digester, error) {
	d := digester.New(digester.NewRuleSet(), logger)

	for _, b := range cfg.Rules {
		switch b.Rule {
		case config.RuleCreateBag:
			factory, err := bagFactory(b.Schema)
			if err != nil {
				return nil, fmt.Errorf("rule %q: %w", b.Pattern, err)
			}
			if b.AttachTo != "" {
				d.AddRule(b.Pattern, digester.NewCreateObjectAttached(factory, b.AttachTo))
			} else {
				d.AddRule(b.Pattern, digester.NewCreateObject(factory))
			}

		case config.RuleSetBody:
			if b.Property != "" {
				d.AddRule(b.Pattern, digester.NewNamedPropertySetter(b.Property))
			} else {
				d.AddRule(b.Pattern, digester.NewPropertySetter())
			}

		case config.RuleSetAttributes:
			rule := digester.NewSetAttributes()
			rule.IgnoreMissing = b.IgnoreMissing
			d.AddRule(b.Pattern, rule)
		}
	}

	return d, nil
}

func bagFactory(schema map[string]string) (func() any, error) {
	decls := make(map[string]reflect.Type, len(schema))
	for name, typeName := range schema {
		rtype, ok := convert.TypeByName(typeName)
		if !ok {
			return nil, fmt.Errorf("property %q has unknown type %q", name, typeName)
		}
		decls[name] = rtype
	}

	return func() any {
		bag := property.NewBag()
		for name, rtype := range decls {
			bag.Declare(name, rtype)
		}
		return bag
	}, nil
}
