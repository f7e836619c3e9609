package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/glslgen"
	"github.com/gogpu/glslgen/glsl"
	"github.com/gogpu/glslgen/ir"
	"github.com/gogpu/glslgen/shaders"
)

func newListCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range shaders.Names() {
				tmpl, _ := shaders.Lookup(name)
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-10s %-8s %s\n", name, tmpl.Stage, tmpl.Description); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newEmitCmd(a *app) *cobra.Command {
	var (
		output string
		target string
		binds  []string
	)
	cmd := &cobra.Command{
		Use:   "emit <template>",
		Short: "Write one template for one target version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tmpl, opts, err := a.prepare(args[0], binds)
			if err != nil {
				return err
			}
			if target != "" {
				if opts.LangVersion, err = glsl.ParseVersion(target); err != nil {
					return err
				}
			}

			source, err := glslgen.Generate(tmpl.Program(), opts)
			if err != nil {
				return fmt.Errorf("%s: %w", tmpl.Name, err)
			}
			if output == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), source)
				return err
			}
			if err := os.WriteFile(output, []byte(source), 0o644); err != nil {
				return err
			}
			a.log.Info("Emit", fmt.Sprintf("wrote %s (%d bytes)", output, len(source)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&target, "target", "", "GLSL version (default: from settings)")
	cmd.Flags().StringArrayVar(&binds, "bind", nil, "placeholder binding KEY=VALUE")
	return cmd
}

func newVariantsCmd(a *app) *cobra.Command {
	var (
		targets []string
		binds   []string
		write   bool
	)
	cmd := &cobra.Command{
		Use:   "variants <template>",
		Short: "Write one template for several target versions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tmpl, base, err := a.prepare(args[0], binds)
			if err != nil {
				return err
			}
			opts := make([]glsl.Options, len(targets))
			for i, t := range targets {
				opts[i] = base
				if opts[i].LangVersion, err = glsl.ParseVersion(t); err != nil {
					return err
				}
			}

			variants, err := glsl.CompileVariants(cmd.Context(), tmpl.Program(), opts)
			if err != nil {
				return fmt.Errorf("%s: %w", tmpl.Name, err)
			}

			if !write {
				for _, v := range variants {
					if _, err := fmt.Fprintf(cmd.OutOrStdout(), "// %s\n%s\n", v.Options.LangVersion, v.Source); err != nil {
						return err
					}
				}
				return nil
			}

			dir, err := a.store.ResourceDir(a.settings)
			if err != nil {
				return err
			}
			for _, v := range variants {
				path := filepath.Join(dir, variantFileName(tmpl, v.Options.LangVersion))
				if err := os.WriteFile(path, []byte(v.Source), 0o644); err != nil {
					return err
				}
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), path); err != nil {
					return err
				}
			}
			a.log.Info("Variants", fmt.Sprintf("wrote %d files to %s", len(variants), dir))
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&targets, "targets", []string{"120", "330", "300es"}, "GLSL versions")
	cmd.Flags().StringArrayVar(&binds, "bind", nil, "placeholder binding KEY=VALUE")
	cmd.Flags().BoolVar(&write, "write", false, "write files into the resource directory")
	return cmd
}

// prepare looks up a template and builds its options from the settings,
// the template defaults and the --bind flags, in increasing priority.
func (a *app) prepare(name string, binds []string) (shaders.Template, glsl.Options, error) {
	tmpl, ok := shaders.Lookup(name)
	if !ok {
		return tmpl, glsl.Options{}, fmt.Errorf("unknown template %q (see glslgen list)", name)
	}
	opts, err := a.settings.Options()
	if err != nil {
		return tmpl, opts, err
	}
	if opts.Bindings, err = parseBindings(binds); err != nil {
		return tmpl, opts, err
	}
	return tmpl, tmpl.Options(opts), nil
}

// parseBindings parses KEY=VALUE pairs. Values are integer, float or bool
// literals.
func parseBindings(binds []string) (map[string]ir.Expression, error) {
	if len(binds) == 0 {
		return nil, nil
	}
	out := make(map[string]ir.Expression, len(binds))
	for _, b := range binds {
		key, value, ok := strings.Cut(b, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid binding %q, want KEY=VALUE", b)
		}
		lit, err := parseLiteral(value)
		if err != nil {
			return nil, fmt.Errorf("binding %s: %w", key, err)
		}
		out[key] = lit
	}
	return out, nil
}

func parseLiteral(s string) (ir.Expression, error) {
	if i, err := strconv.ParseInt(s, 10, 32); err == nil {
		return ir.I32(int32(i)), nil
	}
	if f, err := strconv.ParseFloat(s, 32); err == nil {
		return ir.F32(float32(f)), nil
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return ir.BoolLit(b), nil
	}
	return nil, fmt.Errorf("invalid literal %q", s)
}

// variantFileName names the file of one variant, e.g. "blur.300es.frag".
func variantFileName(tmpl shaders.Template, v glsl.Version) string {
	ext := "frag"
	if tmpl.Stage == ir.StageVertex {
		ext = "vert"
	}
	version := v.VersionNumber()
	if v.ES && version != "100" {
		version += "es"
	}
	return fmt.Sprintf("%s.%s.%s", tmpl.Name, version, ext)
}
