package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/weblib-dev/weblib/internal/errors"
	"github.com/weblib-dev/weblib/pkg/component"
	"github.com/weblib-dev/weblib/pkg/css"
	"github.com/weblib-dev/weblib/pkg/export"
	"github.com/weblib-dev/weblib/pkg/render"
)

func (c *cli) renderCmd() *cobra.Command {
	var (
		name  string
		props []string
	)

	cmd := &cobra.Command{
		Use:   "render [PATH]",
		Short: "Print the HTML of one shop page or component",
		Long: `Render one page of the demo shop and print the document.

With --component, render a registered component instead. Props are
given as key=value pairs; numeric props accept numeric strings and
"true"/"false" set boolean props.

Examples:
  weblib render /
  weblib render /product/3
  weblib render --component badge --prop text=New --prop variant=danger
  weblib render --component pagination --prop current_page=2 --prop total_pages=5`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if name != "" {
				if len(args) > 0 {
					return fmt.Errorf("render: a PATH and --component are mutually exclusive")
				}
				return c.runRenderComponent(cmd.OutOrStdout(), name, props)
			}
			path := "/"
			if len(args) == 1 {
				path = args[0]
			}
			return c.runRenderPage(cmd.Context(), cmd.OutOrStdout(), path)
		},
	}

	cmd.Flags().StringVar(&name, "component", "", "component name (see `weblib components`)")
	cmd.Flags().StringArrayVarP(&props, "prop", "p", nil, "component prop as key=value (repeatable)")

	return cmd
}

func (c *cli) runRenderPage(ctx context.Context, w io.Writer, path string) error {
	a, err := c.newApp(c.cfg, false)
	if err != nil {
		return err
	}

	pages, err := export.New(a.server, export.WithLogger(c.logger)).Render(ctx, []string{path})
	if err != nil {
		var pe *export.PageError
		if stderrors.As(err, &pe) && pe.Status == http.StatusNotFound {
			return errors.New("W401").WithSubject(path)
		}
		return errors.New("W402").WithSubject(path).Wrap(err)
	}
	_, err = w.Write(pages[0].Body)
	return err
}

func (c *cli) runRenderComponent(w io.Writer, name string, pairs []string) error {
	props, err := parseProps(pairs)
	if err != nil {
		return errors.New("W402").WithSubject(name).Wrap(err)
	}

	fw, err := css.Lookup(c.cfg.Framework)
	if err != nil {
		return errors.New("W403").WithSubject(c.cfg.Framework)
	}
	reg := component.Builtins(fw)

	comp, err := reg.Build(name, props)
	if err != nil {
		if stderrors.Is(err, component.ErrUnknownComponent) {
			return errors.New("W404").WithSubject(name)
		}
		return errors.New("W402").WithSubject(name).Wrap(err)
	}
	node, err := component.Build(comp)
	if err != nil {
		return errors.New("W402").WithSubject(name).Wrap(err)
	}

	out, err := render.NewRenderer(render.RendererConfig{}).RenderToString(node)
	if err != nil {
		return errors.New("W402").WithSubject(name).Wrap(err)
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

// parseProps turns key=value pairs into component props.
func parseProps(pairs []string) (component.Props, error) {
	props := make(component.Props, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("prop %q is not key=value", pair)
		}
		switch value {
		case "true":
			props[key] = true
		case "false":
			props[key] = false
		default:
			props[key] = value
		}
	}
	return props, nil
}
