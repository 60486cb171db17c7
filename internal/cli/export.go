package cli

import (
	"fmt"
	"os"
	"time"

	"habitual/internal/export"
)

type ExportCmd struct {
	Format string `help:"Export format: csv, json, or report." enum:"csv,json,report" default:"csv"`
	Output string `short:"o" help:"Write to file instead of stdout." type:"path"`
}

func (c *ExportCmd) Run(ctx *Context) error {
	sess, err := ctx.Session()
	if err != nil {
		return err
	}

	var out string
	switch c.Format {
	case "csv":
		out, err = export.CSV(sess.Events)
	case "json":
		out, err = export.JSON(sess.Events, sess.Goals, ctx.User, time.Now())
	case "report":
		out = export.Report(sess.Events, sess.Goals, ctx.User, time.Now())
	}
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	if c.Output == "" {
		fmt.Print(out)
		return nil
	}
	if err := os.WriteFile(c.Output, []byte(out), 0600); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	fmt.Printf("Exported %s data for %s to %s\n", c.Format, ctx.User, c.Output)
	return nil
}
