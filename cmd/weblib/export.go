package main

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/weblib-dev/weblib/internal/errors"
	"github.com/weblib-dev/weblib/pkg/export"
)

func (c *cli) exportCmd() *cobra.Command {
	var toS3 bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render every shop page to static files",
		Long: `Render every page of the demo shop and publish the results.

All pages are rendered before anything is written. A page that does
not render with status 200 aborts the export.

Pages are written to --out unless --s3 is given, in which case they
are uploaded to --s3-bucket using AWS_* credentials from the
environment.

Examples:
  weblib export --out=public
  weblib export --s3 --s3-bucket=my-site --s3-prefix=preview/`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runExport(cmd.Context(), toS3)
		},
	}

	cmd.Flags().String("out", "", "output directory (default dist)")
	cmd.Flags().BoolVar(&toS3, "s3", false, "upload to S3 instead of writing files")
	cmd.Flags().String("s3-bucket", "", "S3 bucket name")
	cmd.Flags().String("s3-prefix", "", "key prefix inside the bucket")
	cmd.Flags().String("s3-region", "", "S3 region (default us-east-1)")

	return cmd
}

func (c *cli) runExport(ctx context.Context, toS3 bool) error {
	pub, target, err := c.publisher(toS3)
	if err != nil {
		return err
	}

	a, err := c.newApp(c.cfg, false)
	if err != nil {
		return err
	}

	exp := export.New(a.server, export.WithLogger(c.logger))
	result, err := exp.Export(ctx, a.shop.Paths(), pub)
	if err != nil {
		var pe *export.PageError
		if stderrors.As(err, &pe) {
			return errors.New("W301").WithSubject(pe.Path).Wrap(err)
		}
		if stderrors.Is(err, export.ErrNoCredentials) {
			return errors.New("W304").Wrap(err)
		}
		return errors.New("W302").WithSubject(target).Wrap(err)
	}

	c.success("Exported %d pages (%d bytes) to %s in %s", len(result.Pages), result.Bytes, target, result.Duration.Round(time.Millisecond))
	return nil
}

// publisher selects the export target from configuration.
func (c *cli) publisher(toS3 bool) (export.Publisher, string, error) {
	if toS3 {
		s3cfg := c.cfg.Export.S3
		if s3cfg.Bucket == "" {
			return nil, "", errors.New("W303").WithSubject("export.s3.bucket")
		}
		client := export.NewS3Client(s3cfg.Region)
		return export.NewS3Publisher(client, s3cfg.Bucket, s3cfg.Prefix), "s3://" + s3cfg.Bucket + "/" + s3cfg.Prefix, nil
	}
	if c.cfg.Export.Dir == "" {
		return nil, "", errors.New("W303").WithSubject("export.dir")
	}
	return export.NewDirPublisher(c.cfg.Export.Dir), c.cfg.Export.Dir, nil
}
