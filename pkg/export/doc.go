// Package export writes a site's pages as static files.
//
// An Exporter requests each path from an http.Handler, usually a
// *server.Server, and collects the responses in memory. Only when every page
// rendered with status 200 are they handed to a Publisher, either a local
// directory or an S3 bucket:
//
//	exp := export.New(srv)
//	res, err := exp.Export(ctx, []string{"/", "/category/1"}, export.NewDirPublisher("dist"))
//
// Paths map to keys as "/" to "index.html" and "/category/1" to
// "category/1/index.html".
package export
