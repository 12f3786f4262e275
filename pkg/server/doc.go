// Package server serves rendered pages over HTTP.
//
// A Server wraps a chi router with the standard middleware chain (request
// id, panic recovery, security headers, request logging, optional metrics
// and tracing) and renders each registered page in full before writing the
// response:
//
//	srv, err := server.New(server.Config{Address: ":8080"})
//	if err != nil {
//	    return err
//	}
//	srv.Page("/", func(r *http.Request) (*render.Page, error) {
//	    return render.NewPage("Home").Body(vdom.H1("Hello")), nil
//	})
//	return srv.Run(ctx)
//
// Page functions pick an error status by returning a *StatusError. Any other
// error, including a render failure, produces a 500 page that carries the
// request id.
package server
