// Package errors provides coded, actionable error messages for the weblib
// command.
//
// # Error Codes
//
// Each error has a unique code that maps to a short message, an optional
// explanation and a hint:
//   - W1xx: configuration
//   - W2xx: HTTP server
//   - W3xx: static export
//   - W4xx: page and component rendering
//
// # Usage
//
//	err := errors.New("W101").WithSubject("weblib.yaml")
//
//	errors.PrintError(os.Stderr, err)
//	// Output:
//	// ERROR W101: Config file not found
//	//
//	//   weblib.yaml
//	//
//	//   The configuration file passed with --config does not exist.
//	//
//	//   Hint: Run `weblib config init` to create one.
package errors
