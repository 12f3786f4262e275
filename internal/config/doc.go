// Package config loads weblib configuration.
//
// Values are layered, each overriding the one before:
//
//  1. built-in defaults
//  2. weblib.yaml (or the file passed with --config)
//  3. WEBLIB_* environment variables, e.g. WEBLIB_LOG_LEVEL=debug
//  4. command-line flags
//
// # Configuration File Structure
//
//	addr: ":8080"
//	framework: bootstrap
//	lang: en
//	log:
//	  level: info
//	  format: text
//	metrics:
//	  enabled: true
//	  path: /metrics
//	tracing:
//	  enabled: false
//	export:
//	  dir: dist
//	  s3:
//	    bucket: ""
//	    prefix: ""
//	    region: us-east-1
//
// # Usage
//
//	v := config.NewViper()
//	config.BindFlags(v, cmd.Flags(), map[string]string{"addr": "addr"})
//	cfg, err := config.Load(v, configPath)
package config
