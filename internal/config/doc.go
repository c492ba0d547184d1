// Package config provides configuration parsing for minidom tools.
//
// Configuration lives in minidom.json or minidom.toml in the working
// directory. Load prefers the JSON file when both exist.
//
// # Configuration File Structure
//
//	{
//	  "name": "playground",
//	  "log": {"level": "debug", "format": "json"},
//	  "server": {"host": "localhost", "port": 7070, "readTimeout": "10s"},
//	  "metrics": {"enabled": true, "namespace": "minidom", "path": "/metrics"},
//	  "tracing": {"enabled": false},
//	  "demo": {"delay": "0s", "output": "text"}
//	}
//
// The same keys are accepted in TOML:
//
//	name = "playground"
//
//	[server]
//	port = 7070
//	read_timeout = "10s"
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Listening on", cfg.Address())
package config
