// Package config provides configuration loading for navshell.
//
// Settings come from four layers, later ones winning: built-in defaults,
// an optional navshell.json, a .env file, and NAVSHELL_* environment
// variables.
//
// # Configuration File Structure
//
//	{
//	  "server": {
//	    "host": "0.0.0.0",
//	    "port": 8080,
//	    "shutdownTimeout": 10
//	  },
//	  "log": {
//	    "level": "info",
//	    "format": "json"
//	  },
//	  "assets": {
//	    "bucket": "navshell-assets",
//	    "prefix": "v1",
//	    "region": "eu-west-1"
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.Resolve(".", "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Listening on", cfg.Address())
package config
