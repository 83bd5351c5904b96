package main

import (
	"fmt"
	"log"
	"os"

	appconfig "github.com/jcomellas/app-config"
)

func main() {
	appconfig.SetApp("demo", appconfig.List{
		{Key: "server", Value: appconfig.List{
			{Key: "host", Value: appconfig.EnvDefault("DEMO_HOST", "localhost")},
			{Key: "port", Value: appconfig.EnvDefault("DEMO_PORT", "8080")},
			{Key: "debug", Value: appconfig.Env("DEMO_DEBUG")},
		}},
	})

	app := appconfig.MustBind("demo")

	fmt.Println("host:", app.String("server.host", "localhost"))
	fmt.Println("port:", app.Int64("server.port", 8080))
	fmt.Println("debug:", app.Bool("server.debug", false))

	// DEMO_CONFIG can point at a TOML/JSON/YAML file to replace the
	// in-code defaults above.
	if path := os.Getenv("DEMO_CONFIG"); path != "" {
		if err := appconfig.LoadFile("demo", path); err != nil {
			log.Fatalf("load config: %v", err)
		}

		var cfg struct {
			Server struct {
				Host string `toml:"host"`
				Port int    `toml:"port"`
			} `toml:"server"`
		}
		if err := app.Scan("", &cfg); err != nil {
			log.Fatalf("scan config: %v", err)
		}
		fmt.Printf("file config: %+v\n", cfg)
	}
}
