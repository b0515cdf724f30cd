package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"opskit/pkg/apiclient"
	"opskit/pkg/config"
	"opskit/pkg/log"
	"opskit/pkg/ops"
)

func main() {
	// Initialize logger first
	_ = log.Logger

	configFile := flag.String("config", "", "YAML configuration file")
	baseURL := flag.String("base-url", "", "API base URL (overrides config and $"+config.EnvBaseURL+")")
	endpoint := flag.String("endpoint", "/repos/octocat/Hello-World", "Endpoint to fetch")
	token := flag.String("token", "", "Bearer token (overrides config and $"+config.EnvToken+")")
	timeout := flag.Duration("timeout", 0, "Request timeout (overrides config and $"+config.EnvTimeout+")")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	cfg := config.Default()
	if *configFile != "" {
		if err := config.LoadConfigFromFile(&cfg, *configFile); err != nil {
			log.Fatal().Err(err).Str("config", *configFile).Msg("Failed to load configuration")
		}
	}

	if *debug || cfg.Debug {
		log.SetDebugMode()
		log.Debug().Msg("Debug mode enabled")
	}

	toolkit := ops.New(log.Component("ops"), 0)
	if err := config.ApplyEnv(&cfg, toolkit); err != nil {
		log.Fatal().Err(err).Msg("Invalid environment configuration")
	}

	if *baseURL != "" {
		cfg.API.BaseURL = *baseURL
	}
	if *token != "" {
		cfg.API.Token = *token
	}
	if *timeout > 0 {
		cfg.API.Timeout = *timeout
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := apiclient.New(cfg.API.BaseURL, cfg.API.Token, cfg.API.Timeout, log.Component("apiclient"))
	defer client.Close()

	log.Debug().
		Str("base_url", client.BaseURL()).
		Str("endpoint", *endpoint).
		Bool("token", cfg.API.Token != "").
		Dur("timeout", cfg.API.Timeout).
		Msg("Fetching endpoint")

	value, err := client.Get(ctx, *endpoint, nil)
	if err != nil {
		if apiclient.IsTransportError(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			client.Close()
			os.Exit(1) //nolint:gocritic // client closed explicitly above
		}
		log.Fatal().Err(err).Str("endpoint", *endpoint).Msg("Request failed")
	}

	pretty, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to format response")
	}

	fmt.Println("Response:")
	fmt.Println(string(pretty))
}
