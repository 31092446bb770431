package main

import (
	"flag"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"llm-translate/internal/api"
	"llm-translate/internal/config"
	"llm-translate/internal/llmservice"
)

const configFilePath = "./configs/config.yaml"

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).With().Caller().Logger()

	configPath := flag.String("config", configFilePath, "Path to the service config file")
	addr := flag.String("addr", "", "Listen address, overrides server.addr")
	modelsPath := flag.String("models", "", "Path to the model catalog, overrides models_config")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading config")
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *modelsPath != "" {
		cfg.ModelsConfig = *modelsPath
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Str("log_level", cfg.LogLevel).Msg("Invalid log level")
	}
	zerolog.SetGlobalLevel(level)
	if level > zerolog.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	log.Debug().Interface("config", cfg).Msg("Loaded config")

	handler := api.NewHandler(cfg.ModelsConfig, llmservice.NewFactory(cfg.LLM), cfg.Server.MaxUploadBytes)
	router := api.NewRouter(handler, cfg.Server.AllowedOrigins)

	log.Info().Str("addr", cfg.Server.Addr).Str("provider", cfg.LLM.Provider).Msg("Starting server")
	if err := router.Run(cfg.Server.Addr); err != nil {
		log.Fatal().Err(err).Msg("Error running server")
	}
}
