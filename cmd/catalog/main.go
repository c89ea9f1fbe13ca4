package main

import (
	stdLog "log"

	"github.com/Astemirdum/book-catalog/catalog/app"
	"github.com/Astemirdum/book-catalog/catalog/config"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Println("no .env loaded:", err)
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
	)

	app.Run(cfg)
}
