package main

import (
	"BouncePong/core"
	"BouncePong/logger"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := pflag.NewFlagSet("BouncePong", pflag.ContinueOnError)
	env := flags.String("env", os.Getenv("PONG_ENV"), "properties variant, reads properties/pong-<env>.properties")
	configFile := flags.String("config", "", "game properties file, overrides --env")
	loggerFile := flags.String("logger-config", "", "logger properties file")
	flags.String("log-level", "", "Trace, Debug, Info, Warn, Error or Fatal")
	flags.Int("tick-millis", 0, "milliseconds between frames")

	if err := flags.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		return 2
	}

	logViper := viper.New()
	_ = logViper.BindPFlag("level", flags.Lookup("log-level"))
	logProps, err := logger.ReadProperties(logViper, *loggerFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	logger.Log.Init(logProps)
	defer logger.Log.Close()

	gameViper := viper.New()
	_ = gameViper.BindPFlag("tickMillis", flags.Lookup("tick-millis"))
	gameProps, err := core.ReadGameProperties(gameViper, *env, *configFile)
	if err != nil {
		logger.Log.Error(err.Error())
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	logger.Log.Info(fmt.Sprintf(logger.PropertiesLoadedMsg, *env, gameViper.ConfigFileUsed()))

	if err := start(gameProps); err != nil {
		logger.Log.Error(err.Error())
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	return 0
}
