package main

import (
	"PongSolo/config"
	"PongSolo/logger"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func main() {
	fs := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	v := viper.New()
	if err := parseFlags(fs, v, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if err := logger.Log.Init("./"); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	logger.Log.Watch()

	env := config.ResolveEnv(fs)
	configFile, _ := fs.GetString("config")
	settings, found, err := config.Load(v, "./", env, configFile)
	if err != nil {
		logger.Log.Error(err.Error())
		os.Exit(1)
	}
	if !found {
		logger.Log.Warn(fmt.Sprintf(logger.ConfigNotFoundMsg, env))
	}
	logger.Log.Info(fmt.Sprintf(logger.GameStartMsg, settings.Title, settings.Version,
		settings.Width, settings.Height, settings.TPS, settings.Env))

	// 畫面交給 tcell 之後不再印到 stdout
	logger.Log.SetConsole(nil)

	if err := start(settings); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		logger.Log.Error(err.Error())
		os.Exit(1)
	}
}

func parseFlags(fs *pflag.FlagSet, v *viper.Viper, args []string) error {
	if err := config.BindFlags(fs, v); err != nil {
		return err
	}
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
