package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const DefaultEnv = "dev"

// 設定檔的 key，對應 properties/<env>.properties
const (
	KeyTitle       = "TITLE"
	KeyVersion     = "VERSION"
	KeyWidth       = "GAME_WIDTH"
	KeyHeight      = "GAME_HEIGHT"
	KeyBallSpeed   = "BALL_SPEED"
	KeyPlayerSpeed = "PLAYER_SPEED"
	KeyTPS         = "TPS"
	KeyFinalScore  = "FINAL_SCORE"
	KeySeed        = "SEED"
	KeySound       = "SOUND"
)

// BindFlags registers the command line flags and binds them into v.
// Flags only win over the properties file when they were set explicitly.
func BindFlags(fs *pflag.FlagSet, v *viper.Viper) error {
	fs.String("env", "", "properties environment (properties/<env>.properties)")
	fs.String("config", "", "explicit properties file, overrides --env")
	fs.Int("final-score", 0, "score that ends the match, 0 plays forever")
	fs.Int64("seed", 0, "random seed for ball directions, 0 uses the clock")
	fs.Bool("sound", true, "play tones on bounces and goals")

	bindings := map[string]string{
		KeyFinalScore: "final-score",
		KeySeed:       "seed",
		KeySound:      "sound",
	}
	for key, name := range bindings {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// ResolveEnv picks the environment name: --env, then PONG_ENV, then dev.
func ResolveEnv(fs *pflag.FlagSet) string {
	if fs != nil {
		if env, err := fs.GetString("env"); err == nil && env != "" {
			return env
		}
	}
	if env := os.Getenv("PONG_ENV"); env != "" {
		return env
	}
	return DefaultEnv
}

// ReadProperties loads properties/<env>.properties from dir into v.
// A missing file is not an error, the defaults stay in place and found
// reports false. configFile, when set, replaces the env lookup and must exist.
func ReadProperties(v *viper.Viper, dir, env, configFile string) (found bool, err error) {
	setDefaults(v)

	v.SetConfigType("properties")
	v.SetEnvPrefix("PONG")
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(env)
		v.AddConfigPath(filepath.Join(dir, "properties"))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile == "" && errors.As(err, &notFound) {
			return false, nil
		}
		return false, fmt.Errorf("read config file: %w", err)
	}
	return true, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeyTitle, d.Title)
	v.SetDefault(KeyVersion, d.Version)
	v.SetDefault(KeyWidth, d.Width)
	v.SetDefault(KeyHeight, d.Height)
	v.SetDefault(KeyBallSpeed, d.BallSpeed)
	v.SetDefault(KeyPlayerSpeed, d.PlayerSpeed)
	v.SetDefault(KeyTPS, d.TPS)
	v.SetDefault(KeyFinalScore, d.FinalScore)
	v.SetDefault(KeySeed, d.Seed)
	v.SetDefault(KeySound, d.Sound)
}

// Decode turns the values held by v into Settings.
func Decode(v *viper.Viper, env string) (Settings, error) {
	s := Settings{
		Env:     env,
		Title:   cast.ToString(v.Get(KeyTitle)),
		Version: cast.ToString(v.Get(KeyVersion)),
	}

	ints := []struct {
		key string
		dst *int
	}{
		{KeyWidth, &s.Width},
		{KeyHeight, &s.Height},
		{KeyBallSpeed, &s.BallSpeed},
		{KeyPlayerSpeed, &s.PlayerSpeed},
		{KeyTPS, &s.TPS},
		{KeyFinalScore, &s.FinalScore},
	}
	for _, field := range ints {
		n, err := cast.ToIntE(v.Get(field.key))
		if err != nil {
			return Settings{}, fmt.Errorf("config %s: %w", field.key, err)
		}
		*field.dst = n
	}

	seed, err := cast.ToInt64E(v.Get(KeySeed))
	if err != nil {
		return Settings{}, fmt.Errorf("config %s: %w", KeySeed, err)
	}
	s.Seed = seed

	sound, err := cast.ToBoolE(v.Get(KeySound))
	if err != nil {
		return Settings{}, fmt.Errorf("config %s: %w", KeySound, err)
	}
	s.Sound = sound

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Load reads the properties for env under dir and decodes them.
func Load(v *viper.Viper, dir, env, configFile string) (Settings, bool, error) {
	found, err := ReadProperties(v, dir, env, configFile)
	if err != nil {
		return Settings{}, false, err
	}
	s, err := Decode(v, env)
	if err != nil {
		return Settings{}, found, err
	}
	return s, found, nil
}
