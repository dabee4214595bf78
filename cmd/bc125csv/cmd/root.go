package cmd

import (
	"bytes"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/brocaar/bc125csv/internal/config"
)

var (
	cfgFile string
	verbose bool
	version string
)

var rootCmd = &cobra.Command{
	Use:   "bc125csv",
	Short: "Channel memory programmer for the Uniden BC125AT",
	Long: `bc125csv programs the channel memory of the Uniden BC125AT, UBC125XLT and
UBC126AT scanners from csv data, and reads it back out again.
	> source & copyright information: https://github.com/brocaar/bc125csv`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to configuration file (optional)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (sets the log level to debug)")
	rootCmd.PersistentFlags().Int("log-level", 4, "debug=5, info=4, error=2, fatal=1, panic=0")
	rootCmd.PersistentFlags().StringP("port", "p", "", "serial port of the scanner (default: auto-detect)")
	rootCmd.PersistentFlags().IntP("rate", "r", 9600, "baud rate of the serial port")
	rootCmd.PersistentFlags().BoolP("no-scanner", "n", false, "emulate a scanner in memory instead of programming a device")

	viper.BindPFlag("general.log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("scanner.port", rootCmd.PersistentFlags().Lookup("port"))
	viper.BindPFlag("scanner.baud_rate", rootCmd.PersistentFlags().Lookup("rate"))
	viper.BindPFlag("scanner.virtual", rootCmd.PersistentFlags().Lookup("no-scanner"))

	// default values
	viper.SetDefault("scanner.baud_rate", 9600)
	viper.SetDefault("scanner.read_timeout", 3*time.Second)

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(shellCmd)
}

// Execute executes the root command.
func Execute(v string) {
	version = v

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func initConfig() {
	if cfgFile != "" {
		b, err := os.ReadFile(cfgFile)
		if err != nil {
			log.WithError(err).WithField("config", cfgFile).Fatal("error loading config file")
		}
		viper.SetConfigType("toml")
		if err := viper.ReadConfig(bytes.NewBuffer(b)); err != nil {
			log.WithError(err).WithField("config", cfgFile).Fatal("error loading config file")
		}
	} else {
		viper.SetConfigName("bc125csv")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.config/bc125csv")
		viper.AddConfigPath("/etc/bc125csv")
		if err := viper.ReadInConfig(); err != nil {
			switch err.(type) {
			case viper.ConfigFileNotFoundError:
				// no configuration file is the common case
			default:
				log.WithError(err).Fatal("read configuration file error")
			}
		}
	}

	viperBindEnvs(config.C)

	viperHooks := mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)

	if err := viper.Unmarshal(&config.C, viper.DecodeHook(viperHooks)); err != nil {
		log.WithError(err).Fatal("unmarshal config error")
	}

	if verbose {
		config.C.General.LogLevel = int(log.DebugLevel)
	}
	log.SetLevel(log.Level(uint8(config.C.General.LogLevel)))
}

func viperBindEnvs(iface interface{}, parts ...string) {
	ifv := reflect.ValueOf(iface)
	ift := reflect.TypeOf(iface)
	for i := 0; i < ift.NumField(); i++ {
		v := ifv.Field(i)
		t := ift.Field(i)
		tv, ok := t.Tag.Lookup("mapstructure")
		if !ok {
			tv = strings.ToLower(t.Name)
		}
		if tv == "-" {
			continue
		}

		switch v.Kind() {
		case reflect.Struct:
			viperBindEnvs(v.Interface(), append(parts, tv)...)
		default:
			// Bash doesn't allow env variable names with a dot so
			// bind the double underscore version.
			keyDot := strings.Join(append(parts, tv), ".")
			keyUnderscore := strings.Join(append(parts, tv), "__")
			viper.BindEnv(keyDot, strings.ToUpper(keyUnderscore))
		}
	}
}
