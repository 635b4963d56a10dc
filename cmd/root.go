/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"os"

	dmx "github.com/allbin/go-dmx"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dmx",
	Short: "Send DMX512 frames to USB or offline ports",
	Long: `dmx is a small tool for driving DMX512 lighting rigs.

It discovers DMX output ports (Enttec DMX USB Pro widgets on USB serial
adapters, plus an always-available offline port for testing), and sends
channel frames to them. Frames shorter than a port's minimum universe are
zero-padded, longer frames are truncated, so the same buffer works on
every port.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.dmx.yaml)")
	rootCmd.PersistentFlags().StringP("port", "p", "", "port name to use (default: interactive selection)")
	viper.BindPFlag("port", rootCmd.PersistentFlags().Lookup("port"))

	viper.SetDefault("universe", 512)
	viper.SetDefault("fps", 30)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".dmx" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".dmx")
	}

	viper.SetEnvPrefix("dmx")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// resolvePort opens the port named by --port (or the config file), falling
// back to the interactive chooser when no name is configured.
func resolvePort() (dmx.DmxPort, error) {
	name := viper.GetString("port")
	if name == "" {
		return dmx.SelectPort()
	}

	ports, err := dmx.AvailablePorts()
	if err != nil {
		return nil, err
	}
	for _, port := range ports {
		if port.Name() == name {
			if err := port.Open(); err != nil {
				return nil, err
			}
			return port, nil
		}
	}
	return nil, fmt.Errorf("no dmx port named %q", name)
}
