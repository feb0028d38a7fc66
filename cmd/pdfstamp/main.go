// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdfstamp CLI. The root command
// stamps a single document; batch, info, and version are subcommands.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdfstamp/internal/stamp"
	"github.com/pdiddy/pdfstamp/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// errUsage marks validation failures that should exit with the
// argument-parser convention code 2 instead of 1.
var errUsage = errors.New("invalid usage")

// rootCmd stamps one input PDF into one output PDF.
var rootCmd = &cobra.Command{
	Use:   "pdfstamp input.pdf output.pdf",
	Short: "Overlay logos and banners onto PDF pages",
	Long: `pdfstamp overlays images onto the pages of an existing PDF and writes a
new PDF. Three placement modes are available:

  --corner IMAGE         the same logo in a fixed corner of every page
  --footer-banner IMAGE  a full-width banner at the bottom of every page
  --alternating L,R      L on odd pages (bottom-left), R on even pages
                         (bottom-right)

Corner and alternating are mutually exclusive. The footer banner combines
with either and is applied after it. All sizes and margins are in points.`,
	Example: `  pdfstamp in.pdf out.pdf --corner logo.png --position bottom-right
  pdfstamp in.pdf out.pdf --footer-banner banner.png --banner-height 40
  pdfstamp in.pdf out.pdf --alternating left.png,right.png
  pdfstamp in.pdf out.pdf --footer-banner banner.png --corner logo.png`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args: func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(2)(cmd, args); err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		job, err := jobFromFlags(cmd)
		if err != nil {
			return err
		}
		job.Input = args[0]
		job.Output = args[1]

		_, err = stamp.Run(job, os.Stdout)
		return err
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdfstamp.yaml or ~/.config/pdfstamp/config.yaml)")
	addModeFlags(rootCmd)
}

// addModeFlags registers the placement mode and geometry flags shared by
// the root and batch commands.
func addModeFlags(cmd *cobra.Command) {
	cmd.Flags().String("corner", "", "logo image placed in a corner of every page")
	cmd.Flags().String("position", "bottom-right", "corner position: top-left, top-right, bottom-left, bottom-right")
	cmd.Flags().Int("size", types.DefaultCornerSize, "corner logo size in points")
	cmd.Flags().String("footer-banner", "", "banner image placed across the bottom of every page")
	cmd.Flags().Int("banner-height", types.DefaultBannerHeight, "footer banner height in points")
	cmd.Flags().StringSlice("alternating", nil, "two images LEFT,RIGHT for odd/even pages")
	cmd.Flags().Int("alt-size", types.DefaultAltSize, "alternating logo size in points")
	cmd.Flags().Int("margin", types.DefaultMargin, "inset from the page edge in points")
}

// jobFromFlags builds a job from the mode flags, leaving input and output
// paths to the caller. Mode composition errors are usage errors.
func jobFromFlags(cmd *cobra.Command) (types.Job, error) {
	corner, _ := cmd.Flags().GetString("corner")
	position, _ := cmd.Flags().GetString("position")
	banner, _ := cmd.Flags().GetString("footer-banner")
	alternating, _ := cmd.Flags().GetStringSlice("alternating")

	job := types.Job{Margin: intFlag(cmd, "margin", "defaults.margin")}

	if corner != "" {
		job.Corner = &types.CornerRequest{
			Image:    corner,
			Position: position,
			Size:     intFlag(cmd, "size", "defaults.corner_size"),
		}
	}
	if len(alternating) > 0 {
		if len(alternating) != 2 {
			return job, fmt.Errorf("%w: --alternating needs exactly two images LEFT,RIGHT, got %d", errUsage, len(alternating))
		}
		job.Alternating = &types.AlternatingRequest{
			Left:  alternating[0],
			Right: alternating[1],
			Size:  intFlag(cmd, "alt-size", "defaults.alt_size"),
		}
	}
	if banner != "" {
		job.Banner = &types.BannerRequest{
			Image:  banner,
			Height: intFlag(cmd, "banner-height", "defaults.banner_height"),
		}
	}

	if job.Corner == nil && job.Banner == nil && job.Alternating == nil {
		return job, fmt.Errorf("%w: %v", errUsage, types.ErrNoMode)
	}
	if job.Corner != nil && job.Alternating != nil {
		return job, fmt.Errorf("%w: %v", errUsage, types.ErrExclusiveMode)
	}
	return job, nil
}

// intFlag returns the flag value when it was set on the command line,
// falling back to the config file. Nil means unset, so an explicit zero
// (for example --margin 0) is distinguishable from a flag left at its
// default and survives the defaults pass.
func intFlag(cmd *cobra.Command, name, key string) *int {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetInt(name)
		return &v
	}
	if viper.IsSet(key) {
		v := viper.GetInt(key)
		return &v
	}
	return nil
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdfstamp")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdfstamp"))
		}
	}

	viper.SetEnvPrefix("PDFSTAMP")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", errUsage, err)
	})
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
