/*
Copyright © 2026 oiprep authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/imgset/oiprep/internal/iofs"
	"github.com/imgset/oiprep/internal/iologger"
	app "github.com/imgset/oiprep/pkg"
	"github.com/imgset/oiprep/pkg/config"
	"github.com/imgset/oiprep/pkg/errcode"
	"github.com/imgset/oiprep/pkg/sources"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
	Use:     "oiprep",
	Short:   "Prepares an Open Images subset for an object labeling job",
	Long: `oiprep prepares a small labelled image dataset for object detection.

It fetches public dataset metadata, selects images that contain the
requested object classes, copies them into a user-owned bucket and
generates the input manifest for a human labeling job.

The tool provides four phases:
  - fetch:  download dataset metadata into the local cache
  - select: pick a deterministic per-class window of matching images
  - upload: copy selected images to your bucket and upload the manifest
  - status: check on the labeling job created from the manifest

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (OIPREP_*)
  3. Config file (~/.config/oiprep/config.yaml)
  4. Built-in defaults`,
	PersistentPreRunE: bootstrap,
	RunE:              runRoot,
	SilenceErrors:     true,
	SilenceUsage:      true,
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults.
	// Will be reconfigured later with user's config settings.
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	if err = iofs.EnsureDatasetsFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings, appending to the log
	// file created above.
	if err = iologger.Init(config.LogDir(homeDir), cfg.Log, true); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir))

	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	versionFlag(cmd)
	return cmd.Help()
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
	// Remove the automatic "oiprep version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.Flags().BoolP("version", "V", false, "version for oiprep")

	rootCmd.AddCommand(getFetchCmd())
	rootCmd.AddCommand(getSelectCmd())
	rootCmd.AddCommand(getUploadCmd())
	rootCmd.AddCommand(getStatusCmd())
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("OIPREP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Dataset configuration
	v.BindEnv("dataset.release", "DATASET_RELEASE")

	// Storage configuration
	v.BindEnv("storage.provider", "STORAGE_PROVIDER")
	v.BindEnv("storage.bucket", "STORAGE_BUCKET")
	v.BindEnv("storage.prefix", "STORAGE_PREFIX")
	v.BindEnv("storage.region", "STORAGE_REGION")
	v.BindEnv("storage.endpoint", "STORAGE_ENDPOINT")

	// Select configuration
	v.BindEnv("select.images_per_class", "SELECT_IMAGES_PER_CLASS")
	v.BindEnv("select.batch", "SELECT_BATCH")

	// Labeling configuration
	v.BindEnv("labeling.job_name", "LABELING_JOB_NAME")
	v.BindEnv("labeling.manifest_name", "LABELING_MANIFEST_NAME")

	// Log configuration
	v.BindEnv("log.level", "LOG_LEVEL")
	v.BindEnv("log.format", "LOG_FORMAT")
	v.BindEnv("log.destination", "LOG_DESTINATION")

	v.AutomaticEnv()
}

// loadDataset resolves the configured release in datasets.yaml.
func loadDataset() (*sources.Dataset, error) {
	dsPath := config.DatasetsFilePath(cfg.HomeDir)
	srcCfg, err := sources.Load(dsPath)
	if err != nil {
		return nil, &gn.Error{
			Code: errcode.DatasetsConfigError,
			Msg:  "Cannot load datasets file <em>%s</em>",
			Vars: []any{dsPath},
			Err:  err,
		}
	}
	ds, err := srcCfg.Release(cfg.Dataset.Release)
	if err != nil {
		return nil, &gn.Error{
			Code: errcode.DatasetUnknownReleaseError,
			Msg:  "Unknown dataset release <em>%s</em>",
			Vars: []any{cfg.Dataset.Release},
			Err:  err,
		}
	}
	return ds, nil
}
