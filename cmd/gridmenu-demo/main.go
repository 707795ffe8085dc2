package main

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"gridmenu"
	"gridmenu/logging"
	"gridmenu/store/duck"
	"gridmenu/util"
)

const (
	appName   = "gridmenu"
	layoutRel = "layout.yaml"
	fileMode  = 0644
)

//go:embed products.json
var products []byte

//go:embed layout.yaml
var sampleLayout []byte

var rootCmd = &cobra.Command{
	Use:   "gridmenu-demo",
	Short: "Browse products in a grid with per-column menus",
	Long: `gridmenu-demo shows a product grid. Press m on a column to open its menu,
where columns can be hidden and the grid sorted or filtered. Press w to save
the layout.`,
	PersistentPreRun: bindFlags,
	RunE:             run,
	SilenceUsage:     true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().StringP("layout", "l", "", "layout file (default is $XDG_CONFIG_HOME/gridmenu/layout.yaml)")
	rootCmd.Flags().String("log", "gridmenu.log", "log file")
	rootCmd.Flags().Bool("debug", false, "log at debug level")
}

func initConfig() {

	// .env is optional
	_ = godotenv.Load()

	viper.SetEnvPrefix(appName)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// bindFlags sets unchanged flags from viper, so GRIDMENU_LAYOUT and friends apply.
func bindFlags(cmd *cobra.Command, _ []string) {
	cmd.Flags().VisitAll(func(flg *pflag.Flag) {
		if flg.Changed || !viper.IsSet(flg.Name) {
			return
		}

		err := cmd.Flags().Set(flg.Name, fmt.Sprintf("%v", viper.Get(flg.Name)))
		cobra.CheckErr(err)
	})
}

func run(cmd *cobra.Command, _ []string) (err error) {

	layoutPath, err := cmd.Flags().GetString("layout")
	if err != nil {
		return
	}
	logPath, err := cmd.Flags().GetString("log")
	if err != nil {
		return
	}
	debug, err := cmd.Flags().GetBool("debug")
	if err != nil {
		return
	}

	if layoutPath == "" {
		layoutPath, err = xdg.ConfigFile(path.Join(appName, layoutRel))
		if err != nil {
			err = errors.Wrapf(err, "failed to find config dir")
			return
		}
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	logFile := util.OpenLog(logPath, fileMode)
	defer util.CloseLog(logFile)

	lgr := logging.New(logFile, level)
	ctx := logging.ComponentCtx(context.Background(), appName)

	wrote, err := util.SampleConfig(sampleLayout, layoutPath, fileMode)
	if err != nil {
		return
	}
	if wrote {
		lgr.Info(ctx, "wrote sample layout", "path", layoutPath)
	}

	layout, err := gridmenu.LoadLayout(layoutPath)
	if err != nil {
		return
	}

	dk, err := duck.New(ctx, lgr)
	if err != nil {
		return
	}
	defer dk.Close()

	err = dk.Load(ctx, "products.json", products)
	if err != nil {
		return
	}

	model, err := gridmenu.NewModel(ctx, dk, layout, layoutPath, lgr)
	if err != nil {
		return
	}

	_, err = tea.NewProgram(model).Run()
	err = errors.Wrapf(err, "failed to run program")
	return
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
