// Package main demonstrates easyols on a CSV dataset such as the UCI
// wine-quality data (semicolon-separated).
package main

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sartorproj/easyols/dataset"
	"github.com/sartorproj/easyols/ols"
	"github.com/sartorproj/easyols/plotting"
)

var (
	cfgFile      string
	dataFile     string
	separator    string
	dependent    string
	independents []string
	showPlot     bool
	plotTitle    string
	plotXLabel   string
	plotYLabel   string
	plotDesc     string
)

var rootCmd = &cobra.Command{
	Use:   "easyols",
	Short: "Fit an OLS model over a CSV dataset and narrate the conclusions",
	Long: `easyols fits an ordinary least squares model of one dependent column
against one or more independent columns of a CSV dataset, prints the fit
summary with plain-language conclusions, and optionally renders a scatter
plot of observed and predicted values.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := dataset.DefaultCSVOptions()
		if separator != "" {
			opts.Delimiter = firstRune(separator)
		}
		table, err := dataset.LoadCSV(dataFile, opts)
		if err != nil {
			return err
		}
		fmt.Printf("Loaded %d rows, %d columns from %s\n\n", table.NumRows(), table.NumCols(), dataFile)

		cfg := plotting.DefaultServiceConfig()
		if v := viper.GetString("plot.base_url"); v != "" {
			cfg.BaseURL = v
		}
		if v := viper.GetDuration("plot.timeout"); v > 0 {
			cfg.Timeout = v
		}

		model, err := ols.New(dependent, independents, table,
			ols.WithRenderer(plotting.NewServiceRenderer(cfg)))
		if err != nil {
			return err
		}

		if err := model.WriteSummary(os.Stdout); err != nil {
			return err
		}

		if showPlot {
			return model.Plot(&ols.PlotOptions{
				Title:       plotTitle,
				XLabel:      plotXLabel,
				YLabel:      plotYLabel,
				Description: plotDesc,
			})
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(loadConfig)

	rootCmd.Flags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.easyols.yaml)")
	rootCmd.Flags().StringVar(&dataFile, "data", "data.csv", "CSV file to load")
	rootCmd.Flags().StringVar(&separator, "sep", ";", "CSV field separator")
	rootCmd.Flags().StringVarP(&dependent, "dependent", "y", "pH", "dependent variable column")
	rootCmd.Flags().StringSliceVarP(&independents, "independent", "x", []string{"citric acid"}, "independent variable column (repeatable)")
	rootCmd.Flags().BoolVar(&showPlot, "plot", false, "render a scatter plot of observed and predicted values")
	rootCmd.Flags().StringVar(&plotTitle, "title", "", "plot title override")
	rootCmd.Flags().StringVar(&plotXLabel, "xlabel", "", "plot x-axis label override")
	rootCmd.Flags().StringVar(&plotYLabel, "ylabel", "", "plot y-axis label override")
	rootCmd.Flags().StringVar(&plotDesc, "description", "", "description line appended to the plot title")
}

func loadConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".easyols")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("EASYOLS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// firstRune returns the first rune of s, so multi-byte separators like ¦
// are not truncated to their leading byte.
func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
