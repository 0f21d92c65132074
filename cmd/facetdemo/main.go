// The facetdemo command bundles the small console demonstrations of the
// facet library: querying operations through the SideEffects facet,
// a heterogeneous zoo of erased animals, and a micro benchmark of the
// cast path.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/oliverbestmann/facet/facetlog"
)

var rootCmd = &cobra.Command{
	Use:   "facetdemo",
	Short: "Demonstrations of the facet trait and adapter library",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if viper.GetBool("verbose") {
			logger, err := zap.NewDevelopment()
			if err != nil {
				return err
			}

			facetlog.Install(logger)
		}

		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "log facet initialization and rejected casts")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.SetEnvPrefix("facetdemo")
	viper.AutomaticEnv()

	rootCmd.AddCommand(opsCmd)
	rootCmd.AddCommand(zooCmd)
	rootCmd.AddCommand(benchCmd)
}
