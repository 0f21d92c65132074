package main

import (
	"fmt"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/oliverbestmann/facet"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure the cast and dispatch overhead",
	Run: func(cmd *cobra.Command, args []string) {
		switch viper.GetString("profile") {
		case "cpu":
			defer profile.Start(profile.CPUProfile).Stop()
		case "mem":
			defer profile.Start(profile.MemProfile).Stop()
		}

		count := viper.GetInt("count")

		op := facet.Init(&LoadOp{})
		var entity any = op

		start := time.Now()

		var sideEffects int
		for range count {
			view, err := facet.TryAs[SideEffects](entity)
			if err != nil {
				panic(err)
			}

			if view.Facet().HasSideEffect() {
				sideEffects++
			}
		}

		elapsed := time.Since(start)

		fmt.Printf("%d dynamic casts in %s (%.0f ns/cast), %d side effects\n",
			count, elapsed, float64(elapsed.Nanoseconds())/float64(count), sideEffects)
	},
}

func init() {
	benchCmd.Flags().Int("count", 1_000_000, "number of casts to run")
	benchCmd.Flags().String("profile", "", "write a cpu or mem profile")

	_ = viper.BindPFlag("count", benchCmd.Flags().Lookup("count"))
	_ = viper.BindPFlag("profile", benchCmd.Flags().Lookup("profile"))
}
