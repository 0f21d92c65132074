package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oliverbestmann/facet"
)

type Noisy interface {
	MakeNoise() string
}

type Dog struct{}

func (*Dog) MakeNoise() string { return "Woof!" }

type Cat struct{}

func (*Cat) MakeNoise() string { return "Meow." }

// Duck comes with its own vocabulary and is adapted explicitly.
type Duck struct{}

func (*Duck) Quack() string { return "Quack!" }

type duckNoisy struct{ duck *Duck }

func (n duckNoisy) MakeNoise() string { return n.duck.Quack() }

var _ = facet.BindFunc(func(d *Duck) Noisy {
	return duckNoisy{duck: d}
})

var zooCmd = &cobra.Command{
	Use:   "zoo",
	Short: "A heterogeneous collection of erased animals",
	Run: func(cmd *cobra.Command, args []string) {
		zoo := []facet.Box[Noisy]{
			facet.Erase[Noisy](Dog{}),
			facet.Erase[Noisy](Cat{}),
			facet.Erase[Noisy](Duck{}),
		}

		for _, animal := range zoo {
			fmt.Println(animal.Facet().MakeNoise())
		}
	},
}
