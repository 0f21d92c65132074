package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oliverbestmann/facet"
)

// SideEffects reports whether executing an operation mutates state
// beyond producing its own result.
type SideEffects interface {
	HasSideEffect() bool
}

type AddOp struct {
	facet.Traits
	SideFx facet.Trait[SideEffects]
}

func (*AddOp) HasSideEffect() bool { return false }

type SubOp struct {
	facet.Traits
	SideFx facet.Trait[SideEffects]
}

func (*SubOp) HasSideEffect() bool { return false }

type LoadOp struct {
	facet.Traits
	SideFx facet.Trait[SideEffects]
}

func (*LoadOp) HasSideEffect() bool { return true }

var (
	_ = facet.ValidateEntity[AddOp]()
	_ = facet.ValidateEntity[SubOp]()
	_ = facet.ValidateEntity[LoadOp]()
)

var opsCmd = &cobra.Command{
	Use:   "ops",
	Short: "Query operations through the SideEffects facet",
	Run: func(cmd *cobra.Command, args []string) {
		// the concrete types are gone once the ops are collected
		// behind any, casting goes through the runtime path
		ops := []any{
			facet.Init(&AddOp{}),
			facet.Init(&SubOp{}),
			facet.Init(&LoadOp{}),
		}

		fmt.Println("=== using the interface ===")

		for _, op := range ops {
			view := facet.MustAs[SideEffects](op)
			fmt.Printf("%T has side effect = %v\n", op, view.Facet().HasSideEffect())
		}
	},
}
