// Package facetlog attaches zap based debug logging to the facet hook
// seam. The facet core itself never produces output; install the hooks
// while debugging entity declarations and adapter bindings:
//
//	facetlog.Install(logger)
//	defer facetlog.Uninstall()
package facetlog

import (
	"fmt"
	"reflect"

	"github.com/oliverbestmann/facet"
	"go.uber.org/zap"
)

// Install registers facet hooks that log to the given logger, replacing
// hooks installed earlier. Passing nil logs nowhere but still exercises
// the hook path.
func Install(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}

	log := logger.Named("facet")

	facet.SetHooks(facet.Hooks{
		BindingRegistered: func(facetType, entityType reflect.Type) {
			log.Debug("adapter registered",
				zap.Stringer("facet", facetType),
				zap.Stringer("entity", entityType),
			)
		},

		EntityInitialized: func(entityType reflect.Type, facets []reflect.Type) {
			names := make([]string, len(facets))
			for idx, ty := range facets {
				names[idx] = ty.String()
			}

			log.Debug("entity initialized",
				zap.Stringer("entity", entityType),
				zap.Strings("facets", names),
			)
		},

		CastRejected: func(facetType reflect.Type, entity any) {
			log.Warn("cast rejected",
				zap.Stringer("facet", facetType),
				zap.String("entity", fmt.Sprintf("%T", entity)),
			)
		},
	})
}

// Uninstall removes the hooks installed by Install.
func Uninstall() {
	facet.SetHooks(facet.Hooks{})
}
