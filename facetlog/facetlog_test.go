package facetlog

import (
	"testing"

	"github.com/oliverbestmann/facet"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type Stringish interface {
	AsString() string
}

type thing struct {
	facet.Traits
	Str facet.Trait[Stringish]
}

func (*thing) AsString() string { return "thing" }

func TestInstall(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)

	Install(zap.New(core))
	defer Uninstall()

	entity := facet.Init(&thing{})
	require.Equal(t, "thing", entity.Str.Facet().AsString())

	_, err := facet.TryAs[interface{ Missing() }](entity)
	require.Error(t, err)

	require.Equal(t, 1, logs.FilterMessage("entity initialized").Len())
	require.Equal(t, 1, logs.FilterMessage("cast rejected").Len())
}

func TestInstallNilLogger(t *testing.T) {
	Install(nil)
	defer Uninstall()

	entity := facet.Init(&thing{})
	require.Equal(t, "thing", entity.Str.Facet().AsString())
}
