package loader_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/aegis/pkg/domain/model"
	"github.com/secmon-lab/aegis/pkg/domain/types"
	"github.com/secmon-lab/aegis/pkg/service/loader"
)

func TestLoad(t *testing.T) {
	for _, path := range []string{
		"testdata/startup.json",
		"testdata/startup.yaml",
		"testdata/startup.toml",
	} {
		t.Run(path, func(t *testing.T) {
			a, err := loader.Load(path)
			gt.NoError(t, err).Required()

			gt.Value(t, a.Name).Equal("Startup baseline")
			gt.Array(t, a.Assets).Length(2)
			gt.Value(t, a.Assets[1].Category).Equal(types.CategorySystems)
			gt.Array(t, a.Dependencies).Length(2)
			gt.Value(t, a.Dependencies[0].TimeToReplace).Equal(types.TimeToReplaceMonths)
			gt.Value(t, a.Dependencies[1].TimeToReplace).Equal(types.TimeToReplace(""))
			gt.Value(t, a.Contingencies[0].KnowledgeSharing).Equal(3)
			gt.Value(t, a.Industry()).Equal(types.IndustryTechnology)
			gt.Value(t, a.Size()).Equal(types.OrgSizeSmall)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Run("unsupported extension", func(t *testing.T) {
		_, err := loader.Load("testdata/startup.xml")
		gt.Error(t, err).Is(loader.ErrUnsupportedFormat)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loader.Load("testdata/missing.json")
		gt.Error(t, err)
	})

	t.Run("rating out of range", func(t *testing.T) {
		_, err := loader.Load("testdata/out_of_range.yaml")
		gt.Error(t, err).Is(model.ErrInvalidAssessment)
	})
}

func TestDecode(t *testing.T) {
	t.Run("broken JSON", func(t *testing.T) {
		_, err := loader.Decode(strings.NewReader(`{"assets": [`), loader.FormatJSON)
		gt.Error(t, err).Is(model.ErrInvalidAssessment)
	})

	t.Run("missing lists are kept absent", func(t *testing.T) {
		a, err := loader.Decode(strings.NewReader(`{"name": "empty"}`), loader.FormatJSON)
		gt.NoError(t, err).Required()
		gt.Bool(t, a.IsWellFormed()).False()
	})

	t.Run("unknown enum value", func(t *testing.T) {
		_, err := loader.Decode(strings.NewReader("assets:\n  - id: a1\n    name: HQ\n    category: vehicles\ndependencies: []\n"), loader.FormatYAML)
		gt.Error(t, err).Is(model.ErrInvalidAssessment)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := loader.Decode(strings.NewReader("{}"), loader.Format("xml"))
		gt.Error(t, err).Is(loader.ErrUnsupportedFormat)
	})
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]loader.Format{
		"a.json":     loader.FormatJSON,
		"dir/b.YAML": loader.FormatYAML,
		"c.yml":      loader.FormatYAML,
		"d.toml":     loader.FormatTOML,
	}
	for path, want := range tests {
		got, err := loader.FormatFromPath(path)
		gt.NoError(t, err)
		gt.Value(t, got).Equal(want)
	}
}
