package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/math-helper/internal/nav"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	cats, err := Default()
	require.NoError(t, err)
	assert.Equal(t, []nav.Category{
		{Name: "Basic", SubFeatures: []string{"Simple"}},
		{Name: "Advanced", SubFeatures: []string{"Algebra", "Geometry"}},
	}, cats)
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	cats, err := Load("  ")
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, "Basic", cats[0].Name)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	doc := "categories:\n  - name: ' Stats '\n    sub_features: [Mean, ' Median']\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cats, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []nav.Category{{Name: "Stats", SubFeatures: []string{"Mean", "Median"}}}, cats)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseRejectsInvalidCatalogs(t *testing.T) {
	cases := map[string]string{
		"empty document":      "",
		"no categories":       "categories: []\n",
		"missing name":        "categories:\n  - sub_features: [A]\n",
		"blank name":          "categories:\n  - name: '  '\n    sub_features: [A]\n",
		"no sub-features":     "categories:\n  - name: A\n    sub_features: []\n",
		"blank sub-feature":   "categories:\n  - name: A\n    sub_features: ['']\n",
		"duplicate category":  "categories:\n  - name: A\n    sub_features: [x]\n  - name: A\n    sub_features: [y]\n",
		"duplicate sub-label": "categories:\n  - name: A\n    sub_features: [x, x]\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			require.Error(t, err)
			var verrs validator.ValidationErrors
			assert.ErrorAs(t, err, &verrs)
		})
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("categories:\n  - name: A\n    subfeatures: [x]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode catalog")
}
