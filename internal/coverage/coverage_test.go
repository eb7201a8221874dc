package coverage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = `[
  {"region": "Sylhet", "district": "Sylhet", "covered_area": ["Zindabazar", "Amberkhana"]},
  {"region": "Dhaka", "district": "Gazipur", "covered_area": ["Tongi"]},
  {"region": "Dhaka", "district": "Dhaka", "covered_area": ["Uttara", "Mirpur"]}
]`

func newFixture(t *testing.T) *Directory {
	t.Helper()
	d, err := New([]byte(fixture))
	require.NoError(t, err)
	return d
}

func TestNew(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		_, err := New([]byte("{"))
		assert.Error(t, err)
	})

	t.Run("empty dataset", func(t *testing.T) {
		_, err := New([]byte("[]"))
		assert.Error(t, err)
	})

	t.Run("duplicate district", func(t *testing.T) {
		_, err := New([]byte(`[{"region":"A","district":"X"},{"region":"B","district":"X"}]`))
		assert.ErrorContains(t, err, "duplicate district")
	})
}

func TestLoad(t *testing.T) {
	t.Run("embedded", func(t *testing.T) {
		d, err := Load("")
		require.NoError(t, err)
		assert.NotEmpty(t, d.Districts())
		assert.True(t, d.Covers("Dhaka", "Mirpur"))
	})

	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "warehouses.json")
		require.NoError(t, os.WriteFile(path, []byte(fixture), 0o600))

		d, err := Load(path)
		require.NoError(t, err)
		assert.Len(t, d.Districts(), 3)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})
}

func TestDistricts_SortedByName(t *testing.T) {
	d := newFixture(t)

	var names []string
	for _, w := range d.Districts() {
		names = append(names, w.District)
	}
	assert.Equal(t, []string{"Dhaka", "Gazipur", "Sylhet"}, names)
}

func TestSearch(t *testing.T) {
	d := newFixture(t)

	assert.Len(t, d.Search(""), 3)
	assert.Len(t, d.Search("dhaka"), 2, "region match includes Gazipur")
	assert.Len(t, d.Search("SYL"), 1)
	assert.Empty(t, d.Search("khulna"))
}

func TestRegionsAndDistricts(t *testing.T) {
	d := newFixture(t)

	assert.Equal(t, []string{"Dhaka", "Sylhet"}, d.Regions())
	assert.Equal(t, []string{"Dhaka", "Gazipur"}, d.DistrictsInRegion("Dhaka"))
	assert.Empty(t, d.DistrictsInRegion("Rajshahi"))
	assert.True(t, d.InRegion("Dhaka", "Gazipur"))
	assert.False(t, d.InRegion("Sylhet", "Gazipur"))
}

func TestCoveredAreas(t *testing.T) {
	d := newFixture(t)

	assert.Equal(t, []string{"Uttara", "Mirpur"}, d.CoveredAreas("Dhaka"))
	assert.Equal(t, []string{}, d.CoveredAreas("Nowhere"))
	assert.True(t, d.Covers("Sylhet", "Amberkhana"))
	assert.False(t, d.Covers("Sylhet", "Uttara"))
	assert.False(t, d.Covers("Nowhere", "Uttara"))
}
