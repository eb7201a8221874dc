// Package coverage serves the read-only warehouse dataset: which districts
// ZoomBoom operates in and which areas each district covers.
package coverage

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/samber/lo"

	"zoomboom/internal/model"
)

//go:embed warehouses.json
var embedded []byte

// Directory is an immutable, sorted view of the warehouse dataset.
// It is safe for concurrent use.
type Directory struct {
	warehouses []model.Warehouse
	byDistrict map[string]model.Warehouse
}

// New parses a JSON array of warehouses.
func New(data []byte) (*Directory, error) {
	var ws []model.Warehouse
	if err := json.Unmarshal(data, &ws); err != nil {
		return nil, fmt.Errorf("decode warehouses: %w", err)
	}
	if len(ws) == 0 {
		return nil, fmt.Errorf("warehouse dataset is empty")
	}

	sort.SliceStable(ws, func(i, j int) bool { return ws[i].District < ws[j].District })

	d := &Directory{warehouses: ws, byDistrict: make(map[string]model.Warehouse, len(ws))}
	for _, w := range ws {
		if w.District == "" {
			return nil, fmt.Errorf("warehouse without district in region %q", w.Region)
		}
		if _, dup := d.byDistrict[w.District]; dup {
			return nil, fmt.Errorf("duplicate district %q", w.District)
		}
		d.byDistrict[w.District] = w
	}
	return d, nil
}

// Load reads the dataset from path, or the embedded copy when path is empty.
func Load(path string) (*Directory, error) {
	if path == "" {
		return New(embedded)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read coverage file: %w", err)
	}
	return New(data)
}

// Districts returns every warehouse sorted by district.
func (d *Directory) Districts() []model.Warehouse {
	out := make([]model.Warehouse, len(d.warehouses))
	copy(out, d.warehouses)
	return out
}

// Search matches term against district and region, ignoring case.
func (d *Directory) Search(term string) []model.Warehouse {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return d.Districts()
	}
	return lo.Filter(d.warehouses, func(w model.Warehouse, _ int) bool {
		return strings.Contains(strings.ToLower(w.District), term) ||
			strings.Contains(strings.ToLower(w.Region), term)
	})
}

// Regions returns the distinct region names in alphabetical order.
func (d *Directory) Regions() []string {
	regions := lo.Uniq(lo.Map(d.warehouses, func(w model.Warehouse, _ int) string { return w.Region }))
	sort.Strings(regions)
	return regions
}

// DistrictsInRegion lists the districts served under region.
func (d *Directory) DistrictsInRegion(region string) []string {
	return lo.FilterMap(d.warehouses, func(w model.Warehouse, _ int) (string, bool) {
		return w.District, w.Region == region
	})
}

// CoveredAreas returns the areas of district, or an empty slice if unknown.
func (d *Directory) CoveredAreas(district string) []string {
	w, ok := d.byDistrict[district]
	if !ok {
		return []string{}
	}
	out := make([]string, len(w.CoveredArea))
	copy(out, w.CoveredArea)
	return out
}

// Covers reports whether area is served in district.
func (d *Directory) Covers(district, area string) bool {
	w, ok := d.byDistrict[district]
	return ok && lo.Contains(w.CoveredArea, area)
}

// InRegion reports whether district belongs to region.
func (d *Directory) InRegion(region, district string) bool {
	w, ok := d.byDistrict[district]
	return ok && w.Region == region
}
