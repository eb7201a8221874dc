package handler

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"zoomboom/internal/model"
)

// CoverageReader is the read side of the warehouse dataset.
type CoverageReader interface {
	Search(term string) []model.Warehouse
	Regions() []string
	DistrictsInRegion(region string) []string
	CoveredAreas(district string) []string
}

// SearchCoverage godoc
//
//	@Summary	Search served districts by district or region name
//	@Tags		coverage
//	@Produce	json
//	@Param		search	query	string	false	"case-insensitive term"
//	@Success	200		{array}	model.Warehouse
//	@Router		/coverage [get]
func SearchCoverage(cov CoverageReader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(cov.Search(c.Query("search")))
	}
}

// ListRegions godoc
//
//	@Summary	List regions
//	@Tags		coverage
//	@Produce	json
//	@Success	200	{array}	string
//	@Router		/coverage/regions [get]
func ListRegions(cov CoverageReader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(cov.Regions())
	}
}

// ListDistricts godoc
//
//	@Summary	List districts of a region
//	@Tags		coverage
//	@Produce	json
//	@Param		region	path	string	true	"region name"
//	@Success	200		{array}	string
//	@Router		/coverage/regions/{region}/districts [get]
func ListDistricts(cov CoverageReader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(nonNil(cov.DistrictsInRegion(pathValue(c, "region"))))
	}
}

// ListAreas godoc
//
//	@Summary	List covered areas of a district
//	@Tags		coverage
//	@Produce	json
//	@Param		district	path	string	true	"district name"
//	@Success	200			{array}	string
//	@Router		/coverage/districts/{district}/areas [get]
func ListAreas(cov CoverageReader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(nonNil(cov.CoveredAreas(pathValue(c, "district"))))
	}
}

// pathValue returns the URL-decoded route parameter, so "Cox's%20Bazar" matches.
func pathValue(c *fiber.Ctx, key string) string {
	v, err := url.PathUnescape(c.Params(key))
	if err != nil {
		return c.Params(key)
	}
	return v
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
