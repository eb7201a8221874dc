package handler

import (
	"github.com/gofiber/fiber/v2"

	"zoomboom/internal/model"
	"zoomboom/internal/service"
)

type applyRiderResponse struct {
	InsertedID string       `json:"insertedId"`
	Rider      *model.Rider `json:"rider"`
}

type riderStatusRequest struct {
	Status model.RiderStatus `json:"status"`
}

// ApplyRider godoc
//
//	@Summary	Submit a rider application
//	@Tags		riders
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		application	body		model.RiderApplication	true	"rider form"
//	@Success	201			{object}	applyRiderResponse
//	@Failure	400			{object}	errorPayload
//	@Router		/riders [post]
func ApplyRider(svc service.RiderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var app model.RiderApplication
		if err := c.BodyParser(&app); err != nil {
			return invalidBody(c)
		}
		r, err := svc.Apply(c.UserContext(), actorOf(c), app)
		if err != nil {
			return mapServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(applyRiderResponse{InsertedID: r.ID, Rider: r})
	}
}

// ListRiders godoc
//
//	@Summary	List rider applications (admin)
//	@Tags		riders
//	@Security	BearerAuth
//	@Produce	json
//	@Param		status	query		string	false	"pending, verified, rejected or deactivated"
//	@Param		search	query		string	false	"matches name or email"
//	@Success	200		{array}		model.Rider
//	@Failure	403		{object}	errorPayload
//	@Router		/riders [get]
func ListRiders(svc service.RiderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		riders, err := svc.List(c.UserContext(), service.RiderQuery{
			Status: model.RiderStatus(c.Query("status")),
			Search: c.Query("search"),
		})
		if err != nil {
			return mapServiceError(c, err)
		}
		return c.JSON(riders)
	}
}

// GetRider godoc
//
//	@Summary	Get a rider application (admin)
//	@Tags		riders
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"rider id"
//	@Success	200	{object}	model.Rider
//	@Failure	404	{object}	errorPayload
//	@Router		/riders/{id} [get]
func GetRider(svc service.RiderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		r, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return mapServiceError(c, err)
		}
		return c.JSON(r)
	}
}

// ChangeRiderStatus godoc
//
//	@Summary		Approve, reject, deactivate or reactivate a rider (admin)
//	@Description	The applicant's role follows the new status.
//	@Tags			riders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"rider id"
//	@Param			request	body		riderStatusRequest	true	"target status"
//	@Success		200		{object}	modifiedResponse
//	@Failure		409		{object}	errorPayload
//	@Router			/riders/{id} [patch]
func ChangeRiderStatus(svc service.RiderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req riderStatusRequest
		if err := c.BodyParser(&req); err != nil {
			return invalidBody(c)
		}
		n, err := svc.ChangeStatus(c.UserContext(), c.Params("id"), req.Status)
		if err != nil {
			return mapServiceError(c, err)
		}
		return c.JSON(modifiedResponse{ModifiedCount: n})
	}
}
