package handler

import (
	"github.com/gofiber/fiber/v2"

	"zoomboom/internal/model"
	"zoomboom/internal/service"
)

type bookParcelResponse struct {
	InsertedID string        `json:"insertedId"`
	Parcel     *model.Parcel `json:"parcel"`
}

type modifiedResponse struct {
	ModifiedCount int64 `json:"modifiedCount"`
}

type deletedResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

// QuoteParcel godoc
//
//	@Summary	Price a booking draft
//	@Tags		parcels
//	@Accept		json
//	@Produce	json
//	@Param		draft	body		model.ParcelDraft	true	"draft, fields may be missing"
//	@Success	200		{object}	pricing.Quote
//	@Failure	400		{object}	errorPayload
//	@Router		/parcels/quote [post]
func QuoteParcel(svc service.ParcelService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var d model.ParcelDraft
		if err := c.BodyParser(&d); err != nil {
			return invalidBody(c)
		}
		return c.JSON(svc.Quote(d))
	}
}

// BookParcel godoc
//
//	@Summary	Book a parcel
//	@Tags		parcels
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		draft	body		model.ParcelDraft	true	"booking form"
//	@Success	201		{object}	bookParcelResponse
//	@Failure	400		{object}	errorPayload
//	@Failure	401		{object}	errorPayload
//	@Router		/parcels [post]
func BookParcel(svc service.ParcelService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var d model.ParcelDraft
		if err := c.BodyParser(&d); err != nil {
			return invalidBody(c)
		}
		p, err := svc.Book(c.UserContext(), actorOf(c), d)
		if err != nil {
			return mapServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(bookParcelResponse{InsertedID: p.ID, Parcel: p})
	}
}

// ListParcels godoc
//
//	@Summary	List parcels newest first
//	@Tags		parcels
//	@Security	BearerAuth
//	@Produce	json
//	@Param		email	query		string	false	"owner email, defaults to the caller"
//	@Success	200		{array}		model.Parcel
//	@Failure	403		{object}	errorPayload
//	@Router		/parcels [get]
func ListParcels(svc service.ParcelService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		parcels, err := svc.List(c.UserContext(), actorOf(c), c.Query("email"))
		if err != nil {
			return mapServiceError(c, err)
		}
		return c.JSON(parcels)
	}
}

// GetParcel godoc
//
//	@Summary	Get a parcel
//	@Tags		parcels
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"parcel id"
//	@Success	200	{object}	model.Parcel
//	@Failure	403	{object}	errorPayload
//	@Failure	404	{object}	errorPayload
//	@Router		/parcels/{id} [get]
func GetParcel(svc service.ParcelService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := svc.Get(c.UserContext(), actorOf(c), c.Params("id"))
		if err != nil {
			return mapServiceError(c, err)
		}
		return c.JSON(p)
	}
}

// UpdateParcel godoc
//
//	@Summary		Edit a pending parcel
//	@Description	Identity fields (_id, userEmail, parcelId) are ignored. The fee is recomputed.
//	@Tags			parcels
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"parcel id"
//	@Param			patch	body		model.ParcelPatch	true	"fields to change"
//	@Success		200		{object}	modifiedResponse
//	@Failure		400		{object}	errorPayload
//	@Failure		409		{object}	errorPayload
//	@Router			/parcels/{id} [patch]
func UpdateParcel(svc service.ParcelService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var p model.ParcelPatch
		if err := c.BodyParser(&p); err != nil {
			return invalidBody(c)
		}
		n, err := svc.Update(c.UserContext(), actorOf(c), c.Params("id"), p)
		if err != nil {
			return mapServiceError(c, err)
		}
		return c.JSON(modifiedResponse{ModifiedCount: n})
	}
}

// CancelParcel godoc
//
//	@Summary	Cancel a pending parcel
//	@Tags		parcels
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"parcel id"
//	@Success	200	{object}	deletedResponse
//	@Failure	409	{object}	errorPayload
//	@Router		/parcels/{id} [delete]
func CancelParcel(svc service.ParcelService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		n, err := svc.Cancel(c.UserContext(), actorOf(c), c.Params("id"))
		if err != nil {
			return mapServiceError(c, err)
		}
		return c.JSON(deletedResponse{DeletedCount: n})
	}
}
