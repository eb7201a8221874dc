package handler

import (
	"github.com/gofiber/fiber/v2"

	"zoomboom/internal/model"
	"zoomboom/internal/service"
)

type roleResponse struct {
	Role model.Role `json:"role"`
}

// RegisterUser godoc
//
//	@Summary		Create or refresh an account after sign-in
//	@Description	Upserts by the email the ID token was issued for. An existing role and createdAt are kept.
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			user	body		service.RegisterRequest	true	"identity provider profile"
//	@Success		200		{object}	model.User
//	@Failure		400		{object}	errorPayload
//	@Failure		401		{object}	errorPayload
//	@Failure		403		{object}	errorPayload
//	@Router			/users [put]
func RegisterUser(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req service.RegisterRequest
		if err := c.BodyParser(&req); err != nil {
			return invalidBody(c)
		}
		u, err := svc.Register(c.UserContext(), req)
		if err != nil {
			return mapServiceError(c, err)
		}
		return c.JSON(u)
	}
}

// GetUser godoc
//
//	@Summary	Get an account
//	@Tags		users
//	@Security	BearerAuth
//	@Produce	json
//	@Param		email	path		string	true	"account email"
//	@Success	200		{object}	model.User
//	@Failure	403		{object}	errorPayload
//	@Failure	404		{object}	errorPayload
//	@Router		/users/{email} [get]
func GetUser(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := svc.Get(c.UserContext(), actorOf(c), c.Params("email"))
		if err != nil {
			return mapServiceError(c, err)
		}
		return c.JSON(u)
	}
}

// GetUserRole godoc
//
//	@Summary	Get the role of an account
//	@Tags		users
//	@Security	BearerAuth
//	@Produce	json
//	@Param		email	path		string	true	"account email"
//	@Success	200		{object}	roleResponse
//	@Failure	404		{object}	errorPayload
//	@Router		/users/{email}/role [get]
func GetUserRole(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, err := svc.Role(c.UserContext(), actorOf(c), c.Params("email"))
		if err != nil {
			return mapServiceError(c, err)
		}
		return c.JSON(roleResponse{Role: role})
	}
}

// UpdateProfile godoc
//
//	@Summary	Edit the caller's name or photo
//	@Tags		users
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		email	path		string					true	"account email"
//	@Param		profile	body		service.ProfileRequest	true	"fields to change"
//	@Success	200		{object}	modifiedResponse
//	@Failure	403		{object}	errorPayload
//	@Router		/users/{email} [patch]
func UpdateProfile(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req service.ProfileRequest
		if err := c.BodyParser(&req); err != nil {
			return invalidBody(c)
		}
		n, err := svc.UpdateProfile(c.UserContext(), actorOf(c), c.Params("email"), req)
		if err != nil {
			return mapServiceError(c, err)
		}
		return c.JSON(modifiedResponse{ModifiedCount: n})
	}
}
