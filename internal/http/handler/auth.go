package handler

import (
	"github.com/gofiber/fiber/v2"

	"zoomboom/internal/http/middleware"
	"zoomboom/internal/service"
)

// IssueToken godoc
//
//	@Summary	Exchange an identity provider ID token for an API token
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		service.LoginRequest	true	"ID token from the identity provider"
//	@Success	200		{object}	auth.Token
//	@Failure	400		{object}	errorPayload
//	@Failure	401		{object}	errorPayload
//	@Failure	500		{object}	errorPayload
//	@Router		/jwt [post]
func IssueToken(svc service.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req service.LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return invalidBody(c)
		}
		tok, err := svc.Login(c.UserContext(), req)
		if err != nil {
			return mapServiceError(c, err)
		}
		return c.JSON(tok)
	}
}

// Logout godoc
//
//	@Summary	Revoke the caller's token
//	@Tags		auth
//	@Security	BearerAuth
//	@Success	204
//	@Failure	401	{object}	errorPayload
//	@Router		/logout [post]
func Logout(svc service.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := middleware.ClaimsFrom(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		if err := svc.Logout(c.UserContext(), claims); err != nil {
			return mapServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
