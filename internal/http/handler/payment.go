package handler

import (
	"github.com/gofiber/fiber/v2"

	"zoomboom/internal/service"
)

type insertedResponse struct {
	InsertedID string `json:"insertedId"`
}

type paymentResponse struct {
	PaymentResult insertedResponse `json:"paymentResult"`
	ParcelResult  modifiedResponse `json:"parcelResult"`
}

// CreatePaymentIntent godoc
//
//	@Summary		Open a card payment intent
//	@Description	The amount sent to the gateway is price * 100 in the configured currency.
//	@Tags			payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		service.IntentRequest	true	"price in Taka"
//	@Success		200		{object}	model.PaymentIntent
//	@Failure		400		{object}	errorPayload
//	@Router			/create-payment-intent [post]
func CreatePaymentIntent(svc service.PaymentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req service.IntentRequest
		if err := c.BodyParser(&req); err != nil {
			return invalidBody(c)
		}
		intent, err := svc.CreateIntent(c.UserContext(), actorOf(c), req)
		if err != nil {
			return mapServiceError(c, err)
		}
		return c.JSON(intent)
	}
}

// RecordPayment godoc
//
//	@Summary	Record a confirmed payment and mark the parcel Paid
//	@Tags		payments
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		service.PaymentRequest	true	"confirmed payment"
//	@Success	201		{object}	paymentResponse
//	@Failure	400		{object}	errorPayload
//	@Failure	402		{object}	errorPayload
//	@Failure	409		{object}	errorPayload
//	@Router		/payments [post]
func RecordPayment(svc service.PaymentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req service.PaymentRequest
		if err := c.BodyParser(&req); err != nil {
			return invalidBody(c)
		}
		receipt, err := svc.Record(c.UserContext(), actorOf(c), req)
		if err != nil {
			return mapServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(paymentResponse{
			PaymentResult: insertedResponse{InsertedID: receipt.PaymentID},
			ParcelResult:  modifiedResponse{ModifiedCount: receipt.ParcelsModified},
		})
	}
}

// PaymentHistory godoc
//
//	@Summary	List payments newest first
//	@Tags		payments
//	@Security	BearerAuth
//	@Produce	json
//	@Param		email	query		string	false	"payer email, defaults to the caller"
//	@Success	200		{array}		model.Payment
//	@Failure	403		{object}	errorPayload
//	@Router		/payments [get]
func PaymentHistory(svc service.PaymentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		payments, err := svc.History(c.UserContext(), actorOf(c), c.Query("email"))
		if err != nil {
			return mapServiceError(c, err)
		}
		return c.JSON(payments)
	}
}
