// controllers/email_controller.go
package controller

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"
	"github.com/likexian/whois"
	"github.com/sirupsen/logrus"

	"verimail/config"
	"verimail/verifier"
)

type EmailController struct {
	Verifier *verifier.Verifier
	Logger   *logrus.Logger
}

func NewEmailController(v *verifier.Verifier, logger *logrus.Logger) *EmailController {
	return &EmailController{
		Verifier: v,
		Logger:   logger,
	}
}

type VerifyEmailRequest struct {
	Email string `json:"email" validate:"required"`
}

// verifyResponse flattens the verdict and optionally carries WHOIS data
// for the domain.
type verifyResponse struct {
	*verifier.Verdict
	Whois string `json:"whois,omitempty"`
}

// VerifyEmail handles a single synchronous verification request. The
// engine never fails outright: a status of Error inside the verdict is
// still a successful HTTP response.
func (ec *EmailController) VerifyEmail(c *fiber.Ctx) error {
	var req VerifyEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	if req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Email is required",
		})
	}

	start := time.Now()
	verdict := ec.Verifier.Verify(c.Context(), req.Email)

	ec.Logger.WithFields(logrus.Fields{
		"email":    verdict.Email,
		"status":   verdict.Status,
		"reason":   verdict.Details.Reason,
		"score":    verdict.Details.Score,
		"duration": time.Since(start).Round(time.Millisecond).String(),
	}).Info("email verified")

	if verdict.Status == verifier.StatusError {
		sentry.CaptureException(fmt.Errorf("verification failed for %s: %s", verdict.Email, verdict.Details.Error))
	}

	resp := verifyResponse{Verdict: verdict}
	if config.AppConfig.VerifyWhoisEnabled && verdict.Domain != "" {
		if whoisInfo, err := whois.Whois(verdict.Domain); err == nil {
			resp.Whois = whoisInfo
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Verification complete",
		"data":    resp,
	})
}
