package handlers

import (
	"os"
	"time"

	"github.com/Nathan-Chantiny/Fridge-Inventory/domain"
	"github.com/Nathan-Chantiny/Fridge-Inventory/internal/api/presenters"
	"github.com/Nathan-Chantiny/Fridge-Inventory/pkg/agreement"
	"github.com/gofiber/fiber/v2"
)

type (
	AgreementHandler interface {
		GetStatus(c *fiber.Ctx) error
		Respond(c *fiber.Ctx) error
	}

	agreementHandler struct {
		agreementService agreement.AgreementService
	}
)

func NewAgreementHandler(agreementService agreement.AgreementService) AgreementHandler {
	return &agreementHandler{agreementService: agreementService}
}

func (h *agreementHandler) GetStatus(c *fiber.Ctx) error {
	res := domain.AgreementStatusResponse{Accepted: h.agreementService.Accepted()}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAgreementStatus)
}

func (h *agreementHandler) Respond(c *fiber.Ctx) error {
	req := new(domain.AgreementRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if !req.Accept {
		_ = h.agreementService.Record(false)
		// Declining ends the program, same as the desktop build.
		go func() {
			time.Sleep(100 * time.Millisecond)
			os.Exit(0)
		}()
		return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedAgreement, domain.ErrAgreementDeclined)
	}

	if err := h.agreementService.Record(true); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAgreement, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessAgreementAccept)
}
