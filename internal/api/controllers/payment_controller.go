package controllers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type PaymentController struct {
	paymentService services.PaymentServiceInterface
}

func NewPaymentController(paymentService services.PaymentServiceInterface) *PaymentController {
	return &PaymentController{paymentService: paymentService}
}

// gatewayEnvelope mirrors the webhook wire shape. Metadata lives under
// data.object.metadata on checkout events.
type gatewayEnvelope struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object struct {
			Metadata map[string]string `json:"metadata"`
		} `json:"object"`
	} `json:"data"`
}

// HandleWebhook godoc
// @Summary Receive a payment gateway event
// @Tags Payments
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /payments/webhook [post]
func (p *PaymentController) HandleWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	var envelope gatewayEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.ID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	event := services.GatewayEvent{
		ID:       envelope.ID,
		Type:     envelope.Type,
		Metadata: envelope.Data.Object.Metadata,
		Raw:      body,
	}

	if err := p.paymentService.ProcessGatewayEvent(c.Request.Context(), event); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Event processed successfully")
}
