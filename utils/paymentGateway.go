package utils

import (
	"elearn/config"
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// GatewayChargeResponse represents the response from the payment gateway
type GatewayChargeResponse struct {
	TransactionID string  `json:"transaction_id"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
	Message       string  `json:"message"`
}

// ChargePayment collects a course fee through the configured gateway
// (bkash/nagad sandbox). Returns the gateway transaction reference.
// When no gateway is configured the charge is recorded locally with a
// generated reference so development setups keep working.
func ChargePayment(studentID uint, method string, amount float64) (string, error) {
	if amount <= 0 {
		return "", fmt.Errorf("invalid payment amount: %.2f", amount)
	}

	gatewayURL := config.AppConfig.PaymentGatewayURL
	if gatewayURL == "" {
		return uuid.NewString(), nil
	}

	client := resty.New()
	resp, err := client.R().
		SetHeader("Authorization", "Bearer "+config.AppConfig.PaymentGatewayKey).
		SetBody(map[string]interface{}{
			"customer_ref": fmt.Sprintf("student-%d", studentID),
			"method":       method,
			"amount":       amount,
			"currency":     "BDT",
			"idempotency":  uuid.NewString(),
		}).
		Post(gatewayURL + "charges")
	if err != nil {
		log.Printf("Payment gateway request failed: %v", err)
		return "", fmt.Errorf("payment gateway unreachable")
	}
	if resp.StatusCode() != 200 && resp.StatusCode() != 201 {
		log.Printf("Payment gateway rejected charge: %s", resp.String())
		return "", fmt.Errorf("payment was declined")
	}

	var chargeResp GatewayChargeResponse
	if err := json.Unmarshal(resp.Body(), &chargeResp); err != nil {
		log.Printf("Failed to parse gateway response: %v", err)
		return "", fmt.Errorf("invalid gateway response")
	}

	if chargeResp.Status != "success" {
		return "", fmt.Errorf("payment failed: %s", chargeResp.Message)
	}

	return chargeResp.TransactionID, nil
}
