package api

import "context"

// CreatePayment asks the backend to initiate a payment with its provider.
// The client only relays data; redirects and USSD prompts are the
// provider's business.
func (c *Client) CreatePayment(ctx context.Context, request PaymentRequest) (PaymentResponse, error) {
	var resp PaymentResponse
	if err := c.Post(ctx, "/api/v1/create-payment", request, &resp); err != nil {
		return PaymentResponse{}, err
	}
	return resp, nil
}
