package api

import "context"

// DeliveryOrders lists orders assigned to the calling delivery staff.
func (c *Client) DeliveryOrders(ctx context.Context) ([]Order, error) {
	var wrapped envelope
	if err := c.Get(ctx, adminBase+"/delivery/orders", &wrapped); err != nil {
		return nil, err
	}

	var orders []Order
	if err := decodeEnveloped(wrapped, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

type deliveryConfirmRequest struct {
	Code string `json:"code"`
}

// ConfirmDelivery marks an order delivered using the QR code scanned at
// handover.
func (c *Client) ConfirmDelivery(ctx context.Context, orderID, code string) (Order, error) {
	path := adminBase + "/delivery/orders/" + orderID + "/confirm"

	var wrapped envelope
	if err := c.Post(ctx, path, deliveryConfirmRequest{Code: code}, &wrapped); err != nil {
		return Order{}, err
	}

	var order Order
	if err := decodeEnveloped(wrapped, &order); err != nil {
		return Order{}, err
	}
	return order, nil
}
