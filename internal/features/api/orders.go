package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

const adminBase = "/api/v1/admin"

// PlaceOrder submits a customer order. Authentication rides on the
// init-data header in embedded mode.
func (c *Client) PlaceOrder(ctx context.Context, order OrderRequest) (Order, error) {
	var placed Order
	if err := c.Post(ctx, "/orders", order, &placed); err != nil {
		return Order{}, err
	}
	return placed, nil
}

// MyOrders returns the customer's order history.
func (c *Client) MyOrders(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := c.Get(ctx, "/api/v1/orders/me", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// ListOrders fetches orders for the admin dashboard, optionally filtered by
// status and capped at limit.
func (c *Client) ListOrders(ctx context.Context, status OrderStatus, limit int) ([]Order, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", string(status))
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	path := adminBase + "/all-orders"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var orders []Order
	if err := c.Get(ctx, path, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateOrderStatus moves an order along the kitchen pipeline.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID string, status OrderStatus) (Order, error) {
	path := fmt.Sprintf("%s/all-orders/%s/status", adminBase, orderID)

	var wrapped envelope
	if err := c.Put(ctx, path, map[string]OrderStatus{"status": status}, &wrapped); err != nil {
		return Order{}, err
	}

	var order Order
	if err := decodeEnveloped(wrapped, &order); err != nil {
		return Order{}, err
	}
	return order, nil
}

type assignRequest struct {
	OrderID         string `json:"orderId"`
	DeliveryStaffID string `json:"deliveryStaffId"`
}

// AssignDelivery hands an order to a delivery staff member.
func (c *Client) AssignDelivery(ctx context.Context, orderID, staffID string) (Order, error) {
	var wrapped envelope
	if err := c.Post(ctx, adminBase+"/orders/assign", assignRequest{OrderID: orderID, DeliveryStaffID: staffID}, &wrapped); err != nil {
		return Order{}, err
	}

	var order Order
	if err := decodeEnveloped(wrapped, &order); err != nil {
		return Order{}, err
	}
	return order, nil
}

// KitchenOrders is the staff dashboard's work queue.
func (c *Client) KitchenOrders(ctx context.Context) ([]Order, error) {
	var wrapped envelope
	if err := c.Get(ctx, adminBase+"/kitchen/orders", &wrapped); err != nil {
		return nil, err
	}

	var orders []Order
	if err := decodeEnveloped(wrapped, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
