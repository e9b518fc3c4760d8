package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// FieldError is one entry of a VALIDATION_ERROR response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError is a non-2xx response decoded from the server's error envelope.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Fields     []FieldError
	RequestID  string
}

func (e *APIError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Code, e.Message)
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return fmt.Sprintf("%d %s: %s [%s]", e.StatusCode, e.Code, e.Message, strings.Join(parts, "; "))
}

// SchedulingClient calls the slotkeeper JSON API. Request bodies are sent as
// given; pass the pkg/model drafts or any value with the same JSON shape.
type SchedulingClient struct {
	httpClient *HttpClient
}

func NewSchedulingClient(baseURL string) *SchedulingClient {
	return &SchedulingClient{
		httpClient: NewHttpClient(baseURL),
	}
}

// ValidateBooking posts draft and decodes the normalized draft into out.
func (c *SchedulingClient) ValidateBooking(ctx context.Context, draft, out any) error {
	return c.call(ctx, "/api/v1/bookings/validate", draft, out)
}

func (c *SchedulingClient) BookingConflicts(ctx context.Context, req, out any) error {
	return c.call(ctx, "/api/v1/bookings/conflicts", req, out)
}

func (c *SchedulingClient) ProrateBooking(ctx context.Context, req, out any) error {
	return c.call(ctx, "/api/v1/bookings/proration", req, out)
}

func (c *SchedulingClient) ValidateDeliverySlot(ctx context.Context, draft, out any) error {
	return c.call(ctx, "/api/v1/delivery-slots/validate", draft, out)
}

func (c *SchedulingClient) DeliverySlotConflicts(ctx context.Context, req, out any) error {
	return c.call(ctx, "/api/v1/delivery-slots/conflicts", req, out)
}

func (c *SchedulingClient) DeliverySlotStatus(ctx context.Context, draft, out any) error {
	return c.call(ctx, "/api/v1/delivery-slots/status", draft, out)
}

func (c *SchedulingClient) ValidatePayment(ctx context.Context, draft, out any) error {
	return c.call(ctx, "/api/v1/payments/validate", draft, out)
}

func (c *SchedulingClient) call(ctx context.Context, path string, body, out any) error {
	resp, err := c.httpClient.POST(ctx, path, body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return decodeAPIError(resp)
	}

	if out == nil {
		return nil
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := resp.DecodeJSON(&envelope); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}

func decodeAPIError(resp *Response) error {
	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details struct {
			Errors []FieldError `json:"errors"`
		} `json:"details"`
	}

	apiErr := &APIError{StatusCode: resp.StatusCode, RequestID: resp.RequestID()}
	if err := resp.DecodeJSON(&body); err != nil {
		apiErr.Message = strings.TrimSpace(string(resp.Body))
		return apiErr
	}

	apiErr.Code = body.Code
	apiErr.Message = body.Message
	apiErr.Fields = body.Details.Errors
	return apiErr
}
