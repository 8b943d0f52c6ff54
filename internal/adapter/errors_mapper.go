package adapter

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-flight-board/models"
	"github.com/go-resty/resty/v2"
)

// maxErrorBodyLength caps how much of an upstream error body is kept for logs.
const maxErrorBodyLength = 512

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if len(body) > maxErrorBodyLength {
		body = body[:maxErrorBodyLength]
	}
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	return &UpstreamError{StatusCode: resp.StatusCode(), Message: body}
}

// mapPayloadError reports an error object embedded by the provider into an
// otherwise successful response.
func mapPayloadError(statusCode int, payload *models.UpstreamErrorResponse) error {
	if payload == nil {
		return nil
	}

	msg := payload.Code
	if payload.Message != "" {
		msg += ": " + payload.Message
	}

	return &UpstreamError{StatusCode: statusCode, Message: msg}
}
