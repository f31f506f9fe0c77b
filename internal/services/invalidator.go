package services

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"time"
)

// ViewInvalidator signals the presentation layer that cached renders of
// the given view paths are stale. Fire-and-forget: mutations emit the
// signal after success and never wait on or inspect the outcome.
type ViewInvalidator interface {
	Invalidate(paths ...string)
}

// HTTPInvalidator posts stale paths to the frontend's on-demand
// revalidation endpoint.
type HTTPInvalidator struct {
	endpoint string
	secret   string
	client   *http.Client
}

func NewHTTPInvalidator(frontendURL, secret string) *HTTPInvalidator {
	return &HTTPInvalidator{
		endpoint: frontendURL + "/api/revalidate",
		secret:   secret,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (i *HTTPInvalidator) Invalidate(paths ...string) {
	if len(paths) == 0 {
		return
	}

	go func() {
		body, err := json.Marshal(map[string]interface{}{
			"secret": i.secret,
			"paths":  paths,
		})
		if err != nil {
			return
		}

		resp, err := i.client.Post(i.endpoint, "application/json", bytes.NewReader(body))
		if err != nil {
			log.Println("revalidate: request failed:", err)
			return
		}
		resp.Body.Close()

		if resp.StatusCode >= 300 {
			log.Println("revalidate: unexpected status:", resp.Status, "paths:", paths)
		}
	}()
}

// LogInvalidator is the fallback when no revalidation secret is
// configured; it only records the signal.
type LogInvalidator struct{}

func (LogInvalidator) Invalidate(paths ...string) {
	log.Println("revalidate (noop):", paths)
}
