// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

// Package adapter bridges API Gateway proxy events to the standard
// net/http handler, so the same route table serves both the standalone
// server and the Lambda entry point.
package adapter

import (
	"bytes"
	"context"
	"encoding/base64"
	"net/http"
	"net/url"
	"strings"

	"github.com/aws/aws-lambda-go/events"

	"github.com/clevercastle/gowarden/internal/logger"
)

// Handler adapts one http.Handler to API Gateway proxy events.
type Handler struct {
	inner http.Handler
	log   *logger.Logger
}

// New returns the event adapter around inner.
func New(inner http.Handler, log *logger.Logger) *Handler {
	log.Debug().Msg("lambda adapter created")
	return &Handler{inner: inner, log: log}
}

// Handle translates the event into an *http.Request, serves it, and
// translates the captured response back. Translation failures surface as a
// 400 to the gateway, never as an invocation error.
func (h *Handler) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	req, err := newRequest(ctx, event)
	if err != nil {
		h.log.Warn().Err(err).Msg("error translating gateway event")
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusBadRequest,
			Body:       http.StatusText(http.StatusBadRequest),
		}, nil
	}

	rec := newRecorder()
	h.inner.ServeHTTP(rec, req)
	return rec.response(), nil
}

func newRequest(ctx context.Context, event events.APIGatewayProxyRequest) (*http.Request, error) {
	body := []byte(event.Body)
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			return nil, err
		}
		body = decoded
	}

	u := url.URL{
		Path:     stripStage(event.Path, event.RequestContext.Stage),
		RawQuery: queryString(event),
	}

	req, err := http.NewRequestWithContext(ctx, event.HTTPMethod, u.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	if len(event.MultiValueHeaders) > 0 {
		for name, values := range event.MultiValueHeaders {
			for _, value := range values {
				req.Header.Add(name, value)
			}
		}
	} else {
		for name, value := range event.Headers {
			req.Header.Set(name, value)
		}
	}

	req.Host = req.Header.Get("Host")
	req.RequestURI = u.RequestURI()
	if ip := event.RequestContext.Identity.SourceIP; ip != "" {
		req.RemoteAddr = ip
	}

	return req, nil
}

// stripStage removes the deployment stage prefix the gateway leaves on the
// path.
func stripStage(path, stage string) string {
	if stage == "" {
		return path
	}
	prefix := "/" + stage
	if path == prefix {
		return "/"
	}
	if strings.HasPrefix(path, prefix+"/") {
		return strings.TrimPrefix(path, prefix)
	}
	return path
}

func queryString(event events.APIGatewayProxyRequest) string {
	values := url.Values{}
	if len(event.MultiValueQueryStringParameters) > 0 {
		for name, vals := range event.MultiValueQueryStringParameters {
			for _, v := range vals {
				values.Add(name, v)
			}
		}
	} else {
		for name, v := range event.QueryStringParameters {
			values.Set(name, v)
		}
	}
	return values.Encode()
}

// recorder captures the handler's response for translation back into a
// gateway response.
type recorder struct {
	status int
	header http.Header
	body   bytes.Buffer
}

func newRecorder() *recorder {
	return &recorder{status: http.StatusOK, header: http.Header{}}
}

func (r *recorder) Header() http.Header {
	return r.header
}

func (r *recorder) WriteHeader(status int) {
	r.status = status
}

func (r *recorder) Write(b []byte) (int, error) {
	return r.body.Write(b)
}

func (r *recorder) response() events.APIGatewayProxyResponse {
	resp := events.APIGatewayProxyResponse{
		StatusCode:        r.status,
		MultiValueHeaders: r.header,
	}

	if isTextContentType(r.header.Get("Content-Type")) {
		resp.Body = r.body.String()
	} else {
		resp.Body = base64.StdEncoding.EncodeToString(r.body.Bytes())
		resp.IsBase64Encoded = true
	}
	return resp
}

// isTextContentType reports whether a body can travel through the gateway
// as plain text. Anything else is base64-encoded.
func isTextContentType(contentType string) bool {
	mime := strings.TrimSpace(strings.Split(contentType, ";")[0])
	if mime == "" {
		return true
	}
	if strings.HasPrefix(mime, "text/") {
		return true
	}
	switch mime {
	case "application/json", "application/xml", "application/javascript", "application/x-www-form-urlencoded":
		return true
	}
	return strings.HasSuffix(mime, "+json") || strings.HasSuffix(mime, "+xml")
}
