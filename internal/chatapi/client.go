// Package chatapi is the client for the recommendation service's chat
// endpoint.
package chatapi

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/bytedance/sonic/ast"

	"github.com/lojasmm/gadgetchat/internal/conversation"
)

// maxErrorBody bounds how much of a failed response is kept in the error.
const maxErrorBody = 512

type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient returns a client posting to endpoint. A zero timeout leaves
// failure detection to the transport.
func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
	}
}

// Endpoint returns the URL the client posts to.
func (c *Client) Endpoint() string { return c.endpoint }

// Chat sends one user message with the current context and returns the
// service's reply. Any failure is a *TransportError.
func (c *Client) Chat(ctx context.Context, req Request) (*Response, error) {
	if req.Context == nil {
		req.Context = conversation.Context{}
	}
	payload, err := sonic.Marshal(req)
	if err != nil {
		return nil, &TransportError{Kind: ErrEncode, Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, &TransportError{Kind: ErrNetwork, Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Kind: ErrNetwork, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Kind: ErrNetwork, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt := body
		if len(excerpt) > maxErrorBody {
			excerpt = excerpt[:maxErrorBody]
		}
		return nil, &TransportError{Kind: ErrStatus, Status: resp.StatusCode, Body: string(excerpt)}
	}

	var out Response
	if err := sonic.Unmarshal(body, &out); err != nil {
		return nil, &TransportError{Kind: ErrDecode, Err: err}
	}
	if !hasResponseField(body) {
		return nil, &TransportError{Kind: ErrDecode, Err: errors.New(`"response" is missing or not a string`)}
	}
	return &out, nil
}

// hasResponseField reports whether the body carried "response" as a JSON
// string. An absent or null field would otherwise decode as an empty reply.
func hasResponseField(body []byte) bool {
	node, err := sonic.Get(body, "response")
	if err != nil {
		return false
	}
	return node.TypeSafe() == ast.V_STRING
}
