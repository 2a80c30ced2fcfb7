package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type client struct {
	BaseURL   string
	OutFormat string // json | text
	HTTP      *http.Client
	Out       io.Writer
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// call performs the request and unwraps the response envelope. Non-2xx
// answers become errors carrying the server message.
func (c *client) call(ctx context.Context, method, path string) (json.RawMessage, error) {
	url := strings.TrimRight(c.BaseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		return nil, err
	}
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, fmt.Errorf("%s %s: status=%d: unexpected body", method, path, resp.StatusCode)
	}
	if resp.StatusCode/100 != 2 {
		msg := env.Message
		if msg == "" {
			msg = env.Status
		}
		return nil, fmt.Errorf("%s %s: status=%d: %s", method, path, resp.StatusCode, msg)
	}
	// probes answer without the envelope
	if env.Data == nil {
		return b, nil
	}
	return env.Data, nil
}

func (c *client) print(data json.RawMessage, text func() string) {
	if c.OutFormat == "json" {
		var v any
		if json.Unmarshal(data, &v) == nil {
			p, _ := json.MarshalIndent(v, "", "  ")
			fmt.Fprintln(c.Out, string(p))
			return
		}
	}
	fmt.Fprintln(c.Out, text())
}
