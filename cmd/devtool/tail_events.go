package main

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/osse101/ProjectLife_Go/internal/sse"
)

type TailEventsCommand struct{}

func (c *TailEventsCommand) Name() string {
	return "tail-events"
}

func (c *TailEventsCommand) Description() string {
	return "Print the live event stream of a running server [user_id] [types]"
}

func (c *TailEventsCommand) Run(args []string) error {
	query := url.Values{}
	if len(args) > 0 && args[0] != "" {
		query.Set(sse.QueryParamUserID, args[0])
	}
	if len(args) > 1 && args[1] != "" {
		query.Set(sse.QueryParamTypes, args[1])
	}

	target := strings.TrimRight(apiURL(), "/") + "/api/v1/events"
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	PrintHeader(fmt.Sprintf("Tailing %s (Ctrl+C to stop)", target))

	err := tailEvents(ctx, http.DefaultClient, target, os.Getenv(envAPIKey), 0, func(eventType, data string) {
		if eventType == sse.EventTypeKeepalive {
			return
		}
		PrintInfo("%s %s", eventType, data)
	})
	if ctx.Err() != nil {
		return nil
	}
	return err
}

// tailEvents reads the stream at target and calls onEvent for each complete
// event. It returns after limit events when limit is positive, or when the stream ends.
func tailEvents(ctx context.Context, client *http.Client, target, apiKey string, limit int, onEvent func(eventType, data string)) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "text/event-stream")
	if apiKey != "" {
		req.Header.Set(headerAPIKey, apiKey)
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	var eventType, data string
	seen := 0
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "event: "):
			eventType = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			data = strings.TrimPrefix(line, "data: ")
		case line == "" && eventType != "":
			onEvent(eventType, data)
			eventType, data = "", ""
			seen++
			if limit > 0 && seen >= limit {
				return nil
			}
		}
	}
	return scanner.Err()
}
