// Copyright (c) 2026 Hearthdeck. All rights reserved.
// Author: ops@fellhollow.io

package ringsdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/fellhollow/hearthdeck/internal/platform/apperr"
)

// Client fetches card data from the live API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		logger: logger,
	}
}

// Packs returns the full pack catalog. The upstream endpoint has shipped
// both shapes over time: a plain array of packs, and an object keyed by
// pack code. Both are accepted.
func (client *Client) Packs(context context.Context) ([]Pack, error) {
	raw, err := client.get(context, "/packs/")
	if err != nil {
		return nil, err
	}

	var packs []Pack
	if err := json.Unmarshal(raw, &packs); err == nil {
		return packs, nil
	}

	var keyed map[string]Pack
	if err := json.Unmarshal(raw, &keyed); err != nil {
		return nil, apperr.Upstream("ringsdb_packs", fmt.Errorf("unexpected packs payload: %w", err))
	}

	packs = make([]Pack, 0, len(keyed))
	for code, pack := range keyed {
		if pack.Code == "" {
			pack.Code = code
		}
		packs = append(packs, pack)
	}
	return packs, nil
}

// CardsByPack returns every card printed in the given pack.
func (client *Client) CardsByPack(context context.Context, packCode string) ([]Card, error) {
	raw, err := client.get(context, "/cards/"+packCode+".json")
	if err != nil {
		return nil, err
	}

	var cards []Card
	if err := json.Unmarshal(raw, &cards); err != nil {
		return nil, apperr.Upstream("ringsdb_cards", fmt.Errorf("unexpected cards payload: %w", err))
	}
	return cards, nil
}

// Card returns a single card by its code.
func (client *Client) Card(context context.Context, code string) (*Card, error) {
	raw, err := client.get(context, "/card/"+code+".json")
	if err != nil {
		return nil, err
	}

	card := &Card{}
	if err := json.Unmarshal(raw, card); err != nil {
		return nil, apperr.Upstream("ringsdb_card", fmt.Errorf("unexpected card payload: %w", err))
	}
	return card, nil
}

func (client *Client) get(context context.Context, path string) ([]byte, error) {
	url := client.baseURL + path

	request, err := http.NewRequestWithContext(context, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperr.Upstream("ringsdb_request", err)
	}
	request.Header.Set("Accept", "application/json")

	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, apperr.Upstream("ringsdb_fetch", err)
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusNotFound {
		return nil, apperr.NotFound("card data")
	}
	if response.StatusCode != http.StatusOK {
		return nil, apperr.Upstream("ringsdb_fetch", fmt.Errorf("card database returned status %d for %s", response.StatusCode, path))
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, apperr.Upstream("ringsdb_read", err)
	}
	return body, nil
}
