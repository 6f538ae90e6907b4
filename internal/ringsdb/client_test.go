// Copyright (c) 2026 Hearthdeck. All rights reserved.
// Author: ops@fellhollow.io

package ringsdb_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fellhollow/hearthdeck/internal/platform/apperr"
	"github.com/fellhollow/hearthdeck/internal/ringsdb"
)

func testServer(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		body, ok := routes[request.URL.Path]
		if !ok {
			writer.WriteHeader(http.StatusNotFound)
			return
		}
		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

/*
TestClient_Packs_ArrayPayload covers the plain-array shape of the packs
catalog endpoint.
*/
func TestClient_Packs_ArrayPayload(t *testing.T) {
	server := testServer(t, map[string]string{
		"/packs/": `[{"code":"Core","name":"Core Set"},{"code":"DoG","name":"Dwarves of Durin"}]`,
	})

	client := ringsdb.NewClient(server.URL, slog.Default())
	packs, err := client.Packs(context.Background())

	require.NoError(t, err)
	require.Len(t, packs, 2)
	assert.Equal(t, "Core", packs[0].Code)
	assert.Equal(t, "Core Set", packs[0].Name)
}

/*
TestClient_Packs_KeyedPayload covers the object-keyed-by-code shape the
upstream has also served; codes missing from the pack bodies are filled
in from the object keys.
*/
func TestClient_Packs_KeyedPayload(t *testing.T) {
	server := testServer(t, map[string]string{
		"/packs/": `{"Core":{"name":"Core Set"},"DoG":{"code":"DoG","name":"Dwarves of Durin"}}`,
	})

	client := ringsdb.NewClient(server.URL, slog.Default())
	packs, err := client.Packs(context.Background())

	require.NoError(t, err)
	require.Len(t, packs, 2)

	byCode := map[string]string{}
	for _, pack := range packs {
		byCode[pack.Code] = pack.Name
	}
	assert.Equal(t, "Core Set", byCode["Core"])
	assert.Equal(t, "Dwarves of Durin", byCode["DoG"])
}

/*
TestClient_Card fetches a single card and maps upstream fields.
*/
func TestClient_Card(t *testing.T) {
	server := testServer(t, map[string]string{
		"/card/01001.json": `{"code":"01001","name":"Aragorn","type_code":"hero","sphere_code":"leadership","pack_code":"Core","quantity":1,"is_unique":true}`,
	})

	client := ringsdb.NewClient(server.URL, slog.Default())
	card, err := client.Card(context.Background(), "01001")

	require.NoError(t, err)
	assert.Equal(t, "Aragorn", card.Name)
	assert.Equal(t, "hero", card.TypeCode)
	assert.True(t, card.IsUnique)
}

/*
TestClient_Card_NotFound maps upstream 404s to a NOT_FOUND application
error instead of an upstream failure.
*/
func TestClient_Card_NotFound(t *testing.T) {
	server := testServer(t, map[string]string{})

	client := ringsdb.NewClient(server.URL, slog.Default())
	_, err := client.Card(context.Background(), "99999")

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
}

/*
TestClient_CardsByPack_BadPayload surfaces malformed upstream bodies as
upstream errors.
*/
func TestClient_CardsByPack_BadPayload(t *testing.T) {
	server := testServer(t, map[string]string{
		"/cards/Core.json": `{"not":"an array"}`,
	})

	client := ringsdb.NewClient(server.URL, slog.Default())
	_, err := client.CardsByPack(context.Background(), "Core")

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "UPSTREAM_ERROR", ae.Code)
}

/*
TestFilterPlayerCards keeps deck-legal types and drops encounter cards.
*/
func TestFilterPlayerCards(t *testing.T) {
	cards := []ringsdb.Card{
		{Code: "01001", TypeCode: "hero"},
		{Code: "01050", TypeCode: "ally"},
		{Code: "01120", TypeCode: "enemy"},
		{Code: "01130", TypeCode: "location"},
		{Code: "01060", TypeCode: "event"},
	}

	filtered := ringsdb.FilterPlayerCards(cards)

	require.Len(t, filtered, 3)
	for _, card := range filtered {
		assert.NotContains(t, []string{"enemy", "location"}, card.TypeCode)
	}
}
