// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package web

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cnic-scan/internal/detector"
)

var fullCardLines = []string{
	"Islamic Republic of Pakistan",
	"Name Muhammad Ali",
	"Father Name Ghulam Hussain",
	"Gender Male",
	"Country of Stay Pakistan",
	"Identity Number 38403-9346396-1",
	"Date of Birth 10.11.1987",
	"Date of Issue 01.01.2015",
	"Date of Expiry 01.01.2025",
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ws := NewWebServer("8080", nil)
	server := httptest.NewServer(ws.routes())
	t.Cleanup(server.Close)
	return server
}

func TestHandleHealth(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var health map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "healthy", health["status"])
	assert.Equal(t, "cnic-scan-web", health["service"])
}

func TestHandleVersion(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/version")
	require.NoError(t, err)
	defer resp.Body.Close()

	var info map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&info))
	assert.NotEmpty(t, info["version"])
	assert.NotEmpty(t, info["platform"])
}

func TestHandleFormats(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/formats")
	require.NoError(t, err)
	defer resp.Body.Close()

	var views []struct {
		Name     string `json:"name"`
		MimeType string `json:"mime_type"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&views))

	names := make(map[string]bool)
	for _, v := range views {
		names[v.Name] = true
	}
	for _, want := range []string{"json", "text", "csv", "yaml"} {
		assert.True(t, names[want], "missing format %s", want)
	}
}

func TestHandleExtract_JSONBody(t *testing.T) {
	server := newTestServer(t)

	body, _ := json.Marshal(map[string]interface{}{"lines": fullCardLines})
	resp, err := http.Post(server.URL+"/extract", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result detector.ExtractionResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	require.True(t, result.Success, "message: %s", result.Message)
	assert.Equal(t, "Muhammad Ali", result.Data.Name)
	assert.Equal(t, "38403-9346396-1", result.Data.IdentityNumber)
}

func TestHandleExtract_IncompleteInput(t *testing.T) {
	server := newTestServer(t)

	body, _ := json.Marshal(map[string]interface{}{"lines": []string{"Name Muhammad Ali"}})
	resp, err := http.Post(server.URL+"/extract", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	// Extraction failure is a valid result, not an HTTP error
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result detector.ExtractionResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "Image quality is poor")
	assert.Contains(t, result.MissingOrInvalid, "identity_number")
}

func TestHandleExtract_RawMode(t *testing.T) {
	server := newTestServer(t)

	body, _ := json.Marshal(map[string]interface{}{
		"lines": []string{"Islamic Republic of Pakistan", "Name Muhammad Ali"},
		"raw":   true,
	})
	resp, err := http.Post(server.URL+"/extract", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var views []struct {
		Shape string `json:"shape"`
		Noise bool   `json:"noise"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&views))
	require.Len(t, views, 2)
	assert.True(t, views[0].Noise)
	assert.Equal(t, "label-value", views[1].Shape)
}

func TestHandleExtract_MultipartUpload(t *testing.T) {
	server := newTestServer(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "card.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte(strings.Join(fullCardLines, "\n")))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	resp, err := http.Post(server.URL+"/extract", writer.FormDataContentType(), &buf)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result detector.ExtractionResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	require.True(t, result.Success, "message: %s", result.Message)
	assert.Equal(t, "Ghulam Hussain", result.Data.FatherName)
}

func TestHandleExtract_MethodNotAllowed(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/extract")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestHandleExtract_InvalidJSON(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Post(server.URL+"/extract", "application/json", strings.NewReader("{not json"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleExtract_UnsupportedFormat(t *testing.T) {
	server := newTestServer(t)

	body, _ := json.Marshal(map[string]interface{}{
		"lines":  fullCardLines,
		"format": "parquet",
	})
	resp, err := http.Post(server.URL+"/extract", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
