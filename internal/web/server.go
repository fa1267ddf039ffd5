// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package web

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cnic-scan/internal/config"
	"cnic-scan/internal/core"
	"cnic-scan/internal/formatters"
	"cnic-scan/internal/observability"
	"cnic-scan/internal/preprocessors"
	"cnic-scan/internal/version"

	// Import formatters to register them
	_ "cnic-scan/internal/formatters/csv"
	_ "cnic-scan/internal/formatters/json"
	_ "cnic-scan/internal/formatters/text"
	_ "cnic-scan/internal/formatters/yaml"
)

// WebServer exposes the extraction engine over HTTP
type WebServer struct {
	port     string
	cfg      *config.Config
	engine   *core.Engine
	manager  *preprocessors.PreprocessorManager
	server   *http.Server
	observer *observability.StandardObserver
}

// NewWebServer creates a web server around a configured engine
func NewWebServer(port string, cfg *config.Config) *WebServer {
	if cfg == nil {
		cfg = config.LoadConfigOrDefault("")
	}
	return &WebServer{
		port:    port,
		cfg:     cfg,
		engine:  core.NewEngine(cfg),
		manager: preprocessors.NewDefaultManager(),
	}
}

// SetObserver sets the observability component
func (ws *WebServer) SetObserver(observer *observability.StandardObserver) {
	ws.observer = observer
	ws.engine.SetObserver(observer)
	ws.manager.SetObserver(observer)
}

// Start runs the server, falling back through ports 8080-8089 when the
// requested port is taken.
func (ws *WebServer) Start() error {
	var lastError error
	for i := 0; i < 10; i++ {
		currentPort := ws.port
		if i > 0 || ws.port == "8080" {
			currentPort = fmt.Sprintf("%d", 8080+i)
		}

		// Test if port is available first
		listener, err := net.Listen("tcp", ":"+currentPort)
		if err != nil {
			lastError = err
			if i == 0 {
				fmt.Printf("Port %s is not available, trying alternative ports...\n", currentPort)
			}
			continue
		}
		listener.Close()

		ws.server = ws.createSecureServer(currentPort)

		fmt.Printf("CNIC Scan web server started on port %s\n", currentPort)
		fmt.Printf("Local: http://localhost:%s\n", currentPort)

		if err := ws.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			lastError = err
			fmt.Printf("Server on port %s failed: %v\n", currentPort, err)
			continue
		}
		return nil
	}

	return fmt.Errorf("could not find an available port in range 8080-8089\n"+
		"Last error: %v\n"+
		"Troubleshooting:\n"+
		"  1. Check if other services are using these ports: netstat -an | grep :808\n"+
		"  2. Try a specific port with --port <number>\n"+
		"  3. Ensure you have permission to bind to the requested port", lastError)
}

// Stop stops the web server
func (ws *WebServer) Stop() error {
	if ws.server != nil {
		return ws.server.Close()
	}
	return nil
}

// createSecureServer builds the http.Server with timeout configurations
func (ws *WebServer) createSecureServer(port string) *http.Server {
	return &http.Server{
		Addr:    ":" + port,
		Handler: ws.routes(),
		// Timeout for reading request headers (prevents slow header attacks)
		ReadHeaderTimeout: 15 * time.Second,
		// Timeout for reading entire request
		ReadTimeout: 30 * time.Second,
		// Timeout for writing response
		WriteTimeout: 30 * time.Second,
		// Timeout for idle connections
		IdleTimeout: 60 * time.Second,
	}
}

// routes builds the request mux. Exposed for handler tests.
func (ws *WebServer) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", ws.serveHome)
	mux.HandleFunc("/health", ws.handleHealth)
	mux.HandleFunc("/version", ws.handleVersion)
	mux.HandleFunc("/formats", ws.handleFormats)
	mux.HandleFunc("/extract", ws.handleExtract)
	return mux
}

func (ws *WebServer) serveHome(responseWriter http.ResponseWriter, request *http.Request) {
	if request.URL.Path != "/" {
		http.NotFound(responseWriter, request)
		return
	}
	responseWriter.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(responseWriter, homePage)
}

func (ws *WebServer) handleHealth(responseWriter http.ResponseWriter, request *http.Request) {
	if request.Method != "GET" {
		http.Error(responseWriter, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	versionInfo := version.Full()
	healthData := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "cnic-scan-web",
		"version":   versionInfo["version"],
		"build_info": map[string]interface{}{
			"version":    versionInfo["version"],
			"commit":     versionInfo["commit"],
			"build_date": versionInfo["buildDate"],
			"go_version": versionInfo["goVersion"],
			"platform":   versionInfo["platform"],
		},
	}

	responseWriter.Header().Set("Content-Type", "application/json")
	responseWriter.WriteHeader(http.StatusOK)
	json.NewEncoder(responseWriter).Encode(healthData)
}

func (ws *WebServer) handleVersion(responseWriter http.ResponseWriter, request *http.Request) {
	if request.Method != "GET" {
		http.Error(responseWriter, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	responseWriter.Header().Set("Content-Type", "application/json")
	json.NewEncoder(responseWriter).Encode(version.Full())
}

func (ws *WebServer) handleFormats(responseWriter http.ResponseWriter, request *http.Request) {
	if request.Method != "GET" {
		http.Error(responseWriter, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	type formatView struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Extension   string `json:"extension"`
		MimeType    string `json:"mime_type"`
	}
	var views []formatView
	for _, info := range formatters.GetSupportedFormats() {
		views = append(views, formatView{
			Name:        info.Name,
			Description: info.Description,
			Extension:   info.Extension,
			MimeType:    info.MimeType,
		})
	}

	responseWriter.Header().Set("Content-Type", "application/json")
	json.NewEncoder(responseWriter).Encode(views)
}

// extractRequest is the JSON body accepted by POST /extract
type extractRequest struct {
	Lines  []string `json:"lines"`
	Raw    bool     `json:"raw"`
	Format string   `json:"format"`
}

// handleExtract accepts either a JSON body with OCR lines or a multipart
// upload of an OCR text or PDF file, runs the engine, and responds in the
// requested format (JSON when unspecified).
func (ws *WebServer) handleExtract(responseWriter http.ResponseWriter, request *http.Request) {
	if request.Method != "POST" {
		http.Error(responseWriter, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req extractRequest
	contentType := request.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := request.ParseMultipartForm(ws.cfg.Server.MaxUploadBytes); err != nil {
			ws.sendError(responseWriter, http.StatusBadRequest, "Failed to parse form data")
			return
		}
		req.Raw = request.FormValue("raw") == "true"
		req.Format = request.FormValue("format")

		files := request.MultipartForm.File["file"]
		if len(files) == 0 {
			ws.sendError(responseWriter, http.StatusBadRequest, "No file uploaded")
			return
		}
		lines, err := ws.linesFromUpload(files[0])
		if err != nil {
			ws.sendError(responseWriter, http.StatusUnprocessableEntity, err.Error())
			return
		}
		req.Lines = lines
	} else {
		if err := json.NewDecoder(request.Body).Decode(&req); err != nil {
			ws.sendError(responseWriter, http.StatusBadRequest, "Invalid JSON body")
			return
		}
	}

	if req.Format == "" {
		req.Format = "json"
	}

	options := formatters.FormatterOptions{NoColor: true}
	var content, mimeType string
	var err error
	if req.Raw {
		content, mimeType, _, err = formatters.ExportForWeb(req.Format, nil, ws.engine.ExtractRaw(req.Lines), options)
	} else {
		content, mimeType, _, err = formatters.ExportForWeb(req.Format, ws.engine.Extract(req.Lines), nil, options)
	}
	if err != nil {
		ws.sendError(responseWriter, http.StatusBadRequest, err.Error())
		return
	}

	responseWriter.Header().Set("Content-Type", mimeType)
	responseWriter.WriteHeader(http.StatusOK)
	io.WriteString(responseWriter, content)
}

// linesFromUpload persists the upload to a temp file and routes it through
// the preprocessor chain, so web uploads accept the same inputs as --file.
func (ws *WebServer) linesFromUpload(fileHeader *multipart.FileHeader) ([]string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	tmpDir, err := os.MkdirTemp("", "cnic-scan-upload")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	tmpPath := filepath.Join(tmpDir, filepath.Base(fileHeader.Filename))
	dst, err := os.Create(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("failed to buffer upload: %w", err)
	}
	if _, err := io.Copy(dst, io.LimitReader(src, ws.cfg.Server.MaxUploadBytes)); err != nil {
		dst.Close()
		return nil, fmt.Errorf("failed to buffer upload: %w", err)
	}
	dst.Close()

	processed, err := ws.manager.ProcessFile(tmpPath)
	if err != nil {
		return nil, err
	}
	return processed.Lines, nil
}

// sendError writes a JSON error response
func (ws *WebServer) sendError(responseWriter http.ResponseWriter, status int, message string) {
	responseWriter.Header().Set("Content-Type", "application/json")
	responseWriter.WriteHeader(status)
	json.NewEncoder(responseWriter).Encode(map[string]string{"error": message})
}

// homePage is the embedded single-page UI for manual testing
const homePage = `<!DOCTYPE html>
<html>
<head><title>CNIC Scan</title></head>
<body>
<h1>CNIC Scan</h1>
<p>Paste OCR output, one text region per line, and submit.</p>
<textarea id="lines" rows="12" cols="60"></textarea><br>
<button onclick="extract()">Extract</button>
<pre id="result"></pre>
<script>
async function extract() {
  const lines = document.getElementById('lines').value.split('\n');
  const resp = await fetch('/extract', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify({lines: lines})
  });
  document.getElementById('result').textContent = await resp.text();
}
</script>
</body>
</html>
`
