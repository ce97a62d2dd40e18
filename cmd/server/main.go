package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/clausecheck/clausecheck/internal/analyzer"
	"github.com/clausecheck/clausecheck/internal/audit"
	"github.com/clausecheck/clausecheck/internal/config"
	"github.com/clausecheck/clausecheck/internal/llm"
	"github.com/clausecheck/clausecheck/internal/middleware"
	"github.com/clausecheck/clausecheck/internal/report"
)

var app *application

type application struct {
	cfg     *config.Config
	bridge  *llm.Analyzer
	reports *report.Generator
	auditor *audit.Auditor
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	app = newApplication(cfg)
	defer app.auditor.Close()

	router := newRouter()

	readTimeout, _ := time.ParseDuration(cfg.Server.ReadTimeout)
	writeTimeout, _ := time.ParseDuration(cfg.Server.WriteTimeout)

	// Start server
	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting contract analysis service on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}

// newRouter builds the service router with the middleware chain. Every
// route also accepts OPTIONS so browser preflight requests match and reach
// the CORS middleware instead of falling through to a 405.
func newRouter() *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.CORS)

	router.HandleFunc("/", rootHandler).Methods("GET", "OPTIONS")
	router.HandleFunc("/health", healthHandler).Methods("GET", "OPTIONS")
	router.HandleFunc("/analyze", analyzeHandler).Methods("POST", "OPTIONS")
	router.HandleFunc("/analyze-file", analyzeFileHandler).Methods("POST", "OPTIONS")
	router.HandleFunc("/generate-report", generateReportHandler).Methods("POST", "OPTIONS")
	router.HandleFunc("/analyze-file-report", analyzeFileReportHandler).Methods("POST", "OPTIONS")

	return router
}

func newApplication(cfg *config.Config) *application {
	var client *llm.Client
	if cfg.HuggingFace.Enabled && cfg.HuggingFace.APIToken != "" {
		client = llm.NewClient(cfg.HuggingFace.APIToken, cfg.HuggingFace.Model)
	}

	var auditor *audit.Auditor
	if cfg.Audit.Enabled {
		auditor = audit.NewAuditor(cfg.Audit.DBPath)
	} else {
		auditor = &audit.Auditor{}
	}

	return &application{
		cfg:     cfg,
		bridge:  llm.NewAnalyzer(client),
		reports: report.NewGenerator(cfg.Report.Title, cfg.Report.Subtitle),
		auditor: auditor,
	}
}

// AnalysisRequest is the JSON body accepted by /analyze and
// /generate-report.
type AnalysisRequest struct {
	Content  string `json:"content"`
	Filename string `json:"filename"`
}

// AnalysisResponse is the JSON payload returned by the analysis endpoints.
type AnalysisResponse struct {
	AnalysisID string                       `json:"analysis_id"`
	Filename   string                       `json:"filename"`
	RiskLevel  string                       `json:"risk_level"`
	RiskScore  int                          `json:"risk_score"`
	Risks      []analyzer.Finding           `json:"risks"`
	Compliance []analyzer.ComplianceFinding `json:"compliance"`
	Summary    string                       `json:"summary"`
	Timestamp  string                       `json:"timestamp"`
}

// analyzeContent runs the AI-assisted pipeline over extracted text. The
// bridge falls back to pure pattern matching on any remote failure, so this
// never errors.
func (a *application) analyzeContent(ctx context.Context, content string) analyzer.Result {
	risks, score, _ := a.bridge.AnalyzeRisks(ctx, content)
	compliance := analyzer.ScanCompliance(content)

	return analyzer.Result{
		RiskLevel:  analyzer.RiskLevel(score),
		RiskScore:  score,
		Risks:      risks,
		Compliance: compliance,
		Summary:    analyzer.Summarize(risks, compliance, score),
	}
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "AI Contract Risk Analyzer API",
		"status":  "running",
	})
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func analyzeHandler(w http.ResponseWriter, r *http.Request) {
	var req AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := buildResponse(app.analyzeContent(r.Context(), req.Content), req.Filename)
	app.auditor.Log(resp.AnalysisID, "/analyze", resp.Filename, resp.RiskLevel, resp.RiskScore, nil)
	writeJSON(w, http.StatusOK, resp)
}

func analyzeFileHandler(w http.ResponseWriter, r *http.Request) {
	content, filename, ok := readUpload(w, r)
	if !ok {
		return
	}

	resp := buildResponse(app.analyzeContent(r.Context(), content), filename)
	app.auditor.Log(resp.AnalysisID, "/analyze-file", filename, resp.RiskLevel, resp.RiskScore, nil)
	writeJSON(w, http.StatusOK, resp)
}

func generateReportHandler(w http.ResponseWriter, r *http.Request) {
	var req AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeReport(w, r, app.analyzeContent(r.Context(), req.Content), req.Filename, "/generate-report")
}

func analyzeFileReportHandler(w http.ResponseWriter, r *http.Request) {
	content, filename, ok := readUpload(w, r)
	if !ok {
		return
	}

	writeReport(w, r, app.analyzeContent(r.Context(), content), filename, "/analyze-file-report")
}

// readUpload reads the multipart upload, extracts text for the declared
// content type, and writes the appropriate 400 response on failure.
// Extraction errors come back as literal strings per the analyzer contract.
func readUpload(w http.ResponseWriter, r *http.Request) (content, filename string, ok bool) {
	if err := r.ParseMultipartForm(app.cfg.Server.MaxUploadSize); err != nil {
		http.Error(w, fmt.Sprintf("Failed to read file: %v", err), http.StatusBadRequest)
		return "", "", false
	}

	file, header, err := r.FormFile("file")
	if err != nil || header.Filename == "" {
		http.Error(w, "No file provided", http.StatusBadRequest)
		return "", "", false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to read file: %v", err), http.StatusBadRequest)
		return "", "", false
	}

	text := analyzer.ExtractText(data, header.Header.Get("Content-Type"))
	if analyzer.IsExtractionError(text) {
		app.auditor.Log("", r.URL.Path, header.Filename, "", 0, fmt.Errorf("%s", text))
		http.Error(w, text, http.StatusBadRequest)
		return "", "", false
	}

	return text, header.Filename, true
}

func buildResponse(result analyzer.Result, filename string) AnalysisResponse {
	return AnalysisResponse{
		AnalysisID: uuid.New().String(),
		Filename:   filename,
		RiskLevel:  result.RiskLevel,
		RiskScore:  result.RiskScore,
		Risks:      result.Risks,
		Compliance: result.Compliance,
		Summary:    result.Summary,
		Timestamp:  time.Now().Format(time.RFC3339),
	}
}

func writeReport(w http.ResponseWriter, r *http.Request, result analyzer.Result, filename, endpoint string) {
	analysisID := uuid.New().String()
	meta := report.Metadata{
		AnalysisID: analysisID,
		Filename:   filename,
		Timestamp:  time.Now(),
	}

	pdfBytes, err := app.reports.Generate(result, meta)
	if err != nil {
		app.auditor.Log(analysisID, endpoint, filename, result.RiskLevel, result.RiskScore, err)
		http.Error(w, fmt.Sprintf("Failed to generate report: %v", err), http.StatusInternalServerError)
		return
	}
	app.auditor.Log(analysisID, endpoint, filename, result.RiskLevel, result.RiskScore, nil)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=contract_analysis_%s.pdf", analysisID[:8]))
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
