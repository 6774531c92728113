package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/sajuscope/saju-engine/internal/fingerprint"
	"github.com/sajuscope/saju-engine/internal/i18n"
	"github.com/sajuscope/saju-engine/internal/sajuerr"
	"github.com/sajuscope/saju-engine/internal/saju"
)

const version = "1.0.0-saju-engine"

var (
	startTime = time.Now()
	engine    *saju.Engine
)

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// ChartRequest is the JSON request body for POST /api/chart.
type ChartRequest struct {
	Date             string  `json:"date"`
	Time             string  `json:"time"`
	Calendar         string  `json:"calendar"`
	LeapMonth        bool    `json:"leapMonth"`
	TZ               string  `json:"tz"`
	Gender           string  `json:"gender"`
	UseLocalMeanTime bool    `json:"useLocalMeanTime"`
	Longitude        *float64 `json:"longitude,omitempty"`
	Location         string  `json:"location,omitempty"`
	DaewonCount      int     `json:"daewonCount"`
	MonthYear        *int    `json:"monthYear,omitempty"`
	YearStart        *int    `json:"yearStart,omitempty"`
	YearCount        int     `json:"yearCount"`
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	engine = saju.NewEngine()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:*",
			"https://localhost:*",
			"http://127.0.0.1:*",
			"https://127.0.0.1:*",
		},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "ETag"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", handleRoot)
	r.Get("/health", handleHealth)
	r.Post("/api/chart", handleChart)

	addr := fmt.Sprintf(":%s", port)
	log.Printf("saju-engine API v%s starting on %s", version, addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server failed to start: %v", err)
	}
}

func handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"service": "saju-engine API",
		"version": version,
		"status":  "running",
	})
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:  "healthy",
		Version: version,
		Uptime:  formatDuration(time.Since(startTime)),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func handleChart(w http.ResponseWriter, r *http.Request) {
	var req ChartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, sajuerr.InputFormat, "invalid JSON", err.Error())
		return
	}

	gender, err := saju.ParseGender(req.Gender)
	if err != nil {
		sendErrorFromErr(w, err)
		return
	}
	calendar := saju.Solar
	if req.Calendar == "lunar" {
		calendar = saju.Lunar
	}

	in := saju.Input{
		Date: req.Date, Time: req.Time, Calendar: calendar, LeapMonth: req.LeapMonth,
		TZ: req.TZ, Gender: gender, UseLocalMeanTime: req.UseLocalMeanTime,
		Longitude: req.Longitude, Location: req.Location,
		DaewonCount: req.DaewonCount, MonthYear: req.MonthYear, YearStart: req.YearStart,
		YearCount: req.YearCount,
	}

	chart, err := engine.Compute(in)
	if err != nil {
		sendErrorFromErr(w, err)
		return
	}

	label := i18n.New(i18n.Ko)
	view := buildChartView(chart, label)

	sig, _, fpErr := fingerprint.Fingerprint(viewToFingerprintInput(view), ".")
	if fpErr == nil {
		w.Header().Set("ETag", `"`+sig+`"`)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(view)
}

func sendErrorFromErr(w http.ResponseWriter, err error) {
	sErr, ok := sajuerr.As(err)
	if !ok {
		sendError(w, http.StatusInternalServerError, sajuerr.Astronomical, "internal error", err.Error())
		return
	}
	code := http.StatusBadRequest
	if sErr.Kind == sajuerr.Astronomical {
		code = http.StatusInternalServerError
	}
	sendError(w, code, sErr.Kind, "request failed", sErr.Error())
}

func sendError(w http.ResponseWriter, code int, kind sajuerr.Kind, errMsg string, message string) {
	response := ErrorResponse{Error: errMsg, Kind: kind.String(), Message: message, Code: code}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

func formatDuration(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	}
	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}
