package routes

import (
	"encoding/json"
	"net/http"

	"github.com/sejongtown/campus-assistant/internal/api/handlers"
	"github.com/sejongtown/campus-assistant/internal/api/middleware"
	"github.com/sejongtown/campus-assistant/internal/infrastructure/observability"
)

// SetupRouter configures the HTTP routes and middleware chain.
func SetupRouter(chatHandler *handlers.ChatHandler, metrics *observability.Metrics) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", handleHealth)
	mux.HandleFunc("/api/chat", chatHandler.HandleChat)

	// Innermost to outermost: logging sees the traced context, CORS runs
	// first so preflights never hit the rest of the chain.
	var handler http.Handler = mux
	handler = middleware.Logging(handler)
	handler = middleware.Observability(metrics)(handler)
	handler = middleware.CORS(handler)

	return handler
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
}
