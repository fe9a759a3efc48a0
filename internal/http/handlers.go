package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/martige/matchbot/internal/dathost"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// MatchEndHandler receives the match-end webhook and runs the pipeline. The
// optional wait_for_gotv query parameter controls the broadcast delay;
// absent means true.
func (s *Server) MatchEndHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.Metrics.IncWebhooksReceived()

		var ev dathost.MatchEndEvent
		if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
			log.Error("Failed to decode match-end payload", "error", err)
			writeJSONError(w, http.StatusBadRequest, "invalid match-end payload")
			return
		}
		if ev.CancelReason == "" && len(ev.Players) == 0 {
			writeJSONError(w, http.StatusBadRequest, "match-end payload has no players")
			return
		}

		wait := true
		if v := r.URL.Query().Get("wait_for_gotv"); v != "" {
			parsed, err := strconv.ParseBool(v)
			if err != nil {
				log.Warn("Invalid 'wait_for_gotv' parameter, defaulting to true", "value", v)
			} else {
				wait = parsed
			}
		}

		log.Info("Processing match-end webhook", "matchID", ev.ID, "serverID", ev.GameServerID, "wait", wait)
		res, err := s.Processor.ProcessMatchEnd(r.Context(), &ev, wait)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"stage":     string(res.Stage),
			"cancelled": res.Cancelled,
			"match_id":  res.MatchID,
			"demo_url":  res.DemoURL,
		})
	}
}

// LogsHandler receives raw game server log lines and relays recognized chat
// commands. Requests not originating from the game client are rejected.
func (s *Server) LogsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.UserAgent(), "Valve/Steam") {
			log.Warn("Rejected log ingestion from unexpected client", "userAgent", r.UserAgent())
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, "failed to read request body")
			return
		}

		if err := s.Relay.HandleLogLines(r.Context(), string(body)); err != nil {
			log.Error("Failed to relay chat command", "error", err)
			writeJSONError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

// StopServerHandler issues a stop command for the given game server, or the
// configured one when the parameter is absent.
func (s *Server) StopServerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serverID := r.URL.Query().Get("server_id")
		if serverID == "" {
			serverID = s.Cfg.DatHost.ServerID
		}

		if err := s.GameServer.StopServer(r.Context(), serverID); err != nil {
			log.Error("Failed to stop game server", "serverID", serverID, "error", err)
			writeJSONError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "Stopped server %s", serverID)
	}
}

func (s *Server) ListMatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matches, err := s.Store.GetAllMatches()
		if err != nil {
			log.Error("Failed to list matches", "error", err)
			writeJSONError(w, http.StatusInternalServerError, "failed to list matches")
			return
		}
		writeJSON(w, matches)
	}
}

func (s *Server) TopPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 10
		if v := r.URL.Query().Get("limit"); v != "" {
			parsed, err := strconv.Atoi(v)
			if err == nil && parsed > 0 {
				limit = parsed
			} else {
				log.Warn("Invalid 'limit' parameter provided. Defaulting to 10.", "limit_param", v)
			}
		}

		top, err := s.Store.GetTopPlayers(limit)
		if err != nil {
			log.Error("Failed to get top players", "error", err)
			writeJSONError(w, http.StatusInternalServerError, "failed to get top players")
			return
		}
		writeJSON(w, top)
	}
}

func (s *Server) PlayerStatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		steamID, err := strconv.ParseUint(r.URL.Query().Get("steam_id"), 10, 64)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid or missing steam_id")
			return
		}

		agg, err := s.Store.GetPlayerAggregate(steamID)
		if err != nil {
			log.Error("Failed to get player stats", "steamID", steamID, "error", err)
			writeJSONError(w, http.StatusInternalServerError, "failed to get player stats")
			return
		}
		if agg == nil {
			writeJSONError(w, http.StatusNotFound, "no stats for player")
			return
		}
		writeJSON(w, agg)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to encode response", "error", err)
	}
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
