package flashdeck

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/gorilla/sessions"
)

const sessionCookieName = "flashdeck_session"

// Server exposes the study tool as a JSON API for the browser frontend
type Server struct {
	cfg       Config
	generator *Generator
	history   *DB
	registry  *SessionRegistry
	cookies   *sessions.CookieStore
}

// NewServer creates a new API server. history may be nil, in which case
// quiz results are simply not recorded.
func NewServer(cfg Config, generator *Generator, history *DB) *Server {
	cookies := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	cookies.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &Server{
		cfg:       cfg,
		generator: generator,
		history:   history,
		registry:  NewSessionRegistry(cfg.MaxSessions),
		cookies:   cookies,
	}
}

// Routes builds the router with all API endpoints mounted
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(5 * time.Minute))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Post("/decks", s.handleGenerate)
		r.Get("/decks/current", s.handleCurrentDeck)

		r.Post("/quiz/start", s.handleQuizStart)
		r.Get("/quiz/question", s.handleQuizQuestion)
		r.Post("/quiz/answer", s.handleQuizAnswer)
		r.Post("/quiz/next", s.handleQuizNext)
		r.Post("/quiz/restart", s.handleQuizRestart)
		r.Post("/quiz/end", s.handleQuizEnd)

		r.Get("/history", s.handleHistory)
	})

	return r
}

// session finds the study session for the request's cookie, creating one
// (and setting the cookie) on first contact.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (*StudySession, error) {
	// An undecodable cookie just means a fresh session
	cs, _ := s.cookies.Get(r, sessionCookieName)

	if sid, ok := cs.Values["sid"].(string); ok {
		if ss, found := s.registry.Get(sid); found {
			return ss, nil
		}
	}

	ss, err := s.registry.Create()
	if err != nil {
		return nil, err
	}
	cs.Values["sid"] = ss.ID
	if err := cs.Save(r, w); err != nil {
		return nil, err
	}
	return ss, nil
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	sess, err := s.session(w, r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to establish session")
		return
	}

	var req GenerationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.NumCards <= 0 {
		req.NumCards = s.cfg.NumCards
	}

	if err := sess.BeginGeneration(); err != nil {
		writeError(w, http.StatusConflict, ErrBusy.Error())
		return
	}
	defer sess.EndGeneration()

	cards, err := s.generator.Generate(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyTopic):
			writeError(w, http.StatusBadRequest, ErrEmptyTopic.Error())
		case errors.Is(err, ErrNoCards):
			s.recordGeneration(req.Topic, 0, "empty")
			writeError(w, http.StatusUnprocessableEntity, ErrNoCards.Error())
		default:
			s.recordGeneration(req.Topic, 0, "failed")
			writeError(w, http.StatusBadGateway, err.Error())
		}
		return
	}

	s.recordGeneration(req.Topic, len(cards), "ok")

	sess.Lock()
	deck := sess.Deck.Replace(req.Topic, cards)
	// A new deck invalidates any running quiz
	sess.Quiz = nil
	sess.Unlock()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"topic":      deck.Topic,
		"cards":      deck.Cards,
		"count":      len(deck.Cards),
		"quiz_ready": len(deck.Cards) >= MinQuizCards,
	})
}

func (s *Server) handleCurrentDeck(w http.ResponseWriter, r *http.Request) {
	sess, err := s.session(w, r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to establish session")
		return
	}

	sess.Lock()
	deck := sess.Deck.Current()
	sess.Unlock()

	if deck == nil {
		writeError(w, http.StatusNotFound, "no deck generated yet")
		return
	}
	writeJSON(w, http.StatusOK, deck)
}

func (s *Server) handleQuizStart(w http.ResponseWriter, r *http.Request) {
	sess, err := s.session(w, r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to establish session")
		return
	}

	sess.Lock()
	defer sess.Unlock()

	if sess.Deck.Size() < MinQuizCards {
		writeError(w, http.StatusConflict, ErrNotEnoughCards.Error())
		return
	}

	quiz, err := NewQuizSession(sess.Deck.Cards())
	if err != nil {
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	sess.Quiz = quiz

	question, _ := quiz.Question()
	writeJSON(w, http.StatusOK, question)
}

func (s *Server) handleQuizQuestion(w http.ResponseWriter, r *http.Request) {
	sess, err := s.session(w, r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to establish session")
		return
	}

	sess.Lock()
	defer sess.Unlock()

	if sess.Quiz == nil {
		writeError(w, http.StatusConflict, "no quiz in progress")
		return
	}
	question, err := sess.Quiz.Question()
	if err != nil {
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, question)
}

func (s *Server) handleQuizAnswer(w http.ResponseWriter, r *http.Request) {
	sess, err := s.session(w, r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to establish session")
		return
	}

	var body struct {
		Term string `json:"term"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess.Lock()
	defer sess.Unlock()

	if sess.Quiz == nil {
		writeError(w, http.StatusConflict, "no quiz in progress")
		return
	}
	result, err := sess.Quiz.Answer(body.Term)
	if err != nil {
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleQuizNext(w http.ResponseWriter, r *http.Request) {
	sess, err := s.session(w, r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to establish session")
		return
	}

	sess.Lock()
	defer sess.Unlock()

	if sess.Quiz == nil {
		writeError(w, http.StatusConflict, "no quiz in progress")
		return
	}

	done, err := sess.Quiz.Next()
	if err != nil {
		writeError(w, http.StatusConflict, err.Error())
		return
	}

	if done {
		summary, _ := sess.Quiz.Summary()
		s.recordResult(sess, summary)
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"done":    true,
			"summary": summary,
		})
		return
	}

	question, _ := sess.Quiz.Question()
	writeJSON(w, http.StatusOK, question)
}

func (s *Server) handleQuizRestart(w http.ResponseWriter, r *http.Request) {
	sess, err := s.session(w, r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to establish session")
		return
	}

	sess.Lock()
	defer sess.Unlock()

	if sess.Quiz == nil {
		// Restart without a previous quiz behaves like start
		if sess.Deck.Size() < MinQuizCards {
			writeError(w, http.StatusConflict, ErrNotEnoughCards.Error())
			return
		}
		quiz, err := NewQuizSession(sess.Deck.Cards())
		if err != nil {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		sess.Quiz = quiz
	} else {
		sess.Quiz.Restart()
	}

	question, _ := sess.Quiz.Question()
	writeJSON(w, http.StatusOK, question)
}

func (s *Server) handleQuizEnd(w http.ResponseWriter, r *http.Request) {
	sess, err := s.session(w, r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to establish session")
		return
	}

	sess.Lock()
	if sess.Quiz != nil {
		sess.Quiz.End()
		sess.Quiz = nil
	}
	sess.Unlock()

	writeJSON(w, http.StatusOK, map[string]interface{}{"ended": true})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	results := []QuizResult{}
	if s.history != nil {
		recent, err := s.history.GetRecentResults(20)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to load history")
			return
		}
		if recent != nil {
			results = recent
		}
	}
	writeJSON(w, http.StatusOK, results)
}

// recordGeneration writes an audit row; history failures are logged, never
// surfaced to the user.
func (s *Server) recordGeneration(topic string, numCards int, status string) {
	if s.history == nil {
		return
	}
	if err := s.history.RecordGeneration(topic, numCards, status); err != nil {
		log.Printf("Failed to record generation for topic '%s': %v", topic, err)
	}
}

func (s *Server) recordResult(sess *StudySession, summary QuizSummary) {
	if s.history == nil {
		return
	}
	topic := ""
	if deck := sess.Deck.Current(); deck != nil {
		topic = deck.Topic
	}
	if err := s.history.RecordQuizResult(topic, summary); err != nil {
		log.Printf("Failed to record quiz result for topic '%s': %v", topic, err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
