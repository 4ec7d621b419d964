// Guessbox web game
//
// One player thinks of a Pokémon and answers questions about it; the engine
// narrows the candidates and names its guess. Anyone else opening the same
// game URL follows along.
//
// Features:
// - WebSockets per game ID: /path/:gameid and /path/:gameid/ws
// - First connection to a game becomes the answering player; others spectate
// - Players identified by cookie (playerID)
// - Any connection may request the engine's diagnostics for the game
// - The player may restart a finished or abandoned game in place
// - Games auto-reaped after configurable idle timeout
// - Random 8-char game IDs via crypto/rand, with server-side collision check
// - In-browser QR button to share the current game, backed by go-qrcode

package main

import (
	"context"
	"crypto/rand"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Seednode/guessbox/games/guesser"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

// diagnosticsDepth is how many candidates and traits a diagnostics reply
// lists.
const diagnosticsDepth = 10

// Messages coming from clients
type ClientMessage struct {
	Type       string   `json:"type"`                 // "start", "answer", "diagnostics", "restart"
	Trait      string   `json:"trait,omitempty"`      // answer, optional guard against stale answers
	Confidence *float64 `json:"confidence,omitempty"` // answer, 0 (no) to 1 (yes)
}

// SessionInfoMessage is sent on connect and after a restart so the client
// knows what role this cookie has and where the game stands.
type SessionInfoMessage struct {
	Type         string    `json:"type"` // "session_info"
	GameID       string    `json:"game_id"`
	State        string    `json:"state"`
	IsPlayer     bool      `json:"is_player"`
	Questions    int       `json:"questions"`
	MaxQuestions int       `json:"max_questions"`
	Entities     int       `json:"entities"`
	CreatedAt    time.Time `json:"created_at"`
}

// QuestionMessage carries the question awaiting an answer.
type QuestionMessage struct {
	Type string `json:"type"` // "question"
	guesser.Question
	Category guesser.Category `json:"category"`
}

// ResultMessage carries the engine's final guess.
type ResultMessage struct {
	Type string `json:"type"` // "result"
	guesser.Result
}

// DiagnosticsMessage is sent only to the client that asked for it.
type DiagnosticsMessage struct {
	Type     string               `json:"type"` // "diagnostics"
	Snapshot guesser.Snapshot     `json:"snapshot"`
	Traits   []guesser.TraitScore `json:"traits"`
}

// SimpleMessage is for errors sent to a single client.
type SimpleMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type Client struct {
	conn     *websocket.Conn
	send     chan any
	playerID string
}

type clientRequest struct {
	client *Client
	msg    ClientMessage
}

// Hub runs one game. Only the run goroutine touches clients and session.
type Hub struct {
	id      string
	engine  *guesser.Engine
	session *guesser.Session
	clients map[*Client]bool

	register chan *Client
	unreg    chan *Client
	requests chan clientRequest
	quit     chan struct{}
	stopOnce sync.Once

	mu sync.RWMutex

	createdAt  time.Time
	lastActive time.Time
	playerID   string // cookie of the connection that answers
}

func newHub(gameID string, engine *guesser.Engine) *Hub {
	now := time.Now()
	return &Hub{
		id:         gameID,
		engine:     engine,
		session:    engine.NewSession(),
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unreg:      make(chan *Client),
		requests:   make(chan clientRequest),
		quit:       make(chan struct{}),
		createdAt:  now,
		lastActive: now,
	}
}

func (h *Hub) run(cfg *Config) {
	for {
		select {
		case c := <-h.register:
			h.touch()

			// First connection becomes the player
			if h.playerID == "" {
				h.playerID = c.playerID
			}

			h.clients[c] = true

			h.sendTo(c, h.sessionInfo(c))

			if q, ok := h.session.Pending(); ok {
				h.sendTo(c, h.questionMessage(q))
			}
			if h.session.State() == guesser.StateDone {
				res, _ := h.session.Guess()
				h.sendTo(c, ResultMessage{Type: "result", Result: res})
			}

		case c := <-h.unreg:
			h.touch()
			h.drop(c)

		case req := <-h.requests:
			h.touch()
			h.handle(cfg, req)

		case <-h.quit:
			for c := range h.clients {
				h.drop(c)
				_ = c.conn.Close()
			}
			return
		}
	}
}

func (h *Hub) touch() {
	h.mu.Lock()
	h.lastActive = time.Now()
	h.mu.Unlock()
}

func (h *Hub) idleSince() time.Time {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.lastActive
}

// stop ends the run loop and disconnects every client.
func (h *Hub) stop() {
	h.stopOnce.Do(func() {
		close(h.quit)
	})
}

func (h *Hub) drop(c *Client) {
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

func (h *Hub) sendTo(c *Client, msg any) {
	if !h.clients[c] {
		return
	}

	select {
	case c.send <- msg:
	default:
		h.drop(c)
	}
}

func (h *Hub) broadcast(msg any) {
	for c := range h.clients {
		h.sendTo(c, msg)
	}
}

func (h *Hub) sendError(c *Client, text string) {
	h.sendTo(c, SimpleMessage{
		Type:    "error",
		Message: text,
	})
}

func (h *Hub) sessionInfo(c *Client) SessionInfoMessage {
	return SessionInfoMessage{
		Type:         "session_info",
		GameID:       h.id,
		State:        h.session.State().String(),
		IsPlayer:     c.playerID == h.playerID,
		Questions:    h.session.Belief().Len(),
		MaxQuestions: h.engine.Config().MaxQuestions,
		Entities:     h.engine.NumEntities(),
		CreatedAt:    h.createdAt,
	}
}

func (h *Hub) questionMessage(q guesser.Question) QuestionMessage {
	return QuestionMessage{
		Type:     "question",
		Question: q,
		Category: h.engine.Catalog().Category(q.Trait),
	}
}

func (h *Hub) handle(cfg *Config, req clientRequest) {
	c := req.client
	msg := req.msg

	if msg.Type == "diagnostics" {
		h.sendTo(c, DiagnosticsMessage{
			Type:     "diagnostics",
			Snapshot: h.session.Snapshot(diagnosticsDepth),
			Traits:   h.session.TraitPriorities(diagnosticsDepth),
		})
		return
	}

	// Only the player may change the game
	if c.playerID != h.playerID {
		h.sendError(c, "Only the player who opened this game can answer.")
		return
	}

	switch msg.Type {
	case "start":
		if h.session.State() != guesser.StateIdle {
			h.sendError(c, "This game has already started.")
			return
		}

		sessionsStarted.Inc()
		logf(cfg, "GAMES: Started %s", h.id)

		h.advance(cfg)

	case "restart":
		h.session = h.engine.NewSession()

		sessionsStarted.Inc()
		logf(cfg, "GAMES: Restarted %s", h.id)

		for client := range h.clients {
			h.sendTo(client, h.sessionInfo(client))
		}
		h.advance(cfg)

	case "answer":
		q, ok := h.session.Pending()
		if !ok {
			h.sendError(c, "No question is waiting for an answer.")
			return
		}
		if msg.Trait != "" && msg.Trait != q.Trait {
			h.sendError(c, "That answer was for an earlier question.")
			return
		}
		if msg.Confidence == nil {
			h.sendError(c, "An answer needs a confidence between 0 and 1.")
			return
		}

		if err := h.session.Answer(*msg.Confidence); err != nil {
			h.sendError(c, err.Error())
			return
		}

		h.advance(cfg)
	}
}

// advance asks the next question, or guesses once the engine stops asking.
func (h *Hub) advance(cfg *Config) {
	sel := h.session.Next()
	if !sel.Done() {
		observeQuestion(sel)

		q, _ := h.session.Pending()
		h.broadcast(h.questionMessage(q))

		return
	}

	res, err := h.session.Guess()
	if err != nil {
		cfg.log().Error("guess failed", zap.String("game", h.id), zap.Error(err))
		return
	}
	observeGuess(res)

	logf(cfg, "GAMES: Guessed %q in %s after %d questions (%s)", res.Name, h.id, res.Questions, res.Stop)

	h.broadcast(ResultMessage{
		Type:   "result",
		Result: res,
	})
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

const playerCookieName = "guessbox_id"

func getOrSetPlayerID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(playerCookieName); err == nil {
		if id, err := uuid.Parse(c.Value); err == nil {
			return id.String()
		}
	}

	id := uuid.NewString()

	http.SetCookie(w, &http.Cookie{
		Name:     playerCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return id
}

// GameManager holds a set of hubs keyed by game ID, so each $path/$gameid
// is its own isolated game. All games share one engine.
type GameManager struct {
	mu          sync.Mutex
	hubs        map[string]*Hub
	engine      *guesser.Engine
	idleTimeout time.Duration
}

func newGameManager(ctx context.Context, engine *guesser.Engine, idleTimeout time.Duration) *GameManager {
	gm := &GameManager{
		hubs:        make(map[string]*Hub),
		engine:      engine,
		idleTimeout: idleTimeout,
	}
	if idleTimeout > 0 {
		go gm.reaperLoop(ctx)
	}
	return gm
}

func (gm *GameManager) getHub(cfg *Config, gameID string) *Hub {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if hub, ok := gm.hubs[gameID]; ok {
		return hub
	}

	hub := newHub(gameID, gm.engine)
	gm.hubs[gameID] = hub
	gamesActive.Inc()
	go hub.run(cfg)
	return hub
}

// newGameID generates a crypto-random game ID and ensures it doesn't
// collide with existing games.
func (gm *GameManager) newGameID() string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	for {
		buf := make([]byte, 8)
		if _, err := rand.Read(buf); err != nil {
			panic("crypto/rand failure: " + err.Error())
		}
		out := make([]byte, 8)
		for i := range out {
			out[i] = letters[int(buf[i])%len(letters)]
		}
		id := string(out)

		gm.mu.Lock()
		_, exists := gm.hubs[id]
		gm.mu.Unlock()

		if !exists {
			return id
		}
	}
}

// reap removes hubs that have been idle since before cutoff.
func (gm *GameManager) reap(cutoff time.Time) int {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	reaped := 0
	for id, hub := range gm.hubs {
		if hub.idleSince().Before(cutoff) {
			delete(gm.hubs, id)
			gamesActive.Dec()
			hub.stop()
			reaped++
		}
	}

	return reaped
}

func (gm *GameManager) reaperLoop(ctx context.Context) {
	ticker := time.NewTicker(gm.idleTimeout / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			gm.reap(time.Now().Add(-gm.idleTimeout))
		}
	}
}

// shutdown ends every game.
func (gm *GameManager) shutdown() {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	for id, hub := range gm.hubs {
		delete(gm.hubs, id)
		gamesActive.Dec()
		hub.stop()
	}
}

// WebSocket handler that picks the hub based on :gameid
func serveWSForManager(cfg *Config, gm *GameManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		gameID := ps.ByName("gameid")
		if gameID == "" {
			http.Error(w, "missing game id", http.StatusBadRequest)
			return
		}

		playerID := getOrSetPlayerID(w, r)

		hub := gm.getHub(cfg, gameID)

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			cfg.log().Warn("websocket upgrade failed", zap.String("remote", realIP(r)), zap.Error(err))
			return
		}

		// The server's request deadlines survive the hijack
		_ = conn.NetConn().SetDeadline(time.Time{})

		client := &Client{
			conn:     conn,
			send:     make(chan any, 8),
			playerID: playerID,
		}

		select {
		case hub.register <- client:
		case <-hub.quit:
			_ = conn.Close()
			return
		}

		go client.writePump()
		client.readPump(hub)
	}
}

func (c *Client) readPump(h *Hub) {
	defer func() {
		select {
		case h.unreg <- c:
		case <-h.quit:
		}
		_ = c.conn.Close()
	}()

	for {
		var msg ClientMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}

		switch msg.Type {
		case "start", "answer", "diagnostics", "restart":
			select {
			case h.requests <- clientRequest{client: c, msg: msg}:
			case <-h.quit:
				return
			}
		default:
			// ignore unknown types
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for msg := range c.send {
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

// QR handler: generates a PNG QR code for the current game URL using go-qrcode.
func qrHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	gameID := ps.ByName("gameid")
	if gameID == "" {
		http.Error(w, "missing game id", http.StatusBadRequest)
		return
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	// We are at /.../:gameid/qr; strip trailing "/qr" to get the game URL.
	path := strings.TrimSuffix(r.URL.Path, "/qr")

	url := scheme + "://" + r.Host + path

	const qrSize = 320
	png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
	if err != nil {
		http.Error(w, "qr generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

func getIndexHandler(cfg *Config, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		page, err := assets.ReadFile("assets/guess/index.html")
		if err != nil {
			errs <- err
			http.Error(w, "missing game client", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Header().Set("Expires", time.Now().Add(time.Hour).UTC().Format(http.TimeFormat))
		securityHeaders(cfg, w)

		_ = getOrSetPlayerID(w, r)

		_, _ = w.Write(page)
	}
}

// redirectNewGame handles GET /path by generating a new random game ID
// (with server-side collision detection) and redirecting to /path/:gameid.
func redirectNewGame(cfg *Config, path string, gm *GameManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		gameID := gm.newGameID()
		logf(cfg, "GAMES: Created game %s/%s", path, gameID)
		http.Redirect(w, r, cfg.prefix+path+"/"+gameID, http.StatusTemporaryRedirect)
	}
}

// registerGuessGame sets up routes so that:
//   - $path                  → redirects to new random game (8-char ID)
//   - $path/:gameid          → HTML client
//   - $path/:gameid/ws       → WebSocket for that game
//   - $path/:gameid/qr       → PNG QR code for that game URL
func registerGuessGame(ctx context.Context, cfg *Config, engine *guesser.Engine, path string, mux *httprouter.Router, errs chan<- error) *GameManager {
	gm := newGameManager(ctx, engine, cfg.sessionTimeout)

	mux.GET(cfg.prefix+path, redirectNewGame(cfg, path, gm))
	mux.GET(cfg.prefix+path+"/:gameid", getIndexHandler(cfg, errs))
	mux.GET(cfg.prefix+path+"/:gameid/ws", serveWSForManager(cfg, gm))
	mux.GET(cfg.prefix+path+"/:gameid/qr", qrHandler)

	return gm
}
