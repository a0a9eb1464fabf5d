package handler

import (
	"sync"
	"time"

	"vocabtrainer/internal/domain"
	"vocabtrainer/internal/middleware"
	"vocabtrainer/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Services bundles the services the handler talks to
type Services struct {
	Auth     *service.AuthService
	Words    *service.WordService
	Transfer *service.TransferService
	Quiz     *service.QuizService
	Reading  *service.ReadingService
	Stats    *service.StatsService
}

// Handler manages all bot interactions
type Handler struct {
	bot    *tele.Bot
	svc    Services
	loc    *time.Location
	logger *zap.Logger

	// User states (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex

	// Per-user locks for callbacks that must not run concurrently
	callbackLocks map[int64]*sync.Mutex
	callbackMux   sync.Mutex
}

// NewHandler creates a new handler instance. Dates are shown in loc.
func NewHandler(bot *tele.Bot, svc Services, loc *time.Location, logger *zap.Logger) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{
		bot:           bot,
		svc:           svc,
		loc:           loc,
		logger:        logger,
		states:        make(map[int64]*domain.StateData),
		callbackLocks: make(map[int64]*sync.Mutex),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Open to everyone: login happens through /start and plain text
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle(tele.OnText, h.handleText)

	authorized := h.bot.Group()
	authorized.Use(middleware.AuthMiddleware(h.svc.Auth, h.logger))

	// Commands
	authorized.Handle("/help", h.handleHelp)
	authorized.Handle("/quiz", h.handleQuiz)
	authorized.Handle("/reverse", h.handleReverse)
	authorized.Handle("/stop", h.handleStop)
	authorized.Handle("/list", h.handleList)
	authorized.Handle("/search", h.handleSearch)
	authorized.Handle("/delete", h.handleDelete)
	authorized.Handle("/edit", h.handleEdit)
	authorized.Handle("/duplicates", h.handleDuplicates)
	authorized.Handle("/export", h.handleExport)
	authorized.Handle("/stats", h.handleStats)
	authorized.Handle("/texts", h.handleTexts)
	authorized.Handle("/text", h.handleOpenText)
	authorized.Handle("/deltext", h.handleDeleteText)

	// Files
	authorized.Handle(tele.OnDocument, h.handleDocument)

	// Callback queries (inline buttons)
	authorized.Handle(&btnViewDays, h.handleViewDays)
	authorized.Handle(&btnRandomPair, h.handleRandomPair)
	authorized.Handle(&btnQuizMenu, h.handleQuizMenu)
	authorized.Handle(&btnStats, h.handleStats)
	authorized.Handle(&btnCancel, h.handleCancel)
	authorized.Handle(&btnMore, h.handleRandomPair)
	authorized.Handle(&btnBack, h.handleStart)
	authorized.Handle(&btnBackToDays, h.handleViewDays)
	authorized.Handle(&btnMainMenu, h.handleStart)

	// Generic callback handler for dynamic data
	authorized.Handle(tele.OnCallback, h.handleCallback)
}

// GetState returns user's current state
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	return state
}

// SetState sets user's state
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState resets user to idle state, keeping the quiz direction
func (h *Handler) ResetState(userID int64) {
	h.SetState(userID, &domain.StateData{
		State:     domain.StateIdle,
		Direction: h.GetState(userID).Direction,
	})
}

func (h *Handler) userLock(userID int64) *sync.Mutex {
	h.callbackMux.Lock()
	defer h.callbackMux.Unlock()

	lock, exists := h.callbackLocks[userID]
	if !exists {
		lock = &sync.Mutex{}
		h.callbackLocks[userID] = lock
	}
	return lock
}

// Inline keyboard buttons
var (
	btnViewDays = tele.Btn{
		Unique: "view_days",
		Text:   "📅 View days",
	}
	btnRandomPair = tele.Btn{
		Unique: "random_pair",
		Text:   "🎲 Random pair",
	}
	btnQuizMenu = tele.Btn{
		Unique: "quiz_menu",
		Text:   "🧠 Quiz",
	}
	btnStats = tele.Btn{
		Unique: "stats",
		Text:   "📊 Statistics",
	}
	btnCancel = tele.Btn{
		Unique: "cancel",
		Text:   "❌ Cancel",
	}
	btnMore = tele.Btn{
		Unique: "more",
		Text:   "🔄 Another one",
	}
	btnBack = tele.Btn{
		Unique: "back",
		Text:   "🏠 Back",
	}
	btnBackToDays = tele.Btn{
		Unique: "back_to_days",
		Text:   "◀️ To days",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "🏠 Main menu",
	}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnQuizMenu),
		menu.Row(btnViewDays, btnRandomPair),
		menu.Row(btnStats),
	)
	return menu
}

// quizMenuMarkup lists one button per quiz mode
func quizMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(domain.QuizModes)+1)
	for _, mode := range domain.QuizModes {
		rows = append(rows, menu.Row(menu.Data(mode.Label(), "quiz_"+string(mode))))
	}
	rows = append(rows, menu.Row(btnBack))
	menu.Inline(rows...)
	return menu
}

func cancelMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnCancel))
	return markup
}
