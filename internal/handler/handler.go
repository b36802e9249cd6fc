package handler

import (
	"sync"

	"wordfight/internal/domain"
	"wordfight/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot      *tele.Bot
	store    *service.WordStore
	practice *service.PracticeService
	editor   *service.EditorService
	settings *service.SettingsService
	stats    *service.StatsService
	logger   *zap.Logger

	// Pending text input per chat
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	store *service.WordStore,
	practice *service.PracticeService,
	editor *service.EditorService,
	settings *service.SettingsService,
	stats *service.StatsService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:      bot,
		store:    store,
		practice: practice,
		editor:   editor,
		settings: settings,
		stats:    stats,
		logger:   logger,
		states:   make(map[int64]*domain.StateData),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/practice", h.handlePractice)
	h.bot.Handle("/words", h.handleWords)
	h.bot.Handle("/settings", h.handleSettings)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnPractice, h.handlePractice)
	h.bot.Handle(&btnWords, h.handleWords)
	h.bot.Handle(&btnAddWord, h.handleAddWord)
	h.bot.Handle(&btnSettings, h.handleSettings)
	h.bot.Handle(&btnStats, h.handleStats)
	h.bot.Handle(&btnMainMenu, h.handleStart)
	h.bot.Handle(&btnCancel, h.handleCancel)
	h.bot.Handle(&btnCloseEditor, h.handleCloseEditor)

	// Generic callback handler for dynamic data
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// GetState returns the chat's current input state
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	return state
}

// SetState sets the chat's input state
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState resets the chat to idle
func (h *Handler) ResetState(userID int64) {
	h.SetState(userID, &domain.StateData{State: domain.StateIdle})
}

// Inline keyboard buttons
var (
	btnPractice = tele.Btn{
		Unique: "practice",
		Text:   "🥊 Practice",
	}
	btnWords = tele.Btn{
		Unique: "words",
		Text:   "📚 Words",
	}
	btnAddWord = tele.Btn{
		Unique: "add_word",
		Text:   "➕ Add word",
	}
	btnSettings = tele.Btn{
		Unique: "settings",
		Text:   "⚙️ Settings",
	}
	btnStats = tele.Btn{
		Unique: "stats",
		Text:   "📊 Progress",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "🏠 Main menu",
	}
	btnCancel = tele.Btn{
		Unique: "cancel",
		Text:   "❌ Cancel",
	}
	btnCloseEditor = tele.Btn{
		Unique: "close_editor",
		Text:   "◀️ Back to words",
	}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnPractice),
		menu.Row(btnWords, btnAddWord),
		menu.Row(btnSettings, btnStats),
	)
	return menu
}

// cancelMarkup returns a keyboard with a single cancel button
func cancelMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnCancel))
	return markup
}
