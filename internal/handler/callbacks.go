package handler

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"wordfight/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// parseIDData extracts the word id that follows prefix in callback data
func parseIDData(data, prefix string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimPrefix(strings.TrimSpace(data), prefix))
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context) error {
	if err == nil {
		return nil
	}

	// Pressing the same button twice edits to identical content
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already up to date, acknowledging",
			zap.Int64("user_id", c.Sender().ID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", c.Sender().ID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// show edits the message behind a callback, or sends a new one for commands
func (h *Handler) show(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if c.Callback() != nil {
		if err := c.Edit(text, markup); err != nil {
			if handleErr := h.handleEditError(err, c); handleErr == nil {
				return nil
			}
			return c.Send(text, markup)
		}
		return c.Respond()
	}
	return c.Send(text, markup)
}

// alert answers a callback with a popup, or a message for commands
func alert(c tele.Context, text string) error {
	if c.Callback() != nil {
		return c.Respond(&tele.CallbackResponse{Text: text, ShowAlert: true})
	}
	return c.Send(text)
}

// handleCallback handles callbacks that carry dynamic data
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	data := cleanCallbackData(callback.Data)
	h.logger.Debug("handleCallback: Processing callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	switch {
	case strings.HasPrefix(data, "page_"):
		return h.handlePagination(c, data)
	case strings.HasPrefix(data, "pick_"):
		return h.handlePick(c, data)
	case strings.HasPrefix(data, "edit_spelling_"):
		return h.handleEditSpelling(c, data)
	case strings.HasPrefix(data, "edit_translation_"):
		return h.handleEditTranslation(c, data)
	case strings.HasPrefix(data, "del_"):
		return h.handleDelete(c, data)
	case strings.HasPrefix(data, "reveal_"):
		return h.handleReveal(c, data)
	case strings.HasPrefix(data, "ok_"):
		return h.handleAnswer(c, data, "ok_")
	case strings.HasPrefix(data, "again_"):
		return h.handleAnswer(c, data, "again_")
	case data == "set_noop":
		return c.Respond()
	case strings.HasPrefix(data, "set_"):
		return h.handleSettingsAction(c, data)
	}

	h.logger.Warn("Unhandled callback in handleCallback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// handlePractice shows the next practice card
func (h *Handler) handlePractice(c tele.Context) error {
	card := h.practice.Next()
	if card == nil {
		if h.store.Len() == 0 {
			return alert(c, emptyText)
		}
		return h.show(c, doneText, mainMenuMarkup())
	}
	return h.show(c, renderCard(*card, false), cardMarkup(*card, false))
}

// handleReveal shows the translation on the current card
func (h *Handler) handleReveal(c tele.Context, data string) error {
	id, err := parseIDData(data, "reveal_")
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Unknown word"})
	}

	w, err := h.store.Get(id)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "This word is gone"})
	}

	card := h.settings.Get().CardFor(w)
	return h.show(c, renderCard(*card, true), cardMarkup(*card, true))
}

// handleAnswer records the outcome of a round and moves to the next card
func (h *Handler) handleAnswer(c tele.Context, data, prefix string) error {
	id, err := parseIDData(data, prefix)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Unknown word"})
	}

	ctx := context.Background()
	if prefix == "ok_" {
		_, err = h.practice.Success(ctx, id)
	} else {
		_, err = h.practice.Miss(ctx, id)
	}
	if err != nil && !errors.Is(err, domain.ErrWordNotFound) {
		h.logger.Error("Failed to record practice result", zap.Error(err), zap.String("word_id", id.String()))
		return c.Respond(&tele.CallbackResponse{Text: "Could not save the result"})
	}

	return h.handlePractice(c)
}

// handleWords shows the first page of the word list
func (h *Handler) handleWords(c tele.Context) error {
	return h.showWordPage(c, 1)
}

// handlePagination handles page navigation
func (h *Handler) handlePagination(c tele.Context, data string) error {
	page, err := strconv.Atoi(strings.TrimPrefix(data, "page_"))
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid page"})
	}
	return h.showWordPage(c, page)
}

func (h *Handler) showWordPage(c tele.Context, page int) error {
	words, page, totalPages := pageOf(h.store.Words(), page)
	return h.show(c, renderWordList(words, page, totalPages), wordListMarkup(words, page, totalPages))
}

// handlePick opens the edit dialog for a word from the list
func (h *Handler) handlePick(c tele.Context, data string) error {
	id, err := parseIDData(data, "pick_")
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Unknown word"})
	}

	w, err := h.editor.SelectByID(id)
	if err != nil {
		h.logger.Warn("Picked word is gone", zap.String("word_id", id.String()))
		return h.showWordPage(c, 1)
	}
	return h.show(c, renderEditor(w, h.settings.Get().RepeatThreshold, time.Now()), editorMarkup(w))
}

// reopen selects the word a dialog button belongs to, replacing the
// current selection. When it reports false the callback is already answered.
func (h *Handler) reopen(c tele.Context, data, prefix string) (uuid.UUID, bool, error) {
	id, err := parseIDData(data, prefix)
	if err != nil {
		return uuid.Nil, false, c.Respond(&tele.CallbackResponse{Text: "Unknown word"})
	}

	if _, err := h.editor.SelectByID(id); err != nil {
		h.logger.Warn("Dialog word is gone", zap.String("word_id", id.String()))
		h.ResetState(c.Sender().ID)
		return uuid.Nil, false, h.showWordPage(c, 1)
	}
	return id, true, nil
}

// handleEditSpelling asks for a new spelling
func (h *Handler) handleEditSpelling(c tele.Context, data string) error {
	return h.promptEdit(c, data, "edit_spelling_", domain.StateEditingSpelling,
		"Send the new spelling.\n\nSend \"-\" to clear it, which deletes the word.")
}

// handleEditTranslation asks for a new translation
func (h *Handler) handleEditTranslation(c tele.Context, data string) error {
	return h.promptEdit(c, data, "edit_translation_", domain.StateEditingTranslation,
		"Send the new translation.\n\nSend \"-\" to clear it.")
}

func (h *Handler) promptEdit(c tele.Context, data, prefix string, state domain.InputState, prompt string) error {
	id, ok, err := h.reopen(c, data, prefix)
	if !ok {
		return err
	}
	h.SetState(c.Sender().ID, &domain.StateData{State: state, WordID: id})
	return h.show(c, prompt, cancelMarkup())
}

// handleDelete deletes the word shown in the dialog the button belongs to
func (h *Handler) handleDelete(c tele.Context, data string) error {
	if _, ok, err := h.reopen(c, data, "del_"); !ok {
		return err
	}

	if err := h.editor.Delete(context.Background()); err != nil && !errors.Is(err, domain.ErrNotEditing) {
		h.logger.Error("Failed to delete word", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Could not delete the word"})
	}

	h.ResetState(c.Sender().ID)
	return h.showWordPage(c, 1)
}

// handleCloseEditor closes the edit dialog without changes
func (h *Handler) handleCloseEditor(c tele.Context) error {
	h.editor.Cancel()
	h.ResetState(c.Sender().ID)
	return h.showWordPage(c, 1)
}

// handleCancel cancels the pending input and returns to the main menu
func (h *Handler) handleCancel(c tele.Context) error {
	h.editor.Cancel()
	h.ResetState(c.Sender().ID)
	return h.show(c, mainMenuText, mainMenuMarkup())
}

// handleSettings shows the settings panel
func (h *Handler) handleSettings(c tele.Context) error {
	s := h.settings.Get()
	return h.show(c, renderSettings(s), settingsMarkup(s))
}

// handleSettingsAction applies one settings button
func (h *Handler) handleSettingsAction(c tele.Context, data string) error {
	if data == "set_reset" {
		h.settings.Reset()
		h.logger.Info("Settings reset to defaults")
		s := h.settings.Get()
		return h.show(c, renderSettings(s), settingsMarkup(s))
	}

	next, ok := applySettingsAction(h.settings.Get(), data)
	if !ok {
		return c.Respond()
	}

	if err := h.settings.Save(next); err != nil {
		return c.Respond(&tele.CallbackResponse{
			Text: fmt.Sprintf("Repeat threshold must stay between 1 and %d", domain.MaxRepeatThreshold),
		})
	}

	h.logger.Info("Settings saved",
		zap.Int("repeat_threshold", next.RepeatThreshold),
		zap.Bool("auto_translate", next.ShouldAutoTranslate),
		zap.Bool("pronounce", next.ShouldPronounce),
	)
	return h.show(c, renderSettings(next), settingsMarkup(next))
}

// handleStats shows learning progress
func (h *Handler) handleStats(c tele.Context) error {
	p := h.stats.Summary()
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnPractice), markup.Row(btnMainMenu))
	return h.show(c, renderProgress(p, h.settings.Get().RepeatThreshold), markup)
}
