package handler

import (
	"context"
	"errors"
	"strings"

	"wordfight/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// clearMarker is the text a user sends to clear a field
const clearMarker = "-"

// handleStart handles /start and the main menu button
func (h *Handler) handleStart(c tele.Context) error {
	h.logger.Info("User opened main menu",
		zap.Int64("user_id", c.Sender().ID),
		zap.String("username", c.Sender().Username),
	)

	h.ResetState(c.Sender().ID)
	return h.show(c, mainMenuText, mainMenuMarkup())
}

// handleAddWord starts the add-word flow
func (h *Handler) handleAddWord(c tele.Context) error {
	h.SetState(c.Sender().ID, &domain.StateData{State: domain.StateWaitingSpelling})
	return h.show(c, "Send the word you want to learn", cancelMarkup())
}

// handleText handles all text messages based on state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	state := h.GetState(userID)

	switch state.State {
	case domain.StateWaitingTranslation:
		return h.saveNewWord(c, state.CurrentWord, text)

	case domain.StateEditingSpelling, domain.StateEditingTranslation:
		return h.applyEdit(c, state, text)

	default:
		// Idle or waiting for a spelling: the text is a new word
		h.SetState(userID, &domain.StateData{
			State:       domain.StateWaitingTranslation,
			CurrentWord: text,
		})
		return c.Send("Waiting for the translation", cancelMarkup())
	}
}

func (h *Handler) saveNewWord(c tele.Context, spelling, translation string) error {
	userID := c.Sender().ID
	if translation == clearMarker {
		translation = ""
	}

	if _, err := h.practice.Save(context.Background(), spelling, translation); err != nil {
		h.logger.Error("Failed to save word",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		h.ResetState(userID)
		return c.Send("Could not save the word. Try again.", mainMenuMarkup())
	}

	// Reset to waiting for next word
	h.SetState(userID, &domain.StateData{State: domain.StateWaitingSpelling})

	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnPractice), markup.Row(btnMainMenu))
	return c.Send("✅ Saved!\n\nSend the next word or go back to the menu.", markup)
}

func (h *Handler) applyEdit(c tele.Context, state *domain.StateData, text string) error {
	userID := c.Sender().ID
	h.ResetState(userID)

	// Another dialog may have been opened since the prompt
	w, err := h.editor.SelectByID(state.WordID)
	if err != nil {
		return c.Send("That word is no longer open for editing.", mainMenuMarkup())
	}

	if text == clearMarker {
		text = ""
	}
	if state.State == domain.StateEditingSpelling {
		w.Spelling = text
	} else {
		w.Translation = text
	}

	err = h.editor.Update(context.Background(), w)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrWordNotFound), errors.Is(err, domain.ErrNotEditing):
		return c.Send("That word is no longer open for editing.", mainMenuMarkup())
	default:
		h.logger.Error("Failed to update word", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send("Could not save the change. Try again.", editorMarkup(w))
	}

	reply := "✅ Updated"
	if w.Spelling == "" {
		reply = "🗑 Deleted"
	}

	words, page, totalPages := pageOf(h.store.Words(), 1)
	return c.Send(reply+"\n\n"+renderWordList(words, page, totalPages), wordListMarkup(words, page, totalPages))
}
