package handler

import (
	"fmt"
	"strings"
	"time"

	"wordfight/internal/domain"

	tele "gopkg.in/telebot.v3"
)

const (
	pageSize     = 7
	mainMenuText = "🏠 Word Fight!\n\nChoose what to do:"
	emptyText    = "You have no words yet. Send me a word to add it."
	doneText     = "Nothing to practice 🎉\n\nEvery word reached the repeat threshold. Add new words or raise the threshold in settings."
)

// pageOf returns the words on page (1-based) and the page count.
// Out of range pages are clamped.
func pageOf(words []domain.Word, page int) ([]domain.Word, int, int) {
	totalPages := (len(words) + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > len(words) {
		end = len(words)
	}
	return words[start:end], page, totalPages
}

// renderCard builds the practice card message
func renderCard(card domain.Card, revealed bool) string {
	var b strings.Builder
	w := card.Word

	b.WriteString("🥊 Practice\n\n")
	fmt.Fprintf(&b, "📝 %s\n", w.Spelling)
	if card.ShowTranslation || revealed {
		fmt.Fprintf(&b, "🔄 %s\n", translationOrDash(w.Translation))
	} else {
		b.WriteString("🔄 ???\n")
	}
	if card.Pronounce {
		fmt.Fprintf(&b, "🔊 Say it aloud: %s\n", w.Spelling)
	}
	fmt.Fprintf(&b, "\nRepeats: %d", w.RepeatCount)
	return b.String()
}

// cardMarkup builds the practice card keyboard
func cardMarkup(card domain.Card, revealed bool) *tele.ReplyMarkup {
	id := card.Word.ID.String()
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	if !card.ShowTranslation && !revealed {
		rows = append(rows, markup.Row(markup.Data("👀 Show translation", "reveal_"+id)))
	}
	rows = append(rows,
		markup.Row(
			markup.Data("✅ Got it", "ok_"+id),
			markup.Data("🔁 Again", "again_"+id),
		),
		markup.Row(btnMainMenu),
	)

	markup.Inline(rows...)
	return markup
}

// renderWordList builds the text of one word list page
func renderWordList(words []domain.Word, page, totalPages int) string {
	if len(words) == 0 {
		return emptyText
	}
	if totalPages > 1 {
		return fmt.Sprintf("📚 Your words (page %d/%d):\n\nTap a word to edit it.", page, totalPages)
	}
	return "📚 Your words:\n\nTap a word to edit it."
}

// wordListMarkup builds the word buttons with pagination
func wordListMarkup(words []domain.Word, page, totalPages int) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	for _, w := range words {
		btnText := fmt.Sprintf("%s — %s (%d)", w.Spelling, translationOrDash(w.Translation), w.RepeatCount)
		rows = append(rows, markup.Row(markup.Data(btnText, "pick_"+w.ID.String())))
	}

	// Add pagination buttons
	if totalPages > 1 {
		navRow := tele.Row{}
		if page > 1 {
			navRow = append(navRow, markup.Data("⬅️", fmt.Sprintf("page_%d", page-1)))
		}
		if page < totalPages {
			navRow = append(navRow, markup.Data("➡️", fmt.Sprintf("page_%d", page+1)))
		}
		if len(navRow) > 0 {
			rows = append(rows, navRow)
		}
	}

	rows = append(rows, markup.Row(btnAddWord, btnMainMenu))
	markup.Inline(rows...)
	return markup
}

// renderEditor builds the edit dialog for w
func renderEditor(w domain.Word, threshold int, now time.Time) string {
	status := "learning"
	if w.IsMastered(threshold) {
		status = "mastered"
	}
	return fmt.Sprintf(
		"✏️ Editing\n\n📝 %s\n🔄 %s\n\nRepeats: %d/%d (%s)\nLast practiced: %s",
		w.Spelling,
		translationOrDash(w.Translation),
		w.RepeatCount,
		threshold,
		status,
		domain.DisplayDate(w.LastSeenAt, now),
	)
}

// editorMarkup returns the edit dialog keyboard. Every action button
// carries the id of the word the dialog shows.
func editorMarkup(w domain.Word) *tele.ReplyMarkup {
	id := w.ID.String()
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(
			markup.Data("✏️ Spelling", "edit_spelling_"+id),
			markup.Data("✏️ Translation", "edit_translation_"+id),
		),
		markup.Row(markup.Data("🗑 Delete", "del_"+id)),
		markup.Row(btnCloseEditor),
	)
	return markup
}

// renderSettings builds the settings panel text
func renderSettings(s domain.Settings) string {
	return fmt.Sprintf(
		"⚙️ Settings\n\nRepeat threshold: %d\nAuto-translate: %s\nPronounce: %s\n\nSettings reset when the bot restarts.",
		s.RepeatThreshold,
		onOff(s.ShouldAutoTranslate),
		onOff(s.ShouldPronounce),
	)
}

// settingsMarkup returns the settings keyboard
func settingsMarkup(s domain.Settings) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(
			markup.Data("➖", "set_threshold_dec"),
			markup.Data(fmt.Sprintf("Threshold: %d", s.RepeatThreshold), "set_noop"),
			markup.Data("➕", "set_threshold_inc"),
		),
		markup.Row(markup.Data("Auto-translate: "+onOff(s.ShouldAutoTranslate), "set_translate")),
		markup.Row(markup.Data("Pronounce: "+onOff(s.ShouldPronounce), "set_pronounce")),
		markup.Row(markup.Data("↩️ Defaults", "set_reset"), btnMainMenu),
	)
	return markup
}

// renderProgress builds the progress summary
func renderProgress(p domain.Progress, threshold int) string {
	return fmt.Sprintf(
		"📊 Progress\n\nWords: %d\nLearning: %d\nMastered: %d\n\nA word is mastered after %d successful repeats.",
		p.Total, p.Learning, p.Mastered, threshold,
	)
}

// applySettingsAction returns s changed by one settings button
func applySettingsAction(s domain.Settings, action string) (domain.Settings, bool) {
	switch action {
	case "set_threshold_dec":
		s.RepeatThreshold--
	case "set_threshold_inc":
		s.RepeatThreshold++
	case "set_translate":
		s.ShouldAutoTranslate = !s.ShouldAutoTranslate
	case "set_pronounce":
		s.ShouldPronounce = !s.ShouldPronounce
	default:
		return s, false
	}
	return s, true
}

func translationOrDash(translation string) string {
	if translation == "" {
		return "—"
	}
	return translation
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
