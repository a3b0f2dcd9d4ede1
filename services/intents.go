package services

import (
	"regexp"
	"strconv"
	"strings"
)

// MessageIntent is the explicit classification of a text message. Evaluation
// order is a contract: pending confirmation, then pending goal update, then
// onboarding, then the fixed intents below in declaration order, then
// free-text meal description.
type MessageIntent int

const (
	IntentGreeting MessageIntent = iota
	IntentHelp
	IntentGoalCommand
	IntentFoodList
	IntentDailySummary
	IntentWeeklyReport
	IntentMealDescription
)

var greetingWords = map[string]struct{}{
	"oi": {}, "olá": {}, "ola": {}, "bom dia": {}, "boa tarde": {}, "boa noite": {},
}

var dailySummaryWords = map[string]struct{}{
	"resumo": {}, "hoje": {}, "diário": {}, "diario": {},
}

var weeklyReportWords = []string{"relatório", "relatorio", "semanal", "semana"}

// ClassifyIntent maps a normalized message body to a fixed intent.
func ClassifyIntent(body string) MessageIntent {
	lower := strings.ToLower(strings.TrimSpace(body))

	if _, ok := greetingWords[lower]; ok {
		return IntentGreeting
	}
	if lower == "help" || strings.Contains(lower, "ajuda") {
		return IntentHelp
	}
	if strings.Contains(lower, "meta") {
		return IntentGoalCommand
	}
	if strings.HasPrefix(lower, "/alimentos") {
		return IntentFoodList
	}
	if _, ok := dailySummaryWords[lower]; ok {
		return IntentDailySummary
	}
	for _, w := range weeklyReportWords {
		if strings.Contains(lower, w) {
			return IntentWeeklyReport
		}
	}
	return IntentMealDescription
}

type ConfirmationAnswer int

const (
	AnswerAmbiguous ConfirmationAnswer = iota
	AnswerConfirm
	AnswerReject
)

var exactYes = map[string]struct{}{"sim": {}, "s": {}, "yes": {}, "ok": {}, "claro": {}, "pode": {}, "isso": {}, "confirmo": {}}
var exactNo = map[string]struct{}{"não": {}, "nao": {}, "no": {}, "n": {}, "errado": {}}

// Substring vocabularies hold only tokens of length >= 2 to avoid false
// positives; "no" is excluded because it appears inside ordinary words.
var containsYes = []string{"sim", "yes", "claro", "confirmo", "isso mesmo", "pode calcular"}
var containsNo = []string{"não", "nao", "errado", "incorreto", "cancela", "descarta"}

// ClassifyConfirmation decides a yes/no reply against the pending slot.
// Exact match wins first; then substring containment, rejections before
// confirmations; anything else is ambiguous and leaves the pending state
// untouched.
func ClassifyConfirmation(body string) ConfirmationAnswer {
	lower := strings.ToLower(strings.TrimSpace(body))
	lower = strings.Trim(lower, ".,!?")

	if _, ok := exactYes[lower]; ok {
		return AnswerConfirm
	}
	if _, ok := exactNo[lower]; ok {
		return AnswerReject
	}
	for _, w := range containsNo {
		if strings.Contains(lower, w) {
			return AnswerReject
		}
	}
	for _, w := range containsYes {
		if strings.Contains(lower, w) {
			return AnswerConfirm
		}
	}
	return AnswerAmbiguous
}

var digitsRe = regexp.MustCompile(`[0-9]+`)

// ParseGoalValue pulls the first contiguous digit run out of a message and
// validates it against the configured goal range.
func ParseGoalValue(body string, min, max int) (int, bool) {
	match := digitsRe.FindString(body)
	if match == "" {
		return 0, false
	}
	value, err := strconv.Atoi(match)
	if err != nil || value < min || value > max {
		return 0, false
	}
	return value, true
}

var ackWords = map[string]struct{}{
	"ok": {}, "entendi": {}, "sim": {}, "certo": {}, "beleza": {},
	"claro": {}, "vamos": {}, "bora": {}, "pode": {},
}

// IsAcknowledgement reports whether the message is a short "got it" reply.
func IsAcknowledgement(body string) bool {
	lower := strings.ToLower(strings.TrimSpace(body))
	lower = strings.Trim(lower, ".,!?")
	if _, ok := ackWords[lower]; ok {
		return true
	}
	for w := range ackWords {
		if len(w) >= 2 && strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
