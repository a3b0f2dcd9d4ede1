package services

import "testing"

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		body string
		want MessageIntent
	}{
		{"oi", IntentGreeting},
		{"Bom dia", IntentGreeting},
		{"boa noite", IntentGreeting},
		{"help", IntentHelp},
		{"preciso de ajuda", IntentHelp},
		{"quero mudar minha meta", IntentGoalCommand},
		{"/alimentos arroz", IntentFoodList},
		{"resumo", IntentDailySummary},
		{"hoje", IntentDailySummary},
		{"diario", IntentDailySummary},
		{"relatório semanal", IntentWeeklyReport},
		{"como foi minha semana?", IntentWeeklyReport},
		{"comi 200g de arroz e 100g de frango", IntentMealDescription},
		{"2 ovos mexidos", IntentMealDescription},
	}
	for _, tt := range tests {
		if got := ClassifyIntent(tt.body); got != tt.want {
			t.Errorf("ClassifyIntent(%q) = %v, want %v", tt.body, got, tt.want)
		}
	}
}

func TestClassifyConfirmation(t *testing.T) {
	tests := []struct {
		body string
		want ConfirmationAnswer
	}{
		{"sim", AnswerConfirm},
		{"s", AnswerConfirm},
		{"yes", AnswerConfirm},
		{"ok", AnswerConfirm},
		{"Sim!", AnswerConfirm},
		{"sim, está certo", AnswerConfirm},
		{"pode calcular", AnswerConfirm},
		{"não", AnswerReject},
		{"nao", AnswerReject},
		{"no", AnswerReject},
		{"n", AnswerReject},
		{"não, está errado", AnswerReject},
		{"cancela isso", AnswerReject},
		{"talvez", AnswerAmbiguous},
		{"nota dez", AnswerAmbiguous},
		{"isso", AnswerConfirm},
		{"o que aconteceu?", AnswerAmbiguous},
	}
	for _, tt := range tests {
		if got := ClassifyConfirmation(tt.body); got != tt.want {
			t.Errorf("ClassifyConfirmation(%q) = %v, want %v", tt.body, got, tt.want)
		}
	}
}

func TestRejectionWinsOverConfirmation(t *testing.T) {
	// Both vocabularies appear; the rejection scan runs first.
	if got := ClassifyConfirmation("sim mas o arroz está errado"); got != AnswerReject {
		t.Errorf("got %v, want reject when both signals are present", got)
	}
}

func TestParseGoalValue(t *testing.T) {
	tests := []struct {
		body   string
		want   int
		wantOK bool
	}{
		{"2000", 2000, true},
		{"quero 2500 kcal", 2500, true},
		{"800", 800, true},
		{"10000", 10000, true},
		{"799", 0, false},
		{"10001", 0, false},
		{"sem numero", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseGoalValue(tt.body, 800, 10000)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseGoalValue(%q) = (%d, %v), want (%d, %v)", tt.body, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestIsAcknowledgement(t *testing.T) {
	tests := []struct {
		body string
		want bool
	}{
		{"ok", true},
		{"Entendi!", true},
		{"beleza", true},
		{"vamos lá", true},
		{"quero pensar mais", false},
		{"nunca", false},
	}
	for _, tt := range tests {
		if got := IsAcknowledgement(tt.body); got != tt.want {
			t.Errorf("IsAcknowledgement(%q) = %v, want %v", tt.body, got, tt.want)
		}
	}
}
