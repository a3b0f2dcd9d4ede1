package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gustta03/meals-api/config"
	"github.com/gustta03/meals-api/models"
)

// IncomingMessage is one inbound chat message, already decoded by the
// transport.
type IncomingMessage struct {
	From      string
	Name      string
	Body      string
	Image     []byte
	ImageMime string
	Timestamp time.Time
}

// Reply is the payload the core hands back to the transport. Delivery is not
// the dispatcher's problem.
type Reply struct {
	Text         string
	Image        []byte
	ImageMime    string
	ImageCaption string
}

// DispatcherService is the per-user state machine. It serializes turns per
// user, consults the session, routes the message through pending slots,
// onboarding and fixed intents, and composes the reply.
type DispatcherService struct {
	sessions SessionStore
	users    *UserService
	meals    MealStore
	analysis *AnalysisService
	reports  *ReportService
	charts   ChartRenderer // optional
	screener ImageScreener // optional
	ai       LanguageUnderstanding
	hub      *RealtimeHub // optional
	cfg      config.Settings

	locks *keyedMutex
	now   func() time.Time
}

func NewDispatcherService(
	sessions SessionStore,
	users *UserService,
	meals MealStore,
	analysis *AnalysisService,
	reports *ReportService,
	ai LanguageUnderstanding,
	cfg config.Settings,
) *DispatcherService {
	return &DispatcherService{
		sessions: sessions,
		users:    users,
		meals:    meals,
		analysis: analysis,
		reports:  reports,
		ai:       ai,
		cfg:      cfg,
		locks:    newKeyedMutex(),
		now:      time.Now,
	}
}

func (d *DispatcherService) WithCharts(c ChartRenderer) *DispatcherService { d.charts = c; return d }

func (d *DispatcherService) WithScreener(s ImageScreener) *DispatcherService { d.screener = s; return d }

func (d *DispatcherService) WithHub(h *RealtimeHub) *DispatcherService { d.hub = h; return d }

// HandleMessage processes one inbound message and returns the reply payload.
// It never returns an error to the transport: every failure is mapped to a
// user-visible message here.
func (d *DispatcherService) HandleMessage(ctx context.Context, msg IncomingMessage) Reply {
	unlock := d.locks.Lock(msg.From)
	defer unlock()

	if d.users != nil {
		if _, err := d.users.EnsureExists(ctx, msg.From, msg.Name); err != nil {
			// The reply does not depend on the user row; keep going.
			log.Printf("ensure user %s: %v", msg.From, err)
		}
	}

	session, err := d.sessions.Get(ctx, msg.From)
	if err != nil {
		log.Printf("session load %s: %v", msg.From, err)
		return Reply{Text: msgCouldNotProcess}
	}

	if session == nil {
		return d.welcomeNewUser(ctx, msg.From)
	}

	if len(msg.Image) > 0 {
		return d.handleImage(ctx, session, msg)
	}

	// Priority 1: a pending confirmation intercepts everything.
	if pending := session.PendingConfirmation(d.now()); pending != nil {
		switch ClassifyConfirmation(msg.Body) {
		case AnswerConfirm:
			return d.confirmPending(ctx, session, pending, msg.Body)
		case AnswerReject:
			session.ClearPendingConfirmation()
			d.saveSession(ctx, session)
			return Reply{Text: msgConfirmationRejected}
		}
		// Ambiguous: fall through with the confirmation still pending.
	}

	// Priority 2: the next number is a goal value.
	if session.PendingGoalUpdate {
		return d.applyGoalUpdate(ctx, session, msg.Body)
	}

	// Priority 3: onboarding.
	if session.OnboardingStep != models.StepCompleted {
		return d.handleOnboarding(ctx, session, msg)
	}

	// Priority 4 and 5: fixed intents, then free-text meal description.
	return d.handleIntent(ctx, session, msg)
}

func (d *DispatcherService) welcomeNewUser(ctx context.Context, phone string) Reply {
	session := models.NewUserSession(phone)
	session.OnboardingStep = models.StepGoalSetting
	if err := d.sessions.Upsert(ctx, session); err != nil {
		log.Printf("session create %s: %v", phone, err)
		return Reply{Text: msgCouldNotProcess}
	}
	return Reply{Text: msgOnboardingWelcome}
}

func (d *DispatcherService) applyGoalUpdate(ctx context.Context, session *models.UserSession, body string) Reply {
	value, ok := ParseGoalValue(body, d.cfg.MinDailyCalorieGoal, d.cfg.MaxDailyCalorieGoal)
	if !ok {
		// Flag stays set: the user gets another chance.
		return Reply{Text: fmt.Sprintf(msgGoalParseFailed, d.cfg.MinDailyCalorieGoal, d.cfg.MaxDailyCalorieGoal)}
	}
	session.DailyCalorieGoal = &value
	session.PendingGoalUpdate = false
	d.saveSession(ctx, session)
	return Reply{Text: fmt.Sprintf(msgGoalUpdated, value)}
}

func (d *DispatcherService) handleOnboarding(ctx context.Context, session *models.UserSession, msg IncomingMessage) Reply {
	switch session.OnboardingStep {
	case models.StepWelcome:
		session.OnboardingStep = models.StepGoalSetting
		d.saveSession(ctx, session)
		return Reply{Text: msgOnboardingWelcome}

	case models.StepGoalSetting:
		value, ok := ParseGoalValue(msg.Body, d.cfg.MinDailyCalorieGoal, d.cfg.MaxDailyCalorieGoal)
		if !ok {
			return Reply{Text: fmt.Sprintf(msgOnboardingGoalInvalid, d.cfg.MinDailyCalorieGoal, d.cfg.MaxDailyCalorieGoal)}
		}
		session.DailyCalorieGoal = &value
		session.OnboardingStep = models.StepExplaining
		d.saveSession(ctx, session)
		return Reply{Text: fmt.Sprintf(msgOnboardingExplaining, value)}

	case models.StepExplaining:
		if !IsAcknowledgement(msg.Body) {
			return Reply{Text: msgOnboardingExplainReminder}
		}
		session.OnboardingStep = models.StepPracticing
		d.saveSession(ctx, session)
		return Reply{Text: msgOnboardingPractice}

	case models.StepPracticing:
		reply, err := d.analyzeAndLog(ctx, session, msg.Body)
		if err != nil {
			return Reply{Text: msgOnboardingRetry}
		}
		session.OnboardingStep = models.StepCompleted
		d.saveSession(ctx, session)
		reply.Text += msgOnboardingSuccess
		return reply
	}
	return Reply{Text: msgNotUnderstood}
}

func (d *DispatcherService) handleIntent(ctx context.Context, session *models.UserSession, msg IncomingMessage) Reply {
	switch ClassifyIntent(msg.Body) {
	case IntentGreeting:
		return Reply{Text: msgGreeting}

	case IntentHelp:
		return Reply{Text: msgHelp}

	case IntentGoalCommand:
		session.PendingGoalUpdate = true
		d.saveSession(ctx, session)
		if session.DailyCalorieGoal != nil {
			return Reply{Text: fmt.Sprintf(msgGoalPromptWithCurrent, *session.DailyCalorieGoal)}
		}
		return Reply{Text: msgGoalPromptNoCurrent}

	case IntentFoodList:
		return Reply{Text: msgFoodListPlaceholder}

	case IntentDailySummary:
		return d.dailySummaryReply(ctx, session)

	case IntentWeeklyReport:
		return d.weeklyReportReply(ctx, session)
	}

	reply, err := d.analyzeAndLog(ctx, session, msg.Body)
	if err != nil {
		if IsRecoverable(err) {
			return Reply{Text: msgCouldNotCalculate}
		}
		return Reply{Text: msgCouldNotProcess}
	}
	return reply
}

func (d *DispatcherService) handleImage(ctx context.Context, session *models.UserSession, msg IncomingMessage) Reply {
	if d.screener != nil {
		isFood, labels, err := d.screener.LooksLikeFood(ctx, msg.Image)
		if err != nil {
			// The screener is an optimization; the model still decides.
			log.Printf("image screen for %s: %v", msg.From, err)
		} else if !isFood {
			log.Printf("image from %s rejected by screener, labels=%v", msg.From, labels)
			return Reply{Text: msgImageNotFood}
		}
	}

	items, err := d.ai.IdentifyFoodsFromImage(ctx, msg.Image, msg.ImageMime)
	if err != nil {
		log.Printf("image identify for %s: %v", msg.From, err)
		return Reply{Text: msgCouldNotProcess}
	}

	// Photo identifications are lower trust: they always wait for an explicit
	// yes before a meal is committed. A new photo supersedes any older
	// pending set.
	pending := models.PendingNutritionData{}
	var lines []string
	for _, item := range items {
		pending.Items = append(pending.Items, models.PendingItem{
			Name:        item.Name,
			Quantity:    item.Quantity,
			WeightGrams: item.WeightGrams,
			Unit:        item.Unit,
		})
		lines = append(lines, fmt.Sprintf("• %s (%.0fg)", item.Name, item.WeightGrams))
	}
	session.SetPendingConfirmation(pending, d.now().Add(d.cfg.PendingConfirmationTTL))
	d.saveSession(ctx, session)

	return Reply{Text: msgImageConfirmPrefix + strings.Join(lines, "\n") + msgImageConfirmSuffix}
}

func (d *DispatcherService) confirmPending(ctx context.Context, session *models.UserSession, pending *models.PendingNutritionData, body string) Reply {
	session.ClearPendingConfirmation()
	d.saveSession(ctx, session)

	analysis, err := d.analysis.PriceItems(ctx, pending.Items)
	if err != nil {
		if IsRecoverable(err) {
			return Reply{Text: msgCouldNotCalculate}
		}
		return Reply{Text: msgCouldNotProcess}
	}

	reply := d.logAndCompose(ctx, session, analysis, InferMealType(body))
	if session.OnboardingStep == models.StepPracticing {
		session.OnboardingStep = models.StepCompleted
		d.saveSession(ctx, session)
		reply.Text += msgOnboardingSuccess
	}
	return reply
}

func (d *DispatcherService) analyzeAndLog(ctx context.Context, session *models.UserSession, text string) (Reply, error) {
	analysis, err := d.analysis.AnalyzeText(ctx, text)
	if err != nil {
		return Reply{}, err
	}
	return d.logAndCompose(ctx, session, analysis, InferMealType(text)), nil
}

// logAndCompose persists the meal and builds the analysis reply. A failed
// save is logged and swallowed: the user still gets their breakdown, the
// reply path favors availability over durability.
func (d *DispatcherService) logAndCompose(ctx context.Context, session *models.UserSession, analysis *models.NutritionAnalysis, mealType models.MealType) Reply {
	now := d.now()

	meal, err := BuildMeal(session.UserPhone, analysis, mealType, now)
	if err != nil {
		log.Printf("build meal for %s: %v", session.UserPhone, err)
		return Reply{Text: msgCouldNotProcess}
	}
	if err := d.meals.Save(ctx, meal); err != nil {
		log.Printf("meal save for %s failed, showing analysis anyway: %v", session.UserPhone, err)
	} else if d.hub != nil {
		d.hub.BroadcastMealLogged(session.UserPhone, meal)
	}

	var b strings.Builder
	b.WriteString("Prontinho, analisei sua refeição! 🍽️\n\n")
	for _, item := range analysis.Items {
		fmt.Fprintf(&b, "• %s (%s): %.2f kcal | P %.2fg | C %.2fg | G %.2fg\n",
			item.Name, item.Quantity, item.Nutrients.Kcal,
			item.Nutrients.ProteinG, item.Nutrients.CarbG, item.Nutrients.FatG)
	}
	fmt.Fprintf(&b, "\n🔢 Totais da refeição: %.2f kcal | P %.2fg | C %.2fg | G %.2fg\n",
		analysis.Totals.Kcal, analysis.Totals.ProteinG, analysis.Totals.CarbG, analysis.Totals.FatG)

	reply := Reply{}
	summary, err := d.reports.DailySummary(ctx, session.UserPhone, now)
	if err != nil {
		log.Printf("daily summary for %s: %v", session.UserPhone, err)
	} else {
		fmt.Fprintf(&b, "\n📊 Hoje você já consumiu: %.2f kcal | P %.2fg | C %.2fg | G %.2fg",
			summary.DailyTotals.Kcal, summary.DailyTotals.ProteinG,
			summary.DailyTotals.CarbG, summary.DailyTotals.FatG)

		if session.DailyCalorieGoal != nil {
			goal := float64(*session.DailyCalorieGoal)
			fmt.Fprintf(&b, "\n🎯 Meta diária: %.0f kcal (%.0f%%)",
				goal, pctOfGoal(summary.DailyTotals.Kcal, goal))
			reply.Image, reply.ImageMime = d.renderProgress(summary.DailyTotals.Kcal, goal)
		}
	}

	reply.Text = b.String()
	return reply
}

func (d *DispatcherService) dailySummaryReply(ctx context.Context, session *models.UserSession) Reply {
	now := d.now()
	summary, err := d.reports.DailySummary(ctx, session.UserPhone, now)
	if err != nil {
		log.Printf("daily summary for %s: %v", session.UserPhone, err)
		return Reply{Text: msgCouldNotProcess}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📊 Resumo do dia %s:\n\n", summary.Date)
	if len(summary.Meals) == 0 {
		b.WriteString("Você ainda não registrou refeições hoje. Me conta o que você comeu! 😊")
		return Reply{Text: b.String()}
	}
	for _, meal := range summary.Meals {
		fmt.Fprintf(&b, "🍽️ %s: %.2f kcal | P %.2fg | C %.2fg | G %.2fg\n",
			mealTypeLabel(meal.MealType), meal.Totals.Kcal,
			meal.Totals.ProteinG, meal.Totals.CarbG, meal.Totals.FatG)
	}
	fmt.Fprintf(&b, "\n🔢 Total do dia: %.2f kcal | P %.2fg | C %.2fg | G %.2fg",
		summary.DailyTotals.Kcal, summary.DailyTotals.ProteinG,
		summary.DailyTotals.CarbG, summary.DailyTotals.FatG)

	reply := Reply{}
	if session.DailyCalorieGoal != nil {
		goal := float64(*session.DailyCalorieGoal)
		fmt.Fprintf(&b, "\n🎯 Meta diária: %.0f kcal (%.0f%%)",
			goal, pctOfGoal(summary.DailyTotals.Kcal, goal))
		reply.Image, reply.ImageMime = d.renderProgress(summary.DailyTotals.Kcal, goal)
	}
	reply.Text = b.String()
	return reply
}

func (d *DispatcherService) weeklyReportReply(ctx context.Context, session *models.UserSession) Reply {
	report, err := d.reports.WeeklyReport(ctx, session.UserPhone, time.Time{})
	if err != nil {
		log.Printf("weekly report for %s: %v", session.UserPhone, err)
		return Reply{Text: msgCouldNotProcess}
	}

	reply := Reply{Text: FormatWeeklyText(report)}
	if d.charts != nil {
		image, err := d.charts.WeeklyNutritionChart(report)
		if err != nil {
			log.Printf("weekly chart for %s: %v", session.UserPhone, err)
		} else {
			reply.Image = image
			reply.ImageMime = "image/png"
			reply.ImageCaption = "Evolução dos seus nutrientes na semana 📈"
		}
	}
	return reply
}

func (d *DispatcherService) renderProgress(current, goal float64) ([]byte, string) {
	if d.charts == nil {
		return nil, ""
	}
	image, err := d.charts.CalorieProgressBar(current, goal)
	if err != nil {
		log.Printf("progress bar render: %v", err)
		return nil, ""
	}
	return image, "image/png"
}

func (d *DispatcherService) saveSession(ctx context.Context, session *models.UserSession) {
	if err := d.sessions.Upsert(ctx, session); err != nil {
		log.Printf("session save %s: %v", session.UserPhone, err)
	}
}

func pctOfGoal(consumed, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	return round2(consumed / goal * 100)
}

func mealTypeLabel(t models.MealType) string {
	switch t {
	case models.MealBreakfast:
		return "Café da manhã"
	case models.MealLunch:
		return "Almoço"
	case models.MealDinner:
		return "Jantar"
	case models.MealSnack:
		return "Lanche"
	}
	return "Refeição"
}
