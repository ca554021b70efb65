// File: services/assistant/extract.go
package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"ttravels/models"
	"ttravels/utils"

	"go.uber.org/zap"
)

// extraction is the structured result the model (or the heuristics) hand back.
type extraction struct {
	Tasks   models.TaskSet     `json:"tasks"`
	Details models.TripContext `json:"details"`
}

const extractionPromptTemplate = `You are a travel request analyzer. Today's date is %s.

Analyze the user's latest message together with the recent conversation and return ONLY a JSON object, no markdown, no commentary:
{
  "tasks": ["plan_itinerary" | "find_flights" | "find_hotels" | "find_attractions", ...],
  "details": {
    "destination": "city name or empty string",
    "origin": "city name or empty string",
    "days": number of days or 0,
    "departure_date": "date expression as the user said it, or empty string",
    "return_date": "date expression as the user said it, or empty string",
    "budget": "budget as the user said it, or empty string",
    "adults": number of travelers or 0,
    "interests": ["interest", ...] or [],
    "transport": "car" | "flight" | ""
  }
}

Date rules:
- Keep relative expressions like "tomorrow" or "in 3 days" exactly as said; do not resolve them yourself.
- Never invent a date, destination, or budget the user did not state.
- "tasks" lists only what the user is asking for right now. A request for a full or complete trip plan means all four tasks.

Recent conversation:
%s

Latest user message: %s`

// extractTripDetails asks the model for a structured read of the message and
// falls back to regex heuristics when the model is unavailable or returns
// something unusable. It never fails: worst case is an empty extraction.
func (s *DefaultAssistantService) extractTripDetails(ctx context.Context, message string, history []models.ConversationTurn) extraction {
	ex, ok := s.extractWithModel(ctx, message, history)
	if !ok {
		ex = extraction{
			Tasks:   extractTasksHeuristic(message),
			Details: extractDetailsHeuristic(message),
		}
	}
	s.postProcessExtraction(&ex, message)
	return ex
}

func (s *DefaultAssistantService) extractWithModel(ctx context.Context, message string, history []models.ConversationTurn) (extraction, bool) {
	if s.LLM == nil {
		return extraction{}, false
	}
	prompt := fmt.Sprintf(extractionPromptTemplate,
		s.today().Format("2006-01-02"),
		renderRecentHistory(history, 4),
		message)
	raw, err := s.LLM.GenerateContent(ctx, prompt)
	if err != nil {
		utils.GetLogger().Warn("Extraction model call failed, using heuristics", zap.Error(err))
		return extraction{}, false
	}
	var ex extraction
	if err := json.Unmarshal([]byte(stripJSONFences(raw)), &ex); err != nil {
		utils.GetLogger().Warn("Extraction response was not valid JSON, using heuristics",
			zap.String("response", truncateForLog(raw, 200)), zap.Error(err))
		return extraction{}, false
	}
	ex.Tasks = filterKnownTasks(ex.Tasks)
	if len(ex.Tasks) == 0 {
		ex.Tasks = extractTasksHeuristic(message)
	}
	return ex, true
}

// postProcessExtraction resolves date expressions against the anchor date,
// derives a return date from departure + days, and tidies free-text fields.
func (s *DefaultAssistantService) postProcessExtraction(ex *extraction, message string) {
	today := s.today()
	d := &ex.Details

	d.Destination = cleanPlaceName(d.Destination)
	d.Origin = cleanPlaceName(d.Origin)

	if d.DepartureDate != "" {
		if iso, ok := NormalizeDate(d.DepartureDate, today); ok {
			d.DepartureDate = iso
		} else {
			utils.GetLogger().Warn("Dropping unparseable departure date",
				zap.String("value", d.DepartureDate))
			d.DepartureDate = ""
		}
	}
	if d.ReturnDate != "" {
		if iso, ok := NormalizeDate(d.ReturnDate, today); ok {
			d.ReturnDate = iso
		} else {
			d.ReturnDate = ""
		}
	}
	if d.ReturnDate == "" && d.DepartureDate != "" && d.Days > 0 {
		if iso, ok := addDaysISO(d.DepartureDate, d.Days); ok {
			d.ReturnDate = iso
		}
	}
	if d.Budget != "" {
		d.Budget = canonicalBudget(d.Budget)
	}
	// Heuristics may have missed fields the model also missed; one more pass
	// over the raw message costs little and recovers short answers like "5 days".
	heur := extractDetailsHeuristic(message)
	merged := *d
	merged.Merge(heur)
	// Merge prefers the incoming value, but the model's read of the current
	// message outranks the heuristic one; restore model-provided fields.
	restoreNonEmpty(&merged, *d)
	*d = merged

	if len(ex.Tasks) == 0 {
		ex.Tasks = models.TaskSet{models.TaskPlanItinerary}
	}
}

func restoreNonEmpty(dst *models.TripContext, src models.TripContext) {
	if src.Destination != "" {
		dst.Destination = src.Destination
	}
	if src.Origin != "" {
		dst.Origin = src.Origin
	}
	if src.Days > 0 {
		dst.Days = src.Days
	}
	if src.DepartureDate != "" {
		dst.DepartureDate = src.DepartureDate
	}
	if src.ReturnDate != "" {
		dst.ReturnDate = src.ReturnDate
	}
	if src.Budget != "" {
		dst.Budget = src.Budget
	}
	if src.Adults > 0 {
		dst.Adults = src.Adults
	}
	if len(src.Interests) > 0 {
		dst.Interests = src.Interests
	}
	if src.Transport != "" {
		dst.Transport = src.Transport
	}
}

// --- heuristic task detection ---

func extractTasksHeuristic(message string) models.TaskSet {
	if isFullTripPlan(message) {
		return fullTripTasks()
	}
	var tasks models.TaskSet
	lower := strings.ToLower(message)
	if isPlanRequest(message) || strings.Contains(lower, "itinerary") {
		tasks = tasks.Add(models.TaskPlanItinerary)
	}
	if isFlightSearch(message) {
		tasks = tasks.Add(models.TaskFindFlights)
	}
	if isHotelSearch(message) {
		tasks = tasks.Add(models.TaskFindHotels)
	}
	if strings.Contains(lower, "attraction") || strings.Contains(lower, "things to do") ||
		strings.Contains(lower, "places to visit") || strings.Contains(lower, "sightseeing") {
		tasks = tasks.Add(models.TaskFindAttractions)
	}
	return tasks
}

func filterKnownTasks(tasks models.TaskSet) models.TaskSet {
	var out models.TaskSet
	for _, t := range tasks {
		for _, known := range models.AllTasks {
			if t == known {
				out = out.Add(t)
			}
		}
	}
	return out
}

// --- heuristic detail extraction ---

var placeStopwords = map[string]bool{
	"want": true, "create": true, "make": true, "plan": true, "i": true,
	"me": true, "my": true, "please": true, "provide": true, "give": true,
	"show": true, "need": true, "trip": true, "for": true, "with": true, "so": true,
	"a": true, "an": true, "the": true, "next": true, "this": true,
}

var (
	reFromTo       = regexp.MustCompile(`(?i)\bfrom\s+([a-zA-Z][a-zA-Z\s]*?)\s+to\s+([a-zA-Z][a-zA-Z\s]*?)(?:[\s,.!?]|$)`)
	reToPlace      = regexp.MustCompile(`(?i)\b(?:to|in|visit|visiting)\s+([A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)?)`)
	reDaysCount    = regexp.MustCompile(`(?i)\b(\d{1,2})\s*[- ]?\s*days?\b`)
	reNightsCount  = regexp.MustCompile(`(?i)\b(\d{1,2})\s*[- ]?\s*nights?\b`)
	reOnDate       = regexp.MustCompile(`(?i)\bon\s+([a-zA-Z0-9,/\- ]+?)(?:\s+(?:and|for|with|to)\b|[.!?]|$)`)
	reReturnOn     = regexp.MustCompile(`(?i)\b(?:return(?:ing)?|come\s+back|back)\s+(?:on|by)\s+([a-zA-Z0-9,/\- ]+?)(?:\s+(?:and|for|with)\b|[.!?]|$)`)
	reDateRange    = regexp.MustCompile(`(\d{4}-\d{2}-\d{2})\s*(?:to|-|until|till)\s*(\d{4}-\d{2}-\d{2})`)
	reBudgetAmount = regexp.MustCompile(`(?i)(?:budget\s*(?:of|is|:)?\s*|under\s+|around\s+|within\s+)?(?:₹|rs\.?\s*|inr\s*)(\d[\d,]*)\s*(k|thousand|lakh)?`)
	reBudgetBare   = regexp.MustCompile(`(?i)\bbudget\s*(?:of|is|:)?\s*(\d[\d,]*)\s*(k|thousand|lakh)?\b`)
	reBudgetSpend  = regexp.MustCompile(`(?i)\b(?:have|spend|afford|pay|want|need)\s+(?:₹|rs\.?\s*|inr\s*)?(\d[\d,]*)\s*([a-z]*)`)
	reForNPeople   = regexp.MustCompile(`(?i)\bfor\s+(\d{1,2})\s+(?:people|persons|adults|travellers|travelers)\b`)
)

var interestKeywords = []string{"beach", "hiking", "museums", "food", "shopping", "nightlife", "temples", "adventure", "nature", "history"}

func extractDetailsHeuristic(message string) models.TripContext {
	var d models.TripContext
	lower := strings.ToLower(message)

	if m := reFromTo.FindStringSubmatch(message); m != nil {
		origin := cleanPlaceName(m[1])
		dest := cleanPlaceName(m[2])
		if isPlausiblePlace(origin) && isPlausiblePlace(dest) {
			d.Origin = origin
			d.Destination = dest
		}
	}
	if d.Destination == "" {
		if m := reToPlace.FindStringSubmatch(message); m != nil {
			if dest := cleanPlaceName(m[1]); isPlausiblePlace(dest) {
				d.Destination = dest
			}
		}
	}

	if m := reDaysCount.FindStringSubmatch(message); m != nil {
		d.Days, _ = strconv.Atoi(m[1])
	} else if m := reNightsCount.FindStringSubmatch(message); m != nil {
		n, _ := strconv.Atoi(m[1])
		d.Days = n + 1
	}

	if m := reDateRange.FindStringSubmatch(message); m != nil {
		d.DepartureDate = m[1]
		d.ReturnDate = m[2]
	} else {
		if m := reReturnOn.FindStringSubmatch(message); m != nil {
			d.ReturnDate = strings.TrimSpace(m[1])
		}
		if m := reOnDate.FindStringSubmatch(message); m != nil {
			expr := strings.TrimSpace(m[1])
			if d.ReturnDate == "" || !strings.Contains(d.ReturnDate, expr) {
				d.DepartureDate = expr
			}
		}
	}

	d.Budget = extractBudget(lower)

	for _, kw := range interestKeywords {
		if strings.Contains(lower, kw) {
			d.Interests = append(d.Interests, kw)
		}
	}

	if m := reForNPeople.FindStringSubmatch(message); m != nil {
		d.Adults, _ = strconv.Atoi(m[1])
	} else if strings.Contains(lower, "wife") || strings.Contains(lower, "husband") || strings.Contains(lower, "partner") {
		d.Adults = 2
	}

	if strings.Contains(lower, "by car") || strings.Contains(lower, "road trip") || strings.Contains(lower, "drive") {
		d.Transport = "car"
	} else if strings.Contains(lower, "by flight") || strings.Contains(lower, "by air") || strings.Contains(lower, "fly") {
		d.Transport = "flight"
	}

	return d
}

func extractBudget(lower string) string {
	// Category tiers: the bare word "budget" alone carries no tier and is
	// left for the amount patterns below.
	for _, cat := range []string{"luxury", "premium", "expensive", "mid-range", "midrange", "moderate", "budget-friendly", "affordable", "cheap"} {
		if strings.Contains(lower, cat) {
			switch cat {
			case "luxury", "premium", "expensive":
				return "luxury"
			case "mid-range", "midrange", "moderate":
				return "mid-range"
			default:
				return "budget"
			}
		}
	}
	m := reBudgetAmount.FindStringSubmatch(lower)
	if m == nil {
		m = reBudgetBare.FindStringSubmatch(lower)
	}
	if m != nil {
		return budgetAmount(m[1], m[2])
	}
	// Catch-all "have/spend/want/need N": the trailing word disambiguates a
	// money amount from "5 days" or "3 people".
	if m := reBudgetSpend.FindStringSubmatch(lower); m != nil {
		switch m[2] {
		case "", "k", "thousand", "lakh", "lakhs", "rupees", "rupee", "rs", "inr":
			return budgetAmount(m[1], m[2])
		}
	}
	return ""
}

func budgetAmount(digits, unit string) string {
	n, err := strconv.Atoi(strings.ReplaceAll(digits, ",", ""))
	if err != nil {
		return ""
	}
	switch unit {
	case "k", "thousand":
		n *= 1000
	case "lakh", "lakhs":
		n *= 100000
	}
	return strconv.Itoa(n)
}

// canonicalBudget keeps category words as-is and reduces numeric expressions
// ("₹50,000", "50k", "1 lakh") to a plain integer string.
func canonicalBudget(raw string) string {
	lower := strings.ToLower(strings.TrimSpace(raw))
	switch lower {
	case "budget", "cheap", "budget-friendly", "affordable":
		return "budget"
	case "mid-range", "midrange", "moderate":
		return "mid-range"
	case "luxury", "premium", "expensive":
		return "luxury"
	}
	if b := extractBudget(lower); b != "" {
		return b
	}
	return lower
}

func cleanPlaceName(name string) string {
	name = strings.Trim(strings.TrimSpace(name), ".,!?;:\"'")
	words := strings.Fields(name)
	for len(words) > 0 && placeStopwords[strings.ToLower(words[0])] {
		words = words[1:]
	}
	for len(words) > 0 && placeStopwords[strings.ToLower(words[len(words)-1])] {
		words = words[:len(words)-1]
	}
	return strings.Join(words, " ")
}

func isPlausiblePlace(name string) bool {
	if name == "" || len(name) < 2 {
		return false
	}
	for _, w := range strings.Fields(strings.ToLower(name)) {
		if placeStopwords[w] {
			return false
		}
	}
	return true
}

// --- small shared helpers ---

func stripJSONFences(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	return strings.TrimSpace(raw)
}

func truncateForLog(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func renderRecentHistory(history []models.ConversationTurn, maxTurns int) string {
	if len(history) > maxTurns*2 {
		history = history[len(history)-maxTurns*2:]
	}
	if len(history) == 0 {
		return "(no prior conversation)"
	}
	var b strings.Builder
	for _, turn := range history {
		label := "User"
		if turn.Role == models.RoleAssistant {
			label = "Assistant"
		}
		b.WriteString(label)
		b.WriteString(": ")
		b.WriteString(turn.Content)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
