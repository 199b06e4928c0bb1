package generator

import (
	"fmt"
	"strings"

	"github.com/shopsmart-ai/backend/internal/models"
)

// Prompt is the system/user instruction pair sent to the completion service
type Prompt struct {
	System string
	User   string
}

// languageInstruction tells the model which language to answer in
var languageInstruction = map[string]string{
	"en": "Respond in English.",
	"uk": "Відповідай українською.",
	"de": "Antworte auf Deutsch.",
}

// defaultNotes is the canned notes string substituted when the model
// omits the notes field
var defaultNotes = map[string]string{
	"en": "Shopping list optimized for your budget.",
	"uk": "Список оптимізовано під ваш бюджет.",
	"de": "Einkaufsliste für Ihr Budget optimiert.",
}

var weekdayNames = map[string][]string{
	"en": {"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"},
	"uk": {"Понеділок", "Вівторок", "Середа", "Четвер", "П'ятниця", "Субота", "Неділя"},
	"de": {"Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag", "Sonntag"},
}

// DefaultNotes returns the canned notes string for a language code,
// falling back to English for unknown codes
func DefaultNotes(lang string) string {
	if n, ok := defaultNotes[lang]; ok {
		return n
	}
	return defaultNotes["en"]
}

func instructionFor(lang string) string {
	if ins, ok := languageInstruction[lang]; ok {
		return ins
	}
	return languageInstruction["en"]
}

// dayNames returns count weekday names for a language, cycling past Sunday
// when more than a week is requested
func dayNames(lang string, count int) []string {
	week, ok := weekdayNames[lang]
	if !ok {
		week = weekdayNames["en"]
	}
	names := make([]string, count)
	for i := 0; i < count; i++ {
		names[i] = week[i%len(week)]
	}
	return names
}

// BuildPrompt selects and fills the prompt pair for a validated request.
// Pure function: no side effects, no failure modes.
func BuildPrompt(req models.GenerateRequest) Prompt {
	if req.Mode == models.ModeMenu {
		return Prompt{
			System: menuSystemPrompt(req.Language, req.DaysValue()),
			User:   menuUserPrompt(req),
		}
	}
	return Prompt{
		System: shoppingSystemPrompt(req.Language),
		User:   shoppingUserPrompt(req),
	}
}

func shoppingSystemPrompt(lang string) string {
	return fmt.Sprintf(`You are ShopSmart AI for German supermarkets. %s

Create optimized weekly shopping list. Use 85-98%% of budget.
Stores: Lidl/Aldi=budget, Edeka=premium, Rewe=mid-range, Kaufland=bulk.
Categories: vegetables, fruits, meat, fish, dairy, bread, beverages, snacks, frozen, pantry, cleaning, hygiene

For FOOD items, estimate nutrition. Non-food = 0.

JSON only:
{"items":[{"product":"Name","quantity":"Amount","store":"Store","approx_price":0.00,"category":"cat","calories":100,"protein":5.0,"fat":2.0,"carbs":15.0}],"total_cost":0.00,"notes":"Brief notes"}`,
		instructionFor(lang))
}

func menuSystemPrompt(lang string, days int) string {
	return fmt.Sprintf(`You are ShopSmart AI meal planner. %s

Create a %d-day meal plan with breakfast, lunch, dinner, and snack for each day.
Then create a shopping list with all needed products.

Days: %s

Consider: balanced nutrition, variety, budget optimization.

JSON only:
{"menu":[{"day":"Day name","breakfast":{"name":"Meal","description":"Short description","calories":300},"lunch":{"name":"Meal","description":"Description","calories":500},"dinner":{"name":"Meal","description":"Description","calories":600},"snack":{"name":"Snack","description":"Description","calories":150}}],"items":[{"product":"Name","quantity":"Amount","store":"Store","approx_price":0.00,"category":"cat","calories":100,"protein":5.0,"fat":2.0,"carbs":15.0}],"total_cost":0.00,"notes":"Brief notes"}`,
		instructionFor(lang), days, strings.Join(dayNames(lang, days), ", "))
}

func shoppingUserPrompt(req models.GenerateRequest) string {
	return fmt.Sprintf("Supermarkets: %s\nBudget: €%g\nFamily: %d\nPreferences: %s\n\nGenerate 15-25 items.",
		strings.Join(req.Supermarkets, ", "), req.Budget, req.FamilySizeValue(), preferencesOrNone(req.Preferences))
}

func menuUserPrompt(req models.GenerateRequest) string {
	return fmt.Sprintf("Supermarkets: %s\nBudget: €%g\nFamily: %d\nPreferences: %s\n\nCreate %d-day meal plan with shopping list.",
		strings.Join(req.Supermarkets, ", "), req.Budget, req.FamilySizeValue(), preferencesOrNone(req.Preferences), req.DaysValue())
}

func preferencesOrNone(prefs string) string {
	if strings.TrimSpace(prefs) == "" {
		return "None"
	}
	return prefs
}
