package generator

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopsmart-ai/backend/internal/models"
)

// strictTotalTolerance is the allowed relative drift between a model-supplied
// total_cost and the sum of item prices in strict mode
const strictTotalTolerance = 0.01

// replyPayload is the optional-with-default schema of the model reply.
// Every field the sanitizer may read is declared here up front; nothing is
// probed ad hoc. Items is a pointer so a missing key can be told apart from
// an explicitly empty list.
type replyPayload struct {
	Items     *[]models.ShoppingItem  `json:"items"`
	TotalCost *float64                `json:"total_cost"`
	Notes     string                  `json:"notes"`
	Menu      []models.DayMenu        `json:"menu"`
	Nutrition *models.NutritionTotals `json:"nutrition"`
}

// Sanitizer converts a raw model reply into a validated GenerationResult.
// Stateless with respect to other in-flight requests.
type Sanitizer struct {
	strict bool
	now    func() time.Time
}

// NewSanitizer creates a sanitizer with the default trust-the-model policy
func NewSanitizer() *Sanitizer {
	return &Sanitizer{now: time.Now}
}

// NewStrictSanitizer additionally enforces store membership and total-cost
// consistency, rejecting replies that drift from the item sum
func NewStrictSanitizer() *Sanitizer {
	return &Sanitizer{strict: true, now: time.Now}
}

// Sanitize strips markdown fencing, parses the reply as JSON, backfills the
// optional fields and stamps the result. On failure the returned error tags
// which stage rejected the reply; the raw text is never part of the message.
func (s *Sanitizer) Sanitize(raw string, req models.GenerateRequest) (*models.GenerationResult, error) {
	content := StripFence(raw)

	var payload replyPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, &MalformedOutputError{Stage: StageParse, Err: err}
	}

	if payload.Items == nil {
		return nil, &MalformedOutputError{Stage: StageItems, Err: fmt.Errorf("items field missing")}
	}
	items := *payload.Items

	priceSum := 0.0
	for _, it := range items {
		priceSum += it.ApproxPrice
	}
	priceSum = round2(priceSum)

	totalCost := priceSum
	if payload.TotalCost != nil {
		totalCost = *payload.TotalCost
	}

	if s.strict {
		if err := s.checkStrict(items, totalCost, priceSum, req); err != nil {
			return nil, err
		}
	}

	notes := strings.TrimSpace(payload.Notes)
	if notes == "" {
		notes = DefaultNotes(req.Language)
	}

	nutrition := payload.Nutrition
	if nutrition == nil {
		nutrition = aggregateNutrition(items)
	}

	return &models.GenerationResult{
		Items:       items,
		TotalCost:   totalCost,
		Notes:       notes,
		GeneratedAt: s.now().UTC().Format(time.RFC3339),
		Menu:        payload.Menu,
		Nutrition:   nutrition,
	}, nil
}

// checkStrict enforces the opt-in validations: every item store must be in
// the requested set, and a model-supplied total must track the item sum
func (s *Sanitizer) checkStrict(items []models.ShoppingItem, totalCost, priceSum float64, req models.GenerateRequest) error {
	for _, it := range items {
		if !storeRequested(it.Store, req.Supermarkets) {
			return &MalformedOutputError{
				Stage: StageStrict,
				Err:   fmt.Errorf("item store %q not in requested set", it.Store),
			}
		}
	}
	if priceSum > 0 && math.Abs(totalCost-priceSum) > priceSum*strictTotalTolerance {
		return &MalformedOutputError{
			Stage: StageStrict,
			Err:   fmt.Errorf("total_cost %.2f does not match item sum %.2f", totalCost, priceSum),
		}
	}
	return nil
}

func storeRequested(store string, requested []string) bool {
	for _, r := range requested {
		if strings.EqualFold(store, r) {
			return true
		}
	}
	return false
}

// aggregateNutrition sums per-item nutrition, treating missing values as
// zero; decimal fields are rounded to 1 place
func aggregateNutrition(items []models.ShoppingItem) *models.NutritionTotals {
	totals := &models.NutritionTotals{}
	for _, it := range items {
		totals.Calories += it.Calories
		totals.Protein += it.Protein
		totals.Fat += it.Fat
		totals.Carbs += it.Carbs
	}
	totals.Protein = round1(totals.Protein)
	totals.Fat = round1(totals.Fat)
	totals.Carbs = round1(totals.Carbs)
	return totals
}

// StripFence extracts the content of the first markdown code fence, honoring
// a "json" language tag. Text before and after the fence is ignored. With no
// fence the input is returned trimmed, which makes stripping idempotent.
func StripFence(text string) string {
	if inner, ok := betweenFences(text, "```json"); ok {
		return inner
	}
	if inner, ok := betweenFences(text, "```"); ok {
		return inner
	}
	return strings.TrimSpace(text)
}

// betweenFences returns the text between the first open delimiter and the
// next closing fence. A missing closing fence yields the remainder, matching
// how lenient clients split on the delimiters.
func betweenFences(text, open string) (string, bool) {
	i := strings.Index(text, open)
	if i < 0 {
		return "", false
	}
	rest := text[i+len(open):]
	if j := strings.Index(rest, "```"); j >= 0 {
		rest = rest[:j]
	}
	return strings.TrimSpace(rest), true
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
