package models

// ShoppingItem is a single product on the generated list. Nutrition fields
// default to zero for non-food categories.
type ShoppingItem struct {
	Product     string  `json:"product"`
	Quantity    string  `json:"quantity"`
	Store       string  `json:"store"`
	ApproxPrice float64 `json:"approx_price"`
	Category    string  `json:"category"`
	Calories    int     `json:"calories"`
	Protein     float64 `json:"protein"`
	Fat         float64 `json:"fat"`
	Carbs       float64 `json:"carbs"`
}

// Meal is one entry of a day menu
type Meal struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Calories    int    `json:"calories,omitempty"`
}

// DayMenu holds the three required meals plus an optional snack for one day
type DayMenu struct {
	Day       string `json:"day"`
	Breakfast Meal   `json:"breakfast"`
	Lunch     Meal   `json:"lunch"`
	Dinner    Meal   `json:"dinner"`
	Snack     *Meal  `json:"snack,omitempty"`
}

// NutritionTotals aggregates nutrition across all items on the list
type NutritionTotals struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
}

// GenerationResult is the fully validated response body of POST /generate
type GenerationResult struct {
	Items       []ShoppingItem   `json:"items"`
	TotalCost   float64          `json:"total_cost"`
	Notes       string           `json:"notes"`
	GeneratedAt string           `json:"generated_at"`
	Menu        []DayMenu        `json:"menu,omitempty"`
	Nutrition   *NutritionTotals `json:"nutrition,omitempty"`
}
