package handlers

import (
	"net/http"
	"sort"
	"strings"

	"qualityze-admin-be/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/sahilm/fuzzy"
)

// SearchHandler serves admin quick-search suggestions over published
// content titles
type SearchHandler struct {
	trainings *services.TrainingService
	content   *services.ContentService
}

func NewSearchHandler(trainings *services.TrainingService, content *services.ContentService) *SearchHandler {
	return &SearchHandler{trainings: trainings, content: content}
}

// Suggestion is a single ranked quick-search hit
type Suggestion struct {
	Text  string `json:"text"`
	Type  string `json:"type"` // "training" | "service"
	Slug  string `json:"slug"`
	Score int    `json:"score"`
}

// Suggestions godoc
// @Summary Fuzzy quick-search over training and service titles
// @Tags search
// @Security ApiKeyAuth
// @Produce json
// @Param q query string true "Query"
// @Success 200 {object} map[string][]Suggestion
// @Router /admin/search/suggestions [get]
func (h *SearchHandler) Suggestions(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query cannot be empty"})
		return
	}

	ctx := c.Request.Context()

	var candidates []Suggestion
	for _, t := range h.trainings.List(ctx) {
		candidates = append(candidates, Suggestion{Text: t.Title, Type: "training", Slug: t.Slug})
	}
	for _, s := range h.content.List(ctx) {
		candidates = append(candidates, Suggestion{Text: s.Name, Type: "service", Slug: s.Slug})
	}

	texts := make([]string, len(candidates))
	for i, cand := range candidates {
		texts[i] = cand.Text
	}

	matches := fuzzy.Find(query, texts)
	suggestions := make([]Suggestion, 0, len(matches))
	for _, m := range matches {
		hit := candidates[m.Index]
		hit.Score = m.Score
		suggestions = append(suggestions, hit)
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})
	if len(suggestions) > 10 {
		suggestions = suggestions[:10]
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}
