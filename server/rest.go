package server

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// recommendationResponse is the serialized ranked result
type recommendationResponse struct {
	Recommendations []recommendedItem `json:"recommendations"`
	Count           int               `json:"count"`
	Strategy        string            `json:"strategy"`
}

// recommendedItem mirrors the catalog file field names so consumers see the
// same shape they feed in
type recommendedItem struct {
	ID        string  `json:"_id"`
	Name      string  `json:"name"`
	Brand     string  `json:"brand"`
	Condition string  `json:"condition,omitempty"`
	WeightLb  float64 `json:"packageWeight_lb"`
	WeightKg  float64 `json:"packageWeight_kg"`
	Price     float64 `json:"price"`
	Calories  float64 `json:"calories"`
	Breed     string  `json:"breed"`
	Size      string  `json:"animalSize"`
	LifeStage string  `json:"lifeStage"`
	Picture   string  `json:"picture,omitempty"`
	Score     float64 `json:"score"`
}

// recommendationHandler normalizes the raw request and returns ranked catalog
// items for it
func (s *Server) recommendationHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqID := uuid.NewString()[:8]

	var req recommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	pref, err := req.normalize()
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	scored, err := s.recommender.Recommend(ctx, pref)
	if err != nil {
		log.Printf("[ERROR] recommendation %s failed: %v", reqID, err)
		renderError(w, r, fmt.Errorf("recommendation failed"), http.StatusInternalServerError)
		return
	}

	log.Printf("[DEBUG] recommendation %s: breed=%q size=%s stage=%s conditions=%v, %d results",
		reqID, pref.Breed, pref.Size, pref.LifeStage, pref.Conditions, len(scored))

	resp := recommendationResponse{
		Recommendations: make([]recommendedItem, 0, len(scored)),
		Count:           len(scored),
		Strategy:        s.recommender.Strategy(),
	}
	for _, sc := range scored {
		resp.Recommendations = append(resp.Recommendations, recommendedItem{
			ID:        sc.Item.ID,
			Name:      sc.Item.Name,
			Brand:     sc.Item.Brand,
			Condition: sc.Item.Condition,
			WeightLb:  sc.Item.WeightLb,
			WeightKg:  sc.Item.WeightKg,
			Price:     sc.Item.Price,
			Calories:  sc.Item.Calories,
			Breed:     sc.Item.Breed,
			Size:      string(sc.Item.Size),
			LifeStage: string(sc.Item.LifeStage),
			Picture:   sc.Item.Picture,
			Score:     sc.Score,
		})
	}

	renderJSON(w, r, http.StatusOK, resp)
}

// catalogHandler returns the full loaded catalog
func (s *Server) catalogHandler(w http.ResponseWriter, r *http.Request) {
	snap, err := s.catalog.Snapshot(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to load catalog: %v", err)
		renderError(w, r, fmt.Errorf("catalog unavailable"), http.StatusInternalServerError)
		return
	}

	items := make([]recommendedItem, 0, len(snap.Items))
	for _, item := range snap.Items {
		items = append(items, recommendedItem{
			ID:        item.ID,
			Name:      item.Name,
			Brand:     item.Brand,
			Condition: item.Condition,
			WeightLb:  item.WeightLb,
			WeightKg:  item.WeightKg,
			Price:     item.Price,
			Calories:  item.Calories,
			Breed:     item.Breed,
			Size:      string(item.Size),
			LifeStage: string(item.LifeStage),
			Picture:   item.Picture,
		})
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"items":   items,
		"count":   len(items),
		"version": snap.Version,
	})
}

// reloadHandler triggers an asynchronous catalog reload
func (s *Server) reloadHandler(w http.ResponseWriter, r *http.Request) {
	s.scheduler.ReloadNow()
	renderJSON(w, r, http.StatusAccepted, map[string]string{"status": "reload scheduled"})
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":          "ok",
		"version":         s.version,
		"catalog_version": s.catalog.Version(),
		"strategy":        s.recommender.Strategy(),
		"top_n":           s.recommender.TopN(),
		"time":            time.Now().UTC(),
	}
	if snap, err := s.catalog.Snapshot(r.Context()); err == nil {
		status["catalog_items"] = len(snap.Items)
	}
	renderJSON(w, r, http.StatusOK, status)
}
