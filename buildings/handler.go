package buildings

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/EdwinMichaelLab/epic-dashboard/charts"
	"github.com/EdwinMichaelLab/epic-dashboard/httpx"
)

type loader interface {
	Load(ctx context.Context) ([]Building, error)
}

// Handler serves the filtered-data and chart endpoints. Every request
// reloads the dataset and re-runs the filter, so no state is retained
// between render cycles.
type Handler struct {
	store loader
}

// NewHandler creates a buildings handler over the given pool.
func NewHandler(db *pgxpool.Pool) *Handler {
	return &Handler{store: NewStore(db)}
}

// Routes configures the data endpoints. All of them accept the same filter
// query parameters: min_units, max_units, zipcode, vacancy, types.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.listBuildings)
	r.Get("/map", h.mapPoints)
	r.Get("/distributions", h.distributions)
	r.Get("/meta", h.meta)
	return r
}

// ChartRoutes configures the rendered chart endpoints.
func (h *Handler) ChartRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/building-types.png", h.buildingTypesChart)
	r.Get("/unit-counts.png", h.unitCountsChart)
	return r
}

// filteredSet runs the per-request load -> parse -> filter sequence and
// writes the error response itself when a step fails.
func (h *Handler) filteredSet(w http.ResponseWriter, r *http.Request) ([]Building, bool) {
	all, err := h.store.Load(r.Context())
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to load buildings")
		return nil, false
	}

	f, err := FromQuery(r.URL.Query(), all)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return nil, false
	}

	return f.Apply(all), true
}

func (h *Handler) listBuildings(w http.ResponseWriter, r *http.Request) {
	filtered, ok := h.filteredSet(w, r)
	if !ok {
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"count":     len(filtered),
		"buildings": filtered,
	})
}

func (h *Handler) mapPoints(w http.ResponseWriter, r *http.Request) {
	filtered, ok := h.filteredSet(w, r)
	if !ok {
		return
	}

	// total stays pre-cap: the header reports how many buildings match,
	// the map renders at most DisplayCap of them.
	points := Sample(filtered, DisplayCap, nil)

	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"total":   len(filtered),
		"sampled": len(filtered) > DisplayCap,
		"points":  points,
	})
}

func (h *Handler) distributions(w http.ResponseWriter, r *http.Request) {
	filtered, ok := h.filteredSet(w, r)
	if !ok {
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"by_type":  CountByType(filtered),
		"by_units": CountByUnits(filtered),
	})
}

// meta reports the observed building types and unit-count range so the page
// can construct its controls from the data, the way the original derives
// slider bounds and multiselect options.
func (h *Handler) meta(w http.ResponseWriter, r *http.Request) {
	all, err := h.store.Load(r.Context())
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to load buildings")
		return
	}

	minUnits, maxUnits := UnitBounds(all)
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"building_types": ObservedTypes(all),
		"min_units":      minUnits,
		"max_units":      maxUnits,
		"total":          len(all),
	})
}

func (h *Handler) buildingTypesChart(w http.ResponseWriter, r *http.Request) {
	filtered, ok := h.filteredSet(w, r)
	if !ok {
		return
	}

	h.writeChart(w, "Building Types", charts.FromCounts(CountByType(filtered)))
}

func (h *Handler) unitCountsChart(w http.ResponseWriter, r *http.Request) {
	filtered, ok := h.filteredSet(w, r)
	if !ok {
		return
	}

	buckets := CountByUnits(filtered)
	slices := make([]charts.Slice, 0, len(buckets))
	for _, b := range buckets {
		slices = append(slices, charts.Slice{
			Label: strconv.FormatFloat(b.Units, 'f', -1, 64),
			Value: float64(b.Count),
		})
	}

	h.writeChart(w, "Unit Counts", slices)
}

func (h *Handler) writeChart(w http.ResponseWriter, title string, slices []charts.Slice) {
	png, err := charts.Pie(title, slices)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to render chart")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(png)
}
