package campaign

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/fellhollow/hearthdeck/internal/platform/request"
	"github.com/fellhollow/hearthdeck/internal/platform/respond"
	"github.com/fellhollow/hearthdeck/internal/platform/validate"
	"github.com/fellhollow/hearthdeck/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listCampaigns)
	router.Post("/", handler.createCampaign)
	router.Get("/{id}", handler.getCampaign)
	router.Patch("/{id}", handler.updateCampaign)
	router.Delete("/{id}", handler.deleteCampaign)
	router.Get("/{id}/summary", handler.summary)

	router.Get("/{id}/scenarios", handler.listScenarios)
	router.Post("/{id}/scenarios", handler.addScenario)
	router.Post("/{id}/scenarios/reorder", handler.reorderScenario)

	router.Get("/{id}/runs", handler.listRuns)
	router.Post("/{id}/runs", handler.createRun)
	router.Get("/{id}/runs/latest", handler.latestRun)

	router.Get("/{id}/state", handler.getState)
	router.Patch("/{id}/state", handler.updateState)

	router.Get("/{id}/log", handler.listLog)
}

type createCampaignRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Ruleset     string `json:"ruleset"`
}

type updateCampaignRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Ruleset     *string `json:"ruleset"`
}

type addScenarioRequest struct {
	Title        string `json:"title"`
	PackCode     string `json:"pack_code"`
	ScenarioCode string `json:"scenario_code"`
}

type reorderScenarioRequest struct {
	ScenarioID string `json:"scenario_id"`
	Direction  string `json:"direction"`
}

type createRunRequest struct {
	ScenarioID *string    `json:"scenario_id"`
	PlayedAt   *time.Time `json:"played_at"`
	Result     string     `json:"result"`
	Score      *int       `json:"score"`
	ThreatEnd  *int       `json:"threat_end"`
	Rounds     *int       `json:"rounds"`
	Notes      string     `json:"notes"`
	Decks      []RunDeck  `json:"decks"`
}

func campaignID(request *http.Request) (string, error) {
	id := requestutil.ID(request, "id")

	v := &validate.Validator{}
	v.UUID("id", id)
	if err := v.Err(); err != nil {
		return "", err
	}
	return id, nil
}

// # Campaigns

func (handler *Handler) listCampaigns(writer http.ResponseWriter, request *http.Request) {
	campaigns, err := handler.service.ListCampaigns(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, campaigns)
}

func (handler *Handler) createCampaign(writer http.ResponseWriter, request *http.Request) {
	payload := createCampaignRequest{}
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	campaign, err := handler.service.CreateCampaign(request.Context(), payload.Name, payload.Description, payload.Ruleset)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, campaign)
}

func (handler *Handler) getCampaign(writer http.ResponseWriter, request *http.Request) {
	id, err := campaignID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	campaign, err := handler.service.GetCampaign(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, campaign)
}

func (handler *Handler) updateCampaign(writer http.ResponseWriter, request *http.Request) {
	id, err := campaignID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	payload := updateCampaignRequest{}
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	campaign, err := handler.service.UpdateCampaign(request.Context(), id, CampaignPatch{
		Name:        payload.Name,
		Description: payload.Description,
		Ruleset:     payload.Ruleset,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, campaign)
}

func (handler *Handler) deleteCampaign(writer http.ResponseWriter, request *http.Request) {
	id, err := campaignID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteCampaign(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) summary(writer http.ResponseWriter, request *http.Request) {
	id, err := campaignID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	summary, err := handler.service.Summary(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, summary)
}

// # Scenarios

func (handler *Handler) listScenarios(writer http.ResponseWriter, request *http.Request) {
	id, err := campaignID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	scenarios, err := handler.service.ListScenarios(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, scenarios)
}

func (handler *Handler) addScenario(writer http.ResponseWriter, request *http.Request) {
	id, err := campaignID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	payload := addScenarioRequest{}
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	scenario, err := handler.service.AddScenario(request.Context(), id, payload.Title, payload.PackCode, payload.ScenarioCode)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, scenario)
}

func (handler *Handler) reorderScenario(writer http.ResponseWriter, request *http.Request) {
	id, err := campaignID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	payload := reorderScenarioRequest{}
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	scenarios, err := handler.service.ReorderScenario(request.Context(), id, payload.ScenarioID, payload.Direction)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, scenarios)
}

// # Runs

func (handler *Handler) listRuns(writer http.ResponseWriter, request *http.Request) {
	id, err := campaignID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	runs, err := handler.service.ListRuns(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, runs)
}

func (handler *Handler) createRun(writer http.ResponseWriter, request *http.Request) {
	id, err := campaignID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	payload := createRunRequest{}
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	run, err := handler.service.CreateRun(request.Context(), id, RunInput{
		ScenarioID: payload.ScenarioID,
		PlayedAt:   payload.PlayedAt,
		Result:     payload.Result,
		Score:      payload.Score,
		ThreatEnd:  payload.ThreatEnd,
		Rounds:     payload.Rounds,
		Notes:      payload.Notes,
		Decks:      payload.Decks,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, run)
}

func (handler *Handler) latestRun(writer http.ResponseWriter, request *http.Request) {
	id, err := campaignID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	run, err := handler.service.LatestRun(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, run)
}

// # State

func (handler *Handler) getState(writer http.ResponseWriter, request *http.Request) {
	id, err := campaignID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	state, err := handler.service.GetState(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, state)
}

func (handler *Handler) updateState(writer http.ResponseWriter, request *http.Request) {
	id, err := campaignID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	patch := StatePatch{}
	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	state, err := handler.service.UpdateState(request.Context(), id, patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, state)
}

// # Campaign Log

func (handler *Handler) listLog(writer http.ResponseWriter, request *http.Request) {
	id, err := campaignID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)
	entries, meta, err := handler.service.ListLog(request.Context(), id, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, entries, meta)
}
