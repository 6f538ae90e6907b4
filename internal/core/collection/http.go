package collection

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/fellhollow/hearthdeck/internal/platform/request"
	"github.com/fellhollow/hearthdeck/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/packs", handler.listPacks)
	router.Patch("/packs", handler.setPackEnabled)
	router.Get("/packs/{code}/cards", handler.packCards)

	router.Get("/owned", handler.owned)
	router.Post("/owned", handler.setOwned)
	router.Post("/owned/bulk", handler.bulkSetOwned)

	router.Get("/usage", handler.usage)
}

type setPackEnabledRequest struct {
	PackCode string `json:"pack_code"`
	Enabled  bool   `json:"enabled"`
}

type setOwnedRequest struct {
	CardCode string `json:"card_code"`
	OwnedQty int    `json:"owned_qty"`
}

type bulkSetOwnedRequest struct {
	Cards []OwnedCard `json:"cards"`
}

func (handler *Handler) listPacks(writer http.ResponseWriter, request *http.Request) {
	packs, err := handler.service.ListPacks(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, packs)
}

func (handler *Handler) setPackEnabled(writer http.ResponseWriter, request *http.Request) {
	payload := setPackEnabledRequest{}
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	pack, err := handler.service.SetPackEnabled(request.Context(), payload.PackCode, payload.Enabled)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, pack)
}

func (handler *Handler) packCards(writer http.ResponseWriter, request *http.Request) {
	code := chi.URLParam(request, "code")

	cards, err := handler.service.PackCards(request.Context(), code)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, cards)
}

func (handler *Handler) owned(writer http.ResponseWriter, request *http.Request) {
	codes := requestutil.Codes(request, "code")

	owned, err := handler.service.Owned(request.Context(), codes)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, owned)
}

func (handler *Handler) setOwned(writer http.ResponseWriter, request *http.Request) {
	payload := setOwnedRequest{}
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.SetOwned(request.Context(), payload.CardCode, payload.OwnedQty); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) bulkSetOwned(writer http.ResponseWriter, request *http.Request) {
	payload := bulkSetOwnedRequest{}
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.BulkSetOwned(request.Context(), payload.Cards); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) usage(writer http.ResponseWriter, request *http.Request) {
	codes := requestutil.Codes(request, "code")

	usage, err := handler.service.Usage(request.Context(), codes)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, usage)
}
