package deck

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/fellhollow/hearthdeck/internal/platform/request"
	"github.com/fellhollow/hearthdeck/internal/platform/respond"
	"github.com/fellhollow/hearthdeck/internal/platform/validate"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listDecks)
	router.Post("/", handler.createDeck)
	router.Get("/{id}", handler.getDeck)
	router.Patch("/{id}", handler.renameDeck)
	router.Delete("/{id}", handler.deleteDeck)

	router.Put("/{id}/heroes", handler.setHeroes)
	router.Put("/{id}/cards", handler.setCard)
	router.Put("/{id}/contents", handler.replaceContents)
	router.Post("/{id}/import", handler.importDeck)
	router.Get("/{id}/export", handler.exportDeck)
}

type createDeckRequest struct {
	Name string `json:"name"`
}

type renameDeckRequest struct {
	Name string `json:"name"`
}

type setHeroesRequest struct {
	Heroes []string `json:"heroes"`
}

type setCardRequest struct {
	CardCode string `json:"card_code"`
	Qty      int    `json:"qty"`
}

type replaceContentsRequest struct {
	Heroes []string    `json:"heroes"`
	Cards  []CardEntry `json:"cards"`
}

type importDeckRequest struct {
	Text string `json:"text"`
}

func deckID(request *http.Request) (string, error) {
	id := requestutil.ID(request, "id")

	v := &validate.Validator{}
	v.UUID("id", id)
	if err := v.Err(); err != nil {
		return "", err
	}
	return id, nil
}

func (handler *Handler) listDecks(writer http.ResponseWriter, request *http.Request) {
	decks, err := handler.service.ListDecks(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, decks)
}

func (handler *Handler) createDeck(writer http.ResponseWriter, request *http.Request) {
	payload := createDeckRequest{}
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	deck, err := handler.service.CreateDeck(request.Context(), payload.Name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, deck)
}

func (handler *Handler) getDeck(writer http.ResponseWriter, request *http.Request) {
	id, err := deckID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	deck, err := handler.service.GetDeck(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, deck)
}

func (handler *Handler) renameDeck(writer http.ResponseWriter, request *http.Request) {
	id, err := deckID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	payload := renameDeckRequest{}
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	deck, err := handler.service.RenameDeck(request.Context(), id, payload.Name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, deck)
}

func (handler *Handler) deleteDeck(writer http.ResponseWriter, request *http.Request) {
	id, err := deckID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteDeck(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) setHeroes(writer http.ResponseWriter, request *http.Request) {
	id, err := deckID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	payload := setHeroesRequest{}
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.SetHeroes(request.Context(), id, payload.Heroes); err != nil {
		respond.Error(writer, request, err)
		return
	}

	deck, err := handler.service.GetDeck(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, deck)
}

func (handler *Handler) setCard(writer http.ResponseWriter, request *http.Request) {
	id, err := deckID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	payload := setCardRequest{}
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.SetCardQty(request.Context(), id, payload.CardCode, payload.Qty); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) replaceContents(writer http.ResponseWriter, request *http.Request) {
	id, err := deckID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	payload := replaceContentsRequest{}
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Replace(request.Context(), id, payload.Heroes, payload.Cards); err != nil {
		respond.Error(writer, request, err)
		return
	}

	deck, err := handler.service.GetDeck(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, deck)
}

func (handler *Handler) importDeck(writer http.ResponseWriter, request *http.Request) {
	id, err := deckID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	payload := importDeckRequest{}
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	deck, err := handler.service.Import(request.Context(), id, payload.Text)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, deck)
}

func (handler *Handler) exportDeck(writer http.ResponseWriter, request *http.Request) {
	id, err := deckID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	text, err := handler.service.Export(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Text(writer, http.StatusOK, text)
}
