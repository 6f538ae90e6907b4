// Copyright (c) 2026 Hearthdeck. All rights reserved.
// Author: ops@fellhollow.io

package auth

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fellhollow/hearthdeck/internal/platform/constants"
	requestutil "github.com/fellhollow/hearthdeck/internal/platform/request"
	"github.com/fellhollow/hearthdeck/internal/platform/respond"
)

type Handler struct {
	service *Service
	secure  bool
}

// NewHandler constructs the auth handler. secure controls the cookie's
// Secure flag and is off only in local development.
func NewHandler(service *Service, secure bool) *Handler {
	return &Handler{service: service, secure: secure}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/login", handler.login)
	router.Post("/logout", handler.logout)
	router.Get("/session", handler.session)
}

type loginRequest struct {
	Passcode string `json:"passcode"`
}

type sessionResponse struct {
	Authenticated bool `json:"authenticated"`
}

/*
login checks the household passcode and sets the session cookie.
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	payload := loginRequest{}
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	token, expiresAt, err := handler.service.Login(payload.Passcode)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	http.SetCookie(writer, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   handler.secure,
		SameSite: http.SameSiteLaxMode,
	})
	respond.OK(writer, sessionResponse{Authenticated: true})
}

/*
logout clears the session cookie. There is no server-side session store
to invalidate; the cookie is the session.
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   handler.secure,
		SameSite: http.SameSiteLaxMode,
	})
	respond.OK(writer, sessionResponse{Authenticated: false})
}

/*
session reports whether the request carries a valid session. The
Authenticate middleware has already parsed the cookie by the time this
runs, so presence in the context is the answer.
*/
func (handler *Handler) session(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, sessionResponse{Authenticated: requestutil.Session(request) != nil})
}
