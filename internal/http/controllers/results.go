// Package controllers maps a request and the repository's answer to a
// response outcome. Nothing here writes to the network; the handlers package
// turns outcomes into HTTP responses.
package controllers

import (
	"net/http"

	"github.com/rogerio-castellano/product-catalog/internal/validation"
)

// PageKind tells which page outcome a controller chose.
type PageKind int

const (
	PageView PageKind = iota
	PageRedirect
	PageNotFound
)

func (k PageKind) String() string {
	switch k {
	case PageView:
		return "view"
	case PageRedirect:
		return "redirect"
	case PageNotFound:
		return "not-found"
	default:
		return "unknown"
	}
}

// PageResult describes which view to render or where to redirect.
type PageResult struct {
	Kind PageKind
	// ViewName is set for PageView.
	ViewName string
	Model    any
	// ModelState carries the validation errors of a re-rendered form.
	ModelState *validation.ModelState
	// ActionName is the redirect target for PageRedirect.
	ActionName string
}

// StatusCode is the HTTP status the outcome maps to.
func (r PageResult) StatusCode() int {
	switch r.Kind {
	case PageRedirect:
		return http.StatusSeeOther
	case PageNotFound:
		return http.StatusNotFound
	default:
		return http.StatusOK
	}
}

func view(name string, model any) PageResult {
	return PageResult{Kind: PageView, ViewName: name, Model: model}
}

func redirectToAction(action string) PageResult {
	return PageResult{Kind: PageRedirect, ActionName: action}
}

func notFoundPage() PageResult {
	return PageResult{Kind: PageNotFound}
}

// APIResult describes an HTTP status and optional payload.
type APIResult struct {
	Status int
	Value  any
	// ActionName and RouteValues reference the operation that serves a
	// created resource.
	ActionName  string
	RouteValues map[string]any
}

func ok(value any) APIResult {
	return APIResult{Status: http.StatusOK, Value: value}
}

func createdAtAction(action string, routeValues map[string]any, value any) APIResult {
	return APIResult{Status: http.StatusCreated, ActionName: action, RouteValues: routeValues, Value: value}
}

func noContent() APIResult {
	return APIResult{Status: http.StatusNoContent}
}

func notFound() APIResult {
	return APIResult{Status: http.StatusNotFound}
}

func badRequest() APIResult {
	return APIResult{Status: http.StatusBadRequest}
}
