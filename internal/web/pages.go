package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hoteltheretinue/retinue-web/internal/content"
)

type homeData struct {
	baseData
	Categories   []content.RoomCategory
	Offer        []string
	About        content.AboutInfo
	Testimonials []content.Testimonial
}

func (h *Handlers) home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "home.html", homeData{
		baseData:     h.base(r, content.Hotel.Name),
		Categories:   content.RoomCategories,
		Offer:        content.WhatWeOffer,
		About:        content.About,
		Testimonials: content.Testimonials,
	})
}

type roomsPageData struct {
	baseData
	Categories []content.RoomCategory
	Highlight  content.RoomsHighlightInfo
	Policy     content.StayPolicyInfo
}

func (h *Handlers) rooms(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "rooms.html", roomsPageData{
		baseData:   h.base(r, "Rooms"),
		Categories: content.RoomCategories,
		Highlight:  content.RoomsHighlight,
		Policy:     content.StayPolicy,
	})
}

type conventionsData struct {
	baseData
	Conventions content.ConventionsInfo
}

func (h *Handlers) conventions(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "conventions.html", conventionsData{
		baseData:    h.base(r, "Conventions"),
		Conventions: content.Conventions,
	})
}

type aboutData struct {
	baseData
	About content.AboutInfo
}

func (h *Handlers) about(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "about.html", aboutData{
		baseData: h.base(r, "About"),
		About:    content.About,
	})
}

func (h *Handlers) contact(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "contact.html", h.base(r, "Contact"))
}

type blogIndexData struct {
	baseData
	Posts []content.BlogPost
}

func (h *Handlers) blogIndex(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "blog.html", blogIndexData{
		baseData: h.base(r, "Blog"),
		Posts:    content.BlogPosts,
	})
}

type blogPostData struct {
	baseData
	Post *content.BlogPost
}

func (h *Handlers) blogPost(w http.ResponseWriter, r *http.Request) {
	post, ok := content.BlogPostBySlug(chi.URLParam(r, "slug"))
	if !ok {
		h.notFound(w, r)
		return
	}
	h.render(w, r, http.StatusOK, "blog_post.html", blogPostData{
		baseData: h.base(r, post.Title),
		Post:     post,
	})
}

func (h *Handlers) notFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, "not_found.html", h.base(r, "Page not found"))
}
