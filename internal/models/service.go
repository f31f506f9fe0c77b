package models

import (
	"time"
)

// ServiceImage is a stored upload reference with alt text
type ServiceImage struct {
	URL string `json:"url" bson:"url"`
	Alt string `json:"alt,omitempty" bson:"alt,omitempty"`
}

// SubService is one offering inside a service page
type SubService struct {
	Name        string       `json:"name" bson:"name"`
	Slug        string       `json:"slug" bson:"slug"`
	Description string       `json:"description" bson:"description"`
	KeyPoints   []string     `json:"keyPoints" bson:"keyPoints"`
	Image       ServiceImage `json:"image,omitempty" bson:"image,omitempty"`
	Details     string       `json:"details,omitempty" bson:"details,omitempty"` // sanitized rich text
}

// Industry is a target-industry blurb on a service page
type Industry struct {
	Name   string `json:"name" bson:"name"`
	Detail string `json:"detail" bson:"detail"`
}

// OpenGraph holds the og: metadata of a service page
type OpenGraph struct {
	Title       string `json:"title,omitempty" bson:"title,omitempty"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Image       string `json:"image,omitempty" bson:"image,omitempty"`
	URL         string `json:"url,omitempty" bson:"url,omitempty"`
}

// ServiceSEO holds page metadata authored in the SEO form section
type ServiceSEO struct {
	Title       string    `json:"title,omitempty" bson:"title,omitempty"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Keywords    string    `json:"keywords,omitempty" bson:"keywords,omitempty"`
	OpenGraph   OpenGraph `json:"openGraph,omitempty" bson:"openGraph,omitempty"`
}

// Service is a service offering page, addressed by slug
type Service struct {
	ID          string       `json:"id" bson:"_id,omitempty"`
	Name        string       `json:"name" bson:"name"`
	Slug        string       `json:"slug" bson:"slug"`
	Title       string       `json:"title" bson:"title"`
	Subtitle    string       `json:"subtitle,omitempty" bson:"subtitle,omitempty"`
	BannerImage string       `json:"bannerImage,omitempty" bson:"bannerImage,omitempty"`
	SubServices []SubService `json:"subservices" bson:"subservices"`
	Industries  []Industry   `json:"industries" bson:"industries"`
	SEO         ServiceSEO   `json:"seo,omitempty" bson:"seo,omitempty"`
	CreatedAt   time.Time    `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt" bson:"updatedAt"`
}

// SubServiceForm is the multipart intake shape for one sub-service.
// KeyPoints arrive newline-delimited; Details arrives as raw rich text.
type SubServiceForm struct {
	Name        string
	Slug        string
	Description string
	KeyPoints   string
	ImageURL    string
	ImageAlt    string
	Details     string
}

// ServiceFormData is the assembled multipart payload of the service form
type ServiceFormData struct {
	Name           string
	Slug           string
	Title          string
	Subtitle       string
	BannerImageURL string
	SEOTitle       string
	SEODescription string
	SEOKeywords    string
	OGTitle        string
	OGDescription  string
	OGImageURL     string
	OGURL          string
	SubServices    []SubServiceForm
	Industries     []Industry
}
