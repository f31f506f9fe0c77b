package models

import (
	"time"
)

// ResourceType categorizes a downloadable lead-magnet
type ResourceType string

const (
	ResourceWhitepaper ResourceType = "whitepaper"
	ResourceCaseStudy  ResourceType = "case-study"
	ResourceNewsletter ResourceType = "newsletter"
	ResourceBrochure   ResourceType = "brochure"
	ResourceDatasheet  ResourceType = "datasheet"
	ResourceGuide      ResourceType = "guide"
)

// ResourceTypes lists every valid resource type, in the order the dashboard shows them
var ResourceTypes = []ResourceType{
	ResourceWhitepaper,
	ResourceCaseStudy,
	ResourceNewsletter,
	ResourceBrochure,
	ResourceDatasheet,
	ResourceGuide,
}

func (t ResourceType) Valid() bool {
	for _, rt := range ResourceTypes {
		if t == rt {
			return true
		}
	}
	return false
}

// EmailStatus is the delivery state of the resource email for a download
type EmailStatus string

const (
	EmailPending   EmailStatus = "pending"
	EmailDelivered EmailStatus = "delivered"
	EmailFailed    EmailStatus = "failed"
	EmailBounced   EmailStatus = "bounced"
)

var EmailStatuses = []EmailStatus{
	EmailPending,
	EmailDelivered,
	EmailFailed,
	EmailBounced,
}

// FollowUpStatus is the sales-process state of a captured lead
type FollowUpStatus string

const (
	FollowUpPending   FollowUpStatus = "pending"
	FollowUpContacted FollowUpStatus = "contacted"
	FollowUpQualified FollowUpStatus = "qualified"
	FollowUpConverted FollowUpStatus = "converted"
	FollowUpClosed    FollowUpStatus = "closed"
)

var FollowUpStatuses = []FollowUpStatus{
	FollowUpPending,
	FollowUpContacted,
	FollowUpQualified,
	FollowUpConverted,
	FollowUpClosed,
}

func (s FollowUpStatus) Valid() bool {
	for _, fs := range FollowUpStatuses {
		if s == fs {
			return true
		}
	}
	return false
}

// Download represents one resource-download/lead event
type Download struct {
	ID               string         `json:"id" bson:"_id,omitempty"`
	ResourceID       string         `json:"resourceId" bson:"resourceId"`
	ResourceTitle    string         `json:"resourceTitle" bson:"resourceTitle"`
	ResourceType     ResourceType   `json:"resourceType" bson:"resourceType"`
	UserName         string         `json:"userName" bson:"userName"`
	UserEmail        string         `json:"userEmail" bson:"userEmail"`
	UserCompany      string         `json:"userCompany,omitempty" bson:"userCompany,omitempty"`
	UserJobTitle     string         `json:"userJobTitle,omitempty" bson:"userJobTitle,omitempty"`
	EmailSent        bool           `json:"emailSent" bson:"emailSent"`
	EmailStatus      EmailStatus    `json:"emailStatus" bson:"emailStatus"`
	FollowUpRequired bool           `json:"followUpRequired" bson:"followUpRequired"`
	FollowUpStatus   FollowUpStatus `json:"followUpStatus" bson:"followUpStatus"`
	FollowUpNotes    string         `json:"followUpNotes,omitempty" bson:"followUpNotes,omitempty"`
	AssignedTo       string         `json:"assignedTo,omitempty" bson:"assignedTo,omitempty"`
	DownloadedAt     time.Time      `json:"downloadedAt" bson:"downloadedAt"`
	CreatedAt        time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt" bson:"updatedAt"`
}

// DownloadFormData is the public lead-capture payload
type DownloadFormData struct {
	ResourceID    string       `json:"resourceId" binding:"required"`
	ResourceTitle string       `json:"resourceTitle" binding:"required"`
	ResourceType  ResourceType `json:"resourceType" binding:"required"`
	UserName      string       `json:"userName" binding:"required"`
	UserEmail     string       `json:"userEmail" binding:"required,email"`
	UserCompany   string       `json:"userCompany"`
	UserJobTitle  string       `json:"userJobTitle"`
}

// DownloadFilter narrows the admin list view. Zero values are wildcards.
type DownloadFilter struct {
	ResourceType ResourceType `json:"resourceType" form:"resourceType"`
	EmailStatus  EmailStatus  `json:"emailStatus" form:"emailStatus"`
	DateFrom     *time.Time   `json:"dateFrom" form:"dateFrom" time_format:"2006-01-02"`
	DateTo       *time.Time   `json:"dateTo" form:"dateTo" time_format:"2006-01-02"`
	Search       string       `json:"search" form:"search"`
}

// ExportFilter is the subset of DownloadFilter the CSV export accepts
type ExportFilter struct {
	ResourceType ResourceType `json:"resourceType" form:"resourceType"`
	DateFrom     *time.Time   `json:"dateFrom" form:"dateFrom" time_format:"2006-01-02"`
	DateTo       *time.Time   `json:"dateTo" form:"dateTo" time_format:"2006-01-02"`
}

// FollowUpUpdate is the admin follow-up edit payload
type FollowUpUpdate struct {
	Status     FollowUpStatus `json:"status" binding:"required"`
	Notes      string         `json:"notes"`
	AssignedTo string         `json:"assignedTo"`
}

// ResourceTypeCount is one group of the by-resource-type aggregation
type ResourceTypeCount struct {
	Type  ResourceType `json:"type" bson:"_id"`
	Count int          `json:"count" bson:"count"`
}

// EmailStatusCount is one group of the by-email-status aggregation
type EmailStatusCount struct {
	Status EmailStatus `json:"status" bson:"_id"`
	Count  int         `json:"count" bson:"count"`
}

// TopResource is one entry of the top-downloads aggregation
type TopResource struct {
	ResourceID    string       `json:"resourceId" bson:"resourceId"`
	ResourceTitle string       `json:"resourceTitle" bson:"resourceTitle"`
	ResourceType  ResourceType `json:"resourceType" bson:"resourceType"`
	Count         int          `json:"count" bson:"count"`
}

// DownloadStats is the derived dashboard aggregate. The two bucket maps
// always carry every enum value, zero-filled.
type DownloadStats struct {
	Total           int                  `json:"total"`
	ThisWeek        int                  `json:"thisWeek"`
	ThisMonth       int                  `json:"thisMonth"`
	ByResourceType  map[ResourceType]int `json:"byResourceType"`
	ByStatus        map[EmailStatus]int  `json:"byStatus"`
	TopResources    []TopResource        `json:"topResources"`
	RecentDownloads []Download           `json:"recentDownloads"`
}

// DefaultDownloadStats returns the all-zero stats object used when any part
// of the aggregation batch fails.
func DefaultDownloadStats() DownloadStats {
	stats := DownloadStats{
		ByResourceType:  make(map[ResourceType]int, len(ResourceTypes)),
		ByStatus:        make(map[EmailStatus]int, len(EmailStatuses)),
		TopResources:    []TopResource{},
		RecentDownloads: []Download{},
	}
	for _, rt := range ResourceTypes {
		stats.ByResourceType[rt] = 0
	}
	for _, st := range EmailStatuses {
		stats.ByStatus[st] = 0
	}
	return stats
}
