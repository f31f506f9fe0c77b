package services

import (
	"context"
	"log"
	"strings"
	"time"

	"qualityze-admin-be/internal/models"

	"golang.org/x/sync/errgroup"
)

// DownloadStore is the persistence capability the download operations
// need; the mongo repository satisfies it, tests inject an in-memory fake.
type DownloadStore interface {
	Insert(ctx context.Context, download *models.Download) (string, error)
	Find(ctx context.Context, filter models.DownloadFilter) ([]models.Download, error)
	FindByID(ctx context.Context, id string) (*models.Download, error)
	UpdateFollowUp(ctx context.Context, id string, update models.FollowUpUpdate, now time.Time) error
	Delete(ctx context.Context, id string) error
}

// DownloadStatsStore exposes the independent aggregation sub-queries
type DownloadStatsStore interface {
	CountAll(ctx context.Context) (int, error)
	CountSince(ctx context.Context, since time.Time) (int, error)
	CountByResourceType(ctx context.Context) ([]models.ResourceTypeCount, error)
	CountByEmailStatus(ctx context.Context) ([]models.EmailStatusCount, error)
	TopResources(ctx context.Context, limit int) ([]models.TopResource, error)
	Recent(ctx context.Context, limit int) ([]models.Download, error)
}

// View paths invalidated by download mutations
const adminDownloadsPath = "/admin/downloads"

// DownloadService implements the lead/download tracking pipeline: capture,
// filtered listing, follow-up management, dashboard stats, CSV export.
type DownloadService struct {
	downloads   DownloadStore
	stats       DownloadStatsStore
	invalidator ViewInvalidator
}

func NewDownloadService(downloads DownloadStore, stats DownloadStatsStore, invalidator ViewInvalidator) *DownloadService {
	return &DownloadService{
		downloads:   downloads,
		stats:       stats,
		invalidator: invalidator,
	}
}

// Create records a public lead-capture event. No session required. The
// three timestamps are stamped equal; status fields start at their
// pending defaults.
func (s *DownloadService) Create(ctx context.Context, form models.DownloadFormData) models.MutationResult {
	if !form.ResourceType.Valid() {
		return models.Fail("invalid resource type")
	}

	now := time.Now()
	download := &models.Download{
		ResourceID:       form.ResourceID,
		ResourceTitle:    form.ResourceTitle,
		ResourceType:     form.ResourceType,
		UserName:         form.UserName,
		UserEmail:        form.UserEmail,
		UserCompany:      form.UserCompany,
		UserJobTitle:     form.UserJobTitle,
		EmailSent:        false,
		EmailStatus:      models.EmailPending,
		FollowUpRequired: false,
		FollowUpStatus:   models.FollowUpPending,
		DownloadedAt:     now,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	id, err := s.downloads.Insert(ctx, download)
	if err != nil {
		log.Println("create download error:", err)
		return models.Fail(err.Error())
	}

	s.invalidator.Invalidate(adminDownloadsPath)
	return models.OKWithID(id)
}

// List returns downloads matching the filter, newest first. Store trouble
// degrades to an empty list so the admin view renders instead of failing.
func (s *DownloadService) List(ctx context.Context, filter models.DownloadFilter) []models.Download {
	downloads, err := s.downloads.Find(ctx, filter)
	if err != nil {
		log.Println("get downloads error:", err)
		return []models.Download{}
	}
	if downloads == nil {
		return []models.Download{}
	}
	return downloads
}

// Get fetches one download; nil when absent or the id is malformed
func (s *DownloadService) Get(ctx context.Context, id string) *models.Download {
	download, err := s.downloads.FindByID(ctx, id)
	if err != nil {
		return nil
	}
	return download
}

// UpdateFollowUp sets the follow-up state of a lead
func (s *DownloadService) UpdateFollowUp(ctx context.Context, sess *Session, id string, update models.FollowUpUpdate) models.MutationResult {
	if !sess.Valid() {
		return models.Fail(ErrUnauthorized)
	}

	if !update.Status.Valid() {
		return models.Fail("invalid follow-up status")
	}

	if err := s.downloads.UpdateFollowUp(ctx, id, update, time.Now()); err != nil {
		log.Println("update follow-up error:", err)
		return models.Fail(err.Error())
	}

	s.invalidator.Invalidate(adminDownloadsPath)
	return models.OK()
}

// Delete removes a download record
func (s *DownloadService) Delete(ctx context.Context, sess *Session, id string) models.MutationResult {
	if !sess.Valid() {
		return models.Fail(ErrUnauthorized)
	}

	if err := s.downloads.Delete(ctx, id); err != nil {
		log.Println("delete download error:", err)
		return models.Fail(err.Error())
	}

	s.invalidator.Invalidate(adminDownloadsPath)
	return models.OK()
}

// Stats computes the dashboard aggregate from seven independent
// sub-queries run concurrently. Failure is atomic: any error yields the
// all-zero default object, never a partial result.
func (s *DownloadService) Stats(ctx context.Context) models.DownloadStats {
	now := time.Now()
	weekAgo := now.Add(-7 * 24 * time.Hour)
	monthAgo := now.Add(-30 * 24 * time.Hour)

	var (
		total, thisWeek, thisMonth int
		byType                     []models.ResourceTypeCount
		byStatus                   []models.EmailStatusCount
		topResources               []models.TopResource
		recent                     []models.Download
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		total, err = s.stats.CountAll(gctx)
		return
	})
	g.Go(func() (err error) {
		thisWeek, err = s.stats.CountSince(gctx, weekAgo)
		return
	})
	g.Go(func() (err error) {
		thisMonth, err = s.stats.CountSince(gctx, monthAgo)
		return
	})
	g.Go(func() (err error) {
		byType, err = s.stats.CountByResourceType(gctx)
		return
	})
	g.Go(func() (err error) {
		byStatus, err = s.stats.CountByEmailStatus(gctx)
		return
	})
	g.Go(func() (err error) {
		topResources, err = s.stats.TopResources(gctx, 5)
		return
	})
	g.Go(func() (err error) {
		recent, err = s.stats.Recent(gctx, 10)
		return
	})

	if err := g.Wait(); err != nil {
		log.Println("get download stats error:", err)
		return models.DefaultDownloadStats()
	}

	stats := models.DefaultDownloadStats()
	stats.Total = total
	stats.ThisWeek = thisWeek
	stats.ThisMonth = thisMonth

	// Fold grouped counts into the zero-filled enum maps; unknown keys
	// from legacy documents are dropped rather than surfaced.
	for _, item := range byType {
		if _, ok := stats.ByResourceType[item.Type]; ok {
			stats.ByResourceType[item.Type] = item.Count
		}
	}
	for _, item := range byStatus {
		if _, ok := stats.ByStatus[item.Status]; ok {
			stats.ByStatus[item.Status] = item.Count
		}
	}
	if topResources != nil {
		stats.TopResources = topResources
	}
	if recent != nil {
		stats.RecentDownloads = recent
	}

	return stats
}

var csvHeader = []string{
	"Date",
	"Resource Type",
	"Resource Title",
	"User Name",
	"User Email",
	"Company",
	"Job Title",
	"Email Status",
	"Follow-up Status",
}

// ExportCSV renders the filtered download list as a delimited text blob.
// Every cell is quote-wrapped (embedded quotes doubled); writing the file
// is the caller's responsibility.
func (s *DownloadService) ExportCSV(ctx context.Context, sess *Session, filter models.ExportFilter) models.ExportResult {
	if !sess.Valid() {
		return models.ExportResult{Success: false, Error: ErrUnauthorized}
	}

	downloads, err := s.downloads.Find(ctx, models.DownloadFilter{
		ResourceType: filter.ResourceType,
		DateFrom:     filter.DateFrom,
		DateTo:       filter.DateTo,
	})
	if err != nil {
		log.Println("export downloads error:", err)
		return models.ExportResult{Success: false, Error: err.Error()}
	}

	lines := make([]string, 0, len(downloads)+1)
	lines = append(lines, strings.Join(csvHeader, ","))
	for _, d := range downloads {
		lines = append(lines, joinCSVRow([]string{
			d.DownloadedAt.Local().Format("2006-01-02 15:04:05"),
			string(d.ResourceType),
			d.ResourceTitle,
			d.UserName,
			d.UserEmail,
			d.UserCompany,
			d.UserJobTitle,
			string(d.EmailStatus),
			string(d.FollowUpStatus),
		}))
	}

	return models.ExportResult{
		Success:  true,
		CSV:      strings.Join(lines, "\n"),
		Filename: "downloads-export-" + time.Now().Format("2006-01-02") + ".csv",
	}
}

func joinCSVRow(cells []string) string {
	quoted := make([]string, len(cells))
	for i, cell := range cells {
		quoted[i] = `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}
