package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"qualityze-admin-be/internal/models"
)

var errStore = errors.New("store unavailable")

// spyInvalidator records every invalidated path for assertions
type spyInvalidator struct {
	mu    sync.Mutex
	paths []string
}

func (s *spyInvalidator) Invalidate(paths ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paths = append(s.paths, paths...)
}

func (s *spyInvalidator) seen() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.paths...)
}

// memDownloadStore is an in-memory DownloadStore
type memDownloadStore struct {
	downloads []models.Download
	nextID    int
	failAll   bool
}

func (m *memDownloadStore) Insert(_ context.Context, download *models.Download) (string, error) {
	if m.failAll {
		return "", errStore
	}
	m.nextID++
	download.ID = fmt.Sprintf("dl-%d", m.nextID)
	m.downloads = append(m.downloads, *download)
	return download.ID, nil
}

func (m *memDownloadStore) Find(_ context.Context, filter models.DownloadFilter) ([]models.Download, error) {
	if m.failAll {
		return nil, errStore
	}
	var out []models.Download
	for _, d := range m.downloads {
		if filter.ResourceType != "" && d.ResourceType != filter.ResourceType {
			continue
		}
		if filter.EmailStatus != "" && d.EmailStatus != filter.EmailStatus {
			continue
		}
		if filter.DateFrom != nil && d.DownloadedAt.Before(*filter.DateFrom) {
			continue
		}
		if filter.DateTo != nil && d.DownloadedAt.After(*filter.DateTo) {
			continue
		}
		if filter.Search != "" && !matchesSearch(d, filter.Search) {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

// matchesSearch mirrors the case-insensitive OR regex the mongo
// repository builds over the requester fields
func matchesSearch(d models.Download, q string) bool {
	q = strings.ToLower(q)
	for _, field := range []string{d.UserEmail, d.UserName, d.UserCompany, d.ResourceTitle} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

func (m *memDownloadStore) FindByID(_ context.Context, id string) (*models.Download, error) {
	if m.failAll {
		return nil, errStore
	}
	for i := range m.downloads {
		if m.downloads[i].ID == id {
			d := m.downloads[i]
			return &d, nil
		}
	}
	return nil, errStore
}

func (m *memDownloadStore) UpdateFollowUp(_ context.Context, id string, update models.FollowUpUpdate, now time.Time) error {
	if m.failAll {
		return errStore
	}
	for i := range m.downloads {
		if m.downloads[i].ID == id {
			m.downloads[i].FollowUpStatus = update.Status
			m.downloads[i].FollowUpNotes = update.Notes
			m.downloads[i].AssignedTo = update.AssignedTo
			m.downloads[i].UpdatedAt = now
			return nil
		}
	}
	return errStore
}

func (m *memDownloadStore) Delete(_ context.Context, id string) error {
	if m.failAll {
		return errStore
	}
	for i := range m.downloads {
		if m.downloads[i].ID == id {
			m.downloads = append(m.downloads[:i], m.downloads[i+1:]...)
			return nil
		}
	}
	return errStore
}

// memStatsStore returns canned aggregation results
type memStatsStore struct {
	total        int
	week         int
	month        int
	byType       []models.ResourceTypeCount
	byStatus     []models.EmailStatusCount
	topResources []models.TopResource
	recent       []models.Download
	failTop      bool
}

func (m *memStatsStore) CountAll(context.Context) (int, error) { return m.total, nil }

func (m *memStatsStore) CountSince(_ context.Context, since time.Time) (int, error) {
	if time.Since(since) > 8*24*time.Hour {
		return m.month, nil
	}
	return m.week, nil
}

func (m *memStatsStore) CountByResourceType(context.Context) ([]models.ResourceTypeCount, error) {
	return m.byType, nil
}

func (m *memStatsStore) CountByEmailStatus(context.Context) ([]models.EmailStatusCount, error) {
	return m.byStatus, nil
}

func (m *memStatsStore) TopResources(_ context.Context, limit int) ([]models.TopResource, error) {
	if m.failTop {
		return nil, errStore
	}
	if len(m.topResources) > limit {
		return m.topResources[:limit], nil
	}
	return m.topResources, nil
}

func (m *memStatsStore) Recent(_ context.Context, limit int) ([]models.Download, error) {
	if len(m.recent) > limit {
		return m.recent[:limit], nil
	}
	return m.recent, nil
}

// memTrainingStore is an in-memory TrainingStore
type memTrainingStore struct {
	trainings      []models.Training
	nextID         int
	updates        []models.TrainingUpdate
	failFindBySlug bool
}

func (m *memTrainingStore) Insert(_ context.Context, training *models.Training) (string, error) {
	m.nextID++
	training.ID = fmt.Sprintf("tr-%d", m.nextID)
	m.trainings = append(m.trainings, *training)
	return training.ID, nil
}

func (m *memTrainingStore) FindBySlug(_ context.Context, slug string) (*models.Training, error) {
	if m.failFindBySlug {
		return nil, errStore
	}
	for i := range m.trainings {
		if m.trainings[i].Slug == slug {
			t := m.trainings[i]
			return &t, nil
		}
	}
	return nil, nil
}

func (m *memTrainingStore) FindByID(_ context.Context, id string) (*models.Training, error) {
	for i := range m.trainings {
		if m.trainings[i].ID == id {
			t := m.trainings[i]
			return &t, nil
		}
	}
	return nil, errStore
}

func (m *memTrainingStore) FindAll(context.Context) ([]models.Training, error) {
	return append([]models.Training(nil), m.trainings...), nil
}

func (m *memTrainingStore) Update(_ context.Context, id string, update models.TrainingUpdate) error {
	m.updates = append(m.updates, update)
	for i := range m.trainings {
		if m.trainings[i].ID == id {
			if update.Title != nil {
				m.trainings[i].Title = *update.Title
			}
			if update.Description != nil {
				m.trainings[i].Description = *update.Description
			}
			if update.SpeakerID != nil {
				m.trainings[i].SpeakerID = *update.SpeakerID
			}
			if update.SpeakerName != nil {
				m.trainings[i].SpeakerName = *update.SpeakerName
			}
			if update.PricingOptions != nil {
				m.trainings[i].PricingOptions = update.PricingOptions
			}
			if update.Featured != nil {
				m.trainings[i].Featured = *update.Featured
			}
			m.trainings[i].UpdatedAt = update.UpdatedAt
			return nil
		}
	}
	return errStore
}

func (m *memTrainingStore) SetFeatured(_ context.Context, id string, featured bool, now time.Time) error {
	for i := range m.trainings {
		if m.trainings[i].ID == id {
			m.trainings[i].Featured = featured
			m.trainings[i].UpdatedAt = now
			return nil
		}
	}
	return errStore
}

func (m *memTrainingStore) Delete(_ context.Context, id string) error {
	for i := range m.trainings {
		if m.trainings[i].ID == id {
			m.trainings = append(m.trainings[:i], m.trainings[i+1:]...)
			return nil
		}
	}
	return errStore
}

// memSpeakerStore resolves from a fixed map
type memSpeakerStore struct {
	speakers map[string]models.Speaker
}

func (m *memSpeakerStore) FindByID(_ context.Context, id string) (*models.Speaker, error) {
	if sp, ok := m.speakers[id]; ok {
		return &sp, nil
	}
	return nil, errStore
}

func (m *memSpeakerStore) FindAll(context.Context) ([]models.Speaker, error) {
	out := make([]models.Speaker, 0, len(m.speakers))
	for _, sp := range m.speakers {
		out = append(out, sp)
	}
	return out, nil
}

// memServiceStore is an in-memory ServiceStore
type memServiceStore struct {
	services       []models.Service
	nextID         int
	failFindBySlug bool
}

func (m *memServiceStore) Insert(_ context.Context, service *models.Service) (string, error) {
	m.nextID++
	service.ID = fmt.Sprintf("svc-%d", m.nextID)
	m.services = append(m.services, *service)
	return service.ID, nil
}

func (m *memServiceStore) FindBySlug(_ context.Context, slug string) (*models.Service, error) {
	if m.failFindBySlug {
		return nil, errStore
	}
	for i := range m.services {
		if m.services[i].Slug == slug {
			s := m.services[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (m *memServiceStore) FindAll(context.Context) ([]models.Service, error) {
	return append([]models.Service(nil), m.services...), nil
}

func (m *memServiceStore) ReplaceBySlug(_ context.Context, slug string, service *models.Service) error {
	for i := range m.services {
		if m.services[i].Slug == slug {
			service.ID = m.services[i].ID
			service.CreatedAt = m.services[i].CreatedAt
			m.services[i] = *service
			return nil
		}
	}
	return errStore
}

func (m *memServiceStore) DeleteBySlug(_ context.Context, slug string) error {
	for i := range m.services {
		if m.services[i].Slug == slug {
			m.services = append(m.services[:i], m.services[i+1:]...)
			return nil
		}
	}
	return errStore
}

// memEmailConfigStore holds the singleton config
type memEmailConfigStore struct {
	config       *models.EmailConfig
	lastAPIKey   bool
	lastSMTPPass bool
	saveCount    int
}

func (m *memEmailConfigStore) Get(context.Context) (*models.EmailConfig, error) {
	if m.config == nil {
		return nil, nil
	}
	c := *m.config
	return &c, nil
}

func (m *memEmailConfigStore) Save(_ context.Context, config models.EmailConfig, updateAPIKey, updateSMTPPassword bool) error {
	m.saveCount++
	m.lastAPIKey = updateAPIKey
	m.lastSMTPPass = updateSMTPPassword
	if m.config == nil {
		m.config = &models.EmailConfig{}
	}
	prevAPIKey := m.config.APIKey
	prevSMTPPass := m.config.SMTPPassword
	*m.config = config
	if !updateAPIKey {
		m.config.APIKey = prevAPIKey
	}
	if !updateSMTPPassword {
		m.config.SMTPPassword = prevSMTPPass
	}
	return nil
}

// memEmailLogStore records inserted log entries
type memEmailLogStore struct {
	entries []models.EmailLog
}

func (m *memEmailLogStore) Insert(_ context.Context, entry *models.EmailLog) error {
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *memEmailLogStore) Recent(_ context.Context, limit int) ([]models.EmailLog, error) {
	if len(m.entries) > limit {
		return m.entries[:limit], nil
	}
	return append([]models.EmailLog(nil), m.entries...), nil
}

// fakeMailer captures the message and returns a canned error
type fakeMailer struct {
	sent []models.EmailMessage
	err  error
}

func (m *fakeMailer) Send(_ context.Context, _ *models.EmailConfig, msg models.EmailMessage) error {
	m.sent = append(m.sent, msg)
	return m.err
}
