package models

import (
	"encoding/json"
	"time"
)

// Training represents a published training/course listing
type Training struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	Title          string    `json:"title" bson:"title"`
	Slug           string    `json:"slug" bson:"slug"`
	Description    string    `json:"description,omitempty" bson:"description,omitempty"`
	SpeakerID      string    `json:"speakerId" bson:"speakerId"`
	SpeakerName    string    `json:"speakerName" bson:"speakerName"`
	PricingOptions []string  `json:"pricingOptions" bson:"pricingOptions"`
	Featured       bool      `json:"featured" bson:"featured"`
	Views          int       `json:"views" bson:"views"`
	CreatedAt      time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Speaker is a referenced speaker document; trainings denormalize the name
type Speaker struct {
	ID    string `json:"id" bson:"_id,omitempty"`
	Name  string `json:"name" bson:"name"`
	Title string `json:"title,omitempty" bson:"title,omitempty"`
	Photo string `json:"photo,omitempty" bson:"photo,omitempty"`
}

// PricingOption accepts either a bare string or an option object carrying a
// name. Both decode to the option name so the stored value is always a
// plain string list.
type PricingOption struct {
	Name string
}

func (p *PricingOption) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		p.Name = raw
		return nil
	}
	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	p.Name = obj.Name
	return nil
}

func (p PricingOption) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Name)
}

// NormalizePricingOptions flattens the union list into plain strings
func NormalizePricingOptions(options []PricingOption) []string {
	names := make([]string, 0, len(options))
	for _, opt := range options {
		names = append(names, opt.Name)
	}
	return names
}

// TrainingFormData is the admin create/update payload
type TrainingFormData struct {
	Title          string          `json:"title" binding:"required"`
	Description    string          `json:"description"`
	SpeakerID      string          `json:"speakerId" binding:"required"`
	PricingOptions []PricingOption `json:"pricingOptions"`
	Featured       bool            `json:"featured"`
}

// TrainingUpdateData is the partial update payload; nil fields are left untouched
type TrainingUpdateData struct {
	Title          *string         `json:"title"`
	Description    *string         `json:"description"`
	SpeakerID      *string         `json:"speakerId"`
	PricingOptions []PricingOption `json:"pricingOptions"`
	Featured       *bool           `json:"featured"`
}

// TrainingUpdate is the storage-level partial update built by the action
// layer. Nil fields are not written. The slug is deliberately absent: it
// is fixed at creation.
type TrainingUpdate struct {
	Title          *string
	Description    *string
	SpeakerID      *string
	SpeakerName    *string
	PricingOptions []string
	Featured       *bool
	UpdatedAt      time.Time
}
