package project

import (
	"time"

	"honnef.co/go/contour"
	"honnef.co/go/contour/config"
	"honnef.co/go/contour/session"
)

// Version is the document version written by [Encode].
const Version = "1.0"

// Document is the on-disk form of a session.
type Document struct {
	Version   string    `json:"version"`
	Timestamp string    `json:"timestamp"`
	Paths     *Paths    `json:"paths"`
	Settings  *Settings `json:"settings"`
	AppState  *AppState `json:"appState"`
	// LegacyState is where early versions stored the application state.
	LegacyState *AppState `json:"state,omitempty"`
}

type Paths struct {
	Inner contour.Path `json:"inner"`
	Outer contour.Path `json:"outer"`
}

type Settings struct {
	NumLines    int     `json:"numLines"`
	ShapeSize   float64 `json:"shapeSize"`
	ShapeWidth  float64 `json:"shapeWidth"`
	ShapeHeight float64 `json:"shapeHeight"`
	Zoom        float64 `json:"zoom"`
	ShowGrid    bool    `json:"showGrid"`
}

type AppState struct {
	Finalized         bool                   `json:"finalized"`
	Center            *contour.Point         `json:"center"`
	OuterBezierPoints []contour.ControlPoint `json:"outerBezierPoints"`
}

func settingsFrom(s config.Settings) *Settings {
	return &Settings{
		NumLines:    s.NumLines,
		ShapeSize:   s.ShapeSize,
		ShapeWidth:  s.ShapeWidth,
		ShapeHeight: s.ShapeHeight,
		Zoom:        s.Zoom,
		ShowGrid:    s.ShowGrid,
	}
}

func (s *Settings) config() config.Settings {
	return config.Settings{
		NumLines:    s.NumLines,
		ShapeSize:   s.ShapeSize,
		ShapeWidth:  s.ShapeWidth,
		ShapeHeight: s.ShapeHeight,
		Zoom:        s.Zoom,
		ShowGrid:    s.ShowGrid,
	}
}

// NewDocument projects snap into a document stamped with now.
func NewDocument(snap session.Snapshot, now time.Time) Document {
	points := snap.EditRecord
	if points == nil {
		points = []contour.ControlPoint{}
	}
	return Document{
		Version:   Version,
		Timestamp: now.UTC().Format(time.RFC3339Nano),
		Paths: &Paths{
			Inner: nonNil(snap.Inner),
			Outer: nonNil(snap.Outer),
		},
		Settings: settingsFrom(snap.Settings),
		AppState: &AppState{
			Finalized:         snap.Finalized,
			Center:            snap.Center,
			OuterBezierPoints: points,
		},
	}
}

// nonNil makes empty paths encode as [] rather than null.
func nonNil(p contour.Path) contour.Path {
	if p == nil {
		return contour.Path{}
	}
	return p
}
