package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// StorageKey is the key the progress document is stored under by the web client.
const StorageKey = "fit-track-progress"

// TimestampLayout is ISO-8601 in UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// ProgressDocument is the JSON layout of a user's persisted progress.
type ProgressDocument struct {
	Maxes                MaxesDocument     `json:"maxes"`
	CompletedWorkouts    []WorkoutDocument `json:"completedWorkouts"`
	TotalXP              int               `json:"totalXp"`
	Level                int               `json:"level"`
	UnlockedAchievements []string          `json:"unlockedAchievements"`
	StreakDays           int               `json:"streakDays"`
	LastWorkoutDate      *string           `json:"lastWorkoutDate"`
}

type MaxesDocument struct {
	Pullups int `json:"pullups"`
	Squats  int `json:"squats"`
	Abs     int `json:"abs"`
	Pushups int `json:"pushups"`
}

// WorkoutDocument is one completed workout.
type WorkoutDocument struct {
	WorkoutID     string        `json:"workoutId"`
	Date          string        `json:"date"`
	CompletedSets []SetDocument `json:"completedSets"`
	CompletedAt   string        `json:"completedAt"`
	XPEarned      int           `json:"xpEarned"`
}

type SetDocument struct {
	ExerciseType string `json:"exerciseType"`
	SetIndex     int    `json:"setIndex"`
	Reps         int    `json:"reps"`
	CompletedAt  string `json:"completedAt"`
}

// LoadDocument reads and parses a progress JSON file.
func LoadDocument(path string) (*ProgressDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Decode parses a progress document. A browser storage dump of the form
// {"fit-track-progress": ...} is unwrapped, whether the value is an object or
// a JSON-encoded string.
func Decode(r io.Reader) (*ProgressDocument, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading progress document: %w", err)
	}
	data, err = unwrapStorage(data)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var doc ProgressDocument
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing progress document: %w", err)
	}
	return &doc, nil
}

func unwrapStorage(data []byte) ([]byte, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("parsing progress document: %w", err)
	}
	raw, ok := envelope[StorageKey]
	if !ok {
		return data, nil
	}
	var encoded string
	if err := json.Unmarshal(raw, &encoded); err == nil {
		return []byte(encoded), nil
	}
	return raw, nil
}

// Encode writes doc as indented JSON.
func Encode(w io.Writer, doc *ProgressDocument) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding progress document: %w", err)
	}
	return nil
}
