// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Mood is a mood symbol attached to a diary entry.
type Mood string

const (
	MoodHappy      Mood = "😊"
	MoodSad        Mood = "😢"
	MoodAngry      Mood = "😡"
	MoodTired      Mood = "😴"
	MoodLoved      Mood = "😍"
	MoodThoughtful Mood = "🤔"
	MoodCool       Mood = "😎"
	MoodAnxious    Mood = "😰"
)

// DefaultMood is used when no mood is chosen.
const DefaultMood = MoodHappy

// Moods lists every supported mood in selector order.
var Moods = []Mood{
	MoodHappy,
	MoodSad,
	MoodAngry,
	MoodTired,
	MoodLoved,
	MoodThoughtful,
	MoodCool,
	MoodAnxious,
}

var moodLabels = map[Mood]string{
	MoodHappy:      "Happy",
	MoodSad:        "Sad",
	MoodAngry:      "Angry",
	MoodTired:      "Tired",
	MoodLoved:      "Loved",
	MoodThoughtful: "Thoughtful",
	MoodCool:       "Cool",
	MoodAnxious:    "Anxious",
}

// IsValid reports whether m is one of [Moods].
func (m Mood) IsValid() bool {
	_, ok := moodLabels[m]
	return ok
}

// Label returns a human-readable name of the mood,
// or the raw symbol for unknown values.
func (m Mood) Label() string {
	if label, ok := moodLabels[m]; ok {
		return label
	}
	return string(m)
}

// OrDefault returns [DefaultMood] for an empty mood and m otherwise.
func (m Mood) OrDefault() Mood {
	if m == "" {
		return DefaultMood
	}
	return m
}
