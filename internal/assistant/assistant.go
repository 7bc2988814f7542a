// Package assistant holds the keyword matchers behind the doctor
// recommendation and chat endpoints. Everything here is a pure lookup over
// fixed, ordered tables.
package assistant

import (
	"strings"

	"medilink/internal/models"
)

// MaxRecommendations caps RecommendDoctors.
const MaxRecommendations = 3

// firstMatch returns the value of the first table entry whose keyword occurs
// in text.
func firstMatch(table []Match, text string) (string, bool) {
	for _, m := range table {
		if strings.Contains(text, m.Keyword) {
			return m.Value, true
		}
	}
	return "", false
}

// RecommendDoctors picks at most MaxRecommendations doctors from doctors.
// A specialization, when given, wins over symptoms and is matched
// case-insensitively. Each symptom contributes the specialization of the
// first keyword it contains. With no match the first doctors in directory
// order are returned.
func RecommendDoctors(doctors []models.Doctor, specialization string, symptoms []string) []models.Doctor {
	var picked []models.Doctor
	switch {
	case specialization != "":
		for _, d := range doctors {
			if strings.EqualFold(d.Specialization, specialization) {
				picked = append(picked, d)
			}
		}
	case len(symptoms) > 0:
		for _, symptom := range symptoms {
			spec, ok := firstMatch(symptomSpecializations, strings.ToLower(symptom))
			if !ok {
				continue
			}
			for _, d := range doctors {
				if d.Specialization == spec {
					picked = append(picked, d)
				}
			}
		}
	}
	if len(picked) == 0 {
		picked = doctors[:min(MaxRecommendations, len(doctors))]
	}

	seen := make(map[int]bool, len(picked))
	out := make([]models.Doctor, 0, MaxRecommendations)
	for _, d := range picked {
		if seen[d.ID] {
			continue
		}
		seen[d.ID] = true
		out = append(out, d)
		if len(out) == MaxRecommendations {
			break
		}
	}
	return out
}

// ChatReply answers a chat message with a canned reply.
func ChatReply(message string) string {
	text := strings.ToLower(message)
	if reply, ok := firstMatch(chatReplies, text); ok {
		return reply
	}
	for _, topic := range chatTopics {
		for _, w := range topic.words {
			if strings.Contains(text, w) {
				return topic.reply
			}
		}
	}
	return chatFallback
}

// SampleTips returns n distinct health tips ordered by perm, which must
// behave like math/rand.Perm. n is clamped to the number of tips.
func SampleTips(n int, perm func(int) []int) []string {
	n = min(max(n, 0), len(healthTips))
	order := perm(len(healthTips))
	tips := make([]string, 0, n)
	for _, i := range order[:n] {
		tips = append(tips, healthTips[i])
	}
	return tips
}
