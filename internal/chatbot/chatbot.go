// Package chatbot implements the rule-based assistant behind the portal's
// chat surface. Answers are derived from the reference dataset snapshot
// and the dairy catalog; there is no external model involved.
package chatbot

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"dairyportal/internal/catalog"
	"dairyportal/internal/dataset"
	"dairyportal/internal/stats"
	"github.com/google/uuid"
)

// Message is one chat exchange entry.
type Message struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"` // user or bot
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Responder answers farmer questions from static data.
type Responder struct {
	snapshot func() dataset.Snapshot
	now      func() time.Time
}

// New builds a Responder over a snapshot source. A nil clock defaults to
// time.Now.
func New(snapshot func() dataset.Snapshot, now func() time.Time) *Responder {
	if now == nil {
		now = time.Now
	}
	return &Responder{snapshot: snapshot, now: now}
}

// Reply produces the bot message for a user query.
func (r *Responder) Reply(query string) Message {
	return Message{
		ID:        uuid.NewString(),
		Type:      "bot",
		Text:      r.answer(query),
		Timestamp: r.now(),
	}
}

func (r *Responder) answer(query string) string {
	q := strings.ToLower(strings.TrimSpace(query))
	snap := r.snapshot()

	switch {
	case q == "":
		return helpText
	case strings.Contains(q, "top") && strings.Contains(q, "state"):
		return topStatesAnswer(snap)
	case strings.Contains(q, "production"):
		return productionAnswer(snap, q)
	case strings.Contains(q, "brand") || strings.Contains(q, "price comparison"):
		return brandAnswer(snap)
	case strings.Contains(q, "price") || strings.Contains(q, "rate"):
		return dairyPriceAnswer()
	case strings.Contains(q, "payment"):
		return paymentAnswer()
	}
	return helpText
}

const helpText = "I can help with milk production by state, top producing states, " +
	"brand price comparisons, dairy procurement rates, and payment cycles. " +
	"Try asking: \"Which are the top milk producing states?\""

func topStatesAnswer(snap dataset.Snapshot) string {
	if snap.Err != nil || len(snap.StateRanking) == 0 {
		return "State production data is unavailable right now."
	}
	top := stats.TopStates(snap.StateRanking, 5)
	parts := make([]string, 0, len(top))
	for _, s := range top {
		parts = append(parts, fmt.Sprintf("%d. %s (%.1f MT)", s.Rank, s.State, s.Production))
	}
	return "Top milk producing states: " + strings.Join(parts, ", ")
}

func productionAnswer(snap dataset.Snapshot, q string) string {
	if snap.Err != nil || len(snap.StateRanking) == 0 {
		return "State production data is unavailable right now."
	}
	for _, row := range snap.StateRanking {
		if row.State == stats.AllIndiaLabel {
			continue
		}
		if strings.Contains(q, strings.ToLower(row.State)) {
			return fmt.Sprintf("%s produced %.1f MT of milk in %s (rank %d nationally).",
				row.State, row.Production, row.Year, row.Rank)
		}
	}
	return topStatesAnswer(snap)
}

func brandAnswer(snap dataset.Snapshot) string {
	if snap.Err != nil || len(snap.Products) == 0 {
		return "Market data is unavailable right now."
	}
	prices := stats.BrandPrices(snap.Products)
	brands := make([]string, 0, len(prices))
	for b := range prices {
		brands = append(brands, b)
	}
	sort.Strings(brands)
	parts := make([]string, 0, len(brands))
	for _, b := range brands {
		p := prices[b]
		parts = append(parts, fmt.Sprintf("%s ₹%.2f avg (%d products)", b, p.AvgPrice, p.Count))
	}
	return "Brand price comparison: " + strings.Join(parts, ", ")
}

func dairyPriceAnswer() string {
	parts := make([]string, 0, 6)
	for _, d := range catalog.Companies() {
		parts = append(parts, fmt.Sprintf("%s pays ₹%.0f/L cow and ₹%.0f/L buffalo",
			d.Name, d.PricePerLiter.Cow, d.PricePerLiter.Buffalo))
	}
	return strings.Join(parts, "; ") + "."
}

func paymentAnswer() string {
	parts := make([]string, 0, 6)
	for _, d := range catalog.Companies() {
		parts = append(parts, fmt.Sprintf("%s settles %s", d.Name, d.PaymentCycle))
	}
	return strings.Join(parts, "; ") + "."
}
