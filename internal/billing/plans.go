// Package billing holds the plan catalog and the entitlement engine:
// which plan a user is on, whether one more download fits today's
// quotas, and the mock checkout that stands in for a real payment
// processor.
package billing

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Quota is a per-day allowance: a count, or unlimited. It marshals as
// a number or the literal string "Unlimited", which is also what the
// plan catalog shows users.
type Quota struct {
	Count     int
	Unlimited bool
}

func (q Quota) MarshalJSON() ([]byte, error) {
	if q.Unlimited {
		return json.Marshal("Unlimited")
	}
	return json.Marshal(q.Count)
}

func (q *Quota) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err == nil {
		if strings.EqualFold(label, "unlimited") {
			*q = Quota{Unlimited: true}
			return nil
		}
		return fmt.Errorf("unrecognized quota %q", label)
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*q = Quota{Count: n}
	return nil
}

// Allows reports whether one more download fits under the quota given
// how many were already used today.
func (q Quota) Allows(used int) bool {
	return q.Unlimited || used < q.Count
}

// Remaining returns what is left of the quota today. Unlimited stays
// unlimited.
func (q Quota) Remaining(used int) Quota {
	if q.Unlimited {
		return q
	}
	left := q.Count - used
	if left < 0 {
		left = 0
	}
	return Quota{Count: left}
}

// Plan describes one subscription tier. Prices are integer cents. Max
// file size is catalog metadata shown to users, not enforced at
// extraction time.
type Plan struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	PriceCents int      `json:"price_cents"`
	Currency   string   `json:"currency"`
	Period     string   `json:"period"`
	Popular    bool     `json:"popular"`
	AdFree     bool     `json:"ad_free"`
	Videos     Quota    `json:"videos_per_day"`
	Images     Quota    `json:"images_per_day"`
	MaxFileMB  int      `json:"max_file_size_mb"`
	MaxQuality string   `json:"max_video_quality,omitempty"`
	Features   []string `json:"features"`
}

const (
	FreePlanID  = "free"
	BasicPlanID = "basic"
	ProPlanID   = "pro"
)

// FreeDataCapBytes is the free tier's daily transfer allowance,
// counted over completed downloads since midnight.
const FreeDataCapBytes int64 = 3 * 1024 * 1024 * 1024

var plans = []Plan{
	{
		ID:         FreePlanID,
		Name:       "Free",
		PriceCents: 0,
		Currency:   "USD",
		Period:     "month",
		Videos:     Quota{Count: 5},
		Images:     Quota{Count: 10},
		MaxFileMB:  500,
		MaxQuality: "720p",
		Features: []string{
			"Basic downloader",
			"Standard support",
			"Up to 5 videos/day",
			"Up to 10 images/day",
			"Video quality up to 720p",
			"Max file size: 500MB",
		},
	},
	{
		ID:         BasicPlanID,
		Name:       "Basic",
		PriceCents: 499,
		Currency:   "USD",
		Period:     "month",
		Popular:    true,
		Videos:     Quota{Count: 30},
		Images:     Quota{Unlimited: true},
		MaxFileMB:  1000,
		Features: []string{
			"Up to 30 videos/day",
			"HD quality downloads",
			"Priority support",
		},
	},
	{
		ID:         ProPlanID,
		Name:       "Pro",
		PriceCents: 999,
		Currency:   "USD",
		Period:     "month",
		AdFree:     true,
		Videos:     Quota{Unlimited: true},
		Images:     Quota{Unlimited: true},
		MaxFileMB:  2000,
		Features: []string{
			"Unlimited downloads",
			"Batch downloading",
			"Scheduled downloads",
			"Custom video quality presets",
			"Cloud storage integration",
		},
	},
}

// legacyPlans maps identifiers from older deployments onto the current
// catalog.
var legacyPlans = map[string]string{
	"premium":      BasicPlanID,
	"premium_plus": ProPlanID,
}

// Plans returns the catalog in display order.
func Plans() []Plan {
	out := make([]Plan, len(plans))
	copy(out, plans)
	return out
}

// PlanByID resolves an identifier through the legacy map. ok is false
// when the identifier misses the catalog entirely.
func PlanByID(id string) (Plan, bool) {
	if mapped, ok := legacyPlans[id]; ok {
		id = mapped
	}
	for _, p := range plans {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}

// FreePlan returns the tier every account falls back to.
func FreePlan() Plan {
	p, _ := PlanByID(FreePlanID)
	return p
}
