package models

import "strings"

// Older dashboard builds send shoot PATCH payloads with camelCase keys while
// newer ones send snake_case. Key aliases are collapsed to the canonical
// snake_case field once here, at the API boundary, so no read site ever has
// to probe both spellings.
var shootKeyAliases = map[string]string{
	"scheduledDate":         "scheduled_date",
	"tourLinks":             "tour_links",
	"propertyDetails":       "property_details",
	"photographerId":        "photographer_id",
	"categoryPhotographers": "category_photographers",
	"declineReason":         "decline_reason",
	"mediaUrls":             "media_urls",
	"baseQuote":             "base_quote",
	"taxAmount":             "tax_amount",
	"taxManual":             "tax_manual",
	"totalQuote":            "total_quote",
	"totalPaid":             "total_paid",
	"accessInfo":            "access_info",
	"matterportUrl":         "matterport_url",
	"iguideUrl":             "iguide_url",
	"zillow3dUrl":           "zillow_3d_url",
	"videoUrl":              "video_url",
	"brandedUrl":            "branded_url",
	"unbrandedUrl":          "unbranded_url",
}

// NormalizeShootPatch rewrites a raw PATCH document into canonical keys,
// recursing into nested objects. Unknown keys pass through unchanged.
func NormalizeShootPatch(raw map[string]interface{}) map[string]interface{} {
	if raw == nil {
		return nil
	}
	out := make(map[string]interface{}, len(raw))
	for k, v := range raw {
		key := k
		if canonical, ok := shootKeyAliases[k]; ok {
			key = canonical
		}
		if nested, ok := v.(map[string]interface{}); ok {
			v = NormalizeShootPatch(nested)
		}
		out[key] = v
	}
	return out
}

// CanonicalCategoryName collapses the legacy "Photo"/"Photos" name variants
// into the single canonical category name.
func CanonicalCategoryName(name string) string {
	trimmed := strings.TrimSpace(name)
	if strings.EqualFold(trimmed, "photo") || strings.EqualFold(trimmed, "photos") {
		return "Photos"
	}
	return trimmed
}
