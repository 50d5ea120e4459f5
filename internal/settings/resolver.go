package settings

import (
	"encoding/json"
	"time"

	"donlouis-club-backend/internal/model"
)

// Resolve merges a remote configuration payload over the given defaults
// and returns a complete settings object. The second return value is
// true when no remote payload exists yet and the caller should persist
// the defaults remotely.
//
// The merge is defensive: each field is decoded on its own, and any
// missing, null or wrong-typed field keeps its default. Nothing in a
// malformed payload can fail the resolution as a whole.
//
// MenuItems and Offers fall back to defaults when remotely present but
// empty, so a fresh install never renders an empty menu.
func Resolve(raw json.RawMessage, defaults model.AdminSettings, now time.Time) (model.AdminSettings, bool) {
	if len(raw) == 0 {
		return applyHighlightExpiry(defaults, now), true
	}

	resolved := defaults

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return applyHighlightExpiry(resolved, now), false
	}

	mergeString(fields["bestMenuItemId"], &resolved.BestMenuItemID)
	mergeString(fields["highlightTag"], &resolved.HighlightTag)
	mergeTimePtr(fields["highlightSetDate"], &resolved.HighlightSetDate)
	mergeString(fields["cashierPin"], &resolved.CashierPin)
	mergeValue(fields["activeOfferIds"], &resolved.ActiveOfferIDs)
	mergeValue(fields["pushSchedule"], &resolved.PushSchedule)

	mergeNonEmptySlice(fields["menuItems"], &resolved.MenuItems)
	mergeNonEmptySlice(fields["offers"], &resolved.Offers)

	mergeBrand(fields["brand"], &resolved.Brand)
	mergeSplash(fields["splash"], &resolved.Splash)
	mergeUI(fields["ui"], &resolved.UI)
	mergeContent(fields["content"], &resolved.Content)

	return applyHighlightExpiry(resolved, now), false
}

// applyHighlightExpiry rewrites a stale "Today's Pick" tag at read time.
// The stored record is untouched; the rule is re-derived on every
// resolution against the current clock.
func applyHighlightExpiry(s model.AdminSettings, now time.Time) model.AdminSettings {
	if s.HighlightTag == HighlightToday && s.HighlightSetDate != nil {
		if now.Sub(*s.HighlightSetDate) > HighlightLifetime {
			s.HighlightTag = HighlightEvergreen
		}
	}
	return s
}

func mergeString(raw json.RawMessage, dst *string) {
	if raw == nil {
		return
	}
	var v string
	if err := json.Unmarshal(raw, &v); err == nil {
		*dst = v
	}
}

func mergeBool(raw json.RawMessage, dst *bool) {
	if raw == nil {
		return
	}
	var v bool
	if err := json.Unmarshal(raw, &v); err == nil {
		*dst = v
	}
}

// mergeTimePtr accepts an RFC 3339 string, keeping the default when the
// field is absent or unparseable. An explicit null clears the value.
func mergeTimePtr(raw json.RawMessage, dst **time.Time) {
	if raw == nil {
		return
	}
	if string(raw) == "null" {
		*dst = nil
		return
	}
	var v time.Time
	if err := json.Unmarshal(raw, &v); err == nil {
		*dst = &v
	}
}

// mergeValue replaces the destination wholesale when the field decodes,
// used for fields the remote payload owns entirely once present.
func mergeValue[T any](raw json.RawMessage, dst *T) {
	if raw == nil {
		return
	}
	var v T
	if err := json.Unmarshal(raw, &v); err == nil {
		*dst = v
	}
}

// mergeNonEmptySlice replaces the destination only when the remote list
// is valid and non-empty.
func mergeNonEmptySlice[T any](raw json.RawMessage, dst *[]T) {
	if raw == nil {
		return
	}
	var v []T
	if err := json.Unmarshal(raw, &v); err == nil && len(v) > 0 {
		*dst = v
	}
}

func groupFields(raw json.RawMessage) map[string]json.RawMessage {
	if raw == nil {
		return nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil
	}
	return fields
}

func mergeBrand(raw json.RawMessage, dst *model.BrandSettings) {
	fields := groupFields(raw)
	mergeString(fields["primaryColor"], &dst.PrimaryColor)
	mergeString(fields["accentColor"], &dst.AccentColor)
	mergeString(fields["bgTone"], &dst.BgTone)
}

func mergeSplash(raw json.RawMessage, dst *model.SplashSettings) {
	fields := groupFields(raw)
	mergeString(fields["animationStyle"], &dst.AnimationStyle)
	mergeBool(fields["soundEnabled"], &dst.SoundEnabled)
	mergeBool(fields["animate"], &dst.Animate)
	mergeString(fields["backgroundImage"], &dst.BackgroundImage)
}

func mergeUI(raw json.RawMessage, dst *model.UiSettings) {
	fields := groupFields(raw)
	mergeString(fields["intensity"], &dst.Intensity)
	mergeBool(fields["enable3D"], &dst.Enable3D)
	mergeBool(fields["glassmorphism"], &dst.Glassmorphism)
}

func mergeContent(raw json.RawMessage, dst *model.ContentSettings) {
	fields := groupFields(raw)
	mergeString(fields["welcomeHeadline"], &dst.WelcomeHeadline)
	mergeString(fields["brandTagline"], &dst.BrandTagline)
	mergeString(fields["pushTone"], &dst.PushTone)
}
