// Package model defines the data models for the Don Louis Club loyalty backend.
package model

import "time"

// CycleTarget is the number of visits that completes a reward cycle.
// The visit counter always stays below this value: the scan that would
// reach it resets the counter to zero and grants one reward instead.
const CycleTarget = 5

// MemberProfile is the canonical, client-facing shape of a member.
// Every component except the record mapper operates on this type;
// the snake_case wire shape lives in the mapper package.
type MemberProfile struct {
	FirstName         string     `json:"firstName"`
	Phone             string     `json:"phone"`
	Points            int        `json:"points"`
	VisitsInCycle     int        `json:"visitsInCycle"`
	RewardsAvailable  int        `json:"rewardsAvailable"`
	IsRegistered      bool       `json:"isRegistered"`
	MemberID          string     `json:"memberId"`
	LastVisitDate     *time.Time `json:"lastVisitDate,omitempty"`
	IsFollowingSocial bool       `json:"isFollowingSocial,omitempty"`
}

// ScanResult is the outcome of a point-of-service scan.
type ScanResult struct {
	Success        bool           `json:"success"`
	Member         *MemberProfile `json:"member,omitempty"`
	RewardUnlocked bool           `json:"rewardUnlocked"`
	FailureReason  string         `json:"failureReason,omitempty"`
}

// Failure reasons surfaced to the point-of-service device.
const (
	FailureMemberNotFound = "Member Not Found"
	FailureServerError    = "Server Error"
)

// PushSchedule selects which push windows are active.
type PushSchedule struct {
	Lunch     bool `json:"lunch"`
	Dinner    bool `json:"dinner"`
	LateNight bool `json:"lateNight"`
}

// BrandSettings holds the theme palette.
type BrandSettings struct {
	PrimaryColor string `json:"primaryColor"`
	AccentColor  string `json:"accentColor"`
	BgTone       string `json:"bgTone"`
}

// SplashSettings configures the intro screen.
type SplashSettings struct {
	AnimationStyle  string `json:"animationStyle"` // fade, glow or cinematic
	SoundEnabled    bool   `json:"soundEnabled"`
	Animate         bool   `json:"animate"`
	BackgroundImage string `json:"backgroundImage"`
}

// UiSettings configures presentation intensity.
type UiSettings struct {
	Intensity     string `json:"intensity"` // calm, premium or ultra
	Enable3D      bool   `json:"enable3D"`
	Glassmorphism bool   `json:"glassmorphism"`
}

// ContentSettings holds editable copy.
type ContentSettings struct {
	WelcomeHeadline string `json:"welcomeHeadline"`
	BrandTagline    string `json:"brandTagline"`
	PushTone        string `json:"pushTone"` // calm, energetic or exclusive
}

// MenuItem is one configurable menu entry, bilingual.
type MenuItem struct {
	ID       string `json:"id"`
	NameEn   string `json:"nameEn"`
	NameAr   string `json:"nameAr"`
	DescEn   string `json:"descEn"`
	DescAr   string `json:"descAr"`
	Image    string `json:"image"`
	BadgeEn  string `json:"badgeEn"`
	BadgeAr  string `json:"badgeAr"`
	Price    string `json:"price"`
	IsHidden bool   `json:"isHidden,omitempty"`
}

// Offer is one configurable promotion.
type Offer struct {
	ID      string `json:"id"`
	TitleEn string `json:"titleEn"`
	TitleAr string `json:"titleAr"`
	Expiry  string `json:"expiry"`
	Type    string `json:"type"` // weekly, latenight, student or social
}

// AdminSettings is the complete, always-valid configuration object
// produced by the settings resolver. Nested groups are merged
// field-by-field against built-in defaults, so no field is ever unset.
type AdminSettings struct {
	BestMenuItemID   string       `json:"bestMenuItemId"`
	HighlightTag     string       `json:"highlightTag"`
	HighlightSetDate *time.Time   `json:"highlightSetDate,omitempty"`
	CashierPin       string       `json:"cashierPin"`
	ActiveOfferIDs   []string     `json:"activeOfferIds"`
	PushSchedule     PushSchedule `json:"pushSchedule"`

	MenuItems []MenuItem `json:"menuItems"`
	Offers    []Offer    `json:"offers"`

	Brand   BrandSettings   `json:"brand"`
	Splash  SplashSettings  `json:"splash"`
	UI      UiSettings      `json:"ui"`
	Content ContentSettings `json:"content"`
}

// Overlay and prompt timings consumed by the presentation layer.
const (
	// ScanSuccessOverlay is how long the scan celebration stays on screen.
	ScanSuccessOverlay = 3500 * time.Millisecond
	// InactivityOverlay is how long the win-back prompt stays on screen.
	InactivityOverlay = 8 * time.Second
	// InactivityPromptDelay is the pause before the win-back prompt appears.
	InactivityPromptDelay = 3500 * time.Millisecond
	// SplashDuration is the minimum time the splash screen is shown.
	SplashDuration = 2500 * time.Millisecond
)

// InactivityThreshold is how long a member must be away before the
// win-back prompt is offered once per session.
const InactivityThreshold = 14 * 24 * time.Hour
