// Package settings resolves the admin-configured application settings.
// A partial remote payload is merged field-by-field over built-in
// defaults so the resolved configuration is always complete.
package settings

import (
	"time"

	"donlouis-club-backend/internal/model"
)

// Brand identity shown across the app.
const (
	BrandName     = "Don Louis"
	BrandFullName = "Don Louis Club"
	BrandTagline  = "Don Louis isn't food. It's a habit."
	BrandSlogan   = "Where Culinary Art Meets Luxury"
	BrandAddress  = "Adonis, Main Road"
	BrandPhone    = "09 123 456"
	BrandHours    = "Daily: 11:00 AM — 03:00 AM"
)

// Fixed PIN for the owner settings panel. Not remotely configurable,
// unlike the cashier PIN which lives in the settings record.
const AdminPin = "9696"

// DefaultCashierPin gates the point-of-service scan screen until the
// owner changes it through the settings panel.
const DefaultCashierPin = "1977"

// HighlightLifetime is how long the "Today's Pick" tag stays fresh
// before resolution rewrites it to the evergreen label.
const HighlightLifetime = 24 * time.Hour

// Highlight tags used by the auto-expiry rule.
const (
	HighlightToday     = "Today's Pick"
	HighlightEvergreen = "Chef's Selection"
)

// SignatureItems is the built-in menu used until the owner configures
// their own. A remotely configured but empty list still falls back here.
func SignatureItems() []model.MenuItem {
	return []model.MenuItem{
		{
			ID:      "1",
			NameEn:  "Don Louis Special Steak",
			NameAr:  "ستيك دون لويس الخاص",
			DescEn:  "Marinated steak slices, mushrooms, colored bellpepper, tomato, rocca balsamic mix, and DL special sauce.",
			DescAr:  "شرائح لحم متبلة، فطر، فلفل ألوان، طماطم، جرجير مع صلصة البلسمك، وصلصة دون لويس الخاصة.",
			Image:   "https://images.unsplash.com/photo-1600891964599-f61ba0e24092?auto=format&fit=crop&q=80&w=800",
			BadgeEn: "🔥 Signature",
			BadgeAr: "🔥 توقيعنا الخاص",
			Price:   "8.50",
		},
		{
			ID:      "2",
			NameEn:  "Merguez Provolone",
			NameAr:  "سجق ميرغيز بروفولون",
			DescEn:  "Special merguez sausage, italian provolone cheese, and our signature argentinian sauce.",
			DescAr:  "سجق ميرغيز فاخر، جبنة بروفولون إيطالية، وصلصة أرجنتينية خاصة.",
			Image:   "https://images.unsplash.com/photo-1544025162-d76694265947?auto=format&fit=crop&q=80&w=800",
			BadgeEn: "⭐ Most Loved",
			BadgeAr: "⭐ المفضل لدينا",
			Price:   "7.00",
		},
		{
			ID:      "3",
			NameEn:  "Francisco Chicken",
			NameAr:  "فرانسيسكو دجاج",
			DescEn:  "Grilled chicken breast, mix cheese, corn, pickles, and creamy mayo.",
			DescAr:  "صدر دجاج مشوي، خليط أجبان، ذرة، مخلل ومايونيز.",
			Image:   "https://images.unsplash.com/photo-1606755962773-d324e0a4d58a?auto=format&fit=crop&q=80&w=800",
			BadgeEn: "🔥 Best Seller",
			BadgeAr: "🔥 الأكثر مبيعاً",
			Price:   "6.50",
		},
	}
}

// SecretMenuItem is the hidden VIP item shown to Platinum members only.
func SecretMenuItem() model.MenuItem {
	return model.MenuItem{
		ID:      "secret1",
		NameEn:  "The Godfather Burger",
		NameAr:  "برغر العراب",
		DescEn:  "Double Black Angus, Truffle infusion, Aged Swiss, served in a gold-dusted brioche. Ask the owner directly.",
		DescAr:  "دبل بلاك أنجوس، ترفل، جبنة سويسرية معتقة، خبز مغطى بالذهب.",
		Image:   "https://images.unsplash.com/photo-1594212699903-ec8a3eca50f5?auto=format&fit=crop&q=80&w=800",
		BadgeEn: "👑 VIP ONLY",
		BadgeAr: "👑 كبار الشخصيات",
		Price:   "??",
	}
}

// CurrentOffers is the built-in promotion set for fresh installs.
func CurrentOffers() []model.Offer {
	return []model.Offer{
		{
			ID:      "o1",
			TitleEn: "Don Louis Midnight Combo",
			TitleAr: "كومبو منتصف الليل",
			Expiry:  "Valid daily after 10 PM",
			Type:    "latenight",
		},
		{
			ID:      "o2",
			TitleEn: "Weekly Signature Deal",
			TitleAr: "عرض الأسبوع المميز",
			Expiry:  "Expires Sunday",
			Type:    "weekly",
		},
	}
}

// Defaults returns the complete built-in configuration. The highlight
// timestamp is stamped with the given time so a fresh install starts
// with an unexpired "Today's Pick".
func Defaults(now time.Time) model.AdminSettings {
	highlightSet := now
	return model.AdminSettings{
		BestMenuItemID:   "1",
		HighlightTag:     HighlightToday,
		HighlightSetDate: &highlightSet,
		CashierPin:       DefaultCashierPin,
		ActiveOfferIDs:   []string{"o1", "o2"},
		PushSchedule: model.PushSchedule{
			Lunch:     true,
			Dinner:    true,
			LateNight: true,
		},
		MenuItems: SignatureItems(),
		Offers:    CurrentOffers(),
		Brand: model.BrandSettings{
			PrimaryColor: "#BF953F",
			AccentColor:  "#FBF5B7",
			BgTone:       "#030303",
		},
		Splash: model.SplashSettings{
			AnimationStyle:  "cinematic",
			SoundEnabled:    true,
			Animate:         true,
			BackgroundImage: "",
		},
		UI: model.UiSettings{
			Intensity:     "premium",
			Enable3D:      true,
			Glassmorphism: true,
		},
		Content: model.ContentSettings{
			WelcomeHeadline: BrandFullName,
			BrandTagline:    BrandTagline,
			PushTone:        "exclusive",
		},
	}
}
