// Package tier maps cumulative loyalty points to membership tiers.
// Classification is pure and deterministic; thresholds are fixed.
package tier

// Tier is one of the four ranked membership levels.
type Tier string

const (
	Bronze   Tier = "bronze"
	Silver   Tier = "silver"
	Gold     Tier = "gold"
	Platinum Tier = "platinum"
)

// Point thresholds for each tier.
const (
	SilverMin   = 6
	GoldMin     = 12
	PlatinumMin = 24
)

// Info holds presentation metadata for a tier.
type Info struct {
	NameEn    string `json:"nameEn"`
	NameAr    string `json:"nameAr"`
	MinPoints int    `json:"minPoints"`
	Color     string `json:"color"`
	Badge     string `json:"badge"`
}

// Progress describes how far a member is from the next tier.
// At Platinum there is no next tier: Name is "Max Status", PointsToNext
// is 0 and Percent saturates at 100.
type Progress struct {
	Name         string `json:"name"`
	Target       int    `json:"target"`
	Prev         int    `json:"prev"`
	PointsToNext int    `json:"pointsToNext"`
	Percent      int    `json:"percent"`
}

var infos = map[Tier]Info{
	Bronze:   {NameEn: "Bronze", NameAr: "برونزي", MinPoints: 0, Color: "#ECAE7D", Badge: "Member"},
	Silver:   {NameEn: "Silver", NameAr: "فضي", MinPoints: SilverMin, Color: "#E2E8F0", Badge: "Elite"},
	Gold:     {NameEn: "Gold", NameAr: "ذهبي", MinPoints: GoldMin, Color: "#FFD700", Badge: "VIP"},
	Platinum: {NameEn: "Platinum", NameAr: "بلاتينيوم", MinPoints: PlatinumMin, Color: "#ffffff", Badge: "Owner's Circle"},
}

// Classify returns the tier for a point total.
func Classify(points int) Tier {
	switch {
	case points >= PlatinumMin:
		return Platinum
	case points >= GoldMin:
		return Gold
	case points >= SilverMin:
		return Silver
	default:
		return Bronze
	}
}

// InfoFor returns the presentation metadata for a tier.
func InfoFor(t Tier) Info {
	return infos[t]
}

// Next returns progress towards the next tier for a point total.
func Next(points int) Progress {
	var p Progress
	switch {
	case points < SilverMin:
		p = Progress{Name: "Silver", Target: SilverMin, Prev: 0}
	case points < GoldMin:
		p = Progress{Name: "Gold", Target: GoldMin, Prev: SilverMin}
	case points < PlatinumMin:
		p = Progress{Name: "Platinum", Target: PlatinumMin, Prev: GoldMin}
	default:
		return Progress{Name: "Max Status", Target: points, Prev: 0, Percent: 100}
	}

	p.PointsToNext = p.Target - points
	rangeSize := p.Target - p.Prev
	p.Percent = (points - p.Prev) * 100 / rangeSize
	return p
}
