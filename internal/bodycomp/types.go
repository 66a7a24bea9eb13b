package bodycomp

type Gender string

const (
	Male   Gender = "MALE"
	Female Gender = "FEMALE"
)

func (g Gender) Valid() bool {
	return g == Male || g == Female
}

// Method selects how the body-fat percentage is determined.
type Method string

const (
	Skinfold3Site Method = "SKINFOLD_3_SITE"
	Skinfold7Site Method = "SKINFOLD_7_SITE"
	Skinfold9Site Method = "SKINFOLD_9_SITE"
	BIA           Method = "BIA"
	ManualInput   Method = "MANUAL_INPUT"
)

type ActivityLevel string

const (
	Sedentary        ActivityLevel = "SEDENTARY"
	LightlyActive    ActivityLevel = "LIGHTLY_ACTIVE"
	ModeratelyActive ActivityLevel = "MODERATELY_ACTIVE"
	VeryActive       ActivityLevel = "VERY_ACTIVE"
	ExtraActive      ActivityLevel = "EXTRA_ACTIVE"
)

// Site is a caliper measurement location.
type Site string

const (
	Chest       Site = "chest"
	Abdomen     Site = "abdomen"
	Thigh       Site = "thigh"
	Triceps     Site = "triceps"
	Subscapular Site = "subscapular"
	Suprailiac  Site = "suprailiac"
	Midaxillary Site = "midaxillary"
	Calf        Site = "calf"
	Biceps      Site = "biceps"
)

var AllSites = []Site{Chest, Abdomen, Thigh, Triceps, Subscapular, Suprailiac, Midaxillary, Calf, Biceps}

// Skinfolds maps a site to its thickness in millimeters. An absent key means
// the site was not measured.
type Skinfolds map[Site]float64

// Bioimpedance holds the readings of a BIA device in ohms.
type Bioimpedance struct {
	Resistance float64  `json:"resistance"`
	Reactance  *float64 `json:"reactance,omitempty"`
}

// Measurement is the method-specific part of a body test together with the
// anthropometrics every estimator may need.
type Measurement struct {
	Method       Method
	Gender       Gender
	Age          float64
	Weight       float64
	Height       float64
	Skinfolds    Skinfolds
	Bioimpedance *Bioimpedance
	ManualFat    *float64
}
