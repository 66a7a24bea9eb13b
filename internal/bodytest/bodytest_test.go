package bodytest

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/yusufkecer/body-test-backend/internal/bodycomp"
	"github.com/yusufkecer/body-test-backend/internal/powerlifting"
)

func ptr(v float64) *float64 { return &v }

func baseInput() Input {
	return Input{
		Weight:    80,
		Height:    180,
		Age:       25,
		Gender:    bodycomp.Male,
		Method:    bodycomp.Skinfold3Site,
		Skinfolds: bodycomp.Skinfolds{bodycomp.Chest: 10, bodycomp.Abdomen: 15, bodycomp.Thigh: 12},
	}
}

func TestRunThreeSite(t *testing.T) {
	res, err := Run(baseInput(), Options{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	wantBF := bodycomp.ThreeSiteBodyFat(37, 25, bodycomp.Male)
	if res.Composition.BodyFatPercentage != wantBF {
		t.Errorf("body fat = %v, want %v", res.Composition.BodyFatPercentage, wantBF)
	}
	if res.TrainingLevel != powerlifting.Intermediate {
		t.Errorf("training level = %s, want default INTERMEDIATE", res.TrainingLevel)
	}
	if res.ActivityLevel != bodycomp.ModeratelyActive {
		t.Errorf("activity level = %s, want default MODERATELY_ACTIVE", res.ActivityLevel)
	}

	lbm := res.Composition.LeanBodyMass
	if math.Abs(lbm+res.Composition.FatMass-80) > 1e-9 {
		t.Errorf("lean %v + fat %v != 80", lbm, res.Composition.FatMass)
	}
	if res.Predictions.BenchPress1RM != lbm*1.6 {
		t.Errorf("bench = %v, want lean*1.6", res.Predictions.BenchPress1RM)
	}
	if !reflect.DeepEqual(res.Standards, powerlifting.StandardsFor(80, bodycomp.Male)) {
		t.Errorf("standards not computed against bodyweight")
	}
	if res.FatCategory != bodycomp.Categorize(wantBF, bodycomp.Male) {
		t.Errorf("category = %q", res.FatCategory)
	}

	for _, lift := range powerlifting.Lifts {
		st, ok := res.Standings[lift]
		if !ok {
			t.Fatalf("missing standing for %s", lift)
		}
		if st.Value != res.Predictions.Value(lift) {
			t.Errorf("%s: value %v, want %v", lift, st.Value, res.Predictions.Value(lift))
		}
		if st.Level != res.Standards.Classify(lift, st.Value) {
			t.Errorf("%s: level %s", lift, st.Level)
		}
		if st.Progress < 0 || st.Progress > 1 {
			t.Errorf("%s: progress %v outside [0,1]", lift, st.Progress)
		}
	}
}

func TestRunIsDeterministic(t *testing.T) {
	in := baseInput()
	in.TrainingLevel = powerlifting.Advanced
	in.ActivityLevel = bodycomp.ExtraActive

	a, err := Run(in, Options{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	b, err := Run(in, Options{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("results differ:\n%+v\n%+v", a, b)
	}
}

func TestRunMethods(t *testing.T) {
	nine := bodycomp.Skinfolds{}
	for _, s := range bodycomp.NineSiteSites {
		nine[s] = 10
	}

	tests := []struct {
		name   string
		modify func(*Input)
		opts   Options
		wantBF float64
	}{
		{
			name: "7-site",
			modify: func(in *Input) {
				in.Method = bodycomp.Skinfold7Site
				in.Skinfolds = nine
			},
			wantBF: bodycomp.SevenSiteBodyFat(70, 25, bodycomp.Male),
		},
		{
			name: "9-site Durnin-Womersley",
			modify: func(in *Input) {
				in.Method = bodycomp.Skinfold9Site
				in.Skinfolds = nine
			},
			wantBF: bodycomp.DurninWomersleyBodyFat(90, 25, bodycomp.Male),
		},
		{
			name: "9-site Parillo",
			modify: func(in *Input) {
				in.Method = bodycomp.Skinfold9Site
				in.Skinfolds = nine
			},
			opts:   Options{NineSite: bodycomp.NineSiteParillo},
			wantBF: bodycomp.ParilloBodyFat(90),
		},
		{
			name: "BIA",
			modify: func(in *Input) {
				in.Method = bodycomp.BIA
				in.Skinfolds = nil
				in.Bioimpedance = &bodycomp.Bioimpedance{Resistance: 480}
			},
			wantBF: bodycomp.BIABodyFat(480, 180, 80, 25, bodycomp.Male),
		},
		{
			name: "manual",
			modify: func(in *Input) {
				in.Method = bodycomp.ManualInput
				in.ManualFat = ptr(17.5)
			},
			wantBF: 17.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := baseInput()
			tt.modify(&in)
			res, err := Run(in, tt.opts)
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			if math.Abs(res.Composition.BodyFatPercentage-tt.wantBF) > 1e-9 {
				t.Errorf("body fat = %v, want %v", res.Composition.BodyFatPercentage, tt.wantBF)
			}
		})
	}
}

func TestRunBIAClampsLow(t *testing.T) {
	in := Input{
		Weight:       30,
		Height:       250,
		Age:          100,
		Gender:       bodycomp.Male,
		Method:       bodycomp.BIA,
		Bioimpedance: &bodycomp.Bioimpedance{Resistance: 500},
	}
	res, err := Run(in, Options{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Composition.BodyFatPercentage != bodycomp.BIAMinBodyFat {
		t.Errorf("body fat = %v, want clamp at %v", res.Composition.BodyFatPercentage, bodycomp.BIAMinBodyFat)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Input)
		opts   Options
		check  func(t *testing.T, err error)
	}{
		{
			name:   "weight out of range",
			modify: func(in *Input) { in.Weight = 25 },
			check:  wantValidation("weight"),
		},
		{
			name:   "age out of range",
			modify: func(in *Input) { in.Age = 8 },
			check:  wantValidation("age"),
		},
		{
			name:   "unknown gender",
			modify: func(in *Input) { in.Gender = "X" },
			check:  wantValidation("gender"),
		},
		{
			name:   "skinfold out of range",
			modify: func(in *Input) { in.Skinfolds[bodycomp.Chest] = 60 },
			check:  wantValidation("skinfold chest"),
		},
		{
			name: "manual out of range",
			modify: func(in *Input) {
				in.Method = bodycomp.ManualInput
				in.ManualFat = ptr(75)
			},
			check: wantValidation("manualBodyFatPercentage"),
		},
		{
			name:   "3-site male with only thigh",
			modify: func(in *Input) { in.Skinfolds = bodycomp.Skinfolds{bodycomp.Thigh: 12} },
			check: func(t *testing.T, err error) {
				var mErr *bodycomp.MissingMeasurementError
				if !errors.As(err, &mErr) {
					t.Fatalf("err = %v, want MissingMeasurementError", err)
				}
				if !reflect.DeepEqual(mErr.Fields, []string{"chest", "abdomen"}) {
					t.Errorf("fields = %v", mErr.Fields)
				}
			},
		},
		{
			name:   "unsupported method",
			modify: func(in *Input) { in.Method = "DEXA" },
			check: func(t *testing.T, err error) {
				var uErr *bodycomp.UnsupportedMethodError
				if !errors.As(err, &uErr) {
					t.Fatalf("err = %v, want UnsupportedMethodError", err)
				}
			},
		},
		{
			name: "parillo result above 60%",
			modify: func(in *Input) {
				in.Method = bodycomp.Skinfold9Site
				in.Skinfolds = bodycomp.Skinfolds{}
				for _, s := range bodycomp.NineSiteSites {
					in.Skinfolds[s] = 45
				}
			},
			opts: Options{NineSite: bodycomp.NineSiteParillo},
			check: func(t *testing.T, err error) {
				var rErr *bodycomp.OutOfRangeResultError
				if !errors.As(err, &rErr) {
					t.Fatalf("err = %v, want OutOfRangeResultError", err)
				}
			},
		},
		{
			name:   "unknown training level",
			modify: func(in *Input) { in.TrainingLevel = "PRO" },
			check: func(t *testing.T, err error) {
				var lErr *powerlifting.UnsupportedLevelError
				if !errors.As(err, &lErr) {
					t.Fatalf("err = %v, want UnsupportedLevelError", err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := baseInput()
			tt.modify(&in)
			res, err := Run(in, tt.opts)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !reflect.DeepEqual(res, Result{}) {
				t.Errorf("partial result returned: %+v", res)
			}
			tt.check(t, err)
		})
	}
}

func wantValidation(field string) func(*testing.T, error) {
	return func(t *testing.T, err error) {
		t.Helper()
		var vErr *bodycomp.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("err = %v, want ValidationError", err)
		}
		if vErr.Field != field {
			t.Errorf("field = %q, want %q", vErr.Field, field)
		}
	}
}
